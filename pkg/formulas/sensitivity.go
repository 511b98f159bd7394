package formulas

// Point is one sample of a sensitivity series.
type Point struct {
	X   float64
	ALE float64
}

// ALEByExposure samples ALE for exposure factors 0..100 in steps of step
// percent, holding asset value and rate fixed.
func ALEByExposure(assetValue, aro float64, step int) []Point {
	if step <= 0 {
		step = 5
	}
	out := make([]Point, 0, 100/step+1)
	for ef := 0; ef <= 100; ef += step {
		out = append(out, Point{X: float64(ef), ALE: ALE(SLE(assetValue, float64(ef)), aro)})
	}
	return out
}

// ALEByRate samples ALE for annual rates 0..1.0 in steps of step/100,
// holding loss magnitude and exposure fixed.
func ALEByRate(lossMagnitude, efPercent float64, step int) []Point {
	if step <= 0 {
		step = 5
	}
	ef := ClampExposure(efPercent) / 100.0
	out := make([]Point, 0, 100/step+1)
	for a := 0; a <= 100; a += step {
		aro := float64(a) / 100.0
		out = append(out, Point{X: aro, ALE: lossMagnitude * ef * aro})
	}
	return out
}

package riskposture

import "math"

// Posture classifies an investment by its return on security investment.
type Posture string

const (
	Unbounded Posture = "UNBOUNDED"
	Strong    Posture = "STRONG"
	Positive  Posture = "POSITIVE"
	Negative  Posture = "NEGATIVE"
)

// A ROSI of at least this fraction is classed as strong.
const strongROSIThreshold = 1.0

// FromROSI maps a ROSI fraction to a posture. +Inf means the controls cost
// nothing.
func FromROSI(rosi float64) Posture {
	switch {
	case math.IsInf(rosi, 1):
		return Unbounded
	case rosi >= strongROSIThreshold:
		return Strong
	case rosi > 0:
		return Positive
	default:
		return Negative
	}
}

func (p Posture) Recommendation() string {
	switch p {
	case Unbounded:
		return "No control spend is selected; any avoided loss is pure return."
	case Strong, Positive:
		return "The selected controls and BCDR provide a positive ROSI; consider adopting them."
	default:
		return "ROSI is not positive. Re-evaluate strategy and controls for better cost-effectiveness."
	}
}

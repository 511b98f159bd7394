// Package refdata holds the sector and disaster-recovery reference tables
// used by the risk formulas.
package refdata

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Strategy names shipped with the built-in tables.
const (
	ColdSite = "Cold Site"
	WarmSite = "Warm Site"
	HotSite  = "Hot Site"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// SectorProfile is the baseline risk data for one business sector.
type SectorProfile struct {
	Name                string  `yaml:"name"`
	ARO                 float64 `yaml:"aro"`
	AvgBreachCost       float64 `yaml:"avg_breach_cost"`
	DowntimeCostPerHour float64 `yaml:"downtime_cost_per_hour"`
}

// DRStrategyProfile describes a disaster-recovery site option.
type DRStrategyProfile struct {
	Name              string  `yaml:"name"`
	RecoveryTimeHours float64 `yaml:"recovery_time_hours"`
	AnnualCost        float64 `yaml:"annual_cost"`
}

// ControlCosts is the fixed annual cost of each optional control.
type ControlCosts struct {
	MFA        float64 `yaml:"mfa"`
	Phishing   float64 `yaml:"phishing"`
	Succession float64 `yaml:"succession"`
}

// UnknownSectorError is returned when a sector name is not in the tables.
type UnknownSectorError struct {
	Name string
}

func (e *UnknownSectorError) Error() string {
	return fmt.Sprintf("unknown sector %q", e.Name)
}

type document struct {
	Sectors      []SectorProfile     `yaml:"sectors"`
	Strategies   []DRStrategyProfile `yaml:"strategies"`
	ControlCosts ControlCosts        `yaml:"control_costs"`
}

// Tables is a read-only registry of reference data. The zero value is not
// usable; build one with New, Parse, Load or Default.
type Tables struct {
	sectors      []SectorProfile
	strategies   []DRStrategyProfile
	sectorIdx    map[string]int
	strategyIdx  map[string]int
	controlCosts ControlCosts
}

// New validates and copies the given rows. A Cold Site strategy is required
// because unknown strategy names resolve to it.
func New(sectors []SectorProfile, strategies []DRStrategyProfile, costs ControlCosts) (*Tables, error) {
	t := &Tables{
		sectors:      append([]SectorProfile(nil), sectors...),
		strategies:   append([]DRStrategyProfile(nil), strategies...),
		sectorIdx:    make(map[string]int, len(sectors)),
		strategyIdx:  make(map[string]int, len(strategies)),
		controlCosts: costs,
	}

	for i, s := range t.sectors {
		if s.Name == "" {
			return nil, fmt.Errorf("sector %d: missing name", i)
		}
		if _, dup := t.sectorIdx[s.Name]; dup {
			return nil, fmt.Errorf("sector %q: duplicate entry", s.Name)
		}
		if s.ARO < 0 || s.ARO > 1 {
			return nil, fmt.Errorf("sector %q: aro %v outside [0,1]", s.Name, s.ARO)
		}
		if s.AvgBreachCost < 0 || s.DowntimeCostPerHour < 0 {
			return nil, fmt.Errorf("sector %q: negative cost", s.Name)
		}
		t.sectorIdx[s.Name] = i
	}

	for i, s := range t.strategies {
		if s.Name == "" {
			return nil, fmt.Errorf("strategy %d: missing name", i)
		}
		if _, dup := t.strategyIdx[s.Name]; dup {
			return nil, fmt.Errorf("strategy %q: duplicate entry", s.Name)
		}
		if s.RecoveryTimeHours < 0 || s.AnnualCost < 0 {
			return nil, fmt.Errorf("strategy %q: negative recovery time or cost", s.Name)
		}
		t.strategyIdx[s.Name] = i
	}
	if _, ok := t.strategyIdx[ColdSite]; !ok {
		return nil, fmt.Errorf("strategy %q is required", ColdSite)
	}

	if costs.MFA < 0 || costs.Phishing < 0 || costs.Succession < 0 {
		return nil, fmt.Errorf("control costs must not be negative")
	}
	return t, nil
}

// Parse builds tables from a YAML document shaped like defaults.yaml.
func Parse(data []byte) (*Tables, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse reference data: %w", err)
	}
	return New(doc.Sectors, doc.Strategies, doc.ControlCosts)
}

// Load reads and parses a reference data file.
func Load(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reference data: %w", err)
	}
	return Parse(data)
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
)

// Default returns the built-in tables. They are parsed once and shared.
func Default() *Tables {
	defaultOnce.Do(func() {
		t, err := Parse(defaultsYAML)
		if err != nil {
			panic("embedded reference data is invalid: " + err.Error())
		}
		defaultTables = t
	})
	return defaultTables
}

// Sector looks up a sector by exact name.
func (t *Tables) Sector(name string) (SectorProfile, error) {
	i, ok := t.sectorIdx[name]
	if !ok {
		return SectorProfile{}, &UnknownSectorError{Name: name}
	}
	return t.sectors[i], nil
}

// LookupStrategy reports whether name is a known strategy.
func (t *Tables) LookupStrategy(name string) (DRStrategyProfile, bool) {
	i, ok := t.strategyIdx[name]
	if !ok {
		return DRStrategyProfile{}, false
	}
	return t.strategies[i], true
}

// Strategy returns the named strategy, or the Cold Site profile when the
// name is unknown.
func (t *Tables) Strategy(name string) DRStrategyProfile {
	if p, ok := t.LookupStrategy(name); ok {
		return p
	}
	p, _ := t.LookupStrategy(ColdSite)
	return p
}

// ResolveStrategyName returns the name of the profile Strategy would use.
func (t *Tables) ResolveStrategyName(name string) string {
	return t.Strategy(name).Name
}

// SectorNames lists sectors in table order.
func (t *Tables) SectorNames() []string {
	out := make([]string, 0, len(t.sectors))
	for _, s := range t.sectors {
		out = append(out, s.Name)
	}
	return out
}

// StrategyNames lists strategies in table order.
func (t *Tables) StrategyNames() []string {
	out := make([]string, 0, len(t.strategies))
	for _, s := range t.strategies {
		out = append(out, s.Name)
	}
	return out
}

// Sectors returns a copy of the sector rows.
func (t *Tables) Sectors() []SectorProfile {
	return append([]SectorProfile(nil), t.sectors...)
}

// Strategies returns a copy of the strategy rows.
func (t *Tables) Strategies() []DRStrategyProfile {
	return append([]DRStrategyProfile(nil), t.strategies...)
}

func (t *Tables) ControlCosts() ControlCosts {
	return t.controlCosts
}

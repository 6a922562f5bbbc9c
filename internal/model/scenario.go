package model

import "fmt"

// Scenario is one of exactly three policy variants. The set is closed on
// purpose: anchor-without-expansion is not a representable combination.
// Keep these values stable; they are intended for JSON and CSV output.
type Scenario string

const (
	StatusQuo           Scenario = "status_quo"
	ExpansionOnly       Scenario = "expansion_only"
	ExpansionPlusAnchor Scenario = "expansion_plus_anchor"
)

// Scenarios returns all variants in presentation order.
func Scenarios() []Scenario {
	return []Scenario{StatusQuo, ExpansionOnly, ExpansionPlusAnchor}
}

func (s Scenario) HasExpansion() bool {
	return s == ExpansionOnly || s == ExpansionPlusAnchor
}

func (s Scenario) HasAnchor() bool {
	return s == ExpansionPlusAnchor
}

func (s Scenario) Label() string {
	switch s {
	case StatusQuo:
		return "Status Quo"
	case ExpansionOnly:
		return "Expansion Only"
	case ExpansionPlusAnchor:
		return "Expansion + Anchor"
	default:
		return string(s)
	}
}

func ParseScenario(s string) (Scenario, error) {
	switch Scenario(s) {
	case StatusQuo, ExpansionOnly, ExpansionPlusAnchor:
		return Scenario(s), nil
	}
	return "", fmt.Errorf("unknown scenario %q", s)
}

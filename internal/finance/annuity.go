// Package finance holds the closed-form financing math: annuity debt service
// and the anchor margin/coverage relationship built on top of it.
package finance

import (
	"fmt"
	"math"
)

// DebtService computes the fixed annual payment on the utility's share of the
// expansion capital: standard fixed-rate, fixed-term amortization
//
//	payment = principal × r × (1+r)^n / ((1+r)^n − 1)
//
// with principal = capex × share. The discrete formula divides by zero at
// r == 0, so a non-positive rate is rejected rather than special-cased;
// validated parameter sets never reach that branch.
func DebtService(capex, share, rate float64, termYears int) (float64, error) {
	principal := capex * share
	if principal <= 0 {
		return 0, fmt.Errorf("principal must be > 0, got capex %v × share %v", capex, share)
	}
	if rate <= 0 {
		return 0, fmt.Errorf("financing rate must be > 0, got %v", rate)
	}
	if termYears <= 0 {
		return 0, fmt.Errorf("bond term must be a positive integer, got %d", termYears)
	}
	growth := math.Pow(1+rate, float64(termYears))
	return principal * rate * growth / (growth - 1), nil
}

// AnchorMargin is the anchor's annual revenue in excess of what its energy
// would cost at the hydro wholesale rate. Negative when the tariff is below
// that rate, which is not financially viable for the utility.
func AnchorMargin(anchorLoadMWh, tariffPerMWh, hydroUnitCost float64) float64 {
	return anchorLoadMWh * (tariffPerMWh - hydroUnitCost)
}

// CoverageRatio is the fraction of annual debt service offset by the anchor
// margin. Reported as zero, not an error, when there is no debt to cover.
func CoverageRatio(annualMargin, debtService float64) float64 {
	if debtService <= 0 {
		return 0
	}
	return annualMargin / debtService
}

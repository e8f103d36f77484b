package compare

import (
	"github.com/policywave/policywave/internal/calculation"
	"github.com/policywave/policywave/internal/domain"
	"github.com/shopspring/decimal"
)

// CompareEngine runs the same profile through both tax regimes.
type CompareEngine struct {
	CalcEngine *calculation.IncomeTaxCalculator
}

// NewCompareEngine creates a comparison engine on top of a tax calculator.
func NewCompareEngine(calcEngine *calculation.IncomeTaxCalculator) *CompareEngine {
	return &CompareEngine{CalcEngine: calcEngine}
}

// Compare computes liability under both regimes and picks the cheaper one.
// The deduction set only applies to the old regime; the new regime is always
// computed with its flat standard deduction. On equal tax the new regime is
// recommended.
func (ce *CompareEngine) Compare(grossIncome decimal.Decimal, deductions *domain.TaxDeductions, age domain.AgeBracket) RegimeComparison {
	oldResult := ce.CalcEngine.CalculateIncomeTax(domain.TaxProfile{
		GrossIncome: grossIncome,
		Regime:      domain.RegimeOld,
		Age:         age,
		Deductions:  deductions,
	})

	newResult := ce.CalcEngine.CalculateIncomeTax(domain.TaxProfile{
		GrossIncome: grossIncome,
		Regime:      domain.RegimeNew,
		Age:         age,
	})

	recommendation := domain.RegimeNew
	if oldResult.TotalTax.LessThan(newResult.TotalTax) {
		recommendation = domain.RegimeOld
	}

	return RegimeComparison{
		OldRegime:      oldResult,
		NewRegime:      newResult,
		Recommendation: recommendation,
		Savings:        oldResult.TotalTax.Sub(newResult.TotalTax).Abs(),
	}
}

// CompareRegimes compares both regimes using the default FY 2025-26
// calculator.
func CompareRegimes(grossIncome decimal.Decimal, deductions *domain.TaxDeductions, age domain.AgeBracket) RegimeComparison {
	return NewCompareEngine(calculation.NewIncomeTaxCalculator()).Compare(grossIncome, deductions, age)
}

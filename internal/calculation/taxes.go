package calculation

import (
	"github.com/policywave/policywave/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX COMPUTATION ASSUMPTIONS (FY 2025-26):
//
// 1. Slab tables are held at FY 2025-26 levels with no indexing.
//    - Old regime: 4 slabs (0/5/20/30%)
//    - New regime: 6 slabs (0/5/10/15/20/30%)
//
// 2. New regime allows only the flat 75,000 standard deduction (Budget 2024).
//
// 3. Section 87A rebate applies up to taxable income of 7,00,000:
//    capped at 25,000 (new regime) or 12,500 (old regime).
//
// 4. Surcharge tiers key off GROSS income, not taxable income.
//
// 5. Health and education cess is 4% of (tax after rebate + surcharge).
//
// 6. Age bracket is accepted for reporting but does not shift slabs.
//    Senior-citizen slab differences are not modelled.

var (
	newRegimeStandardDeduction = decimal.NewFromInt(75000)
	defaultStandardDeduction   = decimal.NewFromInt(50000)
	homeLoanInterestCap        = decimal.NewFromInt(200000) // Section 24 ceiling
	rebateIncomeCeiling        = decimal.NewFromInt(700000)
	rebateCapNewRegime         = decimal.NewFromInt(25000)
	rebateCapOldRegime         = decimal.NewFromInt(12500)
	cessRate                   = decimal.NewFromFloat(0.04)
	hundred                    = decimal.NewFromInt(100)
)

// surchargeTier is one gross-income band with its surcharge rate.
// Max is nil for the open-ended top band.
type surchargeTier struct {
	Min  decimal.Decimal
	Max  *decimal.Decimal
	Rate decimal.Decimal
}

func slab(min int64, max int64, rate int64) domain.TaxBracket {
	m := decimal.NewFromInt(max)
	return domain.TaxBracket{Min: decimal.NewFromInt(min), Max: &m, Rate: decimal.NewFromInt(rate)}
}

func openSlab(min int64, rate int64) domain.TaxBracket {
	return domain.TaxBracket{Min: decimal.NewFromInt(min), Rate: decimal.NewFromInt(rate)}
}

func tier(min int64, max int64, rate float64) surchargeTier {
	m := decimal.NewFromInt(max)
	return surchargeTier{Min: decimal.NewFromInt(min), Max: &m, Rate: decimal.NewFromFloat(rate)}
}

func openTier(min int64, rate float64) surchargeTier {
	return surchargeTier{Min: decimal.NewFromInt(min), Rate: decimal.NewFromFloat(rate)}
}

// IncomeTaxCalculator computes liability under both regimes for FY 2025-26.
// It is pure and safe for concurrent use; the slab tables are never mutated.
type IncomeTaxCalculator struct {
	OldRegimeSlabs []domain.TaxBracket
	NewRegimeSlabs []domain.TaxBracket
	SurchargeTiers []surchargeTier
}

// NewIncomeTaxCalculator creates a calculator with the FY 2025-26 tables.
func NewIncomeTaxCalculator() *IncomeTaxCalculator {
	return &IncomeTaxCalculator{
		OldRegimeSlabs: []domain.TaxBracket{
			slab(0, 250000, 0),
			slab(250000, 500000, 5),
			slab(500000, 1000000, 20),
			openSlab(1000000, 30),
		},
		NewRegimeSlabs: []domain.TaxBracket{
			slab(0, 300000, 0),
			slab(300000, 600000, 5),
			slab(600000, 900000, 10),
			slab(900000, 1200000, 15),
			slab(1200000, 1500000, 20),
			openSlab(1500000, 30),
		},
		SurchargeTiers: []surchargeTier{
			tier(5000000, 10000000, 0.10),
			tier(10000000, 20000000, 0.15),
			tier(20000000, 50000000, 0.25),
			openTier(50000000, 0.37),
		},
	}
}

// CalculateIncomeTax computes the full liability for a profile. Inputs are
// assumed already validated at the boundary; negative amounts are a caller
// contract violation.
func (itc *IncomeTaxCalculator) CalculateIncomeTax(profile domain.TaxProfile) domain.TaxResult {
	totalDeductions := itc.totalDeductions(profile)

	taxableIncome := profile.GrossIncome.Sub(totalDeductions)
	if taxableIncome.LessThan(decimal.Zero) {
		taxableIncome = decimal.Zero
	}

	slabs := itc.NewRegimeSlabs
	if profile.Regime == domain.RegimeOld {
		slabs = itc.OldRegimeSlabs
	}

	taxBeforeRebate := decimal.Zero
	breakdown := []domain.TaxBracket{}
	for _, s := range slabs {
		if !taxableIncome.GreaterThan(s.Min) {
			continue
		}
		upper := taxableIncome
		if s.Max != nil && upper.GreaterThan(*s.Max) {
			upper = *s.Max
		}
		taxableInBracket := upper.Sub(s.Min)
		taxAmount := taxableInBracket.Mul(s.Rate).Div(hundred)

		breakdown = append(breakdown, domain.TaxBracket{
			Min:       s.Min,
			Max:       s.Max,
			Rate:      s.Rate,
			TaxAmount: taxAmount,
		})
		taxBeforeRebate = taxBeforeRebate.Add(taxAmount)
	}

	// Section 87A rebate for taxable income up to 7,00,000
	rebate := decimal.Zero
	if taxableIncome.LessThanOrEqual(rebateIncomeCeiling) {
		rebateCap := rebateCapOldRegime
		if profile.Regime == domain.RegimeNew {
			rebateCap = rebateCapNewRegime
		}
		rebate = decimal.Min(taxBeforeRebate, rebateCap)
	}

	taxAfterRebate := taxBeforeRebate.Sub(rebate)
	if taxAfterRebate.LessThan(decimal.Zero) {
		taxAfterRebate = decimal.Zero
	}

	surcharge := taxAfterRebate.Mul(itc.surchargeRate(profile.GrossIncome))
	cess := taxAfterRebate.Add(surcharge).Mul(cessRate)

	totalTax := taxAfterRebate.Add(surcharge).Add(cess).Round(0)

	effectiveRate := decimal.Zero
	if profile.GrossIncome.GreaterThan(decimal.Zero) {
		effectiveRate = totalTax.Div(profile.GrossIncome).Mul(hundred).Round(2)
	}

	return domain.TaxResult{
		Regime:          profile.Regime,
		GrossIncome:     profile.GrossIncome,
		TotalDeductions: totalDeductions,
		TaxableIncome:   taxableIncome,
		TaxBeforeRebate: taxBeforeRebate.Round(0),
		Rebate:          rebate.Round(0),
		Surcharge:       surcharge.Round(0),
		Cess:            cess.Round(0),
		TotalTax:        totalTax,
		EffectiveRate:   effectiveRate,
		TakeHome:        profile.GrossIncome.Sub(totalTax),
		Breakdown:       breakdown,
	}
}

// totalDeductions applies the regime's deduction rules.
func (itc *IncomeTaxCalculator) totalDeductions(profile domain.TaxProfile) decimal.Decimal {
	if profile.Regime == domain.RegimeNew {
		// New regime allows only the flat standard deduction.
		return newRegimeStandardDeduction
	}

	d := profile.Deductions
	if d == nil {
		return decimal.Zero
	}

	// Chapter VI-A style items cannot exceed gross income as a group.
	capped := d.Section80C.Add(d.Section80D).Add(d.Section80G).Add(d.NPS)
	if capped.GreaterThan(profile.GrossIncome) {
		capped = profile.GrossIncome
	}

	standard := d.StandardDeduction
	if standard.IsZero() {
		standard = defaultStandardDeduction
	}

	homeLoan := decimal.Min(d.HomeLoanInterest, homeLoanInterestCap)

	return capped.Add(d.HRA).Add(d.LTA).Add(standard).Add(homeLoan)
}

// surchargeRate returns the surcharge rate for a gross income. Tiers are
// keyed off gross income, not taxable income.
func (itc *IncomeTaxCalculator) surchargeRate(grossIncome decimal.Decimal) decimal.Decimal {
	for _, t := range itc.SurchargeTiers {
		if grossIncome.GreaterThan(t.Min) && (t.Max == nil || grossIncome.LessThanOrEqual(*t.Max)) {
			return t.Rate
		}
	}
	return decimal.Zero
}

// CalculateIncomeTax computes a tax result using the default FY 2025-26
// calculator. Convenience wrapper for callers that need no customization.
func CalculateIncomeTax(profile domain.TaxProfile) domain.TaxResult {
	return NewIncomeTaxCalculator().CalculateIncomeTax(profile)
}

package domain

import (
	"github.com/shopspring/decimal"
)

// Regime identifies one of the two statutory income tax computation schemes.
type Regime string

const (
	RegimeOld Regime = "old"
	RegimeNew Regime = "new"
)

// IsValid reports whether the regime is one of the two known schemes.
func (r Regime) IsValid() bool {
	return r == RegimeOld || r == RegimeNew
}

// AgeBracket is the taxpayer's age category. It is carried through the
// computation for reporting but does not currently alter slab selection.
type AgeBracket string

const (
	AgeBelow60 AgeBracket = "below60"
	Age60To80  AgeBracket = "60to80"
	AgeAbove80 AgeBracket = "above80"
)

// IsValid reports whether the age bracket is a known category.
func (a AgeBracket) IsValid() bool {
	return a == AgeBelow60 || a == Age60To80 || a == AgeAbove80
}

// TaxDeductions holds the statutory deduction amounts claimed under the old
// regime. All amounts are annual rupee figures.
type TaxDeductions struct {
	Section80C        decimal.Decimal `yaml:"section80C" json:"section80C"`               // PPF, ELSS, LIC, etc.
	Section80D        decimal.Decimal `yaml:"section80D" json:"section80D"`               // Health insurance premiums
	Section80G        decimal.Decimal `yaml:"section80G" json:"section80G"`               // Donations
	HRA               decimal.Decimal `yaml:"hra" json:"hra"`                             // House Rent Allowance
	LTA               decimal.Decimal `yaml:"lta" json:"lta"`                             // Leave Travel Allowance
	StandardDeduction decimal.Decimal `yaml:"standardDeduction" json:"standardDeduction"` // Defaults to 50,000 when zero
	HomeLoanInterest  decimal.Decimal `yaml:"homeLoanInterest" json:"homeLoanInterest"`   // Section 24, capped at 2,00,000
	NPS               decimal.Decimal `yaml:"nps" json:"nps"`                             // Section 80CCD(1B)
}

// TaxProfile is the input to the income tax engine.
type TaxProfile struct {
	GrossIncome decimal.Decimal `yaml:"grossIncome" json:"grossIncome"`
	Regime      Regime          `yaml:"regime" json:"regime"`
	Age         AgeBracket      `yaml:"age" json:"age"`
	Deductions  *TaxDeductions  `yaml:"deductions,omitempty" json:"deductions,omitempty"`
}

// TaxBracket is a single marginal slab. Max is nil for the open-ended top
// slab. TaxAmount is the rupee contribution of this slab within a specific
// computation's breakdown; it is zero in the static slab tables.
type TaxBracket struct {
	Min       decimal.Decimal  `json:"min"`
	Max       *decimal.Decimal `json:"max"`
	Rate      decimal.Decimal  `json:"rate"`
	TaxAmount decimal.Decimal  `json:"taxAmount"`
}

// TaxResult is the full liability computation for one profile under one
// regime. Produced fresh per call; never mutated afterwards.
type TaxResult struct {
	Regime          Regime          `json:"regime"`
	GrossIncome     decimal.Decimal `json:"grossIncome"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`
	TaxableIncome   decimal.Decimal `json:"taxableIncome"`
	TaxBeforeRebate decimal.Decimal `json:"taxBeforeRebate"`
	Rebate          decimal.Decimal `json:"rebate"` // Section 87A
	Surcharge       decimal.Decimal `json:"surcharge"`
	Cess            decimal.Decimal `json:"cess"` // 4% health and education cess
	TotalTax        decimal.Decimal `json:"totalTax"`
	EffectiveRate   decimal.Decimal `json:"effectiveRate"`
	TakeHome        decimal.Decimal `json:"takeHome"`
	Breakdown       []TaxBracket    `json:"breakdown"`
}

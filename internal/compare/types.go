package compare

import (
	"github.com/policywave/policywave/internal/domain"
	"github.com/shopspring/decimal"
)

// RegimeComparison holds the same income profile computed under both
// regimes, the recommended regime, and the absolute tax difference.
type RegimeComparison struct {
	OldRegime      domain.TaxResult `json:"oldRegime"`
	NewRegime      domain.TaxResult `json:"newRegime"`
	Recommendation domain.Regime    `json:"recommendation"`
	Savings        decimal.Decimal  `json:"savings"`
}

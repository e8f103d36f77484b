package compare

import (
	"encoding/csv"
	"strings"

	"github.com/policywave/policywave/internal/domain"
)

// CSVFormatter formats a regime comparison as CSV, one row per regime.
type CSVFormatter struct{}

// Format generates CSV output for a regime comparison.
func (cf *CSVFormatter) Format(comparison *RegimeComparison) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Regime",
		"Gross Income",
		"Total Deductions",
		"Taxable Income",
		"Tax Before Rebate",
		"Rebate",
		"Surcharge",
		"Cess",
		"Total Tax",
		"Effective Rate (%)",
		"Take Home",
		"Recommended",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for _, result := range []domain.TaxResult{comparison.OldRegime, comparison.NewRegime} {
		if err := writer.Write(cf.formatRow(result, comparison.Recommendation)); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats one regime's result as a CSV row.
func (cf *CSVFormatter) formatRow(result domain.TaxResult, recommended domain.Regime) []string {
	isRecommended := "no"
	if result.Regime == recommended {
		isRecommended = "yes"
	}
	return []string{
		string(result.Regime),
		result.GrossIncome.StringFixed(2),
		result.TotalDeductions.StringFixed(2),
		result.TaxableIncome.StringFixed(2),
		result.TaxBeforeRebate.StringFixed(2),
		result.Rebate.StringFixed(2),
		result.Surcharge.StringFixed(2),
		result.Cess.StringFixed(2),
		result.TotalTax.StringFixed(2),
		result.EffectiveRate.StringFixed(2),
		result.TakeHome.StringFixed(2),
		isRecommended,
	}
}

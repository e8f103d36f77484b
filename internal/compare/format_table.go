package compare

import (
	"fmt"
	"strings"

	"github.com/policywave/policywave/internal/domain"
	"github.com/shopspring/decimal"
)

// TableFormatter formats a regime comparison as a console table.
type TableFormatter struct{}

// Format generates a side-by-side table of both regimes.
func (tf *TableFormatter) Format(comparison *RegimeComparison) string {
	var sb strings.Builder

	sb.WriteString("INCOME TAX REGIME COMPARISON (FY 2025-26)\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	sb.WriteString(fmt.Sprintf("Gross Income: %s\n", FormatRupees(comparison.OldRegime.GrossIncome)))
	sb.WriteString("\n")

	labelWidth := 20
	numWidth := 18

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s\n",
		labelWidth, "Metric",
		numWidth, "Old Regime",
		numWidth, "New Regime"))
	sb.WriteString(strings.Repeat("-", 72) + "\n")

	rows := []struct {
		label     string
		oldRegime decimal.Decimal
		newRegime decimal.Decimal
	}{
		{"Total Deductions", comparison.OldRegime.TotalDeductions, comparison.NewRegime.TotalDeductions},
		{"Taxable Income", comparison.OldRegime.TaxableIncome, comparison.NewRegime.TaxableIncome},
		{"Tax Before Rebate", comparison.OldRegime.TaxBeforeRebate, comparison.NewRegime.TaxBeforeRebate},
		{"Rebate (87A)", comparison.OldRegime.Rebate, comparison.NewRegime.Rebate},
		{"Surcharge", comparison.OldRegime.Surcharge, comparison.NewRegime.Surcharge},
		{"Cess (4%)", comparison.OldRegime.Cess, comparison.NewRegime.Cess},
		{"Total Tax", comparison.OldRegime.TotalTax, comparison.NewRegime.TotalTax},
		{"Take Home", comparison.OldRegime.TakeHome, comparison.NewRegime.TakeHome},
	}
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("%-*s %*s %*s\n",
			labelWidth, row.label,
			numWidth, FormatRupees(row.oldRegime),
			numWidth, FormatRupees(row.newRegime)))
	}
	sb.WriteString(fmt.Sprintf("%-*s %*s %*s\n",
		labelWidth, "Effective Rate",
		numWidth, comparison.OldRegime.EffectiveRate.StringFixed(2)+"%",
		numWidth, comparison.NewRegime.EffectiveRate.StringFixed(2)+"%"))

	sb.WriteString(strings.Repeat("=", 72) + "\n")

	sb.WriteString("\nSLAB BREAKDOWN\n")
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	tf.writeBreakdown(&sb, "Old Regime", comparison.OldRegime.Breakdown)
	tf.writeBreakdown(&sb, "New Regime", comparison.NewRegime.Breakdown)

	sb.WriteString("\nRECOMMENDATION\n")
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	if comparison.Savings.IsZero() {
		sb.WriteString("Both regimes produce the same liability; the new regime is the simpler default.\n")
	} else {
		sb.WriteString(fmt.Sprintf("The %s regime saves %s for this profile.\n",
			comparison.Recommendation, FormatRupees(comparison.Savings)))
	}

	return sb.String()
}

// writeBreakdown writes one regime's engaged slabs.
func (tf *TableFormatter) writeBreakdown(sb *strings.Builder, title string, breakdown []domain.TaxBracket) {
	sb.WriteString(fmt.Sprintf("\n%s:\n", title))
	if len(breakdown) == 0 {
		sb.WriteString("  (no taxable income)\n")
		return
	}
	for _, b := range breakdown {
		upper := "and above"
		if b.Max != nil {
			upper = "- " + FormatRupees(*b.Max)
		}
		sb.WriteString(fmt.Sprintf("  %s %s @ %s%%: %s\n",
			FormatRupees(b.Min), upper, b.Rate.StringFixed(0), FormatRupees(b.TaxAmount)))
	}
}

// FormatRupees renders a rupee amount with Indian digit grouping
// (last three digits, then groups of two).
func FormatRupees(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	digits := amount.Abs().Round(0).String()

	var grouped string
	if len(digits) <= 3 {
		grouped = digits
	} else {
		grouped = digits[len(digits)-3:]
		rest := digits[:len(digits)-3]
		for len(rest) > 2 {
			grouped = rest[len(rest)-2:] + "," + grouped
			rest = rest[:len(rest)-2]
		}
		grouped = rest + "," + grouped
	}

	if negative {
		return "-₹" + grouped
	}
	return "₹" + grouped
}

// Package output renders engine results for the CLI in console, JSON, and
// CSV forms.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/policywave/policywave/internal/compare"
	"github.com/policywave/policywave/internal/domain"
)

// ReportGenerator handles report generation in various formats.
type ReportGenerator struct {
	writer io.Writer
}

// NewReportGenerator creates a report generator writing to w. A nil writer
// means stdout.
func NewReportGenerator(w io.Writer) *ReportGenerator {
	if w == nil {
		w = os.Stdout
	}
	return &ReportGenerator{writer: w}
}

// WriteTaxReport renders a single-regime tax result in the specified format.
func (rg *ReportGenerator) WriteTaxReport(result *domain.TaxResult, format string) error {
	switch format {
	case "console", "table":
		return rg.writeTaxConsole(result)
	case "json":
		return rg.writeJSON(result)
	case "csv":
		return rg.writeTaxCSV(result)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// WriteComparisonReport renders an old-vs-new regime comparison in the
// specified format.
func (rg *ReportGenerator) WriteComparisonReport(comparison *compare.RegimeComparison, format string) error {
	var (
		rendered string
		err      error
	)
	switch format {
	case "console", "table":
		formatter := &compare.TableFormatter{}
		rendered = formatter.Format(comparison)
	case "json":
		formatter := &compare.JSONFormatter{Pretty: true}
		rendered, err = formatter.Format(comparison)
	case "csv":
		formatter := &compare.CSVFormatter{}
		rendered, err = formatter.Format(comparison)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return fmt.Errorf("failed to format comparison: %w", err)
	}
	_, err = fmt.Fprintln(rg.writer, rendered)
	return err
}

func (rg *ReportGenerator) writeTaxConsole(result *domain.TaxResult) error {
	w := rg.writer

	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "INCOME TAX COMPUTATION (%s REGIME)\n", strings.ToUpper(string(result.Regime)))
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Gross Income:      %s\n", compare.FormatRupees(result.GrossIncome))
	fmt.Fprintf(w, "Total Deductions:  %s\n", compare.FormatRupees(result.TotalDeductions))
	fmt.Fprintf(w, "Taxable Income:    %s\n", compare.FormatRupees(result.TaxableIncome))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "SLAB BREAKDOWN:")
	for _, bracket := range result.Breakdown {
		upper := "and above"
		if bracket.Max != nil {
			upper = "to " + compare.FormatRupees(*bracket.Max)
		}
		fmt.Fprintf(w, "  %s %s @ %s%%: %s\n",
			compare.FormatRupees(bracket.Min), upper,
			bracket.Rate.StringFixed(0), compare.FormatRupees(bracket.TaxAmount))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Tax Before Rebate: %s\n", compare.FormatRupees(result.TaxBeforeRebate))
	fmt.Fprintf(w, "Rebate (87A):      %s\n", compare.FormatRupees(result.Rebate))
	fmt.Fprintf(w, "Surcharge:         %s\n", compare.FormatRupees(result.Surcharge))
	fmt.Fprintf(w, "Health & Edu Cess: %s\n", compare.FormatRupees(result.Cess))
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintf(w, "TOTAL TAX:         %s\n", compare.FormatRupees(result.TotalTax))
	fmt.Fprintf(w, "Effective Rate:    %s%%\n", result.EffectiveRate.StringFixed(2))
	fmt.Fprintf(w, "Take-Home Income:  %s\n", compare.FormatRupees(result.TakeHome))

	return nil
}

func (rg *ReportGenerator) writeTaxCSV(result *domain.TaxResult) error {
	writer := csv.NewWriter(rg.writer)

	header := []string{
		"Regime", "GrossIncome", "TotalDeductions", "TaxableIncome",
		"TaxBeforeRebate", "Rebate", "Surcharge", "Cess",
		"TotalTax", "EffectiveRate", "TakeHome",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	row := []string{
		string(result.Regime),
		result.GrossIncome.String(),
		result.TotalDeductions.String(),
		result.TaxableIncome.String(),
		result.TaxBeforeRebate.String(),
		result.Rebate.String(),
		result.Surcharge.String(),
		result.Cess.String(),
		result.TotalTax.String(),
		result.EffectiveRate.String(),
		result.TakeHome.String(),
	}
	if err := writer.Write(row); err != nil {
		return err
	}

	writer.Flush()
	return writer.Error()
}

func (rg *ReportGenerator) writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(rg.writer, string(data))
	return err
}

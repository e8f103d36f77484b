package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/policywave/policywave/internal/domain"
)

// WriteSimulationReport renders a structured simulation report in the
// specified format.
func (rg *ReportGenerator) WriteSimulationReport(output *domain.SimulationOutput, format string) error {
	switch format {
	case "console", "table":
		return rg.writeSimulationConsole(output)
	case "json":
		return rg.writeJSON(output)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func (rg *ReportGenerator) writeSimulationConsole(output *domain.SimulationOutput) error {
	w := rg.writer

	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w, "POLICY SIMULATION REPORT")
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "BRIEF SUMMARY")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	writeBulletSection(w, "Key Impacts", output.BriefSummary.KeyImpacts)
	writeBulletSection(w, "Who Benefits", output.BriefSummary.WhoBenefits)
	writeBulletSection(w, "Who Is Affected", output.BriefSummary.WhoIsAffected)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "DETAILED ANALYSIS")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	writeBulletSection(w, "Trade-Offs", output.DetailedAnalysis.TradeOffs)
	writeBulletSection(w, "Assumptions", output.DetailedAnalysis.Assumptions)
	writeBulletSection(w, "Risk Zones", output.DetailedAnalysis.RiskZones)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "EXTENDED REPORT")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	if output.ExtendedReport.ExpandedReasoning != "" {
		fmt.Fprintln(w, output.ExtendedReport.ExpandedReasoning)
		fmt.Fprintln(w)
	}
	writeBulletSection(w, "Source Categories", output.ExtendedReport.SourceCategories)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Confidence: %s\n", output.ConfidenceLevel)
	if output.ConfidenceExplanation != "" {
		fmt.Fprintf(w, "  %s\n", output.ConfidenceExplanation)
	}

	return nil
}

func writeBulletSection(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
}

package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/policywave/policywave/internal/agent"
	"github.com/policywave/policywave/internal/calculation"
	"github.com/policywave/policywave/internal/compare"
	"github.com/policywave/policywave/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *domain.TaxResult {
	result := calculation.CalculateIncomeTax(domain.TaxProfile{
		GrossIncome: decimal.NewFromInt(1200000),
		Regime:      domain.RegimeNew,
		Age:         domain.AgeBelow60,
	})
	return &result
}

func TestWriteTaxReportConsole(t *testing.T) {
	var buf bytes.Buffer
	rg := NewReportGenerator(&buf)

	require.NoError(t, rg.WriteTaxReport(sampleResult(), "console"))

	out := buf.String()
	assert.Contains(t, out, "INCOME TAX COMPUTATION (NEW REGIME)")
	assert.Contains(t, out, "Gross Income:      ₹12,00,000")
	assert.Contains(t, out, "SLAB BREAKDOWN:")
	assert.Contains(t, out, "TOTAL TAX:         ₹81,900")
	assert.Contains(t, out, "Effective Rate:    6.83%")
	assert.Contains(t, out, "Take-Home Income:  ₹11,18,100")
}

func TestWriteTaxReportJSON(t *testing.T) {
	var buf bytes.Buffer
	rg := NewReportGenerator(&buf)

	require.NoError(t, rg.WriteTaxReport(sampleResult(), "json"))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "new", decoded["regime"])
	assert.Equal(t, "81900", decoded["totalTax"])
}

func TestWriteTaxReportCSV(t *testing.T) {
	var buf bytes.Buffer
	rg := NewReportGenerator(&buf)

	require.NoError(t, rg.WriteTaxReport(sampleResult(), "csv"))

	out := buf.String()
	assert.Contains(t, out, "Regime,GrossIncome")
	assert.Contains(t, out, "new,1200000")
	assert.Contains(t, out, ",81900,")
}

func TestWriteTaxReportUnsupportedFormat(t *testing.T) {
	rg := NewReportGenerator(&bytes.Buffer{})

	err := rg.WriteTaxReport(sampleResult(), "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestWriteComparisonReport(t *testing.T) {
	comparison := compare.CompareRegimes(decimal.NewFromInt(1200000), nil, domain.AgeBelow60)

	for _, format := range []string{"console", "json", "csv"} {
		var buf bytes.Buffer
		rg := NewReportGenerator(&buf)
		require.NoError(t, rg.WriteComparisonReport(&comparison, format), "format %s", format)
		assert.NotEmpty(t, buf.String(), "format %s", format)
	}
}

func TestWriteSimulationReportConsole(t *testing.T) {
	output := agent.MinimalExtractor{}.Extract("Simulated impact suggests broader insurance coverage.")

	var buf bytes.Buffer
	rg := NewReportGenerator(&buf)
	require.NoError(t, rg.WriteSimulationReport(&output, "console"))

	out := buf.String()
	assert.Contains(t, out, "POLICY SIMULATION REPORT")
	assert.Contains(t, out, "BRIEF SUMMARY")
	assert.Contains(t, out, "- Simulated impact suggests broader insurance coverage.")
	assert.Contains(t, out, "Confidence: medium")
}

func TestWriteSimulationReportJSON(t *testing.T) {
	output := agent.MinimalExtractor{}.Extract("answer")

	var buf bytes.Buffer
	rg := NewReportGenerator(&buf)
	require.NoError(t, rg.WriteSimulationReport(&output, "json"))

	var decoded domain.SimulationOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, []string{"answer"}, decoded.BriefSummary.KeyImpacts)
}

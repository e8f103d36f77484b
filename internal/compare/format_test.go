package compare

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/policywave/policywave/internal/domain"
	"github.com/shopspring/decimal"
)

func sampleComparison() *RegimeComparison {
	comparison := CompareRegimes(decimal.NewFromInt(1200000), &domain.TaxDeductions{
		Section80C: decimal.NewFromInt(150000),
		HRA:        decimal.NewFromInt(120000),
	}, domain.AgeBelow60)
	return &comparison
}

func TestTableFormatter_Format(t *testing.T) {
	formatter := &TableFormatter{}

	result := formatter.Format(sampleComparison())

	if result == "" {
		t.Fatal("Expected formatted output, got empty string")
	}

	if !contains(result, "INCOME TAX REGIME COMPARISON") {
		t.Error("Expected header in output")
	}
	if !contains(result, "Old Regime") || !contains(result, "New Regime") {
		t.Error("Expected both regime columns")
	}
	if !contains(result, "SLAB BREAKDOWN") {
		t.Error("Expected slab breakdown section")
	}
	if !contains(result, "RECOMMENDATION") {
		t.Error("Expected recommendation section")
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	formatter := &JSONFormatter{Pretty: true}

	result, err := formatter.Format(sampleComparison())
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(result), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}

	for _, key := range []string{"oldRegime", "newRegime", "recommendation", "savings"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("Expected key %q in JSON output", key)
		}
	}
}

func TestCSVFormatter_Format(t *testing.T) {
	formatter := &CSVFormatter{}

	result, err := formatter.Format(sampleComparison())
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(result), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header plus two regime rows, got %d lines", len(lines))
	}
	if !contains(lines[1], "old") {
		t.Error("Expected old regime row")
	}
	if !contains(lines[2], "new") {
		t.Error("Expected new regime row")
	}
}

func TestFormatRupees(t *testing.T) {
	cases := []struct {
		amount   int64
		expected string
	}{
		{0, "₹0"},
		{999, "₹999"},
		{1000, "₹1,000"},
		{81900, "₹81,900"},
		{1200000, "₹12,00,000"},
		{50000000, "₹5,00,00,000"},
		{-81900, "-₹81,900"},
	}

	for _, tc := range cases {
		got := FormatRupees(decimal.NewFromInt(tc.amount))
		if got != tc.expected {
			t.Errorf("FormatRupees(%d) = %s, expected %s", tc.amount, got, tc.expected)
		}
	}
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

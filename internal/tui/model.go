// Package tui is an interactive income tax calculator. Deduction fields are
// edited in place and the old-vs-new regime comparison refreshes on every
// keystroke.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/policywave/policywave/internal/compare"
	"github.com/policywave/policywave/internal/domain"
)

// field indices into Model.inputs.
const (
	fieldGrossIncome = iota
	fieldSection80C
	fieldSection80D
	fieldHRA
	fieldHomeLoanInterest
	fieldNPS
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Gross Income",
	"Section 80C",
	"Section 80D",
	"HRA",
	"Home Loan Interest",
	"NPS 80CCD(1B)",
}

// Model is the application state.
type Model struct {
	inputs  [fieldCount]textinput.Model
	focused int

	comparison *compare.RegimeComparison
	inputErr   string

	width  int
	height int
}

// NewModel creates the calculator with an empty profile.
func NewModel() Model {
	var m Model
	for i := range m.inputs {
		input := textinput.New()
		input.Placeholder = "0"
		input.CharLimit = 12
		input.Width = 14
		m.inputs[i] = input
	}
	m.inputs[fieldGrossIncome].Focus()
	m.width = 80
	m.height = 24
	m.recalculate()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// recalculate parses the current field values and refreshes the comparison.
// A malformed field freezes the previous result and surfaces the error.
func (m *Model) recalculate() {
	gross, err := parseAmount(m.inputs[fieldGrossIncome].Value())
	if err != nil {
		m.inputErr = "gross income: " + err.Error()
		return
	}

	deductions := &domain.TaxDeductions{}
	fields := []struct {
		index int
		dst   *decimal.Decimal
	}{
		{fieldSection80C, &deductions.Section80C},
		{fieldSection80D, &deductions.Section80D},
		{fieldHRA, &deductions.HRA},
		{fieldHomeLoanInterest, &deductions.HomeLoanInterest},
		{fieldNPS, &deductions.NPS},
	}
	for _, f := range fields {
		amount, err := parseAmount(m.inputs[f.index].Value())
		if err != nil {
			m.inputErr = fieldLabels[f.index] + ": " + err.Error()
			return
		}
		*f.dst = amount
	}

	comparison := compare.CompareRegimes(gross, deductions, domain.AgeBelow60)
	m.comparison = &comparison
	m.inputErr = ""
}

// parseAmount reads a rupee amount from a text field. Empty means zero;
// negative amounts are rejected.
func parseAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, errNotANumber
	}
	if amount.IsNegative() {
		return decimal.Zero, errNegativeAmount
	}
	return amount, nil
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/policywave/policywave/internal/compare"
	"github.com/policywave/policywave/internal/domain"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("PolicyWave Tax Calculator (FY 2025-26)"))
	b.WriteString("\n")

	form := m.renderForm()
	results := m.renderResults()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, form, "  ", results))

	if m.inputErr != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("! " + m.inputErr))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab/↓ next field • shift+tab/↑ previous • esc quit"))
	return b.String()
}

func (m Model) renderForm() string {
	var rows []string
	for i := range m.inputs {
		label := labelStyle
		if i == m.focused {
			label = focusedLabelStyle
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center,
			label.Render(fieldLabels[i]), m.inputs[i].View()))
	}
	return panelStyle.Render(strings.Join(rows, "\n"))
}

func (m Model) renderResults() string {
	if m.comparison == nil {
		return panelStyle.Render("Enter a gross income to begin.")
	}
	c := m.comparison

	var b strings.Builder
	b.WriteString(tableHeaderStyle.Render(fmt.Sprintf("%-18s %14s %14s", "", "Old Regime", "New Regime")))
	b.WriteString("\n")

	rows := []struct {
		label     string
		oldRegime string
		newRegime string
	}{
		{"Taxable Income", compare.FormatRupees(c.OldRegime.TaxableIncome), compare.FormatRupees(c.NewRegime.TaxableIncome)},
		{"Total Tax", compare.FormatRupees(c.OldRegime.TotalTax), compare.FormatRupees(c.NewRegime.TotalTax)},
		{"Effective Rate", c.OldRegime.EffectiveRate.StringFixed(2) + "%", c.NewRegime.EffectiveRate.StringFixed(2) + "%"},
		{"Take-Home", compare.FormatRupees(c.OldRegime.TakeHome), compare.FormatRupees(c.NewRegime.TakeHome)},
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%-18s %14s %14s\n", row.label, row.oldRegime, row.newRegime))
	}

	b.WriteString("\n")
	recommended := "New regime"
	if c.Recommendation == domain.RegimeOld {
		recommended = "Old regime"
	}
	b.WriteString(recommendStyle.Render(fmt.Sprintf("%s saves %s", recommended, compare.FormatRupees(c.Savings))))

	return panelStyle.Render(b.String())
}

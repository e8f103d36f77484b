package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/policywave/policywave/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTaxProfile(t *testing.T) {
	path := writeTempFile(t, `
grossIncome: 1200000
regime: old
age: below60
deductions:
  section80C: 150000
  hra: 240000
`)

	parser := NewInputParser()
	profile, err := parser.LoadTaxProfile(path)
	require.NoError(t, err)

	assert.True(t, profile.GrossIncome.Equal(decimal.NewFromInt(1200000)))
	assert.Equal(t, domain.RegimeOld, profile.Regime)
	require.NotNil(t, profile.Deductions)
	assert.True(t, profile.Deductions.Section80C.Equal(decimal.NewFromInt(150000)))
	assert.True(t, profile.Deductions.HRA.Equal(decimal.NewFromInt(240000)))
}

func TestLoadTaxProfileDefaults(t *testing.T) {
	path := writeTempFile(t, `grossIncome: 500000`)

	profile, err := NewInputParser().LoadTaxProfile(path)
	require.NoError(t, err)

	assert.Equal(t, domain.RegimeNew, profile.Regime, "regime defaults to new")
	assert.Equal(t, domain.AgeBelow60, profile.Age, "age defaults to below60")
	assert.Nil(t, profile.Deductions)
}

func TestLoadTaxProfileRejectsNegativeIncome(t *testing.T) {
	path := writeTempFile(t, `grossIncome: -1`)

	_, err := NewInputParser().LoadTaxProfile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gross income must be non-negative")
}

func TestLoadTaxProfileRejectsNegativeDeduction(t *testing.T) {
	path := writeTempFile(t, `
grossIncome: 1000000
regime: old
deductions:
  section80D: -5000
`)

	_, err := NewInputParser().LoadTaxProfile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "section80D")
}

func TestLoadTaxProfileRejectsUnknownRegime(t *testing.T) {
	path := writeTempFile(t, `
grossIncome: 1000000
regime: middle
`)

	_, err := NewInputParser().LoadTaxProfile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown regime")
}

func TestLoadTaxProfileRejectsUnknownAge(t *testing.T) {
	path := writeTempFile(t, `
grossIncome: 1000000
age: teenager
`)

	_, err := NewInputParser().LoadTaxProfile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown age bracket")
}

func TestLoadSimulationRequest(t *testing.T) {
	path := writeTempFile(t, `
mode: simulation
userRole: government
policyDomain: Taxation
userInput: Raise the basic exemption limit
parameters:
  timeframe: 5 years
`)

	request, err := NewInputParser().LoadSimulationRequest(path)
	require.NoError(t, err)

	assert.Equal(t, domain.ModeSimulation, request.Mode)
	assert.Equal(t, domain.RoleGovernment, request.UserRole)
	assert.Equal(t, "Taxation", request.PolicyDomain)
	assert.Equal(t, "5 years", request.Parameters["timeframe"])
}

func TestLoadSimulationRequestResolvesDomainSlug(t *testing.T) {
	path := writeTempFile(t, `
mode: explanation
userRole: citizen
policyDomain: social-welfare
userInput: How do pension schemes work?
`)

	request, err := NewInputParser().LoadSimulationRequest(path)
	require.NoError(t, err)
	assert.Equal(t, "Social Welfare", request.PolicyDomain, "catalog slug resolves to display name")
}

func TestLoadSimulationRequestRejectsUnknownMode(t *testing.T) {
	path := writeTempFile(t, `
mode: prophecy
policyDomain: Healthcare
userInput: question
`)

	_, err := NewInputParser().LoadSimulationRequest(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}

func TestLoadSimulationRequestRequiresInput(t *testing.T) {
	path := writeTempFile(t, `
mode: explanation
userRole: citizen
policyDomain: Healthcare
`)

	_, err := NewInputParser().LoadSimulationRequest(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user input is required")
}

func TestLoadAgentConfig(t *testing.T) {
	path := writeTempFile(t, `
apiKey: secret-key
baseUrl: https://example.test/chat/v1
endpointId: custom-endpoint
timeoutSeconds: 30
`)

	cfg, err := NewInputParser().LoadAgentConfig(path)
	require.NoError(t, err)

	clientCfg := cfg.ClientConfig()
	assert.Equal(t, "secret-key", clientCfg.APIKey)
	assert.Equal(t, "https://example.test/chat/v1", clientCfg.BaseURL)
	assert.Equal(t, "custom-endpoint", clientCfg.EndpointID)
	assert.Equal(t, 30*time.Second, clientCfg.Timeout)
}

func TestLoadAgentConfigRejectsNegativeTimeout(t *testing.T) {
	path := writeTempFile(t, `
apiKey: k
timeoutSeconds: -5
`)

	_, err := NewInputParser().LoadAgentConfig(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	parser := NewInputParser()

	_, err := parser.LoadTaxProfile("/nonexistent/profile.yaml")
	assert.Error(t, err)

	_, err = parser.LoadSimulationRequest("/nonexistent/request.yaml")
	assert.Error(t, err)
}

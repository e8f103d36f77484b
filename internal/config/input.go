// Package config loads and validates the YAML inputs the CLI accepts: tax
// profiles, simulation requests, and agent configuration. Contract checks
// live here at the boundary; the engines assume validated input.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/policywave/policywave/internal/domain"
	"github.com/policywave/policywave/internal/ondemand"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadTaxProfile loads a tax profile from a YAML file.
func (ip *InputParser) LoadTaxProfile(filename string) (*domain.TaxProfile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var profile domain.TaxProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateTaxProfile(&profile); err != nil {
		return nil, fmt.Errorf("tax profile validation failed: %w", err)
	}

	return &profile, nil
}

// ValidateTaxProfile enforces the engine's caller contract.
func (ip *InputParser) ValidateTaxProfile(profile *domain.TaxProfile) error {
	if profile.GrossIncome.LessThan(decimal.Zero) {
		return fmt.Errorf("gross income must be non-negative, got %s", profile.GrossIncome.String())
	}
	if profile.Regime == "" {
		profile.Regime = domain.RegimeNew
	}
	if !profile.Regime.IsValid() {
		return fmt.Errorf("unknown regime %q (expected old or new)", profile.Regime)
	}
	if profile.Age == "" {
		profile.Age = domain.AgeBelow60
	}
	if !profile.Age.IsValid() {
		return fmt.Errorf("unknown age bracket %q (expected below60, 60to80, or above80)", profile.Age)
	}
	if profile.Deductions != nil {
		if err := ip.validateDeductions(profile.Deductions); err != nil {
			return err
		}
	}
	return nil
}

// validateDeductions rejects negative amounts in any deduction category.
func (ip *InputParser) validateDeductions(d *domain.TaxDeductions) error {
	categories := []struct {
		name   string
		amount decimal.Decimal
	}{
		{"section80C", d.Section80C},
		{"section80D", d.Section80D},
		{"section80G", d.Section80G},
		{"hra", d.HRA},
		{"lta", d.LTA},
		{"standardDeduction", d.StandardDeduction},
		{"homeLoanInterest", d.HomeLoanInterest},
		{"nps", d.NPS},
	}
	for _, c := range categories {
		if c.amount.LessThan(decimal.Zero) {
			return fmt.Errorf("deduction %s must be non-negative, got %s", c.name, c.amount.String())
		}
	}
	return nil
}

// LoadSimulationRequest loads a simulation request from a YAML file.
func (ip *InputParser) LoadSimulationRequest(filename string) (*domain.SimulationRequest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var request domain.SimulationRequest
	if err := yaml.Unmarshal(data, &request); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateSimulationRequest(&request); err != nil {
		return nil, fmt.Errorf("simulation request validation failed: %w", err)
	}

	return &request, nil
}

// ValidateSimulationRequest enforces the agent's caller contract. A domain
// slug from the built-in catalog is resolved to its display name.
func (ip *InputParser) ValidateSimulationRequest(request *domain.SimulationRequest) error {
	if request.Mode == "" {
		request.Mode = domain.ModeSimulation
	}
	if !request.Mode.IsValid() {
		return fmt.Errorf("unknown mode %q (expected simulation or explanation)", request.Mode)
	}
	if request.UserRole == "" {
		request.UserRole = domain.RoleCitizen
	}
	if !request.UserRole.IsValid() {
		return fmt.Errorf("unknown role %q (expected government, citizen, or expert)", request.UserRole)
	}
	if request.PolicyDomain == "" {
		return fmt.Errorf("policy domain is required")
	}
	if request.UserInput == "" {
		return fmt.Errorf("user input is required")
	}
	if d, ok := domain.PolicyDomainBySlug(request.PolicyDomain); ok {
		request.PolicyDomain = d.Name
	}
	return nil
}

// AgentConfig is the on-disk agent configuration. Credentials are injected
// here rather than read from the process environment by the agent itself.
type AgentConfig struct {
	APIKey         string `yaml:"apiKey"`
	BaseURL        string `yaml:"baseUrl"`
	EndpointID     string `yaml:"endpointId"`
	TimeoutSeconds int    `yaml:"timeoutSeconds"`
}

// LoadAgentConfig loads agent configuration from a YAML file.
func (ip *InputParser) LoadAgentConfig(filename string) (*AgentConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var cfg AgentConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cfg.TimeoutSeconds < 0 {
		return nil, fmt.Errorf("timeoutSeconds must be non-negative, got %d", cfg.TimeoutSeconds)
	}

	return &cfg, nil
}

// ClientConfig converts the file form into the client's config.
func (ac *AgentConfig) ClientConfig() ondemand.Config {
	return ondemand.Config{
		APIKey:     ac.APIKey,
		BaseURL:    ac.BaseURL,
		EndpointID: ac.EndpointID,
		Timeout:    time.Duration(ac.TimeoutSeconds) * time.Second,
	}
}

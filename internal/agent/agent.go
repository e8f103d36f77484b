// Package agent orchestrates role-aware policy simulation requests against
// an external text-generation service: prompt construction, safety
// constraint injection, and prohibited-language validation of the output.
package agent

import (
	"context"

	"github.com/google/uuid"
	"github.com/policywave/policywave/internal/domain"
)

// QueryClient is the outbound call the agent depends on. A single
// synchronous query per simulation request; no retry, no batching.
type QueryClient interface {
	Query(ctx context.Context, query string, externalUserID string) (string, error)
}

// PolicyAgent is a stateless transform from SimulationRequest to
// SimulationOutput. Safe for concurrent use; every call constructs fresh
// local state only.
type PolicyAgent struct {
	client    QueryClient
	Extractor Extractor
	Logger    Logger
}

// NewPolicyAgent creates an agent around an injected query client, with the
// minimal extraction strategy and a no-op logger.
func NewPolicyAgent(client QueryClient) *PolicyAgent {
	return &PolicyAgent{
		client:    client,
		Extractor: MinimalExtractor{},
		Logger:    NopLogger{},
	}
}

// SetLogger replaces the agent's logger. Passing nil restores the no-op
// logger.
func (pa *PolicyAgent) SetLogger(logger Logger) {
	if logger == nil {
		pa.Logger = NopLogger{}
		return
	}
	pa.Logger = logger
}

// SetExtractor replaces the extraction strategy. Passing nil restores the
// minimal default.
func (pa *PolicyAgent) SetExtractor(extractor Extractor) {
	if extractor == nil {
		pa.Extractor = MinimalExtractor{}
		return
	}
	pa.Extractor = extractor
}

// RunSimulation executes one simulation or explanation request. It fails
// with *ValidationError when the synthesized report contains prohibited
// deterministic-outcome language, and propagates upstream call failures
// unchanged. On failure no output is returned.
func (pa *PolicyAgent) RunSimulation(ctx context.Context, request domain.SimulationRequest) (*domain.SimulationOutput, error) {
	systemPrompt := buildSystemPrompt(request.UserRole, request.Mode)

	userPrompt, err := buildUserPrompt(request)
	if err != nil {
		return nil, err
	}

	query := combineQuery(systemPrompt, SafetyConstraints(), userPrompt)

	externalUserID := request.UserID
	if externalUserID == "" {
		externalUserID = uuid.NewString()
	}

	pa.Logger.Debugf("policy agent query: mode=%s role=%s domain=%s length=%d",
		request.Mode, request.UserRole, request.PolicyDomain, len(query))

	answer, err := pa.client.Query(ctx, query, externalUserID)
	if err != nil {
		pa.Logger.Errorf("policy agent upstream failure: %v", err)
		return nil, err
	}

	output := pa.Extractor.Extract(answer)

	if err := validateLanguage(output); err != nil {
		pa.Logger.Warnf("policy agent output rejected: %v", err)
		return nil, err
	}

	pa.Logger.Infof("policy agent request complete: mode=%s role=%s", request.Mode, request.UserRole)
	return &output, nil
}

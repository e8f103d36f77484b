package agent

import (
	"github.com/policywave/policywave/internal/domain"
)

// Extractor turns a raw model answer into the fixed report shape. The
// default strategy is deliberately minimal; a structured-output parser can
// be substituted without touching the agent's contract.
type Extractor interface {
	Extract(answer string) domain.SimulationOutput
}

// MinimalExtractor is the minimal-viable extraction strategy: the answer is
// carried verbatim in the key impacts and expanded reasoning, every other
// structured field holds a fixed placeholder, and confidence is always
// medium. Known simplification, kept intentionally.
type MinimalExtractor struct{}

// Extract packages the answer into the report shape.
func (MinimalExtractor) Extract(answer string) domain.SimulationOutput {
	return domain.SimulationOutput{
		BriefSummary: domain.BriefSummary{
			KeyImpacts:    []string{answer},
			WhoBenefits:   []string{"Society (General)"},
			WhoIsAffected: []string{"General Population"},
		},
		DetailedAnalysis: domain.DetailedAnalysis{
			TradeOffs:   []string{"Cost vs Benefit"},
			Assumptions: []string{"Standard economic assumptions apply"},
			RiskZones:   []string{"Implementation challenges"},
		},
		ExtendedReport: domain.ExtendedReport{
			ExpandedReasoning:    answer,
			SourceCategories:     []string{"Policy Analysis Model"},
			VisualizableInsights: []map[string]any{},
		},
		ConfidenceLevel:       domain.ConfidenceMedium,
		ConfidenceExplanation: "",
	}
}

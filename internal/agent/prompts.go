package agent

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/policywave/policywave/internal/domain"
)

// basePrompt is the fixed instruction block every simulation call carries.
// Outputs must stay simulated, assumption-driven, and directional.
const basePrompt = `You are a policy simulation and explanation assistant for PolicyWave, a decision-support platform.

CRITICAL RULES:
- You provide simulated, assumption-driven, directional analysis ONLY
- You NEVER predict exact outcomes or make certainty claims
- You NEVER advocate for specific political positions
- You NEVER present outputs as objective truth
- You ALWAYS state assumptions explicitly
- You ALWAYS assign a confidence level (high/medium/low)
- You ALWAYS acknowledge unknowns and data limitations

PROHIBITED LANGUAGE:
- "Will happen"
- "Guaranteed outcome"
- "This policy will cause"
- "Definitely"
- "Certainly"

REQUIRED LANGUAGE:
- "May result in"
- "Could lead to"
- "Simulated impact suggests"
- "Based on stated assumptions"
- "Directional estimate"`

// rolePrompts are the role-specific addenda appended to the base prompt.
var rolePrompts = map[domain.UserRole]string{
	domain.RoleCitizen: `

CITIZEN MODE:
- Use simplified, layman language
- Focus on personal and societal impact
- Avoid technical jargon
- Explain concepts clearly
- No policy-authority framing`,

	domain.RoleGovernment: `

GOVERNMENT MODE:
- Use structured, analytical reasoning
- Highlight explicit trade-offs and risk zones
- Maintain neutral, professional tone
- Provide comprehensive analysis
- No prescriptive recommendations`,

	domain.RoleExpert: `

EXPERT MODE:
- Provide analytical depth
- Use explanatory framing for educational purposes
- Balance technical accuracy with clarity
- Support learning and analysis`,
}

// buildSystemPrompt combines the base policy with the role addendum.
func buildSystemPrompt(role domain.UserRole, mode domain.SimulationMode) string {
	return basePrompt + rolePrompts[role]
}

// buildUserPrompt renders the mode-specific instruction. Simulation requests
// carry the parameter map serialized verbatim when present.
func buildUserPrompt(request domain.SimulationRequest) (string, error) {
	if request.Mode == domain.ModeExplanation {
		return fmt.Sprintf(`Explain the following policy topic in clear terms:

Policy Domain: %s
Question: %s

Provide a clear explanation that helps the user understand the policy, its purpose, and potential impacts.`,
			request.PolicyDomain, request.UserInput), nil
	}

	params := ""
	if request.Parameters != nil {
		serialized, err := json.MarshalIndent(request.Parameters, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to serialize parameters: %w", err)
		}
		params = fmt.Sprintf("Parameters: %s\n", serialized)
	}

	return fmt.Sprintf(`Simulate the potential impacts of the following policy scenario:

Policy Domain: %s
Scenario: %s
%s
Provide a structured simulation output following the required format.`,
		request.PolicyDomain, request.UserInput, params), nil
}

// SafetyConstraints is the fixed list attached to every outbound call. It is
// advisory context for the model; enforcement happens in the post-hoc
// language guard.
func SafetyConstraints() []string {
	return []string{
		"Frame all outputs as simulations, not predictions",
		"State all assumptions explicitly",
		"Acknowledge uncertainty and data limitations",
		"Use directional language (may, could, suggests)",
		"Avoid deterministic claims",
		"No political advocacy",
		"No false authority",
	}
}

// combineQuery flattens the system prompt, constraints, and user prompt into
// the single query string the external service accepts.
func combineQuery(systemPrompt string, constraints []string, userPrompt string) string {
	var sb strings.Builder
	sb.WriteString(systemPrompt)
	if len(constraints) > 0 {
		sb.WriteString("\n\nSAFETY CONSTRAINTS:")
		for _, c := range constraints {
			sb.WriteString("\n- ")
			sb.WriteString(c)
		}
	}
	sb.WriteString("\n\nUser Query: ")
	sb.WriteString(userPrompt)
	return sb.String()
}

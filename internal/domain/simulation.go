package domain

// SimulationMode selects what the policy agent is asked to produce.
type SimulationMode string

const (
	ModeSimulation  SimulationMode = "simulation"
	ModeExplanation SimulationMode = "explanation"
)

// IsValid reports whether the mode is one of the known request modes.
func (m SimulationMode) IsValid() bool {
	return m == ModeSimulation || m == ModeExplanation
}

// UserRole identifies the audience a simulation is framed for. The role
// drives the depth and register of the generated analysis.
type UserRole string

const (
	RoleGovernment UserRole = "government"
	RoleCitizen    UserRole = "citizen"
	RoleExpert     UserRole = "expert"
)

// IsValid reports whether the role is a known audience role.
func (r UserRole) IsValid() bool {
	return r == RoleGovernment || r == RoleCitizen || r == RoleExpert
}

// ConfidenceLevel tags how much weight a simulation output should carry.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// SimulationRequest is a single policy simulation or explanation request.
// Parameters is an open-ended map (timeframe, scope, budget, ...) serialized
// verbatim into the prompt when present.
type SimulationRequest struct {
	Mode         SimulationMode `yaml:"mode" json:"mode"`
	UserRole     UserRole       `yaml:"userRole" json:"userRole"`
	PolicyDomain string         `yaml:"policyDomain" json:"policyDomain"`
	UserInput    string         `yaml:"userInput" json:"userInput"`
	UserID       string         `yaml:"userId,omitempty" json:"userId,omitempty"`
	Parameters   map[string]any `yaml:"parameters,omitempty" json:"parameters,omitempty"`
}

// BriefSummary is the top tier of a simulation report.
type BriefSummary struct {
	KeyImpacts    []string `json:"keyImpacts"`
	WhoBenefits   []string `json:"whoBenefits"`
	WhoIsAffected []string `json:"whoIsAffected"`
}

// DetailedAnalysis is the middle tier of a simulation report.
type DetailedAnalysis struct {
	TradeOffs   []string `json:"tradeOffs"`
	Assumptions []string `json:"assumptions"`
	RiskZones   []string `json:"riskZones"`
}

// ExtendedReport is the deepest tier of a simulation report.
// VisualizableInsights is an open list of chartable records.
type ExtendedReport struct {
	ExpandedReasoning    string           `json:"expandedReasoning"`
	SourceCategories     []string         `json:"sourceCategories"`
	VisualizableInsights []map[string]any `json:"visualizableInsights"`
}

// SimulationOutput is the fixed-shape structured report returned for every
// successful simulation request. It is either fully valid or not returned
// at all; construction fails when prohibited language is detected.
type SimulationOutput struct {
	BriefSummary          BriefSummary     `json:"briefSummary"`
	DetailedAnalysis      DetailedAnalysis `json:"detailedAnalysis"`
	ExtendedReport        ExtendedReport   `json:"extendedReport"`
	ConfidenceLevel       ConfidenceLevel  `json:"confidenceLevel"`
	ConfidenceExplanation string           `json:"confidenceExplanation"`
}

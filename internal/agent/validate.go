package agent

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/policywave/policywave/internal/domain"
)

// prohibitedPhrases are deterministic-outcome phrases a report may never
// contain, matched case-insensitively over the serialized output.
var prohibitedPhrases = []string{
	"will happen",
	"guaranteed",
	"definitely",
	"certainly",
	"will cause",
}

// ValidationError signals that a synthesized report contained prohibited
// language. The report is discarded entirely; the request is a hard failure
// and is not retried.
type ValidationError struct {
	Phrase string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("prohibited language detected: %q", e.Phrase)
}

// validateLanguage scans the serialized output for prohibited phrases.
func validateLanguage(output domain.SimulationOutput) error {
	serialized, err := json.Marshal(output)
	if err != nil {
		return fmt.Errorf("failed to serialize output for validation: %w", err)
	}

	text := strings.ToLower(string(serialized))
	for _, phrase := range prohibitedPhrases {
		if strings.Contains(text, phrase) {
			return &ValidationError{Phrase: phrase}
		}
	}
	return nil
}

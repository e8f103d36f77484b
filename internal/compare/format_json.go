package compare

import (
	"encoding/json"
)

// JSONFormatter formats a regime comparison as JSON.
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

// Format generates JSON output for a regime comparison.
func (jf *JSONFormatter) Format(comparison *RegimeComparison) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(comparison, "", "  ")
	} else {
		data, err = json.Marshal(comparison)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}

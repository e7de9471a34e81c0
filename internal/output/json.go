package output

import "encoding/json"

// JSONFormatter renders the full run results as indented JSON, suitable for
// downstream HR systems.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *RunResults) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}

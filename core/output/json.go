// Package output - JSON report
package output

import (
	"encoding/json"
	"io"

	"artquote/core/engine"
)

// JSONFormatter renders the result as indented JSON
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render writes the result
func (f *JSONFormatter) Render(w io.Writer, result *engine.QuoteResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

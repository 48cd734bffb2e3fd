// Package output renders quotation results for humans and machines.
// Formatters never compute costs; they only lay out an engine result.
package output

import (
	"io"

	"artquote/core/engine"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable terminal report
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes the quotation result
	Render(w io.Writer, result *engine.QuoteResult) error
}

// ForFormat returns the formatter for a format name, defaulting to CLI
func ForFormat(format string) Formatter {
	switch Format(format) {
	case FormatJSON:
		return &JSONFormatter{}
	case FormatMarkdown:
		return &MarkdownFormatter{}
	default:
		return &CLIFormatter{}
	}
}

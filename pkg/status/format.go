package status

import (
	"fmt"

	"github.com/fatih/color"
)

// Formatter renders results for the console
type Formatter interface {
	// FormatResult formats the status line of one result
	FormatResult(r Result) string

	// FormatDone formats the final line of a run
	FormatDone() string
}

// PlainFormatter renders lines with no decoration
type PlainFormatter struct{}

// NewPlainFormatter creates a new PlainFormatter
func NewPlainFormatter() *PlainFormatter {
	return &PlainFormatter{}
}

func (f *PlainFormatter) FormatResult(r Result) string {
	return r.String()
}

func (f *PlainFormatter) FormatDone() string {
	return DoneLine
}

// ColorFormatter colors the label of each line. The text is identical to
// PlainFormatter whenever color.NoColor is set, which fatih/color does on its
// own when stdout is not a terminal.
type ColorFormatter struct{}

// NewColorFormatter creates a new ColorFormatter
func NewColorFormatter() *ColorFormatter {
	return &ColorFormatter{}
}

func (f *ColorFormatter) FormatResult(r Result) string {
	var attr color.Attribute
	switch r.Status {
	case StatusUpdated:
		attr = color.FgGreen
	case StatusSkip:
		attr = color.FgYellow
	default:
		attr = color.Faint
	}
	return fmt.Sprintf("%s: %s", color.New(attr).Sprint(r.Status.String()), r.Path)
}

func (f *ColorFormatter) FormatDone() string {
	return color.New(color.Bold).Sprint(DoneLine)
}

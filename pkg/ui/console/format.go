package console

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/distfile/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format says whether messages are styled
type Format int

const (
	// FormatAuto detects the format from the output
	FormatAuto Format = iota
	// FormatTerminal renders style tags with colors
	FormatTerminal
	// FormatText strips style tags
	FormatText
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal", "always":
		return FormatTerminal, nil
	case "text", "plain", "never":
		return FormatText, nil
	default:
		return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s).
			WithDetail("value", s)
	}
}

// DetectFormat picks a format from the environment and terminal
// capabilities. Anything that is not a color terminal gets text.
func DetectFormat(output io.Writer) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	file, ok := output.(*os.File)
	if !ok {
		return FormatText
	}
	if !isatty.IsTerminal(file.Fd()) && !isatty.IsCygwinTerminal(file.Fd()) {
		return FormatText
	}

	if termenv.NewOutput(file).ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}

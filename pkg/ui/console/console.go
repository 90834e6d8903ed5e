package console

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/distfile/pkg/logging"
	"github.com/arthur-debert/distfile/pkg/ui/lipbalm"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
)

// Console is the terminal implementation of types.IO
type Console struct {
	in             *bufio.Reader
	out            io.Writer
	format         Format
	interactive    bool
	confirmDefault bool

	styles lipbalm.StyleMap
	logger zerolog.Logger
}

// Option configures a Console
type Option func(*Console)

// WithInput sets where answers are read from, stdin by default
func WithInput(r io.Reader) Option {
	return func(c *Console) {
		c.in = bufio.NewReader(r)
	}
}

// WithOutput sets where messages and questions go, stdout by default
func WithOutput(w io.Writer) Option {
	return func(c *Console) {
		c.out = w
	}
}

// WithFormat forces styled or plain output
func WithFormat(f Format) Option {
	return func(c *Console) {
		c.format = f
	}
}

// NonInteractive makes every question take its default without reading input
func NonInteractive() Option {
	return func(c *Console) {
		c.interactive = false
	}
}

// WithConfirmDefault sets the answer used for an empty or skipped confirmation
func WithConfirmDefault(v bool) Option {
	return func(c *Console) {
		c.confirmDefault = v
	}
}

// New creates a console on stdin/stdout unless told otherwise
func New(opts ...Option) *Console {
	c := &Console{
		in:             bufio.NewReader(os.Stdin),
		out:            os.Stdout,
		format:         FormatAuto,
		interactive:    true,
		confirmDefault: true,
		logger:         logging.GetLogger("console"),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.format == FormatAuto {
		c.format = DetectFormat(c.out)
	}
	if c.format == FormatTerminal {
		renderer := lipgloss.NewRenderer(c.out)
		if renderer.ColorProfile() == termenv.Ascii {
			renderer.SetColorProfile(termenv.ANSI256)
		}
		lipbalm.SetDefaultRenderer(renderer)
		c.styles = NewStyles(renderer)
	}
	return c
}

// NewStyles returns the message styles, built on renderer
func NewStyles(renderer *lipgloss.Renderer) lipbalm.StyleMap {
	return lipbalm.StyleMap{
		"info":     renderer.NewStyle().Foreground(lipgloss.Color("2")),
		"comment":  renderer.NewStyle().Foreground(lipgloss.Color("3")),
		"question": renderer.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")),
		"error":    renderer.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1")),
	}
}

// Interactive reports whether questions read from the input
func (c *Console) Interactive() bool {
	return c.interactive
}

// Format returns the resolved output format
func (c *Console) Format() Format {
	return c.format
}

func (c *Console) render(message string) string {
	if c.format != FormatTerminal {
		return lipbalm.StripTags(message)
	}
	out, err := lipbalm.ExpandTags(message, c.styles)
	if err != nil {
		return lipbalm.StripTags(message)
	}
	return out
}

// Write prints a message on its own line
func (c *Console) Write(message string) {
	fmt.Fprintln(c.out, c.render(message))
}

// Error prints a message styled as an error
func (c *Console) Error(message string) {
	c.Write("<error>" + lipbalm.Escape(message) + "</error>")
}

// AskConfirmation asks a yes/no question. Empty answers take the default;
// anything starting with y is a yes.
func (c *Console) AskConfirmation(question string) (bool, error) {
	if !c.interactive {
		c.logger.Debug().Str("question", question).Bool("answer", c.confirmDefault).Msg("confirmation skipped")
		return c.confirmDefault, nil
	}

	answer, err := c.prompt(question)
	if err != nil {
		return false, err
	}
	if answer == "" {
		return c.confirmDefault, nil
	}
	return strings.HasPrefix(strings.ToLower(answer), "y"), nil
}

// Ask asks a free-text question. Empty answers and closed input take def.
func (c *Console) Ask(question, def string) (string, error) {
	if !c.interactive {
		c.logger.Debug().Str("question", question).Msg("question answered with default")
		return def, nil
	}

	answer, err := c.prompt(question)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

func (c *Console) prompt(question string) (string, error) {
	fmt.Fprint(c.out, c.render("<question>"+lipbalm.Escape(strings.TrimSpace(question))+"</question>")+" ")

	line, err := c.in.ReadString('\n')
	if err != nil && !stderrors.Is(err, io.EOF) {
		return "", err
	}
	if err != nil && line == "" {
		// closed input leaves the prompt line open
		fmt.Fprintln(c.out)
	}
	return strings.TrimSpace(line), nil
}

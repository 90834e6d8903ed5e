package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

func newSyntaxCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "syntax",
		Short:   MsgSyntaxShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), renderMarkdown(MsgSyntaxGuide, cmd.OutOrStdout() == os.Stdout && isTerminal(os.Stdout)))
		},
	}
}

// renderMarkdown renders content with glamour, falling back to the raw
// markdown if rendering fails
func renderMarkdown(content string, tty bool) string {
	options := []glamour.TermRendererOption{glamour.WithWordWrap(80)}
	if tty {
		options = append(options, glamour.WithAutoStyle())
	} else {
		options = append(options, glamour.WithStylePath("notty"))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

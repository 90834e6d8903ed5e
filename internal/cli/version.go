package cli

import (
	"fmt"

	"github.com/arthur-debert/distfile/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersion, version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, MsgVersionCommit, version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, MsgVersionDate, version.Date)
			}
		},
	}
}

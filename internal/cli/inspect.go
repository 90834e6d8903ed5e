package cli

import (
	"fmt"

	"github.com/arthur-debert/distfile/pkg/errors"
	"github.com/arthur-debert/distfile/pkg/filesystem"
	"github.com/arthur-debert/distfile/pkg/template"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newInspectCmd(a *app) *cobra.Command {
	var envPairs []string

	cmd := &cobra.Command{
		Use:     "inspect DIST_FILE",
		Short:   MsgInspectShort,
		Long:    MsgInspectLong,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			envMap, err := parseEnvPairs(envPairs)
			if err != nil {
				return err
			}

			data, err := filesystem.NewOS().ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, errors.ErrFileRead, MsgErrReadDist, args[0]).
					WithDetail("dist-file", args[0])
			}

			placeholders := template.Scan(string(data))
			if len(placeholders) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), MsgNoPlaceholders)
				return nil
			}

			// nothing is asked, so no IO is needed
			resolver := template.New(nil, envMap)
			rows := pterm.TableData{{"Question", "Default", "Source"}}
			for _, p := range placeholders {
				value, source, _ := resolver.Default(p)
				rows = append(rows, []string{p.Prompt(value), value, source})
			}

			table, err := pterm.DefaultTable.WithHasHeader().WithData(rows).Srender()
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to render table")
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&envPairs, "env", nil, MsgFlagEnv)
	return cmd
}

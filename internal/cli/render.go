package cli

import (
	"fmt"

	"github.com/arthur-debert/distfile/pkg/errors"
	"github.com/arthur-debert/distfile/pkg/filesystem"
	"github.com/arthur-debert/distfile/pkg/template"
	"github.com/spf13/cobra"
)

func newRenderCmd(a *app) *cobra.Command {
	var envPairs []string

	cmd := &cobra.Command{
		Use:     "render DIST_FILE",
		Short:   MsgRenderShort,
		Example: MsgRenderExample,
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

			// questions go to stderr so stdout only carries the result
			io := a.newConsole(cmd, cmd.ErrOrStderr())
			out, err := template.New(io, envMap).Resolve(string(data))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&envPairs, "env", nil, MsgFlagEnv)
	return cmd
}

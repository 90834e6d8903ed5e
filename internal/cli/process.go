package cli

import (
	"strings"

	"github.com/arthur-debert/distfile/pkg/errors"
	"github.com/arthur-debert/distfile/pkg/handler"
	"github.com/arthur-debert/distfile/pkg/types"
	"github.com/spf13/cobra"
)

func newProcessCmd(a *app) *cobra.Command {
	var (
		distFile string
		typ      string
		envPairs []string
	)

	cmd := &cobra.Command{
		Use:     "process FILE",
		Short:   MsgProcessShort,
		Example: MsgProcessExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			envMap, err := parseEnvPairs(envPairs)
			if err != nil {
				return err
			}

			entry := types.ConfigEntry{
				File:     args[0],
				DistFile: distFile,
				Type:     typ,
				EnvMap:   envMap,
			}

			io := a.newConsole(cmd, cmd.OutOrStdout())
			results, err := handler.New(io).Run([]types.ConfigEntry{entry})
			if err != nil {
				return err
			}
			writeSummary(io, results)
			return nil
		},
	}

	cmd.Flags().StringVar(&distFile, "dist-file", "", MsgFlagDistFile)
	cmd.Flags().StringVar(&typ, "type", "", MsgFlagType)
	cmd.Flags().StringArrayVar(&envPairs, "env", nil, MsgFlagEnv)
	return cmd
}

// parseEnvPairs turns NAME=VARIABLE flags into an env-map
func parseEnvPairs(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	envMap := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, variable, ok := strings.Cut(pair, "=")
		name, variable = strings.TrimSpace(name), strings.TrimSpace(variable)
		if !ok || name == "" || variable == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, MsgErrEnvPair, pair).
				WithDetail("field", "env").
				WithDetail("value", pair)
		}
		envMap[name] = variable
	}
	return envMap, nil
}

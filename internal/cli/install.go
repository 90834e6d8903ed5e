package cli

import (
	"fmt"

	"github.com/arthur-debert/distfile/pkg/handler"
	"github.com/arthur-debert/distfile/pkg/types"
	"github.com/spf13/cobra"
)

func newInstallCmd(a *app) *cobra.Command {
	var manifest, key string

	cmd := &cobra.Command{
		Use:     "install",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadManifest(manifest)
			if err != nil {
				return err
			}

			key := a.extrasKey(key)
			io := a.newConsole(cmd, cmd.OutOrStdout())
			h := handler.New(io, handler.WithExtrasKey(key))

			results, err := h.Install(m.Extras(key))
			if err != nil {
				return err
			}
			writeSummary(io, results)
			return nil
		},
	}

	cmd.Flags().StringVar(&manifest, "manifest", "", MsgFlagManifest)
	cmd.Flags().StringVar(&key, "key", "", MsgFlagKey)
	return cmd
}

func writeSummary(io types.IO, results []types.Result) {
	if len(results) == 0 {
		io.Write(MsgNoEntries)
		return
	}
	written, skipped := 0, 0
	for _, r := range results {
		switch r.State {
		case types.StateWritten:
			written++
		case types.StateSkipped:
			skipped++
		}
	}
	io.Write(fmt.Sprintf(MsgSummary, written, skipped))
}

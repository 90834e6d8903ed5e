package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/arthur-debert/distfile/pkg/errors"
	"github.com/arthur-debert/distfile/pkg/handler"
	"github.com/arthur-debert/distfile/pkg/processor"
	"github.com/arthur-debert/distfile/pkg/types"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newListCmd(a *app) *cobra.Command {
	var manifest, key, format string

	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadManifest(manifest)
			if err != nil {
				return err
			}

			key := a.extrasKey(key)
			h := handler.New(nil, handler.WithExtrasKey(key))
			raw := m.Settings(key)
			if raw == nil {
				return errors.Newf(errors.ErrConfigMissing,
					"the parameter handler needs to be configured through the extra.%s setting", key).
					WithDetail("field", "extra."+key)
			}
			entries, err := h.Entries(raw)
			if err != nil {
				return err
			}

			out, err := marshalEntries(key, normalize(entries), format)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&manifest, "manifest", "", MsgFlagManifest)
	cmd.Flags().StringVar(&key, "key", "", MsgFlagKey)
	cmd.Flags().StringVar(&format, "format", "yaml", MsgFlagFormat)
	return cmd
}

// normalize fills in the dist file and the processor type of each entry
func normalize(entries []types.ConfigEntry) []types.ConfigEntry {
	out := make([]types.ConfigEntry, 0, len(entries))
	for _, e := range entries {
		e = e.WithDefaults()
		if e.Type == "" {
			e.Type = processor.DetectType(e.File)
		}
		e.Type = processor.Canonical(e.Type)
		out = append(out, e)
	}
	return out
}

func marshalEntries(key string, entries []types.ConfigEntry, format string) (string, error) {
	doc := map[string][]types.ConfigEntry{key: entries}

	switch strings.ToLower(format) {
	case "yaml", "yml":
		b, err := yaml.Marshal(doc)
		if err != nil {
			return "", errors.Wrap(err, errors.ErrInternal, "failed to encode yaml")
		}
		return string(b), nil
	case "toml":
		b, err := toml.Marshal(doc)
		if err != nil {
			return "", errors.Wrap(err, errors.ErrInternal, "failed to encode toml")
		}
		return string(b), nil
	case "json":
		b, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return "", errors.Wrap(err, errors.ErrInternal, "failed to encode json")
		}
		return string(b) + "\n", nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, MsgErrListFormat, format).
			WithDetail("field", "format").
			WithDetail("value", format)
	}
}

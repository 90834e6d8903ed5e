package config

import (
	"strings"

	"github.com/arthur-debert/distfile/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment variables that override settings
const EnvPrefix = "DISTFILE_"

// Delim separates koanf key paths. Question names in an env-map often
// contain dots, so the dot can't be used.
const Delim = "::"

// Settings key names, usable as override keys
const (
	KeyExtrasKey     = "extras_key"
	KeyManifests     = "manifests"
	KeyNoInteraction = "no_interaction"
	KeySkipExisting  = "skip_existing"
	KeyVerbosity     = "verbosity"
)

// Settings controls how distfile runs
type Settings struct {
	ExtrasKey     string   `koanf:"extras_key"`
	Manifests     []string `koanf:"manifests"`
	NoInteraction bool     `koanf:"no_interaction"`
	SkipExisting  bool     `koanf:"skip_existing"`
	Verbosity     int      `koanf:"verbosity"`
}

// LoadSettings layers the embedded defaults, DISTFILE_* environment
// variables and overrides, in that order. Override keys are the koanf tags
// of Settings; nil values are ignored.
func LoadSettings(overrides map[string]interface{}) (*Settings, error) {
	k := koanf.New(Delim)

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultSettings}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default settings")
	}

	// 2. Environment
	err := k.Load(env.Provider(EnvPrefix, Delim, func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load settings from environment")
	}

	// 3. Explicit overrides, usually command line flags
	if len(overrides) > 0 {
		clean := make(map[string]interface{}, len(overrides))
		for key, value := range overrides {
			if value != nil {
				clean[key] = value
			}
		}
		if err := k.Load(confmap.Provider(clean, Delim), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load settings overrides")
		}
	}

	var s Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &s, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigInvalid, "failed to decode settings")
	}

	if s.ExtrasKey == "" {
		return nil, errors.New(errors.ErrConfigInvalid, "the extras_key setting cannot be empty").
			WithDetail("field", KeyExtrasKey)
	}
	return &s, nil
}

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/distfile/pkg/errors"
	"github.com/arthur-debert/distfile/pkg/logging"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ExtraSection is the manifest section that holds installer settings
const ExtraSection = "extra"

// Manifest is a parsed project manifest, such as composer.json
type Manifest struct {
	Path string
	k    *koanf.Koanf
}

// parserFor picks a koanf parser from the file extension
func parserFor(path string) (koanf.Parser, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return json.Parser(), true
	case ".toml":
		return toml.Parser(), true
	case ".yaml", ".yml":
		return yaml.Parser(), true
	default:
		return nil, false
	}
}

// LoadManifest parses the manifest at path. JSON, TOML and YAML are
// supported, chosen by extension.
func LoadManifest(path string) (*Manifest, error) {
	parser, ok := parserFor(path)
	if !ok {
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported manifest format %q", filepath.Ext(path)).
			WithDetail("path", path)
	}

	k := koanf.New(Delim)
	if err := k.Load(file.Provider(path), parser); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "manifest %s does not exist", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load manifest from %s", path).
			WithDetail("path", path)
	}

	logger := logging.GetLogger("config")
	logger.Debug().Str("path", path).Msg("manifest loaded")
	return &Manifest{Path: path, k: k}, nil
}

// FindManifest returns the first candidate present in dir
func FindManifest(dir string, candidates []string) (string, error) {
	for _, name := range candidates {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", errors.Newf(errors.ErrConfigLoad, "no manifest found in %s (looked for %s)",
		dir, strings.Join(candidates, ", ")).
		WithDetail("dir", dir)
}

// Extras returns the map the settings key is read from. Composer-style
// manifests nest it under "extra"; otherwise the top level is used.
func (m *Manifest) Extras(key string) map[string]interface{} {
	if extra, ok := m.k.Get(ExtraSection).(map[string]interface{}); ok {
		if _, found := extra[key]; found {
			return extra
		}
	}
	return m.k.Raw()
}

// Settings returns the raw installer settings under key, or nil
func (m *Manifest) Settings(key string) interface{} {
	return m.Extras(key)[key]
}

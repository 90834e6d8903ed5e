package handler

import (
	"fmt"
	"sort"

	"github.com/arthur-debert/distfile/pkg/errors"
	"github.com/arthur-debert/distfile/pkg/filesystem"
	"github.com/arthur-debert/distfile/pkg/logging"
	"github.com/arthur-debert/distfile/pkg/processor"
	"github.com/arthur-debert/distfile/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
)

// DefaultExtrasKey is the settings key read from the manifest's extra section
const DefaultExtrasKey = "dist-installer-params"

// LookupFunc turns a processor type name into a factory
type LookupFunc func(name string) (types.ProcessorFactory, error)

// Handler dispatches every configured entry to its processor, in order
type Handler struct {
	io     types.IO
	fs     types.FS
	key    string
	lookup LookupFunc

	processors map[string]types.Processor
	logger     zerolog.Logger
}

// Option configures a Handler
type Option func(*Handler)

// WithFS sets the filesystem handed to processors
func WithFS(fs types.FS) Option {
	return func(h *Handler) {
		h.fs = fs
	}
}

// WithExtrasKey changes the settings key, DefaultExtrasKey otherwise
func WithExtrasKey(key string) Option {
	return func(h *Handler) {
		if key != "" {
			h.key = key
		}
	}
}

// WithProcessorLookup replaces the processor registry
func WithProcessorLookup(lookup LookupFunc) Option {
	return func(h *Handler) {
		h.lookup = lookup
	}
}

// New creates a handler talking to the user through io
func New(io types.IO, opts ...Option) *Handler {
	h := &Handler{
		io:         io,
		fs:         filesystem.NewOS(),
		key:        DefaultExtrasKey,
		lookup:     processor.Lookup,
		processors: make(map[string]types.Processor),
		logger:     logging.GetLogger("handler"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Key returns the settings key this handler reads
func (h *Handler) Key() string {
	return h.key
}

// Install reads the settings from extras and materializes every entry.
// All entries are decoded and their processors resolved before any file
// is touched; the first processing error stops the run.
func (h *Handler) Install(extras map[string]interface{}) ([]types.Result, error) {
	raw, ok := extras[h.key]
	if !ok || raw == nil {
		return nil, errors.Newf(errors.ErrConfigMissing,
			"the parameter handler needs to be configured through the extra.%s setting", h.key).
			WithDetail("field", "extra."+h.key)
	}

	entries, err := h.Entries(raw)
	if err != nil {
		return nil, err
	}
	return h.Run(entries)
}

// Entries normalizes a settings value into config entries. A mapping is a
// single entry, a sequence is a list of entries.
func (h *Handler) Entries(raw interface{}) ([]types.ConfigEntry, error) {
	var items []interface{}
	switch v := raw.(type) {
	case map[string]interface{}:
		items = []interface{}{v}
	case []interface{}:
		items = v
	case []map[string]interface{}:
		for _, m := range v {
			items = append(items, m)
		}
	default:
		return nil, errors.Newf(errors.ErrConfigShape,
			"the extra.%s setting must be an array or a configuration object", h.key).
			WithDetail("field", "extra."+h.key).
			WithDetail("value", fmt.Sprintf("%v", raw))
	}

	entries := make([]types.ConfigEntry, 0, len(items))
	for i, item := range items {
		entry, err := h.decodeEntry(i, item)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (h *Handler) decodeEntry(index int, item interface{}) (types.ConfigEntry, error) {
	field := fmt.Sprintf("extra.%s[%d]", h.key, index)

	m, ok := item.(map[string]interface{})
	if !ok {
		return types.ConfigEntry{}, errors.Newf(errors.ErrConfigShape,
			"the %s setting must be a configuration object", field).
			WithDetail("field", field).
			WithDetail("value", fmt.Sprintf("%v", item))
	}

	var entry types.ConfigEntry
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:   &entry,
		Metadata: &md,
		TagName:  "mapstructure",
	})
	if err != nil {
		return types.ConfigEntry{}, errors.Wrap(err, errors.ErrInternal, "failed to build entry decoder")
	}
	if err := dec.Decode(m); err != nil {
		return types.ConfigEntry{}, errors.Wrapf(err, errors.ErrConfigShape, "invalid %s setting", field).
			WithDetail("field", field)
	}

	if entry.File == "" {
		return types.ConfigEntry{}, errors.Newf(errors.ErrConfigInvalid,
			"the %s.file setting is required", field).
			WithDetail("field", field+".file")
	}

	if len(md.Unused) > 0 {
		unused := append([]string(nil), md.Unused...)
		sort.Strings(unused)
		h.logger.Warn().
			Str("file", entry.File).
			Strs("keys", unused).
			Msg("ignoring unknown entry settings")
	}
	return entry, nil
}

// Run processes entries in order and returns one result per processed
// entry. Unknown processor types are rejected before anything runs.
func (h *Handler) Run(entries []types.ConfigEntry) ([]types.Result, error) {
	procs := make([]types.Processor, len(entries))
	for i, entry := range entries {
		p, err := h.ProcessorFor(entry)
		if err != nil {
			return nil, err
		}
		procs[i] = p
	}

	results := make([]types.Result, 0, len(entries))
	for i, entry := range entries {
		result, err := procs[i].Process(entry)
		if err != nil {
			h.logger.Error().Err(err).Str("file", entry.File).Msg("entry failed")
			return results, err
		}
		results = append(results, result)
	}

	h.logger.Info().Int("entries", len(results)).Msg("install finished")
	return results, nil
}

// ProcessorFor returns the cached processor for the entry's type, detecting
// the type from the destination file when none is set.
func (h *Handler) ProcessorFor(entry types.ConfigEntry) (types.Processor, error) {
	name := entry.Type
	if name == "" {
		name = processor.DetectType(entry.File)
	}
	key := processor.Canonical(name)

	if p, ok := h.processors[key]; ok {
		return p, nil
	}

	factory, err := h.lookup(name)
	if err != nil {
		return nil, err
	}
	p := factory(h.io, h.fs)
	h.processors[key] = p
	h.logger.Debug().Str("type", key).Msg("processor created")
	return p, nil
}

package handler_test

import (
	"testing"

	"github.com/arthur-debert/distfile/pkg/errors"
	"github.com/arthur-debert/distfile/pkg/handler"
	"github.com/arthur-debert/distfile/pkg/processor"
	"github.com/arthur-debert/distfile/pkg/testutil"
	"github.com/arthur-debert/distfile/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingProcessor struct {
	entries []types.ConfigEntry
	err     error
}

func (r *recordingProcessor) Process(entry types.ConfigEntry) (types.Result, error) {
	r.entries = append(r.entries, entry)
	if r.err != nil {
		return types.Result{Entry: entry}, r.err
	}
	return types.Result{Entry: entry, State: types.StateWritten}, nil
}

// stubLookup hands out the same recorder for every known type and counts
// factory invocations.
func stubLookup(rec *recordingProcessor, built *int) handler.LookupFunc {
	return func(name string) (types.ProcessorFactory, error) {
		if _, err := processor.Lookup(name); err != nil {
			return nil, err
		}
		return func(types.IO, types.FS) types.Processor {
			*built++
			return rec
		}, nil
	}
}

func TestInstall_SettingsMissing(t *testing.T) {
	rec := &recordingProcessor{}
	built := 0
	h := handler.New(testutil.NewFakeIO(), handler.WithProcessorLookup(stubLookup(rec, &built)))

	_, err := h.Install(map[string]interface{}{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigMissing))
	assert.Contains(t, err.Error(), "extra.dist-installer-params")
	assert.Empty(t, rec.entries)
	assert.Zero(t, built)
}

func TestInstall_SettingsWrongShape(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
	}{
		{"string", "test"},
		{"number", 42},
		{"bool", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recordingProcessor{}
			built := 0
			h := handler.New(testutil.NewFakeIO(), handler.WithProcessorLookup(stubLookup(rec, &built)))

			_, err := h.Install(map[string]interface{}{handler.DefaultExtrasKey: tt.value})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigShape))
			assert.True(t, errors.IsConfigError(err))
			assert.Empty(t, rec.entries)
			assert.Zero(t, built)
		})
	}
}

func TestInstall_SingleMapping(t *testing.T) {
	rec := &recordingProcessor{}
	built := 0
	h := handler.New(testutil.NewFakeIO(), handler.WithProcessorLookup(stubLookup(rec, &built)))

	results, err := h.Install(map[string]interface{}{
		handler.DefaultExtrasKey: map[string]interface{}{
			"file":    "config/app.ini",
			"env-map": map[string]interface{}{"DB_HOST": "APP_DB_HOST"},
		},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Len(t, rec.entries, 1)
	assert.Equal(t, types.ConfigEntry{
		File:   "config/app.ini",
		EnvMap: map[string]string{"DB_HOST": "APP_DB_HOST"},
	}, rec.entries[0])
	assert.Equal(t, 1, built)
}

func TestInstall_SequenceInOrderWithCachedProcessors(t *testing.T) {
	rec := &recordingProcessor{}
	built := 0
	h := handler.New(testutil.NewFakeIO(), handler.WithProcessorLookup(stubLookup(rec, &built)))

	results, err := h.Install(map[string]interface{}{
		handler.DefaultExtrasKey: []interface{}{
			map[string]interface{}{"file": "a.ini"},
			map[string]interface{}{"file": "b.ini", "type": "generic"},
			map[string]interface{}{"file": "c.ini", "type": processor.LegacyGenericType},
			map[string]interface{}{"file": "d.json", "type": "json", "dist-file": "templates/d.json"},
		},
	})
	require.NoError(t, err)
	require.Len(t, results, 4)

	files := make([]string, 0, len(rec.entries))
	for _, e := range rec.entries {
		files = append(files, e.File)
	}
	assert.Equal(t, []string{"a.ini", "b.ini", "c.ini", "d.json"}, files)
	assert.Equal(t, "templates/d.json", rec.entries[3].DistFile)
	// generic (shared by the alias) and json
	assert.Equal(t, 2, built)
}

func TestInstall_EntryErrorsBeforeAnyProcessing(t *testing.T) {
	tests := []struct {
		name    string
		entries []interface{}
		code    errors.ErrorCode
	}{
		{
			name:    "entry is not a mapping",
			entries: []interface{}{map[string]interface{}{"file": "a.ini"}, "b.ini"},
			code:    errors.ErrConfigShape,
		},
		{
			name:    "file missing",
			entries: []interface{}{map[string]interface{}{"file": "a.ini"}, map[string]interface{}{"dist-file": "b.dist"}},
			code:    errors.ErrConfigInvalid,
		},
		{
			name:    "file of wrong type",
			entries: []interface{}{map[string]interface{}{"file": 12}},
			code:    errors.ErrConfigShape,
		},
		{
			name:    "unknown processor type",
			entries: []interface{}{map[string]interface{}{"file": "a.ini"}, map[string]interface{}{"file": "b.ini", "type": "invalid"}},
			code:    errors.ErrProcessorUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recordingProcessor{}
			built := 0
			h := handler.New(testutil.NewFakeIO(), handler.WithProcessorLookup(stubLookup(rec, &built)))

			_, err := h.Install(map[string]interface{}{handler.DefaultExtrasKey: tt.entries})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
			assert.True(t, errors.IsConfigError(err))
			assert.NotEmpty(t, errors.GetErrorDetails(err)["field"])
			assert.Empty(t, rec.entries)
		})
	}
}

func TestInstall_StopsAtFirstFailure(t *testing.T) {
	rec := &recordingProcessor{err: errors.New(errors.ErrFileWrite, "disk full")}
	built := 0
	h := handler.New(testutil.NewFakeIO(), handler.WithProcessorLookup(stubLookup(rec, &built)))

	results, err := h.Install(map[string]interface{}{
		handler.DefaultExtrasKey: []interface{}{
			map[string]interface{}{"file": "a.ini"},
			map[string]interface{}{"file": "b.ini"},
		},
	})
	require.Error(t, err)
	assert.True(t, errors.IsIOError(err))
	assert.Empty(t, results)
	assert.Len(t, rec.entries, 1)
}

func TestInstall_CustomKey(t *testing.T) {
	rec := &recordingProcessor{}
	built := 0
	h := handler.New(testutil.NewFakeIO(),
		handler.WithExtrasKey("config-files"),
		handler.WithProcessorLookup(stubLookup(rec, &built)))

	assert.Equal(t, "config-files", h.Key())

	_, err := h.Install(map[string]interface{}{handler.DefaultExtrasKey: map[string]interface{}{"file": "a.ini"}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigMissing))
	assert.Contains(t, err.Error(), "extra.config-files")

	_, err = h.Install(map[string]interface{}{"config-files": map[string]interface{}{"file": "a.ini"}})
	require.NoError(t, err)
	assert.Len(t, rec.entries, 1)
}

func TestInstall_EndToEnd(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.CreateFileT(t, fs, "/srv/app/config/app.ini.dist", "name={{Application name []|demo}}\n")
	testutil.CreateFileT(t, fs, "/srv/app/config/db.json.dist", `{"host": "{{host|localhost}}"}`)
	testutil.CreateFileT(t, fs, "/srv/app/config/db.json", `{"host": "old"}`)

	io := testutil.NewFakeIO().WithConfirmations(false)
	h := handler.New(io, handler.WithFS(fs))

	results, err := h.Install(map[string]interface{}{
		handler.DefaultExtrasKey: []interface{}{
			map[string]interface{}{"file": "/srv/app/config/app.ini"},
			map[string]interface{}{"file": "/srv/app/config/db.json", "type": "json"},
		},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, types.StateWritten, results[0].State)
	assert.Equal(t, types.StateSkipped, results[1].State)
	assert.Equal(t, "name=demo\n", testutil.ReadFileT(t, fs, "/srv/app/config/app.ini"))
	assert.Equal(t, `{"host": "old"}`, testutil.ReadFileT(t, fs, "/srv/app/config/db.json"))
	assert.Equal(t, []string{"Application name [demo]"}, io.Questions())
}

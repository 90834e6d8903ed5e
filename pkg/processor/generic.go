package processor

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/distfile/pkg/errors"
	"github.com/arthur-debert/distfile/pkg/filesystem"
	"github.com/arthur-debert/distfile/pkg/logging"
	"github.com/arthur-debert/distfile/pkg/template"
	"github.com/arthur-debert/distfile/pkg/types"
	"github.com/arthur-debert/distfile/pkg/ui/lipbalm"
	"github.com/rs/zerolog"
)

const (
	// OverwriteQuestion is asked before an existing destination is replaced
	OverwriteQuestion = "Destination file already exists, overwrite (y/n)?"

	dirPerm  = 0755
	filePerm = 0644
)

// Validator checks rendered text before it is written
type Validator func(data []byte) error

// Generic materializes a config file from its dist template. The same
// instance can process any number of entries, one at a time.
type Generic struct {
	name     string
	io       types.IO
	fs       types.FS
	lookup   template.LookupFunc
	validate Validator

	config types.ConfigEntry
	dist   []byte
	state  types.State
	logger zerolog.Logger
}

// Option configures a Generic processor
type Option func(*Generic)

// WithFS sets the filesystem, the OS by default
func WithFS(fs types.FS) Option {
	return func(g *Generic) {
		g.fs = fs
	}
}

// WithLookup sets the environment source used for =ENV[...] references
func WithLookup(lookup template.LookupFunc) Option {
	return func(g *Generic) {
		g.lookup = lookup
	}
}

// WithValidator checks rendered output before writing. name is used in
// messages and logs.
func WithValidator(name string, v Validator) Option {
	return func(g *Generic) {
		g.name = name
		g.validate = v
	}
}

// NewGeneric creates a processor that talks to the user through io
func NewGeneric(io types.IO, opts ...Option) *Generic {
	g := &Generic{
		name:   GenericType,
		io:     io,
		fs:     filesystem.NewOS(),
		state:  types.StateUnvalidated,
		logger: logging.GetLogger("processor"),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With().Str("type", g.name).Logger()
	return g
}

// Name returns the processor type name
func (g *Generic) Name() string {
	return g.name
}

// Config returns the last validated entry
func (g *Generic) Config() types.ConfigEntry {
	return g.config
}

// State returns where the last entry ended up
func (g *Generic) State() types.State {
	return g.state
}

// SetConfig validates entry, fills in the default dist file and stores it
// along with the dist file content. Nothing on disk is touched.
func (g *Generic) SetConfig(entry types.ConfigEntry) error {
	g.state = types.StateUnvalidated
	g.dist = nil

	if entry.File == "" {
		return errors.New(errors.ErrConfigInvalid, `the "file" setting is required`).
			WithDetail("field", "file")
	}

	entry = entry.WithDefaults()
	if !filesystem.IsFile(g.fs, entry.DistFile) {
		return errors.Newf(errors.ErrDistFileNotFound,
			"the dist file %q does not exist, check your dist-file config or create it", entry.DistFile).
			WithDetail("field", "dist-file").
			WithDetail("value", entry.DistFile)
	}

	dist, err := g.fs.ReadFile(entry.DistFile)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigInvalid,
			"the dist file %q cannot be read", entry.DistFile).
			WithDetail("field", "dist-file").
			WithDetail("value", entry.DistFile)
	}

	g.config = entry
	g.dist = dist
	g.state = types.StateValidated
	g.logger.Debug().
		Str("file", entry.File).
		Str("dist_file", entry.DistFile).
		Msg("entry validated")
	return nil
}

// Process validates entry and writes its destination file. An existing
// destination is only replaced after confirmation, and is first copied to
// <file>.old. Declining is not an error: the result state is Skipped.
func (g *Generic) Process(entry types.ConfigEntry) (types.Result, error) {
	result := types.Result{Entry: entry, State: types.StateUnvalidated}
	if err := g.SetConfig(entry); err != nil {
		return result, err
	}

	cfg := g.config
	result.Entry = cfg
	result.State = types.StateValidated
	logger := g.logger.With().Str("file", cfg.File).Logger()

	exists := filesystem.IsFile(g.fs, cfg.File)
	result.Existed = exists

	verb := "Creating"
	if exists {
		verb = "Rewriting"
	}
	g.io.Write(fmt.Sprintf(`<info>%s the "%s" file</info>`, verb, lipbalm.Escape(cfg.File)))

	if exists {
		confirmed, err := g.io.AskConfirmation(OverwriteQuestion)
		if err != nil {
			return result, errors.Wrap(err, errors.ErrPrompt, "failed to read overwrite confirmation").
				WithDetail("file", cfg.File)
		}
		if !confirmed {
			g.state = types.StateSkipped
			result.State = g.state
			logger.Info().Msg("overwrite declined, file left untouched")
			return result, nil
		}

		backup := cfg.BackupFile()
		if err := filesystem.CopyFile(g.fs, cfg.File, backup); err != nil {
			return result, errors.Wrapf(err, errors.ErrFileCopy, "failed to back up %s", cfg.File).
				WithDetail("file", cfg.File).
				WithDetail("backup", backup)
		}
		result.Backup = backup
		logger.Debug().Str("backup", backup).Msg("backup written")
		g.io.Write(fmt.Sprintf("A copy of the old configuration file was saved to <comment>%s</comment>",
			lipbalm.Escape(backup)))
	} else if dir := filepath.Dir(cfg.File); !filesystem.IsDir(g.fs, dir) {
		if err := g.fs.MkdirAll(dir, dirPerm); err != nil {
			return result, errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", dir).
				WithDetail("dir", dir)
		}
		logger.Debug().Str("dir", dir).Msg("directory created")
	}

	rendered, err := template.New(g.io, cfg.EnvMap, template.WithLookup(g.lookup)).Resolve(string(g.dist))
	if err != nil {
		return result, err
	}

	if g.validate != nil {
		if err := g.validate([]byte(rendered)); err != nil {
			return result, errors.Wrapf(err, errors.ErrRenderInvalid,
				"rendered %s is not valid %s", cfg.File, g.name).
				WithDetail("file", cfg.File).
				WithDetail("type", g.name)
		}
	}

	if err := g.fs.WriteFile(cfg.File, []byte(rendered), filePerm); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", cfg.File).
			WithDetail("file", cfg.File)
	}

	g.state = types.StateWritten
	result.State = g.state
	logger.Info().Int("bytes", len(rendered)).Bool("rewritten", exists).Msg("file written")
	return result, nil
}

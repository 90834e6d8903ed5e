package types

import "fmt"

// DistSuffix is appended to File when an entry has no explicit dist file
const DistSuffix = ".dist"

// BackupSuffix is appended to File for the copy made before overwriting
const BackupSuffix = ".old"

// ConfigEntry is one item of the installer settings
type ConfigEntry struct {
	// File is the destination path (required)
	File string `mapstructure:"file" json:"file" yaml:"file" toml:"file"`
	// DistFile is the template path, defaults to File + ".dist"
	DistFile string `mapstructure:"dist-file" json:"dist-file,omitempty" yaml:"dist-file,omitempty" toml:"dist-file,omitempty"`
	// Type selects the processor, empty means detect from File
	Type string `mapstructure:"type" json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
	// EnvMap maps question-facing names to OS environment variable names
	EnvMap map[string]string `mapstructure:"env-map" json:"env-map,omitempty" yaml:"env-map,omitempty" toml:"env-map,omitempty"`
}

// WithDefaults returns a copy of the entry with DistFile filled in
func (e ConfigEntry) WithDefaults() ConfigEntry {
	if e.DistFile == "" && e.File != "" {
		e.DistFile = e.File + DistSuffix
	}
	return e
}

// BackupFile returns the path used to back up an existing destination
func (e ConfigEntry) BackupFile() string {
	return e.File + BackupSuffix
}

// State tracks an entry through Unvalidated -> Validated -> {Skipped | Written}
type State int

const (
	StateUnvalidated State = iota
	StateValidated
	StateSkipped
	StateWritten
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateUnvalidated:
		return "unvalidated"
	case StateValidated:
		return "validated"
	case StateSkipped:
		return "skipped"
	case StateWritten:
		return "written"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// IsTerminal reports whether no further transition can happen
func (s State) IsTerminal() bool {
	return s == StateSkipped || s == StateWritten
}

// Result describes what happened to one entry
type Result struct {
	Entry ConfigEntry
	State State
	// Existed is true when File was present before processing
	Existed bool
	// Backup is the backup path, empty when none was made
	Backup string
}

// Written reports whether the destination was (re)written
func (r Result) Written() bool {
	return r.State == StateWritten
}

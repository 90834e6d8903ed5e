package types

import (
	"io/fs"
)

// FS is the filesystem interface required for materializing config files
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error
}

// IO is the interactive surface a processor talks to. The production
// implementation is a terminal; tests use a scripted fake.
type IO interface {
	// Write emits an informational message. Messages may carry
	// <info>/<comment>/<question>/<error> style tags.
	Write(message string)

	// AskConfirmation asks a yes/no question
	AskConfirmation(question string) (bool, error)

	// Ask asks a free-text question. An empty answer yields def.
	Ask(question, def string) (string, error)
}

// Processor materializes a single config entry
type Processor interface {
	Process(entry ConfigEntry) (Result, error)
}

// ProcessorFactory builds a processor bound to an IO and a filesystem
type ProcessorFactory func(io IO, fs FS) Processor

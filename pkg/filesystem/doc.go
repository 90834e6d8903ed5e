// Package filesystem provides filesystem implementations for distfile.
//
// This package contains implementations of the types.FS interface,
// the standard OS filesystem and an afero-backed one used by tests,
// plus the small helpers processors need (existence checks, copy).
package filesystem

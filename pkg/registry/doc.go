// Package registry provides a generic, type-safe registry with aliases.
// Processor variants register themselves into one through init() functions
// so that a config entry's `type` can be looked up by name.
package registry

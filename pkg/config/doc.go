// Package config loads distfile's own settings and the project manifest
// that lists the files to materialize.
//
// Settings come from the embedded defaults.toml, then DISTFILE_* environment
// variables (DISTFILE_NO_INTERACTION=true), then command line flags.
//
// The manifest is a JSON, TOML or YAML file. Entries are read from
// extra.<extras_key> when present, as in a composer.json, and from the top
// level <extras_key> otherwise.
package config

// Package processor turns a dist file into its configuration file.
//
// Generic runs the whole materialization of one entry: validate it, announce
// whether the destination is being created or rewritten, ask before
// replacing an existing file (keeping a .old copy), resolve placeholders
// and write the result. The json, yaml, toml and xml variants do the same
// and refuse to write output that is not well-formed in their format.
//
// Variants are kept in a static registry; Lookup turns a config entry's
// "type" into a factory.
package processor

// Package types holds the data model shared by the resolver, the processors
// and the dispatcher: config entries, per-entry results and the IO and FS
// interfaces processors depend on.
package types

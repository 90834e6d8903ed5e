// Package testutil provides test helpers shared by distfile packages: a
// scripted IO fake that records every interaction, and filesystem fixtures
// for both afero memory filesystems and real temp directories.
package testutil

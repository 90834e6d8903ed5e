// Package template resolves the placeholder syntax of dist files.
//
// A placeholder is written between double braces:
//
//	{{ question }}
//	{{ question|default }}
//	{{ question|=ENV[NAME] }}
//	{{ question|=ENV[NAME]|=ENV[OTHER]|fallback }}
//
// The first segment is the question shown to the user. An occurrence of []
// in it is replaced by the resolved default in brackets. The remaining
// segments are default candidates tried left to right; the first literal
// that is not empty, or the first environment reference that yields a
// non-empty value, wins. When nothing matches the question is asked with no
// default.
//
// =ENV[NAME] looks NAME up in the entry's env-map first. A mapped name only
// resolves through its mapped OS variable; an unmapped name is read from the
// process environment. A segment starting with =ENV[ that does not end with
// ] is a plain literal.
//
// Empty placeholders ({{}} and {{ }}) are emitted unchanged and never asked.
// Matching is lazy and line-bound: the first }} closes a placeholder and a
// placeholder never spans a newline.
package template

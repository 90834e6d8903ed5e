// Package console talks to the user on a terminal.
//
// Messages may carry <info>, <comment>, <question> and <error> tags. On a
// color terminal they are rendered with lipgloss; otherwise they are
// stripped. In non-interactive mode nothing is read from the input and
// every question takes its default.
package console

package template

import (
	"regexp"
	"strings"
)

const (
	// SegmentSeparator splits a placeholder body into question and defaults
	SegmentSeparator = "|"

	envRefPrefix  = "=ENV["
	defaultMarker = "[]"
)

var (
	// placeholderPattern matches {{ body }} lazily: the first closing
	// braces end the match. Bodies never span lines.
	placeholderPattern = regexp.MustCompile(`\{\{(.*?)\}\}`)

	// envRefPattern is anchored on both ends; a segment that starts with
	// =ENV[ but does not end with ] is a literal.
	envRefPattern = regexp.MustCompile(`^=ENV\[(.*)\]$`)
)

// SegmentKind tells literal defaults from environment references
type SegmentKind int

const (
	SegmentLiteral SegmentKind = iota
	SegmentEnv
)

// Segment is one default candidate of a placeholder
type Segment struct {
	Kind SegmentKind
	// Value is the literal text for SegmentLiteral
	Value string
	// EnvName is NAME in =ENV[NAME] for SegmentEnv
	EnvName string
}

// Placeholder is a parsed {{ question|default|... }} token
type Placeholder struct {
	// Raw is the full matched text including braces
	Raw string
	// Body is the text between the braces
	Body string
	// Question is the first segment, trimmed
	Question string
	// Candidates are the remaining segments in source order
	Candidates []Segment
}

// ParsePlaceholder splits a placeholder body. It returns false for an empty
// or whitespace-only body, which must be left untouched.
func ParsePlaceholder(raw, body string) (Placeholder, bool) {
	if strings.TrimSpace(body) == "" {
		return Placeholder{}, false
	}

	parts := strings.Split(body, SegmentSeparator)
	p := Placeholder{
		Raw:      raw,
		Body:     body,
		Question: strings.TrimSpace(parts[0]),
	}
	for _, part := range parts[1:] {
		p.Candidates = append(p.Candidates, parseSegment(part))
	}
	return p, true
}

func parseSegment(s string) Segment {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, envRefPrefix) {
		if m := envRefPattern.FindStringSubmatch(s); m != nil {
			return Segment{Kind: SegmentEnv, EnvName: m[1]}
		}
	}
	return Segment{Kind: SegmentLiteral, Value: s}
}

// Prompt returns the question with every [] marker showing the default
func (p Placeholder) Prompt(def string) string {
	return strings.ReplaceAll(p.Question, defaultMarker, "["+def+"]")
}

// Scan returns the placeholders of text in source order, skipping empty ones
func Scan(text string) []Placeholder {
	var out []Placeholder
	for _, m := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		if p, ok := ParsePlaceholder(m[0], m[1]); ok {
			out = append(out, p)
		}
	}
	return out
}

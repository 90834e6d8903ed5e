package lipbalm

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// NoFormatTag marks content that is only shown when color is off
const NoFormatTag = "no-format"

const rootTag = "lipbalm"

// StyleMap maps tag names to styles
type StyleMap map[string]lipgloss.Style

var defaultRenderer = lipgloss.DefaultRenderer()

// SetDefaultRenderer sets the renderer whose color profile decides whether
// styles are applied
func SetDefaultRenderer(r *lipgloss.Renderer) {
	defaultRenderer = r
}

// ColorEnabled reports whether the default renderer supports color
func ColorEnabled() bool {
	return defaultRenderer.ColorProfile() != termenv.Ascii
}

// ExpandTags replaces style tags with styled text. Unknown tags are dropped
// but their content is kept. Input that is not well-formed markup is
// returned unchanged.
func ExpandTags(input string, styles StyleMap) (string, error) {
	if input == "" {
		return "", nil
	}
	root, ok := parse(input)
	if !ok {
		return input, nil
	}
	var b strings.Builder
	expand(root, styles, ColorEnabled(), &b)
	return b.String(), nil
}

// StripTags removes every tag, keeping text content. Input that is not
// well-formed markup is returned unchanged.
func StripTags(input string) string {
	if input == "" {
		return ""
	}
	root, ok := parse(input)
	if !ok {
		return input
	}
	var b strings.Builder
	expand(root, nil, false, &b)
	return b.String()
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Escape makes arbitrary text safe to embed between tags
func Escape(s string) string {
	return escaper.Replace(s)
}

func parse(input string) (*etree.Element, bool) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString("<" + rootTag + ">" + input + "</" + rootTag + ">"); err != nil {
		return nil, false
	}
	root := doc.Root()
	if root == nil {
		return nil, false
	}
	return root, true
}

func expand(e *etree.Element, styles StyleMap, color bool, b *strings.Builder) {
	for _, tok := range e.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			b.WriteString(t.Data)
		case *etree.Element:
			var inner strings.Builder
			expand(t, styles, color, &inner)
			content := inner.String()

			if t.Tag == NoFormatTag {
				if !color {
					b.WriteString(content)
				}
				continue
			}
			if style, ok := styles[t.Tag]; ok && color {
				b.WriteString(style.Render(content))
			} else {
				b.WriteString(content)
			}
		}
	}
}

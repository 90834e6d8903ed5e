package template

import (
	"strings"

	"github.com/arthur-debert/distfile/pkg/errors"
	"github.com/arthur-debert/distfile/pkg/logging"
	"github.com/rs/zerolog"
)

// Asker is the part of the interactive surface the resolver needs
type Asker interface {
	Ask(question, def string) (string, error)
}

// Resolver replaces placeholders in dist file text
type Resolver struct {
	asker  Asker
	envMap map[string]string
	lookup LookupFunc
	logger zerolog.Logger
}

// Option configures a Resolver
type Option func(*Resolver)

// WithLookup replaces os.LookupEnv as the environment source
func WithLookup(lookup LookupFunc) Option {
	return func(r *Resolver) {
		r.lookup = lookup
	}
}

// New creates a resolver for one config entry's env-map
func New(asker Asker, envMap map[string]string, opts ...Option) *Resolver {
	r := &Resolver{
		asker:  asker,
		envMap: envMap,
		logger: logging.GetLogger("template.resolver"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns text with every non-empty placeholder replaced by the
// answer to its question. Placeholders are handled left to right, one ask
// per occurrence. Text without placeholders is returned unchanged.
func (r *Resolver) Resolve(text string) (string, error) {
	matches := placeholderPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text, nil
	}

	env := NewEnvironment(r.envMap, r.lookup)

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	asked := 0
	for _, m := range matches {
		b.WriteString(text[last:m[0]])
		last = m[1]

		raw, body := text[m[0]:m[1]], text[m[2]:m[3]]
		p, ok := ParsePlaceholder(raw, body)
		if !ok {
			b.WriteString(raw)
			continue
		}

		value, err := r.answer(p, env)
		if err != nil {
			return "", err
		}
		asked++
		b.WriteString(value)
	}
	b.WriteString(text[last:])

	r.logger.Debug().
		Int("placeholders", len(matches)).
		Int("asked", asked).
		Msg("template resolved")

	return b.String(), nil
}

// Default walks the candidates left to right and returns the first usable
// non-empty value, with a short description of where it came from.
func (r *Resolver) Default(p Placeholder) (string, string, bool) {
	return defaultFor(p, NewEnvironment(r.envMap, r.lookup))
}

func defaultFor(p Placeholder, env *Environment) (string, string, bool) {
	for _, seg := range p.Candidates {
		switch seg.Kind {
		case SegmentEnv:
			if value, ok := env.Value(seg.EnvName); ok {
				return value, "env:" + seg.EnvName, true
			}
		default:
			if seg.Value != "" {
				return seg.Value, "literal", true
			}
		}
	}
	return "", "none", false
}

func (r *Resolver) answer(p Placeholder, env *Environment) (string, error) {
	def, source, _ := defaultFor(p, env)

	r.logger.Debug().
		Str("question", p.Question).
		Str("default_source", source).
		Msg("asking placeholder")

	value, err := r.asker.Ask(p.Prompt(def), def)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrPrompt, "failed to read answer for %q", p.Question).
			WithDetail("placeholder", p.Raw)
	}
	return value, nil
}

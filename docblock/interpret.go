package docblock

import (
	"strings"
	"unicode"
)

// interpretFunc turns the raw text of a tag into its value.
type interpretFunc func(raw string) TagValue

var _interpreters = map[Category]interpretFunc{
	Passthrough: interpretText,
	Flag:        interpretText,
	Scalar:      interpretScalar,
	TypedValue:  interpretTyped,
	NamedValue:  interpretNamed,
	Verbatim:    interpretExample,
}

func interpretText(raw string) TagValue { return Text(raw) }

func interpretScalar(raw string) TagValue {
	return Text(strings.Join(strings.Fields(raw), " "))
}

func interpretExample(raw string) TagValue {
	return &Example{Content: raw}
}

func interpretTyped(raw string) TagValue {
	var t Typed
	rest := t.cutType(raw)
	t.Description = trimDescription(rest)
	return &t
}

func interpretNamed(raw string) TagValue {
	var t Typed
	rest := t.cutType(raw)
	rest = t.cutName(rest)
	t.Description = trimDescription(rest)
	return &t
}

// cutType parses a leading {type} group from s,
// and returns the text after it.
// Unbalanced braces are not treated as a type.
func (t *Typed) cutType(s string) (rest string) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "{") {
		return s
	}

	end := matchingClose(s, '{', '}')
	if end < 0 {
		return s
	}
	t.Type = strings.TrimSpace(s[1:end])
	return strings.TrimSpace(s[end+1:])
}

// cutName parses a name token from the start of s,
// and returns the text after it.
//
// The name may be bracketed to mark it optional,
// optionally with a default value: [name=default].
func (t *Typed) cutName(s string) (rest string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	if s[0] == '[' {
		if end := matchingClose(s, '[', ']'); end >= 0 {
			name, def, hasDefault := strings.Cut(s[1:end], "=")
			t.Name = strings.TrimSpace(name)
			if hasDefault {
				t.Default = strings.TrimSpace(def)
			}
			t.Optional = true
			return s[end+1:]
		}
	}

	if idx := strings.IndexFunc(s, unicode.IsSpace); idx >= 0 {
		t.Name, rest = s[:idx], s[idx:]
	} else {
		t.Name = s
	}
	return rest
}

// trimDescription trims surrounding whitespace from a description
// along with a leading "-" that separates it from a name.
func trimDescription(s string) string {
	s = strings.TrimSpace(s)
	if s == "-" {
		return ""
	}
	if rest, ok := strings.CutPrefix(s, "-"); ok && len(rest) > 0 && isSpace(rest[0]) {
		s = strings.TrimSpace(rest)
	}
	return s
}

// matchingClose returns the index of the delimiter
// that closes the one at s[0], accounting for nesting.
// It returns -1 if the delimiter is never closed.
func matchingClose(s string, open, close byte) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// lookupSpec reports how the canonically named tag should be handled,
// honoring per-parser category overrides.
func (p *Parser) lookupSpec(name string) (spec tagSpec, known bool) {
	spec, known = _tagSpecs[name]
	if c, ok := p.override(name); ok {
		spec.Category = c
		known = true
	}
	return spec, known
}

// override returns the category override for the canonically named tag.
// Overrides may be keyed by an alias of the tag;
// one keyed by the canonical name takes precedence,
// followed by aliases in lexical order.
func (p *Parser) override(name string) (Category, bool) {
	if c, ok := p.Categories[name]; ok {
		return c, true
	}

	var (
		alias string
		cat   Category
		found bool
	)
	for tag, c := range p.Categories {
		if canonicalTag(tag) != name {
			continue
		}
		if !found || tag < alias {
			alias, cat, found = tag, c, true
		}
	}
	return cat, found
}

// interpret converts split entries into a tag dictionary.
//
// code is the source text between the block and the next one,
// used to fill in missing names.
func (p *Parser) interpret(entries []Entry, code string) Tags {
	tags := make(Tags, len(entries))
	for _, e := range entries {
		name := canonicalTag(e.Tag)
		spec, known := p.lookupSpec(name)
		if !known {
			p.debugf("passing through unknown tag @%v", e.Tag)
		}

		interp, ok := _interpreters[spec.Category]
		if !ok {
			interp = interpretText
		}
		value := interp(e.Value)
		if spec.InferName {
			value = inferName(value, code)
		}

		if spec.Repeatable {
			list, _ := tags[name].(List)
			tags[name] = append(list, value)
			continue
		}

		if _, dup := tags[name]; dup {
			p.debugf("@%v appears more than once: keeping the last occurrence", name)
		}
		tags[name] = value
	}
	return tags
}

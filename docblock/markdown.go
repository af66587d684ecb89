package docblock

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// Emphasis delimiters must hug non-space text on both sides
// and may not cross a line break.
var (
	_strongPattern = regexp2.MustCompile(`\*\*(?=\S)([^*\n]+?)(?<=\S)\*\*`, regexp2.None)
	_emPattern     = regexp2.MustCompile(`(?<!\*)\*(?=\S)([^*\n]+?)(?<=\S)\*(?!\*)`, regexp2.None)
)

// Inline returns a copy of rec with inline markdown emphasis
// rendered as HTML in its prose fields:
// **text** becomes <strong>text</strong>
// and *text* becomes <em>text</em>.
//
// Prose fields are the title, the description,
// the description of every typed tag value,
// and the text of an explicit @description tag.
// All other fields, including the raw text,
// types, names, and example code, are copied unchanged.
func Inline(rec *Record) *Record {
	if rec == nil {
		return nil
	}

	out := *rec
	out.Title = inlineMarkdown(rec.Title)
	out.Description = inlineMarkdown(rec.Description)
	if rec.Tags != nil {
		out.Tags = make(Tags, len(rec.Tags))
		for name, v := range rec.Tags {
			if text, ok := v.(Text); ok && name == DescriptionTag {
				out.Tags[name] = Text(inlineMarkdown(string(text)))
				continue
			}
			out.Tags[name] = inlineValue(v)
		}
	}
	return &out
}

func inlineValue(v TagValue) TagValue {
	switch v := v.(type) {
	case *Typed:
		t := *v
		t.Description = inlineMarkdown(v.Description)
		return &t
	case *Example:
		ex := *v
		return &ex
	case List:
		items := make(List, len(v))
		for i, item := range v {
			items[i] = inlineValue(item)
		}
		return items
	default:
		return v
	}
}

func inlineMarkdown(s string) string {
	if !strings.Contains(s, "*") {
		return s
	}
	s = replaceAll(_strongPattern, s, "<strong>$1</strong>")
	return replaceAll(_emPattern, s, "<em>$1</em>")
}

// replaceAll substitutes every match of re in s.
// If matching fails, s is returned as-is.
func replaceAll(re *regexp2.Regexp, s, repl string) string {
	out, err := re.Replace(s, repl, -1, -1)
	if err != nil {
		return s
	}
	return out
}

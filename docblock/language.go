package docblock

import (
	"errors"

	"braces.dev/errtrace"
	"github.com/alecthomas/chroma/v2/lexers"
)

// ErrUnsupportedLanguage indicates that a language tag
// does not name a language with known doc comment conventions.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// CommentStyle describes how documentation blocks are delimited
// in a language.
type CommentStyle struct {
	Open  string // opening delimiter, e.g. "/**"
	Close string // closing delimiter, e.g. "*/"
}

// BlockStyle is the /** ... */ convention
// shared by the C family of languages.
var BlockStyle = CommentStyle{Open: "/**", Close: "*/"}

// Language is a language that the parser knows how to read.
type Language struct {
	// Name is the canonical name of the language,
	// as reported by the Chroma lexer registry.
	Name string

	Style CommentStyle
}

// Keyed by Chroma lexer name.
var _languages = map[string]CommentStyle{
	"C":           BlockStyle,
	"C#":          BlockStyle,
	"C++":         BlockStyle,
	"CSS":         BlockStyle,
	"Dart":        BlockStyle,
	"Go":          BlockStyle,
	"Groovy":      BlockStyle,
	"Java":        BlockStyle,
	"JavaScript":  BlockStyle,
	"Kotlin":      BlockStyle,
	"LessCss":     BlockStyle,
	"Objective-C": BlockStyle,
	"PHP":         BlockStyle,
	"Rust":        BlockStyle,
	"SCSS":        BlockStyle,
	"Scala":       BlockStyle,
	"Swift":       BlockStyle,
	"TSX":         BlockStyle,
	"TypeScript":  BlockStyle,
}

// LookupLanguage resolves a language tag to a [Language].
//
// The tag may be a language name, an alias, or a file extension
// known to Chroma: "js", "javascript", and "JavaScript"
// all resolve to the same language.
// Tags that don't resolve to a language with block doc comments
// report an error matching [ErrUnsupportedLanguage].
func LookupLanguage(tag string) (*Language, error) {
	if tag == "" {
		return nil, errtrace.Errorf("empty language tag: %w", ErrUnsupportedLanguage)
	}

	lexer := lexers.Get(tag)
	if lexer == nil {
		return nil, errtrace.Errorf("%q: %w", tag, ErrUnsupportedLanguage)
	}

	name := lexer.Config().Name
	style, ok := _languages[name]
	if !ok {
		return nil, errtrace.Errorf("%q (%v): %w", tag, name, ErrUnsupportedLanguage)
	}

	return &Language{Name: name, Style: style}, nil
}

// DetectLanguage picks a language tag for the given file name
// based on its extension.
// It returns an empty string if the file isn't recognized.
func DetectLanguage(filename string) string {
	lexer := lexers.Match(filename)
	if lexer == nil {
		return ""
	}
	return lexer.Config().Name
}

package docblock

import (
	"sort"
	"strings"
)

// Source is source text indexed for position lookups.
//
// Source is immutable and safe for concurrent use.
type Source struct {
	text     string
	newlines []int // offsets of '\n' in text, ascending
}

// NewSource indexes the given source text.
func NewSource(text string) *Source {
	var newlines []int
	for off := 0; ; {
		idx := strings.IndexByte(text[off:], '\n')
		if idx < 0 {
			break
		}
		newlines = append(newlines, off+idx)
		off += idx + 1
	}
	return &Source{text: text, newlines: newlines}
}

// Text returns the source text.
func (s *Source) Text() string { return s.text }

// Len returns the size of the source text in bytes.
func (s *Source) Len() int { return len(s.text) }

// Line returns the 1-based line number containing the byte offset pos.
//
// This is one more than the number of newlines strictly before pos.
// Offsets before the start of the text report line 1,
// and offsets past the end report the last line.
func (s *Source) Line(pos int) int {
	if pos <= 0 {
		return 1
	}
	// newlines[i] >= pos for the first time at i,
	// so i newlines precede pos.
	return sort.SearchInts(s.newlines, pos) + 1
}

package docblock

import (
	"log"
	"strings"

	"braces.dev/errtrace"
)

// Record is the documentation extracted from a single block.
type Record struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Tags        Tags   `json:"tags" yaml:"tags"`

	// Pos is the byte offset of the block's opening delimiter
	// in the source text.
	Pos int `json:"pos" yaml:"pos"`

	// Line is the 1-based line number of Pos.
	Line int `json:"line" yaml:"line"`

	// Raw is the unmodified text of the block,
	// including its delimiters.
	Raw string `json:"raw" yaml:"raw"`
}

// Parser extracts documentation records from source text.
//
// The zero value of this is ready to use.
// A Parser is not modified by parsing,
// so it may be used from multiple goroutines at once.
type Parser struct {
	// Categories overrides how specific tags are interpreted,
	// keyed by tag name or any of its aliases.
	// Tags not listed here use the built-in categories.
	Categories map[string]Category

	// Markdown renders inline markdown emphasis
	// in the prose fields of each record with [Inline].
	Markdown bool

	// Logger to write debug messages to.
	//
	// Use nil to disable debug logging.
	DebugLog *log.Logger
}

// block is a documentation block found in the source text.
type block struct {
	Pos int    // offset of the opening delimiter
	End int    // offset just past the closing delimiter
	Raw string // text including delimiters
}

// parseState holds everything known about a single Parse call.
type parseState struct {
	src    *Source
	lang   *Language
	blocks []block
}

// Parse extracts a record for every documentation block in src,
// in source order.
//
// lang selects the comment conventions to use.
// See [LookupLanguage] for the accepted values.
// Parse fails only if the language is not supported;
// source text with no blocks produces an empty slice.
func (p *Parser) Parse(src, lang string) ([]*Record, error) {
	language, err := LookupLanguage(lang)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	st := parseState{
		src:  NewSource(src),
		lang: language,
	}
	st.blocks = findBlocks(src, st.lang.Style)
	p.debugf("found %d block(s) in %v source", len(st.blocks), st.lang.Name)

	records := make([]*Record, 0, len(st.blocks))
	for i := range st.blocks {
		rec := p.assemble(&st, i)
		if p.Markdown {
			rec = Inline(rec)
		}
		records = append(records, rec)
	}
	return records, nil
}

// assemble builds the record for the i-th block.
func (p *Parser) assemble(st *parseState, i int) *Record {
	b := st.blocks[i]
	s := splitLines(StripBlockLines(b.Raw))

	return &Record{
		Title:       s.Title,
		Description: s.Description,
		Tags:        p.interpret(s.Tags, st.codeAfter(i)),
		Pos:         b.Pos,
		Line:        st.src.Line(b.Pos),
		Raw:         b.Raw,
	}
}

// codeAfter returns the source text between the i-th block
// and the next one, or the end of the source.
func (st *parseState) codeAfter(i int) string {
	end := st.src.Len()
	if i+1 < len(st.blocks) {
		end = st.blocks[i+1].Pos
	}
	return st.src.Text()[st.blocks[i].End:end]
}

// findBlocks locates all documentation blocks in src.
//
// A block starts with the opening delimiter
// as long as it isn't immediately followed by '*' or '/'
// ("/***" banners and the empty comment "/**/" are not documentation),
// and ends at the first closing delimiter after that.
// An unterminated block ends the search.
func findBlocks(src string, style CommentStyle) []block {
	var blocks []block
	for off := 0; off < len(src); {
		idx := strings.Index(src[off:], style.Open)
		if idx < 0 {
			break
		}
		start := off + idx
		body := start + len(style.Open)

		if body < len(src) && (src[body] == '*' || src[body] == '/') {
			off = skipComment(src, body, style)
			continue
		}

		idx = strings.Index(src[body:], style.Close)
		if idx < 0 {
			break
		}
		end := body + idx + len(style.Close)

		blocks = append(blocks, block{
			Pos: start,
			End: end,
			Raw: src[start:end],
		})
		off = end
	}
	return blocks
}

// skipComment returns the offset just past the comment
// whose body starts at the given offset.
func skipComment(src string, body int, style CommentStyle) int {
	if src[body] == '/' {
		// "/**/": the closing delimiter overlaps the opening one.
		return body + 1
	}
	idx := strings.Index(src[body:], style.Close)
	if idx < 0 {
		return len(src)
	}
	return body + idx + len(style.Close)
}

func (p *Parser) debugf(format string, args ...any) {
	if p.DebugLog != nil {
		p.DebugLog.Printf(format, args...)
	}
}

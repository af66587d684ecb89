package docblock

import "strings"

// StripBlockLines removes comment decoration from a documentation block,
// returning one string per physical line of the block.
//
// The opening delimiter is removed from the first line,
// the closing delimiter from the last line,
// and every other line loses its leading whitespace and a single '*'.
// Everything after that '*' is kept as-is,
// including leading and trailing spaces.
//
//	StripBlockLines("/**\n * foo\n *  bar\n */")
//	// => ["", " foo", "  bar", ""]
func StripBlockLines(block string) []string {
	lines := strings.Split(block, "\n")
	switch strings.TrimSpace(block) {
	case "", emptyComment(BlockStyle):
		return make([]string, len(lines))
	}

	// The line holding the opening delimiter only loses the delimiter.
	// Without one, the block is already-decorated lines.
	first := 0
	if line, ok := trimOpening(lines[0], BlockStyle.Open); ok {
		lines[0] = line
		first = 1
	}
	last := len(lines) - 1
	lines[last] = trimClosing(lines[last], BlockStyle.Close)

	for i := first; i < len(lines); i++ {
		lines[i] = trimDecoration(lines[i])
	}
	return lines
}

// emptyComment is the comment whose delimiters overlap: "/**/".
func emptyComment(style CommentStyle) string {
	return strings.TrimSuffix(style.Open, "*") + style.Close
}

// trimOpening removes optional whitespace and the opening delimiter
// from the start of line,
// reporting whether the delimiter was present.
func trimOpening(line, open string) (string, bool) {
	rest := strings.TrimLeft(line, " \t\r")
	if strings.HasPrefix(rest, open) {
		return rest[len(open):], true
	}
	return line, false
}

// trimClosing removes the closing delimiter
// and any whitespace right before it from the end of line.
func trimClosing(line, close string) string {
	body := strings.TrimRight(line, " \t\r")
	if !strings.HasSuffix(body, close) {
		return line
	}
	return strings.TrimRight(body[:len(body)-len(close)], " \t")
}

// trimDecoration strips the longest leading run of whitespace
// followed by a single '*'.
// If the line doesn't begin that way, it is returned unchanged.
func trimDecoration(line string) string {
	i := 0
	for i < len(line) && isSpace(line[i]) {
		i++
	}
	if i < len(line) && line[i] == '*' {
		return line[i+1:]
	}
	return line
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	}
	return false
}

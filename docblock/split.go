package docblock

import "strings"

// Names of the entries synthesized from the untagged header of a block.
const (
	TitleTag       = "title"
	DescriptionTag = "description"
)

// Entry is a single labeled value inside a documentation block.
type Entry struct {
	// Tag is the name of the tag without the leading '@',
	// or one of TitleTag and DescriptionTag for the header.
	Tag string `json:"tag" yaml:"tag"`

	// Value is the text of the tag.
	// Multi-line values are joined with "\n".
	Value string `json:"value" yaml:"value"`
}

// ParseTags splits a documentation block into entries.
//
// The block may include the comment delimiters or not;
// decoration is removed with [StripBlockLines] first.
// The untagged header of the block becomes a "title" entry
// and a "description" entry, each omitted if empty.
// These are followed by one entry per @tag, in source order.
func ParseTags(block string) []Entry {
	s := splitLines(StripBlockLines(block))

	entries := make([]Entry, 0, len(s.Tags)+2)
	if s.Title != "" {
		entries = append(entries, Entry{Tag: TitleTag, Value: s.Title})
	}
	if s.Description != "" {
		entries = append(entries, Entry{Tag: DescriptionTag, Value: s.Description})
	}
	return append(entries, s.Tags...)
}

// split is a stripped block broken into its header and tags.
type split struct {
	Title       string
	Description string
	Tags        []Entry
}

func splitLines(lines []string) split {
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, " ")
	}

	// Index of the first tag line, or len(lines).
	end := len(lines)
	for i, line := range lines {
		if _, _, ok := cutTagLine(line); ok {
			end = i
			break
		}
	}

	var s split
	s.Title, s.Description = splitHeader(lines[:end])

	for i := end; i < len(lines); {
		name, rest, _ := cutTagLine(lines[i])

		var value []string
		if rest != "" {
			value = append(value, rest)
		}

		// Everything up to the next tag line belongs to this tag.
		i++
		for ; i < len(lines); i++ {
			if _, _, ok := cutTagLine(lines[i]); ok {
				break
			}
			value = append(value, lines[i])
		}

		s.Tags = append(s.Tags, Entry{
			Tag:   name,
			Value: strings.Join(trimTrailingBlank(value), "\n"),
		})
	}

	return s
}

// splitHeader breaks the untagged lines at the top of a block
// into a single-line title and a description.
// A blank line between the two is dropped.
func splitHeader(lines []string) (title, description string) {
	i := 0
	for i < len(lines) && isBlank(lines[i]) {
		i++
	}
	if i == len(lines) {
		return "", ""
	}
	title = strings.TrimSpace(lines[i])
	i++

	if i < len(lines) && isBlank(lines[i]) {
		i++
	}

	description = strings.Join(trimTrailingBlank(lines[i:]), "\n")
	return title, description
}

// cutTagLine reports whether line starts a new tag,
// returning the tag name and the text following it.
//
// A tag line is optional whitespace, '@', and an identifier.
// A single space after the identifier is not part of the text.
func cutTagLine(line string) (name, rest string, ok bool) {
	i := 0
	for i < len(line) && isSpace(line[i]) {
		i++
	}
	if i+1 >= len(line) || line[i] != '@' || !isIdentStart(line[i+1]) {
		return "", "", false
	}

	start := i + 1
	end := start + 1
	for end < len(line) && isIdentPart(line[end]) {
		end++
	}

	// '@foo' must be followed by whitespace or the end of the line.
	// This rules out things like e-mail addresses.
	if end < len(line) && !isSpace(line[end]) {
		return "", "", false
	}

	rest = line[end:]
	rest = strings.TrimPrefix(rest, " ")
	return line[start:end], rest, true
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || ('0' <= c && c <= '9') || c == '-' || c == '.'
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func trimTrailingBlank(lines []string) []string {
	n := len(lines)
	for n > 0 && isBlank(lines[n-1]) {
		n--
	}
	return lines[:n]
}

package docblock

import (
	"strings"

	"github.com/dlclark/regexp2"
)

const _ident = `([A-Za-z_$][\w$]*)`

// Declaration forms that name the entity following a block,
// tried in order against its first line of code.
// Each pattern captures the name in group 1.
var _declPatterns = []*regexp2.Regexp{
	// function Banana(...)
	regexp2.MustCompile(`^\s*(?:export\s+)?(?:default\s+)?(?:async\s+)?function\s*\*?\s*`+_ident, regexp2.None),
	// class Banana
	regexp2.MustCompile(`^\s*(?:export\s+)?(?:default\s+)?(?:abstract\s+)?class\s+`+_ident, regexp2.None),
	// var NAME = ...
	regexp2.MustCompile(`^\s*(?:export\s+)?(?:var|let|const)\s+`+_ident, regexp2.None),
	// Banana.prototype.tastes = ..., NAME: ...
	regexp2.MustCompile(`^\s*(?:[\w$]+\.)*`+_ident+`\s*(?:=(?!=)|:)`, regexp2.None),
	// tastes(...) {
	regexp2.MustCompile(`^\s*(?:static\s+)?(?:async\s+)?(?!(?:if|for|while|switch|catch|return|typeof)\b)`+_ident+`\s*\(`, regexp2.None),
}

// declaredName returns the name declared by the first non-blank line
// of code, or an empty string if it doesn't look like a declaration.
func declaredName(code string) string {
	var line string
	for _, l := range strings.Split(code, "\n") {
		if !isBlank(l) {
			line = l
			break
		}
	}
	if line == "" {
		return ""
	}

	for _, re := range _declPatterns {
		m, err := re.FindStringMatch(line)
		if err != nil || m == nil {
			continue
		}
		return m.GroupByNumber(1).String()
	}
	return ""
}

// inferName fills a missing name in value
// with the name declared by code.
func inferName(value TagValue, code string) TagValue {
	switch v := value.(type) {
	case Text:
		if strings.TrimSpace(string(v)) != "" {
			return v
		}
		if name := declaredName(code); name != "" {
			return Text(name)
		}
	case *Typed:
		if v.Name != "" {
			return v
		}
		if name := declaredName(code); name != "" {
			v.Name = name
		}
	}
	return value
}

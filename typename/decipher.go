package typename

import (
	"regexp"
	"strings"
)

// typeSpanStartRe matches a possibly qualified identifier followed by '<',
// the start of a template type inside free text.
var typeSpanStartRe = regexp.MustCompile(`(?:[A-Za-z_$][\w$]*::)*[A-Za-z_$][\w$]*<`)

// spanKeywords open a '<' that does not start a type: a template parameter
// list or an overloaded operator.
var spanKeywords = map[string]bool{
	"template": true,
	"operator": true,
}

// DecipherBlob cleans every template type found in free text such as
// compiler diagnostics or log lines, leaving the surrounding text intact.
// Versioned inline namespaces are stripped everywhere. Spans whose brackets
// do not close on the same line are left alone.
func DecipherBlob(text string) string {
	return defaultCleaner.DecipherBlob(text)
}

func (c *Cleaner) DecipherBlob(text string) string {
	text = c.stripNamespaces(text)

	var b strings.Builder
	b.Grow(len(text))
	pos := 0
	for pos < len(text) {
		loc := typeSpanStartRe.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start, open := pos+loc[0], pos+loc[1]-1
		if spanKeywords[lastSegment(text[start:open])] {
			b.WriteString(text[pos : open+1])
			pos = open + 1
			continue
		}
		end := matchingAngle(text, open)
		if end < 0 {
			b.WriteString(text[pos : open+1])
			pos = open + 1
			continue
		}
		b.WriteString(text[pos:start])
		b.WriteString(c.Normalize(text[start : end+1]))
		pos = end + 1
	}
	b.WriteString(text[pos:])
	return b.String()
}

func lastSegment(path string) string {
	if i := strings.LastIndex(path, "::"); i >= 0 {
		return path[i+2:]
	}
	return path
}

// matchingAngle returns the index of the '>' closing the '<' at open, or -1
// when the span runs into a character that cannot be part of a type name.
func matchingAngle(text string, open int) int {
	depth := 0
	for i := open; i < len(text); i++ {
		switch text[i] {
		case '<':
			depth++
		case '>':
			if isArrow(text, i) {
				continue
			}
			depth--
			if depth == 0 {
				return i
			}
		case '\n', ';', '{', '}', '"', '\'', '`':
			return -1
		}
	}
	return -1
}

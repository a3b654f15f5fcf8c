package parser

import (
	"regexp"
	"strings"
)

const (
	defaultDescription = "TODO"
	defaultType        = "var"
)

var (
	// The declared name is the first word/dot run that sits at line end,
	// right before a " #" comment marker, or right before an opening paren.
	nameRe = regexp.MustCompile(`([\w.]+)(?: #|\(|$)`)

	descriptionRe = regexp.MustCompile(`# (.*)$`)

	// A custom type token is a leading run of word or angle-bracket
	// characters followed by whitespace.
	customTypeRe = regexp.MustCompile(`^([\w<>]+)\s`)
)

// isMethodLine reports whether the line declares a method: a literal '('
// with a ')' somewhere after it. Anything else is a property.
func isMethodLine(line string) bool {
	open := strings.IndexByte(line, '(')
	return open >= 0 && strings.LastIndexByte(line, ')') > open
}

func extractName(line string) string {
	m := nameRe.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return m[1]
}

func extractDescription(line string) string {
	if m := descriptionRe.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return defaultDescription
}

// sniffCustomType reads the type of a member line that carries no built-in
// prefix. The private marker is a leading underscore on the first token and
// is never part of the type name itself. When no type token can be found the
// type degrades to "var".
func sniffCustomType(line string) (typ string, private bool) {
	if fields := strings.Fields(line); len(fields) > 0 {
		private = strings.HasPrefix(fields[0], "_")
	}
	m := customTypeRe.FindStringSubmatch(line)
	if m == nil {
		return defaultType, private
	}
	typ = strings.TrimPrefix(m[1], "_")
	if typ == "" {
		typ = defaultType
	}
	return typ, private
}

// parameterText returns the substring strictly between the first '(' and the
// last ')'. ok is false when the parentheses are absent or unbalanced.
func parameterText(line string) (text string, ok bool) {
	open := strings.IndexByte(line, '(')
	end := strings.LastIndexByte(line, ')')
	if open < 0 || end <= open {
		return "", false
	}
	return line[open+1 : end], true
}

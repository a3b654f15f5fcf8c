package parser

import (
	"regexp"
	"strings"
)

// Shorthand rewrites run in a fixed order: wrapper tokens first, then the
// generic placeholder fills, then the array shorthands. Later rules see the
// output of earlier ones, which is what turns "ob-i" into "IObservable<int>".
var (
	observableRe = regexp.MustCompile(`(^|\s)(_?)ob-(\S+)`)
	listRe       = regexp.MustCompile(`(^|\s)(_?)l-(\S+)`)

	placeholderReplacer = strings.NewReplacer(
		"<i>", "<int>",
		"<f>", "<float>",
		"<s>", "<string>",
		"<b>", "<bool>",
	)

	arrayReplacer = strings.NewReplacer(
		"[i]", "int[]",
		"[s]", "string[]",
		"[f]", "float[]",
		"[b]", "bool[]",
	)
)

// ExpandAliases rewrites shorthand type tokens into their canonical written
// form, leaving all other text untouched. The wrapper rules only fire at a
// token boundary (line start or whitespace) and keep a private-marker
// underscore outside the angle brackets. Expansion is total and idempotent:
// no output of any rule is matched by a rule again.
func ExpandAliases(line string) string {
	line = observableRe.ReplaceAllString(line, "${1}${2}IObservable<${3}>")
	line = listRe.ReplaceAllString(line, "${1}${2}List<${3}>")
	line = placeholderReplacer.Replace(line)
	return arrayReplacer.Replace(line)
}

package parser

import (
	"fmt"
	"os"
	"strings"

	"github.com/dhamidi/skel/sketch"
)

var builtinTypes = map[string]string{
	"i": "int",
	"s": "string",
	"f": "float",
	"b": "bool",
}

// target records which container receives member declarations. A nil
// capability means the open container cannot accept that member kind; both
// nil means no container is open at all, which makes ErrMissingContainer a
// plain nil check.
type target struct {
	methods    sketch.MethodContainer
	properties sketch.PropertyContainer
}

type state struct {
	file    *sketch.File
	ns      *sketch.Namespace
	current target
}

// Parse folds the given lines, in declaration order, into a File model. The
// name only labels the resulting File and is never interpreted. Line n's
// effect on the accumulator is fully applied before line n+1 is classified.
func Parse(name string, lines []string) (*sketch.File, error) {
	st := &state{file: &sketch.File{Name: name}}
	for i, raw := range lines {
		line := ExpandAliases(strings.TrimSpace(raw))
		if err := st.dispatch(line, i+1); err != nil {
			return nil, err
		}
	}
	return st.file, nil
}

// ParseBytes splits source on newlines and parses the result.
func ParseBytes(name string, source []byte) (*sketch.File, error) {
	return Parse(name, strings.Split(string(source), "\n"))
}

// ParseFile reads path and parses its contents, labelling the File with the
// path itself.
func ParseFile(path string) (*sketch.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sketch file: %w", err)
	}
	return ParseBytes(path, data)
}

// dispatch routes one expanded line by its prefix, most specific first.
// Empty lines produce no state change.
func (st *state) dispatch(line string, lineNo int) error {
	if line == "" {
		return nil
	}
	switch {
	case strings.HasPrefix(line, "ns "):
		st.openNamespace(line, lineNo)
		return nil
	case strings.HasPrefix(line, "c "):
		return st.openClass(line, lineNo)
	case strings.HasPrefix(line, "e "):
		return st.openEnum(line, lineNo)
	case strings.HasPrefix(line, "if "):
		return st.openInterface(line, lineNo)
	}
	typ, private, ok := builtinPrefix(line)
	if !ok {
		typ, private = sniffCustomType(line)
	}
	return st.addMember(line, lineNo, typ, private)
}

// builtinPrefix resolves the four typed prefixes and their private
// counterparts ("i x" and "_i x" both declare an int).
func builtinPrefix(line string) (typ string, private bool, ok bool) {
	token, _, found := strings.Cut(line, " ")
	if !found {
		return "", false, false
	}
	bare := strings.TrimPrefix(token, "_")
	typ, ok = builtinTypes[bare]
	if !ok {
		return "", false, false
	}
	return typ, bare != token, true
}

func (st *state) openNamespace(line string, lineNo int) {
	ns := &sketch.Namespace{Name: extractName(line), Line: lineNo}
	st.file.Namespaces = append(st.file.Namespaces, ns)
	st.ns = ns
	st.current = target{}
}

func (st *state) openClass(line string, lineNo int) error {
	if st.ns == nil {
		return lineErr(lineNo, line, ErrMissingContainer)
	}
	c := &sketch.Class{
		Name:        extractName(line),
		Description: extractDescription(line),
		Line:        lineNo,
	}
	st.ns.Classes = append(st.ns.Classes, c)
	st.current = target{methods: c, properties: c}
	return nil
}

func (st *state) openEnum(line string, lineNo int) error {
	if st.ns == nil {
		return lineErr(lineNo, line, ErrMissingContainer)
	}
	e := &sketch.Enum{
		Name:        extractName(line),
		Description: extractDescription(line),
		Line:        lineNo,
	}
	st.ns.Enums = append(st.ns.Enums, e)
	st.current = target{properties: e}
	return nil
}

func (st *state) openInterface(line string, lineNo int) error {
	if st.ns == nil {
		return lineErr(lineNo, line, ErrMissingContainer)
	}
	iface := &sketch.Interface{
		Name:        extractName(line),
		Description: extractDescription(line),
		Line:        lineNo,
	}
	st.ns.Interfaces = append(st.ns.Interfaces, iface)
	st.current = target{methods: iface, properties: iface}
	return nil
}

// addMember attaches a method or property to the most recently opened
// container. A leading underscore on the name token also marks the member
// private and is stripped from the stored name.
func (st *state) addMember(line string, lineNo int, typ string, private bool) error {
	name := extractName(line)
	if strings.HasPrefix(name, "_") {
		private = true
		name = strings.TrimPrefix(name, "_")
	}
	accessibility := sketch.AccessibilityPublic
	if private {
		accessibility = sketch.AccessibilityPrivate
	}

	if isMethodLine(line) {
		if st.current.methods == nil {
			return lineErr(lineNo, line, ErrMissingContainer)
		}
		params, _ := parameterText(line)
		m := &sketch.Method{
			Name:          name,
			Description:   extractDescription(line),
			ReturnType:    typ,
			Accessibility: accessibility,
			Line:          lineNo,
		}
		for _, segment := range strings.Split(params, ", ") {
			if p := parameterFromSegment(segment, lineNo); p != nil {
				m.AddParameter(p)
			}
		}
		st.current.methods.AddMethod(m)
		return nil
	}

	// A stray paren means the method test failed on unbalanced parentheses;
	// no partial parameter list is synthesized.
	if strings.ContainsAny(line, "()") {
		return lineErr(lineNo, line, ErrMalformedParameterList)
	}

	if st.current.properties == nil {
		return lineErr(lineNo, line, ErrMissingContainer)
	}
	st.current.properties.AddProperty(&sketch.Property{
		Name:          name,
		Description:   extractDescription(line),
		Type:          typ,
		Accessibility: accessibility,
		Line:          lineNo,
	})
	return nil
}

// parameterFromSegment re-classifies one comma-separated parameter segment
// with the same prefix rules as member lines. Parameters are always public
// and carry no description. An empty segment, as produced by zero-argument
// methods, yields no parameter.
func parameterFromSegment(segment string, lineNo int) *sketch.Property {
	segment = strings.TrimSpace(segment)
	if segment == "" {
		return nil
	}
	typ, _, ok := builtinPrefix(segment)
	if !ok {
		typ, _ = sniffCustomType(segment)
	}
	name := strings.TrimPrefix(extractName(segment), "_")
	return &sketch.Property{
		Name:          name,
		Type:          typ,
		Accessibility: sketch.AccessibilityPublic,
		Line:          lineNo,
	}
}

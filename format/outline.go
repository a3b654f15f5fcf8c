package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/skel/sketch"
)

// OutlineEncoder renders the model as an indented plain-text tree, one
// declaration per line.
type OutlineEncoder struct {
	w    io.Writer
	file *sketch.File
}

func NewOutlineEncoder(w io.Writer) *OutlineEncoder {
	return &OutlineEncoder{w: w}
}

func (e *OutlineEncoder) Encode(file *sketch.File) error {
	e.file = file
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *OutlineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "file %s\n", e.file.Name)
	for _, ns := range e.file.Namespaces {
		fmt.Fprintf(&sb, "  namespace %s\n", ns.Name)
		for _, c := range ns.Classes {
			writeType(&sb, "class", c.Name, c.Description)
			writeProperties(&sb, c.Properties)
			writeMethods(&sb, c.Methods)
		}
		for _, enum := range ns.Enums {
			writeType(&sb, "enum", enum.Name, enum.Description)
			writeProperties(&sb, enum.Properties)
		}
		for _, iface := range ns.Interfaces {
			writeType(&sb, "interface", iface.Name, iface.Description)
			writeProperties(&sb, iface.Properties)
			writeMethods(&sb, iface.Methods)
		}
	}
	return []byte(sb.String()), nil
}

func writeType(sb *strings.Builder, kind, name, description string) {
	fmt.Fprintf(sb, "    %s %s", kind, name)
	if description != "" {
		fmt.Fprintf(sb, "  # %s", description)
	}
	sb.WriteByte('\n')
}

func writeProperties(sb *strings.Builder, props []*sketch.Property) {
	for _, p := range props {
		fmt.Fprintf(sb, "      %s %s", p.Accessibility, p)
		if p.Description != "" {
			fmt.Fprintf(sb, "  # %s", p.Description)
		}
		sb.WriteByte('\n')
	}
}

func writeMethods(sb *strings.Builder, methods []*sketch.Method) {
	for _, m := range methods {
		fmt.Fprintf(sb, "      %s %s", m.Accessibility, m.Signature())
		if m.Description != "" {
			fmt.Fprintf(sb, "  # %s", m.Description)
		}
		sb.WriteByte('\n')
	}
}

package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/skel/sketch"
)

type JSONEncoder struct {
	w    io.Writer
	file *sketch.File
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(file *sketch.File) error {
	e.file = file
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(buildFile(e.file), "", "  ")
}

type jsonFile struct {
	Name       string          `json:"name"`
	Namespaces []jsonNamespace `json:"namespaces,omitempty"`
}

type jsonNamespace struct {
	Name       string     `json:"name"`
	Classes    []jsonType `json:"classes,omitempty"`
	Enums      []jsonType `json:"enums,omitempty"`
	Interfaces []jsonType `json:"interfaces,omitempty"`
}

type jsonType struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Properties  []jsonMember `json:"properties,omitempty"`
	Methods     []jsonMethod `json:"methods,omitempty"`
}

type jsonMember struct {
	Name          string `json:"name"`
	Type          string `json:"type"`
	Accessibility string `json:"accessibility"`
	Description   string `json:"description,omitempty"`
}

type jsonMethod struct {
	Name          string       `json:"name"`
	ReturnType    string       `json:"returnType"`
	Accessibility string       `json:"accessibility"`
	Description   string       `json:"description,omitempty"`
	Parameters    []jsonMember `json:"parameters,omitempty"`
}

func buildFile(f *sketch.File) jsonFile {
	out := jsonFile{Name: f.Name}
	for _, ns := range f.Namespaces {
		out.Namespaces = append(out.Namespaces, buildNamespace(ns))
	}
	return out
}

func buildNamespace(ns *sketch.Namespace) jsonNamespace {
	out := jsonNamespace{Name: ns.Name}
	for _, c := range ns.Classes {
		out.Classes = append(out.Classes, jsonType{
			Name:        c.Name,
			Description: c.Description,
			Properties:  buildMembers(c.Properties),
			Methods:     buildMethods(c.Methods),
		})
	}
	for _, e := range ns.Enums {
		out.Enums = append(out.Enums, jsonType{
			Name:        e.Name,
			Description: e.Description,
			Properties:  buildMembers(e.Properties),
		})
	}
	for _, i := range ns.Interfaces {
		out.Interfaces = append(out.Interfaces, jsonType{
			Name:        i.Name,
			Description: i.Description,
			Properties:  buildMembers(i.Properties),
			Methods:     buildMethods(i.Methods),
		})
	}
	return out
}

func buildMembers(props []*sketch.Property) []jsonMember {
	var out []jsonMember
	for _, p := range props {
		out = append(out, jsonMember{
			Name:          p.Name,
			Type:          p.Type,
			Accessibility: string(p.Accessibility),
			Description:   p.Description,
		})
	}
	return out
}

func buildMethods(methods []*sketch.Method) []jsonMethod {
	var out []jsonMethod
	for _, m := range methods {
		params := make([]jsonMember, 0, len(m.Parameters))
		for _, p := range m.Parameters {
			params = append(params, jsonMember{
				Name:          p.Name,
				Type:          p.Type,
				Accessibility: string(p.Accessibility),
			})
		}
		out = append(out, jsonMethod{
			Name:          m.Name,
			ReturnType:    m.ReturnType,
			Accessibility: string(m.Accessibility),
			Description:   m.Description,
			Parameters:    params,
		})
	}
	return out
}

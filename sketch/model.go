package sketch

import "strings"

type Accessibility string

const (
	AccessibilityPublic  Accessibility = "public"
	AccessibilityPrivate Accessibility = "private"
)

// File is the root of a parsed model. It owns every namespace declared in a
// single notation file; Name is the source identifier handed to the parser.
type File struct {
	Name       string
	Namespaces []*Namespace
}

type Namespace struct {
	Name       string
	Line       int
	Classes    []*Class
	Enums      []*Enum
	Interfaces []*Interface
}

type Class struct {
	Name        string
	Description string
	Line        int
	Methods     []*Method
	Properties  []*Property
}

func (c *Class) AddMethod(m *Method)     { c.Methods = append(c.Methods, m) }
func (c *Class) AddProperty(p *Property) { c.Properties = append(c.Properties, p) }

type Interface struct {
	Name        string
	Description string
	Line        int
	Methods     []*Method
	Properties  []*Property
}

func (i *Interface) AddMethod(m *Method)     { i.Methods = append(i.Methods, m) }
func (i *Interface) AddProperty(p *Property) { i.Properties = append(i.Properties, p) }

// Enum values are modeled as properties; an enum never owns methods.
type Enum struct {
	Name        string
	Description string
	Line        int
	Properties  []*Property
}

func (e *Enum) AddProperty(p *Property) { e.Properties = append(e.Properties, p) }

type Method struct {
	Name          string
	Description   string
	ReturnType    string
	Accessibility Accessibility
	Line          int
	Parameters    []*Property
}

func (m *Method) AddParameter(p *Property) { m.Parameters = append(m.Parameters, p) }

// Signature renders the method the way the notation's canonical long form
// would, e.g. "string greet(string name)".
func (m *Method) Signature() string {
	var sb strings.Builder
	sb.WriteString(m.ReturnType)
	sb.WriteByte(' ')
	sb.WriteString(m.Name)
	sb.WriteByte('(')
	for i, p := range m.Parameters {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Property doubles as a method parameter; parameters carry no description
// and are always public.
type Property struct {
	Name          string
	Description   string
	Type          string
	Accessibility Accessibility
	Line          int
}

func (p *Property) String() string {
	if p.Name == "" {
		return p.Type
	}
	return p.Type + " " + p.Name
}

// MethodContainer is satisfied by containers that accept method members:
// classes and interfaces.
type MethodContainer interface {
	AddMethod(*Method)
}

// PropertyContainer is satisfied by containers that accept property members:
// classes, interfaces and enums.
type PropertyContainer interface {
	AddProperty(*Property)
}

package sketch

import "testing"

func TestMethodSignature(t *testing.T) {
	tests := []struct {
		name   string
		method *Method
		want   string
	}{
		{
			"no parameters",
			&Method{Name: "now", ReturnType: "int"},
			"int now()",
		},
		{
			"one parameter",
			&Method{
				Name:       "greet",
				ReturnType: "string",
				Parameters: []*Property{{Name: "name", Type: "string"}},
			},
			"string greet(string name)",
		},
		{
			"two parameters",
			&Method{
				Name:       "sum",
				ReturnType: "float",
				Parameters: []*Property{
					{Name: "a", Type: "float"},
					{Name: "b", Type: "float"},
				},
			},
			"float sum(float a, float b)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.method.Signature(); got != tt.want {
				t.Errorf("Signature() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPropertyString(t *testing.T) {
	p := &Property{Name: "age", Type: "int"}
	if got := p.String(); got != "int age" {
		t.Errorf("String() = %q, want %q", got, "int age")
	}
	unnamed := &Property{Type: "var"}
	if got := unnamed.String(); got != "var" {
		t.Errorf("String() = %q, want %q", got, "var")
	}
}

func TestContainerCapabilities(t *testing.T) {
	var _ MethodContainer = &Class{}
	var _ MethodContainer = &Interface{}
	var _ PropertyContainer = &Class{}
	var _ PropertyContainer = &Interface{}
	var _ PropertyContainer = &Enum{}

	c := &Class{Name: "Foo"}
	c.AddMethod(&Method{Name: "bar"})
	c.AddProperty(&Property{Name: "baz"})
	if len(c.Methods) != 1 || len(c.Properties) != 1 {
		t.Errorf("appends not recorded: %d methods, %d properties", len(c.Methods), len(c.Properties))
	}
}

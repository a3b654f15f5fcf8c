package format

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/skel/sketch/parser"
)

func TestJSONEncoder(t *testing.T) {
	file, err := parser.Parse("fixture.sketch", []string{
		"ns App",
		"c User # a registered user",
		"s name # display name",
		"i _age",
		"s greet(s other)",
		"e Role",
		"s admin",
		"if Repo",
		"b save(User u)",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewJSONEncoder(&buf).Encode(file))

	var decoded struct {
		Name       string `json:"name"`
		Namespaces []struct {
			Name    string `json:"name"`
			Classes []struct {
				Name        string `json:"name"`
				Description string `json:"description"`
				Properties  []struct {
					Name          string `json:"name"`
					Type          string `json:"type"`
					Accessibility string `json:"accessibility"`
				} `json:"properties"`
				Methods []struct {
					Name       string `json:"name"`
					ReturnType string `json:"returnType"`
					Parameters []struct {
						Name string `json:"name"`
						Type string `json:"type"`
					} `json:"parameters"`
				} `json:"methods"`
			} `json:"classes"`
			Enums []struct {
				Name string `json:"name"`
			} `json:"enums"`
			Interfaces []struct {
				Name string `json:"name"`
			} `json:"interfaces"`
		} `json:"namespaces"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "fixture.sketch", decoded.Name)
	require.Len(t, decoded.Namespaces, 1)
	ns := decoded.Namespaces[0]
	assert.Equal(t, "App", ns.Name)

	require.Len(t, ns.Classes, 1)
	user := ns.Classes[0]
	assert.Equal(t, "User", user.Name)
	assert.Equal(t, "a registered user", user.Description)
	require.Len(t, user.Properties, 2)
	assert.Equal(t, "public", user.Properties[0].Accessibility)
	assert.Equal(t, "private", user.Properties[1].Accessibility)
	assert.Equal(t, "int", user.Properties[1].Type)
	require.Len(t, user.Methods, 1)
	assert.Equal(t, "greet", user.Methods[0].Name)
	assert.Equal(t, "string", user.Methods[0].ReturnType)
	require.Len(t, user.Methods[0].Parameters, 1)
	assert.Equal(t, "other", user.Methods[0].Parameters[0].Name)

	require.Len(t, ns.Enums, 1)
	assert.Equal(t, "Role", ns.Enums[0].Name)
	require.Len(t, ns.Interfaces, 1)
	assert.Equal(t, "Repo", ns.Interfaces[0].Name)
}

func TestOutlineEncoder(t *testing.T) {
	file, err := parser.Parse("fixture.sketch", []string{
		"ns App",
		"c User # a registered user",
		"s name # display name",
		"s greet(s other)",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewOutlineEncoder(&buf).Encode(file))
	out := buf.String()

	assert.Contains(t, out, "file fixture.sketch\n")
	assert.Contains(t, out, "  namespace App\n")
	assert.Contains(t, out, "    class User  # a registered user\n")
	assert.Contains(t, out, "      public string name  # display name\n")
	assert.Contains(t, out, "      public string greet(string other)  # TODO\n")
}

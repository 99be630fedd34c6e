package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"
)

// File is the input of RenderFile.
type File struct {
	Package string
	Types   []TypeDef
}

var fileTemplate = template.Must(template.New("paths").Parse(`// Code generated by fluentgen. DO NOT EDIT.

package {{ .Package }}
{{ range .Types }}
// Property paths of {{ .Name }}.
const (
{{- range .Paths }}
	{{ .Const }} = {{ printf "%q" .Path }}
{{- end }}
)
{{ end }}`))

// RenderFile renders gofmt-formatted constant declarations for f.
func RenderFile(f File) ([]byte, error) {
	if f.Package == "" {
		return nil, fmt.Errorf("render: package name is empty")
	}
	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, f); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("render: format: %w", err)
	}
	return out, nil
}

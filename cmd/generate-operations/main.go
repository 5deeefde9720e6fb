// Package main generates the schematicsv1 operation table from the
// Schematics OpenAPI document.
//
// Usage:
//
//	go run ./cmd/generate-operations -spec schematics.json -out schematicsv1/operations.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"text/template"

	"github.com/getkin/kin-openapi/openapi3"
)

func main() {
	specPath := flag.String("spec", "schematics.json", "OpenAPI document to read")
	outPath := flag.String("out", "schematicsv1/operations.go", "file to write")
	pkg := flag.String("package", "schematicsv1", "package name of the generated file")
	flag.Parse()

	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = false
	doc, err := loader.LoadFromFile(*specPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading spec: %v\n", err)
		os.Exit(1)
	}

	groups, err := extractGroups(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error extracting operations: %v\n", err)
		os.Exit(1)
	}

	src, err := render(*pkg, groups)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating code: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outPath, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *outPath, err)
		os.Exit(1)
	}

	n := 0
	for _, g := range groups {
		n += len(g.Operations)
	}
	fmt.Printf("Generated %s with %d operations\n", *outPath, n)
}

var tableTemplate = template.Must(template.New("operations").Funcs(template.FuncMap{
	"method": methodConst,
}).Parse(`// Code generated by generate-operations. DO NOT EDIT.

package {{.Package}}

import (
	"net/http"

	"github.com/IBM/schematics-go-sdk/operation"
)

var operations = []operation.Operation{
{{- range $i, $g := .Groups}}
{{- if $i}}
{{end}}
	// {{$g.Name}}
{{- range $g.Operations}}
	{
		ID:     "{{.ID}}",
		Method: {{method .Method}},
		Path:   "{{.Path}}",
{{- if .Accept}}
		Accept: "{{.Accept}}",
{{- end}}
{{- if .Fields}}
		Fields: []operation.Field{
{{- range .Fields}}
			operation.{{.Helper}}("{{.Name}}", "{{.Wire}}"){{if .Required}}.MarkRequired(){{end}},
{{- end}}
		},
{{- end}}
	},
{{- end}}
{{- end}}
}
`))

func render(pkg string, groups []Group) ([]byte, error) {
	var buf bytes.Buffer
	err := tableTemplate.Execute(&buf, struct {
		Package string
		Groups  []Group
	}{pkg, groups})
	if err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w\n%s", err, buf.Bytes())
	}
	return src, nil
}

func methodConst(method string) string {
	switch method {
	case "GET":
		return "http.MethodGet"
	case "POST":
		return "http.MethodPost"
	case "PUT":
		return "http.MethodPut"
	case "PATCH":
		return "http.MethodPatch"
	case "DELETE":
		return "http.MethodDelete"
	case "HEAD":
		return "http.MethodHead"
	default:
		return fmt.Sprintf("%q", method)
	}
}

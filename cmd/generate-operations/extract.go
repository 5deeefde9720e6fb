package main

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Group is a commented block of the operation table.
type Group struct {
	Name       string
	Operations []Operation
}

// Operation is one rendered table entry.
type Operation struct {
	ID     string
	Method string
	Path   string
	Accept string
	Fields []Field

	// position in the document, used to keep declaration order
	order int
}

// Field is one rendered operation.Field.
type Field struct {
	Helper   string
	Name     string
	Wire     string
	Required bool
}

// extractGroups walks every operation of doc and returns them grouped by
// their first tag, in groupOrder, each group in document order.
func extractGroups(doc *openapi3.T) ([]Group, error) {
	if doc.Paths == nil {
		return nil, fmt.Errorf("document has no paths")
	}

	byGroup := map[string][]Operation{}
	seen := map[string]string{}

	paths := doc.Paths.InMatchingOrder()
	sort.Strings(paths)
	order := 0
	for _, path := range paths {
		item := doc.Paths.Value(path)
		methods := make([]string, 0, len(item.Operations()))
		for m := range item.Operations() {
			methods = append(methods, m)
		}
		sort.Slice(methods, func(i, j int) bool { return methodRank(methods[i]) < methodRank(methods[j]) })

		for _, method := range methods {
			op := item.Operations()[method]
			if op.OperationID == "" {
				continue
			}
			entry, err := extractOperation(path, method, item, op)
			if err != nil {
				return nil, fmt.Errorf("%s %s: %w", method, path, err)
			}
			if prev, dup := seen[entry.ID]; dup {
				return nil, fmt.Errorf("operation %s defined at %s and %s %s", entry.ID, prev, method, path)
			}
			seen[entry.ID] = method + " " + path

			entry.order = sortKey(op, order)
			order++
			group := groupOf(op.Tags)
			byGroup[group] = append(byGroup[group], entry)
		}
	}

	var groups []Group
	for _, name := range orderedGroups(byGroup) {
		ops := byGroup[name]
		sort.SliceStable(ops, func(i, j int) bool { return ops[i].order < ops[j].order })
		groups = append(groups, Group{Name: name, Operations: ops})
	}
	return groups, nil
}

func extractOperation(path, method string, item *openapi3.PathItem, op *openapi3.Operation) (Operation, error) {
	entry := Operation{
		ID:     operationName(op.OperationID),
		Method: method,
		Path:   path,
		Accept: acceptOf(op),
	}

	params := append(openapi3.Parameters{}, item.Parameters...)
	params = append(params, op.Parameters...)
	for _, ref := range params {
		p := ref.Value
		if p == nil {
			continue
		}
		f := Field{Name: recordName(p.Name), Wire: p.Name, Required: p.Required}
		switch p.In {
		case openapi3.ParameterInPath:
			f.Helper = "Path"
			f.Required = false // implied by Path
		case openapi3.ParameterInQuery:
			f.Helper = "Query"
		case openapi3.ParameterInHeader:
			f.Helper = "Header"
		default:
			continue
		}
		entry.Fields = append(entry.Fields, f)
	}

	if op.RequestBody == nil || op.RequestBody.Value == nil {
		return entry, nil
	}
	content := op.RequestBody.Value.Content
	if mt := content.Get("application/json"); mt != nil {
		for _, prop := range properties(mt.Schema) {
			entry.Fields = append(entry.Fields, Field{Helper: "Body", Name: recordName(prop), Wire: prop})
		}
		return entry, nil
	}
	if mt := content.Get("multipart/form-data"); mt != nil {
		for _, prop := range properties(mt.Schema) {
			entry.Fields = append(entry.Fields,
				Field{Helper: "FormFile", Name: recordName(prop), Wire: prop},
				Field{Helper: "FormContentType", Name: recordName(prop) + "ContentType", Wire: prop},
			)
		}
		return entry, nil
	}
	return entry, fmt.Errorf("unsupported request body media types %v", mediaTypes(content))
}

// properties returns the property names of a body schema ordered by their
// x-order extension, then by name.
func properties(ref *openapi3.SchemaRef) []string {
	if ref == nil || ref.Value == nil {
		return nil
	}
	names := make([]string, 0, len(ref.Value.Properties))
	for name := range ref.Value.Properties {
		names = append(names, name)
	}
	rank := func(name string) int {
		p := ref.Value.Properties[name]
		if p == nil || p.Value == nil {
			return 1 << 30
		}
		return extensionInt(p.Value.Extensions, "x-order", 1<<30)
	}
	sort.Slice(names, func(i, j int) bool {
		ri, rj := rank(names[i]), rank(names[j])
		if ri != rj {
			return ri < rj
		}
		return names[i] < names[j]
	})
	return names
}

// acceptOf returns the media type of the success response when it is not JSON.
func acceptOf(op *openapi3.Operation) string {
	if op.Responses == nil {
		return ""
	}
	for code, ref := range op.Responses.Map() {
		if !strings.HasPrefix(code, "2") || ref.Value == nil || len(ref.Value.Content) == 0 {
			continue
		}
		if ref.Value.Content.Get("application/json") != nil {
			return ""
		}
		types := mediaTypes(ref.Value.Content)
		return types[0]
	}
	return ""
}

func mediaTypes(c openapi3.Content) []string {
	types := make([]string, 0, len(c))
	for t := range c {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

func sortKey(op *openapi3.Operation, fallback int) int {
	return extensionInt(op.Extensions, "x-order", 1<<20+fallback)
}

func extensionInt(ext map[string]any, key string, def int) int {
	switch v := ext[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return def
	}
}

func methodRank(m string) int {
	for i, x := range []string{"GET", "POST", "PUT", "PATCH", "DELETE"} {
		if m == x {
			return i
		}
	}
	return 99
}

func groupOf(tags []string) string {
	if len(tags) == 0 {
		return "other"
	}
	if name, ok := tagGroups[strings.ToLower(tags[0])]; ok {
		return name
	}
	return strings.ToLower(tags[0])
}

func orderedGroups(byGroup map[string][]Operation) []string {
	var names []string
	for _, g := range groupOrder {
		if _, ok := byGroup[g]; ok {
			names = append(names, g)
		}
	}
	var rest []string
	for g := range byGroup {
		if !slices.Contains(groupOrder, g) {
			rest = append(rest, g)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

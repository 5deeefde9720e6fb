// Package operation turns typed option records into transport-ready request
// descriptors.
//
// Every remote operation is declared as data: an Operation names its HTTP
// method, its path template and the fields it accepts, each field tagged with
// where it travels (path, query, header, JSON body or multipart form). A
// single generic Build function consumes that table entry together with the
// caller's parameters:
//
//	op := operation.Operation{
//	    ID:     "GetWorkspace",
//	    Method: http.MethodGet,
//	    Path:   "/v1/workspaces/{w_id}",
//	    Fields: []operation.Field{operation.Path("wID", "w_id")},
//	}
//	req, err := operation.Build(op, operation.ParamsOf(opts))
//
// Build validates required fields before producing anything, so a request
// that is missing parameters never reaches the transport.
package operation

import (
	"net/http"
	"net/url"
)

// Location says where a field is carried on the wire.
type Location int

const (
	InPath Location = iota
	InQuery
	InHeader
	InBody
	InFormFile
	InFormContentType
)

func (l Location) String() string {
	switch l {
	case InPath:
		return "path"
	case InQuery:
		return "query"
	case InHeader:
		return "header"
	case InBody:
		return "body"
	case InFormFile:
		return "formData"
	case InFormContentType:
		return "formContentType"
	default:
		return "unknown"
	}
}

// Field maps one parameter-record name to its wire name and location.
type Field struct {
	Name     string
	Wire     string
	In       Location
	Required bool
}

// MarkRequired returns a copy of f marked as required.
func (f Field) MarkRequired() Field {
	f.Required = true
	return f
}

// Path declares a path placeholder. Path fields are always required.
func Path(name, wire string) Field {
	return Field{Name: name, Wire: wire, In: InPath, Required: true}
}

// Query declares a query parameter.
func Query(name, wire string) Field {
	return Field{Name: name, Wire: wire, In: InQuery}
}

// Header declares a header parameter. wire is the documented header name.
func Header(name, wire string) Field {
	return Field{Name: name, Wire: wire, In: InHeader}
}

// Body declares a top-level JSON body property.
func Body(name, wire string) Field {
	return Field{Name: name, Wire: wire, In: InBody}
}

// FormFile declares the byte content of a multipart part named wire.
func FormFile(name, wire string) Field {
	return Field{Name: name, Wire: wire, In: InFormFile}
}

// FormContentType declares the content type of the multipart part named wire.
func FormContentType(name, wire string) Field {
	return Field{Name: name, Wire: wire, In: InFormContentType}
}

// Operation describes one remote operation.
type Operation struct {
	ID     string
	Method string
	Path   string
	Fields []Field
	// Accept overrides the default Accept header (application/json).
	Accept string
}

// HasBody reports whether the operation sends a JSON body.
func (o Operation) HasBody() bool {
	return o.has(InBody)
}

// IsMultipart reports whether the operation sends multipart form data.
func (o Operation) IsMultipart() bool {
	return o.has(InFormFile)
}

func (o Operation) has(in Location) bool {
	for _, f := range o.Fields {
		if f.In == in {
			return true
		}
	}
	return false
}

// RequiredFields returns the record names of the fields Build insists on.
func (o Operation) RequiredFields() []string {
	var names []string
	for _, f := range o.Fields {
		if f.Required || f.In == InPath {
			names = append(names, f.Name)
		}
	}
	return names
}

// FieldsIn returns the fields carried in the given location, in declaration order.
func (o Operation) FieldsIn(in Location) []Field {
	var fields []Field
	for _, f := range o.Fields {
		if f.In == in {
			fields = append(fields, f)
		}
	}
	return fields
}

// FormPart is one part of a multipart request body.
type FormPart struct {
	Name        string
	Filename    string
	ContentType string
	Data        []byte
}

// Request is a fully resolved request descriptor. It is built once, handed to
// a transport and discarded.
type Request struct {
	OperationID  string
	Method       string
	PathTemplate string
	PathParams   map[string]string
	// Path is PathTemplate with every placeholder replaced by its escaped value.
	Path   string
	Query  url.Values
	Header http.Header
	// Body is nil for operations that send no JSON body.
	Body map[string]any
	// Form is non-nil only for multipart uploads.
	Form []FormPart
}

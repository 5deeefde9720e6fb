package operation

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/oapi-codegen/runtime"

	"github.com/IBM/schematics-go-sdk/core"
)

const (
	mediaTypeJSON        = "application/json"
	mediaTypeOctetStream = "application/octet-stream"
)

// Build validates params against op and produces the request descriptor.
//
// When any required parameter is absent Build returns a
// *core.MissingParametersError listing all of them and no descriptor.
// Caller headers (Params.Headers) are applied last and win over every
// default and header-designated field.
func Build(op Operation, params Params) (*Request, error) {
	if params == nil {
		params = Params{}
	}
	if missing := missingFields(op, params); len(missing) > 0 {
		return nil, core.NewMissingParametersError(op.ID, missing)
	}

	req := &Request{
		OperationID:  op.ID,
		Method:       op.Method,
		PathTemplate: op.Path,
		PathParams:   map[string]string{},
		Query:        url.Values{},
		Header:       http.Header{},
	}

	path := op.Path
	for _, f := range op.FieldsIn(InPath) {
		styled, err := runtime.StyleParamWithLocation("simple", false, f.Wire, runtime.ParamLocationPath, pathValue(params, f.Name))
		if err != nil {
			return nil, fmt.Errorf("%s: path parameter %s: %w", op.ID, f.Name, err)
		}
		req.PathParams[f.Wire] = styled
		path = strings.ReplaceAll(path, "{"+f.Wire+"}", styled)
	}
	req.Path = path

	for _, f := range op.FieldsIn(InQuery) {
		value, ok := params.Get(f.Name)
		if !ok {
			continue
		}
		fragment, err := runtime.StyleParamWithLocation("form", true, f.Wire, runtime.ParamLocationQuery, value)
		if err != nil {
			return nil, fmt.Errorf("%s: query parameter %s: %w", op.ID, f.Name, err)
		}
		parsed, err := url.ParseQuery(fragment)
		if err != nil {
			return nil, fmt.Errorf("%s: query parameter %s: %w", op.ID, f.Name, err)
		}
		for k, vs := range parsed {
			for _, v := range vs {
				req.Query.Add(k, v)
			}
		}
	}

	accept := op.Accept
	if accept == "" {
		accept = mediaTypeJSON
	}
	req.Header.Set("Accept", accept)
	if op.HasBody() {
		req.Header.Set("Content-Type", mediaTypeJSON)
	}
	for _, f := range op.FieldsIn(InHeader) {
		value, ok := params.Get(f.Name)
		if !ok {
			continue
		}
		styled, err := runtime.StyleParamWithLocation("simple", false, f.Wire, runtime.ParamLocationHeader, value)
		if err != nil {
			return nil, fmt.Errorf("%s: header parameter %s: %w", op.ID, f.Name, err)
		}
		req.Header.Set(f.Wire, styled)
	}
	for name, value := range params.Headers() {
		req.Header.Set(name, value)
	}

	if op.HasBody() {
		req.Body = map[string]any{}
		for _, f := range op.FieldsIn(InBody) {
			if value, ok := params.Get(f.Name); ok {
				req.Body[f.Wire] = value
			}
		}
	}

	if op.IsMultipart() {
		form, err := buildForm(op, params)
		if err != nil {
			return nil, err
		}
		req.Form = form
	}

	return req, nil
}

// missingFields lists the required fields that are absent or hold an empty
// string. An empty path segment would address a different endpoint.
func missingFields(op Operation, params Params) []string {
	var missing []string
	for _, name := range op.RequiredFields() {
		value, ok := params.Get(name)
		if s, isString := value.(string); !ok || (isString && s == "") {
			missing = append(missing, name)
		}
	}
	return missing
}

func pathValue(params Params, name string) any {
	value, _ := params.Get(name)
	return value
}

func buildForm(op Operation, params Params) ([]FormPart, error) {
	contentTypes := map[string]string{}
	for _, f := range op.FieldsIn(InFormContentType) {
		value, _ := params.Get(f.Name)
		if value, ok := value.(string); ok && value != "" {
			contentTypes[f.Wire] = value
		}
	}

	var form []FormPart
	for _, f := range op.FieldsIn(InFormFile) {
		value, ok := params.Get(f.Name)
		if !ok {
			continue
		}
		var data []byte
		switch v := value.(type) {
		case []byte:
			data = v
		case string:
			data = []byte(v)
		default:
			return nil, fmt.Errorf("%s: form field %s: unsupported type %T", op.ID, f.Name, value)
		}
		contentType := contentTypes[f.Wire]
		if contentType == "" {
			contentType = mediaTypeOctetStream
		}
		form = append(form, FormPart{
			Name:        f.Wire,
			Filename:    f.Wire,
			ContentType: contentType,
			Data:        data,
		})
	}
	return form, nil
}

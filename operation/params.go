package operation

import (
	"reflect"
)

// HeadersKey is the Params key under which caller-supplied headers travel.
const HeadersKey = "headers"

// Params holds the present parameters of one call, keyed by record name.
// A key holding nil, a nil pointer, slice or map counts as absent.
type Params map[string]any

// Has reports whether name is present.
func (p Params) Has(name string) bool {
	_, ok := p.Get(name)
	return ok
}

// Get returns the value of name with pointers dereferenced. ok is false when
// name is absent.
func (p Params) Get(name string) (value any, ok bool) {
	v, ok := p[name]
	if !ok || v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return nil, false
		}
		return rv.Elem().Interface(), true
	case reflect.Slice, reflect.Map:
		if rv.IsNil() {
			return nil, false
		}
	}
	return v, true
}

// Headers returns the caller-supplied headers, if any.
func (p Params) Headers() map[string]string {
	h, _ := p[HeadersKey].(map[string]string)
	return h
}

// ParamsOf extracts Params from an option record.
//
// Exported fields tagged `param:"name"` are read. Nil pointers, nil slices and
// maps, and zero-valued non-pointer fields are absent; pointers are
// dereferenced. A field named Headers of type map[string]string supplies the
// caller headers. v may be a struct, a pointer to one, or nil.
func ParamsOf(v any) Params {
	params := Params{}
	if v == nil {
		return params
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return params
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return params
	}

	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		fv := rv.Field(i)

		if sf.Name == "Headers" {
			if h, ok := fv.Interface().(map[string]string); ok && len(h) > 0 {
				params[HeadersKey] = h
			}
			continue
		}

		name := sf.Tag.Get("param")
		if name == "" || name == "-" {
			continue
		}
		if value, ok := present(fv); ok {
			params[name] = value
		}
	}
	return params
}

func present(fv reflect.Value) (any, bool) {
	switch fv.Kind() {
	case reflect.Pointer:
		if fv.IsNil() {
			return nil, false
		}
		return fv.Elem().Interface(), true
	case reflect.Slice, reflect.Map, reflect.Interface:
		if fv.IsNil() {
			return nil, false
		}
		return fv.Interface(), true
	default:
		if fv.IsZero() {
			return nil, false
		}
		return fv.Interface(), true
	}
}

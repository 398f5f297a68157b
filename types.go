package asaas

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/lucasbrito-wdt/asaas-sdk-go/internal/api"
)

// String returns a pointer to v.
func String(v string) *string { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Float64 returns a pointer to v.
func Float64(v float64) *float64 { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// optionalString maps the empty string to nil.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Pagination holds the offset/limit pair accepted by every list endpoint.
type Pagination struct {
	Offset *int `url:"offset"`
	Limit  *int `url:"limit"`
}

// ListResponse is the envelope returned by list endpoints.
type ListResponse[T any] struct {
	Object     string `json:"object"`
	HasMore    bool   `json:"hasMore"`
	TotalCount int    `json:"totalCount"`
	Limit      int    `json:"limit"`
	Offset     int    `json:"offset"`
	Data       []T    `json:"data"`

	Extra map[string]json.RawMessage `json:"-"`
}

type listResponseAlias[T any] ListResponse[T]

func (r *ListResponse[T]) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*listResponseAlias[T])(r), &r.Extra)
}

// DeleteResponse is returned by endpoints that remove a resource.
type DeleteResponse struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`

	Extra map[string]json.RawMessage `json:"-"`
}

type deleteResponseAlias DeleteResponse

func (r *DeleteResponse) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*deleteResponseAlias)(r), &r.Extra)
}

// File is an upload part. Content may be []byte, string, *bytes.Buffer or
// an io.Reader. An empty Name defaults to the form field name.
type File struct {
	Name    string
	Content any
}

// part returns the filename and content for a multipart file field. A nil
// file yields nil content, which the form skips.
func (f *File) part() (string, any) {
	if f == nil {
		return "", nil
	}
	return f.Name, f.Content
}

// applyQuery adds every non-nil field of params tagged `url:"name"` as a
// query parameter. Embedded structs are flattened.
func applyQuery(rb *api.RequestBuilder, params any) *api.RequestBuilder {
	rv := reflect.ValueOf(params)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return rb
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return rb
	}

	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		fv := rv.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			applyQuery(rb, fv.Interface())
			continue
		}
		name := f.Tag.Get("url")
		if name == "" || name == "-" || !f.IsExported() {
			continue
		}
		rb.OptionalQuery(name, fv.Interface())
	}
	return rb
}

var knownFieldsCache sync.Map // reflect.Type -> map[string]struct{}

// knownFields returns the JSON member names decoded by t.
func knownFields(t reflect.Type) map[string]struct{} {
	if v, ok := knownFieldsCache.Load(t); ok {
		return v.(map[string]struct{})
	}
	fields := make(map[string]struct{})
	collectFields(t, fields)
	knownFieldsCache.Store(t, fields)
	return fields
}

func collectFields(t reflect.Type, fields map[string]struct{}) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if f.Anonymous && name == "" {
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				collectFields(ft, fields)
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		fields[name] = struct{}{}
	}
}

// unmarshalWithExtras decodes data into v, a pointer to an alias of the
// response struct, and stores the members v does not model in extra.
func unmarshalWithExtras(data []byte, v any, extra *map[string]json.RawMessage) error {
	if err := api.Unmarshal(data, v); err != nil {
		return err
	}

	var members map[string]json.RawMessage
	if err := api.Unmarshal(data, &members); err != nil {
		return fmt.Errorf("collect extra fields: %w", err)
	}

	known := knownFields(reflect.TypeOf(v).Elem())
	for name := range members {
		if _, ok := known[name]; ok {
			delete(members, name)
		}
	}
	if len(members) == 0 {
		*extra = nil
		return nil
	}
	*extra = members
	return nil
}

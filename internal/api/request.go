package api

import (
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

const jsonContentType = "application/json; charset=utf-8"

// Request is a fully built HTTP request description. It is not modified
// after Build returns it.
type Request struct {
	Method string
	URL    string
	// Template is the unexpanded path, used as a low-cardinality label.
	Template string
	Header   http.Header
	// Body is nil for methods that never carry one.
	Body []byte
}

// RequestBuilder accumulates the parts of a request. Builders are not safe
// for concurrent use; Build may be called any number of times.
type RequestBuilder struct {
	method     string
	baseURL    string
	template   string
	pathParams map[string]string
	query      []string
	header     http.Header
	content    any
	hasContent bool
	form       *MultipartForm
	err        error
}

// NewRequest starts a request for method against baseURL joined with the
// path template. Template placeholders look like {id}.
func NewRequest(method, baseURL, template string) *RequestBuilder {
	return &RequestBuilder{
		method:     strings.ToUpper(method),
		baseURL:    baseURL,
		template:   template,
		pathParams: make(map[string]string),
		header:     make(http.Header),
	}
}

// PathParam substitutes {name} in the template with the escaped value.
func (b *RequestBuilder) PathParam(name, value string) *RequestBuilder {
	b.pathParams[name] = value
	return b
}

// Query appends key=value. A nil value is sent as the literal "null".
func (b *RequestBuilder) Query(key string, value any) *RequestBuilder {
	pairs, err := queryPairs(key, value)
	if err != nil {
		if b.err == nil {
			b.err = fmt.Errorf("query parameter %q: %w", key, err)
		}
		return b
	}
	b.query = append(b.query, pairs...)
	return b
}

// OptionalQuery appends key=value unless value is nil or a nil pointer.
func (b *RequestBuilder) OptionalQuery(key string, value any) *RequestBuilder {
	if isNil(value) {
		return b
	}
	return b.Query(key, value)
}

// Header sets a header, replacing any earlier value.
func (b *RequestBuilder) Header(key, value string) *RequestBuilder {
	b.header.Set(key, value)
	return b
}

// OptionalHeader sets a header unless value is nil.
func (b *RequestBuilder) OptionalHeader(key string, value *string) *RequestBuilder {
	if value == nil {
		return b
	}
	return b.Header(key, *value)
}

// APIKeyAuth sets the API key header when a key is configured.
func (b *RequestBuilder) APIKeyAuth(auth APIKeyAuth) *RequestBuilder {
	if auth.Key == "" {
		return b
	}
	header := auth.Header
	if header == "" {
		header = DefaultAPIKeyHeader
	}
	return b.Header(header, auth.Key)
}

// JSON sets the value encoded as the request body.
func (b *RequestBuilder) JSON(content any) *RequestBuilder {
	b.content = content
	b.hasContent = !isNil(content)
	b.form = nil
	return b
}

// Multipart sets a multipart/form-data body.
func (b *RequestBuilder) Multipart(form *MultipartForm) *RequestBuilder {
	b.form = form
	b.content = nil
	b.hasContent = false
	return b
}

// Build assembles the request. It performs no I/O.
func (b *RequestBuilder) Build() (*Request, error) {
	if b.err != nil {
		return nil, b.err
	}

	req := &Request{
		Method:   b.method,
		URL:      b.url(),
		Template: b.template,
		Header:   b.header.Clone(),
	}

	if !methodHasBody(b.method) {
		return req, nil
	}

	switch {
	case b.form != nil:
		body, contentType, err := b.form.Encode()
		if err != nil {
			return nil, fmt.Errorf("failed to encode multipart body: %w", err)
		}
		req.Body = body
		req.Header.Set("Content-Type", contentType)
	case b.hasContent:
		body, err := Marshal(b.content)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		req.Body = body
		if req.Header.Get("Content-Type") == "" {
			req.Header.Set("Content-Type", jsonContentType)
		}
	default:
		req.Body = []byte("{}")
	}

	return req, nil
}

func (b *RequestBuilder) url() string {
	path := b.template
	for name, value := range b.pathParams {
		path = strings.ReplaceAll(path, "{"+name+"}", url.PathEscape(value))
	}

	base := strings.TrimSuffix(b.baseURL, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	u := base + path
	if len(b.query) > 0 {
		u += "?" + strings.Join(b.query, "&")
	}
	return u
}

func methodHasBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	default:
		return false
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

// queryEscape escapes like encodeURIComponent: spaces become %20, not '+'.
func queryEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func queryPairs(key string, value any) ([]string, error) {
	if value == nil {
		return []string{key + "=null"}, nil
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return []string{key + "=null"}, nil
		}
		rv = rv.Elem()
	}
	if (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Map) && rv.IsNil() {
		return []string{key + "=null"}, nil
	}

	if s, ok := stringer(rv); ok {
		return []string{key + "=" + queryEscape(s)}, nil
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		pairs := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			s, err := queryValue(rv.Index(i))
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, key+"="+queryEscape(s))
		}
		return pairs, nil
	}

	s, err := queryValue(rv)
	if err != nil {
		return nil, err
	}
	return []string{key + "=" + queryEscape(s)}, nil
}

// queryValue renders one value: scalars as text, maps and structs as JSON.
func queryValue(rv reflect.Value) (string, error) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "null", nil
		}
		rv = rv.Elem()
	}

	if s, ok := stringer(rv); ok {
		return s, nil
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), nil
	case reflect.Map, reflect.Struct, reflect.Slice, reflect.Array:
		data, err := Marshal(rv.Interface())
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unsupported query value of type %s", rv.Type())
	}
}

func stringer(rv reflect.Value) (string, bool) {
	if !rv.CanInterface() {
		return "", false
	}
	if s, ok := rv.Interface().(fmt.Stringer); ok {
		return s.String(), true
	}
	return "", false
}

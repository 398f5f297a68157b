package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"reflect"
	"strings"
)

const fileContentType = "application/octet-stream"

// MultipartForm is a multipart/form-data body assembled in memory so that
// it can be replayed on retries.
type MultipartForm struct {
	parts []formPart
	err   error
}

type formPart struct {
	field    string
	filename string
	value    string
	content  []byte
	isFile   bool
}

// NewMultipartForm returns an empty form.
func NewMultipartForm() *MultipartForm {
	return &MultipartForm{}
}

// Field adds a text field. Nil values are skipped; other values are rendered
// the same way as query values.
func (f *MultipartForm) Field(name string, value any) *MultipartForm {
	if isNil(value) {
		return f
	}
	s, err := queryValue(reflect.ValueOf(value))
	if err != nil {
		f.setErr(fmt.Errorf("field %q: %w", name, err))
		return f
	}
	f.parts = append(f.parts, formPart{field: name, value: s})
	return f
}

// File adds a file part. content may be a []byte, a string, a *bytes.Buffer,
// a fixed-size byte array or any io.Reader; nil content is skipped.
func (f *MultipartForm) File(field, filename string, content any) *MultipartForm {
	if isNil(content) {
		return f
	}
	data, err := fileBytes(content)
	if err != nil {
		f.setErr(fmt.Errorf("file %q: %w", field, err))
		return f
	}
	if filename == "" {
		filename = field
	}
	f.parts = append(f.parts, formPart{field: field, filename: filename, content: data, isFile: true})
	return f
}

// Len returns the number of parts added so far.
func (f *MultipartForm) Len() int {
	return len(f.parts)
}

// Encode writes the form and returns the body with its Content-Type.
func (f *MultipartForm) Encode() ([]byte, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, p := range f.parts {
		if !p.isFile {
			if err := w.WriteField(p.field, p.value); err != nil {
				return nil, "", err
			}
			continue
		}

		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			escapeQuotes(p.field), escapeQuotes(p.filename)))
		h.Set("Content-Type", fileContentType)
		pw, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := pw.Write(p.content); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

func (f *MultipartForm) setErr(err error) {
	if f.err == nil {
		f.err = err
	}
}

func fileBytes(content any) ([]byte, error) {
	switch c := content.(type) {
	case []byte:
		return c, nil
	case string:
		return []byte(c), nil
	case *bytes.Buffer:
		return bytes.Clone(c.Bytes()), nil
	case bytes.Buffer:
		return bytes.Clone(c.Bytes()), nil
	case io.Reader:
		return io.ReadAll(c)
	}

	rv := reflect.ValueOf(content)
	if rv.Kind() == reflect.Array && rv.Type().Elem().Kind() == reflect.Uint8 {
		data := make([]byte, rv.Len())
		reflect.Copy(reflect.ValueOf(data), rv)
		return data, nil
	}

	return nil, fmt.Errorf("unsupported file content of type %T", content)
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

// Package netx builds multipart/form-data request bodies for the API client.
package netx

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
)

type field struct {
	name  string
	value string
}

type filePart struct {
	field       string
	fileName    string
	contentType string
	data        []byte
}

// Form collects text fields and file parts in insertion order. Repeating a
// field name produces repeated parts, which is how list values travel.
type Form struct {
	fields []field
	files  []filePart
}

func NewForm() *Form {
	return &Form{}
}

func (f *Form) Add(name, value string) *Form {
	f.fields = append(f.fields, field{name: name, value: value})
	return f
}

func (f *Form) AddAll(name string, values []string) *Form {
	for _, v := range values {
		f.Add(name, v)
	}
	return f
}

// AddFile attaches a file part. An empty contentType is sent as
// application/octet-stream.
func (f *Form) AddFile(fieldName, fileName, contentType string, data []byte) *Form {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	f.files = append(f.files, filePart{field: fieldName, fileName: fileName, contentType: contentType, data: data})
	return f
}

// Encode renders the form. The returned content type carries the boundary.
func (f *Form) Encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, fl := range f.fields {
		if err := w.WriteField(fl.name, fl.value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", fl.name, err)
		}
	}

	for _, fp := range f.files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			escapeQuotes(fp.field), escapeQuotes(fp.fileName)))
		h.Set("Content-Type", fp.contentType)

		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("create part %s: %w", fp.field, err)
		}
		if _, err := part.Write(fp.data); err != nil {
			return nil, "", fmt.Errorf("write part %s: %w", fp.field, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return &buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

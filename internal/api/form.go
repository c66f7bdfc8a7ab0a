package api

import (
	"bytes"
	"mime/multipart"
)

// Form is a multipart/form-data payload for upload endpoints. The encoded
// content type carries the boundary chosen by mime/multipart, so callers
// must never set a JSON content type alongside it.
type Form struct {
	fields []formField
	files  []formFile
}

type formField struct {
	name, value string
}

type formFile struct {
	field, filename string
	content         []byte
}

// NewForm returns an empty multipart form.
func NewForm() *Form { return &Form{} }

// Set adds a plain field to the form.
func (f *Form) Set(name, value string) {
	f.fields = append(f.fields, formField{name: name, value: value})
}

// AddFile adds a file part to the form.
func (f *Form) AddFile(field, filename string, content []byte) {
	f.files = append(f.files, formFile{field: field, filename: filename, content: content})
}

// encode renders the form body and its boundary-bearing content type.
func (f *Form) encode() ([]byte, string, error) {
	buf := new(bytes.Buffer)
	w := multipart.NewWriter(buf)
	for _, fld := range f.fields {
		if err := w.WriteField(fld.name, fld.value); err != nil {
			return nil, "", err
		}
	}
	for _, file := range f.files {
		part, err := w.CreateFormFile(file.field, file.filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(file.content); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

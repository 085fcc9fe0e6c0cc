package restclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
)

type partKind int

const (
	fieldPart partKind = iota
	filePart
)

type part struct {
	kind     partKind
	name     string
	value    string
	filename string
	content  []byte
}

// Payload accumulates the parts of a multipart/form-data request: scalar
// fields, structured fields serialized to JSON text, and file attachments.
// Parts are written in the order they were added.
type Payload struct {
	parts []part
}

func NewPayload() *Payload {
	return &Payload{}
}

func (p *Payload) AddField(name, value string) {
	p.parts = append(p.parts, part{kind: fieldPart, name: name, value: value})
}

// AddJSONField serializes value to its canonical JSON text and attaches it as
// an ordinary form field.
func (p *Payload) AddJSONField(name string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode field %s: %w", name, err)
	}
	p.parts = append(p.parts, part{kind: fieldPart, name: name, value: string(encoded)})

	return nil
}

func (p *Payload) AddFile(field, filename string, content []byte) {
	p.parts = append(p.parts, part{kind: filePart, name: field, filename: filename, content: content})
}

// Encode renders the payload to a request body and the matching Content-Type
// header value.
func (p *Payload) Encode() ([]byte, string, error) {
	var buffer bytes.Buffer
	writer := multipart.NewWriter(&buffer)

	for _, item := range p.parts {
		switch item.kind {
		case fieldPart:
			if err := writer.WriteField(item.name, item.value); err != nil {
				return nil, "", fmt.Errorf("write field %s: %w", item.name, err)
			}
		case filePart:
			out, err := writer.CreateFormFile(item.name, item.filename)
			if err != nil {
				return nil, "", fmt.Errorf("create file part %s: %w", item.filename, err)
			}
			if _, err := out.Write(item.content); err != nil {
				return nil, "", fmt.Errorf("write file part %s: %w", item.filename, err)
			}
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("finalize payload: %w", err)
	}

	return buffer.Bytes(), writer.FormDataContentType(), nil
}

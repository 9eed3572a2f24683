package problem

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

const (
	// ContentType is the media type of a problem details document.
	ContentType = "application/problem+json"
	// DefaultType is used when a problem does not specify its type.
	DefaultType = "about:blank"
)

var reservedMembers = map[string]struct{}{
	"type":     {},
	"title":    {},
	"status":   {},
	"detail":   {},
	"instance": {},
}

// Details is an RFC 9457 problem details object. Members outside the standard
// five are kept verbatim in Extensions.
type Details struct {
	Type       string
	Title      string
	Status     int
	Detail     string
	Instance   string
	Extensions map[string]any
}

// New builds a problem with the default type.
func New(status int, title string) Details {
	return Details{Type: DefaultType, Status: status, Title: title}
}

// Decode reads a problem details document.
func Decode(r io.Reader) (Details, error) {
	var d Details
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return Details{}, fmt.Errorf("problem: decode: %w", err)
	}
	return d, nil
}

func (d Details) ProblemTitle() string {
	return d.Title
}

func (d Details) ProblemDetail() string {
	return d.Detail
}

func (d Details) ProblemInstance() string {
	return d.Instance
}

// Extension returns a non-standard member.
func (d Details) Extension(key string) (any, bool) {
	v, ok := d.Extensions[key]
	return v, ok
}

// WithExtension returns a copy of d with key set.
func (d Details) WithExtension(key string, value any) Details {
	ext := make(map[string]any, len(d.Extensions)+1)
	for k, v := range d.Extensions {
		ext[k] = v
	}
	ext[key] = value
	d.Extensions = ext
	return d
}

func (d Details) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(d.Extensions)+5)
	for k, v := range d.Extensions {
		if _, reserved := reservedMembers[k]; !reserved {
			out[k] = v
		}
	}

	typ := d.Type
	if typ == "" {
		typ = DefaultType
	}
	out["type"] = typ
	if d.Title != "" {
		out["title"] = d.Title
	}
	if d.Status != 0 {
		out["status"] = d.Status
	}
	if d.Detail != "" {
		out["detail"] = d.Detail
	}
	if d.Instance != "" {
		out["instance"] = d.Instance
	}
	return json.Marshal(out)
}

func (d *Details) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var parsed Details
	for k, v := range raw {
		var err error
		switch k {
		case "type":
			err = json.Unmarshal(v, &parsed.Type)
		case "title":
			err = json.Unmarshal(v, &parsed.Title)
		case "status":
			err = json.Unmarshal(v, &parsed.Status)
		case "detail":
			err = json.Unmarshal(v, &parsed.Detail)
		case "instance":
			err = json.Unmarshal(v, &parsed.Instance)
		default:
			var ext any
			ext, err = decodeExtension(v)
			if parsed.Extensions == nil {
				parsed.Extensions = make(map[string]any)
			}
			parsed.Extensions[k] = ext
		}
		if err != nil {
			return fmt.Errorf("problem: member %q: %w", k, err)
		}
	}

	*d = parsed
	return nil
}

// decodeExtension keeps numbers as json.Number so they re-encode unchanged.
func decodeExtension(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

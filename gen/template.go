package gen

import "text/template"

// Header is the first line of every generated file.
const Header = "// Code generated by mouuid; DO NOT EDIT."

var fileTemplate = template.Must(template.New("mouuid").Parse(Header + `

package {{.Package}}

import (
{{- if .SQL}}
	"database/sql/driver"
{{end}}
	"github.com/google/uuid"
)
{{range .Types}}
{{range .Doc}}{{.}}
{{end -}}
type {{.Name}} struct {
	UUID uuid.UUID
}

// {{.New}} returns a new {{.Name}} wrapping a freshly generated random (version 4) UUID.
func {{.New}}() {{.Name}} {
	return {{.Name}}{UUID: uuid.New()}
}

// {{.FromUUID}} wraps id as is.
func {{.FromUUID}}(id uuid.UUID) {{.Name}} {
	return {{.Name}}{UUID: id}
}

// {{.Parse}} parses s in any form accepted by uuid.Parse.
// The parser's error is returned unchanged.
func {{.Parse}}(s string) ({{.Name}}, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return {{.Name}}{}, err
	}
	return {{.Name}}{UUID: id}, nil
}

// String renders the identifier as {{.Name}}(xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx).
func (id {{.Name}}) String() string {
	return "{{.Name}}(" + id.UUID.String() + ")"
}

// IsNil reports whether id wraps the nil UUID.
func (id {{.Name}}) IsNil() bool {
	return id.UUID == uuid.Nil
}

// MarshalText implements encoding.TextMarshaler.
func (id {{.Name}}) MarshalText() ([]byte, error) {
	return id.UUID.MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *{{.Name}}) UnmarshalText(data []byte) error {
	return id.UUID.UnmarshalText(data)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (id {{.Name}}) MarshalBinary() ([]byte, error) {
	return id.UUID.MarshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (id *{{.Name}}) UnmarshalBinary(data []byte) error {
	return id.UUID.UnmarshalBinary(data)
}
{{- if $.SQL}}

// Scan implements sql.Scanner.
func (id *{{.Name}}) Scan(src interface{}) error {
	return id.UUID.Scan(src)
}

// Value implements driver.Valuer.
func (id {{.Name}}) Value() (driver.Value, error) {
	return id.UUID.Value()
}
{{- end}}
{{end}}`))

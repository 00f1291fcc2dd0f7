// Package gen emits Go source for strongly-typed UUID identifiers.
//
// Each Definition becomes an independent struct wrapping a single public
// uuid.UUID field, together with its constructors, a Name(uuid) String method
// and text, binary and optional SQL codecs that encode exactly like the bare
// UUID. Generated types share no interface or base type, so the compiler
// rejects comparing or assigning one kind to another.
//
// Generation uses text/template followed by go/format.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"go/types"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Definition describes one identifier type.
type Definition struct {
	// Name is the Go type name, e.g. EntityId.
	Name string
	// Doc holds documentation attached to the type, in order. Entries may
	// span several lines; lines already starting with // are kept verbatim.
	Doc []string
}

// Config describes one generated file.
type Config struct {
	Package string
	Types   []Definition
	// SQL adds database/sql Scan and Value methods.
	SQL bool
}

// reserved names would shadow the generated file's imports or the receiver,
// parameters and locals of its functions.
var reserved = map[string]bool{
	"uuid":   true,
	"driver": true,
	"id":     true,
	"s":      true,
	"err":    true,
	"data":   true,
	"src":    true,
}

// validName reports whether name can be declared as a type in a generated
// file. Predeclared identifiers such as string or error are rejected because
// the generated signatures refer to them.
func validName(name string) bool {
	if !token.IsIdentifier(name) || name == "_" || reserved[name] {
		return false
	}
	return types.Universe.Lookup(name) == nil
}

type typeData struct {
	Name     string
	Doc      []string
	New      string
	FromUUID string
	Parse    string
}

type fileData struct {
	Package string
	SQL     bool
	Types   []typeData
}

// Generate renders cfg into gofmt'd Go source.
func Generate(cfg Config) ([]byte, error) {
	data, err := prepare(cfg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("gen: execute template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: format source: %w", err)
	}
	return src, nil
}

func prepare(cfg Config) (*fileData, error) {
	if len(cfg.Types) == 0 {
		return nil, ErrNoTypes
	}
	if !token.IsIdentifier(cfg.Package) || cfg.Package == "_" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPackage, cfg.Package)
	}

	data := &fileData{Package: cfg.Package, SQL: cfg.SQL}
	declared := make(map[string]string)
	declare := func(ident, owner string) error {
		if prev, ok := declared[ident]; ok {
			return fmt.Errorf("%w: %s (from %s and %s)", ErrDuplicateName, ident, prev, owner)
		}
		declared[ident] = owner
		return nil
	}

	for _, def := range cfg.Types {
		name := def.Name
		if !validName(name) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
		}
		newFn, fromFn, parseFn := Constructors(name)
		for _, ident := range []string{name, newFn, fromFn, parseFn} {
			if err := declare(ident, name); err != nil {
				return nil, err
			}
		}
		data.Types = append(data.Types, typeData{
			Name:     name,
			Doc:      commentLines(name, def.Doc),
			New:      newFn,
			FromUUID: fromFn,
			Parse:    parseFn,
		})
	}
	return data, nil
}

// Constructors returns the names of the random, wrapping and parsing
// constructors generated for the type name. Exported types get NewT, TFromUUID
// and ParseT; unexported ones get newT, tFromUUID and parseT.
func Constructors(name string) (newFn, fromFn, parseFn string) {
	if token.IsExported(name) {
		return "New" + name, name + "FromUUID", "Parse" + name
	}
	r, size := utf8.DecodeRuneInString(name)
	title := string(unicode.ToUpper(r)) + name[size:]
	return "new" + title, name + "FromUUID", "parse" + title
}

func commentLines(name string, docs []string) []string {
	var lines []string
	for _, doc := range docs {
		doc = strings.TrimRight(doc, "\r\n")
		for _, line := range strings.Split(doc, "\n") {
			line = strings.TrimRight(line, " \t\r")
			trimmed := strings.TrimSpace(line)
			switch {
			case strings.HasPrefix(trimmed, "//"):
				lines = append(lines, trimmed)
			case trimmed == "":
				lines = append(lines, "//")
			default:
				lines = append(lines, "// "+line)
			}
		}
	}
	if len(lines) == 0 {
		lines = append(lines, "// "+name+" is a typed UUID identifier.")
	}
	return lines
}

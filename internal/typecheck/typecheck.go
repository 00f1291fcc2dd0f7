// Package typecheck type-checks Go source with go/types against a minimal
// stand-in for github.com/google/uuid. Tests use it to prove that identifier
// kinds are rejected by the compiler when mixed.
package typecheck

import (
	"errors"
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// UUIDPath is the import path served by the stand-in package.
const UUIDPath = "github.com/google/uuid"

// uuidSource mirrors the subset of the google/uuid API that this module and
// the code it generates rely on.
const uuidSource = `package uuid

import (
	"database/sql/driver"
	"io"
)

type UUID [16]byte

var Nil UUID

func New() UUID                                        { return Nil }
func NewRandom() (UUID, error)                         { return Nil, nil }
func NewRandomFromReader(r io.Reader) (UUID, error)    { return Nil, nil }
func Parse(s string) (UUID, error)                     { return Nil, nil }
func MustParse(s string) UUID                          { return Nil }
func FromBytes(b []byte) (UUID, error)                 { return Nil, nil }
func (u UUID) String() string                          { return "" }
func (u UUID) MarshalText() ([]byte, error)            { return nil, nil }
func (u *UUID) UnmarshalText(data []byte) error        { return nil }
func (u UUID) MarshalBinary() ([]byte, error)          { return nil, nil }
func (u *UUID) UnmarshalBinary(data []byte) error      { return nil }
func (u *UUID) Scan(src interface{}) error             { return nil }
func (u UUID) Value() (driver.Value, error)            { return u.String(), nil }
`

// Checker type-checks packages. The zero value is not usable; call New.
type Checker struct {
	fset *token.FileSet
	std  types.Importer
	uuid *types.Package
}

// New builds a Checker, type-checking the uuid stand-in once.
func New() (*Checker, error) {
	fset := token.NewFileSet()
	c := &Checker{
		fset: fset,
		std:  importer.ForCompiler(fset, "gc", nil),
	}
	pkg, err := c.check(UUIDPath, map[string]string{"uuid.go": uuidSource})
	if err != nil {
		return nil, fmt.Errorf("typecheck: uuid stand-in: %w", err)
	}
	c.uuid = pkg
	return c, nil
}

// Import implements types.Importer.
func (c *Checker) Import(path string) (*types.Package, error) {
	if path == UUIDPath && c.uuid != nil {
		return c.uuid, nil
	}
	return c.std.Import(path)
}

// Check type-checks the given files (file name to source) as the package at
// path. All type errors are joined into the returned error.
func (c *Checker) Check(path string, files map[string]string) error {
	_, err := c.check(path, files)
	return err
}

// CheckDir type-checks the non-test Go files of dir as the package at path,
// together with extra files (file name to source).
func (c *Checker) CheckDir(dir, path string, extra map[string]string) error {
	matches, err := filepath.Glob(filepath.Join(dir, "*.go"))
	if err != nil {
		return err
	}
	files := make(map[string]string, len(matches)+len(extra))
	for _, name := range matches {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		data, err := os.ReadFile(name)
		if err != nil {
			return err
		}
		files[filepath.Base(name)] = string(data)
	}
	for name, src := range extra {
		files[name] = src
	}
	return c.Check(path, files)
}

func (c *Checker) check(path string, files map[string]string) (*types.Package, error) {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	parsed := make([]*ast.File, 0, len(names))
	for _, name := range names {
		f, err := parser.ParseFile(c.fset, name, files[name], parser.ParseComments)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, f)
	}

	var errs []error
	conf := types.Config{
		Importer: c,
		Error:    func(err error) { errs = append(errs, err) },
	}
	pkg, _ := conf.Check(path, c.fset, parsed, nil)
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return pkg, nil
}

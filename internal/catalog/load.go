package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Decode parses a YAML catalog document. Unknown keys are rejected so typos in an
// override file surface at load time instead of silently dropping content.
func Decode(r io.Reader) (Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var c Catalog
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return Catalog{}, fmt.Errorf("%w: empty document", ErrInvalidCatalog)
		}
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	if err := Validate(c); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// LoadFile reads and validates a YAML catalog override.
func LoadFile(path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Decode(bytes.NewReader(raw))
	if err != nil {
		return Catalog{}, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return c, nil
}

// Source yields the catalog used for a render.
type Source interface {
	Catalog() (Catalog, error)
}

// Static serves one catalog for the lifetime of the process.
type Static struct {
	c Catalog
}

// NewStatic wraps c. The caller must not modify c afterwards.
func NewStatic(c Catalog) Static { return Static{c: c} }

// Catalog returns the wrapped catalog.
func (s Static) Catalog() (Catalog, error) { return s.c, nil }

// File re-reads an override file on every call. Used in dev mode so copy edits show
// up on reload without restarting the server.
type File struct {
	Path string
}

// Catalog loads the file.
func (f File) Catalog() (Catalog, error) {
	if strings.TrimSpace(f.Path) == "" {
		return Catalog{}, fmt.Errorf("%w: no catalog file configured", ErrInvalidCatalog)
	}
	return LoadFile(f.Path)
}

// NewSource picks the source for the configured override path. An empty path
// selects the built-in catalog; in dev mode the file is re-read per request.
func NewSource(path string, dev bool) (Source, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		c := Default()
		if err := Validate(c); err != nil {
			return nil, err
		}
		return NewStatic(c), nil
	}
	c, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	if dev {
		return File{Path: path}, nil
	}
	return NewStatic(c), nil
}

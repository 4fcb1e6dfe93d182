package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// Source produces a complete catalog.
type Source interface {
	Name() string
	Load(ctx context.Context) (*Catalog, error)
}

// FileSource reads a places_data.json document.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) Name() string {
	return "file"
}

func (s *FileSource) Load(ctx context.Context) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", s.Path, err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", s.Path, err)
	}
	return NewCatalog(doc.Cities())
}

// WriteFile stores cities as an indented places_data.json document.
func WriteFile(path string, cities []City) error {
	data, err := json.MarshalIndent(NewDocument(cities), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

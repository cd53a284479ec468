// Package fixtures loads catalog seed data from YAML documents.
package fixtures

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/go-catalog-service/internal/domain/catalog"
)

//go:embed sample_catalog.yaml
var sampleCatalog []byte

type document struct {
	Groups []groupRecord `yaml:"groups"`
}

type groupRecord struct {
	UniqueID    string       `yaml:"unique_id"`
	Title       string       `yaml:"title"`
	Subtitle    string       `yaml:"subtitle"`
	ImagePath   string       `yaml:"image_path"`
	Description string       `yaml:"description"`
	Items       []itemRecord `yaml:"items"`
}

type itemRecord struct {
	UniqueID    string `yaml:"unique_id"`
	Title       string `yaml:"title"`
	Subtitle    string `yaml:"subtitle"`
	ImagePath   string `yaml:"image_path"`
	Description string `yaml:"description"`
	Content     string `yaml:"content"`
}

// Sample returns the seeds of the built-in sample catalog.
func Sample() ([]catalog.GroupSeed, error) {
	return Load(bytes.NewReader(sampleCatalog))
}

// Load decodes a catalog document from r. Unknown keys are rejected.
// An empty document yields no seeds.
func Load(r io.Reader) ([]catalog.GroupSeed, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding catalog fixture: %w", err)
	}

	seeds := make([]catalog.GroupSeed, len(doc.Groups))
	for i, g := range doc.Groups {
		seeds[i] = g.seed()
	}
	return seeds, nil
}

func (g groupRecord) seed() catalog.GroupSeed {
	s := catalog.GroupSeed{
		Group: catalog.GroupDraft{
			UniqueID:    g.UniqueID,
			Title:       g.Title,
			Subtitle:    g.Subtitle,
			ImagePath:   g.ImagePath,
			Description: g.Description,
		},
		Items: make([]catalog.ItemDraft, len(g.Items)),
	}
	for i, it := range g.Items {
		s.Items[i] = catalog.ItemDraft{
			UniqueID:    it.UniqueID,
			Title:       it.Title,
			Subtitle:    it.Subtitle,
			ImagePath:   it.ImagePath,
			Description: it.Description,
			Content:     it.Content,
		}
	}
	return s
}

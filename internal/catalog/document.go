// Package catalog renders the script registry as a JSON document, publishes
// it through a storage provider and checks published copies for drift.
package catalog

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Chapsvision-dev/script-registry/internal/registry"
	"github.com/Chapsvision-dev/script-registry/internal/version"
)

// Document is the published form of the registry.
type Document struct {
	Generator   string    `json:"generator" yaml:"generator"`
	GeneratedAt time.Time `json:"generatedAt" yaml:"generatedAt"`
	Entries     []Item    `json:"entries" yaml:"entries"`
}

type Item struct {
	Label    string     `json:"label" yaml:"label"`
	Slug     string     `json:"slug" yaml:"slug"`
	Category string     `json:"category" yaml:"category"`
	Source   SourceInfo `json:"source" yaml:"source"`
	Logo     LogoInfo   `json:"logo" yaml:"logo"`
	Import   ImportInfo `json:"import" yaml:"import"`
}

// SourceInfo describes an entry's source. For dynamic sources URL is what
// the resolver returns with no options.
type SourceInfo struct {
	Kind     string   `json:"kind" yaml:"kind"`
	URL      string   `json:"url,omitempty" yaml:"url,omitempty"`
	Required []string `json:"required,omitempty" yaml:"required,omitempty"`
}

// LogoInfo holds either Markup or the Dark/Light pair.
type LogoInfo struct {
	Markup string `json:"markup,omitempty" yaml:"markup,omitempty"`
	Dark   string `json:"dark,omitempty" yaml:"dark,omitempty"`
	Light  string `json:"light,omitempty" yaml:"light,omitempty"`
}

type ImportInfo struct {
	Name string `json:"name" yaml:"name"`
	From string `json:"from" yaml:"from"`
}

// Render converts entries into a Document stamped with now.
func Render(es registry.Entries, now time.Time) (Document, error) {
	doc := Document{
		Generator:   version.Generator(),
		GeneratedAt: now.UTC(),
		Entries:     make([]Item, 0, len(es)),
	}
	for _, e := range es {
		it := Item{
			Label:    e.Label,
			Slug:     e.Slug(),
			Category: string(e.Category),
			Import:   ImportInfo{Name: e.Import.Name, From: e.Import.From},
		}
		it.Source.Kind = string(registry.KindOf(e.Source))
		switch s := e.Source.(type) {
		case registry.Dynamic:
			u, err := s.Resolve(nil)
			if err != nil {
				return Document{}, fmt.Errorf("render %s: %w", e.Label, err)
			}
			it.Source.URL = u
			it.Source.Required = slices.Clone(s.Required)
		case registry.Static:
			it.Source.URL = s.URL
		}
		switch l := e.Logo.(type) {
		case registry.SingleLogo:
			it.Logo.Markup = string(l)
		case registry.ThemedLogo:
			it.Logo.Dark, it.Logo.Light = l.Dark, l.Light
		}
		doc.Entries = append(doc.Entries, it)
	}
	return doc, nil
}

// Format is a catalog serialization.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatOf picks the format from a file name; anything but .yaml/.yml is JSON.
func FormatOf(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return YAML
	}
	return JSON
}

// ContentType is the MIME type published with f.
func (f Format) ContentType() string {
	if f == YAML {
		return "application/yaml"
	}
	return "application/json"
}

// Encode returns the indented JSON form of doc.
func Encode(doc Document) ([]byte, error) { return EncodeAs(doc, JSON) }

// EncodeAs serializes doc in format f.
func EncodeAs(doc Document, f Format) ([]byte, error) {
	if f == YAML {
		return yaml.Marshal(doc)
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// Decode parses a published JSON catalog.
func Decode(b []byte) (Document, error) { return DecodeAs(b, JSON) }

// DecodeAs parses a published catalog in format f.
func DecodeAs(b []byte, f Format) (Document, error) {
	var doc Document
	var err error
	if f == YAML {
		err = yaml.Unmarshal(b, &doc)
	} else {
		err = json.Unmarshal(b, &doc)
	}
	if err != nil {
		return Document{}, fmt.Errorf("decode catalog: %w", err)
	}
	return doc, nil
}

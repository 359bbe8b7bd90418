// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ingest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/taibuivan/mta/internal/platform/constants"
	"github.com/taibuivan/mta/internal/platform/validate"
)

// Metadata identifies the manga volume an ingestion is recorded against.
type Metadata struct {
	Title  string `yaml:"title" json:"title"`
	Author string `yaml:"author" json:"author"`
	Year   int    `yaml:"year" json:"year"`
	Volume int    `yaml:"volume" json:"volume"`
}

// Validate checks the metadata before any store call is made.
// A year of 0 means unknown.
func (m Metadata) Validate() error {
	v := &validate.Validator{}
	v.Required("title", m.Title).
		MaxLen("title", m.Title, constants.MaxTitleLen).
		MaxLen("author", m.Author, constants.MaxAuthorLen).
		Min("volume", m.Volume, 1)
	if m.Year != 0 {
		v.Range("year", m.Year, constants.MinYear, constants.MaxYear)
	}
	return v.Err()
}

// Override returns m with every non-zero field of o applied on top.
func (m Metadata) Override(o Metadata) Metadata {
	if o.Title != "" {
		m.Title = o.Title
	}
	if o.Author != "" {
		m.Author = o.Author
	}
	if o.Year != 0 {
		m.Year = o.Year
	}
	if o.Volume != 0 {
		m.Volume = o.Volume
	}
	return m
}

// LoadMetadataFile reads a YAML metadata file with the keys title, author,
// year and volume.
func LoadMetadataFile(path string) (Metadata, error) {
	var m Metadata

	data, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("ingest: failed to read metadata file: %w", err)
	}

	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("ingest: failed to parse metadata file %s: %w", path, err)
	}
	return m, nil
}

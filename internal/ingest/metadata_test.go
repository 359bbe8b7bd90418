// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/mta/internal/platform/apperr"
)

func TestMetadata_Validate(t *testing.T) {
	tests := []struct {
		name    string
		meta    Metadata
		invalid []string
	}{
		{"valid", Metadata{Title: "Foo", Author: "Bar", Year: 2020, Volume: 1}, nil},
		{"unknown year", Metadata{Title: "Foo", Volume: 3}, nil},
		{"missing title", Metadata{Volume: 1}, []string{"title"}},
		{"long title", Metadata{Title: strings.Repeat("漫", 301), Volume: 1}, []string{"title"}},
		{"long author", Metadata{Title: "Foo", Author: strings.Repeat("a", 201), Volume: 1}, []string{"author"}},
		{"bad year", Metadata{Title: "Foo", Year: 1850, Volume: 1}, []string{"year"}},
		{"late year", Metadata{Title: "Foo", Year: 2101, Volume: 1}, []string{"year"}},
		{"edge years", Metadata{Title: "Foo", Year: 2100, Volume: 1}, nil},
		{"volume and year", Metadata{Title: "Foo", Year: 1899}, []string{"volume", "year"}},
		{"zero volume", Metadata{Title: "Foo"}, []string{"volume"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.meta.Validate()
			if tt.invalid == nil {
				assert.NoError(t, err)
				return
			}

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			var fields []string
			for _, d := range appErr.Details {
				fields = append(fields, d.Field)
			}
			assert.Equal(t, tt.invalid, fields)
		})
	}
}

func TestMetadata_Override(t *testing.T) {
	base := Metadata{Title: "Foo", Author: "Bar", Year: 2020, Volume: 1}

	got := base.Override(Metadata{Volume: 4, Author: "Baz"})
	assert.Equal(t, Metadata{Title: "Foo", Author: "Baz", Year: 2020, Volume: 4}, got)
}

func TestLoadMetadataFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meta.yaml")
	content := "title: よつばと!\nauthor: あずまきよひこ\nyear: 2003\nvolume: 1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	m, err := LoadMetadataFile(path)
	require.NoError(t, err)
	assert.Equal(t, Metadata{Title: "よつばと!", Author: "あずまきよひこ", Year: 2003, Volume: 1}, m)
}

func TestLoadMetadataFile_Errors(t *testing.T) {
	_, err := LoadMetadataFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: [unclosed"), 0o600))
	_, err = LoadMetadataFile(path)
	require.Error(t, err)
}

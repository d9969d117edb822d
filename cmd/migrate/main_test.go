package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinnynacc/teammate-directory-api/internal/models"
)

func TestMigrateExpandsLegacyDocument(t *testing.T) {
	dir := t.TempDir()
	legacyPath := filepath.Join(dir, "team.json")
	dataPath := filepath.Join(dir, "teammates.json")

	legacy := `[
  {
    "slug": " jane-doe ",
    "name": "Jane Doe",
    "order": "2",
    "states": "TX, ca , ",
    "languages": "[\"English\",\"Spanish\"]",
    "apply": "https://apply.example",
    "socialLinkedin": "jane-social"
  }
]`
	require.NoError(t, os.WriteFile(legacyPath, []byte(legacy), 0o644))

	count, err := migrate(legacyPath, dataPath)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	raw, err := os.ReadFile(dataPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "[\n  {\n"))

	var records []models.Teammate
	require.NoError(t, json.Unmarshal(raw, &records))
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "jane-doe", rec.Slug)
	require.NotNil(t, rec.Order)
	assert.Equal(t, 2.0, *rec.Order)
	assert.Equal(t, []string{"TX", "ca"}, rec.States)
	assert.Equal(t, []string{"English", "Spanish"}, rec.Languages)
	assert.Equal(t, "https://apply.example", rec.Links.Apply)
	assert.Equal(t, "jane-social", rec.SocialHandles.LinkedIn)
	// Untouched lists come out as empty arrays, not null.
	assert.NotNil(t, rec.Specialties)
}

func TestMigrateMissingLegacyDocumentIsNoop(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "teammates.json")

	count, err := migrate(filepath.Join(dir, "team.json"), dataPath)
	require.ErrorIs(t, err, errNoLegacyDocument)
	assert.Zero(t, count)

	_, statErr := os.Stat(dataPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestMigrateCorruptLegacyDocument(t *testing.T) {
	dir := t.TempDir()
	legacyPath := filepath.Join(dir, "team.json")
	dataPath := filepath.Join(dir, "teammates.json")
	require.NoError(t, os.WriteFile(legacyPath, []byte("{not json"), 0o644))

	_, err := migrate(legacyPath, dataPath)
	require.Error(t, err)

	_, statErr := os.Stat(dataPath)
	assert.True(t, os.IsNotExist(statErr))
}

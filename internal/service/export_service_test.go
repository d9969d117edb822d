package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinnynacc/teammate-directory-api/internal/models"
	appErrors "github.com/vinnynacc/teammate-directory-api/pkg/errors"
)

func exportRoster() []models.Teammate {
	second := 2.0
	first := 1.0
	return []models.Teammate{
		{Slug: "no-order", Name: "No Order", States: []string{"TX"}},
		{Slug: "second", Name: "Second", Order: &second},
		{Slug: "first", Name: "First", Order: &first, Languages: []string{"English", "Spanish"}},
	}
}

func TestExportServiceRenderCSV(t *testing.T) {
	repo := &teammateRepoStub{records: exportRoster()}
	svc := NewExportService(newTestTeammateService(repo))

	result, err := svc.Render(context.Background(), FormatCSV)

	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.True(t, strings.HasPrefix(result.Filename, "teammates-"))
	assert.True(t, strings.HasSuffix(result.Filename, ".csv"))

	lines := strings.Split(strings.TrimSpace(string(result.Data)), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Slug,Name")
	// Ordered records first, records without an order last.
	assert.True(t, strings.HasPrefix(lines[1], "first,"))
	assert.True(t, strings.HasPrefix(lines[2], "second,"))
	assert.True(t, strings.HasPrefix(lines[3], "no-order,"))
	assert.Contains(t, lines[1], "English; Spanish")
}

func TestExportServiceRenderPDF(t *testing.T) {
	repo := &teammateRepoStub{records: exportRoster()}
	svc := NewExportService(newTestTeammateService(repo))

	result, err := svc.Render(context.Background(), FormatPDF)

	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.True(t, strings.HasSuffix(result.Filename, ".pdf"))
	assert.True(t, len(result.Data) > 0)
	assert.Equal(t, "%PDF", string(result.Data[:4]))
}

func TestExportServiceUnknownFormat(t *testing.T) {
	svc := NewExportService(newTestTeammateService(&teammateRepoStub{}))

	_, err := svc.Render(context.Background(), "xlsx")

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
}

func TestExportServiceKeepsSourceOrderStable(t *testing.T) {
	roster := []models.Teammate{
		{Slug: "a", Name: "A"},
		{Slug: "b", Name: "B"},
	}
	svc := NewExportService(newTestTeammateService(&teammateRepoStub{records: roster}))

	result, err := svc.Render(context.Background(), FormatCSV)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(result.Data)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "a,"))
	assert.True(t, strings.HasPrefix(lines[2], "b,"))
}

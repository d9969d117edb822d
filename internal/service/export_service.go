package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/vinnynacc/teammate-directory-api/internal/models"
	appErrors "github.com/vinnynacc/teammate-directory-api/pkg/errors"
	"github.com/vinnynacc/teammate-directory-api/pkg/export"
)

// Export formats.
const (
	FormatCSV = "csv"
	FormatPDF = "pdf"
)

// unordered sorts after every explicit order value, mirroring how the
// directory page ranks records without one.
const unordered = 9999

// ExportResult is a rendered roster ready to be served as a download.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders the teammate roster into downloadable documents.
type ExportService struct {
	teammates *TeammateService
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
}

// NewExportService constructs an ExportService.
func NewExportService(teammates *TeammateService) *ExportService {
	return &ExportService{
		teammates: teammates,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
	}
}

// Render produces the roster in the requested format.
func (s *ExportService) Render(ctx context.Context, format string) (*ExportResult, error) {
	records, err := s.teammates.List(ctx)
	if err != nil {
		return nil, err
	}

	table := rosterTable(records)
	stamp := time.Now().UTC().Format("2006-01-02")

	switch format {
	case FormatCSV:
		data, err := s.csv.Render(table)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv export")
		}
		return &ExportResult{
			Filename:    fmt.Sprintf("teammates-%s.csv", stamp),
			ContentType: "text/csv",
			Data:        data,
		}, nil
	case FormatPDF:
		data, err := s.pdf.Render(table, "Team Directory")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf export")
		}
		return &ExportResult{
			Filename:    fmt.Sprintf("teammates-%s.pdf", stamp),
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}

func rosterTable(records []models.Teammate) export.Table {
	sorted := make([]models.Teammate, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return orderRank(sorted[i]) < orderRank(sorted[j])
	})

	table := export.Table{
		Columns: []string{"Slug", "Name", "Role", "Job Title", "NMLS", "Phone", "Email", "Location", "States", "Languages", "Hire Date"},
	}
	for _, rec := range sorted {
		table.Rows = append(table.Rows, []string{
			rec.Slug,
			rec.Name,
			rec.Role,
			rec.JobTitle,
			rec.NMLS,
			rec.Phone,
			rec.Email,
			rec.Location,
			strings.Join(rec.States, "; "),
			strings.Join(rec.Languages, "; "),
			rec.HireDate,
		})
	}
	return table
}

func orderRank(rec models.Teammate) float64 {
	if rec.Order == nil {
		return unordered
	}
	return *rec.Order
}

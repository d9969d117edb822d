package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/vinnynacc/teammate-directory-api/internal/models"
)

// Sentinel errors mapped to HTTP statuses at the service boundary.
var (
	ErrTeammateNotFound = errors.New("teammate not found")
	ErrSlugExists       = errors.New("teammate slug already exists")
)

// TeammateRepository persists the whole collection as one pretty-printed
// JSON array on disk. Every operation is read document, mutate in memory,
// write document; a single mutex serializes them so concurrent mutations
// cannot lose each other's writes, and writes replace the file atomically
// via rename.
type TeammateRepository struct {
	path   string
	mu     sync.Mutex
	logger *zap.Logger
}

// NewTeammateRepository constructs a repository over the given document path.
func NewTeammateRepository(path string, logger *zap.Logger) *TeammateRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeammateRepository{path: path, logger: logger}
}

// List returns the full ordered collection. A missing document is lazily
// initialized to an empty array; any other read or parse failure propagates.
func (r *TeammateRepository) List(ctx context.Context) ([]models.Teammate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// FindBySlug returns the record with the given slug or ErrTeammateNotFound.
func (r *TeammateRepository) FindBySlug(ctx context.Context, slug string) (*models.Teammate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].Slug == slug {
			rec := records[i]
			return &rec, nil
		}
	}
	return nil, ErrTeammateNotFound
}

// Insert appends the record to the end of the collection. Insertion order,
// not the order field, decides position among ties.
func (r *TeammateRepository) Insert(ctx context.Context, record models.Teammate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}
	for i := range records {
		if records[i].Slug == record.Slug {
			return ErrSlugExists
		}
	}
	return r.save(append(records, record))
}

// Replace overwrites the record with the given slug in place, keeping its
// array position. The replacement must carry the same slug.
func (r *TeammateRepository) Replace(ctx context.Context, slug string, record models.Teammate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}
	for i := range records {
		if records[i].Slug == slug {
			records[i] = record
			return r.save(records)
		}
	}
	return ErrTeammateNotFound
}

// Remove deletes the record with the given slug and returns it.
func (r *TeammateRepository) Remove(ctx context.Context, slug string) (*models.Teammate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].Slug == slug {
			removed := records[i]
			if err := r.save(append(records[:i], records[i+1:]...)); err != nil {
				return nil, err
			}
			return &removed, nil
		}
	}
	return nil, ErrTeammateNotFound
}

func (r *TeammateRepository) load() ([]models.Teammate, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return r.initialize()
		}
		return nil, fmt.Errorf("read teammate document: %w", err)
	}

	var records []models.Teammate
	if err := json.Unmarshal(raw, &records); err != nil {
		// Corrupt documents are never recreated; the error propagates.
		return nil, fmt.Errorf("parse teammate document: %w", err)
	}
	if records == nil {
		records = []models.Teammate{}
	}
	return records, nil
}

func (r *TeammateRepository) initialize() ([]models.Teammate, error) {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	if err := os.WriteFile(r.path, []byte("[]"), 0o644); err != nil {
		return nil, fmt.Errorf("initialize teammate document: %w", err)
	}
	r.logger.Info("initialized empty teammate document", zap.String("path", r.path))
	return []models.Teammate{}, nil
}

func (r *TeammateRepository) save(records []models.Teammate) error {
	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode teammate document: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".teammates-*.json")
	if err != nil {
		return fmt.Errorf("create temp document: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()            //nolint:errcheck
		os.Remove(tmpName)     //nolint:errcheck
		return fmt.Errorf("write teammate document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName) //nolint:errcheck
		return fmt.Errorf("close teammate document: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName) //nolint:errcheck
		return fmt.Errorf("replace teammate document: %w", err)
	}
	return nil
}

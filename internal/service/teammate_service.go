package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/vinnynacc/teammate-directory-api/internal/models"
	"github.com/vinnynacc/teammate-directory-api/internal/repository"
	appErrors "github.com/vinnynacc/teammate-directory-api/pkg/errors"
)

const listCacheKey = "teammates:list"

type teammateRepository interface {
	List(ctx context.Context) ([]models.Teammate, error)
	FindBySlug(ctx context.Context, slug string) (*models.Teammate, error)
	Insert(ctx context.Context, record models.Teammate) error
	Replace(ctx context.Context, slug string, record models.Teammate) error
	Remove(ctx context.Context, slug string) (*models.Teammate, error)
}

// TeammateService orchestrates normalization, persistence, caching and
// metrics for teammate records.
type TeammateService struct {
	repo      teammateRepository
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTeammateService constructs a TeammateService.
func NewTeammateService(repo teammateRepository, cache *CacheService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *TeammateService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeammateService{repo: repo, cache: cache, metrics: metrics, validator: validate, logger: logger}
}

// List returns the full collection in persisted order.
func (s *TeammateService) List(ctx context.Context) ([]models.Teammate, error) {
	if s.cache.Enabled() {
		var cached []models.Teammate
		if hit, _ := s.cache.Get(ctx, listCacheKey, &cached); hit {
			return cached, nil
		}
	}

	records, err := s.observeList(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teammates")
	}

	if s.cache.Enabled() {
		if err := s.cache.Set(ctx, listCacheKey, records, 0); err != nil {
			s.logger.Warn("failed to cache teammate list", zap.Error(err))
		}
	}
	return records, nil
}

// Get returns a single record by slug.
func (s *TeammateService) Get(ctx context.Context, slug string) (*models.Teammate, error) {
	record, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrTeammateNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Teammate not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teammate")
	}
	return record, nil
}

// Create normalizes the payload and appends it to the collection. Partial
// payloads are not merged with anything; create is all-or-nothing by design,
// unlike update.
func (s *TeammateService) Create(ctx context.Context, input TeammateInput, storedPhoto string) (*models.Teammate, error) {
	record, err := s.normalize(input, storedPhoto)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	err = s.repo.Insert(ctx, *record)
	s.metrics.ObserveStoreOperation("insert", time.Since(start))
	if err != nil {
		if errors.Is(err, repository.ErrSlugExists) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "Teammate with this slug already exists")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create teammate")
	}

	s.invalidateList(ctx)
	return record, nil
}

// Update merges the stored record with the incoming fields, renormalizes and
// replaces it in place. The slug is pinned to the path parameter: a
// different slug in the payload is silently overridden, keeping slugs
// immutable.
func (s *TeammateService) Update(ctx context.Context, slug string, input TeammateInput, storedPhoto string) (*models.Teammate, error) {
	existing, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrTeammateNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Teammate not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teammate")
	}

	merged := input.mergedOver(inputFromRecord(*existing))
	merged.Slug = &slug

	record, err := s.normalize(merged, storedPhoto)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	err = s.repo.Replace(ctx, slug, *record)
	s.metrics.ObserveStoreOperation("replace", time.Since(start))
	if err != nil {
		if errors.Is(err, repository.ErrTeammateNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Teammate not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update teammate")
	}

	s.invalidateList(ctx)
	return record, nil
}

// Delete removes the record by slug and returns it.
func (s *TeammateService) Delete(ctx context.Context, slug string) (*models.Teammate, error) {
	start := time.Now()
	removed, err := s.repo.Remove(ctx, slug)
	s.metrics.ObserveStoreOperation("remove", time.Since(start))
	if err != nil {
		if errors.Is(err, repository.ErrTeammateNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Teammate not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete teammate")
	}

	s.invalidateList(ctx)
	return removed, nil
}

func (s *TeammateService) normalize(input TeammateInput, storedPhoto string) (*models.Teammate, error) {
	record := Expand(input, storedPhoto)
	if err := s.validator.Struct(record); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Slug and name are required")
	}
	return &record, nil
}

func (s *TeammateService) observeList(ctx context.Context) ([]models.Teammate, error) {
	start := time.Now()
	records, err := s.repo.List(ctx)
	s.metrics.ObserveStoreOperation("list", time.Since(start))
	return records, err
}

func (s *TeammateService) invalidateList(ctx context.Context) {
	if !s.cache.Enabled() {
		return
	}
	if err := s.cache.Invalidate(ctx, listCacheKey); err != nil {
		s.logger.Warn("failed to invalidate teammate list cache", zap.Error(err))
	}
}

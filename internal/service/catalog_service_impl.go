package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/remsodo/internal/domain"
	"github.com/alexanderramin/remsodo/internal/intelligence"
	"github.com/alexanderramin/remsodo/internal/repository"
)

type catalogService struct {
	generator intelligence.CourseGenerator
	cache     repository.ContentCacheRepo
	observer  UseCaseObserver
}

func NewCatalogService(
	generator intelligence.CourseGenerator,
	cache repository.ContentCacheRepo,
	observers ...UseCaseObserver,
) CatalogService {
	return &catalogService{
		generator: generator,
		cache:     cache,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *catalogService) Browse(ctx context.Context, query string, refresh bool) (cat *domain.Catalog, err error) {
	query = strings.TrimSpace(query)
	fields := map[string]any{"query": query, "refresh": refresh}
	defer observe(ctx, s.observer, "browse-catalog", time.Now().UTC(), fields, &err)

	if !refresh {
		cached, cerr := s.cache.Catalog(ctx)
		switch {
		case cerr == nil && cached.Query == query:
			fields["cached"] = true
			return cached, nil
		case cerr != nil && !errors.Is(cerr, repository.ErrNotFound):
			return nil, cerr
		}
	}

	var courses []domain.Course
	courses, err = s.generator.SearchCourses(ctx, query)
	if err != nil {
		return nil, err
	}
	cat = &domain.Catalog{Query: query, Courses: courses}
	fields["count"] = len(courses)
	if err = s.cache.PutCatalog(ctx, *cat); err != nil {
		return nil, fmt.Errorf("caching catalog: %w", err)
	}
	return cat, nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/remsodo/internal/domain"
	"github.com/alexanderramin/remsodo/internal/storage"
)

// StoreContentCacheRepo caches generated content so revisiting a page does not
// regenerate it.
type StoreContentCacheRepo struct {
	store storage.Store
}

func NewStoreContentCacheRepo(s storage.Store) *StoreContentCacheRepo {
	return &StoreContentCacheRepo{store: s}
}

func (r *StoreContentCacheRepo) Catalog(ctx context.Context) (*domain.Catalog, error) {
	c, ok, err := storage.GetJSON[domain.Catalog](ctx, r.store, storage.KeyCatalog)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("catalog: %w", ErrNotFound)
	}
	return &c, nil
}

func (r *StoreContentCacheRepo) PutCatalog(ctx context.Context, c domain.Catalog) error {
	return storage.SetJSON(ctx, r.store, storage.KeyCatalog, c)
}

func (r *StoreContentCacheRepo) Details(ctx context.Context, title string) (*domain.CourseDetails, error) {
	d, ok, err := storage.GetJSON[domain.CourseDetails](ctx, r.store, storage.DetailsKey(title))
	if err != nil {
		return nil, fmt.Errorf("loading details for %q: %w", title, err)
	}
	if !ok {
		return nil, fmt.Errorf("details %q: %w", title, ErrNotFound)
	}
	return &d, nil
}

func (r *StoreContentCacheRepo) PutDetails(ctx context.Context, title string, d domain.CourseDetails) error {
	return storage.SetJSON(ctx, r.store, storage.DetailsKey(title), d)
}

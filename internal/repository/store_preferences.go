package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/remsodo/internal/domain"
	"github.com/alexanderramin/remsodo/internal/storage"
)

// StorePreferenceRepo holds UI state: the last viewed course and per-course tabs.
type StorePreferenceRepo struct {
	store storage.Store
}

func NewStorePreferenceRepo(s storage.Store) *StorePreferenceRepo {
	return &StorePreferenceRepo{store: s}
}

func (r *StorePreferenceRepo) CurrentCourse(ctx context.Context) (*domain.Course, error) {
	c, ok, err := storage.GetJSON[domain.Course](ctx, r.store, storage.KeyCurrentCourse)
	if err != nil {
		return nil, fmt.Errorf("loading current course: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("current course: %w", ErrNotFound)
	}
	return &c, nil
}

func (r *StorePreferenceRepo) SetCurrentCourse(ctx context.Context, c domain.Course) error {
	return storage.SetJSON(ctx, r.store, storage.KeyCurrentCourse, c)
}

func (r *StorePreferenceRepo) ClearCurrentCourse(ctx context.Context) error {
	return r.store.Remove(ctx, storage.KeyCurrentCourse)
}

// ActiveTab defaults to the syllabus; an unknown stored tab is treated the same.
func (r *StorePreferenceRepo) ActiveTab(ctx context.Context, title string) (domain.Tab, error) {
	raw, ok, err := r.store.Get(ctx, storage.ActiveTabKey(title))
	if err != nil {
		return "", fmt.Errorf("loading tab for %q: %w", title, err)
	}
	if !ok {
		return domain.TabSyllabus, nil
	}
	tab, err := domain.ParseTab(raw)
	if err != nil {
		return domain.TabSyllabus, nil
	}
	return tab, nil
}

func (r *StorePreferenceRepo) SetActiveTab(ctx context.Context, title string, tab domain.Tab) error {
	return r.store.Set(ctx, storage.ActiveTabKey(title), string(tab))
}

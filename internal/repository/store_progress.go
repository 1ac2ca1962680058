package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/remsodo/internal/domain"
	"github.com/alexanderramin/remsodo/internal/storage"
)

type StoreProgressRepo struct {
	store storage.Store
}

func NewStoreProgressRepo(s storage.Store) *StoreProgressRepo {
	return &StoreProgressRepo{store: s}
}

type progressMap map[string]domain.Progress

// Get returns an empty progress for a course with none recorded.
func (r *StoreProgressRepo) Get(ctx context.Context, email, title string) (domain.Progress, error) {
	all, err := r.All(ctx, email)
	if err != nil {
		return nil, err
	}
	if p, ok := all[title]; ok && p != nil {
		return p, nil
	}
	return domain.Progress{}, nil
}

func (r *StoreProgressRepo) All(ctx context.Context, email string) (map[string]domain.Progress, error) {
	m, _, err := storage.GetJSON[progressMap](ctx, r.store, storage.ProgressKey(email))
	if err != nil {
		return nil, fmt.Errorf("loading progress: %w", err)
	}
	if m == nil {
		m = progressMap{}
	}
	return m, nil
}

func (r *StoreProgressRepo) Apply(ctx context.Context, email, title string, fn func(domain.Progress) domain.Progress) (domain.Progress, error) {
	var out domain.Progress
	err := storage.UpdateJSON(ctx, r.store, storage.ProgressKey(email), func(m progressMap, _ bool) (progressMap, error) {
		if m == nil {
			m = progressMap{}
		}
		cur := m[title]
		if cur == nil {
			cur = domain.Progress{}
		}
		out = fn(cur)
		m[title] = out
		return m, nil
	})
	if err != nil {
		return nil, fmt.Errorf("updating progress for %q: %w", title, err)
	}
	return out, nil
}

package repository

import (
	"context"

	"github.com/alexanderramin/remsodo/internal/storage"
)

type StoreSessionRepo struct {
	store storage.Store
}

func NewStoreSessionRepo(s storage.Store) *StoreSessionRepo {
	return &StoreSessionRepo{store: s}
}

func (r *StoreSessionRepo) Token(ctx context.Context) (string, bool, error) {
	return r.store.Get(ctx, storage.KeyAuthToken)
}

func (r *StoreSessionRepo) SetToken(ctx context.Context, token string) error {
	return r.store.Set(ctx, storage.KeyAuthToken, token)
}

func (r *StoreSessionRepo) ClearToken(ctx context.Context) error {
	return r.store.Remove(ctx, storage.KeyAuthToken)
}

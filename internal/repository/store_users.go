package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/remsodo/internal/domain"
	"github.com/alexanderramin/remsodo/internal/storage"
)

// StoreUserRepo keeps the whole user directory under one key.
type StoreUserRepo struct {
	store storage.Store
}

func NewStoreUserRepo(s storage.Store) *StoreUserRepo {
	return &StoreUserRepo{store: s}
}

type userDirectory map[string]domain.UserRecord

func (r *StoreUserRepo) Get(ctx context.Context, email string) (*domain.UserRecord, error) {
	users, _, err := storage.GetJSON[userDirectory](ctx, r.store, storage.KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("loading users: %w", err)
	}
	rec, ok := users[email]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", email, ErrNotFound)
	}
	return &rec, nil
}

func (r *StoreUserRepo) Create(ctx context.Context, email string, rec domain.UserRecord) (bool, error) {
	created := false
	err := storage.UpdateJSON(ctx, r.store, storage.KeyUsers, func(users userDirectory, _ bool) (userDirectory, error) {
		if _, exists := users[email]; exists {
			return nil, storage.ErrAbort
		}
		if users == nil {
			users = userDirectory{}
		}
		users[email] = rec
		created = true
		return users, nil
	})
	if err != nil {
		return false, fmt.Errorf("creating user %s: %w", email, err)
	}
	return created, nil
}

package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/remsodo/internal/domain"
	"github.com/alexanderramin/remsodo/internal/storage"
)

const maxTranscriptMessages = 200

type StoreChatRepo struct {
	store storage.Store
}

func NewStoreChatRepo(s storage.Store) *StoreChatRepo {
	return &StoreChatRepo{store: s}
}

func (r *StoreChatRepo) Transcript(ctx context.Context, email, scope string) ([]domain.ChatMessage, error) {
	msgs, _, err := storage.GetJSON[[]domain.ChatMessage](ctx, r.store, storage.ChatKey(email, scope))
	if err != nil {
		return nil, fmt.Errorf("loading chat %s: %w", scope, err)
	}
	return msgs, nil
}

// Append keeps at most the newest maxTranscriptMessages messages.
func (r *StoreChatRepo) Append(ctx context.Context, email, scope string, msgs ...domain.ChatMessage) error {
	err := storage.UpdateJSON(ctx, r.store, storage.ChatKey(email, scope), func(cur []domain.ChatMessage, _ bool) ([]domain.ChatMessage, error) {
		cur = append(cur, msgs...)
		if n := len(cur) - maxTranscriptMessages; n > 0 {
			cur = cur[n:]
		}
		return cur, nil
	})
	if err != nil {
		return fmt.Errorf("saving chat %s: %w", scope, err)
	}
	return nil
}

func (r *StoreChatRepo) Clear(ctx context.Context, email, scope string) error {
	return r.store.Remove(ctx, storage.ChatKey(email, scope))
}

func (r *StoreChatRepo) Scopes(ctx context.Context, email string) ([]string, error) {
	prefix := storage.ChatPrefix(email)
	keys, err := r.store.Keys(ctx, prefix)
	if err != nil {
		return nil, err
	}
	scopes := make([]string, 0, len(keys))
	for _, k := range keys {
		scopes = append(scopes, strings.TrimPrefix(k, prefix))
	}
	return scopes, nil
}

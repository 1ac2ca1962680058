package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// GetJSON decodes the value at key into T. A value that does not parse is
// removed and reported as absent.
func GetJSON[T any](ctx context.Context, s Store, key string) (T, bool, error) {
	var zero T
	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return zero, false, err
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		dropCorrupt(ctx, s, key, err)
		return zero, false, nil
	}
	return v, true, nil
}

func SetJSON[T any](ctx context.Context, s Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return s.Set(ctx, key, string(raw))
}

// UpdateJSON atomically applies fn to the decoded value at key. An absent or
// unparsable value reaches fn as the zero T with ok=false.
func UpdateJSON[T any](ctx context.Context, s Store, key string, fn func(cur T, ok bool) (T, error)) error {
	return s.Update(ctx, key, func(raw string, ok bool) (string, error) {
		var cur T
		if ok {
			if err := json.Unmarshal([]byte(raw), &cur); err != nil {
				slog.WarnContext(ctx, "discarding unparsable stored value", "key", key, "error", err)
				var zero T
				cur, ok = zero, false
			}
		}
		next, err := fn(cur, ok)
		if err != nil {
			return "", err
		}
		out, err := json.Marshal(next)
		if err != nil {
			return "", fmt.Errorf("encoding %s: %w", key, err)
		}
		return string(out), nil
	})
}

func dropCorrupt(ctx context.Context, s Store, key string, cause error) {
	slog.WarnContext(ctx, "discarding unparsable stored value", "key", key, "error", cause)
	if err := s.Remove(ctx, key); err != nil {
		slog.WarnContext(ctx, "removing unparsable stored value", "key", key, "error", err)
	}
}

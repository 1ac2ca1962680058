package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/remsodo/internal/domain"
	"github.com/alexanderramin/remsodo/internal/storage"
)

// StoreQuizDraftRepo persists in-progress quiz answers per course title.
// The JSON form is {"0":"option",...}.
type StoreQuizDraftRepo struct {
	store storage.Store
}

func NewStoreQuizDraftRepo(s storage.Store) *StoreQuizDraftRepo {
	return &StoreQuizDraftRepo{store: s}
}

func (r *StoreQuizDraftRepo) Get(ctx context.Context, title string) (domain.QuizAnswers, error) {
	a, _, err := storage.GetJSON[domain.QuizAnswers](ctx, r.store, storage.QuizAnswersKey(title))
	if err != nil {
		return nil, fmt.Errorf("loading quiz draft for %q: %w", title, err)
	}
	if a == nil {
		a = domain.QuizAnswers{}
	}
	return a, nil
}

func (r *StoreQuizDraftRepo) SetAnswer(ctx context.Context, title string, index int, option string) (domain.QuizAnswers, error) {
	var out domain.QuizAnswers
	err := storage.UpdateJSON(ctx, r.store, storage.QuizAnswersKey(title), func(a domain.QuizAnswers, _ bool) (domain.QuizAnswers, error) {
		if a == nil {
			a = domain.QuizAnswers{}
		}
		a[index] = option
		out = a
		return a, nil
	})
	if err != nil {
		return nil, fmt.Errorf("saving quiz answer for %q: %w", title, err)
	}
	return out, nil
}

func (r *StoreQuizDraftRepo) Clear(ctx context.Context, title string) error {
	return r.store.Remove(ctx, storage.QuizAnswersKey(title))
}

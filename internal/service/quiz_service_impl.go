package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/alexanderramin/remsodo/internal/domain"
	"github.com/alexanderramin/remsodo/internal/repository"
)

type quizService struct {
	drafts   repository.QuizDraftRepo
	observer UseCaseObserver
}

func NewQuizService(drafts repository.QuizDraftRepo, observers ...UseCaseObserver) QuizService {
	return &quizService{drafts: drafts, observer: useCaseObserverOrNoop(observers)}
}

func (s *quizService) state(questions []domain.QuizQuestion, answers domain.QuizAnswers) *QuizState {
	// Answers saved against an older version of the quiz are ignored.
	kept := domain.QuizAnswers{}
	for i, a := range answers {
		if i >= 0 && i < len(questions) && slices.Contains(questions[i].Options, a) {
			kept[i] = a
		}
	}
	return &QuizState{
		Questions: questions,
		Answers:   kept,
		CanSubmit: domain.CanSubmit(questions, kept),
	}
}

func (s *quizService) Draft(ctx context.Context, title string, questions []domain.QuizQuestion) (*QuizState, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuiz
	}
	answers, err := s.drafts.Get(ctx, title)
	if err != nil {
		return nil, err
	}
	return s.state(questions, answers), nil
}

func (s *quizService) SelectAnswer(ctx context.Context, title string, questions []domain.QuizQuestion, index int, option string) (*QuizState, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuiz
	}
	if index < 0 || index >= len(questions) {
		return nil, fmt.Errorf("%w: question %d does not exist", ErrInvalidAnswer, index+1)
	}
	if !slices.Contains(questions[index].Options, option) {
		return nil, fmt.Errorf("%w: %q is not an option for question %d", ErrInvalidAnswer, option, index+1)
	}
	answers, err := s.drafts.SetAnswer(ctx, title, index, option)
	if err != nil {
		return nil, err
	}
	return s.state(questions, answers), nil
}

func (s *quizService) Submit(ctx context.Context, title string, questions []domain.QuizQuestion) (res *domain.QuizResult, err error) {
	fields := map[string]any{"course": title}
	defer observe(ctx, s.observer, "submit-quiz", time.Now().UTC(), fields, &err)

	var st *QuizState
	st, err = s.Draft(ctx, title, questions)
	if err != nil {
		return nil, err
	}
	if !st.CanSubmit {
		err = ErrQuizIncomplete
		return nil, err
	}
	result := domain.GradeQuiz(questions, st.Answers)
	fields["score"] = result.Score
	fields["total"] = result.Total
	if err = s.drafts.Clear(ctx, title); err != nil {
		return nil, fmt.Errorf("clearing quiz draft: %w", err)
	}
	return &result, nil
}

func (s *quizService) Retake(ctx context.Context, title string) error {
	return s.drafts.Clear(ctx, title)
}

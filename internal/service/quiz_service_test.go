package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/remsodo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizService_DraftPersistsUntilSubmit(t *testing.T) {
	env := newTestEnv(t)
	svc := NewQuizService(env.drafts)
	ctx := context.Background()
	quiz := testutil.NewTestQuiz()

	st, err := svc.SelectAnswer(ctx, "Intro to AI", quiz, 0, "HyperText Markup Language")
	require.NoError(t, err)
	assert.False(t, st.CanSubmit)

	_, err = svc.Submit(ctx, "Intro to AI", quiz)
	assert.ErrorIs(t, err, ErrQuizIncomplete)

	// A fresh service sees the same draft.
	st, err = NewQuizService(env.drafts).Draft(ctx, "Intro to AI", quiz)
	require.NoError(t, err)
	assert.Equal(t, "HyperText Markup Language", st.Answers[0])

	_, err = svc.SelectAnswer(ctx, "Intro to AI", quiz, 1, "<p>")
	require.NoError(t, err)
	st, err = svc.SelectAnswer(ctx, "Intro to AI", quiz, 2, "Style")
	require.NoError(t, err)
	assert.True(t, st.CanSubmit)

	res, err := svc.Submit(ctx, "Intro to AI", quiz)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Score)
	assert.Equal(t, 3, res.Total)
	assert.False(t, res.Perfect())
	assert.False(t, res.Review[1].Correct)
	assert.Equal(t, "<a>", res.Review[1].CorrectAnswer)

	st, err = svc.Draft(ctx, "Intro to AI", quiz)
	require.NoError(t, err)
	assert.Empty(t, st.Answers, "submit clears the draft")
}

func TestQuizService_SelectAnswerValidates(t *testing.T) {
	svc := NewQuizService(newTestEnv(t).drafts)
	ctx := context.Background()
	quiz := testutil.NewTestQuiz()

	_, err := svc.SelectAnswer(ctx, "c", quiz, 3, "Style")
	assert.ErrorIs(t, err, ErrInvalidAnswer)
	_, err = svc.SelectAnswer(ctx, "c", quiz, -1, "Style")
	assert.ErrorIs(t, err, ErrInvalidAnswer)
	_, err = svc.SelectAnswer(ctx, "c", quiz, 2, "Colour")
	assert.ErrorIs(t, err, ErrInvalidAnswer)
	_, err = svc.SelectAnswer(ctx, "c", nil, 0, "Style")
	assert.ErrorIs(t, err, ErrNoQuiz)
}

func TestQuizService_PerfectScoreAndRetake(t *testing.T) {
	svc := NewQuizService(newTestEnv(t).drafts)
	ctx := context.Background()
	quiz := testutil.NewTestQuiz()

	for i, q := range quiz {
		_, err := svc.SelectAnswer(ctx, "c", quiz, i, q.CorrectAnswer)
		require.NoError(t, err)
	}
	require.NoError(t, svc.Retake(ctx, "c"))
	_, err := svc.Submit(ctx, "c", quiz)
	assert.ErrorIs(t, err, ErrQuizIncomplete)

	for i, q := range quiz {
		_, err := svc.SelectAnswer(ctx, "c", quiz, i, q.CorrectAnswer)
		require.NoError(t, err)
	}
	res, err := svc.Submit(ctx, "c", quiz)
	require.NoError(t, err)
	assert.True(t, res.Perfect())
}

func TestQuizService_IgnoresStaleAnswers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, err := env.drafts.SetAnswer(ctx, "c", 7, "gone")
	require.NoError(t, err)

	st, err := NewQuizService(env.drafts).Draft(ctx, "c", testutil.NewTestQuiz())
	require.NoError(t, err)
	assert.Empty(t, st.Answers)
}

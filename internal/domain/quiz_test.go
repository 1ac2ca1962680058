package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuiz() []QuizQuestion {
	return []QuizQuestion{
		{Question: "2+2?", Options: []string{"3", "4", "5", "6"}, CorrectAnswer: "4"},
		{Question: "Capital of France?", Options: []string{"Paris", "Rome", "Oslo", "Bern"}, CorrectAnswer: "Paris"},
		{Question: "Go keyword for goroutines?", Options: []string{"go", "async", "spawn", "run"}, CorrectAnswer: "go"},
	}
}

func TestValidateQuiz_CorrectAnswerMustBeOption(t *testing.T) {
	require.NoError(t, ValidateQuiz(sampleQuiz()))

	bad := sampleQuiz()
	bad[1].CorrectAnswer = "Madrid"
	err := ValidateQuiz(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "question 2")
}

func TestCanSubmit(t *testing.T) {
	qs := sampleQuiz()
	assert.False(t, CanSubmit(qs, QuizAnswers{0: "4", 1: "Paris"}))
	assert.False(t, CanSubmit(qs, QuizAnswers{0: "4", 1: "Paris", 5: "go"}), "count alone is not enough")
	assert.True(t, CanSubmit(qs, QuizAnswers{0: "4", 1: "Paris", 2: "go"}))
	assert.False(t, CanSubmit(nil, QuizAnswers{}))
}

func TestGradeQuiz(t *testing.T) {
	qs := sampleQuiz()

	res := GradeQuiz(qs, QuizAnswers{0: "4", 1: "Rome", 2: "go"})
	assert.Equal(t, 2, res.Score)
	assert.Equal(t, 3, res.Total)
	assert.False(t, res.Perfect())
	assert.False(t, res.Review[1].Correct)
	assert.Equal(t, "Paris", res.Review[1].CorrectAnswer)

	perfect := GradeQuiz(qs, QuizAnswers{0: "4", 1: "Paris", 2: "go"})
	assert.True(t, perfect.Perfect())
}

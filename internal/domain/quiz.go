package domain

import (
	"fmt"
	"slices"
)

type QuizQuestion struct {
	Question      string   `json:"question" validate:"required"`
	Options       []string `json:"options" validate:"min=2,dive,required"`
	CorrectAnswer string   `json:"correctAnswer" validate:"required"`
}

// Validate checks that the correct answer is literally one of the options.
func (q QuizQuestion) Validate() error {
	if !slices.Contains(q.Options, q.CorrectAnswer) {
		return fmt.Errorf("correct answer %q is not among the options of %q", q.CorrectAnswer, q.Question)
	}
	return nil
}

func ValidateQuiz(questions []QuizQuestion) error {
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return nil
}

// QuizAnswers maps a question index to the selected option.
type QuizAnswers map[int]string

// CanSubmit is true only when every question has a selected option.
func CanSubmit(questions []QuizQuestion, answers QuizAnswers) bool {
	if len(questions) == 0 {
		return false
	}
	for i := range questions {
		if _, ok := answers[i]; !ok {
			return false
		}
	}
	return true
}

// Score counts answers that literally equal the correct answer.
func Score(questions []QuizQuestion, answers QuizAnswers) int {
	score := 0
	for i, q := range questions {
		if a, ok := answers[i]; ok && a == q.CorrectAnswer {
			score++
		}
	}
	return score
}

type QuestionReview struct {
	Question      string `json:"question"`
	Selected      string `json:"selected"`
	CorrectAnswer string `json:"correctAnswer"`
	Correct       bool   `json:"correct"`
}

type QuizResult struct {
	Score  int              `json:"score"`
	Total  int              `json:"total"`
	Review []QuestionReview `json:"review"`
}

func (r QuizResult) Perfect() bool { return r.Total > 0 && r.Score == r.Total }

// GradeQuiz scores answers and reports each question's outcome.
func GradeQuiz(questions []QuizQuestion, answers QuizAnswers) QuizResult {
	res := QuizResult{Total: len(questions), Review: make([]QuestionReview, 0, len(questions))}
	for i, q := range questions {
		sel := answers[i]
		res.Review = append(res.Review, QuestionReview{
			Question:      q.Question,
			Selected:      sel,
			CorrectAnswer: q.CorrectAnswer,
			Correct:       sel == q.CorrectAnswer,
		})
	}
	res.Score = Score(questions, answers)
	return res
}

package service

import "errors"

var (
	ErrNotSignedIn        = errors.New("not signed in")
	ErrNotEnrolled        = errors.New("not enrolled in this course")
	ErrForbidden          = errors.New("only tutors can create courses")
	ErrQuizIncomplete     = errors.New("answer every question before submitting")
	ErrNoQuiz             = errors.New("no quiz available")
	ErrInvalidAnswer      = errors.New("invalid quiz answer")
	ErrFileTooLarge       = errors.New("file is too large (max 1MB)")
	ErrEmptyFile          = errors.New("file is empty")
	ErrVideoInputRequired = errors.New("video URL and topic are both required")
	ErrInvalidURL         = errors.New("invalid video URL")
	ErrCourseNotFound     = errors.New("course not found")
	ErrEmptyMessage       = errors.New("message is empty")
)

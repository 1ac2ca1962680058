package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/remsodo/internal/intelligence"
	"github.com/alexanderramin/remsodo/internal/llm"
	"github.com/alexanderramin/remsodo/internal/service"
)

// userError carries the one line shown to the user while keeping the cause
// available to errors.Is.
type userError struct {
	msg string
	err error
}

func (e *userError) Error() string { return e.msg }
func (e *userError) Unwrap() error { return e.err }

var userMessages = []struct {
	err error
	msg string
}{
	{service.ErrNotSignedIn, "Please log in to continue (remsodo auth login)."},
	{service.ErrForbidden, "Only tutors can create courses."},
	{service.ErrNotEnrolled, "Enroll in this course to track your progress."},
	{service.ErrQuizIncomplete, "Please answer every question before submitting."},
	{service.ErrNoQuiz, "No Quiz Available"},
	{service.ErrFileTooLarge, "File is too large. Please upload a file smaller than 1MB."},
	{service.ErrEmptyFile, "File is empty or could not be read."},
	{service.ErrVideoInputRequired, "Please provide both a video URL and a topic description."},
	{service.ErrInvalidURL, "Please enter a valid URL (e.g., https://www.youtube.com/watch?v=...)."},
	{service.ErrEmptyMessage, "Type a message to send."},
	{service.ErrInvalidAnswer, "That option is not one of the answers."},
	{intelligence.ErrChatNotStarted, "No course chat is open. Start one with --course."},
	{llm.ErrMissingAPIKey, "API_KEY environment variable not set. Generation is unavailable."},
}

// friendly maps known errors to their user-facing line; others pass through.
func friendly(err error) error {
	if err == nil {
		return nil
	}
	var ue *userError
	if errors.As(err, &ue) {
		return err
	}
	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return &userError{msg: m.msg, err: err}
		}
	}
	return err
}

func isGenerationFailure(err error) bool {
	for _, target := range []error{
		llm.ErrUnavailable, llm.ErrTimeout, llm.ErrInvalidOutput,
		llm.ErrRetryExhausted, llm.ErrNoCandidates,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// generationFailed replaces a model failure with msg.
func generationFailed(err error, msg string) error {
	if isGenerationFailure(err) {
		return &userError{msg: msg, err: err}
	}
	return friendly(err)
}

func searchFailedMessage(query string) string {
	if query == "" {
		return "Failed to load initial courses. Please try refreshing the page."
	}
	return fmt.Sprintf("Failed to search for %q. Please try again.", query)
}

const (
	msgDetailsFailed  = "Failed to load course details. Please go back and try again."
	msgCreationFailed = "An unexpected error occurred during course creation."
)

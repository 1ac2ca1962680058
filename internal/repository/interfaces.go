package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/remsodo/internal/domain"
)

var ErrNotFound = errors.New("not found")

type UserRepo interface {
	// Get returns the record for a normalized email, or ErrNotFound.
	Get(ctx context.Context, email string) (*domain.UserRecord, error)
	// Create adds a record; false means the email was already taken.
	Create(ctx context.Context, email string, rec domain.UserRecord) (bool, error)
}

type SessionRepo interface {
	Token(ctx context.Context) (string, bool, error)
	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}

type EnrollmentRepo interface {
	// Enroll stores the snapshot unless the title is already enrolled; it
	// reports whether a new enrollment was written.
	Enroll(ctx context.Context, email string, course domain.Course, syllabusLength int) (bool, error)
	IsEnrolled(ctx context.Context, email, title string) (bool, error)
	Get(ctx context.Context, email, title string) (*domain.EnrolledCourse, error)
	List(ctx context.Context, email string) (map[string]domain.EnrolledCourse, error)
}

type ProgressRepo interface {
	Get(ctx context.Context, email, title string) (domain.Progress, error)
	All(ctx context.Context, email string) (map[string]domain.Progress, error)
	// Apply atomically replaces one course's progress with fn's result.
	Apply(ctx context.Context, email, title string, fn func(domain.Progress) domain.Progress) (domain.Progress, error)
}

type PreferenceRepo interface {
	CurrentCourse(ctx context.Context) (*domain.Course, error)
	SetCurrentCourse(ctx context.Context, c domain.Course) error
	ClearCurrentCourse(ctx context.Context) error
	ActiveTab(ctx context.Context, title string) (domain.Tab, error)
	SetActiveTab(ctx context.Context, title string, tab domain.Tab) error
}

type QuizDraftRepo interface {
	Get(ctx context.Context, title string) (domain.QuizAnswers, error)
	SetAnswer(ctx context.Context, title string, index int, option string) (domain.QuizAnswers, error)
	Clear(ctx context.Context, title string) error
}

type ContentCacheRepo interface {
	Catalog(ctx context.Context) (*domain.Catalog, error)
	PutCatalog(ctx context.Context, c domain.Catalog) error
	Details(ctx context.Context, title string) (*domain.CourseDetails, error)
	PutDetails(ctx context.Context, title string, d domain.CourseDetails) error
}

type ChatRepo interface {
	Transcript(ctx context.Context, email, scope string) ([]domain.ChatMessage, error)
	Append(ctx context.Context, email, scope string, msgs ...domain.ChatMessage) error
	Clear(ctx context.Context, email, scope string) error
	// Scopes lists the scopes that have a stored transcript for email.
	Scopes(ctx context.Context, email string) ([]string, error)
}

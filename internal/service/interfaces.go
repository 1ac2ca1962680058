package service

import (
	"context"

	"github.com/alexanderramin/remsodo/internal/domain"
)

// AuthResult mirrors the outcome shown to the user after an auth action.
// Infrastructure failures are returned as errors instead.
type AuthResult struct {
	Success bool
	Message string
	User    *domain.User
}

type AuthService interface {
	SignUp(ctx context.Context, email, password string, role domain.Role) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Logout(ctx context.Context) error
	// CurrentUser returns nil when nobody is signed in or the session expired.
	CurrentUser(ctx context.Context) (*domain.User, error)
	RequestPasswordReset(ctx context.Context, email string) (*AuthResult, error)
}

// DashboardQuery carries the per-list filter and sort choices.
type DashboardQuery struct {
	InProgressFilter string
	InProgressSort   domain.SortOption
	CompletedFilter  string
	CompletedSort    domain.SortOption
}

type Dashboard struct {
	InProgress      []domain.CourseWithProgress
	Completed       []domain.Course
	TotalInProgress int
	TotalCompleted  int
}

type CourseService interface {
	Enroll(ctx context.Context, email string, course domain.Course, syllabusLength int) (bool, error)
	IsEnrolled(ctx context.Context, email, title string) (bool, error)
	GetProgress(ctx context.Context, email, title string) (domain.Progress, error)
	UpdateProgress(ctx context.Context, email, title, item string, complete bool) (domain.Progress, error)
	ToggleProgress(ctx context.Context, email, title, item string) (domain.Progress, error)
	InProgress(ctx context.Context, email string) ([]domain.CourseWithProgress, error)
	Completed(ctx context.Context, email string) ([]domain.Course, error)
	Dashboard(ctx context.Context, email string, q DashboardQuery) (*Dashboard, error)
}

// QuizState is a quiz with its saved draft answers.
type QuizState struct {
	Questions []domain.QuizQuestion
	Answers   domain.QuizAnswers
	CanSubmit bool
}

type QuizService interface {
	Draft(ctx context.Context, title string, questions []domain.QuizQuestion) (*QuizState, error)
	SelectAnswer(ctx context.Context, title string, questions []domain.QuizQuestion, index int, option string) (*QuizState, error)
	Submit(ctx context.Context, title string, questions []domain.QuizQuestion) (*domain.QuizResult, error)
	Retake(ctx context.Context, title string) error
}

type CatalogService interface {
	// Browse returns the cached catalog for query, generating it when the
	// query changed, nothing is cached, or refresh is set.
	Browse(ctx context.Context, query string, refresh bool) (*domain.Catalog, error)
}

// CourseView is everything the course page shows.
type CourseView struct {
	Course               domain.Course
	Details              domain.CourseDetails
	Enrolled             bool
	Progress             domain.Progress
	CompletionPercentage float64
	Tab                  domain.Tab
	FromCache            bool
}

type ViewService interface {
	// Resolve finds a course by catalog index or title, then among the
	// user's enrollments, then the last-viewed course.
	Resolve(ctx context.Context, email, ref string) (domain.Course, error)
	Open(ctx context.Context, user *domain.User, course domain.Course, refresh bool) (*CourseView, error)
	Back(ctx context.Context) error
	// Current is the last-viewed course, or nil.
	Current(ctx context.Context) (*domain.Course, error)
	// Resume reopens the last-viewed course; nil when there is none.
	Resume(ctx context.Context, user *domain.User) (*CourseView, error)
	SetTab(ctx context.Context, title string, tab domain.Tab) error
	GetTab(ctx context.Context, title string) (domain.Tab, error)
}

type AuthoringService interface {
	FromFile(ctx context.Context, user *domain.User, path string) (*AuthoringResult, error)
	FromVideo(ctx context.Context, user *domain.User, videoURL, topic string) (*AuthoringResult, error)
}

type AuthoringResult struct {
	Bundle  domain.CourseBundle
	Message string
}

// ChatReply is the assistant's answer. Failed replies carry the apology text.
type ChatReply struct {
	Message domain.ChatMessage
	Failed  bool
}

// ChatSession is an opened chat: its greeting and stored transcript.
type ChatSession struct {
	Scope      string
	Greeting   string
	Transcript []domain.ChatMessage
}

type ChatService interface {
	StartChat(ctx context.Context, user *domain.User, courseTitle string) (*ChatSession, error)
	SendChatMessage(ctx context.Context, user *domain.User, msg string) (*ChatReply, error)
	OpenGeneralChat(ctx context.Context, user *domain.User) (*ChatSession, error)
	SendGeneralChatMessage(ctx context.Context, user *domain.User, msg string) (*ChatReply, error)
	Clear(ctx context.Context, user *domain.User, courseTitle string) error
	// Conversations lists the course titles with a stored transcript, sorted.
	// HasGeneral reports whether a general chat is stored too.
	Conversations(ctx context.Context, user *domain.User) (titles []string, hasGeneral bool, err error)
}

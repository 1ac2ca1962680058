package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/remsodo/internal/auth"
	"github.com/alexanderramin/remsodo/internal/domain"
	"github.com/alexanderramin/remsodo/internal/intelligence"
	"github.com/alexanderramin/remsodo/internal/mail"
	"github.com/alexanderramin/remsodo/internal/repository"
	"github.com/alexanderramin/remsodo/internal/storage"
	"github.com/alexanderramin/remsodo/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	store       *storage.SQLiteStore
	users       *repository.StoreUserRepo
	sessions    *repository.StoreSessionRepo
	prefs       *repository.StorePreferenceRepo
	enrollments *repository.StoreEnrollmentRepo
	progress    *repository.StoreProgressRepo
	drafts      *repository.StoreQuizDraftRepo
	cache       *repository.StoreContentCacheRepo
	chats       *repository.StoreChatRepo
	llm         *testutil.FakeLLMClient
	mailer      *mail.LogMailer
	tokens      *auth.TokenIssuer
}

func newTestEnv(t *testing.T, responses ...string) *testEnv {
	t.Helper()
	store := testutil.NewTestStore(t)
	return &testEnv{
		store:       store,
		users:       repository.NewStoreUserRepo(store),
		sessions:    repository.NewStoreSessionRepo(store),
		prefs:       repository.NewStorePreferenceRepo(store),
		enrollments: repository.NewStoreEnrollmentRepo(store),
		progress:    repository.NewStoreProgressRepo(store),
		drafts:      repository.NewStoreQuizDraftRepo(store),
		cache:       repository.NewStoreContentCacheRepo(store),
		chats:       repository.NewStoreChatRepo(store),
		llm:         testutil.NewFakeLLMClient(responses...),
		mailer:      mail.NewLogMailer(nil),
		tokens:      auth.NewTokenIssuer("test-secret", auth.DefaultTokenTTL),
	}
}

func (e *testEnv) authService() AuthService {
	return NewAuthService(e.users, e.sessions, e.prefs, e.tokens, e.mailer)
}

func (e *testEnv) courseService() CourseService {
	return NewCourseService(e.enrollments, e.progress)
}

func (e *testEnv) generator() intelligence.CourseGenerator {
	return intelligence.NewCourseGenerator(e.llm)
}

func (e *testEnv) viewService() ViewService {
	return NewViewService(e.generator(), e.cache, e.prefs, e.enrollments, e.progress)
}

func (e *testEnv) chatService() ChatService {
	return NewChatService(intelligence.NewAssistant(intelligence.NewChatService(e.llm)), e.chats)
}

// signUp creates an account and returns its signed-in user.
func (e *testEnv) signUp(t *testing.T, email string, role domain.Role) *domain.User {
	t.Helper()
	res, err := e.authService().SignUp(context.Background(), email, "hunter22", role)
	require.NoError(t, err)
	require.True(t, res.Success, res.Message)
	return res.User
}

// recordingObserver captures use-case events for assertions.
type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

func (r *recordingObserver) names() []string {
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Name
	}
	return out
}

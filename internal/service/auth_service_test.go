package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/remsodo/internal/domain"
	"github.com/alexanderramin/remsodo/internal/repository"
	"github.com/alexanderramin/remsodo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_SignUpLogsIn(t *testing.T) {
	env := newTestEnv(t)
	svc := env.authService()
	ctx := context.Background()

	res, err := svc.SignUp(ctx, "  Ada@Example.com ", "hunter22", domain.RoleTutor)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "Account created successfully!", res.Message)

	user, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, domain.RoleTutor, user.Role)

	rec, err := env.users.Get(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", rec.PasswordHash)
}

func TestAuthService_SignUpDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	svc := env.authService()
	env.signUp(t, "ada@example.com", domain.RoleStudent)

	res, err := svc.SignUp(context.Background(), "ADA@example.com", "other-pass", domain.RoleStudent)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "An account with this email already exists.", res.Message)
}

func TestAuthService_SignUpRejectsBadInput(t *testing.T) {
	svc := newTestEnv(t).authService()

	res, err := svc.SignUp(context.Background(), "not-an-email", "x", domain.RoleStudent)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "valid email")
}

func TestAuthService_SignUpRejectsOverlongPassword(t *testing.T) {
	env := newTestEnv(t)
	svc := env.authService()
	ctx := context.Background()

	res, err := svc.SignUp(ctx, "ada@example.com", strings.Repeat("p", 73), domain.RoleStudent)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "at most 72 bytes")

	_, err = env.users.Get(ctx, "ada@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAuthService_Login(t *testing.T) {
	env := newTestEnv(t)
	svc := env.authService()
	ctx := context.Background()
	env.signUp(t, "ada@example.com", domain.RoleStudent)
	require.NoError(t, svc.Logout(ctx))

	tests := []struct {
		name     string
		email    string
		password string
		success  bool
		message  string
	}{
		{"wrong password", "ada@example.com", "nope", false, "Invalid email or password."},
		{"unknown user", "bob@example.com", "hunter22", false, "Invalid email or password."},
		{"case folded", "ADA@example.com", "hunter22", true, "Logged in successfully."},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := svc.Login(ctx, tc.email, tc.password)
			require.NoError(t, err)
			assert.Equal(t, tc.success, res.Success)
			assert.Equal(t, tc.message, res.Message)
		})
	}
}

func TestAuthService_LogoutClearsCurrentCourse(t *testing.T) {
	env := newTestEnv(t)
	svc := env.authService()
	ctx := context.Background()
	env.signUp(t, "ada@example.com", domain.RoleStudent)
	require.NoError(t, env.prefs.SetCurrentCourse(ctx, testutil.NewTestCourse("Intro to AI")))

	require.NoError(t, svc.Logout(ctx))

	user, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
	_, err = env.prefs.CurrentCourse(ctx)
	assert.Error(t, err)
}

func TestAuthService_ExpiredSessionIsDropped(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	issued := time.Now().Add(-48 * time.Hour)
	env.tokens = env.tokens.WithClock(func() time.Time { return issued })
	env.signUp(t, "ada@example.com", domain.RoleStudent)

	env.tokens = env.tokens.WithClock(time.Now)
	user, err := env.authService().CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)

	_, ok, err := env.sessions.Token(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "expired token should be removed")
}

func TestAuthService_GarbageTokenIsDropped(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, env.sessions.SetToken(ctx, "eyJub3QiOiJhIGp3dCJ9"))

	user, err := env.authService().CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
	_, ok, _ := env.sessions.Token(ctx)
	assert.False(t, ok)
}

func TestAuthService_RequestPasswordReset(t *testing.T) {
	env := newTestEnv(t)
	svc := env.authService()
	ctx := context.Background()
	env.signUp(t, "ada@example.com", domain.RoleStudent)

	res, err := svc.RequestPasswordReset(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "No account found with that email.", res.Message)
	assert.Empty(t, env.mailer.Sent())

	res, err = svc.RequestPasswordReset(ctx, "Ada@Example.com")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "If an account exists, a password reset link has been sent.", res.Message)
	require.Len(t, env.mailer.Sent(), 1)
	assert.Equal(t, "ada@example.com", env.mailer.Sent()[0].To)
}

func TestAuthService_ReportsUseCases(t *testing.T) {
	env := newTestEnv(t)
	obs := &recordingObserver{}
	svc := NewAuthService(env.users, env.sessions, env.prefs, env.tokens, env.mailer, obs)

	_, err := svc.SignUp(context.Background(), "ada@example.com", "hunter22", domain.RoleStudent)
	require.NoError(t, err)
	_, err = svc.Login(context.Background(), "ada@example.com", "hunter22")
	require.NoError(t, err)

	assert.Equal(t, []string{"sign-up", "login"}, obs.names())
	assert.True(t, obs.events[0].Success)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/remsodo/internal/auth"
	"github.com/alexanderramin/remsodo/internal/domain"
	"github.com/alexanderramin/remsodo/internal/mail"
	"github.com/alexanderramin/remsodo/internal/repository"
)

const (
	msgAccountExists   = "An account with this email already exists."
	msgAccountCreated  = "Account created successfully!"
	msgInvalidLogin    = "Invalid email or password."
	msgLoggedIn        = "Logged in successfully."
	msgNoAccount       = "No account found with that email."
	msgResetLinkSent   = "If an account exists, a password reset link has been sent."
	msgPasswordsDiffer = "Passwords do not match."
)

type authService struct {
	users    repository.UserRepo
	sessions repository.SessionRepo
	prefs    repository.PreferenceRepo
	tokens   *auth.TokenIssuer
	mailer   mail.Mailer
	observer UseCaseObserver
}

func NewAuthService(
	users repository.UserRepo,
	sessions repository.SessionRepo,
	prefs repository.PreferenceRepo,
	tokens *auth.TokenIssuer,
	mailer mail.Mailer,
	observers ...UseCaseObserver,
) AuthService {
	return &authService{
		users:    users,
		sessions: sessions,
		prefs:    prefs,
		tokens:   tokens,
		mailer:   mailer,
		observer: useCaseObserverOrNoop(observers),
	}
}

// PasswordsDifferResult is what sign-up shows when the confirmation does not match.
func PasswordsDifferResult() *AuthResult {
	return &AuthResult{Success: false, Message: msgPasswordsDiffer}
}

func (s *authService) SignUp(ctx context.Context, email, password string, role domain.Role) (res *AuthResult, err error) {
	defer observe(ctx, s.observer, "sign-up", time.Now().UTC(), map[string]any{"role": string(role)}, &err)

	if role == "" {
		role = domain.RoleStudent
	}
	email = domain.NormalizeEmail(email)
	creds := auth.Credentials{Email: email, Password: password, Role: string(role)}
	if verr := creds.Validate(); verr != nil {
		return &AuthResult{Message: verr.Error()}, nil
	}

	var hash string
	hash, err = auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	var created bool
	created, err = s.users.Create(ctx, email, domain.UserRecord{PasswordHash: hash, Role: role})
	if err != nil {
		return nil, err
	}
	if !created {
		return &AuthResult{Message: msgAccountExists}, nil
	}

	user := domain.User{Email: email, Role: role}
	if err = s.startSession(ctx, user); err != nil {
		return nil, err
	}
	return &AuthResult{Success: true, Message: msgAccountCreated, User: &user}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (res *AuthResult, err error) {
	defer observe(ctx, s.observer, "login", time.Now().UTC(), nil, &err)

	email = domain.NormalizeEmail(email)
	var rec *domain.UserRecord
	rec, err = s.users.Get(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		err = nil
		return &AuthResult{Message: msgInvalidLogin}, nil
	}
	if err != nil {
		return nil, err
	}
	var match bool
	match, err = auth.CheckPassword(rec.PasswordHash, password)
	if err != nil {
		return nil, err
	}
	if !match {
		return &AuthResult{Message: msgInvalidLogin}, nil
	}

	user := domain.User{Email: email, Role: rec.Role}
	if err = s.startSession(ctx, user); err != nil {
		return nil, err
	}
	return &AuthResult{Success: true, Message: msgLoggedIn, User: &user}, nil
}

func (s *authService) startSession(ctx context.Context, user domain.User) error {
	token, err := s.tokens.Issue(user)
	if err != nil {
		return err
	}
	if err := s.sessions.SetToken(ctx, token); err != nil {
		return fmt.Errorf("storing session: %w", err)
	}
	return nil
}

// Logout also forgets the last-viewed course.
func (s *authService) Logout(ctx context.Context) error {
	if err := s.sessions.ClearToken(ctx); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	if err := s.prefs.ClearCurrentCourse(ctx); err != nil {
		return fmt.Errorf("clearing current course: %w", err)
	}
	return nil
}

func (s *authService) CurrentUser(ctx context.Context) (*domain.User, error) {
	token, ok, err := s.sessions.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	if !ok {
		return nil, nil
	}
	user, perr := s.tokens.Parse(token)
	if perr != nil {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "session-dropped",
			StartedAt: time.Now().UTC(),
			Success:   true,
			Fields:    map[string]any{"reason": perr.Error()},
		})
		if err := s.Logout(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return &user, nil
}

func (s *authService) RequestPasswordReset(ctx context.Context, email string) (res *AuthResult, err error) {
	defer observe(ctx, s.observer, "password-reset", time.Now().UTC(), nil, &err)

	email = domain.NormalizeEmail(email)
	_, err = s.users.Get(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		err = nil
		return &AuthResult{Message: msgNoAccount}, nil
	}
	if err != nil {
		return nil, err
	}
	if err = s.mailer.Send(ctx, mail.PasswordResetMessage(email)); err != nil {
		return nil, fmt.Errorf("sending reset mail: %w", err)
	}
	return &AuthResult{Success: true, Message: msgResetLinkSent}, nil
}

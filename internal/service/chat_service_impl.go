package service

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/alexanderramin/remsodo/internal/domain"
	"github.com/alexanderramin/remsodo/internal/intelligence"
	"github.com/alexanderramin/remsodo/internal/llm"
	"github.com/alexanderramin/remsodo/internal/repository"
	"github.com/google/uuid"
)

const generalScope = "general"

func courseScope(title string) string { return "course:" + title }

func scopeFor(courseTitle string) string {
	if courseTitle == "" {
		return generalScope
	}
	return courseScope(courseTitle)
}

type chatService struct {
	assistant *intelligence.Assistant
	chats     repository.ChatRepo
	observer  UseCaseObserver
	now       func() time.Time

	mu         sync.Mutex
	courseFor  string // email whose course chat the assistant holds
	generalFor string // email whose general chat the assistant holds
}

func NewChatService(
	assistant *intelligence.Assistant,
	chats repository.ChatRepo,
	observers ...UseCaseObserver,
) ChatService {
	return &chatService{
		assistant: assistant,
		chats:     chats,
		observer:  useCaseObserverOrNoop(observers),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// modelTurns drops each apology together with the question it answered, so
// the history the model sees alternates user and model turns.
func modelTurns(msgs []domain.ChatMessage) []llm.Turn {
	turns := make([]llm.Turn, 0, len(msgs))
	for _, m := range msgs {
		if m.Failed {
			if n := len(turns); n > 0 && turns[n-1].Role == llm.RoleUser {
				turns = turns[:n-1]
			}
			continue
		}
		role := llm.RoleUser
		if m.Sender == domain.SenderAssistant {
			role = llm.RoleModel
		}
		turns = append(turns, llm.Turn{Role: role, Text: m.Text})
	}
	return turns
}

func (s *chatService) message(sender domain.Sender, text string, failed bool) domain.ChatMessage {
	return domain.ChatMessage{
		ID:     uuid.NewString(),
		Sender: sender,
		Text:   text,
		SentAt: s.now(),
		Failed: failed,
	}
}

func (s *chatService) StartChat(ctx context.Context, user *domain.User, courseTitle string) (*ChatSession, error) {
	if user == nil {
		return nil, ErrNotSignedIn
	}
	scope := courseScope(courseTitle)
	transcript, err := s.chats.Transcript(ctx, user.Email, scope)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.courseFor = user.Email
	s.mu.Unlock()
	conv := s.assistant.StartChat(courseTitle, modelTurns(transcript)...)
	return &ChatSession{Scope: scope, Greeting: conv.Greeting(), Transcript: transcript}, nil
}

func (s *chatService) SendChatMessage(ctx context.Context, user *domain.User, msg string) (*ChatReply, error) {
	if user == nil {
		return nil, ErrNotSignedIn
	}
	title := s.assistant.CourseTitle()
	s.mu.Lock()
	owner := s.courseFor
	s.mu.Unlock()
	if title == "" || owner != user.Email {
		return nil, intelligence.ErrChatNotStarted
	}
	return s.exchange(ctx, user.Email, courseScope(title), msg, intelligence.CourseChatErrorReply, s.assistant.SendChatMessage)
}

func (s *chatService) OpenGeneralChat(ctx context.Context, user *domain.User) (*ChatSession, error) {
	if user == nil {
		return nil, ErrNotSignedIn
	}
	transcript, err := s.resumeGeneral(ctx, user.Email, true)
	if err != nil {
		return nil, err
	}
	return &ChatSession{Scope: generalScope, Greeting: intelligence.GeneralGreeting, Transcript: transcript}, nil
}

// resumeGeneral seeds the general conversation from the stored transcript
// unless it already belongs to email.
func (s *chatService) resumeGeneral(ctx context.Context, email string, force bool) ([]domain.ChatMessage, error) {
	s.mu.Lock()
	loaded := s.generalFor == email
	s.mu.Unlock()
	if loaded && !force {
		return nil, nil
	}
	transcript, err := s.chats.Transcript(ctx, email, generalScope)
	if err != nil {
		return nil, err
	}
	s.assistant.ResumeGeneralChat(modelTurns(transcript)...)
	s.mu.Lock()
	s.generalFor = email
	s.mu.Unlock()
	return transcript, nil
}

func (s *chatService) SendGeneralChatMessage(ctx context.Context, user *domain.User, msg string) (*ChatReply, error) {
	if user == nil {
		return nil, ErrNotSignedIn
	}
	if _, err := s.resumeGeneral(ctx, user.Email, false); err != nil {
		return nil, err
	}
	return s.exchange(ctx, user.Email, generalScope, msg, intelligence.GeneralChatErrorReply, s.assistant.SendGeneralChatMessage)
}

// exchange sends msg and stores both sides. A model failure is not returned
// as an error: the user sees the apology and the transcript records it.
func (s *chatService) exchange(
	ctx context.Context,
	email, scope, msg, apology string,
	send func(context.Context, string) (string, error),
) (reply *ChatReply, err error) {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return nil, ErrEmptyMessage
	}
	startedAt := s.now()
	var sendErr error
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "chat-message",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil && sendErr == nil,
			Err:       errors.Join(err, sendErr),
			Fields:    map[string]any{"scope": scope},
		})
	}()

	userMsg := s.message(domain.SenderUser, msg, false)
	text, sendErr := send(ctx, msg)
	if errors.Is(sendErr, intelligence.ErrChatNotStarted) {
		err = sendErr
		return nil, err
	}
	answer := s.message(domain.SenderAssistant, text, false)
	if sendErr != nil {
		answer = s.message(domain.SenderAssistant, apology, true)
	}
	if err = s.chats.Append(ctx, email, scope, userMsg, answer); err != nil {
		return nil, err
	}
	return &ChatReply{Message: answer, Failed: answer.Failed}, nil
}

// Clear removes a stored transcript. An empty courseTitle clears the general chat.
func (s *chatService) Clear(ctx context.Context, user *domain.User, courseTitle string) error {
	if user == nil {
		return ErrNotSignedIn
	}
	email := user.Email
	if err := s.chats.Clear(ctx, email, scopeFor(courseTitle)); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if courseTitle == "" {
		if s.generalFor == email {
			s.assistant.ResumeGeneralChat()
		}
		return nil
	}
	if s.courseFor == email && s.assistant.CourseTitle() == courseTitle {
		s.assistant.StartChat(courseTitle)
	}
	return nil
}

func (s *chatService) Conversations(ctx context.Context, user *domain.User) ([]string, bool, error) {
	if user == nil {
		return nil, false, ErrNotSignedIn
	}
	scopes, err := s.chats.Scopes(ctx, user.Email)
	if err != nil {
		return nil, false, err
	}
	var titles []string
	hasGeneral := false
	for _, scope := range scopes {
		if scope == generalScope {
			hasGeneral = true
			continue
		}
		if title, ok := strings.CutPrefix(scope, courseScope("")); ok {
			titles = append(titles, title)
		}
	}
	slices.Sort(titles)
	return titles, hasGeneral, nil
}

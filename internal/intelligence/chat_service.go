package intelligence

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/alexanderramin/remsodo/internal/llm"
)

var ErrChatNotStarted = errors.New("chat not initialized, call StartChat first")

// Conversation is the serializable state of one chat.
type Conversation struct {
	CourseTitle string // empty for the general assistant
	Turns       []llm.Turn
}

func (c *Conversation) systemInstruction() string {
	if c.CourseTitle == "" {
		return generalAssistantInstruction
	}
	return courseAssistantInstruction(c.CourseTitle)
}

// Greeting is the opening line shown before the first message.
func (c *Conversation) Greeting() string {
	if c.CourseTitle == "" {
		return GeneralGreeting
	}
	return CourseGreeting(c.CourseTitle)
}

// ErrorReply is shown in place of an answer when sending fails.
func (c *Conversation) ErrorReply() string {
	if c.CourseTitle == "" {
		return GeneralChatErrorReply
	}
	return CourseChatErrorReply
}

// ChatService runs course and general assistant conversations.
type ChatService interface {
	// Send delivers msg within conv and appends both turns on success.
	Send(ctx context.Context, conv *Conversation, msg string) (string, error)
}

type chatService struct {
	client llm.LLMClient
}

func NewChatService(client llm.LLMClient) ChatService {
	return &chatService{client: client}
}

func (s *chatService) Send(ctx context.Context, conv *Conversation, msg string) (string, error) {
	if conv == nil {
		return "", ErrChatNotStarted
	}
	session := llm.NewChatSession(s.client, conv.systemInstruction(), conv.Turns)
	reply, err := session.SendMessage(ctx, msg)
	if err != nil {
		return "", fmt.Errorf("chat: %w", err)
	}
	conv.Turns = session.History()
	return reply, nil
}

// Assistant holds the single active course chat and the lazily created
// general chat for one interactive process.
type Assistant struct {
	chat ChatService

	mu      sync.Mutex
	course  *Conversation
	general *Conversation
}

func NewAssistant(chat ChatService) *Assistant {
	return &Assistant{chat: chat}
}

// StartChat replaces any active course conversation. history seeds it when
// resuming a stored transcript.
func (a *Assistant) StartChat(courseTitle string, history ...llm.Turn) *Conversation {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.course = &Conversation{CourseTitle: courseTitle, Turns: history}
	return a.course
}

// ResumeGeneralChat replaces the general conversation with one seeded from history.
func (a *Assistant) ResumeGeneralChat(history ...llm.Turn) *Conversation {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.general = &Conversation{Turns: history}
	return a.general
}

// CourseTitle is the title of the active course chat, or "" when none.
func (a *Assistant) CourseTitle() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.course == nil {
		return ""
	}
	return a.course.CourseTitle
}

// SendChatMessage requires a prior StartChat.
func (a *Assistant) SendChatMessage(ctx context.Context, msg string) (string, error) {
	a.mu.Lock()
	conv := a.course
	a.mu.Unlock()
	if conv == nil {
		return "", ErrChatNotStarted
	}
	return a.send(ctx, conv, msg)
}

func (a *Assistant) SendGeneralChatMessage(ctx context.Context, msg string) (string, error) {
	a.mu.Lock()
	if a.general == nil {
		a.general = &Conversation{}
	}
	conv := a.general
	a.mu.Unlock()
	return a.send(ctx, conv, msg)
}

// send serializes on the conversation so turns never interleave.
func (a *Assistant) send(ctx context.Context, conv *Conversation, msg string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.chat.Send(ctx, conv, msg)
}

package llm

import (
	"context"
	"slices"
)

// ChatSession is a multi-turn conversation under one system instruction.
// Every message resends the full history. A failed send leaves history unchanged.
type ChatSession struct {
	client  LLMClient
	system  string
	history []Turn
}

func NewChatSession(client LLMClient, system string, history []Turn) *ChatSession {
	return &ChatSession{client: client, system: system, history: slices.Clone(history)}
}

func (s *ChatSession) SendMessage(ctx context.Context, msg string) (string, error) {
	resp, err := s.client.Generate(ctx, GenerateRequest{
		Task:         TaskChat,
		SystemPrompt: s.system,
		UserPrompt:   msg,
		History:      s.history,
	})
	if err != nil {
		return "", err
	}
	s.history = append(s.history, Turn{Role: RoleUser, Text: msg}, Turn{Role: RoleModel, Text: resp.Text})
	return resp.Text, nil
}

func (s *ChatSession) SystemInstruction() string { return s.system }

func (s *ChatSession) History() []Turn { return slices.Clone(s.history) }

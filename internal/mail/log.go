package mail

import (
	"context"
	"log/slog"
	"sync"
)

// LogMailer writes messages to the log instead of sending them. It is the
// default when no SendGrid key is configured, and records what it "sent".
type LogMailer struct {
	log *slog.Logger

	mu   sync.Mutex
	sent []Message
}

func NewLogMailer(log *slog.Logger) *LogMailer {
	if log == nil {
		log = slog.Default()
	}
	return &LogMailer{log: log.With("component", "mail")}
}

func (m *LogMailer) Send(ctx context.Context, msg Message) error {
	m.log.InfoContext(ctx, "mail_not_sent", "to", msg.To, "subject", msg.Subject)
	m.mu.Lock()
	m.sent = append(m.sent, msg)
	m.mu.Unlock()
	return nil
}

func (m *LogMailer) Sent() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Message(nil), m.sent...)
}

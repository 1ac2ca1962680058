package domain

import "time"

type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

type ChatMessage struct {
	ID     string    `json:"id"`
	Sender Sender    `json:"sender"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sentAt"`
	// Failed marks an apology shown in place of an answer; it is never sent
	// back to the model as history.
	Failed bool `json:"failed,omitempty"`
}

package mail

import (
	"context"
	"fmt"
	"strings"
)

// Message is a single outgoing email.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

const appName = "Remsodo Academy"

// PasswordResetMessage builds the notice sent when a reset is requested.
func PasswordResetMessage(to string) Message {
	text := fmt.Sprintf(`Hello,

Someone asked to reset the password for the %s account %s.
If that was you, reply to this message and we will help you get back in.
If it was not you, you can ignore this email.
`, appName, to)

	html := "<p>" + strings.ReplaceAll(strings.TrimSpace(text), "\n\n", "</p><p>") + "</p>"
	return Message{
		To:      to,
		Subject: "Password reset request",
		Text:    text,
		HTML:    strings.ReplaceAll(html, "\n", "<br>"),
	}
}

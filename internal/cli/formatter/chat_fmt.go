package formatter

import (
	"strings"

	"github.com/alexanderramin/remsodo/internal/domain"
)

// FormatChatMessage renders one chat line, prefixed by its speaker.
func FormatChatMessage(m domain.ChatMessage, width int) string {
	switch {
	case m.Sender == domain.SenderUser:
		return StyleBlue.Render("You: ") + Wrap(m.Text, width)
	case m.Failed:
		return StyleRed.Render("Assistant: ") + Wrap(m.Text, width)
	default:
		return StylePurple.Render("Assistant: ") + Wrap(m.Text, width)
	}
}

// FormatTranscript renders the greeting followed by the stored messages
// and when the conversation was last active.
func FormatTranscript(greeting string, msgs []domain.ChatMessage, width int) string {
	lines := make([]string, 0, len(msgs)+1)
	lines = append(lines, StylePurple.Render("Assistant: ")+Wrap(greeting, width))
	for _, m := range msgs {
		lines = append(lines, FormatChatMessage(m, width))
	}
	if n := len(msgs); n > 0 && !msgs[n-1].SentAt.IsZero() {
		lines = append(lines, Dim("last message "+HumanTimestamp(msgs[n-1].SentAt)))
	}
	return strings.Join(lines, "\n")
}

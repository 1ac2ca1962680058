package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/remsodo/internal/cli/formatter"
	"github.com/alexanderramin/remsodo/internal/domain"
	"github.com/alexanderramin/remsodo/internal/service"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type chatReplyMsg struct {
	reply *service.ChatReply
	err   error
}

type chatClearedMsg struct{ err error }

// chatView is the interactive chat loop. Replies are fetched in a tea.Cmd so
// the spinner keeps animating while the model answers.
type chatView struct {
	ctx    context.Context
	prompt string
	width  int

	send  func(ctx context.Context, msg string) (*service.ChatReply, error)
	clear func(ctx context.Context) error

	greeting string
	lines    []string
	input    textinput.Model
	spin     spinner.Model
	waiting  bool
}

func newChatView(ctx context.Context, prompt string, sess *service.ChatSession, width int,
	send func(context.Context, string) (*service.ChatReply, error),
	clear func(context.Context) error,
) *chatView {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 2000
	ti.Placeholder = "Ask a question, /clear to start over, esc to quit"

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple

	return &chatView{
		ctx:      ctx,
		prompt:   prompt,
		width:    width,
		send:     send,
		clear:    clear,
		greeting: sess.Greeting,
		lines:    []string{formatter.FormatTranscript(sess.Greeting, sess.Transcript, width)},
		input:    ti,
		spin:     sp,
	}
}

func (v *chatView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *chatView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			return v, tea.Quit
		case tea.KeyEnter:
			if v.waiting {
				return v, nil
			}
			input := strings.TrimSpace(v.input.Value())
			v.input.Reset()
			if input == "" {
				return v, nil
			}
			return v.handleInput(input)
		}

	case chatReplyMsg:
		v.waiting = false
		if msg.err != nil {
			v.lines = append(v.lines, formatter.Failure(friendly(msg.err).Error()))
			return v, nil
		}
		v.lines = append(v.lines, formatter.FormatChatMessage(msg.reply.Message, v.width))
		return v, nil

	case chatClearedMsg:
		v.waiting = false
		if msg.err != nil {
			v.lines = append(v.lines, formatter.Failure(msg.err.Error()))
			return v, nil
		}
		v.lines = []string{formatter.FormatTranscript(v.greeting, nil, v.width)}
		return v, nil

	case spinner.TickMsg:
		if !v.waiting {
			return v, nil
		}
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return v, cmd
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *chatView) handleInput(input string) (tea.Model, tea.Cmd) {
	switch strings.ToLower(input) {
	case "/quit", "/exit", "/q":
		return v, tea.Quit
	case "/clear":
		v.waiting = true
		return v, tea.Batch(v.spin.Tick, func() tea.Msg {
			return chatClearedMsg{err: v.clear(v.ctx)}
		})
	}

	v.lines = append(v.lines, formatter.FormatChatMessage(domain.ChatMessage{
		Sender: domain.SenderUser,
		Text:   input,
	}, v.width))
	v.waiting = true
	return v, tea.Batch(v.spin.Tick, func() tea.Msg {
		reply, err := v.send(v.ctx, input)
		return chatReplyMsg{reply: reply, err: err}
	})
}

func (v *chatView) View() string {
	var b strings.Builder
	for _, line := range v.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if v.waiting {
		b.WriteString(v.spin.View() + formatter.Dim(" Thinking...") + "\n")
		return b.String()
	}
	b.WriteString(formatter.StylePurple.Render(v.prompt) + formatter.Dim("> "))
	b.WriteString(v.input.View())
	return b.String()
}

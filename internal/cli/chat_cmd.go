package cli

import (
	"context"

	"github.com/alexanderramin/remsodo/internal/cli/formatter"
	"github.com/alexanderramin/remsodo/internal/domain"
	"github.com/alexanderramin/remsodo/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// chatTarget binds a chat session to its send and clear operations.
type chatTarget struct {
	prompt  string
	session *service.ChatSession
	send    func(context.Context, string) (*service.ChatReply, error)
	clear   func(context.Context) error
}

func newChatCmd(app *App) *cobra.Command {
	var (
		courseRef string
		message   string
		clearChat bool
		list      bool
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with the course assistant",
		Long: `Chat with the assistant. With --course the assistant focuses on that
course; without it you get the general learning assistant.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := requireUser(ctx, app)
			if err != nil {
				return err
			}

			if list {
				return printConversations(cmd, app, user)
			}

			var target *chatTarget
			if cmd.Flags().Changed("course") {
				target, err = courseChat(ctx, app, user, courseRef)
			} else {
				target, err = generalChat(ctx, app, user)
			}
			if err != nil {
				return friendly(err)
			}

			out := cmd.OutOrStdout()
			if clearChat {
				if err := target.clear(ctx); err != nil {
					return err
				}
				writeLine(out, formatter.Dim("Chat history cleared."))
				if message == "" {
					return nil
				}
			}

			if message != "" {
				reply, err := withSpinner(cmd, app, "Thinking...", func() (*service.ChatReply, error) {
					return target.send(ctx, message)
				})
				if err != nil {
					return friendly(err)
				}
				writeLine(out, formatter.FormatChatMessage(reply.Message, app.width()))
				return nil
			}

			if !app.interactive() {
				writeLine(out, formatter.FormatTranscript(target.session.Greeting, target.session.Transcript, app.width()))
				return nil
			}

			view := newChatView(ctx, target.prompt, target.session, app.width(), target.send, target.clear)
			_, err = tea.NewProgram(view,
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(out),
			).Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&courseRef, "course", "c", "", "Course number or title; empty means the open course")
	cmd.Flags().StringVarP(&message, "message", "m", "", "Send one message and print the reply")
	cmd.Flags().BoolVar(&clearChat, "clear", false, "Clear the stored chat history first")
	cmd.Flags().BoolVar(&list, "list", false, "List stored conversations")

	return cmd
}

func printConversations(cmd *cobra.Command, app *App, user *domain.User) error {
	titles, hasGeneral, err := app.Chat.Conversations(cmd.Context(), user)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(titles) == 0 && !hasGeneral {
		writeLine(out, formatter.Dim("No saved conversations."))
		return nil
	}
	writeLine(out, formatter.Header("Conversations"))
	if hasGeneral {
		writeLine(out, "  General assistant")
	}
	for _, title := range titles {
		writeLine(out, "  "+title)
	}
	return nil
}

func courseChat(ctx context.Context, app *App, user *domain.User, ref string) (*chatTarget, error) {
	course, err := resolveCourse(ctx, app, user.Email, ref)
	if err != nil {
		return nil, err
	}
	sess, err := app.Chat.StartChat(ctx, user, course.Title)
	if err != nil {
		return nil, err
	}
	return &chatTarget{
		prompt:  "course",
		session: sess,
		send: func(ctx context.Context, msg string) (*service.ChatReply, error) {
			return app.Chat.SendChatMessage(ctx, user, msg)
		},
		clear: func(ctx context.Context) error {
			return app.Chat.Clear(ctx, user, course.Title)
		},
	}, nil
}

func generalChat(ctx context.Context, app *App, user *domain.User) (*chatTarget, error) {
	sess, err := app.Chat.OpenGeneralChat(ctx, user)
	if err != nil {
		return nil, err
	}
	return &chatTarget{
		prompt:  "chat",
		session: sess,
		send: func(ctx context.Context, msg string) (*service.ChatReply, error) {
			return app.Chat.SendGeneralChatMessage(ctx, user, msg)
		},
		clear: func(ctx context.Context) error {
			return app.Chat.Clear(ctx, user, "")
		},
	}, nil
}

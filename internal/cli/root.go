package cli

import (
	"io"

	"github.com/alexanderramin/remsodo/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services the commands run against plus the terminal hooks
// main wires in. Tests leave the hooks nil for non-interactive behavior.
type App struct {
	Auth      service.AuthService
	Courses   service.CourseService
	Quiz      service.QuizService
	Catalog   service.CatalogService
	Views     service.ViewService
	Authoring service.AuthoringService
	Chat      service.ChatService

	// IsInteractive reports whether stdin and stdout are a terminal.
	IsInteractive func() bool
	// ReadPassword reads a line from the terminal without echo.
	ReadPassword func(fd int) ([]byte, error)
	// TermWidth is the output width used for wrapping; 0 disables wrapping.
	TermWidth func() int
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) width() int {
	if a.TermWidth == nil {
		return 0
	}
	if w := a.TermWidth(); w > 0 {
		return min(w, 100)
	}
	return 0
}

// NewRootCmd creates the top-level "remsodo" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "remsodo",
		Short:         "Remsodo Academy: AI-generated courses in your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newAuthCmd(app),
		newCoursesCmd(app),
		newCourseCmd(app),
		newQuizCmd(app),
		newDashboardCmd(app),
		newTutorCmd(app),
		newChatCmd(app),
	)

	return root
}

func writeLine(w io.Writer, s string) {
	_, _ = io.WriteString(w, s+"\n")
}

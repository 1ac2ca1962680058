package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/remsodo/internal/cli/formatter"
	"github.com/alexanderramin/remsodo/internal/service"
	"github.com/spf13/cobra"
)

func newQuizCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Take a course quiz",
	}

	cmd.PersistentFlags().StringP("course", "c", "", "Course number or title (defaults to the last viewed course)")
	cmd.AddCommand(
		newQuizShowCmd(app),
		newQuizAnswerCmd(app),
		newQuizSubmitCmd(app),
		newQuizRetakeCmd(app),
	)

	return cmd
}

// quizCourse opens the --course course, or the one given positionally.
func quizCourse(cmd *cobra.Command, app *App, args []string) (*service.CourseView, error) {
	ref, _ := cmd.Flags().GetString("course")
	if ref == "" {
		ref = refArg(args)
	}
	_, view, err := openCourse(cmd, app, ref, false)
	return view, err
}

func newQuizShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [NUMBER|TITLE]",
		Short: "Show the quiz with your saved answers",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := quizCourse(cmd, app, args)
			if err != nil {
				return err
			}
			if len(view.Details.Quiz) == 0 {
				writeLine(cmd.OutOrStdout(), formatter.Dim(formatter.NoQuizMessage))
				return nil
			}
			st, err := app.Quiz.Draft(cmd.Context(), view.Course.Title, view.Details.Quiz)
			if err != nil {
				return friendly(err)
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatQuiz(view.Course.Title, st))
			return nil
		},
	}
}

// parseOption accepts an option letter (a, b, ...), its 1-based number, or
// the option text itself.
func parseOption(options []string, s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) == 1 && s[0] >= 'a' && int(s[0]-'a') < len(options) {
		return options[s[0]-'a'], nil
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= len(options) {
		return options[n-1], nil
	}
	for _, o := range options {
		if strings.EqualFold(o, s) {
			return o, nil
		}
	}
	return "", fmt.Errorf("%q is not one of the options", s)
}

func newQuizAnswerCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "answer QUESTION OPTION",
		Short: "Select an answer, e.g. `quiz answer 2 b`",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("question must be a number: %q", args[0])
			}
			view, err := quizCourse(cmd, app, nil)
			if err != nil {
				return err
			}
			quiz := view.Details.Quiz
			if len(quiz) == 0 {
				return friendly(service.ErrNoQuiz)
			}
			if q < 1 || q > len(quiz) {
				return fmt.Errorf("question %d does not exist (1-%d)", q, len(quiz))
			}
			option, err := parseOption(quiz[q-1].Options, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			st, err := app.Quiz.SelectAnswer(cmd.Context(), view.Course.Title, quiz, q-1, option)
			if err != nil {
				return friendly(err)
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatQuiz(view.Course.Title, st))
			return nil
		},
	}
}

func newQuizSubmitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "submit [NUMBER|TITLE]",
		Short: "Submit your answers for grading",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := quizCourse(cmd, app, args)
			if err != nil {
				return err
			}
			res, err := app.Quiz.Submit(cmd.Context(), view.Course.Title, view.Details.Quiz)
			if err != nil {
				return friendly(err)
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatQuizResult(res))
			return nil
		},
	}
}

func newQuizRetakeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "retake [NUMBER|TITLE]",
		Short: "Clear your answers and start over",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := quizCourse(cmd, app, args)
			if err != nil {
				return err
			}
			if err := app.Quiz.Retake(cmd.Context(), view.Course.Title); err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), formatter.Dim("Answers cleared."))
			return nil
		},
	}
}

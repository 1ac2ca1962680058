package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/remsodo/internal/cli/formatter"
	"github.com/alexanderramin/remsodo/internal/domain"
	"github.com/alexanderramin/remsodo/internal/service"
	"github.com/spf13/cobra"
)

func newCourseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "View a course, enroll and track progress",
	}

	cmd.AddCommand(
		newCourseShowCmd(app),
		newCourseEnrollCmd(app),
		newCourseCompleteCmd(app),
		newCourseTabCmd(app),
		newCourseVideoCmd(app),
		newCourseBackCmd(app),
		newCourseResumeCmd(app),
	)

	return cmd
}

func refArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return strings.Join(args, " ")
}

func newCourseShowCmd(app *App) *cobra.Command {
	var refresh bool
	var tab string

	cmd := &cobra.Command{
		Use:   "show [NUMBER|TITLE]",
		Short: "Open a course page (defaults to the last viewed course)",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, view, err := openCourse(cmd, app, refArg(args), refresh)
			if err != nil {
				return err
			}
			if tab != "" {
				t, err := domain.ParseTab(tab)
				if err != nil {
					return err
				}
				if err := app.Views.SetTab(cmd.Context(), view.Course.Title, t); err != nil {
					return err
				}
				view.Tab = t
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatCourseView(view, app.width()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "Regenerate the course details")
	cmd.Flags().StringVar(&tab, "tab", "", "Switch to a tab: syllabus, reviews, quiz or assistant")

	return cmd
}

func newCourseEnrollCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "enroll [NUMBER|TITLE]",
		Short: "Enroll in a course",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, view, err := openCourse(cmd, app, refArg(args), false)
			if err != nil {
				return err
			}
			added, err := app.Courses.Enroll(cmd.Context(), user.Email, view.Course, len(view.Details.Syllabus))
			if err != nil {
				return err
			}
			if !added {
				writeLine(cmd.OutOrStdout(), formatter.Dim(fmt.Sprintf("Already enrolled in %q.", view.Course.Title)))
				return nil
			}
			writeLine(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Enrolled in %q.", view.Course.Title)))
			return nil
		},
	}
}

func newCourseCompleteCmd(app *App) *cobra.Command {
	var course string

	cmd := &cobra.Command{
		Use:     "complete WEEK|ITEM",
		Aliases: []string{"toggle"},
		Short:   "Toggle a syllabus item complete or incomplete",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, view, err := openCourse(cmd, app, course, false)
			if err != nil {
				return err
			}
			item, err := view.Details.FindSyllabusItem(strings.Join(args, " "))
			if err != nil {
				return err
			}
			progress, err := app.Courses.ToggleProgress(cmd.Context(), user.Email, view.Course.Title, item.Title)
			if err != nil {
				return friendly(err)
			}

			state := "incomplete"
			if progress.Contains(item.Title) {
				state = "complete"
			}
			pct := domain.CompletionPercentage(len(progress), len(view.Details.Syllabus))
			out := cmd.OutOrStdout()
			writeLine(out, formatter.Success(fmt.Sprintf("Marked %q %s.", item.Title, state)))
			writeLine(out, formatter.RenderProgress(pct, 20))
			if domain.IsCompleted(len(progress), len(view.Details.Syllabus)) {
				writeLine(out, formatter.StyleGreen.Render("Course complete! Congratulations!"))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&course, "course", "c", "", "Course number or title (defaults to the last viewed course)")

	return cmd
}

func newCourseTabCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tab TAB [NUMBER|TITLE]",
		Short: "Set the active tab of a course page",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tab, err := domain.ParseTab(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			user, err := requireUser(ctx, app)
			if err != nil {
				return err
			}
			course, err := resolveCourse(ctx, app, user.Email, refArg(args[1:]))
			if err != nil {
				return err
			}
			if err := app.Views.SetTab(ctx, course.Title, tab); err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatTabs(tab))
			return nil
		},
	}
}

func newCourseVideoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "video [NUMBER|TITLE]",
		Short: "Print the course video links",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, view, err := openCourse(cmd, app, refArg(args), false)
			if err != nil {
				return err
			}
			if view.Details.YouTubeVideoID == "" {
				writeLine(cmd.OutOrStdout(), formatter.Dim("This course has no video."))
				return nil
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatVideo(view.Details.YouTubeVideoID))
			return nil
		},
	}
}

func newCourseBackCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "back",
		Short: "Close the current course",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Views.Back(cmd.Context()); err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), formatter.Dim("Back to the catalog."))
			return nil
		},
	}
}

func newCourseResumeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Reopen the last viewed course",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := requireUser(ctx, app)
			if err != nil {
				return err
			}
			view, err := withSpinner(cmd, app, "Loading course details...", func() (*service.CourseView, error) {
				return app.Views.Resume(ctx, user)
			})
			if err != nil {
				return generationFailed(err, msgDetailsFailed)
			}
			if view == nil {
				writeLine(cmd.OutOrStdout(), formatter.Dim("No course to resume."))
				return nil
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatCourseView(view, app.width()))
			return nil
		},
	}
}

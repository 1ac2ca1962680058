package cli

import (
	"fmt"

	"github.com/alexanderramin/remsodo/internal/cli/formatter"
	"github.com/alexanderramin/remsodo/internal/service"
	"github.com/spf13/cobra"
)

func newTutorCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tutor",
		Short: "Create courses (tutors only)",
	}

	cmd.AddCommand(
		newTutorFromFileCmd(app),
		newTutorFromVideoCmd(app),
	)

	return cmd
}

func printAuthored(cmd *cobra.Command, res *service.AuthoringResult) {
	c := res.Bundle.Course
	body := formatter.Success(res.Message) + "\n\n" +
		fmt.Sprintf("%s  %s  %d weeks\n", c.Category, c.Duration, len(res.Bundle.Details.Syllabus)) +
		formatter.Dim(fmt.Sprintf("Open it with: remsodo course show %q", c.Title))
	writeLine(cmd.OutOrStdout(), formatter.RenderBox("Course created", body))
}

func newTutorFromFileCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "from-file PATH",
		Short: "Generate a course from a syllabus outline or notes (max 1MB)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := requireUser(ctx, app)
			if err != nil {
				return err
			}
			res, err := withSpinner(cmd, app, "Generating course...", func() (*service.AuthoringResult, error) {
				return app.Authoring.FromFile(ctx, user, args[0])
			})
			if err != nil {
				return generationFailed(err, msgCreationFailed)
			}
			printAuthored(cmd, res)
			return nil
		},
	}
}

func newTutorFromVideoCmd(app *App) *cobra.Command {
	var url, topic string

	cmd := &cobra.Command{
		Use:   "from-video",
		Short: "Generate a course around a video and topic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := requireUser(ctx, app)
			if err != nil {
				return err
			}
			res, err := withSpinner(cmd, app, "Generating course...", func() (*service.AuthoringResult, error) {
				return app.Authoring.FromVideo(ctx, user, url, topic)
			})
			if err != nil {
				return generationFailed(err, msgCreationFailed)
			}
			printAuthored(cmd, res)
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "Video URL, e.g. https://www.youtube.com/watch?v=...")
	cmd.Flags().StringVar(&topic, "topic", "", "What the course should teach")

	return cmd
}

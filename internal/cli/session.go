package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/alexanderramin/remsodo/internal/cli/formatter"
	"github.com/alexanderramin/remsodo/internal/domain"
	"github.com/alexanderramin/remsodo/internal/service"
	"github.com/spf13/cobra"
)

// requireUser returns the signed-in user or ErrNotSignedIn.
func requireUser(ctx context.Context, app *App) (*domain.User, error) {
	user, err := app.Auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, friendly(service.ErrNotSignedIn)
	}
	return user, nil
}

// withSpinner runs fn while a spinner animates on stderr in interactive use.
func withSpinner[T any](cmd *cobra.Command, app *App, message string, fn func() (T, error)) (T, error) {
	stop := formatter.StartSpinner(cmd.ErrOrStderr(), app.interactive(), message)
	defer stop()
	return fn()
}

// openCourse resolves ref and opens the course page, generating details
// when they are not cached yet.
func openCourse(cmd *cobra.Command, app *App, ref string, refresh bool) (*domain.User, *service.CourseView, error) {
	ctx := cmd.Context()
	user, err := requireUser(ctx, app)
	if err != nil {
		return nil, nil, err
	}
	course, err := resolveCourse(ctx, app, user.Email, ref)
	if err != nil {
		return nil, nil, err
	}
	view, err := withSpinner(cmd, app, "Loading course details...", func() (*service.CourseView, error) {
		return app.Views.Open(ctx, user, course, refresh)
	})
	if err != nil {
		return nil, nil, generationFailed(err, msgDetailsFailed)
	}
	return user, view, nil
}

// resolveCourse accepts a catalog index or title. An empty ref means the
// last viewed course.
func resolveCourse(ctx context.Context, app *App, email, ref string) (domain.Course, error) {
	if strings.TrimSpace(ref) == "" {
		cur, err := app.Views.Current(ctx)
		if err != nil {
			return domain.Course{}, err
		}
		if cur == nil {
			return domain.Course{}, errors.New("no course given and no course is open; pass a catalog number or title")
		}
		return *cur, nil
	}
	course, err := app.Views.Resolve(ctx, email, ref)
	if errors.Is(err, service.ErrCourseNotFound) {
		return domain.Course{}, &userError{
			msg: "Course " + strings.TrimSpace(ref) + " not found. Run `remsodo courses` to list courses.",
			err: err,
		}
	}
	return course, err
}

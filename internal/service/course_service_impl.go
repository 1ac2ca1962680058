package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/alexanderramin/remsodo/internal/domain"
	"github.com/alexanderramin/remsodo/internal/repository"
	"golang.org/x/sync/errgroup"
)

type courseService struct {
	enrollments repository.EnrollmentRepo
	progress    repository.ProgressRepo
	observer    UseCaseObserver
}

func NewCourseService(
	enrollments repository.EnrollmentRepo,
	progress repository.ProgressRepo,
	observers ...UseCaseObserver,
) CourseService {
	return &courseService{
		enrollments: enrollments,
		progress:    progress,
		observer:    useCaseObserverOrNoop(observers),
	}
}

// Enroll is a no-op for a course that is already enrolled; the first
// snapshot and syllabus length are kept.
func (s *courseService) Enroll(ctx context.Context, email string, course domain.Course, syllabusLength int) (added bool, err error) {
	defer observe(ctx, s.observer, "enroll", time.Now().UTC(), map[string]any{"course": course.Title}, &err)
	return s.enrollments.Enroll(ctx, email, course, syllabusLength)
}

func (s *courseService) IsEnrolled(ctx context.Context, email, title string) (bool, error) {
	return s.enrollments.IsEnrolled(ctx, email, title)
}

func (s *courseService) GetProgress(ctx context.Context, email, title string) (domain.Progress, error) {
	return s.progress.Get(ctx, email, title)
}

func (s *courseService) UpdateProgress(ctx context.Context, email, title, item string, complete bool) (domain.Progress, error) {
	return s.progress.Apply(ctx, email, title, func(p domain.Progress) domain.Progress {
		return p.Set(item, complete)
	})
}

func (s *courseService) ToggleProgress(ctx context.Context, email, title, item string) (p domain.Progress, err error) {
	defer observe(ctx, s.observer, "toggle-progress", time.Now().UTC(), map[string]any{"course": title, "item": item}, &err)

	var enrolled bool
	enrolled, err = s.enrollments.IsEnrolled(ctx, email, title)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		err = fmt.Errorf("%q: %w", title, ErrNotEnrolled)
		return nil, err
	}
	return s.progress.Apply(ctx, email, title, func(p domain.Progress) domain.Progress {
		return p.Toggle(item)
	})
}

func (s *courseService) load(ctx context.Context, email string) (map[string]domain.EnrolledCourse, map[string]domain.Progress, error) {
	enrolled, err := s.enrollments.List(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	progress, err := s.progress.All(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	return enrolled, progress, nil
}

// sortedTitles gives list results a stable order before any user sort.
func sortedTitles(enrolled map[string]domain.EnrolledCourse) []string {
	titles := make([]string, 0, len(enrolled))
	for t := range enrolled {
		titles = append(titles, t)
	}
	slices.SortFunc(titles, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	return titles
}

func (s *courseService) InProgress(ctx context.Context, email string) ([]domain.CourseWithProgress, error) {
	enrolled, progress, err := s.load(ctx, email)
	if err != nil {
		return nil, err
	}
	out := []domain.CourseWithProgress{}
	for _, title := range sortedTitles(enrolled) {
		ec := enrolled[title]
		done := len(progress[title])
		if domain.IsCompleted(done, ec.SyllabusLength) {
			continue
		}
		out = append(out, domain.CourseWithProgress{
			Course:               ec.Course,
			CompletionPercentage: domain.CompletionPercentage(done, ec.SyllabusLength),
		})
	}
	return out, nil
}

func (s *courseService) Completed(ctx context.Context, email string) ([]domain.Course, error) {
	enrolled, progress, err := s.load(ctx, email)
	if err != nil {
		return nil, err
	}
	out := []domain.Course{}
	for _, title := range sortedTitles(enrolled) {
		ec := enrolled[title]
		if domain.IsCompleted(len(progress[title]), ec.SyllabusLength) {
			out = append(out, ec.Course)
		}
	}
	return out, nil
}

func (s *courseService) Dashboard(ctx context.Context, email string, q DashboardQuery) (d *Dashboard, err error) {
	defer observe(ctx, s.observer, "dashboard", time.Now().UTC(), map[string]any{"email": email}, &err)

	var (
		inProgress []domain.CourseWithProgress
		completed  []domain.Course
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		inProgress, err = s.InProgress(gctx, email)
		return err
	})
	g.Go(func() error {
		var err error
		completed, err = s.Completed(gctx, email)
		return err
	})
	if err = g.Wait(); err != nil {
		return nil, fmt.Errorf("loading dashboard: %w", err)
	}

	return &Dashboard{
		InProgress:      domain.SortInProgress(domain.FilterByTitle(inProgress, q.InProgressFilter), q.InProgressSort),
		Completed:       domain.SortCompleted(domain.FilterByTitle(completed, q.CompletedFilter), q.CompletedSort),
		TotalInProgress: len(inProgress),
		TotalCompleted:  len(completed),
	}, nil
}

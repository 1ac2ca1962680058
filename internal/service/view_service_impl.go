package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/remsodo/internal/domain"
	"github.com/alexanderramin/remsodo/internal/intelligence"
	"github.com/alexanderramin/remsodo/internal/repository"
)

type viewService struct {
	generator   intelligence.CourseGenerator
	cache       repository.ContentCacheRepo
	prefs       repository.PreferenceRepo
	enrollments repository.EnrollmentRepo
	progress    repository.ProgressRepo
	observer    UseCaseObserver
}

func NewViewService(
	generator intelligence.CourseGenerator,
	cache repository.ContentCacheRepo,
	prefs repository.PreferenceRepo,
	enrollments repository.EnrollmentRepo,
	progress repository.ProgressRepo,
	observers ...UseCaseObserver,
) ViewService {
	return &viewService{
		generator:   generator,
		cache:       cache,
		prefs:       prefs,
		enrollments: enrollments,
		progress:    progress,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *viewService) Resolve(ctx context.Context, email, ref string) (domain.Course, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return domain.Course{}, fmt.Errorf("%w: no course given", ErrCourseNotFound)
	}

	cat, err := s.cache.Catalog(ctx)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return domain.Course{}, err
	}
	if cat != nil {
		if c, ok := cat.Find(ref); ok {
			return c, nil
		}
	}

	if email != "" {
		enrolled, err := s.enrollments.List(ctx, email)
		if err != nil {
			return domain.Course{}, err
		}
		for title, ec := range enrolled {
			if strings.EqualFold(title, ref) {
				return ec.Course, nil
			}
		}
	}

	cur, err := s.prefs.CurrentCourse(ctx)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return domain.Course{}, err
	}
	if cur != nil && strings.EqualFold(cur.Title, ref) {
		return *cur, nil
	}
	return domain.Course{}, fmt.Errorf("%w: %q", ErrCourseNotFound, ref)
}

func (s *viewService) Open(ctx context.Context, user *domain.User, course domain.Course, refresh bool) (view *CourseView, err error) {
	fields := map[string]any{"course": course.Title, "refresh": refresh}
	defer observe(ctx, s.observer, "open-course", time.Now().UTC(), fields, &err)

	if user == nil {
		err = ErrNotSignedIn
		return nil, err
	}
	if err = s.prefs.SetCurrentCourse(ctx, course); err != nil {
		return nil, fmt.Errorf("saving current course: %w", err)
	}

	var (
		details   *domain.CourseDetails
		fromCache bool
	)
	details, fromCache, err = s.details(ctx, course, refresh)
	if err != nil {
		return nil, err
	}
	fields["cached"] = fromCache

	view = &CourseView{Course: course, Details: *details, FromCache: fromCache}
	view.Enrolled, err = s.enrollments.IsEnrolled(ctx, user.Email, course.Title)
	if err != nil {
		return nil, err
	}
	view.Progress, err = s.progress.Get(ctx, user.Email, course.Title)
	if err != nil {
		return nil, err
	}
	view.CompletionPercentage = domain.CompletionPercentage(len(view.Progress), len(details.Syllabus))
	view.Tab, err = s.prefs.ActiveTab(ctx, course.Title)
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *viewService) details(ctx context.Context, course domain.Course, refresh bool) (*domain.CourseDetails, bool, error) {
	if !refresh {
		d, err := s.cache.Details(ctx, course.Title)
		if err == nil {
			return d, true, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, false, err
		}
	}
	d, err := s.generator.GetCourseDetails(ctx, course.Title, course.Description)
	if err != nil {
		return nil, false, err
	}
	if err := s.cache.PutDetails(ctx, course.Title, *d); err != nil {
		return nil, false, fmt.Errorf("caching details: %w", err)
	}
	return d, false, nil
}

func (s *viewService) Back(ctx context.Context) error {
	return s.prefs.ClearCurrentCourse(ctx)
}

func (s *viewService) Current(ctx context.Context) (*domain.Course, error) {
	cur, err := s.prefs.CurrentCourse(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return cur, err
}

func (s *viewService) Resume(ctx context.Context, user *domain.User) (*CourseView, error) {
	if user == nil {
		return nil, ErrNotSignedIn
	}
	cur, err := s.Current(ctx)
	if err != nil || cur == nil {
		return nil, err
	}
	return s.Open(ctx, user, *cur, false)
}

func (s *viewService) SetTab(ctx context.Context, title string, tab domain.Tab) error {
	return s.prefs.SetActiveTab(ctx, title, tab)
}

func (s *viewService) GetTab(ctx context.Context, title string) (domain.Tab, error) {
	return s.prefs.ActiveTab(ctx, title)
}

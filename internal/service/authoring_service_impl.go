package service

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/alexanderramin/remsodo/internal/domain"
	"github.com/alexanderramin/remsodo/internal/intelligence"
	"github.com/alexanderramin/remsodo/internal/repository"
)

// MaxSourceFileBytes bounds the file a tutor can turn into a course.
const MaxSourceFileBytes = 1 << 20

type authoringService struct {
	generator   intelligence.CourseGenerator
	enrollments repository.EnrollmentRepo
	cache       repository.ContentCacheRepo
	observer    UseCaseObserver
}

func NewAuthoringService(
	generator intelligence.CourseGenerator,
	enrollments repository.EnrollmentRepo,
	cache repository.ContentCacheRepo,
	observers ...UseCaseObserver,
) AuthoringService {
	return &authoringService{
		generator:   generator,
		enrollments: enrollments,
		cache:       cache,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func requireTutor(user *domain.User) error {
	if user == nil {
		return ErrNotSignedIn
	}
	if !user.IsTutor() {
		return ErrForbidden
	}
	return nil
}

func (s *authoringService) FromFile(ctx context.Context, user *domain.User, path string) (res *AuthoringResult, err error) {
	fields := map[string]any{"source": "file"}
	defer observe(ctx, s.observer, "author-course", time.Now().UTC(), fields, &err)

	if err = requireTutor(user); err != nil {
		return nil, err
	}
	var info os.FileInfo
	info, err = os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if info.Size() > MaxSourceFileBytes {
		err = ErrFileTooLarge
		return nil, err
	}
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	content := string(data)
	if strings.TrimSpace(content) == "" {
		err = ErrEmptyFile
		return nil, err
	}

	var bundle *domain.CourseBundle
	bundle, err = s.generator.CreateCourseFromFileContent(ctx, content)
	if err != nil {
		return nil, err
	}
	return s.publish(ctx, user, bundle)
}

func (s *authoringService) FromVideo(ctx context.Context, user *domain.User, videoURL, topic string) (res *AuthoringResult, err error) {
	fields := map[string]any{"source": "video"}
	defer observe(ctx, s.observer, "author-course", time.Now().UTC(), fields, &err)

	if err = requireTutor(user); err != nil {
		return nil, err
	}
	videoURL, topic = strings.TrimSpace(videoURL), strings.TrimSpace(topic)
	if videoURL == "" || topic == "" {
		err = ErrVideoInputRequired
		return nil, err
	}
	u, perr := url.Parse(videoURL)
	if perr != nil || !u.IsAbs() || u.Host == "" {
		err = fmt.Errorf("%w: %q", ErrInvalidURL, videoURL)
		return nil, err
	}

	var bundle *domain.CourseBundle
	bundle, err = s.generator.CreateCourseFromVideoTopic(ctx, videoURL, topic)
	if err != nil {
		return nil, err
	}
	return s.publish(ctx, user, bundle)
}

// publish credits the tutor as instructor, enrolls them and caches the details
// so the new course opens without another generation.
func (s *authoringService) publish(ctx context.Context, user *domain.User, bundle *domain.CourseBundle) (*AuthoringResult, error) {
	bundle.Course.Instructor = user.Email
	if _, err := s.enrollments.Enroll(ctx, user.Email, bundle.Course, len(bundle.Details.Syllabus)); err != nil {
		return nil, err
	}
	if err := s.cache.PutDetails(ctx, bundle.Course.Title, bundle.Details); err != nil {
		return nil, fmt.Errorf("caching details: %w", err)
	}
	return &AuthoringResult{
		Bundle:  *bundle,
		Message: fmt.Sprintf("Successfully created course: %q!", bundle.Course.Title),
	}, nil
}

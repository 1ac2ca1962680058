package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/remsodo/internal/domain"
	"github.com/alexanderramin/remsodo/internal/storage"
)

type StoreEnrollmentRepo struct {
	store storage.Store
}

func NewStoreEnrollmentRepo(s storage.Store) *StoreEnrollmentRepo {
	return &StoreEnrollmentRepo{store: s}
}

type enrollmentMap map[string]domain.EnrolledCourse

func (r *StoreEnrollmentRepo) Enroll(ctx context.Context, email string, course domain.Course, syllabusLength int) (bool, error) {
	added := false
	err := storage.UpdateJSON(ctx, r.store, storage.EnrolledKey(email), func(m enrollmentMap, _ bool) (enrollmentMap, error) {
		if _, ok := m[course.Title]; ok {
			return nil, storage.ErrAbort
		}
		if m == nil {
			m = enrollmentMap{}
		}
		m[course.Title] = domain.EnrolledCourse{Course: course, SyllabusLength: syllabusLength}
		added = true
		return m, nil
	})
	if err != nil {
		return false, fmt.Errorf("enrolling %s in %q: %w", email, course.Title, err)
	}
	return added, nil
}

func (r *StoreEnrollmentRepo) IsEnrolled(ctx context.Context, email, title string) (bool, error) {
	m, err := r.List(ctx, email)
	if err != nil {
		return false, err
	}
	_, ok := m[title]
	return ok, nil
}

func (r *StoreEnrollmentRepo) Get(ctx context.Context, email, title string) (*domain.EnrolledCourse, error) {
	m, err := r.List(ctx, email)
	if err != nil {
		return nil, err
	}
	ec, ok := m[title]
	if !ok {
		return nil, fmt.Errorf("enrollment %q: %w", title, ErrNotFound)
	}
	return &ec, nil
}

// List never returns nil.
func (r *StoreEnrollmentRepo) List(ctx context.Context, email string) (map[string]domain.EnrolledCourse, error) {
	m, _, err := storage.GetJSON[enrollmentMap](ctx, r.store, storage.EnrolledKey(email))
	if err != nil {
		return nil, fmt.Errorf("loading enrollments: %w", err)
	}
	if m == nil {
		m = enrollmentMap{}
	}
	return m, nil
}

package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/remsodo/internal/domain"
	"github.com/alexanderramin/remsodo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bundleJSON(title string) string {
	return testutil.MustJSON(domain.CourseBundle{
		Course:  testutil.NewTestCourse(title, testutil.WithInstructor("Generated Person")),
		Details: testutil.NewTestDetails(testutil.WithWeeks(6)),
	})
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notes.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestAuthoringService_FromFile(t *testing.T) {
	env := newTestEnv(t, bundleJSON("Notes to Course"))
	svc := NewAuthoringService(env.generator(), env.enrollments, env.cache)
	ctx := context.Background()
	tutor := &domain.User{Email: "tutor@example.com", Role: domain.RoleTutor}

	res, err := svc.FromFile(ctx, tutor, writeFile(t, "# Week 1\nGoroutines"))
	require.NoError(t, err)
	assert.Equal(t, `Successfully created course: "Notes to Course"!`, res.Message)
	assert.Equal(t, "tutor@example.com", res.Bundle.Course.Instructor)
	assert.Contains(t, env.llm.LastRequest().UserPrompt, "Goroutines")

	ec, err := env.enrollments.Get(ctx, "tutor@example.com", "Notes to Course")
	require.NoError(t, err)
	assert.Equal(t, 6, ec.SyllabusLength)
	assert.Equal(t, "tutor@example.com", ec.Instructor)

	d, err := env.cache.Details(ctx, "Notes to Course")
	require.NoError(t, err)
	assert.Len(t, d.Syllabus, 6)
}

func TestAuthoringService_FileRules(t *testing.T) {
	env := newTestEnv(t, bundleJSON("x"))
	svc := NewAuthoringService(env.generator(), env.enrollments, env.cache)
	ctx := context.Background()
	tutor := &domain.User{Email: "tutor@example.com", Role: domain.RoleTutor}

	_, err := svc.FromFile(ctx, &domain.User{Email: student, Role: domain.RoleStudent}, writeFile(t, "text"))
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.FromFile(ctx, nil, writeFile(t, "text"))
	assert.ErrorIs(t, err, ErrNotSignedIn)
	_, err = svc.FromFile(ctx, tutor, writeFile(t, " \n\t "))
	assert.ErrorIs(t, err, ErrEmptyFile)
	_, err = svc.FromFile(ctx, tutor, writeFile(t, strings.Repeat("a", MaxSourceFileBytes+1)))
	assert.ErrorIs(t, err, ErrFileTooLarge)
	assert.Zero(t, env.llm.Calls())
}

func TestAuthoringService_FromVideo(t *testing.T) {
	env := newTestEnv(t, bundleJSON("Quantum Basics"))
	svc := NewAuthoringService(env.generator(), env.enrollments, env.cache)
	ctx := context.Background()
	tutor := &domain.User{Email: "tutor@example.com", Role: domain.RoleTutor}

	_, err := svc.FromVideo(ctx, tutor, "", "quantum")
	assert.ErrorIs(t, err, ErrVideoInputRequired)
	_, err = svc.FromVideo(ctx, tutor, "youtube watch", "quantum")
	assert.ErrorIs(t, err, ErrInvalidURL)
	assert.Zero(t, env.llm.Calls())

	res, err := svc.FromVideo(ctx, tutor, "https://www.youtube.com/watch?v=abc", "An intro to quantum computing")
	require.NoError(t, err)
	assert.Equal(t, "Quantum Basics", res.Bundle.Course.Title)
	enrolled, err := env.enrollments.IsEnrolled(ctx, "tutor@example.com", "Quantum Basics")
	require.NoError(t, err)
	assert.True(t, enrolled)
}

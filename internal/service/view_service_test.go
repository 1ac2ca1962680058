package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/remsodo/internal/domain"
	"github.com/alexanderramin/remsodo/internal/storage"
	"github.com/alexanderramin/remsodo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogJSON(titles ...string) string {
	list := make([]domain.Course, 0, len(titles))
	for _, title := range titles {
		list = append(list, testutil.NewTestCourse(title))
	}
	return testutil.MustJSON(list)
}

func TestCatalogService_CachesPerQuery(t *testing.T) {
	env := newTestEnv(t, catalogJSON("Intro to AI", "Modern CSS"))
	svc := NewCatalogService(env.generator(), env.cache)
	ctx := context.Background()

	cat, err := svc.Browse(ctx, "", false)
	require.NoError(t, err)
	require.Len(t, cat.Courses, 2)

	_, err = svc.Browse(ctx, "  ", false)
	require.NoError(t, err)
	assert.Equal(t, 1, env.llm.Calls(), "same query is served from cache")

	cat, err = svc.Browse(ctx, "rust", false)
	require.NoError(t, err)
	assert.Equal(t, "rust", cat.Query)
	assert.Equal(t, 2, env.llm.Calls())

	_, err = svc.Browse(ctx, "rust", true)
	require.NoError(t, err)
	assert.Equal(t, 3, env.llm.Calls())
}

func TestViewService_OpenRequiresSignIn(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.viewService().Open(context.Background(), nil, testutil.NewTestCourse("Intro to AI"), false)
	assert.ErrorIs(t, err, ErrNotSignedIn)
	assert.Zero(t, env.llm.Calls())
}

func TestViewService_OpenCachesDetails(t *testing.T) {
	env := newTestEnv(t, testutil.MustJSON(testutil.NewTestDetails(testutil.WithWeeks(4))))
	svc := env.viewService()
	ctx := context.Background()
	user := &domain.User{Email: student, Role: domain.RoleStudent}
	course := testutil.NewTestCourse("Intro to AI")

	view, err := svc.Open(ctx, user, course, false)
	require.NoError(t, err)
	assert.False(t, view.FromCache)
	assert.False(t, view.Enrolled)
	assert.Equal(t, domain.TabSyllabus, view.Tab)
	assert.Len(t, view.Details.Syllabus, 4)

	_, err = env.courseService().Enroll(ctx, student, course, 4)
	require.NoError(t, err)
	_, err = env.courseService().ToggleProgress(ctx, student, course.Title, "Week 1")
	require.NoError(t, err)
	require.NoError(t, svc.SetTab(ctx, course.Title, domain.TabQuiz))

	view, err = svc.Open(ctx, user, course, false)
	require.NoError(t, err)
	assert.True(t, view.FromCache)
	assert.True(t, view.Enrolled)
	assert.InDelta(t, 25.0, view.CompletionPercentage, 0.001)
	assert.Equal(t, domain.TabQuiz, view.Tab)
	assert.Equal(t, 1, env.llm.Calls())

	_, err = svc.Open(ctx, user, course, true)
	require.NoError(t, err)
	assert.Equal(t, 2, env.llm.Calls())
}

func TestViewService_ResumeAndBack(t *testing.T) {
	env := newTestEnv(t, testutil.MustJSON(testutil.NewTestDetails()))
	svc := env.viewService()
	ctx := context.Background()
	user := &domain.User{Email: student}

	view, err := svc.Resume(ctx, user)
	require.NoError(t, err)
	assert.Nil(t, view)

	_, err = svc.Open(ctx, user, testutil.NewTestCourse("Intro to AI"), false)
	require.NoError(t, err)

	view, err = svc.Resume(ctx, user)
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, "Intro to AI", view.Course.Title)

	require.NoError(t, svc.Back(ctx))
	view, err = svc.Resume(ctx, user)
	require.NoError(t, err)
	assert.Nil(t, view)
}

func TestViewService_ResumeDropsCorruptCourse(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, env.store.Set(ctx, storage.KeyCurrentCourse, "{not json"))

	view, err := env.viewService().Resume(ctx, &domain.User{Email: student})
	require.NoError(t, err)
	assert.Nil(t, view)
	_, ok, err := env.store.Get(ctx, storage.KeyCurrentCourse)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestViewService_Resolve(t *testing.T) {
	env := newTestEnv(t)
	svc := env.viewService()
	ctx := context.Background()
	require.NoError(t, env.cache.PutCatalog(ctx, domain.Catalog{Courses: []domain.Course{
		testutil.NewTestCourse("Intro to AI"), testutil.NewTestCourse("Modern CSS"),
	}}))
	_, err := env.enrollments.Enroll(ctx, student, testutil.NewTestCourse("Old Favourite"), 3)
	require.NoError(t, err)

	c, err := svc.Resolve(ctx, student, "2")
	require.NoError(t, err)
	assert.Equal(t, "Modern CSS", c.Title)

	c, err = svc.Resolve(ctx, student, "intro to ai")
	require.NoError(t, err)
	assert.Equal(t, "Intro to AI", c.Title)

	c, err = svc.Resolve(ctx, student, "old favourite")
	require.NoError(t, err)
	assert.Equal(t, "Old Favourite", c.Title)

	_, err = svc.Resolve(ctx, student, "9")
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

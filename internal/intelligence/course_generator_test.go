package intelligence

import (
	"context"
	"testing"

	"github.com/alexanderramin/remsodo/internal/domain"
	"github.com/alexanderramin/remsodo/internal/llm"
	"github.com/alexanderramin/remsodo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func courseListJSON(titles ...string) string {
	list := make([]domain.Course, 0, len(titles))
	for _, title := range titles {
		list = append(list, testutil.NewTestCourse(title))
	}
	return testutil.MustJSON(list)
}

func TestGenerateInitialCourses(t *testing.T) {
	client := testutil.NewFakeLLMClient(courseListJSON("Intro to AI", "Modern CSS"))
	gen := NewCourseGenerator(client)

	courses, err := gen.GenerateInitialCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "Modern CSS", courses[1].Title)

	req := client.LastRequest()
	assert.Equal(t, llm.TaskCatalog, req.Task)
	assert.Contains(t, req.UserPrompt, "8 fictional, modern e-learning courses")
	require.NotNil(t, req.Schema)
	assert.Equal(t, llm.TypeArray, req.Schema.Type)
}

func TestSearchCourses_UsesQuery(t *testing.T) {
	client := testutil.NewFakeLLMClient(courseListJSON("Rust for Pythonistas"))
	gen := NewCourseGenerator(client)

	_, err := gen.SearchCourses(context.Background(), "  rust  ")
	require.NoError(t, err)
	assert.Contains(t, client.LastRequest().UserPrompt, `related to "rust"`)
}

func TestSearchCourses_BlankFallsBackToInitial(t *testing.T) {
	client := testutil.NewFakeLLMClient(courseListJSON("Intro to AI"))
	gen := NewCourseGenerator(client)

	_, err := gen.SearchCourses(context.Background(), "   ")
	require.NoError(t, err)
	assert.Equal(t, initialCoursesPrompt, client.LastRequest().UserPrompt)
}

func TestGenerateCourses_RejectsOutOfRangeRating(t *testing.T) {
	bad := []domain.Course{testutil.NewTestCourse("Too Good", testutil.WithRating(7))}
	gen := NewCourseGenerator(testutil.NewFakeLLMClient(testutil.MustJSON(bad)))

	_, err := gen.GenerateInitialCourses(context.Background())
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestGenerateCourses_PropagatesClientError(t *testing.T) {
	client := &testutil.FakeLLMClient{Err: llm.ErrTimeout}
	_, err := NewCourseGenerator(client).GenerateInitialCourses(context.Background())
	assert.ErrorIs(t, err, llm.ErrTimeout)
}

func TestGetCourseDetails(t *testing.T) {
	client := testutil.NewFakeLLMClient(testutil.MustJSON(testutil.NewTestDetails()))
	gen := NewCourseGenerator(client)

	details, err := gen.GetCourseDetails(context.Background(), "Web Basics", "Learn the web")
	require.NoError(t, err)
	assert.Len(t, details.Syllabus, 8)
	assert.Equal(t, "z-zB9F-8f_w", details.YouTubeVideoID)

	req := client.LastRequest()
	assert.Equal(t, llm.TaskDetails, req.Task)
	assert.Contains(t, req.UserPrompt, `"Web Basics"`)
	assert.Contains(t, req.UserPrompt, "8-week syllabus")
}

func TestGetCourseDetails_QuizAnswerMustBeAnOption(t *testing.T) {
	quiz := testutil.NewTestQuiz()
	quiz[0].CorrectAnswer = "Not listed"
	client := testutil.NewFakeLLMClient(testutil.MustJSON(testutil.NewTestDetails(testutil.WithQuiz(quiz))))

	_, err := NewCourseGenerator(client).GetCourseDetails(context.Background(), "Web", "d")
	require.ErrorIs(t, err, llm.ErrInvalidOutput)
	assert.Contains(t, err.Error(), "question 1")
}

func TestGetCourseDetails_EmptySyllabusRejected(t *testing.T) {
	client := testutil.NewFakeLLMClient(testutil.MustJSON(testutil.NewTestDetails(testutil.WithWeeks(0))))
	_, err := NewCourseGenerator(client).GetCourseDetails(context.Background(), "Web", "d")
	require.ErrorIs(t, err, llm.ErrInvalidOutput)
	assert.Contains(t, err.Error(), "syllabus")
}

func TestCreateCourseFromFileContent(t *testing.T) {
	bundle := domain.CourseBundle{Course: testutil.NewTestCourse("Gardening 101"), Details: testutil.NewTestDetails()}
	client := testutil.NewFakeLLMClient("```json\n" + testutil.MustJSON(bundle) + "\n```")

	got, err := NewCourseGenerator(client).CreateCourseFromFileContent(context.Background(), "Week 1: soil\nWeek 2: seeds")
	require.NoError(t, err)
	assert.Equal(t, "Gardening 101", got.Course.Title)

	req := client.LastRequest()
	assert.Equal(t, llm.TaskAuthoring, req.Task)
	assert.Contains(t, req.UserPrompt, "Week 2: seeds")
	assert.Equal(t, llm.TypeObject, req.Schema.Type)
	assert.Contains(t, req.Schema.Properties, "details")
}

func TestCreateCourseFromVideoTopic(t *testing.T) {
	bundle := domain.CourseBundle{Course: testutil.NewTestCourse("Knife Skills"), Details: testutil.NewTestDetails()}
	client := testutil.NewFakeLLMClient(testutil.MustJSON(bundle))

	_, err := NewCourseGenerator(client).CreateCourseFromVideoTopic(context.Background(),
		"https://www.youtube.com/watch?v=abc", "basic knife skills")
	require.NoError(t, err)

	prompt := client.LastRequest().UserPrompt
	assert.Contains(t, prompt, `"basic knife skills"`)
	assert.Contains(t, prompt, "https://www.youtube.com/watch?v=abc")
	assert.Contains(t, prompt, "Do not try to access this URL")
}

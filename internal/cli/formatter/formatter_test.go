package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/remsodo/internal/domain"
	"github.com/alexanderramin/remsodo/internal/service"
	"github.com/alexanderramin/remsodo/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name  string
		pct   float64
		width int
		want  string
	}{
		{"empty", 0, 4, "  0%"},
		{"half", 50, 4, " 50%"},
		{"full", 100, 4, "100%"},
		{"clamps high", 140, 4, "100%"},
		{"clamps low", -5, 4, "  0%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderProgress(tt.pct, tt.width)
			assert.True(t, strings.HasSuffix(got, tt.want), got)
			assert.True(t, strings.HasPrefix(got, "["))
		})
	}
	assert.Contains(t, RenderProgress(100, 4), strings.Repeat(filledBlock, 4))
	assert.Contains(t, RenderProgress(0, 4), strings.Repeat(emptyBlock, 4))
}

func TestRenderStars(t *testing.T) {
	assert.Contains(t, RenderStars(4.5), strings.Repeat(fullStar, 4)+halfStar)
	assert.True(t, strings.HasSuffix(RenderStars(4.5), " 4.5"))
	assert.Contains(t, RenderStars(3), strings.Repeat(emptyStar, 2))
	assert.True(t, strings.HasSuffix(RenderStars(9), " 5.0"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "Intro t…", Truncate("Intro to AI", 8))
	assert.Equal(t, "…", Truncate("abc", 1))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"A", "B"}, [][]string{{"long value", "x"}, {"s", "y"}})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, strings.Index(lines[2], "x"), strings.Index(lines[3], "y"))
}

func TestFormatCatalog(t *testing.T) {
	cat := &domain.Catalog{Query: "rust", Courses: []domain.Course{testutil.NewTestCourse("Rust Basics")}}
	out := FormatCatalog(cat)
	assert.Contains(t, out, `"rust"`)
	assert.Contains(t, out, "Rust Basics")
	assert.Contains(t, FormatCatalog(&domain.Catalog{}), "No courses found.")
}

func TestFormatCourseView_SyllabusMarksProgress(t *testing.T) {
	v := &service.CourseView{
		Course:               testutil.NewTestCourse("Intro to AI"),
		Details:              testutil.NewTestDetails(testutil.WithWeeks(2)),
		Enrolled:             true,
		Progress:             domain.Progress{"Week 1"},
		CompletionPercentage: 50,
		Tab:                  domain.TabSyllabus,
	}
	out := FormatCourseView(v, 80)
	assert.Contains(t, out, "✔ ")
	assert.Contains(t, out, "Week 2")
	assert.Contains(t, out, " 50%")
	assert.Contains(t, out, "https://www.youtube.com/watch?v=z-zB9F-8f_w")

	v.Tab = domain.TabReviews
	assert.Contains(t, FormatCourseView(v, 80), "Great course")
}

func TestFormatQuiz(t *testing.T) {
	st := &service.QuizState{Questions: testutil.NewTestQuiz(), Answers: domain.QuizAnswers{1: "<a>"}}
	out := FormatQuiz("Intro", st)
	assert.Contains(t, out, "● a) <a>")
	assert.Contains(t, out, "1 of 3 answered")
	assert.Contains(t, FormatQuiz("Intro", &service.QuizState{}), NoQuizMessage)
}

func TestFormatQuizResult(t *testing.T) {
	quiz := testutil.NewTestQuiz()
	perfect := domain.GradeQuiz(quiz, domain.QuizAnswers{0: quiz[0].CorrectAnswer, 1: "<a>", 2: "Style"})
	assert.Contains(t, FormatQuizResult(&perfect), "Excellent work!")

	partial := domain.GradeQuiz(quiz, domain.QuizAnswers{0: "None", 1: "<a>", 2: "Style"})
	out := FormatQuizResult(&partial)
	assert.Contains(t, out, "You scored 2 out of 3!")
	assert.Contains(t, out, "Good effort!")
	assert.Contains(t, out, "HyperText Markup Language")
}

func TestFormatDashboard(t *testing.T) {
	user := &domain.User{Email: "ada@example.com", Role: domain.RoleTutor}
	out := FormatDashboard(user, &service.Dashboard{})
	assert.Contains(t, out, "no courses in progress")
	assert.Contains(t, out, "TUTOR")

	d := &service.Dashboard{
		InProgress:      []domain.CourseWithProgress{{Course: testutil.NewTestCourse("Go"), CompletionPercentage: 25}},
		TotalInProgress: 3,
		TotalCompleted:  1,
	}
	out = FormatDashboard(user, d)
	assert.Contains(t, out, "1 of 3")
	assert.Contains(t, out, "No courses match your filter.")
}

func TestFormatTranscript(t *testing.T) {
	msgs := []domain.ChatMessage{
		{Sender: domain.SenderUser, Text: "hi"},
		{Sender: domain.SenderAssistant, Text: "sorry", Failed: true},
	}
	out := FormatTranscript("Hello!", msgs, 0)
	assert.Equal(t, 3, strings.Count(out, "\n")+1)
	assert.Contains(t, out, "You: hi")
}

func TestHumanTimestampFrom(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "just now", HumanTimestampFrom(now.Add(-10*time.Second), now))
	assert.Equal(t, "5m ago", HumanTimestampFrom(now.Add(-5*time.Minute), now))
	assert.Equal(t, "3h ago", HumanTimestampFrom(now.Add(-3*time.Hour), now))
}

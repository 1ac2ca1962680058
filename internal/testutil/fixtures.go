package testutil

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/remsodo/internal/domain"
)

type CourseOption func(*domain.Course)

func WithCategory(c string) CourseOption {
	return func(course *domain.Course) { course.Category = c }
}

func WithRating(r float64) CourseOption {
	return func(course *domain.Course) { course.Rating = r }
}

func WithInstructor(name string) CourseOption {
	return func(course *domain.Course) { course.Instructor = name }
}

func NewTestCourse(title string, opts ...CourseOption) domain.Course {
	c := domain.Course{
		Title:       title,
		Description: "A hands-on introduction to " + title + ".",
		Category:    "Web Development",
		Instructor:  "Dr. Jane Doe",
		Rating:      4.6,
		Duration:    "6 Hours",
	}
	for _, o := range opts {
		o(&c)
	}
	return c
}

type DetailsOption func(*domain.CourseDetails)

// WithWeeks sets a syllabus of n items titled "Week 1".."Week n".
func WithWeeks(n int) DetailsOption {
	return func(d *domain.CourseDetails) {
		d.Syllabus = nil
		for i := 1; i <= n; i++ {
			d.Syllabus = append(d.Syllabus, domain.SyllabusItem{
				Week: i, Title: fmt.Sprintf("Week %d", i), Topic: fmt.Sprintf("Topic %d", i),
			})
		}
	}
}

func WithQuiz(q []domain.QuizQuestion) DetailsOption {
	return func(d *domain.CourseDetails) { d.Quiz = q }
}

func NewTestDetails(opts ...DetailsOption) domain.CourseDetails {
	d := domain.CourseDetails{
		LearningObjectives: []string{"Understand the basics", "Build a project", "Ship it", "Test it", "Teach it"},
		Reviews: []domain.Review{
			{Name: "Sam", Rating: 5, Comment: "Great course"},
			{Name: "Alex", Rating: 4, Comment: "Clear explanations"},
			{Name: "Kim", Rating: 3.5, Comment: "Solid"},
		},
		YouTubeVideoID: "z-zB9F-8f_w",
		Quiz:           NewTestQuiz(),
	}
	WithWeeks(8)(&d)
	for _, o := range opts {
		o(&d)
	}
	return d
}

func NewTestQuiz() []domain.QuizQuestion {
	return []domain.QuizQuestion{
		{Question: "What does HTML stand for?", Options: []string{"HyperText Markup Language", "High Tech ML", "Home Tool Markup", "None"}, CorrectAnswer: "HyperText Markup Language"},
		{Question: "Which tag makes a link?", Options: []string{"<a>", "<p>", "<div>", "<link>"}, CorrectAnswer: "<a>"},
		{Question: "CSS controls?", Options: []string{"Style", "Logic", "Storage", "Routing"}, CorrectAnswer: "Style"},
	}
}

// MustJSON marshals v or panics; for building canned model responses.
func MustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}

package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/remsodo/internal/domain"
	"github.com/alexanderramin/remsodo/internal/llm"
)

// CourseGenerator produces catalog and course content from the language model.
type CourseGenerator interface {
	GenerateInitialCourses(ctx context.Context) ([]domain.Course, error)
	// SearchCourses generates courses related to query; a blank query
	// returns the initial catalog.
	SearchCourses(ctx context.Context, query string) ([]domain.Course, error)
	GetCourseDetails(ctx context.Context, title, description string) (*domain.CourseDetails, error)
	CreateCourseFromFileContent(ctx context.Context, content string) (*domain.CourseBundle, error)
	CreateCourseFromVideoTopic(ctx context.Context, videoURL, topic string) (*domain.CourseBundle, error)
}

type courseGenerator struct {
	client llm.LLMClient
}

func NewCourseGenerator(client llm.LLMClient) CourseGenerator {
	return &courseGenerator{client: client}
}

func (g *courseGenerator) GenerateInitialCourses(ctx context.Context) ([]domain.Course, error) {
	return g.courseList(ctx, initialCoursesPrompt)
}

func (g *courseGenerator) SearchCourses(ctx context.Context, query string) ([]domain.Course, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return g.GenerateInitialCourses(ctx)
	}
	return g.courseList(ctx, buildSearchPrompt(query))
}

func (g *courseGenerator) courseList(ctx context.Context, prompt string) ([]domain.Course, error) {
	resp, err := g.client.Generate(ctx, llm.GenerateRequest{
		Task:       llm.TaskCatalog,
		UserPrompt: prompt,
		Schema:     CourseListSchema(),
	})
	if err != nil {
		return nil, fmt.Errorf("generating courses: %w", err)
	}
	courses, err := llm.ExtractJSONArray[domain.Course](resp.Text, validateCourseList)
	if err != nil {
		return nil, fmt.Errorf("parsing courses: %w", err)
	}
	return courses, nil
}

func (g *courseGenerator) GetCourseDetails(ctx context.Context, title, description string) (*domain.CourseDetails, error) {
	resp, err := g.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskDetails,
		SystemPrompt: curriculumDesigner,
		UserPrompt:   buildDetailsPrompt(title, description),
		Schema:       CourseDetailsSchema(),
	})
	if err != nil {
		return nil, fmt.Errorf("generating details for %q: %w", title, err)
	}
	details, err := llm.ExtractJSON(resp.Text, validateDetails)
	if err != nil {
		return nil, fmt.Errorf("parsing details for %q: %w", title, err)
	}
	return &details, nil
}

func (g *courseGenerator) CreateCourseFromFileContent(ctx context.Context, content string) (*domain.CourseBundle, error) {
	return g.fullCourse(ctx, buildFileCoursePrompt(content))
}

func (g *courseGenerator) CreateCourseFromVideoTopic(ctx context.Context, videoURL, topic string) (*domain.CourseBundle, error) {
	return g.fullCourse(ctx, buildVideoCoursePrompt(videoURL, topic))
}

func (g *courseGenerator) fullCourse(ctx context.Context, prompt string) (*domain.CourseBundle, error) {
	resp, err := g.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskAuthoring,
		SystemPrompt: curriculumDesigner,
		UserPrompt:   prompt,
		Schema:       FullCourseSchema(),
	})
	if err != nil {
		return nil, fmt.Errorf("generating course: %w", err)
	}
	bundle, err := llm.ExtractJSON(resp.Text, validateBundle)
	if err != nil {
		return nil, fmt.Errorf("parsing course: %w", err)
	}
	return &bundle, nil
}

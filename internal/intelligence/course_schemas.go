package intelligence

import "github.com/alexanderramin/remsodo/internal/llm"

func courseSchema() *llm.Schema {
	return llm.Object(
		llm.Field{Name: "title", Schema: llm.String("")},
		llm.Field{Name: "description", Schema: llm.String("")},
		llm.Field{Name: "category", Schema: llm.String("")},
		llm.Field{Name: "instructor", Schema: llm.String("")},
		llm.Field{Name: "rating", Schema: llm.Number("")},
		llm.Field{Name: "duration", Schema: llm.String("")},
	)
}

// CourseListSchema constrains catalog responses to an array of courses.
func CourseListSchema() *llm.Schema {
	return llm.ArrayOf(courseSchema(), "")
}

// CourseDetailsSchema constrains course page content.
func CourseDetailsSchema() *llm.Schema {
	return llm.Object(
		llm.Field{Name: "learningObjectives", Schema: llm.ArrayOf(llm.String(""), "")},
		llm.Field{Name: "syllabus", Schema: llm.ArrayOf(llm.Object(
			llm.Field{Name: "week", Schema: llm.Integer("")},
			llm.Field{Name: "title", Schema: llm.String("")},
			llm.Field{Name: "topic", Schema: llm.String("")},
		), "")},
		llm.Field{Name: "reviews", Schema: llm.ArrayOf(llm.Object(
			llm.Field{Name: "name", Schema: llm.String("")},
			llm.Field{Name: "rating", Schema: llm.Number("")},
			llm.Field{Name: "comment", Schema: llm.String("")},
		), "")},
		llm.Field{Name: "youtubeVideoId", Schema: llm.String(
			"A relevant YouTube video ID for a course lesson on this topic. For example, for a course on React, a valid ID would be 'SqcY0GlETPk'.")},
		llm.Field{Name: "quiz", Schema: llm.ArrayOf(llm.Object(
			llm.Field{Name: "question", Schema: llm.String("")},
			llm.Field{Name: "options", Schema: llm.ArrayOf(llm.String(""), "")},
			llm.Field{Name: "correctAnswer", Schema: llm.String("")},
		), "")},
	)
}

// FullCourseSchema constrains tutor-authored courses: catalog entry plus details.
func FullCourseSchema() *llm.Schema {
	return llm.Object(
		llm.Field{Name: "course", Schema: courseSchema()},
		llm.Field{Name: "details", Schema: CourseDetailsSchema()},
	)
}

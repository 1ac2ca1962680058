package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Course is a catalog entry. The title is its identity; there is no numeric id.
type Course struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Instructor  string  `json:"instructor" validate:"required"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=5"`
	Duration    string  `json:"duration" validate:"required"`
}

type SyllabusItem struct {
	Week  int    `json:"week" validate:"gte=1"`
	Title string `json:"title" validate:"required"`
	Topic string `json:"topic"`
}

type Review struct {
	Name    string  `json:"name" validate:"required"`
	Rating  float64 `json:"rating" validate:"gte=0,lte=5"`
	Comment string  `json:"comment"`
}

// CourseDetails is the generated content shown on a course page.
type CourseDetails struct {
	LearningObjectives []string       `json:"learningObjectives" validate:"min=1,dive,required"`
	Syllabus           []SyllabusItem `json:"syllabus" validate:"min=1,dive"`
	Reviews            []Review       `json:"reviews" validate:"dive"`
	YouTubeVideoID     string         `json:"youtubeVideoId"`
	Quiz               []QuizQuestion `json:"quiz" validate:"dive"`
}

// CourseBundle is a fully authored course: catalog entry plus details.
type CourseBundle struct {
	Course  Course        `json:"course" validate:"required"`
	Details CourseDetails `json:"details" validate:"required"`
}

// SyllabusTitles returns the item titles in syllabus order.
func (d CourseDetails) SyllabusTitles() []string {
	out := make([]string, 0, len(d.Syllabus))
	for _, item := range d.Syllabus {
		out = append(out, item.Title)
	}
	return out
}

// HasSyllabusItem reports whether title names an item of the syllabus.
func (d CourseDetails) HasSyllabusItem(title string) bool {
	for _, item := range d.Syllabus {
		if item.Title == title {
			return true
		}
	}
	return false
}

// FindSyllabusItem resolves ref as a 1-based week number or an exact item title.
func (d CourseDetails) FindSyllabusItem(ref string) (SyllabusItem, error) {
	ref = strings.TrimSpace(ref)
	if week, err := strconv.Atoi(ref); err == nil {
		for _, item := range d.Syllabus {
			if item.Week == week {
				return item, nil
			}
		}
		if week >= 1 && week <= len(d.Syllabus) {
			return d.Syllabus[week-1], nil
		}
	}
	for _, item := range d.Syllabus {
		if strings.EqualFold(item.Title, ref) {
			return item, nil
		}
	}
	return SyllabusItem{}, fmt.Errorf("no syllabus item %q", ref)
}

// EnrolledCourse is the snapshot stored at enrollment time.
type EnrolledCourse struct {
	Course
	SyllabusLength int `json:"syllabusLength"`
}

// CourseWithProgress is an in-progress course as listed on the dashboard.
type CourseWithProgress struct {
	Course
	CompletionPercentage float64 `json:"completionPercentage"`
}

// Catalog is the last course listing shown to the user.
type Catalog struct {
	Query   string   `json:"query,omitempty"`
	Courses []Course `json:"courses"`
}

// Find resolves ref as a 1-based index into the listing or a case-insensitive title.
func (c Catalog) Find(ref string) (Course, bool) {
	ref = strings.TrimSpace(ref)
	if idx, err := strconv.Atoi(ref); err == nil {
		if idx >= 1 && idx <= len(c.Courses) {
			return c.Courses[idx-1], true
		}
		return Course{}, false
	}
	for _, course := range c.Courses {
		if strings.EqualFold(course.Title, ref) {
			return course, true
		}
	}
	return Course{}, false
}

package domain

import "fmt"

// Tab is a section of the course detail view.
type Tab string

const (
	TabSyllabus  Tab = "syllabus"
	TabReviews   Tab = "reviews"
	TabQuiz      Tab = "quiz"
	TabAssistant Tab = "assistant"
)

var ValidTabs = []Tab{TabSyllabus, TabReviews, TabQuiz, TabAssistant}

func ParseTab(s string) (Tab, error) {
	if s == "" {
		return TabSyllabus, nil
	}
	for _, t := range ValidTabs {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("invalid tab %q (use syllabus, reviews, quiz or assistant)", s)
}

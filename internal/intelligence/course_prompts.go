package intelligence

import (
	"fmt"
	"strings"
)

const curriculumDesigner = "You are an expert curriculum designer for an e-learning platform."

const initialCoursesPrompt = `Generate a diverse list of 8 fictional, modern e-learning courses. Include topics like AI, web development, design, and marketing. Ensure the rating is a number between 3.5 and 5.0.`

func buildSearchPrompt(query string) string {
	return fmt.Sprintf(`Generate a list of 8 fictional e-learning courses related to %q. Ensure the rating is a number between 3.5 and 5.0.`, query)
}

const detailsChecklist = `- Create 5 key learning objectives.
- Create a detailed 8-week syllabus.
- Create 3 sample student reviews with names, ratings (number between 3 and 5), and comments.
- Provide a single, relevant YouTube video ID for a lesson on this topic. It should be a real, embeddable video ID. For example, for a web development course, you could provide 'z-zB9F-8f_w'.
- Create a 3-question multiple-choice quiz about the topic. Each question must have 4 options and one correct answer. The correctAnswer must be one of the strings from the options array.`

func buildDetailsPrompt(title, description string) string {
	return fmt.Sprintf("For the course titled %q with the description %q, generate detailed information.\n%s",
		title, description, detailsChecklist)
}

const authoringChecklist = `1. Course Info: Create a suitable title, a compelling one-paragraph description, a relevant category (e.g., "Web Development", "Data Science", "Marketing"), an instructor name for the tutor, a plausible duration (e.g., "6 Hours"), and a rating between 4.0 and 5.0.
2. Course Details:
   - Create 5 key learning objectives.
   - Create a detailed 8-week syllabus %s.
   - Create 3 sample student reviews with names, ratings (number between 3 and 5), and positive comments.
   - Provide a single, relevant, and real YouTube video ID for a lesson on this topic.%s
   - Create a 3-question multiple-choice quiz about the topic. Each question must have 4 options and one correct answer string, which must be one of the options.`

func buildFileCoursePrompt(content string) string {
	var b strings.Builder
	b.WriteString("A tutor has provided the following syllabus outline or topic description. ")
	b.WriteString("Based on this content, generate a complete, fictional e-learning course.\n\n")
	fmt.Fprintf(&b, authoringChecklist,
		"based on the provided content. If the content is sparse, expand on it logically", "")
	b.WriteString("\n\nHere is the content provided by the tutor:\n---\n")
	b.WriteString(content)
	b.WriteString("\n---\n")
	return b.String()
}

func buildVideoCoursePrompt(videoURL, topic string) string {
	var b strings.Builder
	b.WriteString("A tutor wants to create a course based on the topic of a video they've provided.\n\n")
	fmt.Fprintf(&b, "The video's topic is: %q.\n", topic)
	fmt.Fprintf(&b, "The video URL is: %s. (Do not try to access this URL, use the topic description to generate the content).\n\n", videoURL)
	b.WriteString("Based on the provided topic, generate a complete, fictional e-learning course.\n\n")
	fmt.Fprintf(&b, authoringChecklist, "based on the topic",
		" It can be a different video than the one provided, but it must be on the same topic.")
	return b.String()
}

func courseAssistantInstruction(courseTitle string) string {
	return fmt.Sprintf(`You are a friendly and helpful teaching assistant for the course %q. Answer student questions clearly and concisely. Do not go off-topic.`, courseTitle)
}

const generalAssistantInstruction = `You are Remi, a friendly and helpful AI chatbot for Remsodo Academy, an e-learning platform. Your goal is to assist users by answering their questions about the platform, suggesting courses, explaining topics in a simple way, and providing encouragement. Keep your responses concise and friendly.`

// CourseGreeting is the assistant's opening line for a course chat.
func CourseGreeting(courseTitle string) string {
	return fmt.Sprintf("Hello! I'm your assistant for %q. How can I help you today?", courseTitle)
}

const GeneralGreeting = "Hi there! I'm Remi, your Remsodo Academy assistant. How can I help you today?"

// Replies shown in place of an answer when the model cannot be reached.
const (
	CourseChatErrorReply  = "I'm sorry, I'm having trouble connecting right now. Please try again later."
	GeneralChatErrorReply = "I'm sorry, I'm having trouble connecting. Please try again later."
)

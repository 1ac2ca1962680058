package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/remsodo/internal/domain"
	"github.com/alexanderramin/remsodo/internal/service"
)

const NoQuizMessage = "No Quiz Available"

// FormatQuiz shows each question with its options lettered a, b, c...
// The saved answer is highlighted.
func FormatQuiz(title string, st *service.QuizState) string {
	if st == nil || len(st.Questions) == 0 {
		return Dim(NoQuizMessage)
	}
	var b strings.Builder
	b.WriteString(Header("Quiz: " + title))
	b.WriteString("\n")
	for i, q := range st.Questions {
		fmt.Fprintf(&b, "%s %s\n", StyleHeader.Render(fmt.Sprintf("%d.", i+1)), Bold(q.Question))
		selected, answered := st.Answers[i]
		for j, opt := range q.Options {
			letter := string(rune('a' + j))
			line := fmt.Sprintf("   %s) %s", letter, opt)
			if answered && opt == selected {
				line = StyleGreen.Render(fmt.Sprintf(" ● %s) %s", letter, opt))
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	}
	answered := len(st.Answers)
	status := fmt.Sprintf("%d of %d answered", answered, len(st.Questions))
	if st.CanSubmit {
		b.WriteString(StyleGreen.Render(status + ". Ready to submit."))
	} else {
		b.WriteString(Dim(status + "."))
	}
	return b.String()
}

// FormatQuizResult shows the score and, per question, what was picked.
func FormatQuizResult(res *domain.QuizResult) string {
	var b strings.Builder
	b.WriteString(Header("Quiz Results"))
	b.WriteString("\n")
	score := fmt.Sprintf("You scored %d out of %d!", res.Score, res.Total)
	if res.Perfect() {
		b.WriteString(StyleGreen.Render(score) + "\n" + "Excellent work!\n\n")
	} else {
		b.WriteString(StyleYellow.Render(score) + "\n" + "Good effort! Review the material and try again.\n\n")
	}
	for i, r := range res.Review {
		mark := StyleGreen.Render("✔")
		if !r.Correct {
			mark = StyleRed.Render("✖")
		}
		fmt.Fprintf(&b, "%s %d. %s\n", mark, i+1, r.Question)
		fmt.Fprintf(&b, "     %s %s\n", Dim("your answer:"), r.Selected)
		if !r.Correct {
			fmt.Fprintf(&b, "     %s %s\n", Dim("correct:"), StyleGreen.Render(r.CorrectAnswer))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

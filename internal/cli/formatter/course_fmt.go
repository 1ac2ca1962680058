package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/remsodo/internal/domain"
	"github.com/alexanderramin/remsodo/internal/service"
)

// FormatCatalog lists courses with the 1-based index other commands accept.
func FormatCatalog(cat *domain.Catalog) string {
	var b strings.Builder
	title := "Explore Courses"
	if cat.Query != "" {
		title = fmt.Sprintf("Results for %q", cat.Query)
	}
	b.WriteString(Header(title))
	b.WriteString("\n")
	if len(cat.Courses) == 0 {
		b.WriteString(Dim("No courses found."))
		return b.String()
	}
	rows := make([][]string, 0, len(cat.Courses))
	for i, c := range cat.Courses {
		rows = append(rows, []string{
			Dim(strconv.Itoa(i + 1)),
			Bold(Truncate(c.Title, 40)),
			StylePurple.Render(c.Category),
			Truncate(c.Instructor, 24),
			RenderStars(c.Rating),
			Dim(c.Duration),
		})
	}
	b.WriteString(RenderTable([]string{"#", "TITLE", "CATEGORY", "INSTRUCTOR", "RATING", "DURATION"}, rows))
	return b.String()
}

// FormatCourseView renders the course page with the given tab's content.
func FormatCourseView(v *service.CourseView, width int) string {
	var b strings.Builder
	c := v.Course
	b.WriteString(StyleHeader.Render(c.Title))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  %s  %s  %s\n",
		StylePurple.Render(c.Category), c.Instructor, RenderStars(c.Rating), Dim(c.Duration))
	b.WriteString("\n")
	b.WriteString(Wrap(c.Description, width))
	b.WriteString("\n\n")

	if v.Enrolled {
		fmt.Fprintf(&b, "%s %s\n\n", Dim("Progress"), RenderProgress(v.CompletionPercentage, 20))
	} else {
		b.WriteString(Dim("Not enrolled. Run `remsodo course enroll` to track progress."))
		b.WriteString("\n\n")
	}

	b.WriteString(Header("What you'll learn"))
	b.WriteString("\n")
	for _, o := range v.Details.LearningObjectives {
		b.WriteString(StyleGreen.Render("  ✓ ") + o + "\n")
	}
	b.WriteString("\n")

	b.WriteString(FormatTabs(v.Tab))
	b.WriteString("\n\n")
	switch v.Tab {
	case domain.TabReviews:
		b.WriteString(FormatReviews(v.Details.Reviews))
	case domain.TabQuiz:
		b.WriteString(Dim(fmt.Sprintf("%d questions. Run `remsodo quiz show %q` to take the quiz.", len(v.Details.Quiz), c.Title)))
	case domain.TabAssistant:
		b.WriteString(Dim(fmt.Sprintf("Run `remsodo chat --course %q` to talk to the learning assistant.", c.Title)))
	default:
		b.WriteString(FormatSyllabus(v.Details.Syllabus, v.Progress, v.Enrolled))
	}

	if v.Details.YouTubeVideoID != "" {
		b.WriteString("\n\n")
		b.WriteString(FormatVideo(v.Details.YouTubeVideoID))
	}
	if v.FromCache {
		b.WriteString("\n")
		b.WriteString(Dim("(cached; use --refresh to regenerate)"))
	}
	return b.String()
}

// FormatTabs shows the tab bar with the active tab highlighted.
func FormatTabs(active domain.Tab) string {
	parts := make([]string, 0, len(domain.ValidTabs))
	for _, t := range domain.ValidTabs {
		label := strings.ToUpper(string(t)[:1]) + string(t)[1:]
		if t == active {
			parts = append(parts, StyleHeader.Render("["+label+"]"))
		} else {
			parts = append(parts, Dim(" "+label+" "))
		}
	}
	return strings.Join(parts, " ")
}

// FormatSyllabus marks completed weeks. Checkboxes only show when enrolled.
func FormatSyllabus(items []domain.SyllabusItem, progress domain.Progress, enrolled bool) string {
	if len(items) == 0 {
		return Dim("No syllabus available.")
	}
	var b strings.Builder
	for _, it := range items {
		mark := "  "
		if enrolled {
			mark = Dim("○ ")
			if progress.Contains(it.Title) {
				mark = StyleGreen.Render("✔ ")
			}
		}
		fmt.Fprintf(&b, "%s%s %s\n", mark, Dim(fmt.Sprintf("Week %d", it.Week)), Bold(it.Title))
		if it.Topic != "" {
			fmt.Fprintf(&b, "    %s\n", Dim(it.Topic))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func FormatReviews(reviews []domain.Review) string {
	if len(reviews) == 0 {
		return Dim("No reviews yet.")
	}
	var b strings.Builder
	for i, r := range reviews {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s  %s\n  %s\n", Bold(r.Name), RenderStars(r.Rating), r.Comment)
	}
	return strings.TrimRight(b.String(), "\n")
}

func FormatVideo(id string) string {
	return fmt.Sprintf("%s %s\n%s %s",
		Dim("Watch:"), StyleBlue.Render(domain.YouTubeWatchURL(id)),
		Dim("Embed:"), StyleBlue.Render(domain.YouTubeEmbedURL(id)))
}

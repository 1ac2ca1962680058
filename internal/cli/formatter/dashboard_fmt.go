package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/remsodo/internal/domain"
	"github.com/alexanderramin/remsodo/internal/service"
)

func FormatDashboard(user *domain.User, d *service.Dashboard) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n\n", Bold("Welcome back, "+user.Email), RoleBadge(user.Role))

	b.WriteString(Header(fmt.Sprintf("In Progress (%s)", countLabel(len(d.InProgress), d.TotalInProgress))))
	b.WriteString("\n")
	switch {
	case d.TotalInProgress == 0:
		b.WriteString(Dim("You have no courses in progress. Explore courses to start learning!"))
		b.WriteString("\n")
	case len(d.InProgress) == 0:
		b.WriteString(Dim("No courses match your filter."))
		b.WriteString("\n")
	default:
		rows := make([][]string, 0, len(d.InProgress))
		for _, c := range d.InProgress {
			rows = append(rows, []string{
				Bold(Truncate(c.Title, 40)),
				StylePurple.Render(c.Category),
				RenderProgress(c.CompletionPercentage, 16),
			})
		}
		b.WriteString(RenderTable([]string{"COURSE", "CATEGORY", "PROGRESS"}, rows))
	}
	b.WriteString("\n")

	b.WriteString(Header(fmt.Sprintf("Completed (%s)", countLabel(len(d.Completed), d.TotalCompleted))))
	b.WriteString("\n")
	switch {
	case d.TotalCompleted == 0:
		b.WriteString(Dim("You haven't completed any courses yet. Keep learning!"))
	case len(d.Completed) == 0:
		b.WriteString(Dim("No courses match your filter."))
	default:
		rows := make([][]string, 0, len(d.Completed))
		for _, c := range d.Completed {
			rows = append(rows, []string{
				StyleGreen.Render("✔ ") + Bold(Truncate(c.Title, 40)),
				StylePurple.Render(c.Category),
				c.Instructor,
			})
		}
		b.WriteString(strings.TrimRight(RenderTable([]string{"COURSE", "CATEGORY", "INSTRUCTOR"}, rows), "\n"))
	}
	return b.String()
}

func countLabel(shown, total int) string {
	if shown == total {
		return fmt.Sprint(total)
	}
	return fmt.Sprintf("%d of %d", shown, total)
}

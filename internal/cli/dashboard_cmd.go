package cli

import (
	"github.com/alexanderramin/remsodo/internal/cli/formatter"
	"github.com/alexanderramin/remsodo/internal/domain"
	"github.com/alexanderramin/remsodo/internal/service"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	var inProgressFilter, completedFilter string
	inProgressSort := newSortFlag(domain.SortProgressDesc, domain.InProgressSortOptions)
	completedSort := newSortFlag(domain.SortTitleAsc, domain.CompletedSortOptions)

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show your in-progress and completed courses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := requireUser(ctx, app)
			if err != nil {
				return err
			}
			d, err := app.Courses.Dashboard(ctx, user.Email, service.DashboardQuery{
				InProgressFilter: inProgressFilter,
				InProgressSort:   inProgressSort.value,
				CompletedFilter:  completedFilter,
				CompletedSort:    completedSort.value,
			})
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatDashboard(user, d))
			return nil
		},
	}

	cmd.Flags().StringVar(&inProgressFilter, "filter", "", "Filter in-progress courses by title")
	cmd.Flags().StringVar(&completedFilter, "completed-filter", "", "Filter completed courses by title")
	cmd.Flags().Var(inProgressSort, "sort", "Sort in-progress courses: "+inProgressSort.usage())
	cmd.Flags().Var(completedSort, "completed-sort", "Sort completed courses: "+completedSort.usage())

	return cmd
}

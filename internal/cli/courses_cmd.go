package cli

import (
	"strings"

	"github.com/alexanderramin/remsodo/internal/cli/formatter"
	"github.com/alexanderramin/remsodo/internal/domain"
	"github.com/spf13/cobra"
)

func newCoursesCmd(app *App) *cobra.Command {
	var search string
	var refresh bool

	cmd := &cobra.Command{
		Use:   "courses",
		Short: "Browse or search the course catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.TrimSpace(search)
			cat, err := withSpinner(cmd, app, "Generating courses...", func() (*domain.Catalog, error) {
				return app.Catalog.Browse(cmd.Context(), query, refresh)
			})
			if err != nil {
				return generationFailed(err, searchFailedMessage(query))
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatCatalog(cat))
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Search for courses about a topic")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "Regenerate instead of using the cached listing")

	return cmd
}

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shortling/shortling/cmd/shortling/ui"
	"github.com/shortling/shortling/pkg/core/domain"
)

var analyticsDays int

var analyticsCmd = &cobra.Command{
	Use:   "analytics [SHORT_URL]",
	Short: "Chart clicks over time, for one link or all of them",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if analyticsDays < 1 || analyticsDays > 365 {
			return fmt.Errorf("days must be between 1 and 365, got %d", analyticsDays)
		}

		a, err := newApp(consoleNotifier())
		if err != nil {
			return err
		}
		defer a.Close()

		if err := requireAuth(a); err != nil {
			return err
		}

		end := time.Now()
		start := end.AddDate(0, 0, -analyticsDays)

		var series domain.ClickSeries
		if len(args) == 1 {
			series, err = a.links.URLAnalytics(cmd.Context(), args[0], start, end)
		} else {
			series, err = a.links.TotalClicks(cmd.Context(), start, end)
		}
		if err != nil {
			return err
		}

		styles := ui.DefaultStyles()
		fmt.Println(ui.RenderStatCards(series, styles))
		fmt.Println()
		fmt.Println(ui.RenderBarChart(series, 80, styles))
		return nil
	},
}

func init() {
	analyticsCmd.Flags().IntVarP(&analyticsDays, "days", "d", 7, "size of the date range ending today")
}

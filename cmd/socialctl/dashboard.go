package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"social-insights-service/internal/metrics/adapters/chart"
	metricsHttp "social-insights-service/internal/metrics/adapters/http/fiber"
	"social-insights-service/internal/metrics/core/domain"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newDashboardCmd() *cobra.Command {
	var (
		filters filterFlags
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "dashboard <file>",
		Short: "Print KPIs and aggregate tables for a CSV or JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			platforms, postTypes := filters.selection(cmd)
			dash, err := loadDashboard(cmd.Context(), args[0], platforms, postTypes)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(metricsHttp.NewDashboardResponse(dash, chart.NewRenderer(0, 0).Charts()))
			}
			printDashboard(out, dash)
			return nil
		},
	}
	filters.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the dashboard as JSON")
	return cmd
}

func printDashboard(w io.Writer, d *domain.Dashboard) {
	for _, warning := range d.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}
	fmt.Fprintf(w, "rows: %d of %d\n\n", d.FilteredRows, d.TotalRows)

	sections := []struct {
		title string
		frame domain.Frame
	}{
		{"Key metrics", domain.KPIFrame(d.KPIs)},
		{"Engagement share by platform", domain.PlatformEngagementFrame(d.PlatformEngagement)},
		{"Monthly engagement trends", domain.MonthlyTrendFrame(d.MonthlyTrends)},
		{"Platform performance", domain.PlatformPerformanceFrame(d.PlatformPerformance)},
		{"Average engagement by post type", domain.PostTypePerformanceFrame(d.PostTypePerformance)},
		{"Post frequency vs engagement", domain.FrequencyEngagementFrame(d.FrequencyEngagement)},
	}
	for _, s := range sections {
		fmt.Fprintln(w, s.title)
		renderFrame(w, s.frame)
		fmt.Fprintln(w)
	}
}

func renderFrame(w io.Writer, f domain.Frame) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(f.Columns)
	table.SetAutoFormatHeaders(false)

	for row := 0; row < f.Len(); row++ {
		cells := make([]string, 0, len(f.Columns))
		for _, c := range f.Columns {
			cells = append(cells, formatCell(f.Data[c][row]))
		}
		table.Append(cells)
	}
	table.Render()
}

func formatCell(v any) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', 2, 64)
	default:
		return fmt.Sprint(x)
	}
}

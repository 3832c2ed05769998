package main

import (
	"fmt"
	"os"
	"strings"

	"social-insights-service/internal/metrics/adapters/chart"

	"github.com/spf13/cobra"
)

func newChartCmd() *cobra.Command {
	var (
		filters       filterFlags
		output        string
		width, height int
	)

	renderer := chart.NewRenderer(0, 0)
	cmd := &cobra.Command{
		Use:   "chart <file> <name>",
		Short: "Render one dashboard chart as PNG",
		Long:  "Render one dashboard chart as PNG. Charts: " + strings.Join(renderer.Charts(), ", "),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			platforms, postTypes := filters.selection(cmd)
			dash, err := loadDashboard(cmd.Context(), args[0], platforms, postTypes)
			if err != nil {
				return err
			}

			png, err := chart.NewRenderer(width, height).Render(args[1], dash)
			if err != nil {
				return err
			}

			if output == "" {
				output = args[1] + ".png"
			}
			if err := os.WriteFile(output, png, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", output, len(png))
			return nil
		},
	}
	filters.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <name>.png)")
	cmd.Flags().IntVar(&width, "width", 1024, "image width in pixels")
	cmd.Flags().IntVar(&height, "height", 512, "image height in pixels")
	return cmd
}

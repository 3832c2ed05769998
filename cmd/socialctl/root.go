package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"social-insights-service/internal/datasets/adapters/decoder"
	"social-insights-service/internal/datasets/adapters/memory"
	datasetusecase "social-insights-service/internal/datasets/core/usecase"
	"social-insights-service/internal/metrics/core/domain"
	metricsusecase "social-insights-service/internal/metrics/core/usecase"

	"github.com/spf13/cobra"
)

const maxFileBytes = 256 << 20

type filterFlags struct {
	platforms []string
	postTypes []string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.platforms, "platform", nil, "platforms to include (default: all)")
	cmd.Flags().StringSliceVar(&f.postTypes, "post-type", nil, "post types to include (default: all)")
}

// selection keeps nil for flags that were not given, so they select everything.
func (f *filterFlags) selection(cmd *cobra.Command) (platforms, postTypes []string) {
	if cmd.Flags().Changed("platform") {
		platforms = append([]string{}, f.platforms...)
	}
	if cmd.Flags().Changed("post-type") {
		postTypes = append([]string{}, f.postTypes...)
	}
	return platforms, postTypes
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "socialctl",
		Short:         "Compute social media post dashboards from a local file",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newDashboardCmd())
	root.AddCommand(newChartCmd())
	return root
}

// loadDashboard runs a file through the same upload and dashboard use cases
// the API uses.
func loadDashboard(ctx context.Context, path string, platforms, postTypes []string) (*domain.Dashboard, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	repo := memory.NewDatasetRepository(1)
	datasets := datasetusecase.NewDatasetUseCase(repo, decoder.New(), maxFileBytes, 0)

	ds, err := datasets.Upload(ctx, datasetusecase.UploadDatasetInput{
		FileName: filepath.Base(path),
		Content:  content,
	})
	if err != nil {
		return nil, err
	}

	return metricsusecase.NewGetDashboardUseCase(repo).Execute(ctx, metricsusecase.GetDashboardInput{
		DatasetID: ds.ID,
		Platforms: platforms,
		PostTypes: postTypes,
	})
}

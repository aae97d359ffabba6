package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lumina-path/config"
	app "lumina-path/internal/application"
	"lumina-path/internal/container"
	"lumina-path/internal/infrastructure/predictor"
	"lumina-path/internal/infrastructure/report"
	"lumina-path/internal/infrastructure/vision"
	"lumina-path/internal/logging"
)

var (
	logLevel string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "luminapath",
	Short: "LuminaPath retinal scan report service",
	Long: `LuminaPath collects patient data and an OCT scan, shows a placeholder
prediction and renders a one-page PDF report.

The prediction is a fixed placeholder; no model is involved.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}

		logger, err = logging.New(cfg.LogLevel)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.AddCommand(serveCmd, reportCmd)
}

// buildContainer собирает сервисы приложения из конфигурации.
func buildContainer() (*container.Container, error) {
	layout, err := report.LoadLayout(cfg.ReportLayout)
	if err != nil {
		return nil, err
	}

	renderer := report.NewPDFRenderer(layout, vision.NewPreparer(vision.DefaultMaxSide), logger)

	return container.New(
		predictor.NewStaticPredictor(),
		renderer,
		app.WithReportPrefix(cfg.ReportPrefix),
		app.WithLogger(logger),
	), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

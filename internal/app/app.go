package app

import (
	"context"
	"log/slog"

	"contactsorter/internal/classify"
	"contactsorter/internal/config"
	"contactsorter/internal/infrastructure/csvout"
	"contactsorter/internal/infrastructure/report"
	"contactsorter/internal/infrastructure/vcf"
	"contactsorter/internal/logging"
	"contactsorter/internal/usecase"
)

// Application wires configuration to the sorting pipeline.
type Application struct {
	cfg      config.Config
	pipeline *usecase.Pipeline
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source: vcf.NewReader(baseLogger.With("component", "vcf.reader")),
		CSV:    csvout.NewWriter(),
		VCF:    vcf.NewWriter(),
		Report: report.NewFileSink(),
		Rules:  classify.DefaultRules(),
		Logger: baseLogger.With("component", "pipeline"),
	})

	return &Application{cfg: cfg, pipeline: pipeline}
}

// Run executes a single sorting pass over the configured input.
func (a *Application) Run(ctx context.Context) error {
	if a.pipeline == nil {
		return nil
	}

	return a.pipeline.Run(ctx, a.cfg.Input.File, a.cfg.Output.Dir)
}

package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"contactsorter/internal/check"
	"contactsorter/internal/classify"
	"contactsorter/internal/domain"
	"contactsorter/internal/normalize"
	"contactsorter/internal/ports"
)

const reportFileName = "check_results.txt"

// PipelineDeps wires all driven adapters into the sorting pipeline.
type PipelineDeps struct {
	Source ports.ContactSource
	CSV    ports.BucketWriter
	VCF    ports.BucketWriter
	Report ports.ReportSink
	Rules  *classify.RuleSet
	Logger *slog.Logger
}

// Pipeline implements the parse, normalize, classify, write, check workflow
// as one linear pass.
type Pipeline struct {
	source ports.ContactSource
	csv    ports.BucketWriter
	vcf    ports.BucketWriter
	report ports.ReportSink
	rules  *classify.RuleSet
	logger *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	rules := deps.Rules
	if rules == nil {
		rules = classify.DefaultRules()
	}

	return &Pipeline{
		source: deps.Source,
		csv:    deps.CSV,
		vcf:    deps.VCF,
		report: deps.Report,
		rules:  rules,
		logger: deps.Logger,
	}
}

// Run executes one sorting pass. Input and output failures abort the run;
// checker findings are logged and reported but never fatal, since they
// describe the data rather than the program.
func (p *Pipeline) Run(ctx context.Context, inputFile, outputDir string) error {
	if p.source == nil {
		return fmt.Errorf("contact source is not configured")
	}

	raw, err := p.source.Read(ctx, inputFile)
	if err != nil {
		return fmt.Errorf("read contacts: %w", err)
	}

	contacts := normalize.Contacts(raw)
	p.info("contacts ingested", "input", inputFile, "count", len(contacts))

	result := classify.Partition(contacts, p.rules)

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", outputDir, err)
	}

	// A partially written output set would invalidate the count check, so
	// any write failure aborts the run.
	for _, bucket := range result.Buckets {
		if err := p.writeBucket(ctx, outputDir, bucket.Label, bucket.Contacts); err != nil {
			return err
		}
		p.info("bucket written", "label", bucket.Label, "contacts", len(bucket.Contacts))
	}

	report := check.Run(contacts, result.Counts())
	if !report.CountsMatch() {
		p.warn("count check failed", "initial", report.InitialCount, "filtered", report.FilteredCount)
	}
	if len(report.DuplicateEmails) > 0 || len(report.DuplicatePhones) > 0 {
		p.warn("duplicates found",
			"email_groups", len(report.DuplicateEmails),
			"phone_groups", len(report.DuplicatePhones))
	}

	if p.report != nil {
		path := filepath.Join(outputDir, reportFileName)
		if err := p.report.Publish(ctx, path, check.Render(report)); err != nil {
			return fmt.Errorf("publish report: %w", err)
		}
		p.info("check results saved", "path", path)
	}

	return nil
}

func (p *Pipeline) writeBucket(ctx context.Context, outputDir, label string, contacts []domain.Contact) error {
	if p.csv != nil {
		path := filepath.Join(outputDir, label+".csv")
		if err := p.csv.WriteBucket(ctx, path, contacts); err != nil {
			return fmt.Errorf("write csv bucket %s: %w", label, err)
		}
	}

	if p.vcf != nil {
		path := filepath.Join(outputDir, label+".vcf")
		if err := p.vcf.WriteBucket(ctx, path, contacts); err != nil {
			return fmt.Errorf("write vcf bucket %s: %w", label, err)
		}
	}

	return nil
}

func (p *Pipeline) info(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Pipeline) warn(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}

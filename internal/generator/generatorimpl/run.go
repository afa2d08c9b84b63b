package generatorimpl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ydrgzm/taiga-cfd-bot/internal/cfd"
	"github.com/ydrgzm/taiga-cfd-bot/internal/domain"
	"github.com/ydrgzm/taiga-cfd-bot/internal/generator"
)

// Generate runs the full pipeline for one project: resolve the project,
// fetch its status catalog and stories, build the bucket series, save the
// CSV, persist the run, and deliver the summary.
func (g *GeneratorImpl) Generate(ctx context.Context, opts generator.GenerateOptions) (*domain.CFDRun, error) {
	if err := opts.Window.Validate(); err != nil {
		return nil, fmt.Errorf("invalid date window for %s: %w", opts.ProjectSlug, err)
	}

	log := g.Logger.With("project", opts.ProjectSlug, "granularity", opts.Granularity.String())
	log.Info("Starting CFD generation",
		"window_start", opts.Window.Start.Format("2006-01-02"),
		"window_end", opts.Window.End.Format("2006-01-02"))

	project, err := g.Taiga.GetProjectBySlug(ctx, opts.ProjectSlug)
	if err != nil {
		return nil, err
	}

	statuses, err := g.Taiga.GetStatuses(ctx, project.ID)
	if err != nil {
		return nil, err
	}
	if len(statuses) == 0 {
		return nil, fmt.Errorf("project %s has no user story statuses", opts.ProjectSlug)
	}

	stories, err := g.Taiga.GetUserStories(ctx, project.ID, opts.Window.Start)
	if err != nil {
		return nil, err
	}

	catalog := domain.NewStatusCatalog(statuses)
	series := g.builder.Build(stories, catalog, opts.Window, opts.Granularity)

	csvPath, err := g.saveCSV(opts, series)
	if err != nil {
		return nil, err
	}

	summary := cfd.Summarize(series)
	log.Info("CFD generation complete",
		"buckets", summary.Points,
		"stories_start", summary.TotalStart,
		"stories_end", summary.TotalEnd,
		"growth", summary.Growth,
		"csv", csvPath)

	cfdRun := &domain.CFDRun{
		ProjectSlug: opts.ProjectSlug,
		Granularity: opts.Granularity.String(),
		WindowStart: opts.Window.Start,
		WindowEnd:   opts.Window.End,
		CSVPath:     csvPath,
		Buckets:     summary.Points,
		TotalStart:  summary.TotalStart,
		TotalEnd:    summary.TotalEnd,
	}

	// Persistence and delivery are best effort: the CSV on disk is the
	// primary artifact and has already been written.
	if id, err := g.RunRepo.Create(ctx, *cfdRun); err != nil {
		log.Error("Failed to persist run", "error", err)
	} else {
		cfdRun.ID = id
		if err := g.SnapshotRepo.CreateBatch(ctx, id, series); err != nil {
			log.Error("Failed to persist snapshots", "run_id", id, "error", err)
		}
	}

	g.deliver(summary, csvPath)

	return cfdRun, nil
}

func (g *GeneratorImpl) saveCSV(opts generator.GenerateOptions, series domain.Series) (string, error) {
	if err := os.MkdirAll(g.Config.CFD.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	// Timestamp-qualified so concurrent runs never collide on one file.
	filename := fmt.Sprintf("cfd_data_%s_%s_%s.csv",
		opts.ProjectSlug,
		opts.Granularity,
		time.Now().UTC().Format("20060102_150405"))
	path := filepath.Join(g.Config.CFD.OutputDir, filename)

	if err := cfd.SaveSeries(path, series); err != nil {
		return "", err
	}
	return path, nil
}

func (g *GeneratorImpl) deliver(summary cfd.Summary, csvPath string) {
	if g.Config.Telegram.Channel == "" || summary.Points == 0 {
		return
	}

	g.Telegram.SendSummaryToChannel(summary.MarkdownV2())
	if err := g.Telegram.SendDocumentToChannel(csvPath); err != nil {
		g.Logger.Warn("Failed to deliver CSV to channel", "path", csvPath, "error", err)
	}
}

// DefaultOptions builds run options for one project from the configured
// defaults: a window reaching MonthsBack*30 days into the past at the
// configured granularity.
func (g *GeneratorImpl) DefaultOptions(slug string) generator.GenerateOptions {
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -g.Config.CFD.MonthsBack*30)

	return generator.GenerateOptions{
		ProjectSlug: slug,
		Window:      domain.DateWindow{Start: start, End: end},
		Granularity: cfd.ParseGranularity(g.Config.CFD.Granularity, g.Logger),
	}
}

package generatorimpl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/panjf2000/ants/v2"
)

// ScheduleGeneration sets up the periodic CFD run for every configured
// project slug. The first run fires immediately.
func (g *GeneratorImpl) ScheduleGeneration(ctx context.Context) error {
	slugs := g.Config.ProjectSlugList()
	if len(slugs) == 0 {
		g.Logger.Warn("No project slugs configured, skipping scheduled generation")
		return nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	interval := time.Duration(g.Config.CFD.IntervalHours) * time.Hour
	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				g.Logger.Info("Context cancelled, stopping scheduled generation")
				return
			}
			taskCtx, cancel := context.WithTimeout(ctx, 30*time.Minute)
			defer cancel()

			g.Logger.Info("Starting scheduled CFD generation", "projects", len(slugs))
			g.runJobsWithAnts(taskCtx, slugs)
			g.Logger.Info("Completed scheduled CFD generation")
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule generation: %w", err)
	}

	scheduler.Start()

	go func() {
		<-ctx.Done()
		g.Logger.Info("Stopping generation scheduler")
		if err := scheduler.Shutdown(); err != nil {
			g.Logger.Error("Failed to shut down generation scheduler", "error", err)
		}
	}()

	return nil
}

// runJobsWithAnts fans the per-project runs out over a small worker pool.
// Each project is independent; one failing run does not stop the others.
func (g *GeneratorImpl) runJobsWithAnts(ctx context.Context, slugs []string) {
	var wg sync.WaitGroup
	pool, err := ants.NewPool(3, ants.WithPreAlloc(true))
	if err != nil {
		g.Logger.Error("Failed to create worker pool", "error", err)
		return
	}
	defer pool.Release()

	for _, slug := range slugs {
		slug := slug
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()

			if _, err := g.Generate(ctx, g.DefaultOptions(slug)); err != nil {
				g.Logger.Error("Scheduled CFD generation failed", "project", slug, "error", err)
				g.Telegram.SendMessageToUser(fmt.Sprintf("CFD generation failed for %s: %v", slug, err))
			}
		})
		if submitErr != nil {
			wg.Done()
			g.Logger.Error("Failed to submit generation job", "project", slug, "error", submitErr)
		}
	}

	wg.Wait()
}

// pruneCSVFiles removes generated CSV files older than the retention window.
func (g *GeneratorImpl) pruneCSVFiles(retention time.Duration) int {
	entries, err := os.ReadDir(g.Config.CFD.OutputDir)
	if err != nil {
		if !os.IsNotExist(err) {
			g.Logger.Error("Failed to read output dir", "dir", g.Config.CFD.OutputDir, "error", err)
		}
		return 0
	}

	cutoff := time.Now().Add(-retention)
	deleted := 0
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".csv" {
			continue
		}

		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}

		path := filepath.Join(g.Config.CFD.OutputDir, entry.Name())
		if err := os.Remove(path); err != nil {
			g.Logger.Warn("Failed to remove old CSV", "path", path, "error", err)
			continue
		}
		deleted++
	}

	return deleted
}

// ScheduleCleanup sets up a daily job pruning runs older than the configured
// retention. Snapshot rows go with their run via the cascade.
func (g *GeneratorImpl) ScheduleCleanup(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create cleanup scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(gocron.NewAtTime(3, 0, 0)),
		),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				g.Logger.Info("Context cancelled, stopping cleanup job")
				return
			}

			cleanupCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
			defer cancel()

			retention := time.Duration(g.Config.CFD.RetentionDays) * 24 * time.Hour
			rowsDeleted, err := g.RunRepo.CleanupOldRuns(cleanupCtx, retention)
			if err != nil {
				g.Logger.Error("Failed to clean up old runs", "error", err)
				return
			}

			filesDeleted := g.pruneCSVFiles(retention)
			g.Logger.Info("Run cleanup completed", "rows_deleted", rowsDeleted, "files_deleted", filesDeleted)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule cleanup: %w", err)
	}

	scheduler.Start()

	go func() {
		<-ctx.Done()
		g.Logger.Info("Stopping cleanup scheduler")
		if err := scheduler.Shutdown(); err != nil {
			g.Logger.Error("Failed to shut down cleanup scheduler", "error", err)
		}
	}()

	return nil
}

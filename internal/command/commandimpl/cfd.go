package commandimpl

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/ydrgzm/taiga-cfd-bot/internal/cfd"
	"github.com/ydrgzm/taiga-cfd-bot/internal/domain"
	"github.com/ydrgzm/taiga-cfd-bot/internal/generator"
	"github.com/ydrgzm/taiga-cfd-bot/internal/repositories/run"
)

const helpMessage = `👋 Welcome to the Taiga CFD Bot!

Available commands:

/cfd [daily|weekly|monthly] [months] - Generate a fresh Cumulative Flow Diagram dataset for the default project.
/latest [project-slug] - Show the summary of the most recent generation run.
/projects - List the configured project slugs.
/help - Show this guide.

Scheduled generation runs automatically; use /cfd only when you need up-to-the-minute data.`

func (c *CommandImpl) HandleCommand(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := c.Telegram.GetUpdatesChan(u)
	c.Logger.Info("Command handler started, listening for updates.")

	for {
		select {
		case <-ctx.Done():
			c.Logger.Info("Command handler shutting down.")
			c.Telegram.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				c.Logger.Warn("Telegram updates channel closed unexpectedly.")
				return errors.New("telegram updates channel closed")
			}

			go func(u tgbotapi.Update) {
				defer func() {
					if r := recover(); r != nil {
						c.Logger.Error("Panic recovered while processing an update",
							"panic", r, "stack", string(debug.Stack()))
					}
				}()

				if u.Message == nil || !u.Message.IsCommand() {
					return
				}

				if err := c.processCommand(ctx, u); err != nil {
					c.Logger.Error("Error processing command",
						"command", u.Message.Command(),
						"error", err)
				}
			}(update)
		}
	}
}

func (c *CommandImpl) processCommand(ctx context.Context, update tgbotapi.Update) error {
	cmd := update.Message.Command()
	args := strings.Fields(update.Message.CommandArguments())
	chatID := update.Message.Chat.ID
	userID := update.Message.From.ID

	c.Logger.Info("Command received", "command", cmd, "from", update.Message.From.UserName)

	switch cmd {
	case "cfd":
		return c.handleCFD(ctx, chatID, userID, args)
	case "latest":
		return c.handleLatest(ctx, chatID, args)
	case "projects":
		return c.handleProjects(chatID)
	case "help", "start":
		_, err := c.Telegram.SendMessage(chatID, helpMessage)
		return err
	default:
		_, err := c.Telegram.SendMessage(chatID, "Unknown command. Try /help.")
		return err
	}
}

func (c *CommandImpl) handleCFD(ctx context.Context, chatID, userID int64, args []string) error {
	if !c.limiter.Allow(userID) {
		_, err := c.Telegram.SendMessage(chatID, "⏳ Easy there! A generation run is heavy; please wait a minute before starting another.")
		return err
	}

	slugs := c.Config.ProjectSlugList()
	if len(slugs) == 0 {
		_, err := c.Telegram.SendMessage(chatID, "No projects configured.")
		return err
	}

	opts, err := c.buildOptions(slugs[0], args)
	if err != nil {
		_, sendErr := c.Telegram.SendMessage(chatID, err.Error())
		return sendErr
	}

	if _, err := c.Telegram.SendMessage(chatID, fmt.Sprintf("📈 Generating %s CFD for %s...", opts.Granularity, opts.ProjectSlug)); err != nil {
		return err
	}

	cfdRun, err := c.Generator.Generate(ctx, opts)
	if err != nil {
		_, sendErr := c.Telegram.SendMessage(chatID, fmt.Sprintf("❌ Generation failed: %v", err))
		return errors.Join(err, sendErr)
	}

	series, seriesErr := c.SnapshotRepo.GetByRunID(ctx, cfdRun.ID)
	if seriesErr == nil {
		if err := c.Telegram.SendMarkdownV2(chatID, cfd.Summarize(series).MarkdownV2()); err != nil {
			c.Logger.Warn("Failed to send summary", "error", err)
		}
	}

	return c.Telegram.SendDocument(chatID, cfdRun.CSVPath)
}

// buildOptions resolves optional [granularity] [months] arguments against
// the configured defaults.
func (c *CommandImpl) buildOptions(slug string, args []string) (generator.GenerateOptions, error) {
	granularity := cfd.ParseGranularity(c.Config.CFD.Granularity, c.Logger)
	months := c.Config.CFD.MonthsBack

	for _, arg := range args {
		if n, err := strconv.Atoi(arg); err == nil {
			if n < 1 || n > 24 {
				return generator.GenerateOptions{}, fmt.Errorf("months must be between 1 and 24, got %d", n)
			}
			months = n
			continue
		}
		granularity = cfd.ParseGranularity(arg, c.Logger)
	}

	end := time.Now().UTC()
	return generator.GenerateOptions{
		ProjectSlug: slug,
		Window: domain.DateWindow{
			Start: end.AddDate(0, 0, -months*30),
			End:   end,
		},
		Granularity: granularity,
	}, nil
}

func (c *CommandImpl) handleLatest(ctx context.Context, chatID int64, args []string) error {
	slugs := c.Config.ProjectSlugList()

	var slug string
	switch {
	case len(args) > 0:
		slug = args[0]
	case len(slugs) > 0:
		slug = slugs[0]
	default:
		_, err := c.Telegram.SendMessage(chatID, "No projects configured.")
		return err
	}

	latest, err := c.RunRepo.GetLatestBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, run.ErrNotFound) {
			_, sendErr := c.Telegram.SendMessage(chatID, fmt.Sprintf("No runs recorded yet for %s. Use /cfd to generate one.", slug))
			return sendErr
		}
		return err
	}

	series, err := c.SnapshotRepo.GetByRunID(ctx, latest.ID)
	if err != nil {
		return fmt.Errorf("failed to load snapshots for run %d: %w", latest.ID, err)
	}

	return c.Telegram.SendMarkdownV2(chatID, cfd.Summarize(series).MarkdownV2())
}

func (c *CommandImpl) handleProjects(chatID int64) error {
	slugs := c.Config.ProjectSlugList()
	if len(slugs) == 0 {
		_, err := c.Telegram.SendMessage(chatID, "No projects configured.")
		return err
	}

	var sb strings.Builder
	sb.WriteString("Configured projects:\n")
	for _, slug := range slugs {
		fmt.Fprintf(&sb, "• %s\n", slug)
	}

	_, err := c.Telegram.SendMessage(chatID, sb.String())
	return err
}

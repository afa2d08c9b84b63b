package commandimpl

import (
	"context"
	"errors"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ydrgzm/taiga-cfd-bot/internal/domain"
	"github.com/ydrgzm/taiga-cfd-bot/internal/generator"
	mock_generator "github.com/ydrgzm/taiga-cfd-bot/internal/generator/mocks"
	"github.com/ydrgzm/taiga-cfd-bot/internal/ratelimit"
	"github.com/ydrgzm/taiga-cfd-bot/internal/repositories/run"
	mock_run "github.com/ydrgzm/taiga-cfd-bot/internal/repositories/run/mocks"
	mock_snapshot "github.com/ydrgzm/taiga-cfd-bot/internal/repositories/snapshot/mocks"
	mock_telegram "github.com/ydrgzm/taiga-cfd-bot/internal/telegram/mocks"
	"github.com/ydrgzm/taiga-cfd-bot/pkg/config"
	"github.com/ydrgzm/taiga-cfd-bot/pkg/logger"
	"go.uber.org/mock/gomock"
)

type commandFixture struct {
	generator *mock_generator.MockClient
	telegram  *mock_telegram.MockClient
	runRepo   *mock_run.MockRepository
	snapshots *mock_snapshot.MockRepository
	impl      *CommandImpl
}

func newCommandFixture(t *testing.T) *commandFixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Taiga.ProjectSlugs = "my-team"
	cfg.CFD.Granularity = "daily"
	cfg.CFD.MonthsBack = 6

	f := &commandFixture{
		generator: mock_generator.NewMockClient(ctrl),
		telegram:  mock_telegram.NewMockClient(ctrl),
		runRepo:   mock_run.NewMockRepository(ctrl),
		snapshots: mock_snapshot.NewMockRepository(ctrl),
	}
	f.impl = New(Opts{
		Generator:    f.generator,
		Telegram:     f.telegram,
		RunRepo:      f.runRepo,
		SnapshotRepo: f.snapshots,
		Logger:       logger.Nop{},
		Config:       cfg,
	})

	return f
}

func commandUpdate(text string) tgbotapi.Update {
	cmdLen := len(text)
	for i, r := range text {
		if r == ' ' {
			cmdLen = i
			break
		}
	}

	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			Text: text,
			Entities: []tgbotapi.MessageEntity{
				{Type: "bot_command", Offset: 0, Length: cmdLen},
			},
			Chat: &tgbotapi.Chat{ID: 42},
			From: &tgbotapi.User{ID: 7, UserName: "ydrgzm"},
		},
	}
}

func sampleSeries() domain.Series {
	return domain.Series{
		{Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Counts: map[string]int{"New": 3}, Total: 3},
		{Date: time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC), Counts: map[string]int{"New": 2, "Done": 2}, Total: 4},
	}
}

func TestHandleCFDGeneratesAndDelivers(t *testing.T) {
	f := newCommandFixture(t)

	generated := &domain.CFDRun{ID: 12, ProjectSlug: "my-team", CSVPath: "/tmp/cfd_data_my-team.csv"}

	f.telegram.EXPECT().
		SendMessage(int64(42), gomock.Any()).
		Return(1, nil)
	f.generator.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts generator.GenerateOptions) (*domain.CFDRun, error) {
			assert.Equal(t, "my-team", opts.ProjectSlug)
			assert.Equal(t, "daily", string(opts.Granularity))
			assert.True(t, opts.Window.Start.Before(opts.Window.End))
			return generated, nil
		})
	f.snapshots.EXPECT().
		GetByRunID(gomock.Any(), 12).
		Return(sampleSeries(), nil)
	f.telegram.EXPECT().
		SendMarkdownV2(int64(42), gomock.Any()).
		Return(nil)
	f.telegram.EXPECT().
		SendDocument(int64(42), "/tmp/cfd_data_my-team.csv").
		Return(nil)

	err := f.impl.processCommand(context.Background(), commandUpdate("/cfd"))
	require.NoError(t, err)
}

func TestHandleCFDParsesOverrides(t *testing.T) {
	f := newCommandFixture(t)

	f.telegram.EXPECT().SendMessage(int64(42), gomock.Any()).Return(1, nil)
	f.generator.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts generator.GenerateOptions) (*domain.CFDRun, error) {
			assert.Equal(t, "weekly", string(opts.Granularity))
			// 3 months back, approximated as 90 days.
			span := opts.Window.End.Sub(opts.Window.Start)
			assert.InDelta(t, 90*24, span.Hours(), 1)
			return &domain.CFDRun{ID: 1, CSVPath: "/tmp/out.csv"}, nil
		})
	f.snapshots.EXPECT().GetByRunID(gomock.Any(), 1).Return(sampleSeries(), nil)
	f.telegram.EXPECT().SendMarkdownV2(int64(42), gomock.Any()).Return(nil)
	f.telegram.EXPECT().SendDocument(int64(42), "/tmp/out.csv").Return(nil)

	err := f.impl.processCommand(context.Background(), commandUpdate("/cfd weekly 3"))
	require.NoError(t, err)
}

func TestHandleCFDRejectsBadMonths(t *testing.T) {
	f := newCommandFixture(t)

	f.telegram.EXPECT().
		SendMessage(int64(42), "months must be between 1 and 24, got 99").
		Return(1, nil)

	err := f.impl.processCommand(context.Background(), commandUpdate("/cfd 99"))
	require.NoError(t, err)
}

func TestHandleCFDGenerationFailureIsReported(t *testing.T) {
	f := newCommandFixture(t)

	f.telegram.EXPECT().SendMessage(int64(42), gomock.Any()).Return(1, nil)
	f.generator.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("taiga is down"))
	f.telegram.EXPECT().
		SendMessage(int64(42), "❌ Generation failed: taiga is down").
		Return(1, nil)

	err := f.impl.processCommand(context.Background(), commandUpdate("/cfd"))
	require.Error(t, err)
}

func TestHandleCFDRateLimited(t *testing.T) {
	f := newCommandFixture(t)
	// Replace the default limiter with one that denies everything after the
	// first call.
	f.impl.limiter = ratelimit.NewInMemoryLimiter(1, time.Hour, 1)

	f.telegram.EXPECT().SendMessage(int64(42), gomock.Any()).Return(1, nil)
	f.generator.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return(&domain.CFDRun{ID: 1, CSVPath: "/tmp/out.csv"}, nil)
	f.snapshots.EXPECT().GetByRunID(gomock.Any(), 1).Return(sampleSeries(), nil)
	f.telegram.EXPECT().SendMarkdownV2(int64(42), gomock.Any()).Return(nil)
	f.telegram.EXPECT().SendDocument(int64(42), "/tmp/out.csv").Return(nil)

	require.NoError(t, f.impl.processCommand(context.Background(), commandUpdate("/cfd")))

	f.telegram.EXPECT().
		SendMessage(int64(42), gomock.Any()).
		DoAndReturn(func(_ int64, text string) (int, error) {
			assert.Contains(t, text, "wait")
			return 1, nil
		})

	require.NoError(t, f.impl.processCommand(context.Background(), commandUpdate("/cfd")))
}

func TestHandleLatest(t *testing.T) {
	f := newCommandFixture(t)

	f.runRepo.EXPECT().
		GetLatestBySlug(gomock.Any(), "my-team").
		Return(&domain.CFDRun{ID: 9, ProjectSlug: "my-team"}, nil)
	f.snapshots.EXPECT().
		GetByRunID(gomock.Any(), 9).
		Return(sampleSeries(), nil)
	f.telegram.EXPECT().
		SendMarkdownV2(int64(42), gomock.Any()).
		Return(nil)

	err := f.impl.processCommand(context.Background(), commandUpdate("/latest"))
	require.NoError(t, err)
}

func TestHandleLatestExplicitSlug(t *testing.T) {
	f := newCommandFixture(t)

	f.runRepo.EXPECT().
		GetLatestBySlug(gomock.Any(), "other-team").
		Return(&domain.CFDRun{ID: 3}, nil)
	f.snapshots.EXPECT().GetByRunID(gomock.Any(), 3).Return(sampleSeries(), nil)
	f.telegram.EXPECT().SendMarkdownV2(int64(42), gomock.Any()).Return(nil)

	err := f.impl.processCommand(context.Background(), commandUpdate("/latest other-team"))
	require.NoError(t, err)
}

func TestHandleLatestNoRuns(t *testing.T) {
	f := newCommandFixture(t)

	f.runRepo.EXPECT().
		GetLatestBySlug(gomock.Any(), "my-team").
		Return(nil, run.ErrNotFound)
	f.telegram.EXPECT().
		SendMessage(int64(42), "No runs recorded yet for my-team. Use /cfd to generate one.").
		Return(1, nil)

	err := f.impl.processCommand(context.Background(), commandUpdate("/latest"))
	require.NoError(t, err)
}

func TestHandleProjects(t *testing.T) {
	f := newCommandFixture(t)

	f.telegram.EXPECT().
		SendMessage(int64(42), "Configured projects:\n• my-team\n").
		Return(1, nil)

	err := f.impl.processCommand(context.Background(), commandUpdate("/projects"))
	require.NoError(t, err)
}

func TestHandleHelp(t *testing.T) {
	f := newCommandFixture(t)

	f.telegram.EXPECT().
		SendMessage(int64(42), helpMessage).
		Return(1, nil)

	err := f.impl.processCommand(context.Background(), commandUpdate("/help"))
	require.NoError(t, err)
}

func TestUnknownCommand(t *testing.T) {
	f := newCommandFixture(t)

	f.telegram.EXPECT().
		SendMessage(int64(42), "Unknown command. Try /help.").
		Return(1, nil)

	err := f.impl.processCommand(context.Background(), commandUpdate("/frobnicate"))
	require.NoError(t, err)
}

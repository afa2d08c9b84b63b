package generatorimpl

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ydrgzm/taiga-cfd-bot/internal/cfd"
	"github.com/ydrgzm/taiga-cfd-bot/internal/domain"
	"github.com/ydrgzm/taiga-cfd-bot/internal/generator"
	mock_run "github.com/ydrgzm/taiga-cfd-bot/internal/repositories/run/mocks"
	mock_snapshot "github.com/ydrgzm/taiga-cfd-bot/internal/repositories/snapshot/mocks"
	mock_taiga "github.com/ydrgzm/taiga-cfd-bot/internal/taiga/mocks"
	mock_telegram "github.com/ydrgzm/taiga-cfd-bot/internal/telegram/mocks"
	"github.com/ydrgzm/taiga-cfd-bot/pkg/config"
	"github.com/ydrgzm/taiga-cfd-bot/pkg/logger"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	taiga     *mock_taiga.MockClient
	telegram  *mock_telegram.MockClient
	runs      *mock_run.MockRepository
	snapshots *mock_snapshot.MockRepository
	cfg       *config.Config
	impl      *GeneratorImpl
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		taiga:     mock_taiga.NewMockClient(ctrl),
		telegram:  mock_telegram.NewMockClient(ctrl),
		runs:      mock_run.NewMockRepository(ctrl),
		snapshots: mock_snapshot.NewMockRepository(ctrl),
		cfg:       &config.Config{},
	}
	f.cfg.CFD.OutputDir = t.TempDir()
	f.cfg.CFD.MonthsBack = 6
	f.cfg.CFD.Granularity = "daily"

	f.impl = New(Opts{
		Taiga:        f.taiga,
		Telegram:     f.telegram,
		RunRepo:      f.runs,
		SnapshotRepo: f.snapshots,
		Logger:       logger.Nop{},
		Config:       f.cfg,
	})
	return f
}

func testOptions() generator.GenerateOptions {
	return generator.GenerateOptions{
		ProjectSlug: "my-board",
		Window: domain.DateWindow{
			Start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
		},
		Granularity: cfd.Daily,
	}
}

func expectFetch(f *fixture) {
	f.taiga.EXPECT().GetProjectBySlug(gomock.Any(), "my-board").
		Return(&domain.Project{ID: 42, Slug: "my-board", Name: "My Board"}, nil)
	f.taiga.EXPECT().GetStatuses(gomock.Any(), 42).
		Return([]domain.Status{{ID: 1, Name: "New"}, {ID: 5, Name: "Done", IsClosed: true}}, nil)
	f.taiga.EXPECT().GetUserStories(gomock.Any(), 42, testOptions().Window.Start).
		Return([]domain.StoryRecord{
			{ID: 100, Ref: 1, CreatedDate: "2025-01-01T00:00:00Z", StatusID: 1},
			{ID: 101, Ref: 2, CreatedDate: "2025-01-03T00:00:00Z", StatusID: 5},
		}, nil)
}

func TestGenerate(t *testing.T) {
	f := newFixture(t)
	expectFetch(f)

	f.runs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(7, nil)
	f.snapshots.EXPECT().CreateBatch(gomock.Any(), 7, gomock.Len(3)).Return(nil)

	run, err := f.impl.Generate(context.Background(), testOptions())
	require.NoError(t, err)

	assert.Equal(t, 7, run.ID)
	assert.Equal(t, "my-board", run.ProjectSlug)
	assert.Equal(t, "daily", run.Granularity)
	assert.Equal(t, 3, run.Buckets)
	assert.Equal(t, 1, run.TotalStart)
	assert.Equal(t, 2, run.TotalEnd)

	data, err := os.ReadFile(run.CSVPath)
	require.NoError(t, err)
	assert.Equal(t, "date,total,Done,New\n2025-01-01,1,0,1\n2025-01-02,1,0,1\n2025-01-03,2,1,1\n", string(data))
}

func TestGenerateInvalidWindow(t *testing.T) {
	f := newFixture(t)

	opts := testOptions()
	opts.Window.Start, opts.Window.End = opts.Window.End, opts.Window.Start

	_, err := f.impl.Generate(context.Background(), opts)
	assert.ErrorIs(t, err, domain.ErrInvalidWindow)
}

func TestGenerateProjectLookupFailure(t *testing.T) {
	f := newFixture(t)
	f.taiga.EXPECT().GetProjectBySlug(gomock.Any(), "my-board").
		Return(nil, errors.New("api down"))

	_, err := f.impl.Generate(context.Background(), testOptions())
	assert.Error(t, err)
}

func TestGeneratePersistFailureKeepsCSV(t *testing.T) {
	f := newFixture(t)
	expectFetch(f)

	f.runs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(0, errors.New("db down"))

	run, err := f.impl.Generate(context.Background(), testOptions())
	require.NoError(t, err, "persistence is best effort once the CSV is written")
	assert.Zero(t, run.ID)
	assert.FileExists(t, run.CSVPath)
}

func TestGenerateDeliversToChannel(t *testing.T) {
	f := newFixture(t)
	f.cfg.Telegram.Channel = "team-flow"
	expectFetch(f)

	f.runs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(7, nil)
	f.snapshots.EXPECT().CreateBatch(gomock.Any(), 7, gomock.Any()).Return(nil)
	f.telegram.EXPECT().SendSummaryToChannel(gomock.Any())
	f.telegram.EXPECT().SendDocumentToChannel(gomock.Any()).Return(nil)

	_, err := f.impl.Generate(context.Background(), testOptions())
	require.NoError(t, err)
}

func TestGenerateTimestampedFilenames(t *testing.T) {
	f := newFixture(t)

	path, err := f.impl.saveCSV(testOptions(), domain.Series{})
	require.NoError(t, err)

	name := filepath.Base(path)
	assert.Regexp(t, `^cfd_data_my-board_daily_\d{8}_\d{6}\.csv$`, name)
}

func TestDefaultOptions(t *testing.T) {
	f := newFixture(t)

	opts := f.impl.DefaultOptions("my-board")
	assert.Equal(t, "my-board", opts.ProjectSlug)
	assert.Equal(t, cfd.Daily, opts.Granularity)
	assert.NoError(t, opts.Window.Validate())

	wantSpan := time.Duration(6*30) * 24 * time.Hour
	assert.InDelta(t, wantSpan.Hours(), opts.Window.End.Sub(opts.Window.Start).Hours(), 1)
}

package commandimpl

import (
	"time"

	"github.com/ydrgzm/taiga-cfd-bot/internal/command"
	"github.com/ydrgzm/taiga-cfd-bot/internal/generator"
	"github.com/ydrgzm/taiga-cfd-bot/internal/ratelimit"
	"github.com/ydrgzm/taiga-cfd-bot/internal/repositories/run"
	"github.com/ydrgzm/taiga-cfd-bot/internal/repositories/snapshot"
	"github.com/ydrgzm/taiga-cfd-bot/internal/telegram"
	"github.com/ydrgzm/taiga-cfd-bot/pkg/config"
	"github.com/ydrgzm/taiga-cfd-bot/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Generator    generator.Client
	Telegram     telegram.Client
	RunRepo      run.Repository
	SnapshotRepo snapshot.Repository
	Logger       logger.Logger
	Config       *config.Config
}

type CommandImpl struct {
	Generator    generator.Client
	Telegram     telegram.Client
	RunRepo      run.Repository
	SnapshotRepo snapshot.Repository
	Logger       logger.Logger
	Config       *config.Config

	limiter ratelimit.Limiter
}

func New(opts Opts) *CommandImpl {
	return &CommandImpl{
		Generator:    opts.Generator,
		Telegram:     opts.Telegram,
		RunRepo:      opts.RunRepo,
		SnapshotRepo: opts.SnapshotRepo,
		Logger:       opts.Logger,
		Config:       opts.Config,
		// One generation per minute per user, two back to back.
		limiter: ratelimit.NewInMemoryLimiter(1, time.Minute, 2),
	}
}

var _ command.Client = (*CommandImpl)(nil)

package generatorimpl

import (
	"github.com/ydrgzm/taiga-cfd-bot/internal/cfd"
	"github.com/ydrgzm/taiga-cfd-bot/internal/generator"
	"github.com/ydrgzm/taiga-cfd-bot/internal/repositories/run"
	"github.com/ydrgzm/taiga-cfd-bot/internal/repositories/snapshot"
	"github.com/ydrgzm/taiga-cfd-bot/internal/taiga"
	"github.com/ydrgzm/taiga-cfd-bot/internal/telegram"
	"github.com/ydrgzm/taiga-cfd-bot/pkg/config"
	"github.com/ydrgzm/taiga-cfd-bot/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Taiga        taiga.Client
	Telegram     telegram.Client
	RunRepo      run.Repository
	SnapshotRepo snapshot.Repository
	Logger       logger.Logger
	Config       *config.Config
}

type GeneratorImpl struct {
	Taiga        taiga.Client
	Telegram     telegram.Client
	RunRepo      run.Repository
	SnapshotRepo snapshot.Repository
	Logger       logger.Logger
	Config       *config.Config

	builder *cfd.Builder
}

func New(opts Opts) *GeneratorImpl {
	return &GeneratorImpl{
		Taiga:        opts.Taiga,
		Telegram:     opts.Telegram,
		RunRepo:      opts.RunRepo,
		SnapshotRepo: opts.SnapshotRepo,
		Logger:       opts.Logger,
		Config:       opts.Config,
		builder:      cfd.NewBuilder(opts.Logger),
	}
}

var _ generator.Client = (*GeneratorImpl)(nil)

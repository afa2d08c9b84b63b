package fx

import (
	"github.com/ydrgzm/taiga-cfd-bot/internal/repositories/run"
	"github.com/ydrgzm/taiga-cfd-bot/internal/repositories/snapshot"
	"go.uber.org/fx"
)

var Module = fx.Options(
	run.Module,
	snapshot.Module,
)

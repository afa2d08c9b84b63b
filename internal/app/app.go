package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/ydrgzm/taiga-cfd-bot/internal/command"
	"github.com/ydrgzm/taiga-cfd-bot/internal/command/commandimpl"
	"github.com/ydrgzm/taiga-cfd-bot/internal/generator"
	"github.com/ydrgzm/taiga-cfd-bot/internal/generator/generatorimpl"
	repositories "github.com/ydrgzm/taiga-cfd-bot/internal/repositories/fx"
	"github.com/ydrgzm/taiga-cfd-bot/internal/taiga"
	"github.com/ydrgzm/taiga-cfd-bot/internal/taiga/taigaimpl"
	"github.com/ydrgzm/taiga-cfd-bot/internal/telegram"
	"github.com/ydrgzm/taiga-cfd-bot/internal/telegram/telegramimpl"
	"github.com/ydrgzm/taiga-cfd-bot/pkg/config"
	"github.com/ydrgzm/taiga-cfd-bot/pkg/logger"
	"github.com/ydrgzm/taiga-cfd-bot/pkg/pgx"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		pgx.New,
	),
	fx.Provide(
		fx.Annotate(
			telegramimpl.New,
			fx.As(new(telegram.Client)),
		),
		fx.Annotate(
			taigaimpl.New,
			fx.As(new(taiga.Client)),
		),
		fx.Annotate(
			generatorimpl.New,
			fx.As(new(generator.Client)),
		),
		fx.Annotate(
			commandimpl.New,
			fx.As(new(command.Client)),
		),
	),
	repositories.Module,
	fx.Invoke(migrate),
	fx.Invoke(run),
)

func migrate(c *config.Config) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	db, err := sql.Open("postgres", c.GetDSN())
	if err != nil {
		return err
	}
	defer db.Close()

	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	return goose.Up(db, filepath.Join(wd, "migrations"))
}

func run(lc fx.Lifecycle, log logger.Logger, cfg *config.Config, tgClient telegram.Client,
	taigaClient taiga.Client, genClient generator.Client, cmdClient command.Client) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {

			go startHttpServer(log, cfg)

			ctx := context.Background()
			if err := taigaClient.Login(ctx); err != nil {
				log.Error("Taiga login error", "Error", err)
				tgClient.SendMessageToUser("Taiga login error: " + err.Error())
				return err
			}

			if err := genClient.ScheduleGeneration(ctx); err != nil {
				log.Error("Schedule generation error", "Error", err)
				tgClient.SendMessageToUser("Schedule generation error: " + err.Error())
			}

			if err := genClient.ScheduleCleanup(ctx); err != nil {
				log.Error("Schedule cleanup error", "Error", err)
				tgClient.SendMessageToUser("Schedule cleanup error: " + err.Error())
			}

			go func() {
				if err := cmdClient.HandleCommand(ctx); err != nil {
					log.Error("Command handler stopped", "Error", err)
					tgClient.SendMessageToUser("Command handler stopped: " + err.Error())
				}
			}()

			return nil
		},
	})
}

func startHttpServer(log logger.Logger, cfg *config.Config) {
	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		healthCheckHandler(w, r, log)
	})

	log.Info(fmt.Sprintf("Starting server on :%d", cfg.App.Port))

	if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.App.Port), nil); err != nil {
		log.Error("Server failed to start: %v", err)
	}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request, logger logger.Logger) {
	logger.Info("Health check request received", "Method", r.Method, "URL", r.URL.String())
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Error("Failed to write response", "Error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

package config

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryDSN string `env:"SENTRY_DSN"`
	}
	Postgres struct {
		Port    int    `env:"POSTGRES_PORT" env-default:"5432"`
		Host    string `env:"POSTGRES_HOST" env-default:"localhost"`
		User    string `env:"POSTGRES_USER"`
		Pass    string `env:"POSTGRES_PASS"`
		Name    string `env:"POSTGRES_NAME"`
		SslMode string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	}
	Taiga struct {
		BaseURL      string `env:"TAIGA_BASE_URL" env-default:"https://api.taiga.io"`
		Username     string `env:"TAIGA_USERNAME"`
		Password     string `env:"TAIGA_PASSWORD"`
		TokenPath    string `env:"TAIGA_TOKEN_PATH" env-default:"./taiga-token.json"`
		ProjectSlugs string `env:"TAIGA_PROJECT_SLUGS"`
		PageSize     int    `env:"TAIGA_PAGE_SIZE" env-default:"100"`
		MaxPages     int    `env:"TAIGA_MAX_PAGES" env-default:"20"`
	}
	CFD struct {
		OutputDir     string `env:"CFD_OUTPUT_DIR" env-default:"./cfd-data"`
		Granularity   string `env:"CFD_GRANULARITY" env-default:"daily"`
		MonthsBack    int    `env:"CFD_MONTHS_BACK" env-default:"6"`
		IntervalHours int    `env:"CFD_INTERVAL_HOURS" env-default:"24"`
		RetentionDays int    `env:"CFD_RETENTION_DAYS" env-default:"90"`
	}
	Telegram struct {
		User    int64  `env:"TELEGRAM_USER"`
		Token   string `env:"TELEGRAM_TOKEN"`
		Channel string `env:"TELEGRAM_CHANNEL"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}

// GetDSN returns the postgres connection string used by goose and database/sql.
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Postgres.User,
		c.Postgres.Pass,
		c.Postgres.Host,
		c.Postgres.Port,
		c.Postgres.Name,
		c.Postgres.SslMode,
	)
}

// ProjectSlugList splits the comma-separated TAIGA_PROJECT_SLUGS value.
func (c *Config) ProjectSlugList() []string {
	var slugs []string
	for _, s := range strings.Split(c.Taiga.ProjectSlugs, ",") {
		if s = strings.TrimSpace(s); s != "" {
			slugs = append(slugs, s)
		}
	}
	return slugs
}

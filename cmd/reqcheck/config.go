package main

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/reqcheck/pkg/config"
	"github.com/dmitrymomot/reqcheck/pkg/httpserver"
	"github.com/dmitrymomot/reqcheck/pkg/i18n"
	"github.com/dmitrymomot/reqcheck/pkg/metrics"
	"github.com/dmitrymomot/reqcheck/pkg/validator"
)

type appConfig struct {
	Env              string   `env:"APP_ENV" envDefault:"development"`
	AppName          string   `env:"APP_NAME" envDefault:"reqcheck"`
	LogLevel         string   `env:"LOG_LEVEL" envDefault:"info"`
	DefaultLocale    string   `env:"DEFAULT_LOCALE" envDefault:"en"`
	SupportedLocales []string `env:"SUPPORTED_LOCALES" envDefault:"en,de" envSeparator:","`
	TranslationsDir  string   `env:"TRANSLATIONS_DIR"`
	MaxBodyBytes     int64    `env:"MAX_BODY_BYTES" envDefault:"1048576"`

	HTTP    httpserver.Config
	Metrics metrics.Config
}

func loadConfig() (appConfig, error) {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return appConfig{}, err
	}
	if cfg.DefaultLocale == "" {
		return appConfig{}, errors.New("DEFAULT_LOCALE must not be empty")
	}
	return cfg, nil
}

// newTranslator loads the bundled catalogs, or the ones in TRANSLATIONS_DIR when set.
func newTranslator(ctx context.Context, cfg appConfig, log *slog.Logger) (*i18n.Translator, error) {
	var adapter i18n.TranslationAdapter = i18n.NewFSAdapter(i18n.NewYAMLParser(), validator.Locales, "locales")
	if cfg.TranslationsDir != "" {
		adapter = i18n.NewDirectoryAdapter(i18n.NewYAMLParser(), cfg.TranslationsDir)
	}

	return i18n.NewTranslator(ctx, adapter,
		i18n.WithDefaultLanguage(cfg.DefaultLocale),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(true),
	)
}

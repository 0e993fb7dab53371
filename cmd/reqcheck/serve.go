package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/reqcheck/modules/project"
	"github.com/dmitrymomot/reqcheck/pkg/binder"
	"github.com/dmitrymomot/reqcheck/pkg/handler"
	"github.com/dmitrymomot/reqcheck/pkg/httpserver"
	"github.com/dmitrymomot/reqcheck/pkg/i18n"
	"github.com/dmitrymomot/reqcheck/pkg/logger"
	"github.com/dmitrymomot/reqcheck/pkg/metrics"
	"github.com/dmitrymomot/reqcheck/pkg/requestid"
	"github.com/dmitrymomot/reqcheck/pkg/validator"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service",
		Long: `Serve the project API:

  POST /v1/projects       create a project, 422 with the full report on invalid input
  GET  /v1/projects/{id}  fetch a project
  GET  /metrics           Prometheus metrics (METRICS_ENABLED)
  GET  /healthz           liveness
  GET  /readyz            readiness`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(ctx context.Context, cfg appConfig) error {
	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.AppName),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			logger.FromContextOr("lang", func(ctx context.Context) string { return i18n.LocaleOr(ctx, "") }),
		),
	)
	logger.SetAsDefault(log)

	tr, err := newTranslator(ctx, cfg, log.With(logger.Component("i18n")))
	if err != nil {
		return err
	}
	validator.SetDefaultPolicy(validator.NewTranslatedPolicy(tr, cfg.DefaultLocale))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if cfg.TranslationsDir != "" {
		go func() {
			err := i18n.Watch(ctx, cfg.TranslationsDir, tr, i18n.WatchOptions{Logger: log.With(logger.Component("i18n"))})
			if err != nil {
				log.Error("translation watcher stopped", logger.Error(err))
			}
		}()
	}

	router, m := newRouter(cfg, tr, log)
	if m != nil {
		log.Info("metrics enabled", "namespace", cfg.Metrics.Namespace)
	}

	srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, router); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// newRouter wires the HTTP surface. The returned metrics are nil when disabled.
func newRouter(cfg appConfig, tr *i18n.Translator, log *slog.Logger) (http.Handler, *metrics.ValidationMetrics) {
	var m *metrics.ValidationMetrics
	if cfg.Metrics.Enabled {
		m = metrics.NewValidationMetrics(cfg.Metrics.Namespace, nil)
	}

	supported := cfg.SupportedLocales
	if len(supported) == 0 {
		supported = tr.SupportedLanguages()
	}
	extract := i18n.DefaultLangExtractor(i18n.WithSupportedLanguages(supported...))

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(i18n.Middleware(func(r *http.Request) string {
		if lang := extract(r); lang != "" {
			return lang
		}
		return cfg.DefaultLocale
	}))

	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log, func(context.Context) error {
		if len(tr.SupportedLanguages()) == 0 {
			return errors.New("translation catalog is empty")
		}
		return nil
	}))
	if m != nil {
		r.Handle("/metrics", m.Handler())
	}

	r.Mount("/v1/projects", project.Router(project.RouterOptions{
		Storage: project.NewMemoryStorage(),
		Logger:  log.With(logger.Component("project")),
		HandlerOptions: []handler.Option{
			handler.WithBinder(binder.JSON(binder.WithMaxBodySize(cfg.MaxBodyBytes))),
			handler.WithPolicyResolver(handler.LocalePolicy(tr, cfg.DefaultLocale)),
			handler.WithMetrics(m),
		},
	}))

	return r, m
}

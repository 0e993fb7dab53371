package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/reqcheck/pkg/binder"
	"github.com/dmitrymomot/reqcheck/pkg/i18n"
	"github.com/dmitrymomot/reqcheck/pkg/logger"
	"github.com/dmitrymomot/reqcheck/pkg/metrics"
	"github.com/dmitrymomot/reqcheck/pkg/validator"
)

// HandlerFunc handles a request that already passed validation.
type HandlerFunc[R any] func(ctx context.Context, req R) Response

// Bind decodes a request into v.
type Bind func(r *http.Request, v any) error

// PolicyResolver picks the message policy for a request.
type PolicyResolver func(r *http.Request) validator.MessagePolicy

// ErrorHandler writes the response for a request that failed before
// validation (binding) or after it (rendering).
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Option configures Validated.
type Option func(*config)

type config struct {
	bind         Bind
	policy       PolicyResolver
	errorHandler ErrorHandler
	log          *slog.Logger
	metrics      *metrics.ValidationMetrics
}

// WithBinder replaces the default binder.JSON().
func WithBinder(b Bind) Option {
	return func(c *config) {
		if b != nil {
			c.bind = b
		}
	}
}

// WithPolicyResolver selects the message policy per request. Without it the
// process-wide default policy is used.
func WithPolicyResolver(p PolicyResolver) Option {
	return func(c *config) {
		if p != nil {
			c.policy = p
		}
	}
}

func WithErrorHandler(h ErrorHandler) Option {
	return func(c *config) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

// WithMetrics records every validation pass on m.
func WithMetrics(m *metrics.ValidationMetrics) Option {
	return func(c *config) { c.metrics = m }
}

// LocalePolicy resolves a TranslatedPolicy for the language stored in the
// request context by i18n.Middleware, or fallback when none was stored.
func LocalePolicy(tr validator.Translator, fallback string) PolicyResolver {
	return func(r *http.Request) validator.MessagePolicy {
		return validator.NewTranslatedPolicy(tr, i18n.LocaleOr(r.Context(), fallback))
	}
}

// DefaultErrorHandler renders err as an ErrorBody with the status derived
// from the error: 415 for content type problems, 413 for oversized bodies,
// 400 for malformed JSON and 500 otherwise.
func DefaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	httpErr := classify(err)
	msg := ""
	if httpErr.Status < http.StatusInternalServerError && httpErr.Err != nil {
		msg = httpErr.Err.Error()
	}
	_ = Error(httpErr.Status, httpErr.Code, msg, nil).Render(w, r)
}

// Validated turns h into an http.Handler that binds R from the request,
// runs its Validate method against a fresh report and either answers
// 422 with the report or calls h with the accepted value.
//
//	r.Post("/projects", handler.Validated(createProject,
//	    handler.WithPolicyResolver(handler.LocalePolicy(tr, "en")),
//	))
func Validated[R any, PR interface {
	*R
	validator.Validatable
}](h HandlerFunc[R], opts ...Option) http.Handler {
	cfg := &config{
		bind:         binder.JSON(),
		policy:       func(*http.Request) validator.MessagePolicy { return validator.DefaultPolicy() },
		errorHandler: DefaultErrorHandler,
		log:          logger.Nop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req R
		if err := cfg.bind(r, &req); err != nil {
			cfg.log.DebugContext(ctx, "request binding failed", logger.Component("handler"), logger.Error(err))
			cfg.errorHandler(w, r, err)
			return
		}

		errs := validator.NewErrors(validator.WithPolicy(cfg.policy(r)))
		PR(&req).Validate(errs, "")
		cfg.metrics.Observe(errs)

		if errs.IsNotEmpty() {
			cfg.log.WarnContext(ctx, "request rejected",
				logger.Component("handler"),
				slog.String("path", r.URL.Path),
				slog.Any("failures", errs),
			)
			if err := ValidationFailed(errs).Render(w, r); err != nil {
				cfg.log.ErrorContext(ctx, "failed to render response", logger.Error(err))
			}
			return
		}

		resp := h(ctx, req)
		if resp == nil {
			cfg.errorHandler(w, r, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			cfg.log.ErrorContext(ctx, "failed to render response", logger.Component("handler"), logger.Error(err))
		}
	})
}

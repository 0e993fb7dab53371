// Package logger builds *slog.Logger instances with functional options and
// injects request-scoped values from context.Context into every record.
//
// New creates a text or JSON handler, applies static attributes and wraps it
// in LogHandlerDecorator, which runs the registered ContextExtractor callbacks
// on each Handle call:
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, cfg.AppName),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
// Attribute helpers keep key names consistent across the service. Error and
// RequestID return an empty Attr for empty input, so they can be passed
// unconditionally:
//
//	log.ErrorContext(ctx, "render failed", logger.RequestID(id), logger.Error(err))
package logger

// Package logger builds *slog.Logger values with consistent defaults and
// attribute names for the campaign service.
//
// New accepts functional options: WithEnvironment selects a profile (text at
// debug level for development, JSON at info level otherwise), WithConfig
// applies LOG_LEVEL / LOG_FORMAT overrides, and WithContextExtractors injects
// request scoped values such as the request id on every record.
//
//	log := logger.New(
//	    logger.WithEnvironment(env, "campaign"),
//	    logger.WithConfig(cfg.Log),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "lead submitted",
//	    logger.Funnel("student"),
//	    logger.Lead(name, email, phone),
//	)
//
// Attribute helpers return an empty slog.Attr for nil or empty input, which
// slog drops, so callers can pass them unconditionally. Lead masks personal
// data with pkg/sanitizer.
package logger

// Package environment propagates the application environment (development,
// staging, production) through context.Context, HTTP requests and structured
// logs.
//
// Parse turns the configured APP_ENV value into an Environment, accepting the
// short forms "prod", "stage" and "dev". Middleware attaches the value to
// every request context and LoggerExtractor exposes it to pkg/logger:
//
//	env := environment.Parse(cfg.AppEnv)
//	log := logger.New(
//	    logger.WithEnvironment(env, "campaign"),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	router.Use(environment.Middleware(env))
//
// Missing values resolve to the zero value ("").
package environment

// Package httpserver runs an http.Handler with sane timeouts, graceful
// shutdown and structured lifecycle logs, and provides JSON liveness and
// readiness handlers.
//
// Run blocks until the context is cancelled or SIGINT/SIGTERM arrives, then
// drains in-flight requests for at most the configured shutdown timeout:
//
//	srv := httpserver.NewFromConfig(cfg.Server,
//	    httpserver.WithLogger(log),
//	    httpserver.WithStopHook(func(*slog.Logger) { rdb.Close() }),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server failed", logger.Error(err))
//	}
//
// Errors are joined with the ErrStart and ErrShutdown sentinels.
package httpserver

// Package httpserver runs an http.Handler until its context is cancelled and
// then shuts down gracefully within Config.ShutdownTimeout.
//
//	srv := httpserver.New(cfg.HTTP, log)
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server failed", logger.Error(err))
//	}
package httpserver

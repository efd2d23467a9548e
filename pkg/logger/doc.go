// Package logger builds *slog.Logger instances with environment presets,
// context attribute extraction and consistent attribute helpers.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "walletdesk"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "toast presented",
//	    logger.ToastID(h.ID()),
//	    logger.Category(req.Category),
//	)
//
// Development uses text output at debug level; staging and production use JSON
// at info level. Error and CustomerID return an empty attribute for zero
// values so call sites need no nil checks.
package logger

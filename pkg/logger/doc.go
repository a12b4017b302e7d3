// Package logger builds the *slog.Logger used by the basenames CLI and HTTP
// API. It is a thin layer over log/slog that adds functional options, a
// handler decorator injecting request-scoped values from context, and
// attribute helpers so every component logs bases, abbreviations and errors
// under the same keys.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "basenames"),
//	    logger.WithOutput(os.Stderr),
//	    logger.WithContextExtractors(namingapi.RequestIDExtractor()),
//	)
//	log.InfoContext(ctx, "named base", logger.Base(60), logger.Name("hexagesimal"))
//
// # Configuration
//
//   - WithEnvironment – development (text, debug) or production (json, info).
//   - WithLevel / WithLevelName – minimum level.
//   - WithFormat – "text" or "json".
//   - WithOutput – destination writer, stdout by default.
//   - WithAttr – static attributes on every record.
//   - WithContextExtractors – dynamic attributes pulled from the context.
//
// # Error Handling
//
// Error returns an empty attribute for a nil error, so
//
//	log.Info("listing finished", logger.Error(err))
//
// needs no nil check. WithFormat and WithLevelName panic on values they do
// not understand; a misconfigured logger should stop the program at startup.
package logger

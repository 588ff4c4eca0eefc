// Package logging builds the service's structured loggers.
//
// All output is slog: JSON lines in production (NewLogger), text for local
// runs (NewTextLogger), level chosen by LOG_LEVEL. Helpers attach the
// request ID from context and pass loggers through context so handlers,
// use cases and the fetcher log under one correlated stream.
//
//	logger := logging.NewLogger()
//	logger.Info("server starting", slog.String("addr", addr))
//
//	func handle(ctx context.Context) {
//	    logger := logging.WithRequestID(ctx, slog.Default())
//	    logger.Info("summarizing")
//	}
package logging

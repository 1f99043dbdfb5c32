// Package logger builds *slog.Logger values for the validation engine and its
// hosts, and keeps attribute names consistent across packages.
//
// New creates a logger from functional options: output format (JSON or
// text), level, static attributes and context extractors that pull
// request-scoped values (such as a request id) into every record. Environment
// presets pick sensible defaults:
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "playground"),
//	    logger.WithContextValue("request_id", middleware.RequestIDKey),
//	)
//	log.DebugContext(ctx, "field blurred", logger.FormID(id), logger.Field("age"))
//
// Library code that must not write anywhere by default uses NewNop.
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger

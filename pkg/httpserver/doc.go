// Package httpserver runs the playground HTTP server with graceful shutdown.
//
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil { ... }
//
// Run blocks until ctx is cancelled, SIGINT or SIGTERM arrives, or the
// listener fails. Errors wrap ErrStart and ErrShutdown.
//
// Readiness reports 200 "READY" when every check passes and 503
// "NOT_READY" otherwise; with no checks it is a liveness check answering
// "ALIVE".
package httpserver

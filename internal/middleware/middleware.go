// Package middleware holds the Echo middleware shared by all routes.
//
// It covers request ids, the request-scoped logger, request logging,
// CORS, secure headers, rate limiting, New Relic tracing, panic recovery
// and the global error handler.
package middleware

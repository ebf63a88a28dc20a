// Package middleware holds the echo middleware applied around the API:
// request ids, request-scoped logging, tracing, rate limiting, CORS, panic
// recovery and the global error handler.
package middleware

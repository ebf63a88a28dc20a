// Package service sits between the HTTP handlers and the repositories.
//
// Repositories report absence as a nil result or a zero affected-count;
// the services turn that into a not-found error the handlers can return
// as-is. Everything else passes through unchanged.
package service

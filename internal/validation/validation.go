// Package validation binds request data and validates it.
//
// It uses the `validator` library to enforce rules defined in struct tags
// and turns validation failures into field errors the client can read.
package validation

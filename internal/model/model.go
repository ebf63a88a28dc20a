// Package model holds the row types persisted by the repositories and the
// argument types used to create and patch them.
package model

// Package sqlerr translates database driver errors.
//
// It parses SQLSTATE codes reported by PostgreSQL and converts them into
// client-facing errs.HTTPError values, e.g. a unique violation becomes a
// 409 Conflict.
package sqlerr

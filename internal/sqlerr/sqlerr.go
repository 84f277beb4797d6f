// Package sqlerr handles database driver errors.
//
// It classifies errors coming from PostgreSQL (pgconn), gorm, and the SQLite
// driver into a small set of codes and converts them into user-friendly
// HTTP errors (e.g. a foreign key violation becomes a 400 Bad Request).
package sqlerr

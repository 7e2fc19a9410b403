// Package postgres implements the store interfaces on PostgreSQL through
// the pgx database/sql driver. It also owns the embedded schema
// migrations and the goose runner that applies them.
package postgres

// Package history persists validation outcomes.
//
// Two Store implementations are provided: a SQLite-backed store for
// durable single-instance deployments and an in-memory store for tests
// and ephemeral use. A Pruner deletes records past the configured
// retention window on a cron schedule.
package history

// Package db contains the data-access layer for StaffDB.
//
// The package centers on a Bun-backed implementation of the Store interface
// and a handful of package-level helpers that make it easy to inject fakes
// for tests while keeping one production code path.
//
// Layout
//   - `db.go` bootstraps the store: driver selection, pool configuration,
//     embedded migrations, and the package-level convenience wrappers.
//   - `txn.go` is the unit-of-work wrapper. Every operation in this package
//     runs inside exactly one `WithTx`/`WithReadTx` scope: begin, execute,
//     commit on success, roll back on any failure.
//   - `bun_adapter.go` holds the low-level Bun helpers (used for SQL
//     queries); `bun_store.go` assembles them into the Store implementation
//     shared by every engine.
//   - `finder.go` is the derived-finder registry: FindBy<Field> names are
//     mapped onto filter predicates once at startup and validated there.
//   - `errors.go` defines the failure taxonomy surfaced to callers.
//
// Testing notes
//   - Prefer `db.InitDB("sqlite", "file:NAME?mode=memory&cache=shared")` in
//     tests that need real DB semantics and migrations.
//   - For unit tests that don't need a DB, implement the Store interface and
//     swap it in with `SetStoreForTests`.
package db

// Package store manages the relational question archive backed by SQLite.
//
// It owns the schema, applies embedded migrations on open, and exposes
// explicit find/insert methods for every table the migrator touches. The
// dedup-critical surface (FindTossupByHash, FindBonusByHash, the insert
// methods for question, body, hash index, and placement rows) is consumed
// through an interface in the ingest package so the dedup logic can be
// tested against an in-memory fake.
//
// The store assumes a single writer: callers hold the run lock for the
// duration of a migration.
package store

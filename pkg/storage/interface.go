// Package storage defines the persistence interfaces the monitoring pipeline
// relies on. It abstracts record access and transaction management so
// different backends (e.g. PostgreSQL) can provide concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage is a composite interface that includes every domain-specific
// storage capability required by the application.
type AllStorage interface {
	WebsiteStorage
	ScanStorage
	JobStorage
}

// TxStorage is a storage handle bound to a database transaction. It exposes
// the same capabilities as AllStorage plus commit/rollback. Implementations
// become unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage is a non-transactional handle with the ability to start
// transactions and manage the backing connection lifecycle.
type Storage interface {
	AllStorage

	// Close releases resources held by the implementation (e.g. the
	// connection pool). The instance must not be used afterwards.
	Close() error

	// Begin starts a new transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes cb with a transactional handle,
	// then commits on success or rolls back when cb returns an error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}

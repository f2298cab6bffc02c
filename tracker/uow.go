// Package tracker provides a small unit of work over GORM. The seed loader
// uses one unit per commit scope: all customers in a single transaction,
// then each order row in its own, so a rejected row rolls back alone.
package tracker

import (
	"context"
	"sync"

	"gorm.io/gorm"
)

// Tx is a minimal transaction interface that hides GORM from queued
// operations.
type Tx interface {
	Create(value any) error
	Save(value any) error
	Delete(value any, conds ...any) error
}

type gormTx struct{ db *gorm.DB }

func (t gormTx) Create(value any) error               { return t.db.Create(value).Error }
func (t gormTx) Save(value any) error                 { return t.db.Save(value).Error }
func (t gormTx) Delete(value any, conds ...any) error { return t.db.Delete(value, conds...).Error }

// Operation is a deferred operation executed inside the transaction at commit
// time. Returning an error rolls the whole unit back.
type Operation func(tx Tx) error

// UnitOfWork collects tracked entities and deferred operations and applies
// them in a single transaction on SaveChanges. A failed commit leaves the
// queue intact so the caller can inspect or retry; Clear discards it.
type UnitOfWork struct {
	root *gorm.DB

	ops      []Operation
	toCreate []any
	toUpdate []any
	toDelete []any

	// afterCommit and afterRollback run outside the transaction, on the
	// matching outcome only.
	afterCommit   []func()
	afterRollback []func()

	mu sync.Mutex
}

// New creates a UnitOfWork on the given root connection. No transaction is
// started until SaveChanges.
func New(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{root: db}
}

// Do queues a custom operation for commit time.
func (u *UnitOfWork) Do(op Operation) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.ops = append(u.ops, op)
}

// Add tracks an entity to be created on commit.
func (u *UnitOfWork) Add(entity any) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.toCreate = append(u.toCreate, entity)
}

// Update tracks an entity to be saved on commit.
func (u *UnitOfWork) Update(entity any) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.toUpdate = append(u.toUpdate, entity)
}

// RegisterDelete tracks an entity to be deleted on commit.
func (u *UnitOfWork) RegisterDelete(entity any) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.toDelete = append(u.toDelete, entity)
}

// AfterCommit registers a callback to run after a successful commit.
func (u *UnitOfWork) AfterCommit(cb func()) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.afterCommit = append(u.afterCommit, cb)
}

// AfterRollback registers a callback to run after a rollback.
func (u *UnitOfWork) AfterRollback(cb func()) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.afterRollback = append(u.afterRollback, cb)
}

// SaveChanges commits all tracked changes in a single transaction.
func (u *UnitOfWork) SaveChanges(ctx context.Context) error { return u.Commit(ctx) }

// Commit begins a transaction and applies creates, updates, deletes and
// queued operations, in that order. On error everything rolls back and the
// pending work stays queued.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	u.mu.Lock()
	ops := append([]Operation(nil), u.ops...)
	creates := append([]any(nil), u.toCreate...)
	updates := append([]any(nil), u.toUpdate...)
	deletes := append([]any(nil), u.toDelete...)
	afterCommit := append([]func(){}, u.afterCommit...)
	afterRollback := append([]func(){}, u.afterRollback...)
	u.mu.Unlock()

	txErr := u.root.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, e := range creates {
			if err := tx.Create(e).Error; err != nil {
				return err
			}
		}
		for _, e := range updates {
			if err := tx.Save(e).Error; err != nil {
				return err
			}
		}
		for _, e := range deletes {
			if err := tx.Delete(e).Error; err != nil {
				return err
			}
		}
		for _, op := range ops {
			if err := op(gormTx{db: tx}); err != nil {
				return err
			}
		}
		return nil
	})

	if txErr != nil {
		runSafely(afterRollback)
		return txErr
	}

	u.Clear()
	runSafely(afterCommit)
	return nil
}

// runSafely runs callbacks best-effort; a panicking callback must not mask
// the commit outcome.
func runSafely(cbs []func()) {
	for _, cb := range cbs {
		func() {
			defer func() { _ = recover() }()
			cb()
		}()
	}
}

// Clear discards all pending operations and tracked entities.
func (u *UnitOfWork) Clear() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.ops = nil
	u.toCreate = nil
	u.toUpdate = nil
	u.toDelete = nil
	u.afterCommit = nil
	u.afterRollback = nil
}

// HasPending reports whether any queued operations or tracked changes remain.
func (u *UnitOfWork) HasPending() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.ops) > 0 || len(u.toCreate) > 0 || len(u.toUpdate) > 0 || len(u.toDelete) > 0
}

// First fetches the first record matching the conditions into out.
func (u *UnitOfWork) First(ctx context.Context, out any, conds ...any) error {
	return u.root.WithContext(ctx).First(out, conds...).Error
}

// PreloadFirst preloads associations and fetches the first record by primary
// key.
func (u *UnitOfWork) PreloadFirst(ctx context.Context, out any, id any, preloads ...string) error {
	db := u.root.WithContext(ctx)
	for _, p := range preloads {
		db = db.Preload(p)
	}
	return db.First(out, id).Error
}

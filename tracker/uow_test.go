package tracker

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type note struct {
	ID   uint `gorm:"primaryKey"`
	Body string
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "tracker.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := db.AutoMigrate(&note{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func countNotes(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var n int64
	if err := db.Model(&note{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestSaveChangesAppliesTrackedEntities(t *testing.T) {
	db := openTestDB(t)
	u := New(db)

	u.Add(&note{Body: "first"})
	u.Add(&note{Body: "second"})
	if !u.HasPending() {
		t.Fatal("expected pending work before commit")
	}

	if err := u.SaveChanges(context.Background()); err != nil {
		t.Fatalf("save changes: %v", err)
	}
	if n := countNotes(t, db); n != 2 {
		t.Fatalf("expected 2 notes, got %d", n)
	}
	if u.HasPending() {
		t.Fatal("expected queue cleared after commit")
	}
}

func TestFailingOperationRollsBackEverything(t *testing.T) {
	db := openTestDB(t)
	u := New(db)

	boom := errors.New("boom")
	u.Add(&note{Body: "doomed"})
	u.Do(func(Tx) error { return boom })

	err := u.SaveChanges(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected operation error, got %v", err)
	}
	if n := countNotes(t, db); n != 0 {
		t.Fatalf("expected rollback to remove all rows, got %d", n)
	}
	// The queue survives a failed commit for inspection or retry.
	if !u.HasPending() {
		t.Fatal("expected pending work after rollback")
	}

	u.Clear()
	if u.HasPending() {
		t.Fatal("expected empty queue after Clear")
	}
}

func TestUpdateAndDelete(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	n := note{Body: "draft"}
	u := New(db)
	u.Add(&n)
	if err := u.SaveChanges(ctx); err != nil {
		t.Fatalf("create: %v", err)
	}

	n.Body = "final"
	u2 := New(db)
	u2.Update(&n)
	if err := u2.SaveChanges(ctx); err != nil {
		t.Fatalf("update: %v", err)
	}

	var got note
	if err := New(db).First(ctx, &got, n.ID); err != nil {
		t.Fatalf("read back: %v", err)
	}
	if got.Body != "final" {
		t.Fatalf("expected updated body, got %q", got.Body)
	}

	u3 := New(db)
	u3.RegisterDelete(&n)
	if err := u3.SaveChanges(ctx); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if c := countNotes(t, db); c != 0 {
		t.Fatalf("expected note deleted, got %d rows", c)
	}
}

func TestCallbacksFireOnMatchingOutcome(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	var committed, rolledBack bool

	u := New(db)
	u.Add(&note{Body: "ok"})
	u.AfterCommit(func() { committed = true })
	u.AfterRollback(func() { rolledBack = true })
	if err := u.SaveChanges(ctx); err != nil {
		t.Fatalf("save changes: %v", err)
	}
	if !committed || rolledBack {
		t.Fatalf("expected commit callback only, got commit=%v rollback=%v", committed, rolledBack)
	}

	committed, rolledBack = false, false
	u2 := New(db)
	u2.Do(func(Tx) error { return errors.New("boom") })
	u2.AfterCommit(func() { committed = true })
	u2.AfterRollback(func() { rolledBack = true })
	if err := u2.SaveChanges(ctx); err == nil {
		t.Fatal("expected commit to fail")
	}
	if committed || !rolledBack {
		t.Fatalf("expected rollback callback only, got commit=%v rollback=%v", committed, rolledBack)
	}
}

func TestOperationsRunThroughTx(t *testing.T) {
	db := openTestDB(t)
	u := New(db)

	u.Do(func(tx Tx) error {
		return tx.Create(&note{Body: "via op"})
	})
	if err := u.SaveChanges(context.Background()); err != nil {
		t.Fatalf("save changes: %v", err)
	}
	if n := countNotes(t, db); n != 1 {
		t.Fatalf("expected 1 note, got %d", n)
	}
}

package store

import (
	"context"
	"testing"
)

func TestSeedCommitsValidRowsOnly(t *testing.T) {
	db := openTestDB(t)
	if err := Define(db); err != nil {
		t.Fatalf("define: %v", err)
	}

	res, err := Seed(context.Background(), db)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	if res.Customers != 4 {
		t.Fatalf("expected 4 customers seeded, got %d", res.Customers)
	}
	if res.Orders != 3 {
		t.Fatalf("expected 3 orders committed, got %d", res.Orders)
	}
	if n := countRows(t, db, "customers"); n != 4 {
		t.Fatalf("expected 4 customer rows, got %d", n)
	}
	// Per-row policy: the rejected insert must not take the preceding
	// rows down with it.
	if n := countRows(t, db, "orders"); n != 3 {
		t.Fatalf("expected 3 order rows, got %d", n)
	}
}

func TestSeedSurfacesReferentialRejection(t *testing.T) {
	db := openTestDB(t)
	if err := Define(db); err != nil {
		t.Fatalf("define: %v", err)
	}

	res, err := Seed(context.Background(), db)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	if len(res.Rejected) != 1 {
		t.Fatalf("expected 1 rejected order, got %d", len(res.Rejected))
	}
	rej := res.Rejected[0]
	if rej.Order.CustomerID != 5 {
		t.Fatalf("expected rejection for customer 5, got %d", rej.Order.CustomerID)
	}
	if !IsForeignKeyViolation(rej.Err) {
		t.Fatalf("expected foreign-key violation, got %v", rej.Err)
	}
}

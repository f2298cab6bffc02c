package store

import (
	"context"
	"fmt"
	"time"

	"custorders/tracker"

	"gorm.io/gorm"
)

// RejectedOrder records a seed row refused by the referential-integrity check.
type RejectedOrder struct {
	Err   error
	Order Order
}

// SeedResult reports what the seed committed and what it refused.
type SeedResult struct {
	Rejected  []RejectedOrder
	Customers int
	Orders    int
}

// seedDate pins the sample orders to a fixed calendar day so repeated runs
// produce identical rows.
var seedDate = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

// SeedCustomers returns the canonical customer rows.
func SeedCustomers() []Customer {
	return []Customer{
		{ID: 1, Name: "Alice", City: "New York"},
		{ID: 2, Name: "Bob", City: "Los Angeles"},
		{ID: 3, Name: "Charlie", City: "Chicago"},
		{ID: 4, Name: "David", City: "Houston"},
	}
}

// SeedOrders returns the canonical order rows. The last row references
// customer 5, which does not exist; inserting it must fail.
func SeedOrders() []Order {
	return []Order{
		{ID: 1, CustomerID: 1, OrderDate: seedDate, Amount: 250},
		{ID: 2, CustomerID: 1, OrderDate: seedDate.AddDate(0, 0, 4), Amount: 180},
		{ID: 3, CustomerID: 2, OrderDate: seedDate.AddDate(0, 0, 9), Amount: 300},
		{ID: 4, CustomerID: 5, OrderDate: seedDate.AddDate(0, 0, 11), Amount: 90},
	}
}

// Seed loads the sample dataset. Customers go in as a single unit-of-work
// commit. Orders are committed one row at a time, so a rejected row leaves
// the preceding rows in place; referential-integrity rejections are reported
// in the result rather than aborting the seed, any other failure does abort.
func Seed(ctx context.Context, db *gorm.DB) (SeedResult, error) {
	var res SeedResult

	uow := tracker.New(db)
	customers := SeedCustomers()
	for i := range customers {
		uow.Add(&customers[i])
	}
	if err := uow.SaveChanges(ctx); err != nil {
		return res, fmt.Errorf("seed customers: %w", err)
	}
	res.Customers = len(customers)

	for _, o := range SeedOrders() {
		row := tracker.New(db)
		row.Add(&o)

		err := row.SaveChanges(ctx)
		switch {
		case err == nil:
			res.Orders++
		case IsForeignKeyViolation(err):
			res.Rejected = append(res.Rejected, RejectedOrder{Order: o, Err: err})
		default:
			return res, fmt.Errorf("seed order %d: %w", o.ID, err)
		}
	}

	return res, nil
}

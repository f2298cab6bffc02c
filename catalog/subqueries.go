package catalog

import (
	"context"

	"custorders/store"
)

// CustomerCount pairs a customer with the table-wide customer count.
type CustomerCount struct {
	Name           string `json:"name"`
	TotalCustomers int64  `json:"total_customers"`
}

// WithCustomerCount pairs each customer with the total number of customers
// via a scalar subquery. The same count repeats on every row.
func (c *Catalog) WithCustomerCount(ctx context.Context) ([]CustomerCount, error) {
	var rows []CustomerCount
	err := c.db.WithContext(ctx).Raw(`
SELECT name,
       (SELECT COUNT(*) FROM customers) AS total_customers
FROM customers
ORDER BY id`).Scan(&rows).Error
	return rows, err
}

// CustomerTotal is a customer with the sum of their order amounts.
type CustomerTotal struct {
	Name        string  `json:"name"`
	CustomerID  uint    `json:"customer_id"`
	TotalAmount float64 `json:"total_amount"`
}

// WithOrderTotals pairs each customer with that customer's own order total
// via a correlated subquery. Customers without orders total zero, matching
// the summary view.
func (c *Catalog) WithOrderTotals(ctx context.Context) ([]CustomerTotal, error) {
	var rows []CustomerTotal
	err := c.db.WithContext(ctx).Raw(`
SELECT c.id AS customer_id,
       c.name,
       COALESCE((SELECT SUM(o.amount) FROM orders o WHERE o.customer_id = c.id), 0) AS total_amount
FROM customers c
ORDER BY c.id`).Scan(&rows).Error
	return rows, err
}

// WithOrders returns the customers whose key appears among the orders'
// customer references, i.e. the distinct customers holding at least one
// order.
func (c *Catalog) WithOrders(ctx context.Context) ([]store.Customer, error) {
	var rows []store.Customer
	err := c.db.WithContext(ctx).
		Where("id IN (?)", c.db.Model(&store.Order{}).Distinct("customer_id")).
		Order("id").
		Find(&rows).Error
	return rows, err
}

// WithOrdersExists returns the same result set as WithOrders through an
// existence predicate instead of set membership.
func (c *Catalog) WithOrdersExists(ctx context.Context) ([]store.Customer, error) {
	var rows []store.Customer
	err := c.db.WithContext(ctx).
		Where("EXISTS (SELECT 1 FROM orders o WHERE o.customer_id = customers.id)").
		Order("id").
		Find(&rows).Error
	return rows, err
}

// WithTotalEqual returns the customers whose order total equals amount.
func (c *Catalog) WithTotalEqual(ctx context.Context, amount float64) ([]store.Customer, error) {
	var rows []store.Customer
	err := c.db.WithContext(ctx).Raw(`
SELECT c.*
FROM customers c
WHERE (SELECT SUM(o.amount) FROM orders o WHERE o.customer_id = c.id) = ?
ORDER BY c.id`, amount).Scan(&rows).Error
	return rows, err
}

package catalog

import (
	"context"
	"time"
)

// CustomerOrder is one row of a join between customers and orders. Pointer
// fields are nil on the unmatched side of an outer join.
type CustomerOrder struct {
	CustomerID *uint      `json:"customer_id"`
	Name       *string    `json:"name"`
	City       *string    `json:"city"`
	OrderID    *uint      `json:"order_id"`
	OrderDate  *time.Time `json:"order_date"`
	Amount     *float64   `json:"amount"`
}

const joinColumns = `c.id AS customer_id, c.name, c.city, o.id AS order_id, o.order_date, o.amount`

// InnerJoin returns only the customer/order pairs whose reference matches.
func (c *Catalog) InnerJoin(ctx context.Context) ([]CustomerOrder, error) {
	var rows []CustomerOrder
	err := c.db.WithContext(ctx).Raw(`
SELECT ` + joinColumns + `
FROM customers c
INNER JOIN orders o ON o.customer_id = c.id
ORDER BY o.id`).Scan(&rows).Error
	return rows, err
}

// LeftJoin returns every customer, with NULL order columns where no order
// matches.
func (c *Catalog) LeftJoin(ctx context.Context) ([]CustomerOrder, error) {
	var rows []CustomerOrder
	err := c.db.WithContext(ctx).Raw(`
SELECT ` + joinColumns + `
FROM customers c
LEFT JOIN orders o ON o.customer_id = c.id
ORDER BY c.id, o.id`).Scan(&rows).Error
	return rows, err
}

// RightJoin returns every order, with NULL customer columns where the
// reference has no match. Implemented as the mirrored left join so the result
// is the same on SQLite builds without native RIGHT JOIN support.
func (c *Catalog) RightJoin(ctx context.Context) ([]CustomerOrder, error) {
	var rows []CustomerOrder
	err := c.db.WithContext(ctx).Raw(`
SELECT ` + joinColumns + `
FROM orders o
LEFT JOIN customers c ON c.id = o.customer_id
ORDER BY o.id`).Scan(&rows).Error
	return rows, err
}

// FullJoin returns every customer and every order, matched where possible:
// the union-deduplicated combination of the left join and its mirror.
func (c *Catalog) FullJoin(ctx context.Context) ([]CustomerOrder, error) {
	var rows []CustomerOrder
	err := c.db.WithContext(ctx).Raw(`
SELECT ` + joinColumns + `
FROM customers c
LEFT JOIN orders o ON o.customer_id = c.id
UNION
SELECT ` + joinColumns + `
FROM orders o
LEFT JOIN customers c ON c.id = o.customer_id
ORDER BY customer_id, order_id`).Scan(&rows).Error
	return rows, err
}

package catalog

import (
	"context"
	"time"

	"custorders/store"
)

// SummaryRow is one row of the customer_order_summary view: a customer with
// their aggregated order amount, zero when they have none.
type SummaryRow struct {
	Name             string  `json:"name"`
	City             string  `json:"city"`
	CustomerID       uint    `json:"customer_id"`
	TotalOrderAmount float64 `json:"total_order_amount"`
}

// OrderSummary reads the aggregation view like a table.
func (c *Catalog) OrderSummary(ctx context.Context) ([]SummaryRow, error) {
	var rows []SummaryRow
	err := c.db.WithContext(ctx).
		Raw(`SELECT * FROM ` + store.SummaryView + ` ORDER BY customer_id`).
		Scan(&rows).Error
	return rows, err
}

// PublicOrder is one row of the public_customer_orders view. The view hides
// the customer key, so no identifier appears here.
type PublicOrder struct {
	OrderDate time.Time `json:"order_date"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
}

// PublicOrders reads the projection view like a table.
func (c *Catalog) PublicOrders(ctx context.Context) ([]PublicOrder, error) {
	var rows []PublicOrder
	err := c.db.WithContext(ctx).
		Raw(`SELECT * FROM ` + store.PublicOrdersView + ` ORDER BY order_date, amount`).
		Scan(&rows).Error
	return rows, err
}

package store

import (
	"fmt"

	"gorm.io/gorm"
)

// View names. Both are plain (non-materialized) views: every read reflects
// the tables' current contents.
const (
	SummaryView      = "customer_order_summary"
	PublicOrdersView = "public_customer_orders"
)

const createSummaryView = `
CREATE VIEW ` + SummaryView + ` AS
SELECT c.id AS customer_id,
       c.name,
       c.city,
       COALESCE(SUM(o.amount), 0) AS total_order_amount
FROM customers c
LEFT JOIN orders o ON o.customer_id = c.id
GROUP BY c.id, c.name, c.city`

// public_customer_orders deliberately omits the customer key column.
const createPublicOrdersView = `
CREATE VIEW ` + PublicOrdersView + ` AS
SELECT c.name,
       o.order_date,
       o.amount
FROM customers c
INNER JOIN orders o ON o.customer_id = c.id`

// CreateViews defines both catalog views on top of the tables.
func CreateViews(db *gorm.DB) error {
	for _, ddl := range []string{createSummaryView, createPublicOrdersView} {
		if err := db.Exec(ddl).Error; err != nil {
			return fmt.Errorf("create view: %w", err)
		}
	}
	return nil
}

// DropViews removes both views if present.
func DropViews(db *gorm.DB) error {
	for _, name := range []string{SummaryView, PublicOrdersView} {
		if err := db.Exec("DROP VIEW IF EXISTS " + name).Error; err != nil {
			return fmt.Errorf("drop view %s: %w", name, err)
		}
	}
	return nil
}

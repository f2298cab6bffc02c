// Package catalog exposes the fixed set of read queries layered on the
// customers and orders tables: the join variants, the subquery forms, and the
// two views. Every operation is a stateless read over the tables' current
// contents; nothing here mutates state.
package catalog

import "gorm.io/gorm"

// Catalog runs the read queries against one database handle.
type Catalog struct {
	db *gorm.DB
}

// New wraps an open database handle. The handle is shared, not owned; closing
// it remains the caller's job.
func New(db *gorm.DB) *Catalog {
	return &Catalog{db: db}
}

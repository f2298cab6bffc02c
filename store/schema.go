package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrCustomersTableMissing is returned when the orders table is created
// before its foreign-key target exists. SQLite defers unresolved references
// to the first insert, so the precondition is checked here instead of being
// left to fail later.
var ErrCustomersTableMissing = errors.New("customers table must exist before orders")

// Define (re)creates the schema from scratch. Drop order follows the
// dependency direction: views first, then orders, then customers; creation
// runs the other way around. Any prior data in these structures is discarded.
func Define(db *gorm.DB) error {
	if err := DropViews(db); err != nil {
		return err
	}

	m := db.Migrator()
	if err := m.DropTable(&Order{}); err != nil {
		return fmt.Errorf("drop orders: %w", err)
	}
	if err := m.DropTable(&Customer{}); err != nil {
		return fmt.Errorf("drop customers: %w", err)
	}

	if err := CreateCustomersTable(db); err != nil {
		return err
	}
	if err := CreateOrdersTable(db); err != nil {
		return err
	}

	return CreateViews(db)
}

// CreateCustomersTable creates the customers table.
func CreateCustomersTable(db *gorm.DB) error {
	if err := db.Migrator().CreateTable(&Customer{}); err != nil {
		return fmt.Errorf("create customers: %w", err)
	}
	return nil
}

// CreateOrdersTable creates the orders table. The customers table must
// already exist; ordering is a hard precondition, not an optimization.
func CreateOrdersTable(db *gorm.DB) error {
	if !db.Migrator().HasTable(&Customer{}) {
		return ErrCustomersTableMissing
	}
	if err := db.Migrator().CreateTable(&Order{}); err != nil {
		return fmt.Errorf("create orders: %w", err)
	}
	return nil
}

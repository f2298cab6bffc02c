package store

import "time"

// Customer represents a buyer with zero or more Orders.
// JSON tags for the runner's output.
type Customer struct {
	Name string `gorm:"size:200;not null" json:"name"`
	City string `gorm:"size:200;not null" json:"city"`

	Orders []Order `json:"orders,omitempty"`
	ID     uint    `json:"id"               gorm:"primaryKey"`
}

// Order represents a purchase linked to an existing Customer. The belongs-to
// side carries the foreign-key constraint so the orders table cannot hold a
// reference to a customer that does not exist.
type Order struct {
	OrderDate  time.Time `json:"order_date"  gorm:"not null"`
	Customer   *Customer `json:"-"           gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	ID         uint      `json:"id"          gorm:"primaryKey"`
	CustomerID uint      `json:"customer_id" gorm:"index;not null"`
	Amount     float64   `json:"amount"      gorm:"type:decimal(10,2);not null"`
}

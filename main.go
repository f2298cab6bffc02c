package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"custorders/catalog"
	"custorders/store"

	"github.com/caarlos0/env/v11"
)

type config struct {
	DatabasePath string `env:"ORDERS_DB" envDefault:"orders.db"`
}

// main runs the whole script once: define schema, seed the sample data, then
// execute every query in the catalog and print the result sets as JSON.
func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parse env: %v", err)
	}

	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	ctx := context.Background()

	if err := store.Define(db); err != nil {
		log.Fatalf("failed to define schema: %v", err)
	}

	res, err := store.Seed(ctx, db)
	if err != nil {
		log.Fatalf("failed to seed: %v", err)
	}
	log.Printf("seeded %d customers, %d orders", res.Customers, res.Orders)
	for _, r := range res.Rejected {
		log.Printf("order %d rejected: customer %d does not exist", r.Order.ID, r.Order.CustomerID)
	}

	c := catalog.New(db)
	run := func(name string, query func() (any, error)) {
		rows, err := query()
		if err != nil {
			log.Fatalf("%s: %v", name, err)
		}
		out, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			log.Fatalf("%s: %v", name, err)
		}
		fmt.Printf("-- %s\n%s\n", name, out)
	}

	run("inner join", func() (any, error) { return c.InnerJoin(ctx) })
	run("left join", func() (any, error) { return c.LeftJoin(ctx) })
	run("right join", func() (any, error) { return c.RightJoin(ctx) })
	run("full join", func() (any, error) { return c.FullJoin(ctx) })
	run("scalar subquery: customer count", func() (any, error) { return c.WithCustomerCount(ctx) })
	run("correlated subquery: order totals", func() (any, error) { return c.WithOrderTotals(ctx) })
	run("membership subquery: customers with orders", func() (any, error) { return c.WithOrders(ctx) })
	run("existence subquery: customers with orders", func() (any, error) { return c.WithOrdersExists(ctx) })
	run("order total equals 430", func() (any, error) { return c.WithTotalEqual(ctx, 430) })
	run(store.SummaryView, func() (any, error) { return c.OrderSummary(ctx) })
	run(store.PublicOrdersView, func() (any, error) { return c.PublicOrders(ctx) })
}

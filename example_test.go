package espalier_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/pkg/adapters/memory"
	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/dsl"
)

// ExampleNew demonstrates a complete drag lifecycle: lift an item, hover
// a target, drop, and read the resulting dense order.
func ExampleNew() {
	items := []domain.Item{
		{ID: "a", Order: 0},
		{ID: "b", Order: 1},
		{ID: "c", Order: 2},
		{ID: "d", Order: 3},
	}

	eng := espalier.New("letters", items)
	ctx := context.Background()

	// Lift "a", hover "c", drop. "a" takes c's position.
	eng.Start(ctx, "a", domain.Coordinate{X: 10, Y: 20})
	eng.Move(ctx, "c")
	if err := eng.End(ctx, "c"); err != nil {
		log.Fatal(err)
	}

	for _, s := range eng.Snapshot() {
		fmt.Printf("%d: %s\n", s.Order, s.ID)
	}
	// Output:
	// 0: b
	// 1: c
	// 2: a
	// 3: d
}

// ExampleNew_store demonstrates wiring a store as the reorder sink:
// every completed drop is persisted, cancelled drags are not.
func ExampleNew_store() {
	store := memory.NewStore()
	ctx := context.Background()

	// Seed the list with the DSL builder.
	b := dsl.NewList("chores")
	b.Add("dishes").Title("Do the dishes").
		Add("laundry").Title("Fold laundry").
		Add("plants").Title("Water plants")
	if err := b.Seed(ctx, store); err != nil {
		log.Fatal(err)
	}

	items, err := store.Load(ctx, "chores")
	if err != nil {
		log.Fatal(err)
	}
	eng := espalier.New("chores", items, espalier.WithStore(store))

	// Drop "plants" onto "dishes": persisted.
	eng.Start(ctx, "plants", domain.Coordinate{})
	eng.Move(ctx, "dishes")
	if err := eng.End(ctx, "dishes"); err != nil {
		log.Fatal(err)
	}

	// Start another drag and cancel it: storage is untouched.
	eng.Start(ctx, "laundry", domain.Coordinate{})
	eng.Cancel(ctx)

	stored, err := store.Load(ctx, "chores")
	if err != nil {
		log.Fatal(err)
	}
	for _, it := range stored {
		fmt.Printf("%d: %s\n", it.Order, it.ID)
	}
	// Output:
	// 0: plants
	// 1: dishes
	// 2: laundry
}

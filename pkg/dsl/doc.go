/*
Package dsl provides a fluent builder for programmatically constructing
ordered item collections.

It allows developers to define lists in Go instead of relying on external
YAML or JSON files. This is particularly useful for seeding stores, unit
testing, and leveraging IDE autocompletion/type-checking.

Example usage:

	package main

	import (
		"github.com/aretw0/espalier/pkg/dsl"
	)

	func main() {
		b := dsl.NewList("backlog")

		b.Add("design").
			Title("Design the trellis").
			With("points", 3)

		b.Add("build").
			Title("Build the frame")

		b.Add("plant").
			Title("Plant the vine")

		// Items come out densely ordered in insertion order.
		items, err := b.Build()
		// ... pass items to espalier.New(...) or store.Save(...)
		_ = items
		_ = err
	}
*/
package dsl

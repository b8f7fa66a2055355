// Package middleware provides composable OrderStore wrappers for
// at-rest concerns: payload encryption and PII masking. Item IDs and
// order values stay readable so reordering and validation keep working
// against the wrapped store.
package middleware

import "github.com/aretw0/espalier/pkg/ports"

// Middleware allows wrapping an OrderStore to add behavior.
type Middleware func(ports.OrderStore) ports.OrderStore

// Chain applies middlewares right to left, so the first one listed is
// the outermost wrapper.
func Chain(store ports.OrderStore, mws ...Middleware) ports.OrderStore {
	for n := len(mws) - 1; n >= 0; n-- {
		store = mws[n](store)
	}
	return store
}

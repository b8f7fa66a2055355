package domain

import "errors"

// ErrListNotFound is returned when a list ID cannot be found in the store.
var ErrListNotFound = errors.New("list not found")

// ErrInvalidOrder is returned by ValidateOrder when a collection does not
// form a dense zero-based permutation.
var ErrInvalidOrder = errors.New("invalid order")

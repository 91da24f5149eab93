package repository

import "errors"

// ErrNotFound is returned by adapters when an identifier resolves to no row.
var ErrNotFound = errors.New("not found")

package storage

import "errors"

var ErrNotFound = errors.New("resource not found")
var ErrConflict = errors.New("resource conflict (e.g., duplicate key)")

// ErrStaleStatus is returned when a conditional status transition finds the
// row in a state other than the one the transition requires.
var ErrStaleStatus = errors.New("application status already decided")

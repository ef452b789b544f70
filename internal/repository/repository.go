// Package repository contains data access layer abstractions.
// Implementations live in subpackages (postgres, sqlite, memory) inside this directory.
package repository

import "errors"

// ErrNotFound is returned by implementations when no record has the requested key.
var ErrNotFound = errors.New("record not found")

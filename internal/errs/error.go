package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("already exists")
	ErrShippingAddress = errors.New("shipping address is required for online orders")
)

// UnknownBookError reports a line item referencing a book that does
// not exist.
type UnknownBookError struct {
	BookUid string
}

func (e *UnknownBookError) Error() string {
	return fmt.Sprintf("unknown book %s", e.BookUid)
}

// InsufficientStockError reports a line item requesting more units
// than the book has in stock.
type InsufficientStockError struct {
	BookUid   string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for book %s: requested %d, available %d",
		e.BookUid, e.Requested, e.Available)
}

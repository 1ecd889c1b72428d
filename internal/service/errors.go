package service

import (
	"errors"
	"fmt"
)

var (
	ErrPlanNotFound = errors.New("plan not found")
	ErrTxNotFound   = errors.New("transaction not found")
	// ErrTxResolved is returned when a transaction is approved or rejected a
	// second time; the caller sees a conflict, not a silent retry.
	ErrTxResolved = errors.New("transaction already resolved")
)

// AmountRangeError reports an investment amount outside the plan's deposit
// bounds; it carries the violated bounds for the caller.
type AmountRangeError struct {
	Min float64
	Max float64
}

func (e *AmountRangeError) Error() string {
	return fmt.Sprintf("amount must be between $%g and $%g", e.Min, e.Max)
}

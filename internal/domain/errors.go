package domain

import "errors"

// Error message string constants - use these in assert.Contains() checks
const (
	ErrMsgNilItem          = "nil item"
	ErrMsgUnclassifiedItem = "item has no category"
	ErrMsgItemNotFound     = "item not found"
	ErrMsgInvalidItem      = "invalid item"
	ErrMsgNoReport         = "no day has been advanced yet"
	ErrMsgInvalidDayCount  = "invalid day count"
	ErrMsgEmptyName        = "name is empty"
)

// Common domain errors. Wrap with fmt.Errorf("%w: %s", domain.ErrXxx, details) for context.
var (
	ErrNilItem          = errors.New(ErrMsgNilItem)
	ErrUnclassifiedItem = errors.New(ErrMsgUnclassifiedItem)
	ErrItemNotFound     = errors.New(ErrMsgItemNotFound)
	ErrInvalidItem      = errors.New(ErrMsgInvalidItem)
	ErrNoReport         = errors.New(ErrMsgNoReport)
	ErrInvalidDayCount  = errors.New(ErrMsgInvalidDayCount)
)

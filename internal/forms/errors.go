package forms

import "errors"

var (
	// ErrInvalidPrice is returned by [ItemForm.PriceValue] when the submitted
	// price is missing, not parseable as a number, or negative.
	ErrInvalidPrice = errors.New("invalid price")
)

package card

import "errors"

var (
	ErrCardNotFound = errors.New("progress card not found")
	ErrNotOwner     = errors.New("you do not own this progress card")
	ErrValidation   = errors.New("invalid progress card data")
)

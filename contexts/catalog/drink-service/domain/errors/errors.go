package errors

import "errors"

var (
	ErrInvalidDrink   = errors.New("invalid drink")
	ErrDrinkNotFound  = errors.New("drink not found")
	ErrDuplicateTitle = errors.New("drink title already exists")
)

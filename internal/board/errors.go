package board

import "errors"

var (
	// ErrCardNotFound is returned when a card id is not on the board.
	ErrCardNotFound = errors.New("card not found")
	// ErrCategoryOutOfRange is returned for a category index outside the category list.
	ErrCategoryOutOfRange = errors.New("category index out of range")
	// ErrInvalidDirection is returned for an unknown card move direction.
	ErrInvalidDirection = errors.New("invalid move direction")
	// ErrInvalidPosition is returned for an unknown column insert position.
	ErrInvalidPosition = errors.New("invalid column position")
)

package board

import (
	"fmt"
	"math"
)

// Direction is a one-step or to-the-edge move of a card inside its category.
type Direction string

// Move directions.
const (
	Up     Direction = "up"
	Down   Direction = "down"
	Top    Direction = "top"
	Bottom Direction = "bottom"
)

// stepOffset lands a moved card strictly between two normalized neighbours.
const stepOffset = 1.5

// ParseDirection converts a user-supplied string to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case Up, Down, Top, Bottom:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// MovedOrder returns the transient OrderInCategory that places a card at
// order one step, or all the way, in direction d. Normalization turns it
// back into a dense position.
func MovedOrder(order float64, d Direction) (float64, error) {
	switch d {
	case Up:
		return order - stepOffset, nil
	case Down:
		return order + stepOffset, nil
	case Top:
		return math.Inf(-1), nil
	case Bottom:
		return math.Inf(1), nil
	default:
		return order, fmt.Errorf("%w: %q", ErrInvalidDirection, d)
	}
}

// MoveCard moves the card with the given id inside its category.
func MoveCard(cards []Card, id string, d Direction) ([]Card, error) {
	card, ok := FindCard(cards, id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCardNotFound, id)
	}
	order, err := MovedOrder(card.OrderInCategory, d)
	if err != nil {
		return nil, err
	}
	card.OrderInCategory = order
	return UpdateCard(cards, card)
}

// MoveCardToCategory sends the card to the bottom of another category.
func MoveCardToCategory(cards []Card, id string, categoryIdx int) ([]Card, error) {
	card, ok := FindCard(cards, id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCardNotFound, id)
	}
	if card.CategoryIdx == categoryIdx {
		return NormalizeAll(cards), nil
	}
	card.CategoryIdx = categoryIdx
	card.OrderInCategory = math.Inf(1)
	return UpdateCard(cards, card)
}

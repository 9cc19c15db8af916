package board

import (
	"fmt"
	"slices"
)

// Position says on which side of a reference column a new column goes.
type Position string

// Column insert positions.
const (
	// Ahead inserts right after the reference column.
	Ahead Position = "ahead"
	// Behind inserts right before the reference column.
	Behind Position = "behind"
)

// ParsePosition converts a user-supplied string to a Position.
func ParsePosition(s string) (Position, error) {
	switch p := Position(s); p {
	case Ahead, Behind:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
}

// InsertColumn adds a "New Column" next to the column at ref and shifts the
// category index of every card at or after the insertion point. It returns
// the new state and the index the column was inserted at.
func InsertColumn(s State, ref int, pos Position, id string) (State, int, error) {
	var at int
	switch pos {
	case Ahead:
		at = ref + 1
	case Behind:
		at = ref
	default:
		return State{}, 0, fmt.Errorf("%w: %q", ErrInvalidPosition, pos)
	}
	at = max(0, min(at, len(s.Categories)))

	categories := slices.Insert(SetCategories(s.Categories), at, Category{
		ID:    id,
		Title: NewColumnTitle,
	})

	cards := slices.Clone(s.Cards)
	if at < len(s.Categories) {
		for i := range cards {
			if cards[i].CategoryIdx >= at {
				cards[i].CategoryIdx++
			}
		}
	}

	return State{Categories: categories, Cards: cards}, at, nil
}

// RemoveColumn drops the column at index together with its cards and shifts
// the category index of every card after it. The last remaining column can't
// be removed: removed is false and s is returned unchanged.
func RemoveColumn(s State, index int) (next State, removed bool, err error) {
	if index < 0 || index >= len(s.Categories) {
		return State{}, false, fmt.Errorf("%w: %d", ErrCategoryOutOfRange, index)
	}
	if len(s.Categories) < 2 {
		return s.Clone(), false, nil
	}

	categories := slices.Delete(SetCategories(s.Categories), index, index+1)

	cards := make([]Card, 0, len(s.Cards))
	for _, c := range s.Cards {
		switch {
		case c.CategoryIdx == index:
			continue
		case c.CategoryIdx > index:
			c.CategoryIdx--
		}
		cards = append(cards, c)
	}

	return State{Categories: categories, Cards: NormalizeAll(cards)}, true, nil
}

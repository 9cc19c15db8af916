package board

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
)

// Card is a unit of work assigned to exactly one category.
type Card struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	CategoryIdx     int     `json:"categoryIdx"`
	OrderInCategory float64 `json:"orderInCategory"`
}

// CardBase is the user-supplied data a card is created from.
type CardBase struct {
	Title       string
	Description string
	CategoryIdx int
}

// CardsMap groups cards by category index, each group in normalized order.
type CardsMap map[int][]Card

// Normalize sorts cards ascending by OrderInCategory and renumbers them 0, 1, 2, ...
// Ties keep their input order. The input is not modified.
func Normalize(cards []Card) []Card {
	out := slices.Clone(cards)
	slices.SortStableFunc(out, func(a, b Card) int {
		return cmp.Compare(a.OrderInCategory, b.OrderInCategory)
	})
	for i := range out {
		out[i].OrderInCategory = float64(i)
	}
	return out
}

// ToCardsMap groups cards by category and normalizes every group.
func ToCardsMap(cards []Card) CardsMap {
	grouped := make(CardsMap)
	for _, card := range cards {
		grouped[card.CategoryIdx] = append(grouped[card.CategoryIdx], card)
	}
	for idx, group := range grouped {
		grouped[idx] = Normalize(group)
	}
	return grouped
}

// ToCardList flattens a CardsMap in ascending category order.
func ToCardList(m CardsMap) []Card {
	out := make([]Card, 0, len(m))
	for _, idx := range slices.Sorted(maps.Keys(m)) {
		out = append(out, m[idx]...)
	}
	return out
}

// NormalizeAll regroups and normalizes a flat card list.
func NormalizeAll(cards []Card) []Card {
	return ToCardList(ToCardsMap(cards))
}

// RepairOrphans moves cards whose category index is outside [0, numCategories)
// to category 0, behind the cards already there.
func RepairOrphans(cards []Card, numCategories int) []Card {
	var valid, orphans []Card
	for _, c := range cards {
		if c.CategoryIdx < 0 || c.CategoryIdx >= numCategories {
			orphans = append(orphans, c)
		} else {
			valid = append(valid, c)
		}
	}
	if len(orphans) == 0 {
		return NormalizeAll(valid)
	}

	valid = NormalizeAll(valid)
	offset := len(ToCardsMap(valid)[0])
	for i, c := range Normalize(orphans) {
		c.CategoryIdx = 0
		c.OrderInCategory = float64(offset + i)
		valid = append(valid, c)
	}
	return NormalizeAll(valid)
}

// FindCard returns the card with the given id.
func FindCard(cards []Card, id string) (Card, bool) {
	for _, c := range cards {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}

// AddCard appends a new card with the given id at the bottom of its category.
// An out-of-range category index is clamped to 0.
func AddCard(cards []Card, base CardBase, id string, numCategories int) ([]Card, Card) {
	categoryIdx := base.CategoryIdx
	if categoryIdx < 0 || categoryIdx >= numCategories {
		categoryIdx = 0
	}

	cardsMap := ToCardsMap(cards)
	inCategory := cardsMap[categoryIdx]

	card := Card{
		ID:              id,
		Title:           base.Title,
		Description:     base.Description,
		CategoryIdx:     categoryIdx,
		OrderInCategory: float64(len(inCategory)),
	}
	cardsMap[categoryIdx] = Normalize(append(slices.Clone(inCategory), card))

	out := ToCardList(cardsMap)
	added, _ := FindCard(out, id)
	return out, added
}

// UpdateCard replaces the card with the same id. If the category changed, the card
// leaves its old category and is placed in the new one by its OrderInCategory
// (+Inf appends it); both categories are renormalized.
func UpdateCard(cards []Card, updated Card) ([]Card, error) {
	current, ok := FindCard(cards, updated.ID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCardNotFound, updated.ID)
	}

	cardsMap := ToCardsMap(cards)
	oldIdx := current.CategoryIdx

	if oldIdx != updated.CategoryIdx {
		oldList := slices.DeleteFunc(slices.Clone(cardsMap[oldIdx]), func(c Card) bool {
			return c.ID == updated.ID
		})
		newList := append(slices.Clone(cardsMap[updated.CategoryIdx]), updated)

		cardsMap[oldIdx] = Normalize(oldList)
		cardsMap[updated.CategoryIdx] = Normalize(newList)
		if len(cardsMap[oldIdx]) == 0 {
			delete(cardsMap, oldIdx)
		}
	} else {
		list := slices.Clone(cardsMap[oldIdx])
		for i := range list {
			if list[i].ID == updated.ID {
				list[i] = updated
			}
		}
		cardsMap[oldIdx] = Normalize(list)
	}

	return ToCardList(cardsMap), nil
}

// DeleteCard removes the card with the given id and renormalizes its category.
func DeleteCard(cards []Card, id string) ([]Card, error) {
	card, ok := FindCard(cards, id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCardNotFound, id)
	}

	cardsMap := ToCardsMap(cards)
	list, ok := cardsMap[card.CategoryIdx]
	if !ok {
		// grouping lost the card's category: rebuild from scratch
		return NormalizeAll(slices.DeleteFunc(slices.Clone(cards), func(c Card) bool {
			return c.ID == id
		})), nil
	}

	list = slices.DeleteFunc(slices.Clone(list), func(c Card) bool {
		return c.ID == id
	})
	if len(list) == 0 {
		delete(cardsMap, card.CategoryIdx)
	} else {
		cardsMap[card.CategoryIdx] = Normalize(list)
	}
	return ToCardList(cardsMap), nil
}

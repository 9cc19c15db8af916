package board

import (
	"fmt"
	"strings"
)

// NewColumnTitle is the title given to inserted columns.
const NewColumnTitle = "New Column"

// Category is a board column. Its identity towards cards is its index in the
// category list; ID is a runtime-only handle that survives index shifts.
type Category struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	IsCollapsed bool   `json:"isCollapsed"`
}

// SetCategories replaces the category list.
func SetCategories(categories []Category) []Category {
	return append([]Category{}, categories...)
}

// RenameCategory sets the trimmed title of the category at index.
func RenameCategory(categories []Category, index int, title string) ([]Category, error) {
	if index < 0 || index >= len(categories) {
		return nil, fmt.Errorf("%w: %d", ErrCategoryOutOfRange, index)
	}
	out := SetCategories(categories)
	out[index].Title = strings.TrimSpace(title)
	return out, nil
}

// CollapseCategory sets the collapsed flag of the category at index.
func CollapseCategory(categories []Category, index int, collapsed bool) ([]Category, error) {
	if index < 0 || index >= len(categories) {
		return nil, fmt.Errorf("%w: %d", ErrCategoryOutOfRange, index)
	}
	out := SetCategories(categories)
	out[index].IsCollapsed = collapsed
	return out, nil
}

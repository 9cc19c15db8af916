package board

// DefaultHistoryLimit is how many snapshots the history keeps.
const DefaultHistoryLimit = 10

// ChangeKind says which part of the board a history change carries.
type ChangeKind int

// Change kinds.
const (
	ChangeCategories ChangeKind = iota
	ChangeCards
	ChangeBoard
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeCategories:
		return "categories"
	case ChangeCards:
		return "cards"
	case ChangeBoard:
		return "board"
	default:
		return "unknown"
	}
}

// Change is a history update. Only the parts named by Kind are read; the rest
// is carried over from the current snapshot.
type Change struct {
	Kind       ChangeKind
	Categories []Category
	Cards      []Card
}

// CategoriesChange records a categories-only update.
func CategoriesChange(categories []Category) Change {
	return Change{Kind: ChangeCategories, Categories: categories}
}

// CardsChange records a cards-only update.
func CardsChange(cards []Card) Change {
	return Change{Kind: ChangeCards, Cards: cards}
}

// BoardChange records an update touching both stores.
func BoardChange(s State) Change {
	return Change{Kind: ChangeBoard, Categories: s.Categories, Cards: s.Cards}
}

// History is a bounded, linear undo/redo log of full board snapshots.
// It is not safe for concurrent use.
type History struct {
	items []State
	idx   int
	limit int
}

// NewHistory seeds a history with the initial board state.
// A limit below 1 falls back to DefaultHistoryLimit.
func NewHistory(initial State, limit int) *History {
	if limit < 1 {
		limit = DefaultHistoryLimit
	}
	return &History{
		items: []State{initial.Clone()},
		idx:   0,
		limit: limit,
	}
}

// Add appends the snapshot produced by applying c to the current snapshot.
// Snapshots after the current index are discarded. Once the limit is exceeded
// the oldest snapshots are dropped and the index points at the newest one.
func (h *History) Add(c Change) {
	next := h.items[h.idx].Clone()
	switch c.Kind {
	case ChangeCategories:
		next.Categories = SetCategories(c.Categories)
	case ChangeCards:
		next.Cards = append([]Card{}, c.Cards...)
	case ChangeBoard:
		next.Categories = SetCategories(c.Categories)
		next.Cards = append([]Card{}, c.Cards...)
	}

	items := append(h.items[:h.idx+1:h.idx+1], next)
	if len(items) > h.limit {
		items = append([]State{}, items[len(items)-h.limit:]...)
	}
	h.items = items
	h.idx = len(items) - 1
}

// At returns the snapshot at index i.
func (h *History) At(i int) (State, bool) {
	if i < 0 || i >= len(h.items) {
		return State{}, false
	}
	return h.items[i].Clone(), true
}

// Seek moves the current index to i without replaying anything.
// Undo and redo read At(Index()-1) or At(Index()+1) and Seek there once the
// snapshot has been applied.
func (h *History) Seek(i int) bool {
	if i < 0 || i >= len(h.items) {
		return false
	}
	h.idx = i
	return true
}

// Len returns the number of snapshots.
func (h *History) Len() int { return len(h.items) }

// Index returns the current index.
func (h *History) Index() int { return h.idx }

// CanUndo reports whether an older snapshot exists.
func (h *History) CanUndo() bool { return h.idx > 0 }

// CanRedo reports whether a newer snapshot exists.
func (h *History) CanRedo() bool { return h.idx < len(h.items)-1 }

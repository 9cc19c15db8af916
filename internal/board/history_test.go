package board

import (
	"fmt"
	"reflect"
	"testing"
)

func snapshot(n int) State {
	return State{
		Categories: []Category{{ID: "c0", Title: fmt.Sprintf("v%d", n)}},
		Cards:      []Card{{ID: fmt.Sprintf("card-%d", n)}},
	}
}

// current returns the snapshot the history points at.
func current(t *testing.T, h *History) State {
	t.Helper()
	s, ok := h.At(h.Index())
	if !ok {
		t.Fatalf("At(Index()=%d) failed, Len() = %d", h.Index(), h.Len())
	}
	return s
}

// step replays one snapshot back (-1) or forward (+1) the way undo and redo do.
func step(h *History, d int) (State, bool) {
	target := h.Index() + d
	s, ok := h.At(target)
	if !ok {
		return State{}, false
	}
	h.Seek(target)
	return s, true
}

func TestHistory_AddCarriesOtherPart(t *testing.T) {
	h := NewHistory(snapshot(0), 0)

	h.Add(CardsChange([]Card{{ID: "only-cards"}}))
	cur := current(t, h)
	if cur.Categories[0].Title != "v0" || cur.Cards[0].ID != "only-cards" {
		t.Errorf("cards change lost categories: %+v", cur)
	}

	h.Add(CategoriesChange([]Category{{Title: "renamed"}}))
	cur = current(t, h)
	if cur.Categories[0].Title != "renamed" || cur.Cards[0].ID != "only-cards" {
		t.Errorf("categories change lost cards: %+v", cur)
	}

	h.Add(BoardChange(snapshot(9)))
	if !reflect.DeepEqual(current(t, h), snapshot(9)) {
		t.Errorf("board change = %+v", current(t, h))
	}
	if h.Len() != 4 || h.Index() != 3 {
		t.Errorf("Len() = %d, Index() = %d", h.Len(), h.Index())
	}
}

func TestHistory_Bound(t *testing.T) {
	h := NewHistory(snapshot(0), DefaultHistoryLimit)
	for i := 1; i <= 25; i++ {
		h.Add(BoardChange(snapshot(i)))
		if h.Len() > DefaultHistoryLimit {
			t.Fatalf("Len() = %d after %d changes", h.Len(), i)
		}
		if h.Index() != h.Len()-1 {
			t.Fatalf("Index() = %d, want %d", h.Index(), h.Len()-1)
		}
	}

	oldest, _ := h.At(0)
	if !reflect.DeepEqual(oldest, snapshot(16)) {
		t.Errorf("oldest kept snapshot = %+v, want snapshot 16", oldest)
	}
}

func TestHistory_StepBackAndForth(t *testing.T) {
	h := NewHistory(snapshot(0), 0)
	h.Add(BoardChange(snapshot(1)))
	h.Add(BoardChange(snapshot(2)))

	s, ok := step(h, -1)
	if !ok || !reflect.DeepEqual(s, snapshot(1)) || !h.CanRedo() {
		t.Fatalf("step back = %+v, %v", s, ok)
	}
	s, ok = step(h, 1)
	if !ok || !reflect.DeepEqual(s, snapshot(2)) || h.CanRedo() {
		t.Fatalf("step forward = %+v, %v", s, ok)
	}

	if _, ok := step(h, 1); ok {
		t.Error("stepping past the newest snapshot succeeded")
	}
	step(h, -1)
	step(h, -1)
	if _, ok := step(h, -1); ok {
		t.Error("stepping past the oldest snapshot succeeded")
	}
	if h.Index() != 0 || h.CanUndo() {
		t.Errorf("Index() = %d, CanUndo() = %v", h.Index(), h.CanUndo())
	}
}

func TestHistory_AtDoesNotMove(t *testing.T) {
	h := NewHistory(snapshot(0), 0)
	h.Add(BoardChange(snapshot(1)))

	if s, ok := h.At(0); !ok || !reflect.DeepEqual(s, snapshot(0)) {
		t.Errorf("At(0) = %+v, %v", s, ok)
	}
	if h.Index() != 1 {
		t.Errorf("At() moved the index to %d", h.Index())
	}
	if _, ok := h.At(2); ok {
		t.Error("At(2) out of range succeeded")
	}
	if _, ok := h.At(-1); ok {
		t.Error("At(-1) out of range succeeded")
	}
}

func TestHistory_AddAfterUndoDropsFuture(t *testing.T) {
	h := NewHistory(snapshot(0), 0)
	h.Add(BoardChange(snapshot(1)))
	h.Add(BoardChange(snapshot(2)))
	step(h, -1)
	step(h, -1)

	h.Add(BoardChange(snapshot(7)))
	if h.Len() != 2 || h.CanRedo() {
		t.Errorf("Len() = %d, CanRedo() = %v", h.Len(), h.CanRedo())
	}
	if !reflect.DeepEqual(current(t, h), snapshot(7)) {
		t.Errorf("current = %+v", current(t, h))
	}
}

func TestHistory_SnapshotsAreCopies(t *testing.T) {
	cards := []Card{{ID: "a", Title: "before"}}
	h := NewHistory(State{}, 0)
	h.Add(CardsChange(cards))
	cards[0].Title = "after"

	if current(t, h).Cards[0].Title != "before" {
		t.Error("history snapshot aliases caller slice")
	}
}

func TestHistory_Seek(t *testing.T) {
	h := NewHistory(snapshot(0), 3)
	for i := 1; i <= 4; i++ {
		h.Add(BoardChange(snapshot(i)))
	}
	if h.Len() != 3 || h.Index() != 2 {
		t.Fatalf("Len() = %d Index() = %d", h.Len(), h.Index())
	}
	if !h.Seek(0) || h.Index() != 0 || !reflect.DeepEqual(current(t, h), snapshot(2)) {
		t.Error("Seek(0) failed")
	}
	if h.Seek(3) || h.Index() != 0 {
		t.Error("Seek(3) out of range succeeded")
	}
}

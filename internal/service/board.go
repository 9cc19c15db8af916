package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_document_store.go -package=mocks personal-kanban/internal/service DocumentStore
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_board_service.go -package=mocks -mock_names=BoardService=MockBoardService personal-kanban/internal/service BoardService

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"personal-kanban/internal/board"
	"personal-kanban/internal/clock"
	"personal-kanban/internal/contextutil"
	"personal-kanban/internal/document"
)

// DefaultNoticeTTL is how long an import notice stays visible.
const DefaultNoticeTTL = 3 * time.Second

// DocumentStore reads and writes the persisted board document.
// This interface is defined from the service layer's perspective (consumer-first).
type DocumentStore interface {
	// Load returns the stored document. ok is false when nothing usable is stored.
	Load(ctx context.Context) (doc document.Document, ok bool, err error)
	// Save validates and writes the document.
	Save(ctx context.Context, doc document.Document) error
}

// CardInput is the user-supplied data for a new card.
type CardInput struct {
	Title       string
	Description string
	CategoryIdx int
}

// CardPatch is a partial card edit. Nil fields keep their current value.
// A category change without an order sends the card to the bottom of the new category.
type CardPatch struct {
	Title           *string
	Description     *string
	CategoryIdx     *int
	OrderInCategory *float64
}

// NoticeKind tells a successful import from a failed one.
type NoticeKind string

// Notice kinds.
const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is the outcome of the last import, shown for a short while.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message,omitempty"`
	At      time.Time  `json:"at"`
}

// HistoryStatus describes the undo/redo log.
type HistoryStatus struct {
	Length  int  `json:"length"`
	Index   int  `json:"index"`
	CanUndo bool `json:"canUndo"`
	CanRedo bool `json:"canRedo"`
}

// Column is a category together with its cards in display order.
type Column struct {
	Index    int            `json:"index"`
	Category board.Category `json:"category"`
	Cards    []board.Card   `json:"cards"`
}

// BoardView is a read-only snapshot of the board for presentation.
type BoardView struct {
	Columns     []Column      `json:"columns"`
	LastChanged time.Time     `json:"lastChanged"`
	History     HistoryStatus `json:"history"`
	Notice      *Notice       `json:"notice,omitempty"`
}

// BoardService is the command surface of the board.
type BoardService interface {
	// Board returns the current board.
	Board(ctx context.Context) BoardView
	// Card returns a single card.
	Card(ctx context.Context, id string) (board.Card, error)
	// AddCard appends a new card at the bottom of its category.
	AddCard(ctx context.Context, in CardInput) (board.Card, error)
	// UpdateCard replaces a card, moving it when its category changed.
	UpdateCard(ctx context.Context, card board.Card) (board.Card, error)
	// PatchCard applies the non-nil fields of patch to a card.
	PatchCard(ctx context.Context, id string, patch CardPatch) (board.Card, error)
	// MoveCard moves a card inside its category.
	MoveCard(ctx context.Context, id string, direction board.Direction) (board.Card, error)
	// MoveCardToCategory sends a card to the bottom of another category.
	MoveCardToCategory(ctx context.Context, id string, categoryIdx int) (board.Card, error)
	// DeleteCard removes a card.
	DeleteCard(ctx context.Context, id string) error
	// RenameCategory sets a column title.
	RenameCategory(ctx context.Context, index int, title string) (board.Category, error)
	// InsertCategory adds a column next to ref and returns its index.
	InsertCategory(ctx context.Context, ref int, position board.Position) (int, error)
	// RemoveCategory drops a column and its cards. removed is false for the last column.
	RemoveCategory(ctx context.Context, index int) (removed bool, err error)
	// ToggleCollapse flips a column's collapsed flag.
	ToggleCollapse(ctx context.Context, index int) (board.Category, error)
	// Undo restores the previous snapshot. applied is false when there is none.
	Undo(ctx context.Context) (applied bool, err error)
	// Redo restores the next snapshot. applied is false when there is none.
	Redo(ctx context.Context) (applied bool, err error)
	// Import replaces the board with a JSON document of any supported version.
	Import(ctx context.Context, data []byte) error
	// Export returns the board as pretty-printed JSON and a suggested filename.
	Export(ctx context.Context) (filename string, data []byte, err error)
}

// Options configures a BoardService.
type Options struct {
	DefaultCategories []string
	HistoryLimit      int
	NoticeTTL         time.Duration
	Clock             clock.Source
}

// boardService implements BoardService.
type boardService struct {
	mu sync.Mutex

	store   DocumentStore
	clock   clock.Source
	opts    Options
	state   board.State
	history *board.History

	lastChanged time.Time
	notice      *Notice
}

// NewBoardService loads the stored board, writing the default board on first run.
// Only a failed read is returned as an error; a failed first write is logged.
func NewBoardService(ctx context.Context, store DocumentStore, opts Options) (BoardService, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if opts.Clock == nil {
		opts.Clock = clock.System{}
	}
	if opts.NoticeTTL <= 0 {
		opts.NoticeTTL = DefaultNoticeTTL
	}
	if len(opts.DefaultCategories) == 0 {
		opts.DefaultCategories = document.DefaultCategories
	}

	doc, ok, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if !ok {
		doc = document.Default(opts.DefaultCategories)
		if err := store.Save(ctx, doc); err != nil {
			// The board still works in memory; the next committed change retries the write.
			logger.ErrorContext(ctx, "couldn't store default board",
				"error", fmt.Errorf("%w: write default board: %w", ErrStorage, err))
		} else {
			logger.InfoContext(ctx, "created default board", "categories", len(doc.Categories))
		}
	}

	state := board.FromDocument(doc, opts.Clock, opts.DefaultCategories)
	logger.InfoContext(ctx, "board loaded", "categories", len(state.Categories), "cards", len(state.Cards))

	return &boardService{
		store:       store,
		clock:       opts.Clock,
		opts:        opts,
		state:       state,
		history:     board.NewHistory(state, opts.HistoryLimit),
		lastChanged: opts.Clock.Now(),
	}, nil
}

// commit persists next, then makes it current and records change.
// A failed write leaves the in-memory board untouched.
func (s *boardService) commit(ctx context.Context, next board.State, change board.Change) error {
	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.history.Add(change)
	return nil
}

// persist writes next and makes it current without touching history.
func (s *boardService) persist(ctx context.Context, next board.State) error {
	if err := s.store.Save(ctx, next.Document()); err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	s.state = next
	s.lastChanged = s.clock.Now()
	return nil
}

// Board returns the current board.
func (s *boardService) Board(ctx context.Context) BoardView {
	s.mu.Lock()
	defer s.mu.Unlock()

	cardsMap := board.ToCardsMap(s.state.Cards)
	columns := make([]Column, 0, len(s.state.Categories))
	for i, c := range s.state.Categories {
		cards := cardsMap[i]
		if cards == nil {
			cards = []board.Card{}
		}
		columns = append(columns, Column{Index: i, Category: c, Cards: cards})
	}

	return BoardView{
		Columns:     columns,
		LastChanged: s.lastChanged,
		History: HistoryStatus{
			Length:  s.history.Len(),
			Index:   s.history.Index(),
			CanUndo: s.history.CanUndo(),
			CanRedo: s.history.CanRedo(),
		},
		Notice: s.currentNotice(),
	}
}

// currentNotice returns the import notice while it is younger than the TTL.
func (s *boardService) currentNotice() *Notice {
	if s.notice == nil {
		return nil
	}
	if s.clock.Now().Sub(s.notice.At) >= s.opts.NoticeTTL {
		s.notice = nil
		return nil
	}
	n := *s.notice
	return &n
}

// Card returns a single card.
func (s *boardService) Card(ctx context.Context, id string) (board.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	card, ok := board.FindCard(s.state.Cards, id)
	if !ok {
		return board.Card{}, fmt.Errorf("card %s: %w", id, ErrNotFound)
	}
	return card, nil
}

// AddCard appends a new card at the bottom of its category.
func (s *boardService) AddCard(ctx context.Context, in CardInput) (board.Card, error) {
	logger := contextutil.LoggerFromContext(ctx)

	title := strings.TrimSpace(in.Title)
	if title == "" {
		logger.WarnContext(ctx, "empty card title")
		return board.Card{}, &ValidationError{Field: "title", Message: "cannot be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cards, added := board.AddCard(s.state.Cards, board.CardBase{
		Title:       title,
		Description: in.Description,
		CategoryIdx: in.CategoryIdx,
	}, s.clock.NewID(), len(s.state.Categories))

	next := s.state.Clone()
	next.Cards = cards
	if err := s.commit(ctx, next, board.CardsChange(cards)); err != nil {
		logger.ErrorContext(ctx, "failed to add card", "error", err)
		return board.Card{}, WrapError(err, "add card")
	}

	logger.InfoContext(ctx, "card added", "card_id", added.ID, "category_idx", added.CategoryIdx)
	return added, nil
}

// UpdateCard replaces a card, moving it when its category changed.
func (s *boardService) UpdateCard(ctx context.Context, card board.Card) (board.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.updateCard(ctx, card)
}

// PatchCard merges patch onto the current card and commits it in one step.
func (s *boardService) PatchCard(ctx context.Context, id string, patch CardPatch) (board.Card, error) {
	logger := contextutil.LoggerFromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	card, ok := board.FindCard(s.state.Cards, id)
	if !ok {
		logger.WarnContext(ctx, "patch of unknown card", "card_id", id)
		return board.Card{}, fmt.Errorf("card %s: %w", id, ErrNotFound)
	}

	if patch.Title != nil {
		card.Title = *patch.Title
	}
	if patch.Description != nil {
		card.Description = *patch.Description
	}
	if patch.CategoryIdx != nil && *patch.CategoryIdx != card.CategoryIdx {
		card.CategoryIdx = *patch.CategoryIdx
		if patch.OrderInCategory == nil {
			card.OrderInCategory, _ = board.MovedOrder(card.OrderInCategory, board.Bottom)
		}
	}
	if patch.OrderInCategory != nil {
		card.OrderInCategory = *patch.OrderInCategory
	}

	return s.updateCard(ctx, card)
}

// updateCard validates and commits a full card. The caller holds s.mu.
func (s *boardService) updateCard(ctx context.Context, card board.Card) (board.Card, error) {
	logger := contextutil.LoggerFromContext(ctx)

	card.Title = strings.TrimSpace(card.Title)
	if card.Title == "" {
		return board.Card{}, &ValidationError{Field: "title", Message: "cannot be empty"}
	}

	if err := s.checkCategory(card.CategoryIdx); err != nil {
		return board.Card{}, err
	}

	if _, ok := board.FindCard(s.state.Cards, card.ID); !ok {
		logger.WarnContext(ctx, "update of unknown card", "card_id", card.ID)
		return board.Card{}, fmt.Errorf("card %s: %w", card.ID, ErrNotFound)
	}

	cards, err := board.UpdateCard(s.state.Cards, card)
	if err != nil {
		return board.Card{}, s.translate(err, "update card")
	}
	return s.commitCards(ctx, cards, card.ID, "update card")
}

// MoveCard moves a card inside its category.
func (s *boardService) MoveCard(ctx context.Context, id string, direction board.Direction) (board.Card, error) {
	if _, err := board.ParseDirection(string(direction)); err != nil {
		return board.Card{}, &ValidationError{Field: "direction", Message: err.Error()}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cards, err := board.MoveCard(s.state.Cards, id, direction)
	if err != nil {
		return board.Card{}, s.translate(err, "move card")
	}
	return s.commitCards(ctx, cards, id, "move card")
}

// MoveCardToCategory sends a card to the bottom of another category.
func (s *boardService) MoveCardToCategory(ctx context.Context, id string, categoryIdx int) (board.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkCategory(categoryIdx); err != nil {
		return board.Card{}, err
	}

	cards, err := board.MoveCardToCategory(s.state.Cards, id, categoryIdx)
	if err != nil {
		return board.Card{}, s.translate(err, "move card")
	}
	return s.commitCards(ctx, cards, id, "move card")
}

// commitCards commits a cards-only change and returns the card with the given id.
func (s *boardService) commitCards(ctx context.Context, cards []board.Card, id, op string) (board.Card, error) {
	logger := contextutil.LoggerFromContext(ctx)

	next := s.state.Clone()
	next.Cards = cards
	if err := s.commit(ctx, next, board.CardsChange(cards)); err != nil {
		logger.ErrorContext(ctx, "failed to store card change", "op", op, "card_id", id, "error", err)
		return board.Card{}, WrapError(err, op)
	}

	card, _ := board.FindCard(cards, id)
	logger.InfoContext(ctx, "card changed", "op", op, "card_id", id, "category_idx", card.CategoryIdx, "order", card.OrderInCategory)
	return card, nil
}

// DeleteCard removes a card.
func (s *boardService) DeleteCard(ctx context.Context, id string) error {
	logger := contextutil.LoggerFromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	cards, err := board.DeleteCard(s.state.Cards, id)
	if err != nil {
		logger.WarnContext(ctx, "delete of unknown card", "card_id", id)
		return s.translate(err, "delete card")
	}

	next := s.state.Clone()
	next.Cards = cards
	if err := s.commit(ctx, next, board.CardsChange(cards)); err != nil {
		logger.ErrorContext(ctx, "failed to delete card", "card_id", id, "error", err)
		return WrapError(err, "delete card")
	}

	logger.InfoContext(ctx, "card deleted", "card_id", id)
	return nil
}

// RenameCategory sets a column title.
func (s *boardService) RenameCategory(ctx context.Context, index int, title string) (board.Category, error) {
	if strings.TrimSpace(title) == "" {
		return board.Category{}, &ValidationError{Field: "title", Message: "cannot be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	categories, err := board.RenameCategory(s.state.Categories, index, title)
	if err != nil {
		return board.Category{}, s.translate(err, "rename column")
	}
	return s.commitCategories(ctx, categories, index, "rename column")
}

// ToggleCollapse flips a column's collapsed flag.
func (s *boardService) ToggleCollapse(ctx context.Context, index int) (board.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkCategory(index); err != nil {
		return board.Category{}, err
	}

	categories, err := board.CollapseCategory(s.state.Categories, index, !s.state.Categories[index].IsCollapsed)
	if err != nil {
		return board.Category{}, s.translate(err, "collapse column")
	}
	return s.commitCategories(ctx, categories, index, "collapse column")
}

// commitCategories commits a categories-only change and returns the category at index.
func (s *boardService) commitCategories(ctx context.Context, categories []board.Category, index int, op string) (board.Category, error) {
	logger := contextutil.LoggerFromContext(ctx)

	next := s.state.Clone()
	next.Categories = categories
	if err := s.commit(ctx, next, board.CategoriesChange(categories)); err != nil {
		logger.ErrorContext(ctx, "failed to store column change", "op", op, "index", index, "error", err)
		return board.Category{}, WrapError(err, op)
	}

	logger.InfoContext(ctx, "column changed", "op", op, "index", index, "title", categories[index].Title)
	return categories[index], nil
}

// InsertCategory adds a column next to ref and returns its index.
func (s *boardService) InsertCategory(ctx context.Context, ref int, position board.Position) (int, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if _, err := board.ParsePosition(string(position)); err != nil {
		return 0, &ValidationError{Field: "position", Message: err.Error()}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, at, err := board.InsertColumn(s.state, ref, position, s.clock.NewID())
	if err != nil {
		return 0, s.translate(err, "insert column")
	}
	if err := s.commit(ctx, next, board.BoardChange(next)); err != nil {
		logger.ErrorContext(ctx, "failed to insert column", "error", err)
		return 0, WrapError(err, "insert column")
	}

	logger.InfoContext(ctx, "column inserted", "index", at, "ref", ref, "position", position)
	return at, nil
}

// RemoveCategory drops a column and its cards.
func (s *boardService) RemoveCategory(ctx context.Context, index int) (bool, error) {
	logger := contextutil.LoggerFromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	next, removed, err := board.RemoveColumn(s.state, index)
	if err != nil {
		return false, s.translate(err, "remove column")
	}
	if !removed {
		logger.InfoContext(ctx, "refusing to remove the last column", "index", index)
		return false, nil
	}
	if err := s.commit(ctx, next, board.BoardChange(next)); err != nil {
		logger.ErrorContext(ctx, "failed to remove column", "index", index, "error", err)
		return false, WrapError(err, "remove column")
	}

	logger.InfoContext(ctx, "column removed", "index", index, "cards_left", len(next.Cards))
	return true, nil
}

// Undo restores the previous snapshot.
func (s *boardService) Undo(ctx context.Context) (bool, error) {
	return s.replay(ctx, -1, "undo")
}

// Redo restores the next snapshot.
func (s *boardService) Redo(ctx context.Context) (bool, error) {
	return s.replay(ctx, 1, "redo")
}

// replay moves the history pointer by step and restores that snapshot.
// Nothing is recorded; the pointer only moves once the write succeeded.
func (s *boardService) replay(ctx context.Context, step int, op string) (bool, error) {
	logger := contextutil.LoggerFromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.history.Index() + step
	snapshot, ok := s.history.At(target)
	if !ok {
		logger.DebugContext(ctx, "nothing to replay", "op", op, "index", s.history.Index())
		return false, nil
	}

	if err := s.persist(ctx, snapshot); err != nil {
		logger.ErrorContext(ctx, "failed to store replayed board", "op", op, "error", err)
		return false, WrapError(err, op)
	}
	s.history.Seek(target)

	logger.InfoContext(ctx, "history replayed", "op", op, "index", target, "length", s.history.Len())
	return true, nil
}

// Import replaces the board with a JSON document of any supported version.
// On failure the board is left as it was and an error notice is raised.
func (s *boardService) Import(ctx context.Context, data []byte) error {
	logger := contextutil.LoggerFromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := document.Parse(data)
	if err != nil {
		logger.WarnContext(ctx, "rejected imported document", "error", err)
		s.setNotice(NoticeError, err.Error())
		return fmt.Errorf("import: %w: %w", ErrInvalidInput, err)
	}

	next := board.FromDocument(doc, s.clock, s.opts.DefaultCategories)
	if err := s.commit(ctx, next, board.BoardChange(next)); err != nil {
		logger.ErrorContext(ctx, "failed to store imported board", "error", err)
		s.setNotice(NoticeError, "couldn't store imported board")
		return WrapError(err, "import")
	}

	s.setNotice(NoticeSuccess, "")
	logger.InfoContext(ctx, "board imported", "categories", len(next.Categories), "cards", len(next.Cards))
	return nil
}

func (s *boardService) setNotice(kind NoticeKind, msg string) {
	s.notice = &Notice{Kind: kind, Message: msg, At: s.clock.Now()}
}

// Export returns the board as pretty-printed JSON and a suggested filename.
func (s *boardService) Export(ctx context.Context) (string, []byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := document.MarshalIndent(s.state.Document())
	if err != nil {
		return "", nil, WrapError(err, "export")
	}
	return document.ExportFilename(s.lastChanged), data, nil
}

// checkCategory rejects a category index outside the current board.
func (s *boardService) checkCategory(index int) error {
	if index < 0 || index >= len(s.state.Categories) {
		return fmt.Errorf("column %d: %w", index, ErrNotFound)
	}
	return nil
}

// translate maps engine errors onto service errors.
func (s *boardService) translate(err error, op string) error {
	switch {
	case errors.Is(err, board.ErrCardNotFound), errors.Is(err, board.ErrCategoryOutOfRange):
		return fmt.Errorf("%s: %w: %w", op, ErrNotFound, err)
	case errors.Is(err, board.ErrInvalidDirection):
		return &ValidationError{Field: "direction", Message: err.Error()}
	case errors.Is(err, board.ErrInvalidPosition):
		return &ValidationError{Field: "position", Message: err.Error()}
	default:
		return WrapError(err, op)
	}
}

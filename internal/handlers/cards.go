package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"personal-kanban/internal/board"
	"personal-kanban/internal/contextutil"
	"personal-kanban/internal/service"
)

// CreateCardRequest represents the HTTP request payload for a new card.
type CreateCardRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CategoryIdx int    `json:"categoryIdx"`
}

// UpdateCardRequest represents the HTTP request payload for editing a card.
// Omitted fields keep their current value. ID and DescriptionHTML are accepted
// so a card returned by GetCard can be sent back as is; both are ignored.
type UpdateCardRequest struct {
	Title           *string  `json:"title"`
	Description     *string  `json:"description"`
	CategoryIdx     *int     `json:"categoryIdx"`
	OrderInCategory *float64 `json:"orderInCategory"`

	ID              string `json:"id,omitempty"`
	DescriptionHTML string `json:"descriptionHtml,omitempty"`
}

// MoveCardRequest represents the HTTP request payload for moving a card.
// CategoryIdx, when set, sends the card to the bottom of that category;
// otherwise Direction moves it inside its own category.
type MoveCardRequest struct {
	Direction   string `json:"direction"`
	CategoryIdx *int   `json:"categoryIdx"`
}

// CardResponse represents a card with its rendered description.
type CardResponse struct {
	board.Card
	DescriptionHTML string `json:"descriptionHtml"`
}

// GetCard returns a single card with its description rendered as HTML.
func (h *BoardHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	card, err := h.boardService.Card(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to get card")
		return
	}

	html, err := renderMarkdown(h.markdown, card.Description)
	if err != nil {
		logger.ErrorContext(ctx, "failed to render description", "card_id", card.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to render description")
		return
	}
	writeJSON(ctx, w, http.StatusOK, CardResponse{Card: card, DescriptionHTML: html})
}

// CreateCard adds a card at the bottom of its category.
func (h *BoardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req CreateCardRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	card, err := h.boardService.AddCard(ctx, service.CardInput{
		Title:       req.Title,
		Description: req.Description,
		CategoryIdx: req.CategoryIdx,
	})
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to add card")
		return
	}
	writeJSON(ctx, w, http.StatusCreated, card)
}

// UpdateCard edits a card, moving it to the bottom of a new category unless
// an order is given.
func (h *BoardHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	ctx, logger := contextutil.LoggerWith(r.Context(), "card_id", chi.URLParam(r, "id"))

	var req UpdateCardRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.boardService.PatchCard(ctx, chi.URLParam(r, "id"), service.CardPatch{
		Title:           req.Title,
		Description:     req.Description,
		CategoryIdx:     req.CategoryIdx,
		OrderInCategory: req.OrderInCategory,
	})
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to update card")
		return
	}
	writeJSON(ctx, w, http.StatusOK, updated)
}

// MoveCard moves a card up, down, to an edge, or into another category.
func (h *BoardHandler) MoveCard(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ctx, logger := contextutil.LoggerWith(r.Context(), "card_id", id)

	var req MoveCardRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var (
		card board.Card
		err  error
	)
	if req.CategoryIdx != nil {
		card, err = h.boardService.MoveCardToCategory(ctx, id, *req.CategoryIdx)
	} else {
		card, err = h.boardService.MoveCard(ctx, id, board.Direction(req.Direction))
	}
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to move card")
		return
	}
	writeJSON(ctx, w, http.StatusOK, card)
}

// DeleteCard removes a card.
func (h *BoardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	ctx, _ := contextutil.LoggerWith(r.Context(), "card_id", chi.URLParam(r, "id"))
	if err := h.boardService.DeleteCard(ctx, chi.URLParam(r, "id")); err != nil {
		handleServiceError(ctx, w, err, "Failed to delete card")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

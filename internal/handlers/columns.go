package handlers

import (
	"net/http"

	"personal-kanban/internal/board"
	"personal-kanban/internal/contextutil"
)

// RenameCategoryRequest represents the HTTP request payload for renaming a column.
type RenameCategoryRequest struct {
	Title string `json:"title"`
}

// InsertCategoryRequest represents the HTTP request payload for adding a column.
type InsertCategoryRequest struct {
	Position string `json:"position"`
}

// InsertCategoryResponse reports where the new column landed.
type InsertCategoryResponse struct {
	Index int `json:"index"`
}

// RenameCategory sets a column title.
func (h *BoardHandler) RenameCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	idx, err := indexParam(r, "idx")
	if err != nil {
		handleServiceError(ctx, w, err, "Invalid column index")
		return
	}

	var req RenameCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.boardService.RenameCategory(ctx, idx, req.Title)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to rename column")
		return
	}
	writeJSON(ctx, w, http.StatusOK, category)
}

// InsertCategory adds a "New Column" ahead of or behind the column at idx.
func (h *BoardHandler) InsertCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	idx, err := indexParam(r, "idx")
	if err != nil {
		handleServiceError(ctx, w, err, "Invalid column index")
		return
	}

	var req InsertCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	at, err := h.boardService.InsertCategory(ctx, idx, board.Position(req.Position))
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to insert column")
		return
	}
	writeJSON(ctx, w, http.StatusCreated, InsertCategoryResponse{Index: at})
}

// RemoveCategory drops a column and its cards. The last column is kept (409).
func (h *BoardHandler) RemoveCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	idx, err := indexParam(r, "idx")
	if err != nil {
		handleServiceError(ctx, w, err, "Invalid column index")
		return
	}

	removed, err := h.boardService.RemoveCategory(ctx, idx)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to remove column")
		return
	}
	h.writeAction(w, r, removed, "Can't remove the last column")
}

// ToggleCollapse flips a column's collapsed flag.
func (h *BoardHandler) ToggleCollapse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	idx, err := indexParam(r, "idx")
	if err != nil {
		handleServiceError(ctx, w, err, "Invalid column index")
		return
	}

	category, err := h.boardService.ToggleCollapse(ctx, idx)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to collapse column")
		return
	}
	writeJSON(ctx, w, http.StatusOK, category)
}

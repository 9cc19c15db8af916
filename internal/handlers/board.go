package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"

	"personal-kanban/internal/contextutil"
	"personal-kanban/internal/service"
)

// maxImportSize caps the size of an imported board document.
const maxImportSize = 5 << 20

// BoardHandler serves the board command surface.
type BoardHandler struct {
	boardService service.BoardService
	markdown     goldmark.Markdown
}

// NewBoardHandler creates a new BoardHandler.
func NewBoardHandler(boardService service.BoardService) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
		markdown:     newMarkdown(),
	}
}

// ActionResponse reports whether a command that may be rejected took effect.
type ActionResponse struct {
	Applied bool              `json:"applied"`
	Board   service.BoardView `json:"board"`
}

// GetBoard returns the whole board.
func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	writeJSON(ctx, w, http.StatusOK, h.boardService.Board(ctx))
}

// Undo restores the previous board snapshot.
func (h *BoardHandler) Undo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	applied, err := h.boardService.Undo(ctx)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to undo")
		return
	}
	h.writeAction(w, r, applied, "Nothing to undo")
}

// Redo restores the next board snapshot.
func (h *BoardHandler) Redo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	applied, err := h.boardService.Redo(ctx)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to redo")
		return
	}
	h.writeAction(w, r, applied, "Nothing to redo")
}

// writeAction answers 200 with the board when applied, 409 with rejectMsg otherwise.
func (h *BoardHandler) writeAction(w http.ResponseWriter, r *http.Request, applied bool, rejectMsg string) {
	if !applied {
		writeError(w, http.StatusConflict, rejectMsg)
		return
	}
	ctx := r.Context()
	writeJSON(ctx, w, http.StatusOK, ActionResponse{Applied: true, Board: h.boardService.Board(ctx)})
}

// Import replaces the board with the JSON document in the request body.
func (h *BoardHandler) Import(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImportSize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Document too large")
			return
		}
		logger.WarnContext(ctx, "failed to read import body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.boardService.Import(ctx, data); err != nil {
		handleServiceError(ctx, w, err, "Failed to import board")
		return
	}
	writeJSON(ctx, w, http.StatusOK, h.boardService.Board(ctx))
}

// Export downloads the board as a pretty-printed JSON document.
func (h *BoardHandler) Export(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	filename, data, err := h.boardService.Export(ctx)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to export board")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logger.ErrorContext(ctx, "failed to write export", "error", err)
	}
}

// indexParam reads a non-negative integer URL parameter.
func indexParam(r *http.Request, name string) (int, error) {
	idx, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || idx < 0 {
		return 0, &service.ValidationError{Field: name, Message: "must be a non-negative integer"}
	}
	return idx, nil
}

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"personal-kanban/internal/board"
	"personal-kanban/internal/service"
	"personal-kanban/internal/service/mocks"

	"go.uber.org/mock/gomock"
)

// testRouter mounts the handler methods the way the API router does.
func testRouter(h *BoardHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/board", h.GetBoard)
	r.Get("/export", h.Export)
	r.Post("/import", h.Import)
	r.Post("/cards", h.CreateCard)
	r.Get("/cards/{id}", h.GetCard)
	r.Put("/cards/{id}", h.UpdateCard)
	r.Delete("/cards/{id}", h.DeleteCard)
	r.Post("/cards/{id}/move", h.MoveCard)
	r.Put("/categories/{idx}", h.RenameCategory)
	r.Delete("/categories/{idx}", h.RemoveCategory)
	r.Post("/categories/{idx}/insert", h.InsertCategory)
	r.Post("/categories/{idx}/collapse", h.ToggleCollapse)
	r.Post("/history/undo", h.Undo)
	r.Post("/history/redo", h.Redo)
	return r
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	if s, ok := v.(string); ok {
		return bytes.NewBufferString(s)
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		t.Fatalf("encode body: %v", err)
	}
	return &buf
}

func TestNewBoardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBoardService := mocks.NewMockBoardService(ctrl)
	handler := NewBoardHandler(mockBoardService)

	if handler == nil {
		t.Fatal("NewBoardHandler() returned nil")
	}
	if handler.boardService != mockBoardService {
		t.Error("NewBoardHandler() boardService not set correctly")
	}
	if handler.markdown == nil {
		t.Error("NewBoardHandler() markdown renderer not set")
	}
}

func TestBoardHandler_Routes(t *testing.T) {
	card := board.Card{ID: "c1", Title: "Card", CategoryIdx: 1}

	tests := []struct {
		name          string
		method        string
		path          string
		body          any
		mockSetup     func(*mocks.MockBoardService)
		wantStatus    int
		checkResponse func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:   "create card",
			method: http.MethodPost,
			path:   "/cards",
			body:   CreateCardRequest{Title: "Card", CategoryIdx: 1},
			mockSetup: func(m *mocks.MockBoardService) {
				m.EXPECT().
					AddCard(gomock.Any(), service.CardInput{Title: "Card", CategoryIdx: 1}).
					Return(card, nil)
			},
			wantStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var got board.Card
				if err := json.NewDecoder(w.Body).Decode(&got); err != nil || got != card {
					t.Errorf("response = %+v, %v", got, err)
				}
			},
		},
		{
			name:       "create card invalid body",
			method:     http.MethodPost,
			path:       "/cards",
			body:       `{"title": 3}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "create card unknown field",
			method:     http.MethodPost,
			path:       "/cards",
			body:       `{"title": "x", "colour": "red"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "create card validation error",
			method: http.MethodPost,
			path:   "/cards",
			body:   CreateCardRequest{},
			mockSetup: func(m *mocks.MockBoardService) {
				m.EXPECT().AddCard(gomock.Any(), gomock.Any()).
					Return(board.Card{}, &service.ValidationError{Field: "title", Message: "cannot be empty"})
			},
			wantStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				if !strings.Contains(w.Body.String(), "title") {
					t.Errorf("error body = %s", w.Body.String())
				}
			},
		},
		{
			name:   "create card storage error",
			method: http.MethodPost,
			path:   "/cards",
			body:   CreateCardRequest{Title: "x"},
			mockSetup: func(m *mocks.MockBoardService) {
				m.EXPECT().AddCard(gomock.Any(), gomock.Any()).
					Return(board.Card{}, fmt.Errorf("add card: %w", service.ErrStorage))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:   "get card renders description",
			method: http.MethodGet,
			path:   "/cards/c1",
			mockSetup: func(m *mocks.MockBoardService) {
				m.EXPECT().Card(gomock.Any(), "c1").
					Return(board.Card{ID: "c1", Title: "Card", Description: "**bold** <script>x</script>"}, nil)
			},
			wantStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var got CardResponse
				if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
					t.Fatalf("decode: %v", err)
				}
				if got.ID != "c1" || !strings.Contains(got.DescriptionHTML, "<strong>bold</strong>") {
					t.Errorf("response = %+v", got)
				}
				if strings.Contains(got.DescriptionHTML, "<script>") {
					t.Errorf("raw HTML not escaped: %s", got.DescriptionHTML)
				}
			},
		},
		{
			name:   "get unknown card",
			method: http.MethodGet,
			path:   "/cards/ghost",
			mockSetup: func(m *mocks.MockBoardService) {
				m.EXPECT().Card(gomock.Any(), "ghost").
					Return(board.Card{}, fmt.Errorf("card ghost: %w", service.ErrNotFound))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "update card merges fields",
			method: http.MethodPut,
			path:   "/cards/c1",
			body:   `{"title": "Renamed", "categoryIdx": 2}`,
			mockSetup: func(m *mocks.MockBoardService) {
				title, categoryIdx := "Renamed", 2
				m.EXPECT().PatchCard(gomock.Any(), "c1", service.CardPatch{Title: &title, CategoryIdx: &categoryIdx}).
					Return(board.Card{ID: "c1", Title: title, CategoryIdx: categoryIdx}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "update card accepts a card as returned by get",
			method: http.MethodPut,
			path:   "/cards/c1",
			body:   `{"id": "c1", "title": "Card", "description": "*x*", "categoryIdx": 1, "orderInCategory": 0, "descriptionHtml": "<p><em>x</em></p>"}`,
			mockSetup: func(m *mocks.MockBoardService) {
				title, description, categoryIdx, order := "Card", "*x*", 1, 0.0
				m.EXPECT().PatchCard(gomock.Any(), "c1", service.CardPatch{
					Title:           &title,
					Description:     &description,
					CategoryIdx:     &categoryIdx,
					OrderInCategory: &order,
				}).Return(card, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "update card unknown field",
			method:     http.MethodPut,
			path:       "/cards/c1",
			body:       `{"color": "red"}`,
			mockSetup:  func(m *mocks.MockBoardService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "update unknown card",
			method: http.MethodPut,
			path:   "/cards/ghost",
			body:   `{"title": "x"}`,
			mockSetup: func(m *mocks.MockBoardService) {
				m.EXPECT().PatchCard(gomock.Any(), "ghost", gomock.Any()).
					Return(board.Card{}, fmt.Errorf("card ghost: %w", service.ErrNotFound))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "move card direction",
			method: http.MethodPost,
			path:   "/cards/c1/move",
			body:   MoveCardRequest{Direction: "up"},
			mockSetup: func(m *mocks.MockBoardService) {
				m.EXPECT().MoveCard(gomock.Any(), "c1", board.Up).Return(card, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "move card to category",
			method: http.MethodPost,
			path:   "/cards/c1/move",
			body:   `{"categoryIdx": 0}`,
			mockSetup: func(m *mocks.MockBoardService) {
				m.EXPECT().MoveCardToCategory(gomock.Any(), "c1", 0).Return(card, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "delete card",
			method: http.MethodDelete,
			path:   "/cards/c1",
			mockSetup: func(m *mocks.MockBoardService) {
				m.EXPECT().DeleteCard(gomock.Any(), "c1").Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "rename column",
			method: http.MethodPut,
			path:   "/categories/2",
			body:   RenameCategoryRequest{Title: "Doing"},
			mockSetup: func(m *mocks.MockBoardService) {
				m.EXPECT().RenameCategory(gomock.Any(), 2, "Doing").Return(board.Category{Title: "Doing"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "rename column bad index",
			method:     http.MethodPut,
			path:       "/categories/abc",
			body:       RenameCategoryRequest{Title: "Doing"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "insert column",
			method: http.MethodPost,
			path:   "/categories/0/insert",
			body:   InsertCategoryRequest{Position: "ahead"},
			mockSetup: func(m *mocks.MockBoardService) {
				m.EXPECT().InsertCategory(gomock.Any(), 0, board.Ahead).Return(1, nil)
			},
			wantStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var got InsertCategoryResponse
				if err := json.NewDecoder(w.Body).Decode(&got); err != nil || got.Index != 1 {
					t.Errorf("response = %+v, %v", got, err)
				}
			},
		},
		{
			name:   "remove last column",
			method: http.MethodDelete,
			path:   "/categories/0",
			mockSetup: func(m *mocks.MockBoardService) {
				m.EXPECT().RemoveCategory(gomock.Any(), 0).Return(false, nil)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "remove column",
			method: http.MethodDelete,
			path:   "/categories/1",
			mockSetup: func(m *mocks.MockBoardService) {
				m.EXPECT().RemoveCategory(gomock.Any(), 1).Return(true, nil)
				m.EXPECT().Board(gomock.Any()).Return(service.BoardView{})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "collapse out of range",
			method: http.MethodPost,
			path:   "/categories/9/collapse",
			mockSetup: func(m *mocks.MockBoardService) {
				m.EXPECT().ToggleCollapse(gomock.Any(), 9).
					Return(board.Category{}, fmt.Errorf("column 9: %w", service.ErrNotFound))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "undo",
			method: http.MethodPost,
			path:   "/history/undo",
			mockSetup: func(m *mocks.MockBoardService) {
				m.EXPECT().Undo(gomock.Any()).Return(true, nil)
				m.EXPECT().Board(gomock.Any()).Return(service.BoardView{History: service.HistoryStatus{CanRedo: true}})
			},
			wantStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var got ActionResponse
				if err := json.NewDecoder(w.Body).Decode(&got); err != nil || !got.Applied || !got.Board.History.CanRedo {
					t.Errorf("response = %+v, %v", got, err)
				}
			},
		},
		{
			name:   "redo with nothing to redo",
			method: http.MethodPost,
			path:   "/history/redo",
			mockSetup: func(m *mocks.MockBoardService) {
				m.EXPECT().Redo(gomock.Any()).Return(false, nil)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "redo storage failure",
			method: http.MethodPost,
			path:   "/history/redo",
			mockSetup: func(m *mocks.MockBoardService) {
				m.EXPECT().Redo(gomock.Any()).Return(false, service.ErrStorage)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBoardService := mocks.NewMockBoardService(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockBoardService)
			}

			var body *bytes.Buffer
			if tt.body != nil {
				body = jsonBody(t, tt.body)
			} else {
				body = &bytes.Buffer{}
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			w := httptest.NewRecorder()

			testRouter(NewBoardHandler(mockBoardService)).ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("%s %s status = %v, want %v (body %s)", tt.method, tt.path, w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestBoardHandler_Import(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	payload := `{"version":"0.3","categories":[],"entries":[]}`

	t.Run("accepted", func(t *testing.T) {
		m := mocks.NewMockBoardService(ctrl)
		m.EXPECT().Import(gomock.Any(), []byte(payload)).Return(nil)
		m.EXPECT().Board(gomock.Any()).Return(service.BoardView{Notice: &service.Notice{Kind: service.NoticeSuccess}})

		w := httptest.NewRecorder()
		testRouter(NewBoardHandler(m)).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/import", strings.NewReader(payload)))

		if w.Code != http.StatusOK {
			t.Fatalf("status = %v, body %s", w.Code, w.Body.String())
		}
		var got service.BoardView
		if err := json.NewDecoder(w.Body).Decode(&got); err != nil || got.Notice == nil {
			t.Errorf("response = %+v, %v", got, err)
		}
	})

	t.Run("rejected", func(t *testing.T) {
		m := mocks.NewMockBoardService(ctrl)
		m.EXPECT().Import(gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("import: %w: %w", service.ErrInvalidInput, errors.New("unsupported document version")))

		w := httptest.NewRecorder()
		testRouter(NewBoardHandler(m)).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/import", strings.NewReader(`{}`)))

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %v", w.Code)
		}
		if !strings.Contains(w.Body.String(), "unsupported document version") {
			t.Errorf("body = %s", w.Body.String())
		}
	})

	t.Run("too large", func(t *testing.T) {
		m := mocks.NewMockBoardService(ctrl)

		big := strings.NewReader(strings.Repeat(" ", maxImportSize+1))
		w := httptest.NewRecorder()
		testRouter(NewBoardHandler(m)).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/import", big))

		if w.Code != http.StatusRequestEntityTooLarge {
			t.Errorf("status = %v", w.Code)
		}
	})
}

func TestBoardHandler_Export(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	data := []byte("{\n  \"version\": \"0.3\"\n}")
	m := mocks.NewMockBoardService(ctrl)
	m.EXPECT().Export(gomock.Any()).Return("board-2024-01-02T03:04:05.000Z.json", data, nil)

	w := httptest.NewRecorder()
	testRouter(NewBoardHandler(m)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/export", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %v", w.Code)
	}
	if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="board-2024-01-02T03:04:05.000Z.json"` {
		t.Errorf("Content-Disposition = %q", got)
	}
	if !bytes.Equal(w.Body.Bytes(), data) {
		t.Errorf("body = %s", w.Body.String())
	}
}

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealthHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		pingErr    error
		wantStatus int
		wantState  string
	}{
		{name: "healthy", method: http.MethodGet, wantStatus: http.StatusOK, wantState: "healthy"},
		{name: "store down", method: http.MethodGet, pingErr: errors.New("connection refused"), wantStatus: http.StatusServiceUnavailable, wantState: "unhealthy"},
		{name: "wrong method", method: http.MethodPost, wantStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(stubPinger{err: tt.pingErr}, "sqlite")
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, httptest.NewRequest(tt.method, "/api/health", nil))

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %v, want %v", w.Code, tt.wantStatus)
			}
			if tt.wantState == "" {
				return
			}
			var resp HealthResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Status != tt.wantState || resp.Checks["backend"] != "sqlite" {
				t.Errorf("response = %+v", resp)
			}
		})
	}
}

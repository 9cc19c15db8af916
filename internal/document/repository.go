package document

import (
	"context"
	"fmt"
	"log/slog"

	"personal-kanban/internal/contextutil"
	"personal-kanban/internal/storage"
)

// DefaultStorageKey is the key the board document is stored under.
const DefaultStorageKey = "boardData"

// Repository reads and writes the board document through a KV port.
type Repository struct {
	kv  storage.KV
	key string
}

// NewRepository creates a Repository storing the document under key.
// An empty key falls back to DefaultStorageKey.
func NewRepository(kv storage.KV, key string) *Repository {
	if key == "" {
		key = DefaultStorageKey
	}
	return &Repository{kv: kv, key: key}
}

// Load returns the stored document, migrated to CurrentVersion.
// ok is false when nothing is stored or the stored data can't be used;
// unreadable data is logged and treated as absent.
func (r *Repository) Load(ctx context.Context) (Document, bool, error) {
	logger := contextutil.LoggerFromContext(ctx)

	raw, found, err := r.kv.Get(ctx, r.key)
	if err != nil {
		return Document{}, false, fmt.Errorf("read board document: %w", err)
	}
	if !found || raw == "" {
		return Document{}, false, nil
	}

	doc, err := Parse([]byte(raw))
	if err != nil {
		logger.WarnContext(ctx, "stored board document is unusable, ignoring it", "key", r.key, "error", err)
		return Document{}, false, nil
	}

	return doc, true, nil
}

// Save validates doc and writes it. Documents not at CurrentVersion are rejected.
func (r *Repository) Save(ctx context.Context, doc Document) error {
	logger := contextutil.LoggerFromContext(ctx)

	if err := Check(doc); err != nil {
		logger.ErrorContext(ctx, "refusing to store board document", "error", err)
		return err
	}

	data, err := Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode board document: %w", err)
	}

	if err := r.kv.Set(ctx, r.key, string(data)); err != nil {
		logger.ErrorContext(ctx, "couldn't store board document", "key", r.key, "error", err)
		return fmt.Errorf("write board document: %w", err)
	}

	logger.DebugContext(ctx, "board document stored", slog.Int("categories", len(doc.Categories)), slog.Int("entries", len(doc.Entries)))
	return nil
}

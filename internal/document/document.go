// Package document defines the persisted board document, its schema versions and the
// migration chain that upgrades older documents to the current version.
package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"personal-kanban/internal/clock"
)

// CurrentVersion is the schema version written by this program.
const CurrentVersion = "0.3"

var (
	// ErrInvalidDocument is returned when a document does not match its schema.
	ErrInvalidDocument = errors.New("invalid board document")
	// ErrUnsupportedVersion is returned for versions no migration path starts from.
	ErrUnsupportedVersion = errors.New("unsupported board document version")
)

// DefaultCategories are the columns of a freshly created board.
var DefaultCategories = []string{"Backlog", "Todo", "Today", "Done"}

// CategoryEntry is the persisted shape of a column.
type CategoryEntry struct {
	IsCollapsed bool   `json:"isCollapsed"`
	Title       string `json:"title"`
}

// CardEntry is the persisted shape of a card. Cards have no persisted identity:
// ids are assigned at load time.
type CardEntry struct {
	CategoryIdx     int     `json:"categoryIdx"`
	OrderInCategory float64 `json:"orderInCategory"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
}

// Document is the whole persisted board.
type Document struct {
	Version    string          `json:"version"`
	Categories []CategoryEntry `json:"categories"`
	Entries    []CardEntry     `json:"entries"`
}

// Default returns an empty board with the given column titles.
// A nil or empty list falls back to DefaultCategories.
func Default(titles []string) Document {
	if len(titles) == 0 {
		titles = DefaultCategories
	}
	categories := make([]CategoryEntry, 0, len(titles))
	for _, title := range titles {
		categories = append(categories, CategoryEntry{Title: title})
	}
	return Document{
		Version:    CurrentVersion,
		Categories: categories,
		Entries:    []CardEntry{},
	}
}

// Clone returns a deep copy of d.
func (d Document) Clone() Document {
	out := Document{Version: d.Version}
	out.Categories = append([]CategoryEntry{}, d.Categories...)
	out.Entries = append([]CardEntry{}, d.Entries...)
	return out
}

// ValidationError describes the first schema violation found in a document.
type ValidationError struct {
	Version string
	Path    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("board document v%s invalid at %s: %s", e.Version, e.Path, e.Message)
}

// Is makes errors.Is(err, ErrInvalidDocument) hold for schema violations.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidDocument
}

// Parse decodes raw JSON, migrates it to CurrentVersion if needed and validates it.
func Parse(data []byte) (Document, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return FromRaw(raw)
}

// FromRaw migrates and validates an already decoded JSON value.
func FromRaw(raw any) (Document, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return Document{}, fmt.Errorf("%w: top level is not an object", ErrInvalidDocument)
	}

	migrated, err := Migrate(obj)
	if err != nil {
		return Document{}, err
	}
	if err := Validate(migrated); err != nil {
		return Document{}, err
	}

	var doc Document
	if err := convert(migrated, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return doc, nil
}

// Check validates a typed document against the current schema.
func Check(doc Document) error {
	if doc.Version != CurrentVersion {
		return fmt.Errorf("%w: %q, want %q", ErrUnsupportedVersion, doc.Version, CurrentVersion)
	}
	var raw any
	if err := convert(doc, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return Validate(raw)
}

// Marshal encodes doc compactly, as stored.
func Marshal(doc Document) ([]byte, error) {
	return json.Marshal(normalizeNil(doc))
}

// MarshalIndent encodes doc as pretty-printed JSON, as exported.
func MarshalIndent(doc Document) ([]byte, error) {
	return json.MarshalIndent(normalizeNil(doc), "", "  ")
}

// ExportFilename returns the download name for a board exported at t.
func ExportFilename(t time.Time) string {
	return "board-" + clock.ISO(t) + ".json"
}

func normalizeNil(doc Document) Document {
	if doc.Categories == nil {
		doc.Categories = []CategoryEntry{}
	}
	if doc.Entries == nil {
		doc.Entries = []CardEntry{}
	}
	return doc
}

// convert round-trips v through JSON into out.
func convert(v any, out any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

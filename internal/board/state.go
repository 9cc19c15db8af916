package board

import (
	"slices"

	"personal-kanban/internal/clock"
	"personal-kanban/internal/document"
)

// State is the whole board: categories plus cards.
type State struct {
	Categories []Category `json:"categories"`
	Cards      []Card     `json:"cards"`
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	return State{
		Categories: slices.Clone(s.Categories),
		Cards:      slices.Clone(s.Cards),
	}
}

// FromDocument builds a State from a persisted document. Every category and card
// gets a fresh runtime id, a document without categories gets defaultTitles,
// and cards pointing at missing categories are moved to category 0.
func FromDocument(doc document.Document, ids clock.Source, defaultTitles []string) State {
	entries := doc.Categories
	if len(entries) == 0 {
		entries = document.Default(defaultTitles).Categories
	}

	categories := make([]Category, 0, len(entries))
	for _, e := range entries {
		categories = append(categories, Category{
			ID:          ids.NewID(),
			Title:       e.Title,
			IsCollapsed: e.IsCollapsed,
		})
	}

	cards := make([]Card, 0, len(doc.Entries))
	for _, e := range doc.Entries {
		cards = append(cards, Card{
			ID:              ids.NewID(),
			Title:           e.Title,
			Description:     e.Description,
			CategoryIdx:     e.CategoryIdx,
			OrderInCategory: e.OrderInCategory,
		})
	}

	return State{
		Categories: categories,
		Cards:      RepairOrphans(cards, len(categories)),
	}
}

// Document converts s to its persisted form, dropping runtime ids.
func (s State) Document() document.Document {
	doc := document.Document{
		Version:    document.CurrentVersion,
		Categories: make([]document.CategoryEntry, 0, len(s.Categories)),
		Entries:    make([]document.CardEntry, 0, len(s.Cards)),
	}
	for _, c := range s.Categories {
		doc.Categories = append(doc.Categories, document.CategoryEntry{
			IsCollapsed: c.IsCollapsed,
			Title:       c.Title,
		})
	}
	for _, c := range s.Cards {
		doc.Entries = append(doc.Entries, document.CardEntry{
			CategoryIdx:     c.CategoryIdx,
			OrderInCategory: c.OrderInCategory,
			Title:           c.Title,
			Description:     c.Description,
		})
	}
	return doc
}

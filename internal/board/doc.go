// Package board is the in-memory board state engine: the category store, the card
// store with its fractional intra-category ordering, the compound column commands
// that keep both stores consistent, and the bounded undo/redo history.
//
// Every function here is pure: inputs are never modified and new slices are returned.
// Persistence and command dispatch live in package service.
package board

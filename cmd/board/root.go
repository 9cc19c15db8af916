package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"personal-kanban/internal/board"
	"personal-kanban/internal/clock"
	"personal-kanban/internal/config"
	"personal-kanban/internal/contextutil"
	"personal-kanban/internal/document"
	"personal-kanban/internal/service"
	"personal-kanban/internal/storage"
)

// app carries the root flags and the loaded configuration.
type app struct {
	dbPath  string
	backend string
	cfg     *config.Config
	clock   clock.Source
}

func newRootCmd() *cobra.Command {
	a := &app{clock: clock.System{}}

	rootCmd := &cobra.Command{
		Use:           "board",
		Short:         "Personal kanban board",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if a.dbPath != "" {
				cfg.DBPath = a.dbPath
			}
			if a.backend != "" {
				cfg.Storage = strings.ToLower(a.backend)
			}
			a.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.dbPath, "db", "", "database path (default from DB_PATH)")
	rootCmd.PersistentFlags().StringVar(&a.backend, "storage", "", "storage backend: sqlite, redis or memory (default from BOARD_STORAGE)")

	rootCmd.AddCommand(
		a.showCmd(),
		a.addCmd(),
		a.editCmd(),
		a.moveCmd(),
		a.rmCmd(),
		a.columnCmd(),
		a.exportCmd(),
		a.importCmd(),
	)
	return rootCmd
}

// withBoard opens the configured store, loads the board and runs fn against it.
func (a *app) withBoard(cmd *cobra.Command, fn func(ctx context.Context, svc service.BoardService) error) error {
	logger := a.cfg.NewLogger(cmd.ErrOrStderr())
	slog.SetDefault(logger)
	ctx := contextutil.WithLogger(cmd.Context(), logger)

	kv, err := storage.Open(storage.Options{
		Backend:  a.cfg.Storage,
		DBPath:   a.cfg.DBPath,
		RedisURL: a.cfg.RedisURL,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := kv.Close(); err != nil {
			logger.WarnContext(ctx, "failed to close storage", slog.Any("error", err))
		}
	}()

	svc, err := service.NewBoardService(ctx, document.NewRepository(kv, a.cfg.StorageKey), service.Options{
		DefaultCategories: a.cfg.Board.DefaultCategories,
		HistoryLimit:      a.cfg.Board.HistoryLimit,
		NoticeTTL:         a.cfg.Board.NoticeTTL.Duration,
		Clock:             a.clock,
	})
	if err != nil {
		return err
	}
	return fn(ctx, svc)
}

// resolveCard finds the card addressed as "column.position", e.g. "1.0".
func resolveCard(view service.BoardView, ref string) (board.Card, error) {
	colStr, posStr, ok := strings.Cut(ref, ".")
	if !ok {
		return board.Card{}, fmt.Errorf("card reference %q must look like column.position", ref)
	}
	col, err := strconv.Atoi(colStr)
	if err != nil {
		return board.Card{}, fmt.Errorf("card reference %q: bad column: %w", ref, err)
	}
	pos, err := strconv.Atoi(posStr)
	if err != nil {
		return board.Card{}, fmt.Errorf("card reference %q: bad position: %w", ref, err)
	}
	if col < 0 || col >= len(view.Columns) {
		return board.Card{}, fmt.Errorf("card reference %q: no column %d", ref, col)
	}
	cards := view.Columns[col].Cards
	if pos < 0 || pos >= len(cards) {
		return board.Card{}, fmt.Errorf("card reference %q: column %d has %d cards", ref, col, len(cards))
	}
	return cards[pos], nil
}

// parseIndex parses a column index argument.
func parseIndex(s string) (int, error) {
	idx, err := strconv.Atoi(s)
	if err != nil || idx < 0 {
		return 0, fmt.Errorf("column index %q must be a non-negative integer", s)
	}
	return idx, nil
}

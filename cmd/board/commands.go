package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"personal-kanban/internal/board"
	"personal-kanban/internal/service"
)

func (a *app) showCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withBoard(cmd, func(ctx context.Context, svc service.BoardService) error {
				view := svc.Board(ctx)
				if asJSON {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					return enc.Encode(view)
				}
				printBoard(cmd.OutOrStdout(), view)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the board as JSON")
	return cmd
}

func printBoard(w io.Writer, view service.BoardView) {
	for _, col := range view.Columns {
		marker := ""
		if col.Category.IsCollapsed {
			marker = " (collapsed)"
		}
		fmt.Fprintf(w, "[%d] %s%s - %d cards\n", col.Index, col.Category.Title, marker, len(col.Cards))
		if col.Category.IsCollapsed {
			continue
		}
		for i, c := range col.Cards {
			fmt.Fprintf(w, "  %d.%d  %s\n", col.Index, i, c.Title)
		}
	}
}

func (a *app) addCmd() *cobra.Command {
	var (
		column      int
		description string
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a card at the bottom of a column",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withBoard(cmd, func(ctx context.Context, svc service.BoardService) error {
				card, err := svc.AddCard(ctx, service.CardInput{
					Title:       strings.Join(args, " "),
					Description: description,
					CategoryIdx: column,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %d.%d  %s\n", card.CategoryIdx, int(card.OrderInCategory), card.Title)
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&column, "column", "c", 0, "column index")
	cmd.Flags().StringVarP(&description, "desc", "d", "", "card description (markdown)")
	return cmd
}

func (a *app) editCmd() *cobra.Command {
	var (
		title       string
		description string
		column      int
	)

	cmd := &cobra.Command{
		Use:   "edit [column.position]",
		Short: "Edit a card's title, description or column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withBoard(cmd, func(ctx context.Context, svc service.BoardService) error {
				card, err := resolveCard(svc.Board(ctx), args[0])
				if err != nil {
					return err
				}
				flags := cmd.Flags()
				if flags.Changed("title") {
					card.Title = title
				}
				if flags.Changed("desc") {
					card.Description = description
				}
				if flags.Changed("column") && column != card.CategoryIdx {
					card.CategoryIdx = column
					card.OrderInCategory, _ = board.MovedOrder(card.OrderInCategory, board.Bottom)
				}

				updated, err := svc.UpdateCard(ctx, card)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated %d.%d  %s\n", updated.CategoryIdx, int(updated.OrderInCategory), updated.Title)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&description, "desc", "d", "", "new description (markdown)")
	cmd.Flags().IntVarP(&column, "column", "c", 0, "move to column index")
	return cmd
}

func (a *app) moveCmd() *cobra.Command {
	var to int

	cmd := &cobra.Command{
		Use:   "move [column.position] [up|down|top|bottom]",
		Short: "Move a card inside its column, or to another column with --to",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			toSet := cmd.Flags().Changed("to")
			if !toSet && len(args) != 2 {
				return fmt.Errorf("give a direction or --to")
			}
			var direction board.Direction
			if !toSet {
				d, err := board.ParseDirection(strings.ToLower(args[1]))
				if err != nil {
					return err
				}
				direction = d
			}

			return a.withBoard(cmd, func(ctx context.Context, svc service.BoardService) error {
				card, err := resolveCard(svc.Board(ctx), args[0])
				if err != nil {
					return err
				}

				var moved board.Card
				if toSet {
					moved, err = svc.MoveCardToCategory(ctx, card.ID, to)
				} else {
					moved, err = svc.MoveCard(ctx, card.ID, direction)
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Moved to %d.%d  %s\n", moved.CategoryIdx, int(moved.OrderInCategory), moved.Title)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&to, "to", 0, "send the card to the bottom of this column")
	return cmd
}

func (a *app) rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [column.position]",
		Short: "Delete a card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withBoard(cmd, func(ctx context.Context, svc service.BoardService) error {
				card, err := resolveCard(svc.Board(ctx), args[0])
				if err != nil {
					return err
				}
				if err := svc.DeleteCard(ctx, card.ID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", card.Title)
				return nil
			})
		},
	}
}

func (a *app) columnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column",
		Short: "Manage columns",
	}
	cmd.AddCommand(a.columnAddCmd(), a.columnRmCmd(), a.columnRenameCmd(), a.columnCollapseCmd())
	return cmd
}

func (a *app) columnAddCmd() *cobra.Command {
	var position string

	cmd := &cobra.Command{
		Use:   "add [ref]",
		Short: "Insert a new column ahead of or behind column ref",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			pos, err := board.ParsePosition(strings.ToLower(position))
			if err != nil {
				return err
			}
			return a.withBoard(cmd, func(ctx context.Context, svc service.BoardService) error {
				at, err := svc.InsertCategory(ctx, ref, pos)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Inserted %q at %d\n", board.NewColumnTitle, at)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&position, "position", "p", string(board.Ahead), "ahead or behind")
	return cmd
}

func (a *app) columnRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [index]",
		Short: "Remove a column and its cards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return a.withBoard(cmd, func(ctx context.Context, svc service.BoardService) error {
				removed, err := svc.RemoveCategory(ctx, idx)
				if err != nil {
					return err
				}
				if !removed {
					fmt.Fprintln(cmd.OutOrStdout(), "The last column can't be removed")
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed column %d\n", idx)
				return nil
			})
		},
	}
}

func (a *app) columnRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename [index] [title]",
		Short: "Rename a column",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return a.withBoard(cmd, func(ctx context.Context, svc service.BoardService) error {
				category, err := svc.RenameCategory(ctx, idx, strings.Join(args[1:], " "))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Renamed column %d to %q\n", idx, category.Title)
				return nil
			})
		},
	}
}

func (a *app) columnCollapseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "collapse [index]",
		Short: "Toggle a column's collapsed flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return a.withBoard(cmd, func(ctx context.Context, svc service.BoardService) error {
				category, err := svc.ToggleCollapse(ctx, idx)
				if err != nil {
					return err
				}
				state := "expanded"
				if category.IsCollapsed {
					state = "collapsed"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Column %d %s\n", idx, state)
				return nil
			})
		},
	}
}

func (a *app) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write the board as JSON, to file or a timestamped name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withBoard(cmd, func(ctx context.Context, svc service.BoardService) error {
				name, data, err := svc.Export(ctx)
				if err != nil {
					return err
				}
				if len(args) == 1 {
					name = args[0]
				}
				if name == "-" {
					_, err := cmd.OutOrStdout().Write(data)
					return err
				}
				if err := os.WriteFile(name, data, 0o644); err != nil {
					return fmt.Errorf("write export: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", name)
				return nil
			})
		},
	}
}

func (a *app) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Replace the board with a JSON document of any supported version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read import: %w", err)
			}
			return a.withBoard(cmd, func(ctx context.Context, svc service.BoardService) error {
				if err := svc.Import(ctx, data); err != nil {
					return err
				}
				view := svc.Board(ctx)
				cards := 0
				for _, col := range view.Columns {
					cards += len(col.Cards)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d columns, %d cards\n", len(view.Columns), cards)
				return nil
			})
		},
	}
}

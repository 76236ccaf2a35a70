package main

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"projex/internal/tui"
)

func boardCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the task board in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			// Logs would corrupt the screen.
			a, err := newApp(ctx, f, io.Discard)
			if err != nil {
				return err
			}
			defer a.close()

			board := tui.NewBoard(ctx, a.actions)
			defer board.Close()

			if _, err := tea.NewProgram(board, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("board: %w", err)
			}
			return nil
		},
	}
}

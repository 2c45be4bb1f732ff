// Package cmd defines the kalk command-line interface.
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rahmanda/kalk/internal/session"
	"github.com/rahmanda/kalk/internal/tui"
)

// Version is the binary version, overridden at build time via ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "kalk",
	Short: "Interactive four-number calculator",
	Long: `kalk reads four numbers and three operators (+, -, *, /) and evaluates
them strictly left to right, with no operator precedence: 2 + 3 * 4 - 5
is ((2+3)*4)-5 = 15.

By default kalk runs as a prompt/response loop on stdin/stdout. Use --tui
for the full-screen terminal interface.`,
	SilenceUsage: true,
	RunE:         runRoot,
}

var rootTUI bool

func init() {
	rootCmd.Flags().BoolVar(&rootTUI, "tui", false, "run the full-screen terminal UI")
}

// Execute runs the root command, exiting nonzero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	if rootTUI {
		final, err := tea.NewProgram(tui.New()).Run()
		if err != nil {
			return fmt.Errorf("failed to run terminal ui: %w", err)
		}
		if m, ok := final.(tui.Model); ok && m.Err() != nil {
			return m.Err()
		}
		return nil
	}
	return session.New(os.Stdin, os.Stdout).Run()
}

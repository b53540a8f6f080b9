package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for revisor.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "revisor",
		Short: "Formatting checker for Word and OpenDocument manuscripts",
		Long: `revisor checks the formatting of Word (.docx) and OpenDocument Text (.odt)
documents and writes a plain-text report for each one: font and font size
usage, average page margins, indentation, line spacing, numbered lines and
paragraph alignment up to the references section.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command. fang renders help and errors; it also
// owns the version flag, so the version string is passed through.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		NewRootCmd(),
		fang.WithVersion(getVersion()),
	); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tsawler/revisor/internal/batch"
	"github.com/tsawler/revisor/internal/config"
)

// errDocumentsFailed is returned when at least one document could not be
// analyzed.
var errDocumentsFailed = errors.New("some documents could not be analyzed")

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [dir|file ...]",
		Short: "Analyze the documents in one or more directories",
		Long: `Analyze every document in the given directories (the current directory
when none is given) and write "<name>_analysis.txt" next to each document.
Only .docx files are picked up unless the configuration lists more
extensions, such as .odt. Files given directly are analyzed regardless of
extension.

Settings are read from --config, ./.revisor.yaml or
$XDG_CONFIG_HOME/revisor/config.yaml; flags override the file.`,
		RunE: runAnalyzeCmd,
	}

	cmd.Flags().StringP("config", "c", "",
		"Path to a configuration file")
	cmd.Flags().String("suffix", config.DefaultSuffix,
		"Suffix appended to the document name for the report file")
	cmd.Flags().IntP("workers", "w", config.DefaultWorkers,
		"Number of documents analyzed concurrently")
	cmd.Flags().Bool("inherit-styles", false,
		"Fill unset formatting from the document's styles")
	cmd.Flags().StringP("output-dir", "o", "",
		"Directory for reports (default: next to each document)")

	return cmd
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	// Build config from file and flags
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg.Verbose)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Handle interrupt signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Warn("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	if len(args) == 0 {
		args = []string{"."}
	}

	return runAnalyze(ctx, cfg, args, logger, cmd.OutOrStdout())
}

// runAnalyze discovers the documents in paths and analyzes them.
func runAnalyze(ctx context.Context, cfg *config.Config, paths []string, logger *log.Logger, out io.Writer) error {
	jobs, err := batch.Discover(paths, cfg)
	if err != nil {
		return err
	}

	p := batch.NewProcessor(cfg, batch.WithLogger(logger), batch.WithNotice(out))
	outcomes, err := p.Run(ctx, jobs)
	if err != nil {
		return err
	}

	if failed := batch.Failed(outcomes); failed > 0 {
		return fmt.Errorf("%w: %d of %d failed", errDocumentsFailed, failed, len(outcomes))
	}
	return nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from the configuration file and the flags
// the user set explicitly.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use defaults if no file found.
	cfg, path, err := config.Load(configPath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("configuration file not found: %s", configPath)
		}
		return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
	}

	flags := cmd.Flags()

	if flags.Changed("suffix") {
		if cfg.Suffix, err = flags.GetString("suffix"); err != nil {
			return nil, err
		}
	}

	if flags.Changed("workers") {
		if cfg.Workers, err = flags.GetInt("workers"); err != nil {
			return nil, err
		}
	}

	if flags.Changed("inherit-styles") {
		if cfg.InheritStyles, err = flags.GetBool("inherit-styles"); err != nil {
			return nil, err
		}
	}

	if flags.Changed("output-dir") {
		if cfg.OutputDir, err = flags.GetString("output-dir"); err != nil {
			return nil, err
		}
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// setupLogger creates a logger based on verbosity setting.
func setupLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Prefix: "revisor",
		Level:  level,
	})
}

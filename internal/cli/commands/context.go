// Package commands implements the refstack subcommands.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/refstack-labs/refstack/internal/config"
	"github.com/refstack-labs/refstack/pkg/metadata"
	"github.com/spf13/cobra"
)

// CommandContext bundles what every subcommand needs: the loaded
// manifest, the validated references, and a logger honoring --verbose.
type CommandContext struct {
	Manifest *config.Manifest
	Refs     []metadata.Reference
	Logger   *slog.Logger
	Output   string
}

// NewCommandContext loads the manifest named by --config (or discovered
// in the working directory) and validates every reference entry.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	flags := cmd.Root().PersistentFlags()
	cfgFile, _ := flags.GetString("config")
	verbose, _ := flags.GetBool("verbose")
	outputFlag, _ := flags.GetString("output")

	manifest, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	refs, err := manifest.Resolve()
	if err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	output := manifest.Output
	if outputFlag != "" {
		output = outputFlag
	}
	if output != "text" && output != "json" {
		return nil, fmt.Errorf("unknown output format %q (want text or json)", output)
	}

	return &CommandContext{
		Manifest: manifest,
		Refs:     refs,
		Logger:   logger,
		Output:   output,
	}, nil
}

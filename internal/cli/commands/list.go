package commands

import (
	"encoding/json"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/refstack-labs/refstack/pkg/metadata"
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured metadata references",
		Long: `List every reference in the manifest with its kind, extern
aliases, and interop-embedding flag.`,
		Example: `  # List references as a table
  refstack list

  # List references as JSON
  refstack list --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd)
		},
	}
}

// listEntry is the JSON shape of one reference.
type listEntry struct {
	Path              string   `json:"path"`
	Kind              string   `json:"kind"`
	Aliases           []string `json:"aliases"`
	EmbedInteropTypes bool     `json:"embed_interop_types"`
}

func runList(cmd *cobra.Command) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	if cmdCtx.Output == "json" {
		entries := make([]listEntry, 0, len(cmdCtx.Refs))
		for _, ref := range cmdCtx.Refs {
			entries = append(entries, listEntry{
				Path:              ref.Path,
				Kind:              ref.Properties.Kind().String(),
				Aliases:           ref.Properties.Aliases(),
				EmbedInteropTypes: ref.Properties.EmbedInteropTypes(),
			})
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Path", "Kind", "Aliases", "Embed Interop"})
	for _, ref := range cmdCtx.Refs {
		aliases := strings.Join(ref.Properties.Aliases(), ", ")
		if aliases == "" {
			aliases = "(" + metadata.GlobalAlias + ")"
		}
		t.AppendRow(table.Row{
			ref.Path,
			ref.Properties.Kind().String(),
			aliases,
			ref.Properties.EmbedInteropTypes(),
		})
	}
	t.Render()
	return nil
}

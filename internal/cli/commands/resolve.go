package commands

import (
	"encoding/json"
	"fmt"

	"github.com/refstack-labs/refstack/internal/resolver"
	"github.com/refstack-labs/refstack/pkg/diagnostic"
	"github.com/refstack-labs/refstack/pkg/probe"
	"github.com/spf13/cobra"
)

// NewResolveCommand creates the resolve command.
func NewResolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Resolve references into alias scopes",
		Long: `Probe every referenced artifact and report in which alias scopes its
symbols surface. A reference without aliases lands in the global scope;
aliased references surface only under their aliases. The run also reports
every file path it touched.`,
		Example: `  # Resolve the manifest in the current directory
  refstack resolve

  # Machine-readable result
  refstack resolve --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd)
		},
	}
}

// resolveReport is the JSON shape of a resolution run.
type resolveReport struct {
	Scopes       map[string][]resolver.Artifact `json:"scopes"`
	Diagnostics  []string                       `json:"diagnostics,omitempty"`
	TouchedPaths []string                       `json:"touched_paths"`
}

func runResolve(cmd *cobra.Command) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	recorder := probe.NewRecorder(probe.NewOSProbe())
	res := resolver.New(recorder, cmdCtx.Logger)
	result, err := res.Resolve(cmd.Context(), cmdCtx.Refs)
	if err != nil {
		return fmt.Errorf("resolution failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if cmdCtx.Output == "json" {
		report := resolveReport{
			Scopes:       result.Scopes,
			TouchedPaths: result.TouchedPaths,
		}
		for _, d := range result.Diagnostics {
			report.Diagnostics = append(report.Diagnostics, d.String())
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		for _, scope := range result.ScopeNames() {
			fmt.Fprintf(out, "scope %s:\n", scope)
			for _, artifact := range result.Scopes[scope] {
				embed := ""
				if artifact.EmbedInteropTypes {
					embed = " [embed interop]"
				}
				fmt.Fprintf(out, "  %s (%s)%s\n", artifact.Path, artifact.Kind, embed)
			}
		}
		for _, d := range result.Diagnostics {
			fmt.Fprintln(out, d.String())
		}
		fmt.Fprintf(out, "touched %d file(s):\n", len(result.TouchedPaths))
		for _, p := range result.TouchedPaths {
			fmt.Fprintf(out, "  %s\n", p)
		}
	}

	if diagnostic.HasSeverity(result.Diagnostics, diagnostic.SeverityError) {
		return fmt.Errorf("resolution completed with errors")
	}
	return nil
}

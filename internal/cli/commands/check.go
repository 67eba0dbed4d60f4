package commands

import (
	"encoding/json"
	"fmt"

	"github.com/refstack-labs/refstack/pkg/diagnostic"
	_ "github.com/refstack-labs/refstack/pkg/refcheck" // register reference analyzers
	"github.com/spf13/cobra"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run analyzers over the reference manifest",
		Long: `Run the registered reference analyzers and report findings.

Analyzers can be disabled or given a different severity in the manifest:

  check:
    disabled: [RC02]
    severity:
      RC01: error`,
		Example: `  # Check the manifest in the current directory
  refstack check

  # Machine-readable findings
  refstack check --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd)
		},
	}
}

func runCheck(cmd *cobra.Command) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	cfg := diagnostic.NewConfig()
	for _, id := range cmdCtx.Manifest.Check.Disabled {
		cfg.Disable(id)
	}
	for id, name := range cmdCtx.Manifest.Check.Severity {
		sev, ok := diagnostic.ParseSeverity(name)
		if !ok {
			return fmt.Errorf("check.severity.%s: unknown severity %q", id, name)
		}
		cfg.SetSeverity(id, sev)
	}

	runner := diagnostic.NewRegistryRunner(cfg)
	diags := runner.Run(cmdCtx.Refs)

	out := cmd.OutOrStdout()
	if cmdCtx.Output == "json" {
		lines := make([]string, 0, len(diags))
		for _, d := range diags {
			lines = append(lines, d.String())
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(lines); err != nil {
			return err
		}
	} else {
		if len(diags) == 0 {
			fmt.Fprintln(out, "no findings")
		}
		for _, d := range diags {
			fmt.Fprintln(out, d.String())
		}
	}

	if diagnostic.HasSeverity(diags, diagnostic.SeverityError) {
		return fmt.Errorf("check failed with errors")
	}
	return nil
}

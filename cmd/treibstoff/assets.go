package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/conestack/treibstoff"
	"github.com/conestack/treibstoff/internal/handlers"
	"github.com/conestack/treibstoff/resource"
)

func newAssetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assets",
		Short: "List the declared resources",
		Long: `List every declared resource with its file, URL and fingerprint.

Examples:
   treibstoff assets
   treibstoff assets --match '*.css' --format json
   treibstoff assets --minified`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			match, _ := cmd.Flags().GetString("match")
			format, _ := cmd.Flags().GetString("format")
			minified, _ := cmd.Flags().GetBool("minified")
			return writeAssets(cmd.OutOrStdout(), resource.Default, match, format, minified)
		},
	}
	cmd.Flags().String("match", "", "Only list resources whose file matches this glob pattern")
	cmd.Flags().String("format", "yaml", "Output format (yaml|json)")
	cmd.Flags().Bool("minified", false, "Describe the minified variants")
	return cmd
}

// writeAssets renders the manifest of reg, optionally filtered by a glob
// matched against each resource file.
func writeAssets(w io.Writer, reg *resource.Registry, match, format string, minified bool) error {
	if match != "" && !doublestar.ValidatePattern(match) {
		return fmt.Errorf("invalid --match pattern %q", match)
	}

	var prefix string
	if v := treibstoff.View(); v != nil {
		prefix = v.Prefix()
	}
	m := handlers.BuildManifest(reg, minified, prefix)

	if match != "" {
		kept := m.Resources[:0]
		for _, res := range m.Resources {
			// Pattern was validated above.
			if ok, _ := doublestar.Match(match, res.File); ok {
				kept = append(kept, res)
			}
		}
		m.Resources = kept
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown --format %q (want yaml or json)", format)
	}
}

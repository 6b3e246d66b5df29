package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conestack/treibstoff"
	"github.com/conestack/treibstoff/internal/buildinfo"
)

func newVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show package metadata",
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := buildinfo.Get()
			out := cmd.OutOrStdout()

			asJSON, _ := cmd.Flags().GetBool("json")
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}

			fmt.Fprintf(out, "%s %s\n", info.Name, info.Version)
			fmt.Fprintf(out, "%s\n", info.Description)
			fmt.Fprintf(out, "License: %s\n", info.License)
			if fw := treibstoff.HostFramework(); fw != "" {
				fmt.Fprintf(out, "Static view: %s (%s)\n", treibstoff.View().Prefix(), fw)
			} else {
				fmt.Fprintln(out, "Static view: unavailable")
			}
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func writeJSON(cmd *cobra.Command, value any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func writeRendered(cmd *cobra.Command, rendered string) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

package cmd

import (
	"fmt"

	"github.com/bnema/tschedule/internal/version"
	"github.com/spf13/cobra"
)

const skipWireAnnotation = "skip-wire"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Annotations: map[string]string{skipWireAnnotation: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Version)
			return err
		},
	}
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/vault-ci-helper/internal/service/legal"
)

var prepareLegalCmd = &cobra.Command{
	Use:   "prepare-legal",
	Short: "Stage the legal documents accompanying the release",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx, stop := newSignalContext()
		defer stop()

		return legal.Run(ctx, &legal.Options{})
	},
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.AddCommand(prepareLegalCmd)
}

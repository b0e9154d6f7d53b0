package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oshokin/vault-ci-helper/internal/repository/gitinfo"
)

var (
	dateCmd = &cobra.Command{
		Use:   "date",
		Short: "Print the build date derived from the last commit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := newSignalContext()
			defer stop()

			commitTime, err := gitinfo.NewRepository("").CommitTime(ctx)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), commitTime.Format(cfg.DateFormat))

			return err
		},
	}

	revisionCmd = &cobra.Command{
		Use:   "revision",
		Short: "Print the revision of the current checkout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := newSignalContext()
			defer stop()

			revision, err := gitinfo.NewRepository("").Revision(ctx)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), revision)

			return err
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.AddCommand(dateCmd, revisionCmd)
}

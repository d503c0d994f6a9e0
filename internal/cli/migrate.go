package cli

import (
	"io"

	"github.com/spf13/cobra"
)

func NewMigrateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "migrate",
		Short:        "Create or update the database schema",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBackend(cmd, opts, func(b Backend) error {
				if err := b.Migrate(cmd.Context()); err != nil {
					return err
				}
				return printResult(cmd.OutOrStdout(), opts.Format, map[string]bool{"migrated": true}, func(w io.Writer) {
					fprintf(w, "schema migrated\n")
				})
			})
		},
	}
}

func NewNormalizeAparsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize-apars",
		Short: "Copy legacy user references into the employee column",
		Long: `Fill employee_id from the legacy user_id column on every APAR that only
carries the legacy reference. Safe to run repeatedly.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBackend(cmd, opts, func(b Backend) error {
				n, err := b.NormalizeApars(cmd.Context())
				if err != nil {
					return err
				}
				return printResult(cmd.OutOrStdout(), opts.Format, map[string]int64{"updated": n}, func(w io.Writer) {
					fprintf(w, "normalized %d apar(s)\n", n)
				})
			})
		},
	}
}

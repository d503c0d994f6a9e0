package cli

import (
	"fmt"
	"io"

	"go-pms/internal/domain"
	"go-pms/internal/kpi"

	"github.com/spf13/cobra"
)

func NewTemplatesCommand(opts *RootOptions) *cobra.Command {
	var employerType string

	cmd := &cobra.Command{
		Use:          "templates",
		Short:        "List the default KPI templates",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := kpi.DefaultCatalog()
			types := []domain.EmployerType{domain.EmployerField, domain.EmployerHQ}
			if employerType != "" {
				et, err := domain.ParseEmployerType(employerType)
				if err != nil {
					return err
				}
				types = []domain.EmployerType{et}
			}

			out := make(map[string][]kpi.Template, len(types))
			for _, et := range types {
				out[string(et)] = catalog.For(et)
			}
			return printResult(cmd.OutOrStdout(), opts.Format, out, func(w io.Writer) {
				for _, et := range types {
					fprintf(w, "%s\n", et)
					for _, t := range out[string(et)] {
						fprintf(w, "  %-40s %6s  target=%s  %s\n", t.Name, fmt.Sprintf("%.0f%%", t.Weightage), fmt.Sprint(t.Target), t.Metric)
					}
				}
			})
		},
	}

	cmd.Flags().StringVarP(&employerType, "employer-type", "t", "", "Field or HQ (default: both)")
	return cmd
}

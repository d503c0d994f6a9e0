package cli

import (
	"fmt"
	"io"

	"go-pms/internal/apar"
	"go-pms/internal/kpi"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type analyzeOptions struct {
	AdminID    string
	EmployeeID string
	All        bool
	Apar       bool
	Year       int
}

func NewAnalyzeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run KPI analysis, or APAR analysis with --apar",
		Long: `Score KPIs from the e-Office formulas for one employee (--employee) or
every active employee (--all). With --apar, finalize the employee's APAR
for --year from the KPI totals instead.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := uuid.Parse(opts.AdminID); err != nil {
				return fmt.Errorf("--admin must be a uuid")
			}
			if opts.Apar {
				return runAparAnalysis(cmd, rootOpts, opts)
			}
			if opts.All == (opts.EmployeeID != "") {
				return fmt.Errorf("pass exactly one of --employee or --all")
			}
			return runKPIAnalysis(cmd, rootOpts, opts)
		},
	}

	cmd.Flags().StringVar(&opts.AdminID, "admin", "", "admin id recorded as the actor (required)")
	cmd.Flags().StringVarP(&opts.EmployeeID, "employee", "e", "", "employee id")
	cmd.Flags().BoolVar(&opts.All, "all", false, "analyse every active employee")
	cmd.Flags().BoolVar(&opts.Apar, "apar", false, "finalize the APAR instead of scoring KPIs")
	cmd.Flags().IntVar(&opts.Year, "year", 0, "APAR year (defaults to the current year)")
	_ = cmd.MarkFlagRequired("admin")

	return cmd
}

func runKPIAnalysis(cmd *cobra.Command, rootOpts *RootOptions, opts *analyzeOptions) error {
	return withBackend(cmd, rootOpts, func(b Backend) error {
		resp, err := b.AnalyzeKPIs(cmd.Context(), opts.AdminID, kpi.AnalyzeRequest{EmployeeID: opts.EmployeeID, All: opts.All})
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), rootOpts.Format, resp, func(w io.Writer) {
			fprintf(w, "analyzed %d employee(s), %d failure(s)\n", resp.AnalyzedCount, len(resp.Failures))
			for _, r := range resp.Results {
				fprintf(w, "  %s\tkpis=%d\ttotal=%.2f\n", r.EmployeeID, r.KPICount, r.TotalScore)
			}
			for _, f := range resp.Failures {
				fprintf(w, "  %s\tFAILED %s\n", f.EmployeeID, f.Error)
			}
		})
	})
}

func runAparAnalysis(cmd *cobra.Command, rootOpts *RootOptions, opts *analyzeOptions) error {
	if opts.EmployeeID == "" {
		return fmt.Errorf("--apar needs --employee")
	}
	return withBackend(cmd, rootOpts, func(b Backend) error {
		resp, err := b.AnalyzeApar(cmd.Context(), opts.AdminID, apar.AnalyzeAparRequest{EmployeeID: opts.EmployeeID, Year: opts.Year})
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), rootOpts.Format, resp, func(w io.Writer) {
			if !resp.HasData {
				fprintf(w, "%s\n", resp.Message)
				return
			}
			fprintf(w, "kpi=%.0f converted=%.0f reviewer=%.0f final=%.0f level=%s\n",
				resp.KPIScore, resp.ConvertedKPIScore, resp.ReviewerScore, resp.FinalScore, resp.PerformanceLevel)
		})
	})
}

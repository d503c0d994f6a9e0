// Package cli implements pmsctl, the operator command line for the
// performance management service.
package cli

import (
	"context"
	"fmt"

	"go-pms/internal/apar"
	"go-pms/internal/kpi"

	"github.com/spf13/cobra"
)

// Backend is the service surface the commands drive.
type Backend interface {
	Migrate(ctx context.Context) error
	NormalizeApars(ctx context.Context) (int64, error)
	AnalyzeKPIs(ctx context.Context, adminID string, req kpi.AnalyzeRequest) (kpi.AnalysisResponse, error)
	AnalyzeApar(ctx context.Context, adminID string, req apar.AnalyzeAparRequest) (apar.AnalyzeAparResponse, error)
	Close()
}

// BackendOpener connects a Backend on demand so commands that need no
// database never open one.
type BackendOpener func(ctx context.Context) (Backend, error)

type RootOptions struct {
	Format string // "json" | "text"
	Open   BackendOpener
}

var ValidFormats = []string{"text", "json"}

func NewRootCommand(open BackendOpener) *cobra.Command {
	opts := &RootOptions{Open: open}

	cmd := &cobra.Command{
		Use:   "pmsctl",
		Short: "pmsctl - performance management operator tool",
		Long:  "Operator tool for the performance management service: schema migration, APAR reference normalisation, KPI and APAR analysis, and template listing.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewNormalizeAparsCommand(opts))
	cmd.AddCommand(NewAnalyzeCommand(opts))
	cmd.AddCommand(NewTemplatesCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func withBackend(cmd *cobra.Command, opts *RootOptions, fn func(Backend) error) error {
	if opts.Open == nil {
		return fmt.Errorf("no backend configured")
	}
	b, err := opts.Open(cmd.Context())
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer b.Close()
	return fn(b)
}

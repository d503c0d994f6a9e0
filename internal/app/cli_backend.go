package app

import (
	"context"

	"go-pms/internal/access"
	"go-pms/internal/apar"
	"go-pms/internal/cli"
	"go-pms/internal/config"
	"go-pms/internal/kpi"
	"go-pms/internal/shared/contextutil"

	"github.com/google/uuid"
)

type cliBackend struct {
	infra   *Infra
	modules *Modules
}

// CLIBackendOpener connects the service graph for pmsctl. Redis stays off so
// analysis runs only hit Postgres.
func CLIBackendOpener(cfg config.Config) cli.BackendOpener {
	return func(ctx context.Context) (cli.Backend, error) {
		in, err := Connect(cfg, false)
		if err != nil {
			return nil, err
		}
		m, err := buildModules(in)
		if err != nil {
			in.Close()
			return nil, err
		}
		return &cliBackend{infra: in, modules: m}, nil
	}
}

func (b *cliBackend) Close() { b.infra.Close() }

func (b *cliBackend) Migrate(ctx context.Context) error {
	return Migrate(ctx, b.infra.GormDB)
}

func (b *cliBackend) NormalizeApars(ctx context.Context) (int64, error) {
	return b.modules.Apars.NormalizeLegacyReferences(ctx)
}

func (b *cliBackend) AnalyzeKPIs(ctx context.Context, adminID string, req kpi.AnalyzeRequest) (kpi.AnalysisResponse, error) {
	return b.modules.Analyzer.Analyze(operatorContext(ctx, adminID), adminCaller(adminID), req)
}

func (b *cliBackend) AnalyzeApar(ctx context.Context, adminID string, req apar.AnalyzeAparRequest) (apar.AnalyzeAparResponse, error) {
	return b.modules.Apars.Analyze(operatorContext(ctx, adminID), adminCaller(adminID), req)
}

func adminCaller(id string) access.Caller {
	return access.Caller{ID: id, Role: access.RoleAdmin}
}

func operatorContext(ctx context.Context, adminID string) context.Context {
	ctx = contextutil.WithRequestID(ctx, "pmsctl-"+uuid.NewString())
	return contextutil.WithUserID(ctx, adminID)
}

package app

import (
	"go-pms/internal/apar"
	"go-pms/internal/employee"
	"go-pms/internal/kpi"
	"go-pms/internal/kpisummary"
	"go-pms/internal/messaging/kafka"
	"go-pms/internal/middleware"
	"go-pms/internal/rbac"
	"go-pms/internal/rbac/infra"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Modules is the service graph shared by the API, the consumer and the CLI.
type Modules struct {
	RBAC       rbac.Service
	Employees  employee.Service
	KPIs       kpi.Service
	Analyzer   kpi.Analyzer
	Summaries  kpisummary.Service
	Apars      apar.Service
	AparRepo   apar.Repository
	OutboxRepo kafka.OutboxRepository
}

func buildModules(in *Infra) (*Modules, error) {
	cfg := in.Config

	// --- Repositories ---
	employeeRepo := employee.NewRepository(in.GormDB)
	kpiRepo := kpi.NewRepository(in.GormDB)
	summaryRepo := kpisummary.NewRepository(in.GormDB)
	aparRepo := apar.NewRepository(in.GormDB)
	outboxRepo := kafka.NewOutboxRepository(in.DB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(cfg.RBACModelPath)
	if err != nil {
		return nil, err
	}
	rbacRepo := rbac.NewCSVRepository(infra.DefaultPolicy)
	if cfg.RBACPolicyPath != "" {
		rbacRepo = rbac.NewFileRepository(cfg.RBACPolicyPath)
	}
	rbacService, err := rbac.NewService(rbacRepo, enforcer)
	if err != nil {
		return nil, err
	}

	// --- Services ---
	scoreSource := kpi.NewScoreSource(kpiRepo)
	summaryService := kpisummary.NewService(in.DB, summaryRepo, scoreSource, in.Redis, kpisummary.Config{
		SummaryTTL: cfg.KPISummaryTTL,
		ScoreTTL:   cfg.ScoreCacheTTL,
	})

	return &Modules{
		RBAC:      rbacService,
		Employees: employee.NewService(in.DB, employeeRepo, in.Redis),
		KPIs:      kpi.NewService(in.DB, kpiRepo, employeeRepo, outboxRepo, nil),
		Analyzer: kpi.NewAnalyzer(in.DB, kpiRepo, employeeRepo, summaryService, outboxRepo, kpi.AnalyzerConfig{
			Workers: cfg.AnalysisWorkers,
		}),
		Summaries: summaryService,
		Apars: apar.NewService(in.DB, aparRepo, employeeRepo, scoreSource, outboxRepo, apar.Config{
			HardDeleteSuperseded: cfg.AparHardDeleteSuperseded,
		}),
		AparRepo:   aparRepo,
		OutboxRepo: outboxRepo,
	}, nil
}

func registerModules(router *gin.Engine, in *Infra) error {
	m, err := buildModules(in)
	if err != nil {
		return err
	}
	logger := zap.L()

	// --- Handlers ---
	employeeHandler := employee.NewHandler(m.Employees)
	kpiHandler := kpi.NewHandler(m.KPIs, m.Analyzer)
	summaryHandler := kpisummary.NewHandler(m.Summaries)
	aparHandler := apar.NewHandler(m.Apars)
	rbacHandler := rbac.NewHandler(m.RBAC)

	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(rate.Limit(in.Config.RateLimitRPS), in.Config.RateLimitBurst))

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler, m.RBAC, logger)
		kpi.RegisterRoutes(api, kpiHandler, m.RBAC, in.Redis, logger)
		kpisummary.RegisterRoutes(api, summaryHandler, m.RBAC, logger)
		apar.RegisterRoutes(api, aparHandler, m.RBAC, in.Redis, logger)
		rbac.RegisterRoutes(api, rbacHandler, m.RBAC)
	}

	return nil
}

package kpi

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hash/fnv"
	"math"
	"sync"
	"time"

	"go-pms/internal/access"
	"go-pms/internal/domain"
	"go-pms/internal/events"
	kpierrors "go-pms/internal/kpi/errors"
	"go-pms/internal/kpisummary"
	"go-pms/internal/messaging/kafka"
	"go-pms/internal/scoring"
	"go-pms/internal/shared/apperror"
	"go-pms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	AnalysisStatusQueued = "queued"
	defaultWorkers       = 4
)

//go:generate mockgen -source=kpi_analysis.go -destination=mock/kpi_analysis_mock.go -package=mock
type Analyzer interface {
	Analyze(ctx context.Context, caller access.Caller, req AnalyzeRequest) (AnalysisResponse, error)
	Enqueue(ctx context.Context, caller access.Caller, req AnalyzeRequest) (AnalysisQueuedResponse, error)
	RunRequested(ctx context.Context, event events.KPIAnalysisRequestedEvent) error
}

type AnalyzerConfig struct {
	// Workers bounds how many employees are analysed at once in "all" mode.
	Workers  int
	Formulas *FormulaRegistry
	Inputs   InputSource
}

type analyzer struct {
	db        *sql.DB
	repo      Repository
	employees EmployeeReader
	summary   kpisummary.Service
	outbox    kafka.OutboxRepository
	formulas  *FormulaRegistry
	inputs    InputSource
	workers   int
	locks     [analysisLockStripes]sync.Mutex
	now       func() time.Time
	logger    *zap.Logger
}

func NewAnalyzer(
	db *sql.DB,
	repo Repository,
	employees EmployeeReader,
	summary kpisummary.Service,
	outbox kafka.OutboxRepository,
	cfg AnalyzerConfig,
	logger ...*zap.Logger,
) Analyzer {
	l := zap.L().Named("kpi.analyzer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kpi.analyzer")
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers
	}
	if cfg.Formulas == nil {
		cfg.Formulas = DefaultFormulas()
	}
	if cfg.Inputs == nil {
		cfg.Inputs = NewSimulatedSource(0)
	}
	return &analyzer{
		db:        db,
		repo:      repo,
		employees: employees,
		summary:   summary,
		outbox:    outbox,
		formulas:  cfg.Formulas,
		inputs:    cfg.Inputs,
		workers:   cfg.Workers,
		now:       func() time.Time { return time.Now().UTC() },
		logger:    l,
	}
}

// Analyze scores KPIs from the e-Office formulas. It is the only writer of
// achieved value and score on default KPIs. A single employee's failure is
// returned as an error; in "all" mode failures are collected per employee.
func (a *analyzer) Analyze(ctx context.Context, caller access.Caller, req AnalyzeRequest) (AnalysisResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	a.logger.Debug("kpi analysis requested",
		zap.String("request_id", rid),
		zap.String("caller_id", caller.ID),
		zap.String("employee_id", req.EmployeeID),
		zap.Bool("all", req.All),
	)

	if !caller.IsAdmin() {
		a.logger.Warn("kpi analysis forbidden", zap.String("caller_id", caller.ID))
		return AnalysisResponse{}, kpierrors.ErrAdminOnly
	}

	if req.All {
		return a.analyzeAll(ctx)
	}

	if req.EmployeeID == "" {
		return AnalysisResponse{}, apperror.RequiredField("employee_id")
	}
	if _, err := uuid.Parse(req.EmployeeID); err != nil {
		return AnalysisResponse{}, kpierrors.ErrInvalidEmployeeID
	}

	res, err := a.analyzeEmployee(ctx, req.EmployeeID)
	if err != nil {
		a.logger.Warn("kpi analysis failed",
			zap.String("request_id", rid),
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return AnalysisResponse{}, err
	}

	resp := AnalysisResponse{Results: []EmployeeAnalysis{res}}
	if res.HasData {
		resp.AnalyzedCount = 1
	}
	return resp, nil
}

// Enqueue records an analysis request in the outbox; the consumer process
// picks it up and calls RunRequested.
func (a *analyzer) Enqueue(ctx context.Context, caller access.Caller, req AnalyzeRequest) (AnalysisQueuedResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	if !caller.IsAdmin() {
		a.logger.Warn("enqueue kpi analysis forbidden", zap.String("caller_id", caller.ID))
		return AnalysisQueuedResponse{}, kpierrors.ErrAdminOnly
	}
	if !req.All {
		if req.EmployeeID == "" {
			return AnalysisQueuedResponse{}, apperror.RequiredField("employee_id")
		}
		if _, err := uuid.Parse(req.EmployeeID); err != nil {
			return AnalysisQueuedResponse{}, kpierrors.ErrInvalidEmployeeID
		}
	}
	if rid == "" {
		rid = uuid.NewString()
	}

	payload := events.KPIAnalysisRequestedEvent{
		EventType:   events.EventKPIAnalysisRequested,
		RequestID:   rid,
		RequestedBy: caller.ID,
		OccurredAt:  a.now(),
	}
	aggregateID := "all"
	if !req.All {
		payload.EmployeeID = req.EmployeeID
		aggregateID = req.EmployeeID
	}

	evt, err := kafka.NewOutboxEvent(rid, "kpi_analysis", aggregateID, events.EventKPIAnalysisRequested, events.KPIAnalysisRequestedTopic, payload)
	if err != nil {
		return AnalysisQueuedResponse{}, err
	}

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		a.logger.Error("enqueue kpi analysis begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return AnalysisQueuedResponse{}, err
	}
	defer tx.Rollback()

	if err := a.outbox.WithTx(tx).Create(ctx, evt); err != nil {
		a.logger.Error("enqueue kpi analysis outbox failed", zap.String("request_id", rid), zap.Error(err))
		return AnalysisQueuedResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		a.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return AnalysisQueuedResponse{}, err
	}

	a.logger.Info("kpi analysis queued",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.Bool("all", req.All),
	)

	return AnalysisQueuedResponse{
		RequestID:  rid,
		EmployeeID: payload.EmployeeID,
		All:        req.All,
		Status:     AnalysisStatusQueued,
	}, nil
}

// RunRequested executes a queued analysis request. Requests that can never
// succeed (unknown employee, bad id) are reported and swallowed so the
// consumer does not redeliver them forever.
func (a *analyzer) RunRequested(ctx context.Context, event events.KPIAnalysisRequestedEvent) error {
	system := access.Caller{ID: event.RequestedBy, Role: access.RoleAdmin}
	req := AnalyzeRequest{EmployeeID: event.EmployeeID, All: event.EmployeeID == ""}

	resp, err := a.Analyze(ctx, system, req)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.HTTPStatus < 500 {
			a.logger.Warn("queued kpi analysis rejected",
				zap.String("request_id", event.RequestID),
				zap.String("employee_id", event.EmployeeID),
				zap.String("code", appErr.Code),
			)
			return nil
		}
		return err
	}

	a.logger.Info("queued kpi analysis done",
		zap.String("request_id", event.RequestID),
		zap.Int("analyzed", resp.AnalyzedCount),
		zap.Int("failed", len(resp.Failures)),
	)
	return nil
}

func (a *analyzer) analyzeAll(ctx context.Context) (AnalysisResponse, error) {
	ids, err := a.employees.ListActiveEmployeeIDs(ctx)
	if err != nil {
		a.logger.Error("list employees for analysis failed", zap.Error(err))
		return AnalysisResponse{}, err
	}

	outcomes := make([]EmployeeAnalysis, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i, id := range ids {
		g.Go(func() error {
			res, err := a.analyzeEmployee(gctx, id)
			if err != nil {
				a.logger.Warn("kpi analysis for employee failed",
					zap.String("employee_id", id),
					zap.Error(err),
				)
				res = EmployeeAnalysis{EmployeeID: id, Error: err.Error()}
			}
			outcomes[i] = res
			return nil
		})
	}
	_ = g.Wait()

	resp := AnalysisResponse{Results: []EmployeeAnalysis{}}
	for _, o := range outcomes {
		switch {
		case o.Error != "":
			resp.Failures = append(resp.Failures, o)
		case o.HasData:
			resp.Results = append(resp.Results, o)
		}
	}
	resp.AnalyzedCount = len(resp.Results)

	a.logger.Info("kpi analysis for all employees done",
		zap.Int("employees", len(ids)),
		zap.Int("analyzed", resp.AnalyzedCount),
		zap.Int("failed", len(resp.Failures)),
	)
	return resp, nil
}

// analysisLockStripes bounds the per-employee locks. Two employees that
// hash to the same stripe are simply analysed one after the other.
const analysisLockStripes = 64

func lockStripe(employeeID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(employeeID))
	return int(h.Sum32() % analysisLockStripes)
}

// analyzeEmployee scores every KPI of one employee in a single transaction
// and then refreshes the per-period summaries. Runs for the same employee
// are serialised.
func (a *analyzer) analyzeEmployee(ctx context.Context, employeeID string) (EmployeeAnalysis, error) {
	mu := &a.locks[lockStripe(employeeID)]
	mu.Lock()
	defer mu.Unlock()

	rid := contextutil.GetRequestID(ctx)

	emp, err := a.employees.FindByID(ctx, employeeID)
	if err != nil {
		return EmployeeAnalysis{}, mapEmployeeError(err)
	}
	et := domain.EmployerTypeOrDefault(emp.EmployerType)
	out := EmployeeAnalysis{
		EmployeeID:   employeeID,
		EmployeeName: emp.FullName,
		Department:   emp.Department,
		EmployerType: string(et),
	}

	kpis, err := a.repo.FindByAssignee(ctx, employeeID)
	if err != nil {
		return EmployeeAnalysis{}, mapRepositoryError(err)
	}
	if len(kpis) == 0 {
		return out, nil
	}

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeAnalysis{}, err
	}
	defer tx.Rollback()

	qtx := a.repo.WithTx(tx)
	now := a.now()
	for i := range kpis {
		k := &kpis[i]
		pct := a.formulas.Percentage(et, k.KPIName, a.inputs)
		applyAnalysis(k, pct, et, now)
		if err := qtx.UpdateVersioned(ctx, k); err != nil {
			return EmployeeAnalysis{}, fmt.Errorf("analyse kpi %s: %w", k.ID, mapRepositoryError(err))
		}
	}

	periods, order := groupByPeriod(kpis)
	totalScore := 0.0
	for _, k := range kpis {
		totalScore += k.Score
	}

	evt, err := kafka.NewOutboxEvent(rid, "employee", employeeID, events.EventKPIAnalysisCompleted, events.KPILifecycleTopic,
		events.KPIAnalysisCompletedEvent{
			EventType:  events.EventKPIAnalysisCompleted,
			RequestID:  rid,
			EmployeeID: employeeID,
			Period:     order[0],
			KPICount:   len(kpis),
			TotalScore: scoring.Round2(totalScore),
			OccurredAt: now,
		})
	if err != nil {
		return EmployeeAnalysis{}, err
	}
	if err := a.outbox.WithTx(tx).Create(ctx, evt); err != nil {
		return EmployeeAnalysis{}, err
	}

	if err := tx.Commit(); err != nil {
		return EmployeeAnalysis{}, err
	}

	for _, period := range order {
		sum, err := a.summary.Aggregate(ctx, employeeID, period, periods[period])
		if err != nil {
			return EmployeeAnalysis{}, fmt.Errorf("aggregate %s: %w", period, err)
		}
		out.Summaries = append(out.Summaries, sum)
	}

	out.HasData = true
	out.KPICount = len(kpis)
	out.TotalScore = scoring.Round2(totalScore)
	out.OutputScore = out.Summaries[0].OutputScore

	a.logger.Info("kpi analysis for employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("employer_type", string(et)),
		zap.Int("kpi_count", len(kpis)),
		zap.Float64("output_score", out.OutputScore),
	)
	return out, nil
}

// applyAnalysis turns a performance percentage into the KPI's achieved value
// and recomputes everything derived from it.
func applyAnalysis(k *KPI, pct float64, et domain.EmployerType, now time.Time) {
	pct = scoring.Clamp(pct, 0, 100)
	k.AchievedValue = math.Round(k.Target * pct / 100)
	k.Recompute()
	k.Status = scoring.DeriveStatus(k.Progress)
	k.EofficeScore = k.Score
	k.ProgressNotes = fmt.Sprintf("Calculated using %s formula. Performance: %.1f%%", et, pct)
	k.touch(now)
}

func groupByPeriod(kpis []KPI) (map[string][]kpisummary.Item, []string) {
	groups := map[string][]kpisummary.Item{}
	var order []string
	for _, k := range kpis {
		period := k.Period
		if period == "" {
			period = DefaultPeriod
		}
		if _, ok := groups[period]; !ok {
			order = append(order, period)
		}
		groups[period] = append(groups[period], toItem(k))
	}
	return groups, order
}

func toItem(k KPI) kpisummary.Item {
	return kpisummary.Item{
		KPIID:     k.ID.String(),
		Name:      k.KPIName,
		Score:     k.Score,
		Weightage: k.Weightage,
	}
}

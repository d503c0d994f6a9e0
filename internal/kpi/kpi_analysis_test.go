package kpi_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-pms/internal/domain"
	"go-pms/internal/employee"
	"go-pms/internal/events"
	"go-pms/internal/kpi"
	kpierrors "go-pms/internal/kpi/errors"
	kpiMock "go-pms/internal/kpi/mock"
	"go-pms/internal/kpisummary"
	summaryMock "go-pms/internal/kpisummary/mock"
	"go-pms/internal/messaging/kafka"
	outboxMock "go-pms/internal/messaging/kafka/mock"
	"go-pms/internal/scoring"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type analyzerDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	repo      *kpiMock.MockRepository
	employees *kpiMock.MockEmployeeReader
	summary   *summaryMock.MockService
	outbox    *outboxMock.MockOutboxRepository
	analyzer  kpi.Analyzer
}

func setupAnalyzerTest(t *testing.T, formulas *kpi.FormulaRegistry) *analyzerDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)

	deps := &analyzerDeps{
		db:        db,
		sqlMock:   sqlMock,
		repo:      kpiMock.NewMockRepository(ctrl),
		employees: kpiMock.NewMockEmployeeReader(ctrl),
		summary:   summaryMock.NewMockService(ctrl),
		outbox:    outboxMock.NewMockOutboxRepository(ctrl),
	}
	deps.analyzer = kpi.NewAnalyzer(db, deps.repo, deps.employees, deps.summary, deps.outbox, kpi.AnalyzerConfig{
		Workers:  1,
		Formulas: formulas,
		Inputs:   kpi.NewSimulatedSource(7),
	})
	return deps
}

func fixedFormula(pct float64) kpi.Formula {
	return func(kpi.InputSource) float64 { return pct }
}

func TestAnalyzer_Analyze_SingleEmployee(t *testing.T) {
	ctx := context.Background()
	empID := uuid.NewString()

	formulas := kpi.NewFormulaRegistry()
	formulas.Register(domain.EmployerField, "Site Inspections", fixedFormula(85))

	t.Run("formula percentage becomes achieved value and score", func(t *testing.T) {
		deps := setupAnalyzerTest(t, formulas)
		defer deps.db.Close()

		k := storedKPI(empID)

		deps.employees.EXPECT().FindByID(ctx, empID).Return(&employee.Employee{FullName: "Asha Rao", Department: "Roads"}, nil)
		deps.repo.EXPECT().FindByAssignee(ctx, empID).Return([]kpi.KPI{*k}, nil)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().UpdateVersioned(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, got *kpi.KPI) error {
			assert.Equal(t, 85.0, got.AchievedValue)
			assert.InDelta(t, 85.0, got.Progress, 1e-9)
			assert.InDelta(t, 17.0, got.Score, 1e-9)
			assert.Equal(t, scoring.StatusInProgress, got.Status)
			assert.Equal(t, got.Score, got.EofficeScore)
			assert.Equal(t, "Calculated using Field formula. Performance: 85.0%", got.ProgressNotes)
			return nil
		})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
			assert.Equal(t, events.EventKPIAnalysisCompleted, e.EventType)
			assert.Equal(t, empID, e.AggregateID)
			return nil
		})
		deps.summary.EXPECT().Aggregate(ctx, empID, kpi.DefaultPeriod, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, period string, items []kpisummary.Item) (kpisummary.SummaryResponse, error) {
				require.Len(t, items, 1)
				assert.Equal(t, k.ID.String(), items[0].KPIID)
				assert.InDelta(t, 17.0, items[0].Score, 1e-9)
				assert.Equal(t, 20.0, items[0].Weightage)
				return kpisummary.SummaryResponse{EmployeeID: empID, Period: period, OutputScore: 59.5, KPICount: 1}, nil
			})

		resp, err := deps.analyzer.Analyze(ctx, adminCaller, kpi.AnalyzeRequest{EmployeeID: empID})

		require.NoError(t, err)
		assert.Equal(t, 1, resp.AnalyzedCount)
		require.Len(t, resp.Results, 1)
		res := resp.Results[0]
		assert.True(t, res.HasData)
		assert.Equal(t, "Asha Rao", res.EmployeeName)
		assert.Equal(t, "Field", res.EmployerType)
		assert.Equal(t, 17.0, res.TotalScore)
		assert.Equal(t, 59.5, res.OutputScore)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("kpi without formula uses the fallback percentage", func(t *testing.T) {
		deps := setupAnalyzerTest(t, kpi.NewFormulaRegistry())
		defer deps.db.Close()

		k := storedKPI(empID)

		deps.employees.EXPECT().FindByID(ctx, empID).Return(&employee.Employee{}, nil)
		deps.repo.EXPECT().FindByAssignee(ctx, empID).Return([]kpi.KPI{*k}, nil)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().UpdateVersioned(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, got *kpi.KPI) error {
			assert.Equal(t, 75.0, got.AchievedValue)
			assert.InDelta(t, 15.0, got.Score, 1e-9)
			return nil
		})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.summary.EXPECT().Aggregate(ctx, empID, kpi.DefaultPeriod, gomock.Any()).
			Return(kpisummary.SummaryResponse{OutputScore: 52.5}, nil)

		resp, err := deps.analyzer.Analyze(ctx, adminCaller, kpi.AnalyzeRequest{EmployeeID: empID})

		require.NoError(t, err)
		assert.Equal(t, 52.5, resp.Results[0].OutputScore)
	})

	t.Run("employee without kpis reports no data", func(t *testing.T) {
		deps := setupAnalyzerTest(t, formulas)
		defer deps.db.Close()

		deps.employees.EXPECT().FindByID(ctx, empID).Return(&employee.Employee{}, nil)
		deps.repo.EXPECT().FindByAssignee(ctx, empID).Return(nil, nil)

		resp, err := deps.analyzer.Analyze(ctx, adminCaller, kpi.AnalyzeRequest{EmployeeID: empID})

		require.NoError(t, err)
		assert.Zero(t, resp.AnalyzedCount)
		require.Len(t, resp.Results, 1)
		assert.False(t, resp.Results[0].HasData)
	})

	t.Run("stale kpi aborts the employee", func(t *testing.T) {
		deps := setupAnalyzerTest(t, formulas)
		defer deps.db.Close()

		k := storedKPI(empID)

		deps.employees.EXPECT().FindByID(ctx, empID).Return(&employee.Employee{}, nil)
		deps.repo.EXPECT().FindByAssignee(ctx, empID).Return([]kpi.KPI{*k}, nil)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().UpdateVersioned(ctx, gomock.Any()).Return(kpi.ErrVersionConflict)

		_, err := deps.analyzer.Analyze(ctx, adminCaller, kpi.AnalyzeRequest{EmployeeID: empID})

		assert.ErrorIs(t, err, kpierrors.ErrStaleKPI)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("guards", func(t *testing.T) {
		deps := setupAnalyzerTest(t, formulas)
		defer deps.db.Close()

		_, err := deps.analyzer.Analyze(ctx, employeeCaller, kpi.AnalyzeRequest{EmployeeID: empID})
		assert.ErrorIs(t, err, kpierrors.ErrAdminOnly)

		_, err = deps.analyzer.Analyze(ctx, adminCaller, kpi.AnalyzeRequest{EmployeeID: "nope"})
		assert.ErrorIs(t, err, kpierrors.ErrInvalidEmployeeID)

		deps.employees.EXPECT().FindByID(ctx, empID).Return(nil, gorm.ErrRecordNotFound)
		_, err = deps.analyzer.Analyze(ctx, adminCaller, kpi.AnalyzeRequest{EmployeeID: empID})
		assert.ErrorIs(t, err, kpierrors.ErrEmployeeNotFound)
	})
}

func TestAnalyzer_Analyze_All(t *testing.T) {
	ctx := context.Background()
	missing := uuid.NewString()
	scored := uuid.NewString()
	empty := uuid.NewString()

	formulas := kpi.NewFormulaRegistry()
	formulas.Register(domain.EmployerHQ, "Site Inspections", fixedFormula(95))

	deps := setupAnalyzerTest(t, formulas)
	defer deps.db.Close()

	hq := "HQ"
	k := storedKPI(scored)

	deps.employees.EXPECT().ListActiveEmployeeIDs(ctx).Return([]string{missing, scored, empty}, nil)
	deps.employees.EXPECT().FindByID(gomock.Any(), missing).Return(nil, gorm.ErrRecordNotFound)
	deps.employees.EXPECT().FindByID(gomock.Any(), scored).Return(&employee.Employee{EmployerType: &hq}, nil)
	deps.employees.EXPECT().FindByID(gomock.Any(), empty).Return(&employee.Employee{}, nil)
	deps.repo.EXPECT().FindByAssignee(gomock.Any(), scored).Return([]kpi.KPI{*k}, nil)
	deps.repo.EXPECT().FindByAssignee(gomock.Any(), empty).Return(nil, nil)
	expectTx(t, deps.sqlMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().UpdateVersioned(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, got *kpi.KPI) error {
		assert.Equal(t, scoring.StatusCompleted, got.Status)
		assert.InDelta(t, 19.0, got.Score, 1e-9)
		return nil
	})
	deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
	deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	deps.summary.EXPECT().Aggregate(gomock.Any(), scored, kpi.DefaultPeriod, gomock.Any()).
		Return(kpisummary.SummaryResponse{OutputScore: 66.5}, nil)

	resp, err := deps.analyzer.Analyze(ctx, adminCaller, kpi.AnalyzeRequest{All: true})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.AnalyzedCount)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, scored, resp.Results[0].EmployeeID)
	assert.Equal(t, "HQ", resp.Results[0].EmployerType)
	require.Len(t, resp.Failures, 1)
	assert.Equal(t, missing, resp.Failures[0].EmployeeID)
	assert.NotEmpty(t, resp.Failures[0].Error)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestAnalyzer_Enqueue(t *testing.T) {
	ctx := context.Background()

	t.Run("all employees", func(t *testing.T) {
		deps := setupAnalyzerTest(t, nil)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
			assert.Equal(t, events.KPIAnalysisRequestedTopic, e.Topic)
			assert.Equal(t, "kpi_analysis", e.AggregateType)
			assert.Equal(t, "all", e.AggregateID)
			return nil
		})

		resp, err := deps.analyzer.Enqueue(ctx, adminCaller, kpi.AnalyzeRequest{All: true})

		require.NoError(t, err)
		assert.Equal(t, kpi.AnalysisStatusQueued, resp.Status)
		assert.True(t, resp.All)
		assert.NotEmpty(t, resp.RequestID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("outbox failure rolls back", func(t *testing.T) {
		deps := setupAnalyzerTest(t, nil)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("insert failed"))

		_, err := deps.analyzer.Enqueue(ctx, adminCaller, kpi.AnalyzeRequest{EmployeeID: uuid.NewString()})
		assert.EqualError(t, err, "insert failed")
	})

	t.Run("employee cannot enqueue", func(t *testing.T) {
		deps := setupAnalyzerTest(t, nil)
		defer deps.db.Close()

		_, err := deps.analyzer.Enqueue(ctx, employeeCaller, kpi.AnalyzeRequest{All: true})
		assert.ErrorIs(t, err, kpierrors.ErrAdminOnly)
	})
}

func TestAnalyzer_RunRequested(t *testing.T) {
	ctx := context.Background()
	empID := uuid.NewString()

	t.Run("unknown employee is dropped", func(t *testing.T) {
		deps := setupAnalyzerTest(t, nil)
		defer deps.db.Close()

		deps.employees.EXPECT().FindByID(ctx, empID).Return(nil, gorm.ErrRecordNotFound)

		err := deps.analyzer.RunRequested(ctx, events.KPIAnalysisRequestedEvent{EmployeeID: empID, RequestedBy: adminCaller.ID})
		assert.NoError(t, err)
	})

	t.Run("infrastructure failure is returned for redelivery", func(t *testing.T) {
		deps := setupAnalyzerTest(t, nil)
		defer deps.db.Close()

		deps.employees.EXPECT().FindByID(ctx, empID).Return(nil, errors.New("connection refused"))

		err := deps.analyzer.RunRequested(ctx, events.KPIAnalysisRequestedEvent{EmployeeID: empID, RequestedBy: adminCaller.ID})
		assert.EqualError(t, err, "connection refused")
	})
}

func TestAnalysisLockStripes_Bounded(t *testing.T) {
	seen := map[int]struct{}{}
	for i := 0; i < 10000; i++ {
		id := uuid.NewString()
		stripe := kpi.LockStripe(id)
		require.GreaterOrEqual(t, stripe, 0)
		require.Less(t, stripe, kpi.AnalysisLockStripes)
		assert.Equal(t, stripe, kpi.LockStripe(id))
		seen[stripe] = struct{}{}
	}
	assert.LessOrEqual(t, len(seen), kpi.AnalysisLockStripes)
}

package kpisummary

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"go-pms/internal/access"
	kpisummaryerrors "go-pms/internal/kpisummary/errors"
	"go-pms/internal/scoring"
	"go-pms/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const scoreKeyPrefix = "scores:"

func ScoreCacheKey(employeeID, period string) string {
	return fmt.Sprintf("%s%s:%s", scoreKeyPrefix, employeeID, period)
}

// ItemSource supplies the per-KPI scores an output score is built from.
type ItemSource interface {
	ScoreItems(ctx context.Context, employeeID, period string) ([]Item, error)
}

//go:generate mockgen -source=kpisummary_service.go -destination=mock/kpisummary_service_mock.go -package=mock
type Service interface {
	Aggregate(ctx context.Context, employeeID, period string, items []Item) (SummaryResponse, error)
	GetScore(ctx context.Context, caller access.Caller, q ScoreQuery) (ScoreResponse, error)
}

type Config struct {
	// SummaryTTL bounds how long a stored summary is trusted; 0 trusts it forever.
	SummaryTTL time.Duration
	// ScoreTTL is the Redis lifetime of a rendered score response.
	ScoreTTL time.Duration
	Now      func() time.Time
}

type service struct {
	db     *sql.DB
	repo   Repository
	items  ItemSource
	rdb    *redis.Client
	sf     *singleflight.Group
	cfg    Config
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, items ItemSource, rdb *redis.Client, cfg Config, logger ...*zap.Logger) Service {
	l := zap.L().Named("kpisummary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kpisummary.service")
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &service{
		db:     db,
		repo:   repo,
		items:  items,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		cfg:    cfg,
		logger: l,
	}
}

// Aggregate recomputes and stores the output score for (employee, period).
// Running it twice on unchanged items leaves identical state.
func (s *service) Aggregate(ctx context.Context, employeeID, period string, items []Item) (SummaryResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return SummaryResponse{}, kpisummaryerrors.ErrInvalidEmployeeID
	}
	if period == "" {
		period = DefaultPeriod
	}

	summary := &KpiSummary{
		ID:          uuid.New(),
		EmployeeID:  empID,
		Period:      period,
		OutputScore: scoring.Round2(OutputScore(items)),
		KPICount:    len(items),
		ComputedAt:  s.cfg.Now().UTC(),
	}

	s.logger.Debug("aggregate kpi summary requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("period", period),
		zap.Int("kpi_count", len(items)),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("aggregate begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return SummaryResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Upsert(ctx, summary); err != nil {
		s.logger.Error("aggregate upsert failed",
			zap.String("employee_id", employeeID),
			zap.String("period", period),
			zap.Error(err),
		)
		return SummaryResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return SummaryResponse{}, err
	}

	s.invalidate(ctx, employeeID, period)

	s.logger.Info("aggregate kpi summary success",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("period", period),
		zap.Float64("output_score", summary.OutputScore),
	)

	return SummaryResponse{
		EmployeeID:  employeeID,
		Period:      period,
		OutputScore: summary.OutputScore,
		KPICount:    summary.KPICount,
		ComputedAt:  summary.ComputedAt,
	}, nil
}

// GetScore reads Redis first, then a fresh stored summary, and otherwise
// recomputes from the KPIs and repopulates both layers.
func (s *service) GetScore(ctx context.Context, caller access.Caller, q ScoreQuery) (ScoreResponse, error) {
	target := q.EmployeeID
	if target == "" {
		target = caller.ID
	}
	if !access.CanRead(caller, target) {
		s.logger.Warn("get score forbidden",
			zap.String("caller_id", caller.ID),
			zap.String("employee_id", target),
		)
		return ScoreResponse{}, kpisummaryerrors.ErrScoreForbidden
	}
	if _, err := uuid.Parse(target); err != nil {
		return ScoreResponse{}, kpisummaryerrors.ErrInvalidEmployeeID
	}
	period := q.Period
	if period == "" {
		period = DefaultPeriod
	}

	key := ScoreCacheKey(target, period)
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var resp ScoreResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				resp.Source = SourceCache
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		return s.loadScore(ctx, target, period)
	})
	if err != nil {
		s.logger.Error("get score failed", zap.String("employee_id", target), zap.Error(err))
		return ScoreResponse{}, err
	}
	resp := v.(ScoreResponse)

	if s.rdb != nil {
		if payload, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, key, payload, s.cfg.ScoreTTL).Err(); err != nil {
				s.logger.Warn("cache score failed", zap.String("key", key), zap.Error(err))
			}
		}
	}

	return resp, nil
}

func (s *service) loadScore(ctx context.Context, employeeID, period string) (ScoreResponse, error) {
	items, err := s.items.ScoreItems(ctx, employeeID, period)
	if err != nil {
		return ScoreResponse{}, err
	}

	summary, err := s.repo.FindByEmployeePeriod(ctx, employeeID, period)
	if err != nil {
		return ScoreResponse{}, err
	}

	resp := ScoreResponse{
		EmployeeID: employeeID,
		Period:     period,
		KPICount:   len(items),
		Breakdown:  breakdown(items),
	}

	now := s.cfg.Now().UTC()
	if summary != nil && (s.cfg.SummaryTTL <= 0 || now.Sub(summary.ComputedAt) < s.cfg.SummaryTTL) {
		computed := summary.ComputedAt
		resp.OutputScore = scoring.Round2(summary.OutputScore)
		resp.ComputedAt = &computed
		resp.Analyzed = true
		resp.Source = SourceSummary
	} else {
		output := OutputScore(items)
		resp.OutputScore = scoring.Round2(output)
		resp.Source = SourceRecomputed
		resp.ComputedAt = &now

		if len(items) > 0 {
			empID, _ := uuid.Parse(employeeID)
			if err := s.repo.Upsert(ctx, &KpiSummary{
				ID:          uuid.New(),
				EmployeeID:  empID,
				Period:      period,
				OutputScore: resp.OutputScore,
				KPICount:    len(items),
				ComputedAt:  now,
			}); err != nil {
				s.logger.Warn("repopulate kpi summary failed", zap.String("employee_id", employeeID), zap.Error(err))
			}
		}
	}
	resp.TotalScore = resp.OutputScore + resp.BehaviouralScore

	return resp, nil
}

func (s *service) invalidate(ctx context.Context, employeeID, period string) {
	if s.rdb == nil {
		return
	}
	key := ScoreCacheKey(employeeID, period)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.logger.Error("failed to invalidate score cache", zap.String("key", key), zap.Error(err))
	}
}

func breakdown(items []Item) []BreakdownItem {
	out := make([]BreakdownItem, 0, len(items))
	for _, it := range items {
		out = append(out, BreakdownItem{
			KPIID:     it.KPIID,
			KPIName:   it.Name,
			Score:     scoring.Round2(it.Score),
			Weightage: it.Weightage,
		})
	}
	return out
}

package apar

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"strings"
	"time"

	"go-pms/internal/access"
	aparerrors "go-pms/internal/apar/errors"
	"go-pms/internal/domain"
	"go-pms/internal/employee"
	"go-pms/internal/events"
	"go-pms/internal/messaging/kafka"
	"go-pms/internal/scoring"
	"go-pms/internal/shared/apperror"
	"go-pms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	minYear = 2000
	maxYear = 2100

	retireSavepoint = "retire_superseded_apars"
)

type EmployeeReader interface {
	FindByID(ctx context.Context, id string) (*employee.Employee, error)
}

// ScoreReader is the KPI data the appraisal engine reads.
type ScoreReader interface {
	CompletedScores(ctx context.Context, employeeID string) ([]float64, error)
	TotalScore(ctx context.Context, employeeID string) (float64, int, error)
}

//go:generate mockgen -source=apar_service.go -destination=mock/apar_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, caller access.Caller, req CreateAparRequest) (AparResponse, error)
	GetAll(ctx context.Context, caller access.Caller, q ListQuery) ([]AparResponse, error)
	GetByID(ctx context.Context, caller access.Caller, id string) (AparResponse, error)
	Update(ctx context.Context, caller access.Caller, id string, req UpdateAparRequest) (AparResponse, error)
	Analyze(ctx context.Context, caller access.Caller, req AnalyzeAparRequest) (AnalyzeAparResponse, error)
	ExportPDF(ctx context.Context, caller access.Caller, id string) ([]byte, error)
	NormalizeLegacyReferences(ctx context.Context) (int64, error)
}

type Config struct {
	// HardDeleteSuperseded removes retired siblings instead of soft deleting them.
	HardDeleteSuperseded bool
	Reviewer             ReviewerScorer
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees EmployeeReader
	scores    ScoreReader
	outbox    kafka.OutboxRepository
	cfg       Config
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees EmployeeReader,
	scores ScoreReader,
	outbox kafka.OutboxRepository,
	cfg Config,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("apar.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("apar.service")
	}
	if cfg.Reviewer == nil {
		cfg.Reviewer = NewRandomReviewerScorer()
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		scores:    scores,
		outbox:    outbox,
		cfg:       cfg,
		now:       func() time.Time { return time.Now().UTC() },
		logger:    l,
	}
}

// Create opens an appraisal. Employees may only open their own draft; admins
// may create any status, and a reviewed or finalized record gets its final
// score straight away.
func (s *service) Create(ctx context.Context, caller access.Caller, req CreateAparRequest) (AparResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create apar requested",
		zap.String("request_id", rid),
		zap.String("caller_id", caller.ID),
		zap.String("employee_id", req.EmployeeID),
		zap.Int("year", req.Year),
		zap.String("status", req.Status),
	)

	createdBy, err := uuid.Parse(caller.ID)
	if err != nil {
		return AparResponse{}, apperror.ErrUnauthorized
	}
	employeeID := strings.TrimSpace(req.EmployeeID)
	if employeeID == "" {
		if caller.IsAdmin() {
			return AparResponse{}, apperror.RequiredField("employee_id")
		}
		employeeID = caller.ID
	}
	empUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return AparResponse{}, aparerrors.ErrInvalidEmployeeID
	}
	if req.Year < minYear || req.Year > maxYear {
		return AparResponse{}, aparerrors.ErrInvalidYear
	}
	status := domain.AparDraft
	if strings.TrimSpace(req.Status) != "" {
		st, err := domain.ParseAparStatus(req.Status)
		if err != nil {
			return AparResponse{}, aparerrors.ErrInvalidAparStatus
		}
		status = st
	}
	if req.ReviewerScore != nil && !validReviewerScore(*req.ReviewerScore) {
		return AparResponse{}, aparerrors.ErrInvalidReviewerScore
	}
	reviewer, err := parseReviewer(req.ReviewerID)
	if err != nil {
		return AparResponse{}, err
	}

	if !caller.IsAdmin() {
		writesReview := req.ReviewerID != nil || req.ReviewerComments != nil || req.ReviewerScore != nil
		if !caller.Owns(employeeID) || status != domain.AparDraft || writesReview {
			s.logger.Warn("create apar forbidden",
				zap.String("caller_id", caller.ID),
				zap.String("employee_id", employeeID),
				zap.String("status", string(status)),
			)
			return AparResponse{}, aparerrors.ErrAparForbidden
		}
	}

	if _, err := s.employees.FindByID(ctx, employeeID); err != nil {
		return AparResponse{}, mapEmployeeError(err)
	}

	self := SelfAppraisal{}
	if req.SelfAppraisal != nil {
		self = *req.SelfAppraisal
	}
	a := &Apar{
		ID:            uuid.New(),
		EmployeeID:    &empUUID,
		Year:          req.Year,
		Period:        strings.TrimSpace(req.Period),
		SelfAppraisal: datatypes.NewJSONType(self),
		ReviewerID:    reviewer,
		Status:        status,
		CreatedBy:     createdBy,
		Version:       1,
	}
	if req.ReviewerComments != nil {
		a.ReviewerComments = *req.ReviewerComments
	}
	if req.ReviewerScore != nil {
		a.ReviewerScore = *req.ReviewerScore
	}
	if status.HasFinalScore() {
		fs, err := s.finalScore(ctx, employeeID, a.ReviewerScore)
		if err != nil {
			return AparResponse{}, err
		}
		a.FinalScore = fs
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create apar begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return AparResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.LockEmployee(ctx, employeeID); err != nil {
		s.logger.Error("create apar lock employee failed", zap.String("employee_id", employeeID), zap.Error(err))
		return AparResponse{}, err
	}
	if err := qtx.Create(ctx, a); err != nil {
		s.logger.Error("create apar persist failed", zap.String("employee_id", employeeID), zap.Error(err))
		return AparResponse{}, mapRepositoryError(err)
	}

	resp := mapToResponse(*a)
	if status == domain.AparFinalized {
		retired, err := s.finalize(ctx, tx, qtx, rid, caller, a)
		if err != nil {
			return AparResponse{}, err
		}
		resp.RetiredCount = retired
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return AparResponse{}, err
	}

	s.logger.Info("create apar success",
		zap.String("request_id", rid),
		zap.String("apar_id", a.ID.String()),
		zap.String("employee_id", employeeID),
		zap.String("status", string(status)),
	)
	return resp, nil
}

func (s *service) GetAll(ctx context.Context, caller access.Caller, q ListQuery) ([]AparResponse, error) {
	s.logger.Debug("get all apars requested",
		zap.String("caller_id", caller.ID),
		zap.String("employee_id", q.EmployeeID),
	)

	f := ListFilter{EmployeeID: q.EmployeeID, Year: q.Year}
	if !caller.IsAdmin() {
		if q.EmployeeID != "" && !caller.Owns(q.EmployeeID) {
			s.logger.Warn("get all apars forbidden",
				zap.String("caller_id", caller.ID),
				zap.String("employee_id", q.EmployeeID),
			)
			return nil, aparerrors.ErrAparReadForbidden
		}
		f.EmployeeID = caller.ID
	}
	if strings.TrimSpace(q.Status) != "" {
		st, err := domain.ParseAparStatus(q.Status)
		if err != nil {
			return nil, aparerrors.ErrInvalidAparStatus
		}
		f.Status = st
	}

	apars, err := s.repo.List(ctx, f)
	if err != nil {
		s.logger.Error("get all apars failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(apars), nil
}

func (s *service) GetByID(ctx context.Context, caller access.Caller, id string) (AparResponse, error) {
	s.logger.Debug("get apar by id requested",
		zap.String("caller_id", caller.ID),
		zap.String("apar_id", id),
	)
	if _, err := uuid.Parse(id); err != nil {
		return AparResponse{}, aparerrors.ErrInvalidAparID
	}

	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AparResponse{}, mapRepositoryError(err)
	}
	if !access.CanRead(caller, a.OwnerIDs()...) {
		s.logger.Warn("get apar by id forbidden",
			zap.String("caller_id", caller.ID),
			zap.String("apar_id", id),
		)
		return AparResponse{}, aparerrors.ErrAparReadForbidden
	}
	return mapToResponse(*a), nil
}

// Update applies a partial change under the status x role x field matrix.
// Setting the status to reviewed or finalized recomputes the final score;
// finalizing also retires every other APAR of the employee.
func (s *service) Update(ctx context.Context, caller access.Caller, id string, req UpdateAparRequest) (AparResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update apar requested",
		zap.String("request_id", rid),
		zap.String("caller_id", caller.ID),
		zap.String("apar_id", id),
	)

	if _, err := uuid.Parse(id); err != nil {
		return AparResponse{}, aparerrors.ErrInvalidAparID
	}
	fields := req.Fields()
	if len(fields) == 0 {
		return AparResponse{}, aparerrors.ErrEmptyUpdate
	}
	var target domain.AparStatus
	if req.Status != nil {
		st, err := domain.ParseAparStatus(*req.Status)
		if err != nil {
			return AparResponse{}, aparerrors.ErrInvalidAparStatus
		}
		target = st
	}
	if req.ReviewerScore != nil && !validReviewerScore(*req.ReviewerScore) {
		return AparResponse{}, aparerrors.ErrInvalidReviewerScore
	}
	reviewer, err := parseReviewer(req.ReviewerID)
	if err != nil {
		return AparResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update apar begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return AparResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if target == domain.AparFinalized {
		// employee lock before row lock, same order as Create
		current, err := qtx.FindByID(ctx, id)
		if err != nil {
			return AparResponse{}, mapRepositoryError(err)
		}
		if err := qtx.LockEmployee(ctx, current.OwnerID()); err != nil {
			s.logger.Error("update apar lock employee failed", zap.String("apar_id", id), zap.Error(err))
			return AparResponse{}, err
		}
	}

	a, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return AparResponse{}, mapRepositoryError(err)
	}
	if req.Version != nil && *req.Version != a.Version {
		s.logger.Warn("update apar stale version",
			zap.String("apar_id", id),
			zap.Int("sent", *req.Version),
			zap.Int("stored", a.Version),
		)
		return AparResponse{}, aparerrors.ErrStaleApar
	}

	ref := access.AparRef{Status: a.Status, OwnerIDs: a.OwnerIDs()}
	if !access.CanMutateApar(caller, ref, access.AparMutation{Fields: fields, TargetStatus: target}) {
		s.logger.Warn("update apar forbidden",
			zap.String("caller_id", caller.ID),
			zap.String("apar_id", id),
			zap.String("status", string(a.Status)),
		)
		if !caller.IsAdmin() && caller.Owns(ref.OwnerIDs...) && a.Status != domain.AparDraft {
			return AparResponse{}, aparerrors.ErrAparLocked
		}
		return AparResponse{}, aparerrors.ErrAparForbidden
	}
	previous := a.Status
	if target != "" && target != previous && !target.IsForwardOf(previous) {
		if !caller.IsAdmin() || !req.Override {
			s.logger.Warn("update apar backward transition rejected",
				zap.String("apar_id", id),
				zap.String("from", string(previous)),
				zap.String("to", string(target)),
			)
			return AparResponse{}, aparerrors.ErrInvalidTransition
		}
		s.logger.Warn("update apar backward transition by override",
			zap.String("caller_id", caller.ID),
			zap.String("apar_id", id),
			zap.String("from", string(previous)),
			zap.String("to", string(target)),
		)
	}

	if req.SelfAppraisal != nil {
		a.SelfAppraisal = datatypes.NewJSONType(*req.SelfAppraisal)
	}
	if req.ReviewerID != nil {
		a.ReviewerID = reviewer
	}
	if req.ReviewerComments != nil {
		a.ReviewerComments = *req.ReviewerComments
	}
	if req.ReviewerScore != nil {
		a.ReviewerScore = *req.ReviewerScore
	}
	if target != "" {
		a.Status = target
	}
	if a.Status.HasFinalScore() && (target != "" || req.ReviewerScore != nil) {
		fs, err := s.finalScore(ctx, a.OwnerID(), a.ReviewerScore)
		if err != nil {
			return AparResponse{}, err
		}
		a.FinalScore = fs
	}

	if err := qtx.UpdateVersioned(ctx, a); err != nil {
		s.logger.Error("update apar persist failed",
			zap.String("apar_id", id),
			zap.Int("version", a.Version),
			zap.Error(err),
		)
		return AparResponse{}, mapRepositoryError(err)
	}

	resp := mapToResponse(*a)
	if target == domain.AparFinalized {
		retired, err := s.finalize(ctx, tx, qtx, rid, caller, a)
		if err != nil {
			return AparResponse{}, err
		}
		resp.RetiredCount = retired
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return AparResponse{}, err
	}

	s.logger.Info("update apar success",
		zap.String("request_id", rid),
		zap.String("apar_id", id),
		zap.String("from", string(previous)),
		zap.String("to", string(a.Status)),
		zap.Float64("final_score", a.FinalScore),
	)
	return resp, nil
}

// Analyze produces a finalized appraisal from the employee's KPI totals and
// a scored reviewer component, replacing the year's APAR if one exists.
func (s *service) Analyze(ctx context.Context, caller access.Caller, req AnalyzeAparRequest) (AnalyzeAparResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("analyze apar requested",
		zap.String("request_id", rid),
		zap.String("caller_id", caller.ID),
		zap.String("employee_id", req.EmployeeID),
		zap.Int("year", req.Year),
	)

	if !caller.IsAdmin() {
		s.logger.Warn("analyze apar forbidden", zap.String("caller_id", caller.ID))
		return AnalyzeAparResponse{}, aparerrors.ErrAdminOnly
	}
	reviewerID, err := uuid.Parse(caller.ID)
	if err != nil {
		return AnalyzeAparResponse{}, apperror.ErrUnauthorized
	}
	if strings.TrimSpace(req.EmployeeID) == "" {
		return AnalyzeAparResponse{}, apperror.RequiredField("employee_id")
	}
	empUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return AnalyzeAparResponse{}, aparerrors.ErrInvalidEmployeeID
	}
	year := req.Year
	if year == 0 {
		year = s.now().Year()
	}
	if year < minYear || year > maxYear {
		return AnalyzeAparResponse{}, aparerrors.ErrInvalidYear
	}
	employeeID := empUUID.String()

	if _, err := s.employees.FindByID(ctx, employeeID); err != nil {
		return AnalyzeAparResponse{}, mapEmployeeError(err)
	}

	total, count, err := s.scores.TotalScore(ctx, employeeID)
	if err != nil {
		s.logger.Error("analyze apar read kpi scores failed", zap.String("employee_id", employeeID), zap.Error(err))
		return AnalyzeAparResponse{}, err
	}
	if count == 0 {
		s.logger.Info("analyze apar without kpi data", zap.String("employee_id", employeeID))
		return AnalyzeAparResponse{HasData: false, Message: "No KPI data found for this employee"}, nil
	}

	converted := ConvertKPITotal(total)
	reviewerScore := s.cfg.Reviewer.ReviewerScore(ctx, employeeID, year)
	final := AnalyzedFinalScore(converted, reviewerScore)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("analyze apar begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return AnalyzeAparResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.LockEmployee(ctx, employeeID); err != nil {
		s.logger.Error("analyze apar lock employee failed", zap.String("employee_id", employeeID), zap.Error(err))
		return AnalyzeAparResponse{}, err
	}

	a, err := qtx.FindByEmployeeYearForUpdate(ctx, employeeID, year)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		a = &Apar{
			ID:            uuid.New(),
			EmployeeID:    &empUUID,
			Year:          year,
			SelfAppraisal: datatypes.NewJSONType(SelfAppraisal{}),
			ReviewerID:    &reviewerID,
			ReviewerScore: reviewerScore,
			FinalScore:    final,
			Status:        domain.AparFinalized,
			CreatedBy:     reviewerID,
			Version:       1,
		}
		if err := qtx.Create(ctx, a); err != nil {
			s.logger.Error("analyze apar persist failed", zap.String("employee_id", employeeID), zap.Error(err))
			return AnalyzeAparResponse{}, mapRepositoryError(err)
		}
	case err != nil:
		return AnalyzeAparResponse{}, mapRepositoryError(err)
	default:
		if a.EmployeeID == nil {
			a.EmployeeID = &empUUID
		}
		a.ReviewerID = &reviewerID
		a.ReviewerScore = reviewerScore
		a.FinalScore = final
		a.Status = domain.AparFinalized
		if err := qtx.UpdateVersioned(ctx, a); err != nil {
			s.logger.Error("analyze apar persist failed", zap.String("apar_id", a.ID.String()), zap.Error(err))
			return AnalyzeAparResponse{}, mapRepositoryError(err)
		}
	}

	retired, err := s.finalize(ctx, tx, qtx, rid, caller, a)
	if err != nil {
		return AnalyzeAparResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return AnalyzeAparResponse{}, err
	}

	resp := mapToResponse(*a)
	resp.RetiredCount = retired
	level := PerformanceLevel(final)

	s.logger.Info("analyze apar success",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.Int("year", year),
		zap.Float64("final_score", final),
		zap.String("performance_level", level),
	)

	return AnalyzeAparResponse{
		HasData:           true,
		Message:           "APAR finalized from KPI analysis",
		KPIScore:          math.Round(total),
		ConvertedKPIScore: converted,
		ReviewerScore:     reviewerScore,
		FinalScore:        final,
		PerformanceLevel:  level,
		Apar:              &resp,
	}, nil
}

func (s *service) ExportPDF(ctx context.Context, caller access.Caller, id string) ([]byte, error) {
	a, err := s.GetByID(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	doc := aparDocument{Apar: a, GeneratedAt: s.now()}
	emp, err := s.employees.FindByID(ctx, a.EmployeeID)
	switch {
	case err == nil:
		doc.EmployeeName = emp.FullName
		doc.Department = emp.Department
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	out, err := renderAparPDF(doc)
	if err != nil {
		s.logger.Error("export apar pdf failed", zap.String("apar_id", id), zap.Error(err))
		return nil, err
	}
	s.logger.Info("export apar pdf success", zap.String("apar_id", id), zap.Int("bytes", len(out)))
	return out, nil
}

// NormalizeLegacyReferences fills the canonical employee reference from the
// legacy alias column.
func (s *service) NormalizeLegacyReferences(ctx context.Context) (int64, error) {
	n, err := s.repo.NormalizeLegacyRefs(ctx)
	if err != nil {
		s.logger.Error("normalize apar references failed", zap.Error(err))
		return 0, err
	}
	s.logger.Info("normalize apar references success", zap.Int64("updated", n))
	return n, nil
}

func (s *service) finalScore(ctx context.Context, employeeID string, reviewerScore float64) (float64, error) {
	completed, err := s.scores.CompletedScores(ctx, employeeID)
	if err != nil {
		s.logger.Error("read completed kpi scores failed", zap.String("employee_id", employeeID), zap.Error(err))
		return 0, err
	}
	return FinalScore(completed, reviewerScore), nil
}

// finalize records the finalization event and retires the employee's other
// APARs. Only the outbox write can fail the transaction.
func (s *service) finalize(ctx context.Context, tx *sql.Tx, qtx Repository, rid string, caller access.Caller, a *Apar) (int64, error) {
	evt, err := kafka.NewOutboxEvent(rid, "apar", a.ID.String(), events.EventAparFinalized, events.AparLifecycleTopic,
		events.AparFinalizedEvent{
			EventType:   events.EventAparFinalized,
			RequestID:   rid,
			AparID:      a.ID.String(),
			EmployeeID:  a.OwnerID(),
			Year:        a.Year,
			FinalScore:  scoring.Round2(a.FinalScore),
			FinalizedBy: caller.ID,
			OccurredAt:  s.now(),
		})
	if err != nil {
		return 0, err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, evt); err != nil {
		s.logger.Error("finalize apar outbox failed", zap.String("request_id", rid), zap.Error(err))
		return 0, err
	}
	return s.retireSiblings(ctx, tx, qtx, a), nil
}

// retireSiblings runs inside a savepoint so a failed delete leaves the
// finalization itself committable.
func (s *service) retireSiblings(ctx context.Context, tx *sql.Tx, qtx Repository, a *Apar) int64 {
	if _, err := tx.ExecContext(ctx, "SAVEPOINT "+retireSavepoint); err != nil {
		s.logger.Error("retire superseded apars savepoint failed", zap.String("apar_id", a.ID.String()), zap.Error(err))
		return 0
	}

	n, err := qtx.RetireOthers(ctx, a.OwnerIDs(), a.ID.String(), s.cfg.HardDeleteSuperseded)
	if err != nil {
		s.logger.Error("retire superseded apars failed",
			zap.String("apar_id", a.ID.String()),
			zap.String("employee_id", a.OwnerID()),
			zap.Error(err),
		)
		if _, rbErr := tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+retireSavepoint); rbErr != nil {
			s.logger.Error("retire superseded apars rollback to savepoint failed", zap.Error(rbErr))
		}
		return 0
	}
	if _, err := tx.ExecContext(ctx, "RELEASE SAVEPOINT "+retireSavepoint); err != nil {
		s.logger.Error("retire superseded apars release savepoint failed", zap.Error(err))
	}

	s.logger.Info("superseded apars retired",
		zap.String("apar_id", a.ID.String()),
		zap.String("employee_id", a.OwnerID()),
		zap.Int64("retired", n),
		zap.Bool("hard_delete", s.cfg.HardDeleteSuperseded),
	)
	return n
}

func validReviewerScore(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 100
}

func parseReviewer(raw *string) (*uuid.UUID, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, aparerrors.ErrInvalidReviewerID
	}
	return &id, nil
}

func mapToResponse(a Apar) AparResponse {
	resp := AparResponse{
		ID:               a.ID.String(),
		EmployeeID:       a.OwnerID(),
		Year:             a.Year,
		Period:           a.Period,
		SelfAppraisal:    a.SelfAppraisal.Data(),
		ReviewerComments: a.ReviewerComments,
		ReviewerScore:    a.ReviewerScore,
		FinalScore:       scoring.Round2(a.FinalScore),
		Status:           string(a.Status),
		Version:          a.Version,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
	if a.ReviewerID != nil {
		resp.ReviewerID = a.ReviewerID.String()
	}
	return resp
}

func mapToListResponse(apars []Apar) []AparResponse {
	res := make([]AparResponse, 0, len(apars))
	for _, a := range apars {
		res = append(res, mapToResponse(a))
	}
	return res
}

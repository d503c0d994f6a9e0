package kpi

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"go-pms/internal/access"
	"go-pms/internal/domain"
	"go-pms/internal/employee"
	"go-pms/internal/events"
	kpierrors "go-pms/internal/kpi/errors"
	"go-pms/internal/messaging/kafka"
	"go-pms/internal/scoring"
	"go-pms/internal/shared/apperror"
	"go-pms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EmployeeReader is the slice of the employee repository KPI code reads.
type EmployeeReader interface {
	FindByID(ctx context.Context, id string) (*employee.Employee, error)
	ListActiveEmployeeIDs(ctx context.Context) ([]string, error)
}

//go:generate mockgen -source=kpi_service.go -destination=mock/kpi_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, caller access.Caller, req CreateKPIRequest) (KPIResponse, error)
	SeedDefaults(ctx context.Context, caller access.Caller, req SeedDefaultsRequest) ([]KPIResponse, error)
	GetAll(ctx context.Context, caller access.Caller, q ListQuery) ([]KPIResponse, error)
	GetByID(ctx context.Context, caller access.Caller, id string) (KPIResponse, error)
	Update(ctx context.Context, caller access.Caller, id string, req UpdateKPIRequest) (KPIResponse, error)
	ProposeUpdate(ctx context.Context, caller access.Caller, id string, req ProposeUpdateRequest) (KPIResponse, error)
	ReviewPendingUpdate(ctx context.Context, caller access.Caller, id string, req ReviewRequest) (KPIResponse, error)
	UpdateQualitative(ctx context.Context, caller access.Caller, id string, req QualitativeRequest) (KPIResponse, error)
	Delete(ctx context.Context, caller access.Caller, id string) error
	Templates(employerType string) (map[string][]Template, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees EmployeeReader
	outbox    kafka.OutboxRepository
	catalog   Catalog
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees EmployeeReader,
	outbox kafka.OutboxRepository,
	catalog Catalog,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("kpi.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kpi.service")
	}
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		outbox:    outbox,
		catalog:   catalog,
		now:       func() time.Time { return time.Now().UTC() },
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, caller access.Caller, req CreateKPIRequest) (KPIResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create kpi requested",
		zap.String("request_id", rid),
		zap.String("caller_id", caller.ID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("kpi_name", req.KPIName),
	)

	if !caller.IsAdmin() {
		s.logger.Warn("create kpi forbidden", zap.String("caller_id", caller.ID))
		return KPIResponse{}, kpierrors.ErrAdminOnly
	}
	assignedBy, err := uuid.Parse(caller.ID)
	if err != nil {
		return KPIResponse{}, apperror.ErrUnauthorized
	}
	empID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return KPIResponse{}, kpierrors.ErrInvalidEmployeeID
	}
	if strings.TrimSpace(req.KPIName) == "" {
		return KPIResponse{}, apperror.RequiredField("kpi_name")
	}
	if req.Target == nil {
		return KPIResponse{}, apperror.RequiredField("target")
	}
	if *req.Target < 0 {
		s.logger.Warn("create kpi invalid target", zap.Float64("target", *req.Target))
		return KPIResponse{}, kpierrors.ErrInvalidTarget
	}
	weightage := DefaultWeightage
	if req.Weightage != nil {
		weightage = *req.Weightage
	}
	if weightage < 0 || weightage > 100 {
		s.logger.Warn("create kpi invalid weightage", zap.Float64("weightage", weightage))
		return KPIResponse{}, kpierrors.ErrInvalidWeightage
	}
	period := strings.TrimSpace(req.Period)
	if period == "" {
		period = DefaultPeriod
	}
	readOnly := true
	if req.ReadOnly != nil {
		readOnly = *req.ReadOnly
	}

	emp, err := s.employees.FindByID(ctx, empID.String())
	if err != nil {
		return KPIResponse{}, mapEmployeeError(err)
	}

	k := &KPI{
		ID:                 uuid.New(),
		KPIName:            strings.TrimSpace(req.KPIName),
		Title:              req.Title,
		Metric:             req.Metric,
		Description:        req.Description,
		Target:             *req.Target,
		Weightage:          weightage,
		Status:             scoring.StatusNotStarted,
		Period:             period,
		IsDefault:          false,
		ReadOnly:           readOnly,
		Source:             SourceManual,
		VerificationStatus: VerificationPending,
		AssignedTo:         empID,
		AssignedBy:         assignedBy,
		Version:            1,
	}
	if req.EmployerType != "" {
		et, err := domain.ParseEmployerType(req.EmployerType)
		if err != nil {
			return KPIResponse{}, kpierrors.ErrInvalidEmployerType
		}
		etStr := string(et)
		k.EmployerType = &etStr
	} else if emp.EmployerType != nil {
		etStr := string(domain.EmployerTypeOrDefault(emp.EmployerType))
		k.EmployerType = &etStr
	}
	k.Recompute()
	k.touch(s.now())

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create kpi begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return KPIResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, k); err != nil {
		s.logger.Error("create kpi persist failed",
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return KPIResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return KPIResponse{}, err
	}

	s.logger.Info("create kpi success",
		zap.String("request_id", rid),
		zap.String("kpi_id", k.ID.String()),
		zap.String("employee_id", req.EmployeeID),
	)

	return mapToResponse(*k), nil
}

// SeedDefaults creates the classification's default KPI set for an employee
// who has none yet.
func (s *service) SeedDefaults(ctx context.Context, caller access.Caller, req SeedDefaultsRequest) ([]KPIResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("seed default kpis requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("employer_type", req.EmployerType),
	)

	if !caller.IsAdmin() {
		s.logger.Warn("seed default kpis forbidden", zap.String("caller_id", caller.ID))
		return nil, kpierrors.ErrAdminOnly
	}
	assignedBy, err := uuid.Parse(caller.ID)
	if err != nil {
		return nil, apperror.ErrUnauthorized
	}
	if strings.TrimSpace(req.EmployeeID) == "" {
		return nil, apperror.RequiredField("employee_id")
	}
	if strings.TrimSpace(req.EmployerType) == "" {
		return nil, apperror.RequiredField("employer_type")
	}
	empID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return nil, kpierrors.ErrInvalidEmployeeID
	}
	et, err := domain.ParseEmployerType(req.EmployerType)
	if err != nil {
		s.logger.Warn("seed default kpis invalid employer type", zap.String("employer_type", req.EmployerType))
		return nil, kpierrors.ErrInvalidEmployerType
	}
	templates := s.catalog.For(et)
	if len(templates) == 0 {
		return nil, kpierrors.ErrInvalidEmployerType
	}

	if _, err := s.employees.FindByID(ctx, empID.String()); err != nil {
		return nil, mapEmployeeError(err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("seed default kpis begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	existing, err := qtx.CountDefaults(ctx, empID.String())
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if existing > 0 {
		s.logger.Warn("seed default kpis already seeded",
			zap.String("employee_id", req.EmployeeID),
			zap.Int64("existing", existing),
		)
		return nil, kpierrors.ErrDefaultsAlreadyExist
	}

	now := s.now()
	etStr := string(et)
	kpis := make([]KPI, 0, len(templates))
	for _, t := range templates {
		period := t.Period
		if p := strings.TrimSpace(req.Period); p != "" {
			period = p
		}
		k := KPI{
			ID:                 uuid.New(),
			KPIName:            t.Name,
			Title:              t.Name,
			Metric:             t.Metric,
			Description:        t.Description,
			Target:             t.Target,
			Weightage:          t.Weightage,
			Status:             scoring.StatusNotStarted,
			Period:             period,
			EmployerType:       &etStr,
			IsDefault:          true,
			ReadOnly:           true,
			Source:             SourceEOffice,
			VerificationStatus: VerificationPending,
			AssignedTo:         empID,
			AssignedBy:         assignedBy,
			Version:            1,
		}
		k.Recompute()
		k.touch(now)
		kpis = append(kpis, k)
	}

	if err := qtx.CreateBatch(ctx, kpis); err != nil {
		s.logger.Error("seed default kpis persist failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	evt, err := kafka.NewOutboxEvent(rid, "employee", empID.String(), events.EventKPIDefaultsSeeded, events.KPILifecycleTopic,
		events.KPIDefaultsSeededEvent{
			EventType:    events.EventKPIDefaultsSeeded,
			RequestID:    rid,
			EmployeeID:   empID.String(),
			EmployerType: etStr,
			Count:        len(kpis),
			SeededBy:     caller.ID,
			OccurredAt:   now,
		})
	if err != nil {
		return nil, err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, evt); err != nil {
		s.logger.Error("seed default kpis outbox failed", zap.String("request_id", rid), zap.Error(err))
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return nil, err
	}

	s.logger.Info("seed default kpis success",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("employer_type", etStr),
		zap.Int("count", len(kpis)),
	)

	return mapToListResponse(kpis), nil
}

func (s *service) GetAll(ctx context.Context, caller access.Caller, q ListQuery) ([]KPIResponse, error) {
	s.logger.Debug("get all kpis requested",
		zap.String("caller_id", caller.ID),
		zap.String("employee_id", q.EmployeeID),
	)

	f := ListFilter{AssignedTo: q.EmployeeID, Period: q.Period}
	if !caller.IsAdmin() {
		if q.EmployeeID != "" && !caller.Owns(q.EmployeeID) {
			s.logger.Warn("get all kpis forbidden",
				zap.String("caller_id", caller.ID),
				zap.String("employee_id", q.EmployeeID),
			)
			return nil, kpierrors.ErrKPIForbidden
		}
		f.AssignedTo = caller.ID
	}
	if q.Status != "" {
		st, err := scoring.ParseStatus(q.Status)
		if err != nil {
			return nil, kpierrors.ErrInvalidStatus
		}
		f.Status = st
	}

	kpis, err := s.repo.List(ctx, f)
	if err != nil {
		s.logger.Error("get all kpis failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(kpis), nil
}

func (s *service) GetByID(ctx context.Context, caller access.Caller, id string) (KPIResponse, error) {
	s.logger.Debug("get kpi by id requested",
		zap.String("caller_id", caller.ID),
		zap.String("kpi_id", id),
	)
	if _, err := uuid.Parse(id); err != nil {
		return KPIResponse{}, kpierrors.ErrInvalidKPIID
	}

	k, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return KPIResponse{}, mapRepositoryError(err)
	}
	if !access.CanRead(caller, k.AssignedTo.String()) {
		s.logger.Warn("get kpi by id forbidden",
			zap.String("caller_id", caller.ID),
			zap.String("kpi_id", id),
		)
		return KPIResponse{}, kpierrors.ErrKPIForbidden
	}

	return mapToResponse(*k), nil
}

// Update is the admin metadata edit. Default KPIs are scored by analysis
// only and reject it.
func (s *service) Update(ctx context.Context, caller access.Caller, id string, req UpdateKPIRequest) (KPIResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update kpi requested",
		zap.String("request_id", rid),
		zap.String("caller_id", caller.ID),
		zap.String("kpi_id", id),
	)

	if !caller.IsAdmin() {
		s.logger.Warn("update kpi forbidden", zap.String("caller_id", caller.ID))
		return KPIResponse{}, kpierrors.ErrAdminOnly
	}
	if _, err := uuid.Parse(id); err != nil {
		return KPIResponse{}, kpierrors.ErrInvalidKPIID
	}
	var status scoring.Status
	if req.Status != nil && strings.TrimSpace(*req.Status) != "" {
		st, err := scoring.ParseStatus(*req.Status)
		if err != nil {
			return KPIResponse{}, kpierrors.ErrInvalidStatus
		}
		status = st
	}

	return s.mutate(ctx, rid, id, "update kpi", func(k *KPI) error {
		if k.IsDefault {
			s.logger.Warn("update kpi on default kpi", zap.String("kpi_id", id))
			return kpierrors.ErrDefaultKPIImmutable
		}
		if status != "" {
			k.Status = status
		}
		if req.ProgressNotes != nil {
			k.ProgressNotes = *req.ProgressNotes
		}
		if req.SupervisorComments != nil {
			k.SupervisorComments = *req.SupervisorComments
		}
		if req.Remarks != nil {
			k.Remarks = *req.Remarks
		}
		if req.ReadOnly != nil {
			k.ReadOnly = *req.ReadOnly
		}
		k.Recompute()
		return nil
	})
}

// ProposeUpdate stores an employee's proposed achievement as the KPI's single
// pending update.
func (s *service) ProposeUpdate(ctx context.Context, caller access.Caller, id string, req ProposeUpdateRequest) (KPIResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("propose kpi update requested",
		zap.String("request_id", rid),
		zap.String("caller_id", caller.ID),
		zap.String("kpi_id", id),
	)

	if _, err := uuid.Parse(id); err != nil {
		return KPIResponse{}, kpierrors.ErrInvalidKPIID
	}
	if req.AchievedValue == nil {
		return KPIResponse{}, apperror.RequiredField("achieved_value")
	}
	if *req.AchievedValue < 0 {
		return KPIResponse{}, apperror.InvalidField("achieved_value")
	}
	var proposed scoring.Status
	if strings.TrimSpace(req.Status) != "" {
		st, err := scoring.ParseStatus(req.Status)
		if err != nil {
			return KPIResponse{}, kpierrors.ErrInvalidStatus
		}
		proposed = st
	}

	return s.mutate(ctx, rid, id, "propose kpi update", func(k *KPI) error {
		if !caller.Owns(k.AssignedTo.String()) {
			s.logger.Warn("propose kpi update not owner",
				zap.String("caller_id", caller.ID),
				zap.String("kpi_id", id),
			)
			return kpierrors.ErrNotKPIOwner
		}
		if k.ReadOnly {
			s.logger.Warn("propose kpi update on read-only kpi", zap.String("kpi_id", id))
			return kpierrors.ErrKPIReadOnly
		}
		if k.PendingUpdate != nil {
			s.logger.Warn("propose kpi update already pending", zap.String("kpi_id", id))
			return kpierrors.ErrPendingUpdateExists
		}

		st := proposed
		if st == "" {
			st = scoring.DeriveStatus(scoring.ComputeProgress(*req.AchievedValue, k.Target))
		}
		k.PendingUpdate = &PendingUpdate{
			AchievedValue: *req.AchievedValue,
			Status:        st,
			ProgressNotes: req.ProgressNotes,
			SubmittedAt:   s.now(),
		}
		k.VerificationStatus = VerificationPending
		return nil
	})
}

// ReviewPendingUpdate applies or discards the pending update. Reviewing a KPI
// without one fails with NotFound, so a repeated approve is an error.
func (s *service) ReviewPendingUpdate(ctx context.Context, caller access.Caller, id string, req ReviewRequest) (KPIResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("review kpi update requested",
		zap.String("request_id", rid),
		zap.String("caller_id", caller.ID),
		zap.String("kpi_id", id),
		zap.String("action", req.Action),
	)

	if !caller.IsAdmin() {
		s.logger.Warn("review kpi update forbidden", zap.String("caller_id", caller.ID))
		return KPIResponse{}, kpierrors.ErrAdminOnly
	}
	if _, err := uuid.Parse(id); err != nil {
		return KPIResponse{}, kpierrors.ErrInvalidKPIID
	}
	action := strings.ToLower(strings.TrimSpace(req.Action))
	if action != ReviewApprove && action != ReviewReject {
		s.logger.Warn("review kpi update invalid action", zap.String("action", req.Action))
		return KPIResponse{}, kpierrors.ErrInvalidReviewAction
	}
	reviewer, err := uuid.Parse(caller.ID)
	if err != nil {
		return KPIResponse{}, apperror.ErrUnauthorized
	}

	afterWrite := func(tx *sql.Tx, k *KPI) error {
		evt, err := kafka.NewOutboxEvent(rid, "kpi", k.ID.String(), events.EventKPIUpdateReviewed, events.KPILifecycleTopic,
			events.KPIUpdateReviewedEvent{
				EventType:     events.EventKPIUpdateReviewed,
				RequestID:     rid,
				KPIID:         k.ID.String(),
				EmployeeID:    k.AssignedTo.String(),
				Action:        action,
				ReviewedBy:    caller.ID,
				AchievedValue: k.AchievedValue,
				Score:         k.Score,
				OccurredAt:    s.now(),
			})
		if err != nil {
			return err
		}
		return s.outbox.WithTx(tx).Create(ctx, evt)
	}

	return s.mutateWith(ctx, rid, id, "review kpi update", func(k *KPI) error {
		p := k.PendingUpdate
		if p == nil {
			s.logger.Warn("review kpi update without pending update", zap.String("kpi_id", id))
			return kpierrors.ErrNoPendingUpdate
		}

		if action == ReviewApprove {
			now := s.now()
			k.AchievedValue = p.AchievedValue
			k.Status = p.Status
			if p.ProgressNotes != "" {
				k.ProgressNotes = p.ProgressNotes
			}
			k.Recompute()
			k.VerificationStatus = VerificationApproved
			k.VerifiedBy = &reviewer
			k.VerifiedAt = &now
		}
		k.PendingUpdate = nil
		return nil
	}, afterWrite)
}

// UpdateQualitative records the supervisor's qualitative assessment. It never
// touches the measured score.
func (s *service) UpdateQualitative(ctx context.Context, caller access.Caller, id string, req QualitativeRequest) (KPIResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update qualitative score requested",
		zap.String("request_id", rid),
		zap.String("caller_id", caller.ID),
		zap.String("kpi_id", id),
	)

	if !caller.IsAdmin() {
		s.logger.Warn("update qualitative score forbidden", zap.String("caller_id", caller.ID))
		return KPIResponse{}, kpierrors.ErrAdminOnly
	}
	if _, err := uuid.Parse(id); err != nil {
		return KPIResponse{}, kpierrors.ErrInvalidKPIID
	}
	if req.QualitativeScore != nil && (*req.QualitativeScore < 0 || *req.QualitativeScore > 100) {
		return KPIResponse{}, kpierrors.ErrInvalidQualitativeScore
	}

	return s.mutate(ctx, rid, id, "update qualitative score", func(k *KPI) error {
		if req.QualitativeScore != nil {
			q := *req.QualitativeScore
			k.QualitativeScore = &q
		}
		if req.SupervisorComments != nil {
			k.SupervisorComments = *req.SupervisorComments
		}
		return nil
	})
}

func (s *service) Delete(ctx context.Context, caller access.Caller, id string) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete kpi requested",
		zap.String("request_id", rid),
		zap.String("caller_id", caller.ID),
		zap.String("kpi_id", id),
	)

	if !caller.IsAdmin() {
		s.logger.Warn("delete kpi forbidden", zap.String("caller_id", caller.ID))
		return kpierrors.ErrAdminOnly
	}
	if _, err := uuid.Parse(id); err != nil {
		return kpierrors.ErrInvalidKPIID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete kpi begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	k, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	ref := access.KPIRef{AssignedBy: k.AssignedBy.String(), IsDefault: k.IsDefault}
	if !access.CanDelete(caller, ref) {
		s.logger.Warn("delete kpi denied",
			zap.String("caller_id", caller.ID),
			zap.String("kpi_id", id),
			zap.Bool("is_default", k.IsDefault),
		)
		if k.IsDefault {
			return kpierrors.ErrDefaultKPIDelete
		}
		return kpierrors.ErrNotKPICreator
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete kpi persist failed", zap.String("kpi_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	s.logger.Info("delete kpi success",
		zap.String("request_id", rid),
		zap.String("kpi_id", id),
	)
	return nil
}

// Templates lists the default KPI sets, optionally for one classification.
func (s *service) Templates(employerType string) (map[string][]Template, error) {
	out := map[string][]Template{}
	if strings.TrimSpace(employerType) != "" {
		et, err := domain.ParseEmployerType(employerType)
		if err != nil {
			return nil, kpierrors.ErrInvalidEmployerType
		}
		out[string(et)] = s.catalog.For(et)
		return out, nil
	}
	for et, templates := range s.catalog {
		out[string(et)] = templates
	}
	return out, nil
}

func (s *service) mutate(ctx context.Context, rid, id, op string, apply func(k *KPI) error) (KPIResponse, error) {
	return s.mutateWith(ctx, rid, id, op, apply, nil)
}

// mutateWith locks the KPI, applies the change and writes it back with a
// version check, all in one transaction. afterWrite runs in the same
// transaction.
func (s *service) mutateWith(
	ctx context.Context,
	rid, id, op string,
	apply func(k *KPI) error,
	afterWrite func(tx *sql.Tx, k *KPI) error,
) (KPIResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error(op+" begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return KPIResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	k, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return KPIResponse{}, mapRepositoryError(err)
	}

	if err := apply(k); err != nil {
		return KPIResponse{}, err
	}
	k.touch(s.now())

	if err := qtx.UpdateVersioned(ctx, k); err != nil {
		s.logger.Error(op+" persist failed",
			zap.String("kpi_id", id),
			zap.Int("version", k.Version),
			zap.Error(err),
		)
		return KPIResponse{}, mapRepositoryError(err)
	}

	if afterWrite != nil {
		if err := afterWrite(tx, k); err != nil {
			s.logger.Error(op+" outbox failed", zap.String("request_id", rid), zap.Error(err))
			return KPIResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return KPIResponse{}, err
	}

	s.logger.Info(op+" success",
		zap.String("request_id", rid),
		zap.String("kpi_id", id),
		zap.Int("version", k.Version),
	)

	return mapToResponse(*k), nil
}

func mapToResponse(k KPI) KPIResponse {
	resp := KPIResponse{
		ID:                 k.ID.String(),
		KPIName:            k.KPIName,
		Title:              k.Title,
		Metric:             k.Metric,
		Description:        k.Description,
		Target:             k.Target,
		Weightage:          k.Weightage,
		AchievedValue:      k.AchievedValue,
		Progress:           scoring.Round2(k.Progress),
		Score:              scoring.Round2(k.Score),
		Status:             string(k.Status),
		Period:             k.Period,
		IsDefault:          k.IsDefault,
		ReadOnly:           k.ReadOnly,
		Source:             k.Source,
		ProgressNotes:      k.ProgressNotes,
		SupervisorComments: k.SupervisorComments,
		Remarks:            k.Remarks,
		QualitativeScore:   k.QualitativeScore,
		EofficeScore:       scoring.Round2(k.EofficeScore),
		VerificationStatus: k.VerificationStatus,
		VerifiedAt:         k.VerifiedAt,
		AssignedTo:         k.AssignedTo.String(),
		AssignedBy:         k.AssignedBy.String(),
		LastUpdated:        k.LastUpdated,
		Version:            k.Version,
		CreatedAt:          k.CreatedAt,
		UpdatedAt:          k.UpdatedAt,
	}
	if k.EmployerType != nil {
		resp.EmployerType = *k.EmployerType
	}
	if k.VerifiedBy != nil {
		resp.VerifiedBy = k.VerifiedBy.String()
	}
	if p := k.PendingUpdate; p != nil {
		resp.PendingUpdate = &PendingUpdateResponse{
			AchievedValue: p.AchievedValue,
			Status:        string(p.Status),
			ProgressNotes: p.ProgressNotes,
			SubmittedAt:   p.SubmittedAt,
		}
	}
	return resp
}

func mapToListResponse(kpis []KPI) []KPIResponse {
	res := make([]KPIResponse, 0, len(kpis))
	for _, k := range kpis {
		res = append(res, mapToResponse(k))
	}
	return res
}

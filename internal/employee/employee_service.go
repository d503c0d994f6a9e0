package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"go-pms/internal/access"
	"go-pms/internal/domain"
	employeeerrors "go-pms/internal/employee/errors"
	"go-pms/internal/shared/apperror"
	"go-pms/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	ActiveEmployeesKey = "employees:active"
	activeEmployeesTTL = time.Hour
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, caller access.Caller) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, caller access.Caller, id string) (EmployeeResponse, error)
	UpdateEmployerType(ctx context.Context, caller access.Caller, id string, req UpdateEmployerTypeRequest) (EmployeeResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) GetAll(ctx context.Context, caller access.Caller) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested", zap.String("caller_id", caller.ID))
	if !caller.IsAdmin() {
		s.logger.Warn("get all employees forbidden", zap.String("caller_id", caller.ID))
		return nil, apperror.ErrForbidden
	}

	// redis first
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, ActiveEmployeesKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// collapse concurrent misses into one query
	v, err, _ := s.sf.Do(ActiveEmployeesKey, func() (interface{}, error) {
		emps, err := s.repo.FindAllActive(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(emps)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, ActiveEmployeesKey, jsonData, activeEmployeesTTL).Err(); err != nil {
					s.logger.Warn("cache active employees failed", zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) GetByID(ctx context.Context, caller access.Caller, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested",
		zap.String("caller_id", caller.ID),
		zap.String("employee_id", id),
	)
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	if !access.CanRead(caller, id) {
		s.logger.Warn("get employee by id forbidden",
			zap.String("caller_id", caller.ID),
			zap.String("employee_id", id),
		)
		return EmployeeResponse{}, apperror.ErrForbidden
	}

	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*emp), nil
}

// UpdateEmployerType reclassifies an employee. Existing KPIs keep their
// classification; new defaults and analysis runs pick up the new one.
func (s *service) UpdateEmployerType(
	ctx context.Context,
	caller access.Caller,
	id string,
	req UpdateEmployerTypeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employer type requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
		zap.String("employer_type", req.EmployerType),
	)

	if !caller.IsAdmin() {
		return EmployeeResponse{}, apperror.ErrForbidden
	}
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	et, err := domain.ParseEmployerType(req.EmployerType)
	if err != nil {
		s.logger.Warn("update employer type invalid value", zap.String("employer_type", req.EmployerType))
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployerType
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employer type begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	emp, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if emp.Archived {
		s.logger.Warn("update employer type on archived employee", zap.String("employee_id", id))
		return EmployeeResponse{}, employeeerrors.ErrEmployeeArchived
	}

	if err := qtx.UpdateEmployerType(ctx, id, string(et)); err != nil {
		s.logger.Error("update employer type persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	if s.rdb != nil {
		if err := s.rdb.Del(ctx, ActiveEmployeesKey).Err(); err != nil {
			s.logger.Error("failed to invalidate active employees cache",
				zap.Error(err),
				zap.String("key", ActiveEmployeesKey),
			)
		}
	}

	etStr := string(et)
	emp.EmployerType = &etStr
	s.logger.Info("update employer type success",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
		zap.String("employer_type", etStr),
	)

	return mapToResponse(*emp), nil
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:          e.ID.String(),
		FullName:    e.FullName,
		Email:       e.Email,
		Role:        e.Role,
		Department:  e.Department,
		Designation: e.Designation,
	}
	if e.EmployerType != nil {
		resp.EmployerType = *e.EmployerType
	}
	return resp
}

func mapToListResponse(emps []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, 0, len(emps))
	for _, e := range emps {
		res = append(res, mapToResponse(e))
	}
	return res
}

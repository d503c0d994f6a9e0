package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-pms/internal/access"
	"go-pms/internal/employee"
	employeeerrors "go-pms/internal/employee/errors"
	employeeMock "go-pms/internal/employee/mock"
	"go-pms/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   employee.Service
	repo      *employeeMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	dbRedis, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   employee.NewService(db, repo, dbRedis),
		repo:      repo,
		redismock: redisMock,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

var (
	adminCaller = access.Caller{ID: uuid.NewString(), Role: access.RoleAdmin}
)

func TestEmployeeService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss loads and caches", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		hq := "HQ"
		emps := []employee.Employee{{ID: uuid.New(), FullName: "Asha", Role: "employee", EmployerType: &hq}}
		want := []employee.EmployeeResponse{{ID: emps[0].ID.String(), FullName: "Asha", Role: "employee", EmployerType: "HQ"}}
		payload, _ := json.Marshal(want)

		deps.redismock.ExpectGet(employee.ActiveEmployeesKey).RedisNil()
		deps.repo.EXPECT().FindAllActive(gomock.Any()).Return(emps, nil)
		deps.redismock.ExpectSet(employee.ActiveEmployeesKey, payload, time.Hour).SetVal("OK")

		resp, err := deps.service.GetAll(ctx, adminCaller)

		assert.NoError(t, err)
		assert.Equal(t, want, resp)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		cached := []employee.EmployeeResponse{{ID: uuid.NewString(), FullName: "Cached"}}
		payload, _ := json.Marshal(cached)
		deps.redismock.ExpectGet(employee.ActiveEmployeesKey).SetVal(string(payload))

		resp, err := deps.service.GetAll(ctx, adminCaller)

		assert.NoError(t, err)
		assert.Equal(t, cached, resp)
	})

	t.Run("employees cannot list everyone", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetAll(ctx, access.Caller{ID: uuid.NewString(), Role: access.RoleEmployee})

		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})
}

func TestEmployeeService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("employee reads self", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&employee.Employee{ID: id, FullName: "Self"}, nil)

		resp, err := deps.service.GetByID(ctx, access.Caller{ID: id.String(), Role: access.RoleEmployee}, id.String())

		assert.NoError(t, err)
		assert.Equal(t, "Self", resp.FullName)
	})

	t.Run("employee cannot read others", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetByID(ctx, access.Caller{ID: uuid.NewString()}, uuid.NewString())

		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.NewString()
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, adminCaller, id)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetByID(ctx, adminCaller, "nope")

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})
}

func TestEmployeeService_UpdateEmployerType(t *testing.T) {
	ctx := context.Background()

	t.Run("success invalidates cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&employee.Employee{ID: id}, nil)
		deps.repo.EXPECT().UpdateEmployerType(ctx, id.String(), "HQ").Return(nil)
		deps.redismock.ExpectDel(employee.ActiveEmployeesKey).SetVal(1)

		resp, err := deps.service.UpdateEmployerType(ctx, adminCaller, id.String(), employee.UpdateEmployerTypeRequest{EmployerType: "hq"})

		assert.NoError(t, err)
		assert.Equal(t, "HQ", resp.EmployerType)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("archived employee is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&employee.Employee{ID: id, Archived: true}, nil)

		_, err := deps.service.UpdateEmployerType(ctx, adminCaller, id.String(), employee.UpdateEmployerTypeRequest{EmployerType: "Field"})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeArchived)
	})

	t.Run("persist failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&employee.Employee{ID: id}, nil)
		deps.repo.EXPECT().UpdateEmployerType(ctx, id.String(), "Field").Return(errors.New("db down"))

		_, err := deps.service.UpdateEmployerType(ctx, adminCaller, id.String(), employee.UpdateEmployerTypeRequest{EmployerType: "Field"})

		assert.EqualError(t, err, "db down")
	})

	t.Run("non admin forbidden", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.UpdateEmployerType(ctx, access.Caller{ID: "x"}, uuid.NewString(), employee.UpdateEmployerTypeRequest{EmployerType: "HQ"})

		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})
}

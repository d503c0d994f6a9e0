package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-pms/internal/access"
	"go-pms/internal/employee"
	employeeerrors "go-pms/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeService struct {
	GetAllFn             func(ctx context.Context, caller access.Caller) ([]employee.EmployeeResponse, error)
	GetByIDFn            func(ctx context.Context, caller access.Caller, id string) (employee.EmployeeResponse, error)
	UpdateEmployerTypeFn func(ctx context.Context, caller access.Caller, id string, req employee.UpdateEmployerTypeRequest) (employee.EmployeeResponse, error)
}

func (f *fakeEmployeeService) GetAll(ctx context.Context, caller access.Caller) ([]employee.EmployeeResponse, error) {
	return f.GetAllFn(ctx, caller)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, caller access.Caller, id string) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, caller, id)
}
func (f *fakeEmployeeService) UpdateEmployerType(ctx context.Context, caller access.Caller, id string, req employee.UpdateEmployerTypeRequest) (employee.EmployeeResponse, error) {
	return f.UpdateEmployerTypeFn(ctx, caller, id, req)
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Meta  map[string]any  `json:"meta"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func newTestContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func TestEmployeeHandler_GetAll_FiltersAndPaginates(t *testing.T) {
	svc := &fakeEmployeeService{
		GetAllFn: func(ctx context.Context, caller access.Caller) ([]employee.EmployeeResponse, error) {
			assert.True(t, caller.IsAdmin())
			return []employee.EmployeeResponse{
				{ID: "1", FullName: "Zara", EmployerType: "HQ"},
				{ID: "2", FullName: "Arjun", EmployerType: "Field"},
				{ID: "3", FullName: "Bela", EmployerType: "HQ"},
			}, nil
		},
	}
	h := employee.NewHandler(svc)

	c, w := newTestContext(http.MethodGet, "/api/v1/employees?employer_type=hq&page_size=1", "")
	c.Set("user_id", "admin-1")
	c.Set("role", "admin")

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	var data []employee.EmployeeResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data, 1)
	assert.Equal(t, "Bela", data[0].FullName)
	assert.EqualValues(t, 2, env.Meta["total"])
}

func TestEmployeeHandler_GetByID_NotFound(t *testing.T) {
	svc := &fakeEmployeeService{
		GetByIDFn: func(ctx context.Context, caller access.Caller, id string) (employee.EmployeeResponse, error) {
			return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		},
	}
	h := employee.NewHandler(svc)

	c, w := newTestContext(http.MethodGet, "/api/v1/employees/x", "")
	c.Params = gin.Params{{Key: "id", Value: "x"}}

	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w)
	assert.False(t, env.Ok)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestEmployeeHandler_UpdateEmployerType(t *testing.T) {
	t.Run("validation error", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})

		c, w := newTestContext(http.MethodPatch, "/api/v1/employees/1/employer-type", `{"employer_type":"Remote"}`)

		h.UpdateEmployerType(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", decodeEnvelope(t, w).Error.Code)
	})

	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			UpdateEmployerTypeFn: func(ctx context.Context, caller access.Caller, id string, req employee.UpdateEmployerTypeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "1", id)
				return employee.EmployeeResponse{ID: id, EmployerType: "HQ"}, nil
			},
		}
		h := employee.NewHandler(svc)

		c, w := newTestContext(http.MethodPatch, "/api/v1/employees/1/employer-type", `{"employer_type":"HQ"}`)
		c.Params = gin.Params{{Key: "id", Value: "1"}}
		c.Set("role", "admin")

		h.UpdateEmployerType(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

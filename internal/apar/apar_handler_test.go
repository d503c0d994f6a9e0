package apar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-pms/internal/access"
	"go-pms/internal/apar"
	aparerrors "go-pms/internal/apar/errors"
	aparMock "go-pms/internal/apar/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

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

func asCaller(c *gin.Context, caller access.Caller) {
	c.Set("user_id", caller.ID)
	c.Set("role", string(caller.Role))
}

func setupHandlerTest(t *testing.T) (*aparMock.MockService, *apar.Handler) {
	ctrl := gomock.NewController(t)
	svc := aparMock.NewMockService(ctrl)
	return svc, apar.NewHandler(svc)
}

func TestAparHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc, h := setupHandlerTest(t)

		svc.EXPECT().Create(gomock.Any(), employeeCaller, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ access.Caller, req apar.CreateAparRequest) (apar.AparResponse, error) {
				assert.Equal(t, 2025, req.Year)
				require.NotNil(t, req.SelfAppraisal)
				assert.Equal(t, "Shipped the audit tool", req.SelfAppraisal.Achievements)
				return apar.AparResponse{ID: uuid.NewString(), Year: 2025, Status: "draft"}, nil
			})

		c, w := newTestContext(http.MethodPost, "/apars", `{"year":2025,"self_appraisal":{"achievements":"Shipped the audit tool"}}`)
		asCaller(c, employeeCaller)
		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w)
		assert.True(t, env.Ok)
	})

	t.Run("year is required", func(t *testing.T) {
		_, h := setupHandlerTest(t)

		c, w := newTestContext(http.MethodPost, "/apars", `{"self_appraisal":{}}`)
		asCaller(c, employeeCaller)
		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", decodeEnvelope(t, w).Error.Code)
	})
}

func TestAparHandler_Update(t *testing.T) {
	t.Run("put and patch share semantics", func(t *testing.T) {
		for _, method := range []string{http.MethodPatch, http.MethodPut} {
			svc, h := setupHandlerTest(t)
			id := uuid.NewString()

			svc.EXPECT().Update(gomock.Any(), adminCaller, id, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ access.Caller, _ string, req apar.UpdateAparRequest) (apar.AparResponse, error) {
					require.NotNil(t, req.Status)
					assert.Equal(t, "finalized", *req.Status)
					return apar.AparResponse{ID: id, Status: "finalized", RetiredCount: 2}, nil
				})

			c, w := newTestContext(method, "/apars/"+id, `{"status":"finalized"}`)
			c.Params = gin.Params{{Key: "id", Value: id}}
			asCaller(c, adminCaller)
			h.Update(c)

			assert.Equal(t, http.StatusOK, w.Code, method)
			var body apar.AparResponse
			require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &body))
			assert.EqualValues(t, 2, body.RetiredCount)
		}
	})

	t.Run("locked apar", func(t *testing.T) {
		svc, h := setupHandlerTest(t)
		id := uuid.NewString()

		svc.EXPECT().Update(gomock.Any(), employeeCaller, id, gomock.Any()).Return(apar.AparResponse{}, aparerrors.ErrAparLocked)

		c, w := newTestContext(http.MethodPatch, "/apars/"+id, `{"self_appraisal":{"challenges":"x"}}`)
		c.Params = gin.Params{{Key: "id", Value: id}}
		asCaller(c, employeeCaller)
		h.Update(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("stale", func(t *testing.T) {
		svc, h := setupHandlerTest(t)
		id := uuid.NewString()

		svc.EXPECT().Update(gomock.Any(), adminCaller, id, gomock.Any()).Return(apar.AparResponse{}, aparerrors.ErrStaleApar)

		c, w := newTestContext(http.MethodPatch, "/apars/"+id, `{"status":"reviewed","version":1}`)
		c.Params = gin.Params{{Key: "id", Value: id}}
		asCaller(c, adminCaller)
		h.Update(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAparHandler_GetAll(t *testing.T) {
	svc, h := setupHandlerTest(t)

	svc.EXPECT().GetAll(gomock.Any(), employeeCaller, apar.ListQuery{Status: "finalized", Year: 2025}).
		Return([]apar.AparResponse{{ID: uuid.NewString()}}, nil)

	c, w := newTestContext(http.MethodGet, "/apars?status=finalized&year=2025", "")
	asCaller(c, employeeCaller)
	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.EqualValues(t, 1, env.Meta["total"])
}

func TestAparHandler_Analyze(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc, h := setupHandlerTest(t)
		empID := uuid.NewString()

		svc.EXPECT().Analyze(gomock.Any(), adminCaller, apar.AnalyzeAparRequest{EmployeeID: empID, Year: 2025}).
			Return(apar.AnalyzeAparResponse{HasData: true, FinalScore: 85, PerformanceLevel: apar.PerformanceExcellent}, nil)

		c, w := newTestContext(http.MethodPost, "/apars/analyze", `{"employee_id":"`+empID+`","year":2025}`)
		asCaller(c, adminCaller)
		h.Analyze(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("employee id must be a uuid", func(t *testing.T) {
		_, h := setupHandlerTest(t)

		c, w := newTestContext(http.MethodPost, "/apars/analyze", `{"employee_id":"bob"}`)
		asCaller(c, adminCaller)
		h.Analyze(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAparHandler_ExportPDF(t *testing.T) {
	t.Run("attachment", func(t *testing.T) {
		svc, h := setupHandlerTest(t)
		id := uuid.NewString()

		svc.EXPECT().ExportPDF(gomock.Any(), employeeCaller, id).Return([]byte("%PDF-1.3 test"), nil)

		c, w := newTestContext(http.MethodGet, "/apars/"+id+"/pdf", "")
		c.Params = gin.Params{{Key: "id", Value: id}}
		asCaller(c, employeeCaller)
		h.ExportPDF(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "apar-"+id+".pdf")
		assert.Equal(t, "%PDF-1.3 test", w.Body.String())
	})

	t.Run("read forbidden", func(t *testing.T) {
		svc, h := setupHandlerTest(t)
		id := uuid.NewString()

		svc.EXPECT().ExportPDF(gomock.Any(), employeeCaller, id).Return(nil, aparerrors.ErrAparReadForbidden)

		c, w := newTestContext(http.MethodGet, "/apars/"+id+"/pdf", "")
		c.Params = gin.Params{{Key: "id", Value: id}}
		asCaller(c, employeeCaller)
		h.ExportPDF(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"rvroofworks/internal/adapter/http/handlers/mocks"
	"rvroofworks/internal/domain/entities"
	"rvroofworks/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const validJobBody = `{"job_code":"RR-07","job_name":"Full Roof Reseal","job_description":"Strip and reseal entire roof","hrs":16,"labor_per_hr":95,"job_price":1899}`

func TestPreConfiguredJobHandler_CreateJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPreConfiguredJobUseCase(ctrl)
		h := NewPreConfiguredJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs", h.CreateJob)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing job code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPreConfiguredJobUseCase(ctrl)
		h := NewPreConfiguredJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs", h.CreateJob)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(`{"job_name":"Full Roof Reseal"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate job code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPreConfiguredJobUseCase(ctrl)
		h := NewPreConfiguredJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs", h.CreateJob)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PreConfiguredJob{}, usecase.ErrJobCodeTaken)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(validJobBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPreConfiguredJobUseCase(ctrl)
		h := NewPreConfiguredJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs", h.CreateJob)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PreConfiguredJob{ID: "job-1", JobCode: "RR-07", JobName: "Full Roof Reseal", JobPrice: 1899}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(validJobBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["job_code"] != "RR-07" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestPreConfiguredJobHandler_UpdateJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("duplicate job code on rename", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPreConfiguredJobUseCase(ctrl)
		h := NewPreConfiguredJobHandler(uc)

		r := gin.New()
		r.PUT("/v1/jobs/:id", h.UpdateJob)

		uc.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.PreConfiguredJob{}, usecase.ErrJobCodeTaken)

		req := httptest.NewRequest(http.MethodPut, "/v1/jobs/job-1", bytes.NewBufferString(validJobBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPreConfiguredJobUseCase(ctrl)
		h := NewPreConfiguredJobHandler(uc)

		r := gin.New()
		r.PUT("/v1/jobs/:id", h.UpdateJob)

		uc.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, j entities.PreConfiguredJob) (entities.PreConfiguredJob, error) {
				if j.ID != "job-1" {
					t.Fatalf("expected path id job-1, got %q", j.ID)
				}
				return j, nil
			})

		req := httptest.NewRequest(http.MethodPut, "/v1/jobs/job-1", bytes.NewBufferString(validJobBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPreConfiguredJobHandler_DeleteJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPreConfiguredJobUseCase(ctrl)
		h := NewPreConfiguredJobHandler(uc)

		r := gin.New()
		r.DELETE("/v1/jobs/:id", h.DeleteJob)

		uc.EXPECT().Delete(gomock.Any(), "job-404").Return(usecase.ErrJobNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/jobs/job-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapJobError(t *testing.T) {
	if got := mapJobError(usecase.ErrInvalidJobID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapJobError(usecase.ErrInvalidJobCode); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapJobError(usecase.ErrJobCodeTaken); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapJobError(usecase.ErrJobNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapJobError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}

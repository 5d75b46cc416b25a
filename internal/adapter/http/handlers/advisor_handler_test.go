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

func TestAdvisorHandler_CreateAdvisor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdvisorUseCase(ctrl)
		h := NewAdvisorHandler(uc)

		r := gin.New()
		r.POST("/v1/advisors", h.CreateAdvisor)

		req := httptest.NewRequest(http.MethodPost, "/v1/advisors", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdvisorUseCase(ctrl)
		h := NewAdvisorHandler(uc)

		r := gin.New()
		r.POST("/v1/advisors", h.CreateAdvisor)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Advisor{ID: "adv-1", Name: "Pat Miller"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/advisors", bytes.NewBufferString(`{"name":"Pat Miller"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["name"] != "Pat Miller" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestAdvisorHandler_ListAdvisors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAdvisorUseCase(ctrl)
	h := NewAdvisorHandler(uc)

	r := gin.New()
	r.GET("/v1/advisors", h.ListAdvisors)

	uc.EXPECT().List(gomock.Any()).Return([]entities.Advisor{{ID: "adv-1", Name: "Pat Miller"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/advisors", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestAdvisorHandler_DeleteAdvisor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdvisorUseCase(ctrl)
		h := NewAdvisorHandler(uc)

		r := gin.New()
		r.DELETE("/v1/advisors/:id", h.DeleteAdvisor)

		uc.EXPECT().Delete(gomock.Any(), "adv-404").Return(usecase.ErrAdvisorNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/advisors/adv-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapAdvisorError(t *testing.T) {
	if got := mapAdvisorError(usecase.ErrInvalidAdvisorID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapAdvisorError(usecase.ErrAdvisorNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapAdvisorError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}

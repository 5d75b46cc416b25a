package handlers

import (
	"errors"
	"net/http"

	request "rvroofworks/internal/adapter/http/dto/request"
	response "rvroofworks/internal/adapter/http/dto/response"
	"rvroofworks/internal/domain/entities"
	"rvroofworks/internal/usecase"
	"rvroofworks/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)

// EstimateHandler handles HTTP requests for the estimate list and form.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	details, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateDetails(details))
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	detail, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateDetail(detail))
}

func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	detail, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimateDetail(detail))
}

func (h *EstimateHandler) UpdateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	draft := payload.ToEntity()
	draft.ID = c.Param("id")

	detail, err := h.usecase.Update(c.Request.Context(), draft)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateDetail(detail))
}

func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// NewEstimate returns a fresh draft, optionally prefilled from a customer
// and/or a job template. Backs the create-mode entry of the estimate form.
func (h *EstimateHandler) NewEstimate(c *gin.Context) {
	draft, err := h.usecase.Prefill(c.Request.Context(), entities.Estimate{}, c.Query("customer_id"), c.Query("job_code"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(draft))
}

// PrefillEstimate applies a customer and/or job-template selection to the
// submitted in-progress draft without persisting it. The selection is carried
// in query parameters; only the named lookups are applied.
func (h *EstimateHandler) PrefillEstimate(c *gin.Context) {
	var payload request.EstimatePrefillRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	draft, err := h.usecase.Prefill(c.Request.Context(), payload.ToEntity(), c.Query("customer_id"), c.Query("job_code"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(draft))
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrEstimateMissingFields):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPrefillCustomerMissing):
		return pkg.NewDomainErrorSimple("PREFILL_CUSTOMER_NOT_FOUND", "Prefill customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPrefillJobMissing):
		return pkg.NewDomainErrorSimple("PREFILL_JOB_NOT_FOUND", "Prefill job not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

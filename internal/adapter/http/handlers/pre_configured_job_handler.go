package handlers

import (
	"errors"
	"net/http"

	request "rvroofworks/internal/adapter/http/dto/request"
	response "rvroofworks/internal/adapter/http/dto/response"
	"rvroofworks/internal/usecase"
	"rvroofworks/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_JOB_INPUT", "Invalid job payload", http.StatusBadRequest)

// PreConfiguredJobHandler handles HTTP requests for the jobs-configuration
// screen.
type PreConfiguredJobHandler struct {
	usecase usecase.IPreConfiguredJobUseCase
}

func NewPreConfiguredJobHandler(uc usecase.IPreConfiguredJobUseCase) *PreConfiguredJobHandler {
	return &PreConfiguredJobHandler{usecase: uc}
}

func (h *PreConfiguredJobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPreConfiguredJobs(jobs))
}

func (h *PreConfiguredJobHandler) GetJob(c *gin.Context) {
	job, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPreConfiguredJob(job))
}

func (h *PreConfiguredJobHandler) CreateJob(c *gin.Context) {
	var payload request.PreConfiguredJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromPreConfiguredJob(job))
}

func (h *PreConfiguredJobHandler) UpdateJob(c *gin.Context) {
	var payload request.PreConfiguredJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	draft := payload.ToEntity()
	draft.ID = c.Param("id")

	job, err := h.usecase.Update(c.Request.Context(), draft)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPreConfiguredJob(job))
}

func (h *PreConfiguredJobHandler) DeleteJob(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrInvalidJobCode), errors.Is(err, usecase.ErrJobMissingField):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobCodeTaken):
		return pkg.NewDomainErrorSimple("JOB_CODE_TAKEN", "Job code already in use", http.StatusConflict)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Pre-configured job not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

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

var errInvalidAdvisorPayload = pkg.NewDomainErrorSimple("INVALID_ADVISOR_INPUT", "Invalid advisor payload", http.StatusBadRequest)

// AdvisorHandler handles HTTP requests for advisor reference data.
type AdvisorHandler struct {
	usecase usecase.IAdvisorUseCase
}

func NewAdvisorHandler(uc usecase.IAdvisorUseCase) *AdvisorHandler {
	return &AdvisorHandler{usecase: uc}
}

func (h *AdvisorHandler) ListAdvisors(c *gin.Context) {
	advisors, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapAdvisorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAdvisors(advisors))
}

func (h *AdvisorHandler) GetAdvisor(c *gin.Context) {
	advisor, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapAdvisorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAdvisor(advisor))
}

func (h *AdvisorHandler) CreateAdvisor(c *gin.Context) {
	var payload request.AdvisorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAdvisorPayload.HTTPStatus, errInvalidAdvisorPayload.ToHTTPError())
		return
	}

	advisor, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapAdvisorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromAdvisor(advisor))
}

func (h *AdvisorHandler) UpdateAdvisor(c *gin.Context) {
	var payload request.AdvisorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAdvisorPayload.HTTPStatus, errInvalidAdvisorPayload.ToHTTPError())
		return
	}

	draft := payload.ToEntity()
	draft.ID = c.Param("id")

	advisor, err := h.usecase.Update(c.Request.Context(), draft)
	if err != nil {
		appErr := mapAdvisorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAdvisor(advisor))
}

func (h *AdvisorHandler) DeleteAdvisor(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapAdvisorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapAdvisorError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAdvisorID), errors.Is(err, usecase.ErrAdvisorMissingName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAdvisorNotFound):
		return pkg.NewDomainErrorSimple("ADVISOR_NOT_FOUND", "Advisor not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

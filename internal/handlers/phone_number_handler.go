package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/noshow_platform/internal/repositories"
	"github.com/noshow_platform/internal/services"
	"github.com/noshow_platform/pkg/utils"
)

// PhoneNumberHandler wraps the tenant-facing phone number HTTP endpoints.
type PhoneNumberHandler struct {
	service services.PhoneNumberService
}

// NewPhoneNumberHandler creates a new PhoneNumberHandler instance.
func NewPhoneNumberHandler(service services.PhoneNumberService) *PhoneNumberHandler {
	return &PhoneNumberHandler{service: service}
}

// GetAvailablePhoneNumbers godoc
// @Summary List available phone numbers
// @Description Returns the shared pool of unassigned numbers, most recently created first.
// @Tags PhoneNumbers
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=PhoneNumberListData} "Available numbers"
// @Failure 401 {object} utils.APIErrorResponse "Not authenticated"
// @Failure 500 {object} utils.APIErrorResponse "Internal server error"
// @Router /phone-numbers/available [get]
// @Security BearerAuth
func (h *PhoneNumberHandler) GetAvailablePhoneNumbers(c *gin.Context) {
	numbers, err := h.service.GetAvailablePhoneNumbers(c.Request.Context())
	if err != nil {
		utils.RespondInternalServerError(c, "Failed to list available phone numbers", err.Error())
		return
	}
	utils.RespondSuccess(c, http.StatusOK, PhoneNumberListData{PhoneNumbers: numbers}, "")
}

// GetAssistantPhoneNumbers godoc
// @Summary List phone numbers assigned to an assistant
// @Description Returns the numbers currently assigned to the given assistant. An empty list is a valid result.
// @Tags PhoneNumbers
// @Produce json
// @Param assistantId query string true "Assistant identifier"
// @Success 200 {object} utils.SuccessResponse{data=PhoneNumberListData} "Assigned numbers"
// @Failure 400 {object} utils.APIErrorResponse "Missing assistantId"
// @Failure 401 {object} utils.APIErrorResponse "Not authenticated"
// @Failure 500 {object} utils.APIErrorResponse "Internal server error"
// @Router /phone-numbers [get]
// @Security BearerAuth
func (h *PhoneNumberHandler) GetAssistantPhoneNumbers(c *gin.Context) {
	assistantID := c.Query("assistantId")
	numbers, err := h.service.GetAssistantPhoneNumbers(c.Request.Context(), assistantID)
	if err != nil {
		if errors.Is(err, services.ErrMissingAssistantID) {
			utils.RespondValidationError(c, err.Error())
			return
		}
		utils.RespondInternalServerError(c, "Failed to list assistant phone numbers", err.Error())
		return
	}
	utils.RespondSuccess(c, http.StatusOK, PhoneNumberListData{PhoneNumbers: numbers}, "")
}

// AssignPhoneNumberPayload is the request body for an assignment.
type AssignPhoneNumberPayload struct {
	AssistantID   string `json:"assistantId" binding:"required"`
	PhoneNumberID int64  `json:"phoneNumberId" binding:"required"`
}

// AssignPhoneNumber godoc
// @Summary Assign a phone number to an assistant
// @Description Binds an unassigned number to the given assistant. Fails with 409 when the number is already owned; the existing owner is never overwritten.
// @Tags PhoneNumbers
// @Accept json
// @Produce json
// @Param assignPayload body AssignPhoneNumberPayload true "Assignment request"
// @Success 200 {object} utils.SuccessResponse{data=PhoneNumberData} "Assigned number"
// @Failure 400 {object} utils.APIErrorResponse "Missing required field"
// @Failure 401 {object} utils.APIErrorResponse "Not authenticated"
// @Failure 404 {object} utils.APIErrorResponse "Phone number not found"
// @Failure 409 {object} utils.APIErrorResponse "Number already assigned"
// @Failure 500 {object} utils.APIErrorResponse "Internal server error"
// @Router /phone-numbers/assign [post]
// @Security BearerAuth
func (h *PhoneNumberHandler) AssignPhoneNumber(c *gin.Context) {
	var payload AssignPhoneNumberPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	assigned, err := h.service.AssignPhoneNumber(c.Request.Context(), payload.PhoneNumberID, payload.AssistantID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingAssistantID), errors.Is(err, services.ErrMissingPhoneNumberID):
			utils.RespondValidationError(c, err.Error())
		case errors.Is(err, services.ErrPhoneNumberNotFound):
			utils.RespondNotFoundError(c, "Phone number")
		case errors.Is(err, repositories.ErrPhoneNumberAlreadyAssigned):
			utils.RespondConflictError(c, "Phone number is already assigned to an assistant", err.Error())
		default:
			utils.RespondInternalServerError(c, "Failed to assign phone number", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusOK, PhoneNumberData{PhoneNumber: assigned}, "Phone number assigned")
}

// UnassignPhoneNumberPayload is the request body for an unassignment.
type UnassignPhoneNumberPayload struct {
	PhoneNumberID int64 `json:"phoneNumberId" binding:"required"`
}

// UnassignPhoneNumber godoc
// @Summary Unassign a phone number
// @Description Clears the number's assignment. Unassigning an already-unassigned number succeeds as a no-op.
// @Tags PhoneNumbers
// @Accept json
// @Produce json
// @Param unassignPayload body UnassignPhoneNumberPayload true "Unassignment request"
// @Success 200 {object} utils.SuccessResponse{data=PhoneNumberData} "Unassigned number"
// @Failure 400 {object} utils.APIErrorResponse "Missing required field"
// @Failure 401 {object} utils.APIErrorResponse "Not authenticated"
// @Failure 404 {object} utils.APIErrorResponse "Phone number not found"
// @Failure 500 {object} utils.APIErrorResponse "Internal server error"
// @Router /phone-numbers/unassign [post]
// @Security BearerAuth
func (h *PhoneNumberHandler) UnassignPhoneNumber(c *gin.Context) {
	var payload UnassignPhoneNumberPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	unassigned, err := h.service.UnassignPhoneNumber(c.Request.Context(), payload.PhoneNumberID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingPhoneNumberID):
			utils.RespondValidationError(c, err.Error())
		case errors.Is(err, services.ErrPhoneNumberNotFound):
			utils.RespondNotFoundError(c, "Phone number")
		default:
			utils.RespondInternalServerError(c, "Failed to unassign phone number", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusOK, PhoneNumberData{PhoneNumber: unassigned}, "Phone number unassigned")
}

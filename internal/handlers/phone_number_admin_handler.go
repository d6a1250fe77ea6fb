package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/noshow_platform/internal/carrier"
	"github.com/noshow_platform/internal/repositories"
	"github.com/noshow_platform/internal/services"
	"github.com/noshow_platform/pkg/utils"
)

// PhoneNumberAdminHandler wraps the privileged phone number HTTP endpoints.
// Routes using it sit behind both the JWT and the AdminRequired middleware.
type PhoneNumberAdminHandler struct {
	adminService       services.PhoneNumberAdminService
	acquisitionService services.AcquisitionService
}

// NewPhoneNumberAdminHandler creates a new PhoneNumberAdminHandler instance.
func NewPhoneNumberAdminHandler(adminService services.PhoneNumberAdminService, acquisitionService services.AcquisitionService) *PhoneNumberAdminHandler {
	return &PhoneNumberAdminHandler{
		adminService:       adminService,
		acquisitionService: acquisitionService,
	}
}

// GetAllPhoneNumbers godoc
// @Summary List all phone numbers (admin)
// @Description Returns every Number Store row regardless of assignment or owner.
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=PhoneNumberListData} "All numbers"
// @Failure 401 {object} utils.APIErrorResponse "Not authenticated"
// @Failure 403 {object} utils.APIErrorResponse "Not an administrator"
// @Failure 500 {object} utils.APIErrorResponse "Internal server error"
// @Router /admin/phone-numbers [get]
// @Security BearerAuth
func (h *PhoneNumberAdminHandler) GetAllPhoneNumbers(c *gin.Context) {
	numbers, err := h.adminService.GetAllPhoneNumbers(c.Request.Context())
	if err != nil {
		utils.RespondInternalServerError(c, "Failed to list phone numbers", err.Error())
		return
	}
	utils.RespondSuccess(c, http.StatusOK, PhoneNumberListData{PhoneNumbers: numbers}, "")
}

// CreatePhoneNumberPayload is the request body for a direct (import) create.
type CreatePhoneNumberPayload struct {
	Number      string  `json:"phone_number" binding:"required,max=32"`
	CarrierRef  *string `json:"carrier_ref,omitempty" binding:"omitempty,max=64"`
	IsAssigned  bool    `json:"is_assigned,omitempty"`
	AssistantID *string `json:"assistant_id,omitempty" binding:"omitempty,max=64"`
}

// CreatePhoneNumber godoc
// @Summary Create a phone number record directly (admin)
// @Description Registers an already-carrier-owned number into the Number Store. This is the import path; the full purchase flow is POST /admin/phone-numbers/purchase.
// @Tags Admin
// @Accept json
// @Produce json
// @Param phoneNumber body CreatePhoneNumberPayload true "Phone number record"
// @Success 201 {object} utils.SuccessResponse{data=PhoneNumberData} "Created record"
// @Failure 400 {object} utils.APIErrorResponse "Missing/invalid field"
// @Failure 401 {object} utils.APIErrorResponse "Not authenticated"
// @Failure 403 {object} utils.APIErrorResponse "Not an administrator"
// @Failure 409 {object} utils.APIErrorResponse "Number already exists"
// @Failure 500 {object} utils.APIErrorResponse "Internal server error"
// @Router /admin/phone-numbers [post]
// @Security BearerAuth
func (h *PhoneNumberAdminHandler) CreatePhoneNumber(c *gin.Context) {
	var payload CreatePhoneNumberPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	created, err := h.adminService.CreatePhoneNumber(
		c.Request.Context(),
		payload.Number,
		payload.CarrierRef,
		payload.IsAssigned,
		payload.AssistantID,
		c.GetString("username"),
	)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingNumber),
			errors.Is(err, services.ErrInconsistentAssignment),
			errors.Is(err, utils.ErrInvalidPhoneNumberFormat):
			utils.RespondValidationError(c, err.Error())
		case errors.Is(err, repositories.ErrPhoneNumberConflict):
			utils.RespondConflictError(c, "A record for this phone number already exists")
		default:
			utils.RespondInternalServerError(c, "Failed to create phone number", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, PhoneNumberData{PhoneNumber: created}, "Phone number created")
}

// DeletePhoneNumberPayload is the request body for an administrative delete.
// At least one identifier must be provided.
type DeletePhoneNumberPayload struct {
	Number     string `json:"phoneNumber,omitempty"`
	CarrierRef string `json:"carrierRef,omitempty"`
}

// DeletePhoneNumber godoc
// @Summary Delete a phone number record (admin)
// @Description Deletes the matching Number Store rows, then attempts the carrier release separately. A store delete that succeeds while the carrier release fails returns 200 with a warning so the orphaned carrier resource can be reconciled manually.
// @Tags Admin
// @Accept json
// @Produce json
// @Param deletePayload body DeletePhoneNumberPayload true "Identifiers (at least one of phoneNumber, carrierRef)"
// @Success 200 {object} utils.SuccessResponse "Deleted; warning present when the carrier release failed"
// @Failure 400 {object} utils.APIErrorResponse "No identifier provided"
// @Failure 401 {object} utils.APIErrorResponse "Not authenticated"
// @Failure 403 {object} utils.APIErrorResponse "Not an administrator"
// @Failure 404 {object} utils.APIErrorResponse "No matching record"
// @Failure 500 {object} utils.APIErrorResponse "Internal server error"
// @Router /admin/phone-numbers [delete]
// @Security BearerAuth
func (h *PhoneNumberAdminHandler) DeletePhoneNumber(c *gin.Context) {
	var payload DeletePhoneNumberPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	deleted, err := h.adminService.DeletePhoneNumber(c.Request.Context(), payload.Number, payload.CarrierRef)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingDeleteIdentifier):
			utils.RespondValidationError(c, err.Error())
		case errors.Is(err, repositories.ErrRecordNotFound):
			utils.RespondNotFoundError(c, "Phone number")
		default:
			utils.RespondInternalServerError(c, "Failed to delete phone number", err.Error())
		}
		return
	}

	// Carrier release is a separate leg. The store mutation the caller
	// asked for already completed, so a carrier failure downgrades the
	// outcome to a partial success rather than an error.
	var releaseFailures []string
	for _, row := range deleted {
		if row.CarrierRef == nil || *row.CarrierRef == "" {
			continue
		}
		if relErr := h.adminService.ReleaseAtCarrier(c.Request.Context(), *row.CarrierRef); relErr != nil {
			releaseFailures = append(releaseFailures,
				fmt.Sprintf("carrier release failed for %s (%s): %v", row.Number, *row.CarrierRef, relErr))
		}
	}

	if len(releaseFailures) > 0 {
		utils.RespondSuccessWithWarning(c, http.StatusOK, gin.H{"success": true},
			"Phone number record deleted",
			strings.Join(releaseFailures, "; ")+"; the carrier may still hold these resources")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, gin.H{"success": true}, "Phone number record deleted")
}

// SearchCarrierNumbers godoc
// @Summary Search purchasable numbers at the carrier (admin)
// @Description Read-only carrier search by area code; no store mutation. Safe to retry.
// @Tags Admin
// @Produce json
// @Param areaCode query string false "Three-digit area code"
// @Param limit query int false "Maximum results" default(20)
// @Success 200 {object} utils.SuccessResponse "Candidate numbers"
// @Failure 400 {object} utils.APIErrorResponse "Invalid area code"
// @Failure 401 {object} utils.APIErrorResponse "Not authenticated"
// @Failure 403 {object} utils.APIErrorResponse "Not an administrator"
// @Failure 500 {object} utils.APIErrorResponse "Carrier error"
// @Router /admin/carrier/available-numbers [get]
// @Security BearerAuth
func (h *PhoneNumberAdminHandler) SearchCarrierNumbers(c *gin.Context) {
	type searchQuery struct {
		AreaCode string `form:"areaCode"`
		Limit    int    `form:"limit,default=20"`
	}
	var query searchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	if err := utils.ValidateAreaCode(query.AreaCode); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	numbers, err := h.adminService.SearchCarrierNumbers(c.Request.Context(), query.AreaCode, query.Limit)
	if err != nil {
		respondCarrierError(c, "Failed to search carrier numbers", err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, gin.H{"availableNumbers": numbers}, "")
}

// ListCarrierNumbers godoc
// @Summary List numbers held at the carrier (admin)
// @Description Returns the carrier's view of the account, for manual reconciliation against the Number Store.
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.SuccessResponse "Owned carrier numbers"
// @Failure 401 {object} utils.APIErrorResponse "Not authenticated"
// @Failure 403 {object} utils.APIErrorResponse "Not an administrator"
// @Failure 500 {object} utils.APIErrorResponse "Carrier error"
// @Router /admin/carrier/numbers [get]
// @Security BearerAuth
func (h *PhoneNumberAdminHandler) ListCarrierNumbers(c *gin.Context) {
	numbers, err := h.adminService.ListCarrierNumbers(c.Request.Context())
	if err != nil {
		respondCarrierError(c, "Failed to list carrier numbers", err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, gin.H{"carrierNumbers": numbers}, "")
}

// PurchasePhoneNumberPayload is the request body for the acquisition flow.
type PurchasePhoneNumberPayload struct {
	Number string `json:"phoneNumber" binding:"required,max=32"`
}

// PurchaseResultData is the success payload of a completed acquisition.
type PurchaseResultData struct {
	Success    bool   `json:"success"`
	Number     string `json:"number"`
	CarrierRef string `json:"carrierRef"`
}

// PurchasePhoneNumber godoc
// @Summary Purchase a number from the carrier (admin)
// @Description Provisions the candidate number at the carrier and persists it unassigned. If persisting fails, the just-purchased carrier resource is released before the failure is reported. No idempotency key exists for carrier purchases; do not blindly retry after a timeout.
// @Tags Admin
// @Accept json
// @Produce json
// @Param purchasePayload body PurchasePhoneNumberPayload true "Candidate number selected from search"
// @Success 201 {object} utils.SuccessResponse{data=PurchaseResultData} "Acquired number"
// @Failure 400 {object} utils.APIErrorResponse "Invalid number"
// @Failure 401 {object} utils.APIErrorResponse "Not authenticated"
// @Failure 403 {object} utils.APIErrorResponse "Not an administrator"
// @Failure 409 {object} utils.APIErrorResponse "Number already registered"
// @Failure 500 {object} utils.APIErrorResponse "Carrier or store failure; details carry both legs when compensation also failed"
// @Router /admin/phone-numbers/purchase [post]
// @Security BearerAuth
func (h *PhoneNumberAdminHandler) PurchasePhoneNumber(c *gin.Context) {
	var payload PurchasePhoneNumberPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	acquired, err := h.acquisitionService.PurchaseNumber(c.Request.Context(), payload.Number, c.GetString("username"))
	if err != nil {
		var compErr *services.CompensationError
		switch {
		case errors.Is(err, services.ErrMissingNumber), errors.Is(err, utils.ErrInvalidPhoneNumberFormat):
			utils.RespondValidationError(c, err.Error())
		case errors.Is(err, repositories.ErrPhoneNumberConflict):
			utils.RespondConflictError(c, "A record for this phone number already exists")
		case errors.As(err, &compErr):
			// Both legs failed; surface both so the operator can
			// reconcile the orphaned carrier resource.
			utils.RespondAPIError(c, http.StatusInternalServerError, "Purchase failed and compensation failed", gin.H{
				"storeError":   compErr.StoreErr.Error(),
				"carrierError": compErr.CarrierErr.Error(),
				"carrierRef":   compErr.CarrierRef,
			})
		default:
			respondCarrierError(c, "Failed to purchase phone number", err)
		}
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, PurchaseResultData{
		Success:    true,
		Number:     acquired.Number,
		CarrierRef: derefString(acquired.CarrierRef),
	}, "Phone number acquired")
}

// ReleasePhoneNumberPayload is the request body for the release flow.
// At least one identifier must be provided.
type ReleasePhoneNumberPayload struct {
	CarrierRef string `json:"carrierRef,omitempty"`
	Number     string `json:"phoneNumber,omitempty"`
}

// ReleasePhoneNumber godoc
// @Summary Release a number back to the carrier (admin)
// @Description Deprovisions the number at the carrier, then deletes its store row. When the carrier release fails the store row is kept and the whole operation fails, so the store stays truthful about what the carrier holds.
// @Tags Admin
// @Accept json
// @Produce json
// @Param releasePayload body ReleasePhoneNumberPayload true "Identifiers (at least one of carrierRef, phoneNumber)"
// @Success 200 {object} utils.SuccessResponse "Released; warning present when the store delete failed after the carrier release"
// @Failure 400 {object} utils.APIErrorResponse "No identifier provided"
// @Failure 401 {object} utils.APIErrorResponse "Not authenticated"
// @Failure 403 {object} utils.APIErrorResponse "Not an administrator"
// @Failure 404 {object} utils.APIErrorResponse "No matching record"
// @Failure 500 {object} utils.APIErrorResponse "Carrier error; store row preserved"
// @Router /admin/phone-numbers/release [post]
// @Security BearerAuth
func (h *PhoneNumberAdminHandler) ReleasePhoneNumber(c *gin.Context) {
	var payload ReleasePhoneNumberPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	released, warning, err := h.acquisitionService.ReleaseNumber(c.Request.Context(), payload.Number, payload.CarrierRef, c.GetString("username"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingDeleteIdentifier):
			utils.RespondValidationError(c, err.Error())
		case errors.Is(err, services.ErrPhoneNumberNotFound):
			utils.RespondNotFoundError(c, "Phone number")
		default:
			respondCarrierError(c, "Failed to release phone number", err)
		}
		return
	}

	data := gin.H{"success": true, "message": fmt.Sprintf("Number %s released", released.Number)}
	if warning != "" {
		utils.RespondSuccessWithWarning(c, http.StatusOK, data, "Phone number released", warning)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, data, "Phone number released")
}

// GetInteractions godoc
// @Summary List acquisition/release audit entries (admin)
// @Tags Admin
// @Produce json
// @Param limit query int false "Maximum entries" default(100)
// @Success 200 {object} utils.SuccessResponse "Audit entries"
// @Failure 401 {object} utils.APIErrorResponse "Not authenticated"
// @Failure 403 {object} utils.APIErrorResponse "Not an administrator"
// @Failure 500 {object} utils.APIErrorResponse "Internal server error"
// @Router /admin/interactions [get]
// @Security BearerAuth
func (h *PhoneNumberAdminHandler) GetInteractions(c *gin.Context) {
	type listQuery struct {
		Limit int `form:"limit,default=100"`
	}
	var query listQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	interactions, err := h.adminService.GetInteractions(c.Request.Context(), query.Limit)
	if err != nil {
		utils.RespondInternalServerError(c, "Failed to list interactions", err.Error())
		return
	}
	utils.RespondSuccess(c, http.StatusOK, gin.H{"interactions": interactions}, "")
}

// respondCarrierError distinguishes carrier failures from store failures so
// callers can tell which system to reconcile.
func respondCarrierError(c *gin.Context, message string, err error) {
	var apiErr *carrier.APIError
	if errors.As(err, &apiErr) {
		utils.RespondAPIError(c, http.StatusInternalServerError, "Carrier error: "+message, gin.H{
			"carrierStatus":  apiErr.Status,
			"carrierCode":    apiErr.Code,
			"carrierMessage": apiErr.Message,
		})
		return
	}
	utils.RespondInternalServerError(c, message, err.Error())
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

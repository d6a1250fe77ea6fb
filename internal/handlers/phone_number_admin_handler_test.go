package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noshow_platform/internal/handlers"
	"github.com/noshow_platform/internal/models"
	"github.com/noshow_platform/internal/services"
)

// stubAcquisitionService scripts acquisition outcomes that are hard to force
// through a real store, like a failed compensation.
type stubAcquisitionService struct {
	purchaseErr error
}

func (s *stubAcquisitionService) PurchaseNumber(ctx context.Context, number string, actor string) (*models.PhoneNumber, error) {
	return nil, s.purchaseErr
}

func (s *stubAcquisitionService) ReleaseNumber(ctx context.Context, number, carrierRef string, actor string) (*models.PhoneNumber, string, error) {
	return nil, "", errors.New("not scripted")
}

func TestPurchaseReportsBothLegsWhenCompensationFails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := handlers.NewPhoneNumberAdminHandler(nil, &stubAcquisitionService{
		purchaseErr: &services.CompensationError{
			CarrierRef: "PN123",
			StoreErr:   errors.New("disk full"),
			CarrierErr: errors.New("carrier unreachable"),
		},
	})

	router := gin.New()
	router.POST("/purchase", handler.PurchasePhoneNumber)

	req := httptest.NewRequest(http.MethodPost, "/purchase",
		strings.NewReader(`{"phoneNumber":"+14155550100"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// the operator needs both failures and the carrier ref to reconcile
	body := rec.Body.String()
	assert.Contains(t, body, "disk full")
	assert.Contains(t, body, "carrier unreachable")
	assert.Contains(t, body, "PN123")
}

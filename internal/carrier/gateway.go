package carrier

import (
	"context"
	"fmt"
)

// AvailableNumber is a candidate number offered by the carrier's search API.
type AvailableNumber struct {
	Number       string `json:"number"`
	FriendlyName string `json:"friendlyName"`
	Region       string `json:"region"`
	ISOCountry   string `json:"isoCountry"`
}

// OwnedNumber is a number currently provisioned on the carrier account.
type OwnedNumber struct {
	CarrierRef   string `json:"carrierRef"`
	Number       string `json:"number"`
	FriendlyName string `json:"friendlyName"`
	SMSURL       string `json:"smsUrl"`
}

// APIError is a failure reported by the carrier's API. The carrier remains
// authoritative for its own resources, so the vendor status/code/message are
// preserved for diagnostics instead of being collapsed into a generic error.
type APIError struct {
	Status  int    `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("carrier API error (status %d, code %d): %s", e.Status, e.Code, e.Message)
}

// Gateway is the narrow contract to the external telephony provider. Every
// call is remote I/O with its own failure modes and timeout; callers must
// treat a timed-out provision as unknown state, not as failure.
type Gateway interface {
	// SearchAvailableNumbers queries candidate numbers by area code. Read
	// only, safe to retry.
	SearchAvailableNumbers(ctx context.Context, areaCode string, limit int) ([]AvailableNumber, error)
	// ProvisionNumber purchases the given number and registers the inbound
	// SMS webhook. Returns the carrier's reference for the new resource.
	// Not idempotent: retrying after a timeout may purchase a duplicate.
	ProvisionNumber(ctx context.Context, number string, smsWebhookURL string) (*OwnedNumber, error)
	// ReleaseNumber deprovisions the resource identified by carrierRef.
	ReleaseNumber(ctx context.Context, carrierRef string) error
	// ListOwnedNumbers returns every number held by the account, used for
	// manual reconciliation against the Number Store.
	ListOwnedNumbers(ctx context.Context) ([]OwnedNumber, error)
}

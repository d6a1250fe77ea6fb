package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/noshow_platform/internal/carrier"
	"github.com/noshow_platform/internal/models"
	"github.com/noshow_platform/internal/repositories"
	"github.com/noshow_platform/pkg/utils"
	"go.uber.org/zap"
)

// acquisitionState anchors the purchase saga's progress for logging and
// compensation. The carrier and the store share no transaction coordinator,
// so the flow is an ordered two-step operation with an explicit reversing
// action, not an atomic transaction.
type acquisitionState string

const (
	stateProvisioned  acquisitionState = "provisioned"
	statePersisted    acquisitionState = "persisted"
	stateCompensating acquisitionState = "compensating"
	stateFailed       acquisitionState = "failed"
)

// compensationTimeout bounds the detached compensating release.
const compensationTimeout = 30 * time.Second

// CompensationError reports a purchase where the store insert failed and the
// compensating carrier deprovision also failed. Both legs are preserved;
// this is an operator-visible state requiring manual reconciliation.
type CompensationError struct {
	CarrierRef string
	StoreErr   error
	CarrierErr error
}

func (e *CompensationError) Error() string {
	return fmt.Sprintf("store insert failed (%v) and compensating release of carrier resource %s also failed (%v)", e.StoreErr, e.CarrierRef, e.CarrierErr)
}

// AcquisitionService coordinates provisioning at the carrier with the
// corresponding Number Store insert, and the inverse release path.
type AcquisitionService interface {
	// PurchaseNumber provisions the given candidate number at the carrier
	// and persists the resulting record, unassigned. If the persist step
	// fails the just-purchased carrier resource is deprovisioned before
	// the failure is reported.
	PurchaseNumber(ctx context.Context, number string, actor string) (*models.PhoneNumber, error)
	// ReleaseNumber deprovisions a number at the carrier and then deletes
	// its store row. When the carrier call fails the row is kept so the
	// store stays truthful about what the carrier still holds. A non-empty
	// warning means the carrier leg succeeded but the store leg did not.
	ReleaseNumber(ctx context.Context, number, carrierRef string, actor string) (released *models.PhoneNumber, warning string, err error)
}

// acquisitionService is the implementation of AcquisitionService.
type acquisitionService struct {
	repo            repositories.PhoneNumberRepository
	interactionRepo repositories.InteractionRepository
	gateway         carrier.Gateway
	smsWebhookURL   string
	logger          *zap.Logger
}

// NewAcquisitionService creates a new acquisitionService instance.
// smsWebhookURL is the inbound-SMS callback registered with each number the
// flow provisions.
func NewAcquisitionService(repo repositories.PhoneNumberRepository, interactionRepo repositories.InteractionRepository, gateway carrier.Gateway, smsWebhookURL string, logger *zap.Logger) AcquisitionService {
	return &acquisitionService{
		repo:            repo,
		interactionRepo: interactionRepo,
		gateway:         gateway,
		smsWebhookURL:   smsWebhookURL,
		logger:          logger,
	}
}

// PurchaseNumber runs the provision -> persist saga.
func (s *acquisitionService) PurchaseNumber(ctx context.Context, number string, actor string) (*models.PhoneNumber, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrMissingNumber
	}
	if err := utils.ValidatePhoneNumber(number); err != nil {
		return nil, err
	}

	// Dedupe before touching the carrier; a number already in the store
	// would fail the insert after we had paid for a duplicate resource.
	if _, err := s.repo.GetPhoneNumberByNumber(ctx, number); err == nil {
		return nil, repositories.ErrPhoneNumberConflict
	} else if !errors.Is(err, repositories.ErrRecordNotFound) {
		return nil, err
	}

	// Step: provision. A timeout here leaves the carrier side in unknown
	// state; the client logs it for manual reconciliation against
	// ListOwnedNumbers. No idempotency key exists for carrier purchases,
	// so this call must not be retried blindly.
	owned, err := s.gateway.ProvisionNumber(ctx, number, s.smsWebhookURL)
	if err != nil {
		s.logger.Error("Number provisioning failed",
			zap.String("number", number),
			zap.String("state", string(stateFailed)),
			zap.Error(err),
		)
		return nil, err
	}

	state := stateProvisioned
	s.logger.Info("Number provisioned at carrier",
		zap.String("number", owned.Number),
		zap.String("carrier_ref", owned.CarrierRef),
		zap.String("state", string(state)),
	)

	// Step: persist.
	carrierRef := owned.CarrierRef
	created, err := s.repo.CreatePhoneNumber(ctx, &models.PhoneNumber{
		Number:     owned.Number,
		CarrierRef: &carrierRef,
		IsAssigned: false,
	})
	if err != nil {
		// Compensate: reverse the carrier-side provisioning so the
		// account does not hold an orphaned, billed resource. The insert
		// may have failed precisely because the request context died, so
		// the release runs detached from it on its own deadline.
		state = stateCompensating
		s.logger.Warn("Store insert failed after provisioning; releasing carrier resource",
			zap.String("number", owned.Number),
			zap.String("carrier_ref", carrierRef),
			zap.String("state", string(state)),
			zap.Error(err),
		)
		compCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensationTimeout)
		defer cancel()
		if compErr := s.gateway.ReleaseNumber(compCtx, carrierRef); compErr != nil {
			state = stateFailed
			s.logger.Error("Compensating release failed; carrier resource is orphaned",
				zap.String("carrier_ref", carrierRef),
				zap.String("state", string(state)),
				zap.NamedError("store_error", err),
				zap.NamedError("carrier_error", compErr),
			)
			return nil, &CompensationError{CarrierRef: carrierRef, StoreErr: err, CarrierErr: compErr}
		}
		return nil, fmt.Errorf("failed to persist provisioned number (carrier resource was released): %w", err)
	}

	state = statePersisted
	s.logger.Info("Number acquisition completed",
		zap.String("number", created.Number),
		zap.String("carrier_ref", carrierRef),
		zap.String("state", string(state)),
	)

	// Step: audit, best effort.
	if auditErr := s.interactionRepo.CreateInteraction(ctx, &models.Interaction{
		Actor:      actor,
		Action:     models.InteractionActionPurchase,
		Number:     created.Number,
		CarrierRef: created.CarrierRef,
	}); auditErr != nil {
		s.logger.Warn("Failed to record purchase interaction",
			zap.String("number", created.Number),
			zap.Error(auditErr),
		)
	}

	return created, nil
}

// ReleaseNumber runs the inverse path: carrier release first, store delete
// second.
func (s *acquisitionService) ReleaseNumber(ctx context.Context, number, carrierRef string, actor string) (*models.PhoneNumber, string, error) {
	if number == "" && carrierRef == "" {
		return nil, "", ErrMissingDeleteIdentifier
	}

	var row *models.PhoneNumber
	var err error
	if carrierRef != "" {
		row, err = s.repo.GetPhoneNumberByCarrierRef(ctx, carrierRef)
	} else {
		row, err = s.repo.GetPhoneNumberByNumber(ctx, number)
	}
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, "", ErrPhoneNumberNotFound
		}
		return nil, "", err
	}

	// Carrier leg first. If it fails the row must survive so the store
	// keeps reflecting what the carrier still holds.
	if row.CarrierRef != nil && *row.CarrierRef != "" {
		if err := s.gateway.ReleaseNumber(ctx, *row.CarrierRef); err != nil {
			s.logger.Error("Carrier release failed; store row preserved",
				zap.String("number", row.Number),
				zap.String("carrier_ref", *row.CarrierRef),
				zap.Error(err),
			)
			return nil, "", err
		}
	}

	warning := ""
	if _, err := s.repo.DeletePhoneNumber(ctx, row.Number, ""); err != nil {
		// The carrier resource is gone but the row remains: a partial
		// success the operator must see, not a silent failure.
		warning = fmt.Sprintf("carrier resource released but store row for %s could not be deleted: %v", row.Number, err)
		s.logger.Warn("Store delete failed after carrier release",
			zap.String("number", row.Number),
			zap.Error(err),
		)
	}

	if auditErr := s.interactionRepo.CreateInteraction(ctx, &models.Interaction{
		Actor:      actor,
		Action:     models.InteractionActionRelease,
		Number:     row.Number,
		CarrierRef: row.CarrierRef,
	}); auditErr != nil {
		s.logger.Warn("Failed to record release interaction",
			zap.String("number", row.Number),
			zap.Error(auditErr),
		)
	}

	return row, warning, nil
}

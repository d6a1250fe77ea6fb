package services

import (
	"context"
	"errors"
	"strings"

	"github.com/noshow_platform/internal/carrier"
	"github.com/noshow_platform/internal/models"
	"github.com/noshow_platform/internal/repositories"
	"github.com/noshow_platform/pkg/utils"
	"go.uber.org/zap"
)

// ErrMissingNumber indicates the number string was not provided.
var ErrMissingNumber = errors.New("phone number is required")

// ErrMissingDeleteIdentifier indicates neither a number nor a carrier ref was
// provided to identify the record to delete.
var ErrMissingDeleteIdentifier = errors.New("at least one of phone number or carrier ref is required")

// ErrInconsistentAssignment indicates a create request where isAssigned and
// assistantId contradict each other.
var ErrInconsistentAssignment = errors.New("isAssigned and assistantId must be set together")

// PhoneNumberAdminService defines the privileged, system-wide Number Store
// operations. Administrator privilege is checked by the authorization
// middleware before these methods are reached.
type PhoneNumberAdminService interface {
	// GetAllPhoneNumbers returns every row regardless of assignment or owner.
	GetAllPhoneNumbers(ctx context.Context) ([]models.PhoneNumber, error)
	// CreatePhoneNumber inserts a row directly, used for administrative
	// registration of an already-carrier-owned number (import). The full
	// purchase path lives in AcquisitionService.
	CreatePhoneNumber(ctx context.Context, number string, carrierRef *string, isAssigned bool, assistantID *string, actor string) (*models.PhoneNumber, error)
	// DeletePhoneNumber removes the store rows matching the identifiers.
	// Carrier release is deliberately decoupled (see ReleaseAtCarrier);
	// the boundary layer composes the two legs and reports a partial
	// success when the carrier leg fails.
	DeletePhoneNumber(ctx context.Context, number, carrierRef string) ([]models.PhoneNumber, error)
	// ReleaseAtCarrier deprovisions a carrier resource without touching
	// the store.
	ReleaseAtCarrier(ctx context.Context, carrierRef string) error
	// SearchCarrierNumbers queries the carrier for purchasable candidates.
	SearchCarrierNumbers(ctx context.Context, areaCode string, limit int) ([]carrier.AvailableNumber, error)
	// ListCarrierNumbers returns the carrier's view of the account, for
	// manual reconciliation against the store.
	ListCarrierNumbers(ctx context.Context) ([]carrier.OwnedNumber, error)
	// GetInteractions returns the acquisition/release audit trail.
	GetInteractions(ctx context.Context, limit int) ([]models.Interaction, error)
}

// phoneNumberAdminService is the implementation of PhoneNumberAdminService.
type phoneNumberAdminService struct {
	repo            repositories.PhoneNumberRepository
	interactionRepo repositories.InteractionRepository
	gateway         carrier.Gateway
	logger          *zap.Logger
}

// NewPhoneNumberAdminService creates a new phoneNumberAdminService instance.
func NewPhoneNumberAdminService(repo repositories.PhoneNumberRepository, interactionRepo repositories.InteractionRepository, gateway carrier.Gateway, logger *zap.Logger) PhoneNumberAdminService {
	return &phoneNumberAdminService{
		repo:            repo,
		interactionRepo: interactionRepo,
		gateway:         gateway,
		logger:          logger,
	}
}

// GetAllPhoneNumbers handles the system-wide listing.
func (s *phoneNumberAdminService) GetAllPhoneNumbers(ctx context.Context) ([]models.PhoneNumber, error) {
	return s.repo.GetAllPhoneNumbers(ctx)
}

// CreatePhoneNumber handles administrative registration of a number record.
func (s *phoneNumberAdminService) CreatePhoneNumber(ctx context.Context, number string, carrierRef *string, isAssigned bool, assistantID *string, actor string) (*models.PhoneNumber, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrMissingNumber
	}
	if err := utils.ValidatePhoneNumber(number); err != nil {
		return nil, err
	}
	// Reject requests that would break the assignment invariant at insert.
	if isAssigned != (assistantID != nil && *assistantID != "") {
		return nil, ErrInconsistentAssignment
	}

	created, err := s.repo.CreatePhoneNumber(ctx, &models.PhoneNumber{
		Number:      number,
		CarrierRef:  carrierRef,
		IsAssigned:  isAssigned,
		AssistantID: assistantID,
	})
	if err != nil {
		return nil, err
	}

	// Audit is best effort; an import still counts even if the entry fails.
	if auditErr := s.interactionRepo.CreateInteraction(ctx, &models.Interaction{
		Actor:      actor,
		Action:     models.InteractionActionImport,
		Number:     created.Number,
		CarrierRef: created.CarrierRef,
	}); auditErr != nil {
		s.logger.Warn("Failed to record import interaction",
			zap.String("number", created.Number),
			zap.Error(auditErr),
		)
	}
	return created, nil
}

// DeletePhoneNumber handles the store leg of an administrative delete.
func (s *phoneNumberAdminService) DeletePhoneNumber(ctx context.Context, number, carrierRef string) ([]models.PhoneNumber, error) {
	if number == "" && carrierRef == "" {
		return nil, ErrMissingDeleteIdentifier
	}
	return s.repo.DeletePhoneNumber(ctx, number, carrierRef)
}

// ReleaseAtCarrier handles the carrier leg of an administrative delete.
func (s *phoneNumberAdminService) ReleaseAtCarrier(ctx context.Context, carrierRef string) error {
	return s.gateway.ReleaseNumber(ctx, carrierRef)
}

// SearchCarrierNumbers handles the read-only carrier search (acquisition
// step 1). No store mutation happens here.
func (s *phoneNumberAdminService) SearchCarrierNumbers(ctx context.Context, areaCode string, limit int) ([]carrier.AvailableNumber, error) {
	return s.gateway.SearchAvailableNumbers(ctx, areaCode, limit)
}

// ListCarrierNumbers handles the carrier-side account listing.
func (s *phoneNumberAdminService) ListCarrierNumbers(ctx context.Context) ([]carrier.OwnedNumber, error) {
	return s.gateway.ListOwnedNumbers(ctx)
}

// GetInteractions handles listing the audit trail.
func (s *phoneNumberAdminService) GetInteractions(ctx context.Context, limit int) ([]models.Interaction, error) {
	return s.interactionRepo.GetInteractions(ctx, limit)
}

package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/noshow_platform/internal/carrier"
	"github.com/noshow_platform/internal/models"
)

// MockPhoneNumberRepository is a testify mock of repositories.PhoneNumberRepository.
type MockPhoneNumberRepository struct {
	mock.Mock
}

func (m *MockPhoneNumberRepository) CreatePhoneNumber(ctx context.Context, phoneNumber *models.PhoneNumber) (*models.PhoneNumber, error) {
	args := m.Called(ctx, phoneNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PhoneNumber), args.Error(1)
}

func (m *MockPhoneNumberRepository) GetAllPhoneNumbers(ctx context.Context) ([]models.PhoneNumber, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PhoneNumber), args.Error(1)
}

func (m *MockPhoneNumberRepository) GetUnassignedPhoneNumbers(ctx context.Context) ([]models.PhoneNumber, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PhoneNumber), args.Error(1)
}

func (m *MockPhoneNumberRepository) GetPhoneNumbersByAssistant(ctx context.Context, assistantID string) ([]models.PhoneNumber, error) {
	args := m.Called(ctx, assistantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PhoneNumber), args.Error(1)
}

func (m *MockPhoneNumberRepository) GetPhoneNumberByID(ctx context.Context, id int64) (*models.PhoneNumber, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PhoneNumber), args.Error(1)
}

func (m *MockPhoneNumberRepository) GetPhoneNumberByNumber(ctx context.Context, number string) (*models.PhoneNumber, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PhoneNumber), args.Error(1)
}

func (m *MockPhoneNumberRepository) GetPhoneNumberByCarrierRef(ctx context.Context, carrierRef string) (*models.PhoneNumber, error) {
	args := m.Called(ctx, carrierRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PhoneNumber), args.Error(1)
}

func (m *MockPhoneNumberRepository) AssignPhoneNumber(ctx context.Context, id int64, assistantID string) (*models.PhoneNumber, error) {
	args := m.Called(ctx, id, assistantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PhoneNumber), args.Error(1)
}

func (m *MockPhoneNumberRepository) UnassignPhoneNumber(ctx context.Context, id int64) (*models.PhoneNumber, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PhoneNumber), args.Error(1)
}

func (m *MockPhoneNumberRepository) DeletePhoneNumber(ctx context.Context, number, carrierRef string) ([]models.PhoneNumber, error) {
	args := m.Called(ctx, number, carrierRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PhoneNumber), args.Error(1)
}

// MockInteractionRepository is a testify mock of repositories.InteractionRepository.
type MockInteractionRepository struct {
	mock.Mock
}

func (m *MockInteractionRepository) CreateInteraction(ctx context.Context, interaction *models.Interaction) error {
	args := m.Called(ctx, interaction)
	return args.Error(0)
}

func (m *MockInteractionRepository) GetInteractions(ctx context.Context, limit int) ([]models.Interaction, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Interaction), args.Error(1)
}

// MockGateway is a testify mock of carrier.Gateway.
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) SearchAvailableNumbers(ctx context.Context, areaCode string, limit int) ([]carrier.AvailableNumber, error) {
	args := m.Called(ctx, areaCode, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]carrier.AvailableNumber), args.Error(1)
}

func (m *MockGateway) ProvisionNumber(ctx context.Context, number, smsWebhookURL string) (*carrier.OwnedNumber, error) {
	args := m.Called(ctx, number, smsWebhookURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*carrier.OwnedNumber), args.Error(1)
}

func (m *MockGateway) ReleaseNumber(ctx context.Context, carrierRef string) error {
	args := m.Called(ctx, carrierRef)
	return args.Error(0)
}

func (m *MockGateway) ListOwnedNumbers(ctx context.Context) ([]carrier.OwnedNumber, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]carrier.OwnedNumber), args.Error(1)
}

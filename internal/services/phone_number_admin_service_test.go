package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noshow_platform/internal/carrier"
	"github.com/noshow_platform/internal/models"
)

func newAdminFixture() (*MockPhoneNumberRepository, *MockInteractionRepository, *MockGateway, PhoneNumberAdminService) {
	repo := new(MockPhoneNumberRepository)
	interactions := new(MockInteractionRepository)
	gateway := new(MockGateway)
	svc := NewPhoneNumberAdminService(repo, interactions, gateway, zap.NewNop())
	return repo, interactions, gateway, svc
}

func TestAdminCreatePhoneNumber(t *testing.T) {
	repo, interactions, _, svc := newAdminFixture()
	ctx := context.Background()

	repo.On("CreatePhoneNumber", ctx, mock.MatchedBy(func(p *models.PhoneNumber) bool {
		return p.Number == "+14155550100" && !p.IsAssigned && p.AssistantID == nil
	})).Return(&models.PhoneNumber{ID: 1, Number: "+14155550100"}, nil)
	interactions.On("CreateInteraction", ctx, mock.MatchedBy(func(i *models.Interaction) bool {
		return i.Action == models.InteractionActionImport
	})).Return(nil)

	created, err := svc.CreatePhoneNumber(ctx, "+14155550100", nil, false, nil, "admin")
	require.NoError(t, err)
	assert.Equal(t, "+14155550100", created.Number)
}

func TestAdminCreatePhoneNumberValidation(t *testing.T) {
	repo, _, _, svc := newAdminFixture()
	ctx := context.Background()

	_, err := svc.CreatePhoneNumber(ctx, "", nil, false, nil, "admin")
	assert.ErrorIs(t, err, ErrMissingNumber)

	_, err = svc.CreatePhoneNumber(ctx, "not-a-number", nil, false, nil, "admin")
	assert.Error(t, err)

	// an assigned number must carry its owner and vice versa
	_, err = svc.CreatePhoneNumber(ctx, "+14155550100", nil, true, nil, "admin")
	assert.ErrorIs(t, err, ErrInconsistentAssignment)

	owner := "assistant-1"
	_, err = svc.CreatePhoneNumber(ctx, "+14155550100", nil, false, &owner, "admin")
	assert.ErrorIs(t, err, ErrInconsistentAssignment)

	repo.AssertNotCalled(t, "CreatePhoneNumber", mock.Anything, mock.Anything)
}

func TestAdminCreatePhoneNumberTrimsInput(t *testing.T) {
	repo, interactions, _, svc := newAdminFixture()
	ctx := context.Background()

	repo.On("CreatePhoneNumber", ctx, mock.MatchedBy(func(p *models.PhoneNumber) bool {
		return p.Number == "+14155550100"
	})).Return(&models.PhoneNumber{ID: 1, Number: "+14155550100"}, nil)
	interactions.On("CreateInteraction", ctx, mock.Anything).Return(nil)

	created, err := svc.CreatePhoneNumber(ctx, " +14155550100 ", nil, false, nil, "admin")
	require.NoError(t, err)
	assert.Equal(t, "+14155550100", created.Number)
	repo.AssertExpectations(t)
}

func TestAdminCreatePhoneNumberImportsAssigned(t *testing.T) {
	repo, interactions, _, svc := newAdminFixture()
	ctx := context.Background()
	owner := "assistant-1"

	repo.On("CreatePhoneNumber", ctx, mock.MatchedBy(func(p *models.PhoneNumber) bool {
		return p.IsAssigned && p.AssistantID != nil && *p.AssistantID == owner
	})).Return(&models.PhoneNumber{ID: 1, Number: "+14155550100", IsAssigned: true, AssistantID: &owner}, nil)
	interactions.On("CreateInteraction", ctx, mock.Anything).Return(nil)

	created, err := svc.CreatePhoneNumber(ctx, "+14155550100", nil, true, &owner, "admin")
	require.NoError(t, err)
	assert.True(t, created.IsAssigned)
}

func TestAdminDeletePhoneNumberStoreOnly(t *testing.T) {
	repo, _, gateway, svc := newAdminFixture()
	ctx := context.Background()

	repo.On("DeletePhoneNumber", ctx, "+14155550100", "").
		Return([]models.PhoneNumber{{ID: 1, Number: "+14155550100"}}, nil)

	deleted, err := svc.DeletePhoneNumber(ctx, "+14155550100", "")
	require.NoError(t, err)
	require.Len(t, deleted, 1)

	// the carrier leg is composed at the boundary, not here
	gateway.AssertNotCalled(t, "ReleaseNumber", mock.Anything, mock.Anything)
}

func TestAdminDeletePhoneNumberRequiresIdentifier(t *testing.T) {
	_, _, _, svc := newAdminFixture()

	_, err := svc.DeletePhoneNumber(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrMissingDeleteIdentifier)
}

func TestAdminSearchCarrierNumbers(t *testing.T) {
	_, _, gateway, svc := newAdminFixture()
	ctx := context.Background()

	gateway.On("SearchAvailableNumbers", ctx, "415", 10).
		Return([]carrier.AvailableNumber{{Number: "+14155550199", Region: "CA"}}, nil)

	found, err := svc.SearchCarrierNumbers(ctx, "415", 10)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "+14155550199", found[0].Number)
}

func TestAdminSearchCarrierNumbersPropagatesAPIError(t *testing.T) {
	_, _, gateway, svc := newAdminFixture()
	ctx := context.Background()
	apiErr := &carrier.APIError{Status: 429, Code: 20429, Message: "Too Many Requests"}

	gateway.On("SearchAvailableNumbers", ctx, "415", 10).Return(nil, apiErr)

	_, err := svc.SearchCarrierNumbers(ctx, "415", 10)
	var got *carrier.APIError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, 429, got.Status)
}

func TestAdminGetInteractions(t *testing.T) {
	_, interactions, _, svc := newAdminFixture()
	ctx := context.Background()

	interactions.On("GetInteractions", ctx, 50).Return([]models.Interaction{
		{ID: 1, Actor: "admin", Action: models.InteractionActionPurchase, Number: "+14155550100"},
	}, nil)

	got, err := svc.GetInteractions(ctx, 50)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestAdminReleaseAtCarrier(t *testing.T) {
	_, _, gateway, svc := newAdminFixture()
	ctx := context.Background()

	gateway.On("ReleaseNumber", ctx, "PN123").Return(nil)
	require.NoError(t, svc.ReleaseAtCarrier(ctx, "PN123"))

	gateway.On("ReleaseNumber", ctx, "PN404").Return(errors.New("not found at carrier"))
	assert.Error(t, svc.ReleaseAtCarrier(ctx, "PN404"))
}

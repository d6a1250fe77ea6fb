package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/noshow_platform/internal/models"
	"github.com/noshow_platform/internal/repositories"
)

func TestGetAvailablePhoneNumbers(t *testing.T) {
	repo := new(MockPhoneNumberRepository)
	svc := NewPhoneNumberService(repo)
	ctx := context.Background()

	repo.On("GetUnassignedPhoneNumbers", ctx).Return([]models.PhoneNumber{
		{ID: 1, Number: "+14155550100"},
	}, nil)

	numbers, err := svc.GetAvailablePhoneNumbers(ctx)
	require.NoError(t, err)
	require.Len(t, numbers, 1)
	assert.Equal(t, "+14155550100", numbers[0].Number)
}

func TestGetAssistantPhoneNumbersEmptyIsValid(t *testing.T) {
	repo := new(MockPhoneNumberRepository)
	svc := NewPhoneNumberService(repo)
	ctx := context.Background()

	repo.On("GetPhoneNumbersByAssistant", ctx, "assistant-1").
		Return([]models.PhoneNumber{}, nil)

	numbers, err := svc.GetAssistantPhoneNumbers(ctx, "assistant-1")
	require.NoError(t, err)
	assert.Empty(t, numbers)
}

func TestGetAssistantPhoneNumbersRequiresID(t *testing.T) {
	repo := new(MockPhoneNumberRepository)
	svc := NewPhoneNumberService(repo)

	_, err := svc.GetAssistantPhoneNumbers(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingAssistantID)
	repo.AssertNotCalled(t, "GetPhoneNumbersByAssistant", mock.Anything, mock.Anything)
}

func TestAssignPhoneNumberValidation(t *testing.T) {
	repo := new(MockPhoneNumberRepository)
	svc := NewPhoneNumberService(repo)
	ctx := context.Background()

	_, err := svc.AssignPhoneNumber(ctx, 1, "")
	assert.ErrorIs(t, err, ErrMissingAssistantID)

	_, err = svc.AssignPhoneNumber(ctx, 0, "assistant-1")
	assert.ErrorIs(t, err, ErrMissingPhoneNumberID)

	repo.AssertNotCalled(t, "AssignPhoneNumber", mock.Anything, mock.Anything, mock.Anything)
}

func TestAssignPhoneNumberErrorTranslation(t *testing.T) {
	ctx := context.Background()

	t.Run("missing row becomes not found", func(t *testing.T) {
		repo := new(MockPhoneNumberRepository)
		svc := NewPhoneNumberService(repo)
		repo.On("AssignPhoneNumber", ctx, int64(42), "assistant-1").
			Return(nil, repositories.ErrRecordNotFound)

		_, err := svc.AssignPhoneNumber(ctx, 42, "assistant-1")
		assert.ErrorIs(t, err, ErrPhoneNumberNotFound)
	})

	t.Run("owned number stays a conflict", func(t *testing.T) {
		repo := new(MockPhoneNumberRepository)
		svc := NewPhoneNumberService(repo)
		repo.On("AssignPhoneNumber", ctx, int64(42), "assistant-1").
			Return(nil, repositories.ErrPhoneNumberAlreadyAssigned)

		_, err := svc.AssignPhoneNumber(ctx, 42, "assistant-1")
		assert.ErrorIs(t, err, repositories.ErrPhoneNumberAlreadyAssigned)
	})
}

func TestUnassignPhoneNumber(t *testing.T) {
	repo := new(MockPhoneNumberRepository)
	svc := NewPhoneNumberService(repo)
	ctx := context.Background()

	repo.On("UnassignPhoneNumber", ctx, int64(7)).
		Return(&models.PhoneNumber{ID: 7, Number: "+14155550100", IsAssigned: false}, nil)

	unassigned, err := svc.UnassignPhoneNumber(ctx, 7)
	require.NoError(t, err)
	assert.False(t, unassigned.IsAssigned)
}

func TestUnassignPhoneNumberNotFound(t *testing.T) {
	repo := new(MockPhoneNumberRepository)
	svc := NewPhoneNumberService(repo)
	ctx := context.Background()

	repo.On("UnassignPhoneNumber", ctx, int64(7)).
		Return(nil, repositories.ErrRecordNotFound)

	_, err := svc.UnassignPhoneNumber(ctx, 7)
	assert.ErrorIs(t, err, ErrPhoneNumberNotFound)
}

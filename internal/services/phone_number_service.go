package services

import (
	"context"
	"errors"

	"github.com/noshow_platform/internal/models"
	"github.com/noshow_platform/internal/repositories"
)

// ErrPhoneNumberNotFound indicates the referenced phone number does not exist.
var ErrPhoneNumberNotFound = errors.New("phone number not found")

// ErrMissingAssistantID indicates the assistant identifier was not provided.
var ErrMissingAssistantID = errors.New("assistant id is required")

// ErrMissingPhoneNumberID indicates the phone number identifier was not provided.
var ErrMissingPhoneNumberID = errors.New("phone number id is required")

// PhoneNumberService defines the tenant-facing assignment operations.
// Authentication happens upstream; callers of these methods are assumed to
// hold a valid session.
type PhoneNumberService interface {
	// GetAvailablePhoneNumbers returns the shared pool of unassigned
	// numbers, most recently created first.
	GetAvailablePhoneNumbers(ctx context.Context) ([]models.PhoneNumber, error)
	// GetAssistantPhoneNumbers returns the numbers currently assigned to
	// the given assistant. An empty list is a valid result, not an error.
	GetAssistantPhoneNumbers(ctx context.Context, assistantID string) ([]models.PhoneNumber, error)
	// AssignPhoneNumber binds an unassigned number to an assistant. When
	// the number is already owned the operation fails with
	// repositories.ErrPhoneNumberAlreadyAssigned instead of overwriting
	// the existing owner.
	AssignPhoneNumber(ctx context.Context, phoneNumberID int64, assistantID string) (*models.PhoneNumber, error)
	// UnassignPhoneNumber clears the assignment. Idempotent.
	UnassignPhoneNumber(ctx context.Context, phoneNumberID int64) (*models.PhoneNumber, error)
}

// phoneNumberService is the implementation of PhoneNumberService.
type phoneNumberService struct {
	repo repositories.PhoneNumberRepository
}

// NewPhoneNumberService creates a new phoneNumberService instance.
func NewPhoneNumberService(repo repositories.PhoneNumberRepository) PhoneNumberService {
	return &phoneNumberService{repo: repo}
}

// GetAvailablePhoneNumbers handles listing the unassigned inventory.
// Availability is shared across tenants, so no ownership filter applies.
func (s *phoneNumberService) GetAvailablePhoneNumbers(ctx context.Context) ([]models.PhoneNumber, error) {
	return s.repo.GetUnassignedPhoneNumbers(ctx)
}

// GetAssistantPhoneNumbers handles listing the numbers owned by one assistant.
func (s *phoneNumberService) GetAssistantPhoneNumbers(ctx context.Context, assistantID string) ([]models.PhoneNumber, error) {
	if assistantID == "" {
		return nil, ErrMissingAssistantID
	}
	return s.repo.GetPhoneNumbersByAssistant(ctx, assistantID)
}

// AssignPhoneNumber handles binding a number to an assistant. Validation runs
// before any store access so an invalid request produces no side effects.
func (s *phoneNumberService) AssignPhoneNumber(ctx context.Context, phoneNumberID int64, assistantID string) (*models.PhoneNumber, error) {
	if assistantID == "" {
		return nil, ErrMissingAssistantID
	}
	if phoneNumberID <= 0 {
		return nil, ErrMissingPhoneNumberID
	}

	assigned, err := s.repo.AssignPhoneNumber(ctx, phoneNumberID, assistantID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrPhoneNumberNotFound
		}
		// ErrPhoneNumberAlreadyAssigned passes through for the boundary
		// layer to render as a conflict.
		return nil, err
	}
	return assigned, nil
}

// UnassignPhoneNumber handles clearing a number's assignment.
func (s *phoneNumberService) UnassignPhoneNumber(ctx context.Context, phoneNumberID int64) (*models.PhoneNumber, error) {
	if phoneNumberID <= 0 {
		return nil, ErrMissingPhoneNumberID
	}

	unassigned, err := s.repo.UnassignPhoneNumber(ctx, phoneNumberID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrPhoneNumberNotFound
		}
		return nil, err
	}
	return unassigned, nil
}

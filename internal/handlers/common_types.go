package handlers

import "github.com/noshow_platform/internal/models"

// PhoneNumberListData is the shared success payload for list endpoints.
type PhoneNumberListData struct {
	PhoneNumbers []models.PhoneNumber `json:"phoneNumbers"`
}

// PhoneNumberData is the shared success payload for single-row endpoints.
type PhoneNumberData struct {
	PhoneNumber *models.PhoneNumber `json:"phoneNumber"`
}

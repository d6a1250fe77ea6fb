package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhoneNumber(t *testing.T) {
	valid := []string{"+14155550100", "+442071838750", "+861012345678"}
	for _, number := range valid {
		assert.NoError(t, ValidatePhoneNumber(number), number)
	}

	// untrimmed input is invalid too: the validated string must be exactly
	// the one that gets persisted and sent to the carrier
	invalid := []string{"", "14155550100", "+04155550100", "415-555-0100", "+1 415 555 0100", "+1234567890123456", " +14155550100", "+14155550100 "}
	for _, number := range invalid {
		assert.ErrorIs(t, ValidatePhoneNumber(number), ErrInvalidPhoneNumberFormat, number)
	}
}

func TestValidateAreaCode(t *testing.T) {
	assert.NoError(t, ValidateAreaCode(""))
	assert.NoError(t, ValidateAreaCode("415"))

	for _, code := range []string{"41", "4155", "41a", "-15", " 415"} {
		assert.ErrorIs(t, ValidateAreaCode(code), ErrInvalidAreaCodeFormat, code)
	}
}

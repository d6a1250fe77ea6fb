package utils

import (
	"errors"
	"regexp"
)

var (
	ErrInvalidPhoneNumberFormat = errors.New("invalid phone number format, must be E.164 (e.g. +14155552671)")
	ErrInvalidAreaCodeFormat    = errors.New("invalid area code, must be three digits")
)

// E.164: a plus sign, a non-zero leading digit, up to 15 digits total.
var e164Pattern = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)

var areaCodePattern = regexp.MustCompile(`^\d{3}$`)

// ValidatePhoneNumber checks that a phone number string is E.164 formatted.
// The exact string is validated; callers normalize (trim) before calling so
// the validated value is the one that gets persisted and sent to the carrier.
func ValidatePhoneNumber(phone string) error {
	if !e164Pattern.MatchString(phone) {
		return ErrInvalidPhoneNumberFormat
	}
	return nil
}

// ValidateAreaCode checks a carrier-search area code. An empty string is
// allowed; the search then runs without an area-code filter.
func ValidateAreaCode(areaCode string) error {
	if areaCode == "" {
		return nil
	}
	if !areaCodePattern.MatchString(areaCode) {
		return ErrInvalidAreaCodeFormat
	}
	return nil
}

package utils

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ttacon/libphonenumber"
)

func NewTrue() *bool {
	b := true
	return &b
}

func NewFalse() *bool {
	b := false
	return &b
}

func ValidatePhoneNumber(phoneNumber, countryCode string) error {
	if countryCode == "" {
		countryCode = "IR"
	}
	p, err := libphonenumber.Parse(phoneNumber, countryCode)
	if err != nil {
		return ValidationError("invalid phone number")
	}
	if !libphonenumber.IsValidNumber(p) {
		return ValidationError("invalid phone number")
	}
	return nil
}

// flatten gin/validator binding errors into field -> message
func ProcessValidationErrors(err error) map[string]string {
	out := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			out[fe.Field()] = fe.Tag()
		}
	}
	return out
}

func ParseDateString(dateString string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", dateString)
	if err != nil {
		return time.Time{}, ValidationError("invalid date %q, want YYYY-MM-DD", dateString)
	}
	return t, nil
}

func UniqueSlice[T comparable](slice []T) []T {
	seen := make(map[T]struct{}, len(slice))
	result := make([]T, 0, len(slice))
	for _, v := range slice {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}

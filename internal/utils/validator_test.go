// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type paymentForm struct {
	CardNumber string `validate:"required,card_number"`
	ExpiryDate string `validate:"required,card_expiry"`
	CVV        string `validate:"required,cvv"`
}

func TestCardNumberValidation(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"plain 16 digits", "4242424242424242", true},
		{"spaced groups", "4242 4242 4242 4242", true},
		{"too short", "424242424242424", false},
		{"too long", "42424242424242424", false},
		{"letters", "4242 4242 4242 424a", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(paymentForm{
				CardNumber: tt.value,
				ExpiryDate: "12/27",
				CVV:        "123",
			})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestCardExpiryValidation(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"december", "12/27", true},
		{"january", "01/30", true},
		{"month zero", "00/27", false},
		{"month 13", "13/27", false},
		{"no slash", "1227", false},
		{"four digit year", "12/2027", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(paymentForm{
				CardNumber: "4242424242424242",
				ExpiryDate: tt.value,
				CVV:        "123",
			})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestCVVValidation(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"three digits", "123", true},
		{"four digits", "1234", true},
		{"two digits", "12", false},
		{"five digits", "12345", false},
		{"letters", "12a", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(paymentForm{
				CardNumber: "4242424242424242",
				ExpiryDate: "12/27",
				CVV:        tt.value,
			})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestGetValidationErrors(t *testing.T) {
	err := ValidateStruct(paymentForm{CardNumber: "bad", ExpiryDate: "13/27", CVV: "1"})
	require.Error(t, err)

	errs := GetValidationErrors(err)
	require.Len(t, errs, 3)
	assert.Equal(t, "cardnumber", errs[0].Field)
	assert.Equal(t, "Invalid card number", errs[0].Message)
	assert.Equal(t, "Invalid format (MM/YY)", errs[1].Message)
	assert.Equal(t, "Invalid CVV", errs[2].Message)
}

func TestGenerateOrderNumberFormat(t *testing.T) {
	for i := 0; i < 50; i++ {
		id, err := GenerateOrderNumber()
		require.NoError(t, err)
		assert.Regexp(t, `^ORD-\d{5}$`, id)
	}
}

func TestGenerateRandomString(t *testing.T) {
	s, err := GenerateRandomString(32)
	require.NoError(t, err)
	assert.Len(t, s, 32)

	other, err := GenerateRandomString(32)
	require.NoError(t, err)
	assert.NotEqual(t, s, other)
}

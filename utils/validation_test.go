package utils

import (
	"testing"

	"github.com/Sreehari-23/LinkLedger/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	ok, _ := ValidateEmail("alice@example.com")
	assert.True(t, ok)

	for _, email := range []string{"", "not-an-email", "missing@tld", "@example.com"} {
		ok, msg := ValidateEmail(email)
		assert.False(t, ok, "email %q should be rejected", email)
		assert.NotEmpty(t, msg)
	}
}

func TestValidateUsername(t *testing.T) {
	ok, _ := ValidateUsername("alice_01")
	assert.True(t, ok)

	for _, username := range []string{"", "ab", "this_name_is_way_too_long_ok", "bad name", "bad!"} {
		ok, _ := ValidateUsername(username)
		assert.False(t, ok, "username %q should be rejected", username)
	}
}

func TestValidatePassword(t *testing.T) {
	ok, _ := ValidatePassword("Str0ng!Pass")
	assert.True(t, ok)

	for _, password := range []string{"short", "alllowercase1!", "ALLUPPERCASE1!", "NoNumbers!!", "NoSpecial123"} {
		ok, _ := ValidatePassword(password)
		assert.False(t, ok, "password %q should be rejected", password)
	}
}

func TestValidateCommissionRule(t *testing.T) {
	tests := []struct {
		commissionType string
		value          string
		want           bool
	}{
		{models.CommissionTypePercentage, "10", true},
		{models.CommissionTypePercentage, "0", true},
		{models.CommissionTypePercentage, "100", true},
		{models.CommissionTypePercentage, "100.01", false},
		{models.CommissionTypePercentage, "-1", false},
		{models.CommissionTypeFixed, "15.00", true},
		{models.CommissionTypeFixed, "0", true},
		{models.CommissionTypeFixed, "-0.01", false},
		{"tiered", "10", false},
	}

	for _, tc := range tests {
		ok, _ := ValidateCommissionRule(tc.commissionType, decimal.RequireFromString(tc.value))
		assert.Equal(t, tc.want, ok, "%s/%s", tc.commissionType, tc.value)
	}
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "plain text", SanitizeString("plain text"))
	assert.NotContains(t, SanitizeString(`<script>alert(1)</script>`), "<script>")
}

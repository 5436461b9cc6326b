package utils

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/Sreehari-23/LinkLedger/models"
	"github.com/shopspring/decimal"
)

// FieldValidationError represents a validation error for a specific field
type FieldValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldValidationErrors represents multiple field validation errors
type FieldValidationErrors []FieldValidationError

// Error implements the error interface
func (e FieldValidationErrors) Error() string {
	var messages []string
	for _, err := range e {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	hasLower      = regexp.MustCompile(`[a-z]`)
	hasUpper      = regexp.MustCompile(`[A-Z]`)
	hasNumber     = regexp.MustCompile(`[0-9]`)
	hasSpecial    = regexp.MustCompile(`[@$!%*?&]`)
)

// SanitizeString removes potentially dangerous characters and HTML tags
func SanitizeString(input string) string {
	sanitized := html.EscapeString(input)

	htmlTagRegex := regexp.MustCompile(`<[^>]*>`)
	sanitized = htmlTagRegex.ReplaceAllString(sanitized, "")

	jsEventRegex := regexp.MustCompile(`on\w+="[^"]*"`)
	sanitized = jsEventRegex.ReplaceAllString(sanitized, "")

	return sanitized
}

// ValidateEmail checks if the email address is well formed
func ValidateEmail(email string) (bool, string) {
	if email == "" {
		return false, "Email is required"
	}
	if !emailRegex.MatchString(email) {
		return false, ErrInvalidEmail
	}
	return true, ""
}

// ValidateUsername checks if the username meets the requirements
func ValidateUsername(username string) (bool, string) {
	if username == "" {
		return false, "Username is required"
	}
	if !usernameRegex.MatchString(username) {
		return false, "Username must be 3-20 characters and contain only letters, numbers and underscores"
	}
	return true, ""
}

// ValidatePassword checks if the password meets the strength requirements
func ValidatePassword(password string) (bool, string) {
	if len(password) < MinPasswordLength || len(password) > MaxPasswordLength {
		return false, fmt.Sprintf("Password must be between %d and %d characters", MinPasswordLength, MaxPasswordLength)
	}
	if !hasLower.MatchString(password) || !hasUpper.MatchString(password) ||
		!hasNumber.MatchString(password) || !hasSpecial.MatchString(password) {
		return false, ErrInvalidPassword
	}
	return true, ""
}

// ValidateCommissionRule checks a product's commission type and value
func ValidateCommissionRule(commissionType string, commissionValue decimal.Decimal) (bool, string) {
	switch commissionType {
	case models.CommissionTypePercentage:
		if commissionValue.IsNegative() || commissionValue.GreaterThan(decimal.NewFromInt(100)) {
			return false, "Percentage commission must be between 0 and 100"
		}
	case models.CommissionTypeFixed:
		if commissionValue.IsNegative() {
			return false, "Commission value must be non-negative"
		}
	default:
		return false, "Commission type must be percentage or fixed"
	}
	return true, ""
}

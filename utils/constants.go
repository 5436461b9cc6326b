package utils

// Application constants
const (
	// Application name
	AppName = "LinkLedger"

	// API version
	APIVersion = "v1"

	// Default port
	DefaultPort = "8080"

	// Minimum payout request amount
	MinimumPayout = "10.00"

	// JWT token expiration (24 hours)
	JWTExpiration = "24h"

	// Length of generated affiliate link codes
	LinkCodeLength = 12

	// Default pagination limit
	DefaultPaginationLimit = 10

	// Maximum pagination limit
	MaxPaginationLimit = 100

	// Minimum password length
	MinPasswordLength = 8

	// Maximum password length
	MaxPasswordLength = 32
)

// Error messages
const (
	ErrInvalidCredentials = "Invalid email or password"
	ErrUserBlocked        = "Your account has been blocked"
	ErrInvalidToken       = "Invalid or expired token"
	ErrUnauthorized       = "Unauthorized access"
	ErrForbidden          = "Access forbidden"

	ErrInvalidEmail    = "Invalid email format"
	ErrInvalidPassword = "Password must be at least 8 characters long and contain at least one uppercase letter, one lowercase letter, one number, and one special character"

	ErrProductNotFound = "Product not found"
	ErrLinkNotFound    = "Affiliate link not found"
	ErrPayoutNotFound  = "Payout not found"
)

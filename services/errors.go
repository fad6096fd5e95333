package services

import "errors"

// Sentinel errors surfaced to controllers, which map them onto HTTP
// statuses with errors.Is.
var (
	ErrNotFound        = errors.New("not found")
	ErrItemUnavailable = errors.New("item not available")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrAddressNotFound = errors.New("address not found")
	ErrInvalidPayment  = errors.New("invalid payment method")
	ErrInvalidStatus   = errors.New("invalid order status")
	ErrForbidden       = errors.New("forbidden")

	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotVerified        = errors.New("email not verified")
	ErrAlreadyVerified    = errors.New("user already verified")
	ErrInvalidOTP         = errors.New("invalid otp")
	ErrExpiredOTP         = errors.New("otp has expired")
)

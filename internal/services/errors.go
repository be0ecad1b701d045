package services

import "errors"

// Sentinel errors surfaced to handlers for HTTP status mapping.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("access denied")
	ErrUnauthorized       = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("username already exists")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrCodeExpired        = errors.New("verification code expired or not requested")
	ErrCodeMismatch       = errors.New("verification code mismatch")
	ErrCodeResendTooSoon  = errors.New("verification code already sent")
	ErrMediaInReply       = errors.New("media attachments are not allowed in replies")
	ErrInvalidInput       = errors.New("invalid input")
)

package xerrors

import "errors"

// Error kinds. Every sentinel below unwraps to exactly one of these so the
// HTTP layer can map any failure with a single errors.Is switch.
var (
	ErrValidation     = errors.New("validation error")
	ErrConflict       = errors.New("conflict")
	ErrAuthentication = errors.New("authentication failed")
	ErrNotFound       = errors.New("not found")
	ErrExpired        = errors.New("expired")
	ErrDelivery       = errors.New("delivery failed")
	ErrInternalServer = errors.New("internal server error")
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

func newKind(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

// Registration / Login
var (
	ErrUserAlreadyExists  = newKind(ErrConflict, "user already exists")
	ErrPasswordsDontMatch = newKind(ErrValidation, "two passwords aren't match")
	ErrMissingCredentials = newKind(ErrValidation, "please provide email and password")
	ErrInvalidCredentials = newKind(ErrAuthentication, "incorrect password or email")
	ErrUserNotFound       = newKind(ErrNotFound, "user not found")

	// Input validation
	ErrInvalidRequest     = newKind(ErrValidation, "invalid request body")
	ErrInvalidEmailFormat = newKind(ErrValidation, "please provide a valid email")
	ErrPasswordTooShort   = newKind(ErrValidation, "password must be at least 8 characters long")
	ErrInvalidRole        = newKind(ErrValidation, "invalid role")
	ErrUsernameRequired   = newKind(ErrValidation, "username required")
	ErrEmailRequired      = newKind(ErrValidation, "email required")
	ErrPasswordRequired   = newKind(ErrValidation, "password required")
)

// Verification / OTP
var (
	ErrOTPRequired     = newKind(ErrValidation, "otp is missing")
	ErrInvalidOTP      = newKind(ErrAuthentication, "invalid otp")
	ErrExpiredOTP      = newKind(ErrExpired, "otp has expired, please request a new otp")
	ErrAlreadyVerified = newKind(ErrConflict, "this account is already verified")
)

// Password reset
var (
	ErrResetNotFound = newKind(ErrNotFound, "no user found")
)

// Token / session
var (
	ErrNoToken      = newKind(ErrAuthentication, "you are not logged in, please log in to get access")
	ErrInvalidToken = newKind(ErrAuthentication, "invalid or expired token")
	ErrTokenUser    = newKind(ErrAuthentication, "the user belonging to this token does no longer exist")
)

// Notification transport
var (
	ErrEmailDelivery = newKind(ErrDelivery, "there was an error sending the email, try again")
)

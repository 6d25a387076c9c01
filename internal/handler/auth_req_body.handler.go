package handler

import "auth-service/internal/domain"

type registerRequest struct {
	Username        string      `json:"username"`
	Email           string      `json:"email"`
	Password        string      `json:"password"`
	PasswordConfirm string      `json:"passwordConfirm"`
	Role            domain.Role `json:"role,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type verifyOTPRequest struct {
	OTP string `json:"otp"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	OTP             string `json:"otp"`
}

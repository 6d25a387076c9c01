package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superAdmin"
)

// ValidRole reports whether r is one of the enumerated account roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// User is one account document. Password holds only the bcrypt digest.
// The otp/otpExpires pair and the reset pair are set and cleared together.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Username   string             `bson:"username"`
	Email      string             `bson:"email"`
	Password   string             `bson:"password"`
	Role       Role               `bson:"role"`
	IsVerified bool               `bson:"isVerified"`

	OTP        *string    `bson:"otp,omitempty"`
	OTPExpires *time.Time `bson:"otpExpires,omitempty"`

	ResetPasswordOTP        *string    `bson:"resetPasswordOtp,omitempty"`
	ResetPasswordOTPExpires *time.Time `bson:"resetPasswordOtpExpires,omitempty"`

	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// PublicUser is the response view of an account: credential and OTP
// fields stripped.
type PublicUser struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (u *User) Sanitize() *PublicUser {
	return &PublicUser{
		ID:         u.ID.Hex(),
		Username:   u.Username,
		Email:      u.Email,
		Role:       u.Role,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

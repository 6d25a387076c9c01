package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"auth-service/internal/domain"
	"auth-service/internal/service"
	"auth-service/pkg/otp"
	"auth-service/pkg/utils"
	"auth-service/pkg/xerrors"
)

type RegisterRequest struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
	Role            domain.Role
}

// RegisterUser creates an unverified account with a fresh verification OTP and
// mails the code. Registration is all-or-nothing: if the mail cannot be sent
// the just-created document is deleted before the error is returned.
func (uc *AuthUsecase) RegisterUser(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	if req.Username == "" {
		return nil, xerrors.ErrUsernameRequired
	}
	if req.Email == "" {
		return nil, xerrors.ErrEmailRequired
	}
	if !utils.ValidateEmail(req.Email) {
		return nil, xerrors.ErrInvalidEmailFormat
	}
	if err := utils.ValidatePassword(req.Password); err != nil {
		return nil, err
	}
	if req.Password != req.PasswordConfirm {
		return nil, xerrors.ErrPasswordsDontMatch
	}
	role := req.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, xerrors.ErrInvalidRole
	}

	existing, err := uc.store.FindByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil && !errors.Is(err, xerrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, xerrors.ErrUserAlreadyExists
	}

	// Hashing happens here, exactly when the plaintext changes hands.
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	code := otp.Generate()
	expires := uc.now().Add(verifyOTPTTL)

	user := &domain.User{
		Username:   req.Username,
		Email:      req.Email,
		Password:   hash,
		Role:       role,
		IsVerified: false,
		OTP:        &code,
		OTPExpires: &expires,
	}

	if err := uc.store.Create(ctx, user); err != nil {
		return nil, err
	}

	mail := service.Mail{
		UserID:  user.ID.Hex(),
		To:      user.Email,
		Subject: "OTP For Email Verification",
		Type:    "otp",
		HTML:    fmt.Sprintf("<h1>Your otp is: %s</h1>", code),
	}
	if err := uc.mailer.Send(ctx, mail); err != nil {
		uc.logger.Error("verification email failed, rolling back registration",
			zap.String("email", user.Email),
			zap.Error(err))
		if delErr := uc.store.Delete(ctx, user.ID); delErr != nil {
			uc.logger.Error("rollback delete failed", zap.String("user_id", user.ID.Hex()), zap.Error(delErr))
		}
		return nil, xerrors.ErrEmailDelivery
	}

	return user, nil
}

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

// ForgotPassword stores a short-lived reset code and mails it. A failed send
// clears the reset pair before the error is returned.
func (uc *AuthUsecase) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return xerrors.ErrEmailRequired
	}

	user, err := uc.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			return xerrors.ErrResetNotFound
		}
		return err
	}

	code := otp.Generate()
	if err := uc.store.SetResetOTP(ctx, user.ID, code, uc.now().Add(resetOTPTTL)); err != nil {
		return err
	}

	mail := service.Mail{
		UserID:  user.ID.Hex(),
		To:      user.Email,
		Subject: "Your Password reset OTP (Valid for 5 minutes)",
		Type:    "password-reset",
		HTML:    fmt.Sprintf("<h1>Your new OTP is: %s</h1>", code),
	}
	if err := uc.mailer.Send(ctx, mail); err != nil {
		uc.logger.Error("reset email failed, clearing reset otp",
			zap.String("email", user.Email),
			zap.Error(err))
		if clrErr := uc.store.ClearResetOTP(ctx, user.ID); clrErr != nil {
			uc.logger.Error("clearing reset otp failed", zap.String("user_id", user.ID.Hex()), zap.Error(clrErr))
		}
		return xerrors.ErrEmailDelivery
	}

	return nil
}

// ResetPassword replaces the stored digest for the account matching email,
// reset code and an unexpired window simultaneously.
func (uc *AuthUsecase) ResetPassword(ctx context.Context, email, code, password, passwordConfirm string) (*domain.User, error) {
	if code == "" {
		return nil, xerrors.ErrOTPRequired
	}
	if err := utils.ValidatePassword(password); err != nil {
		return nil, err
	}
	if password != passwordConfirm {
		return nil, xerrors.ErrPasswordsDontMatch
	}

	user, err := uc.store.FindByResetOTP(ctx, email, code, uc.now())
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			return nil, xerrors.ErrResetNotFound
		}
		return nil, err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	if err := uc.store.UpdatePassword(ctx, user.ID, hash); err != nil {
		return nil, err
	}

	user.Password = hash
	user.ResetPasswordOTP = nil
	user.ResetPasswordOTPExpires = nil
	return user, nil
}

package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"auth-service/internal/domain"
	"auth-service/internal/service"
	"auth-service/pkg/otp"
	"auth-service/pkg/xerrors"
)

// VerifyOTP moves an authenticated account to the verified state. The code
// must match the stored value and the stored window must still be open;
// mismatch and expiry are distinct failures.
func (uc *AuthUsecase) VerifyOTP(ctx context.Context, user *domain.User, code string) (*domain.User, error) {
	if code == "" {
		return nil, xerrors.ErrOTPRequired
	}
	if user.OTP == nil || *user.OTP != code {
		return nil, xerrors.ErrInvalidOTP
	}
	if user.OTPExpires == nil || uc.now().After(*user.OTPExpires) {
		return nil, xerrors.ErrExpiredOTP
	}

	if err := uc.store.MarkVerified(ctx, user.ID); err != nil {
		return nil, err
	}

	user.IsVerified = true
	user.OTP = nil
	user.OTPExpires = nil
	return user, nil
}

// ResendOTP regenerates the verification code for a still-unverified account.
// A failed send leaves the otp pair cleared, so the stale code can never be
// accepted; the account stays unverifiable until the next resend.
func (uc *AuthUsecase) ResendOTP(ctx context.Context, authUser *domain.User) error {
	user, err := uc.store.FindByEmail(ctx, authUser.Email)
	if err != nil {
		return err
	}
	if user.IsVerified {
		return xerrors.ErrAlreadyVerified
	}

	code := otp.Generate()
	if err := uc.store.SetOTP(ctx, user.ID, code, uc.now().Add(verifyOTPTTL)); err != nil {
		return err
	}

	mail := service.Mail{
		UserID:  user.ID.Hex(),
		To:      user.Email,
		Subject: "Resend OTP for email verification",
		Type:    "otp",
		HTML:    fmt.Sprintf("<h1>Your new OTP is: %s</h1>", code),
	}
	if err := uc.mailer.Send(ctx, mail); err != nil {
		uc.logger.Error("resend email failed, clearing otp",
			zap.String("email", user.Email),
			zap.Error(err))
		if clrErr := uc.store.ClearOTP(ctx, user.ID); clrErr != nil {
			uc.logger.Error("clearing otp failed", zap.String("user_id", user.ID.Hex()), zap.Error(clrErr))
		}
		return xerrors.ErrEmailDelivery
	}

	return nil
}

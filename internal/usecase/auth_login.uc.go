package usecase

import (
	"context"
	"errors"

	"auth-service/internal/domain"
	"auth-service/pkg/utils"
	"auth-service/pkg/xerrors"
)

// Login checks the credential pair. Unknown email and wrong password return
// the same error so callers cannot tell which one failed. An unverified
// account may still log in; isVerified is exposed on the sanitized user.
func (uc *AuthUsecase) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, xerrors.ErrMissingCredentials
	}

	user, err := uc.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			return nil, xerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, xerrors.ErrInvalidCredentials
	}

	return user, nil
}

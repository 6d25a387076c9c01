package usecase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"auth-service/internal/domain"
	"auth-service/internal/service"
)

// OTP lifetimes. Verification codes live a day, reset codes five minutes.
const (
	verifyOTPTTL = 24 * time.Hour
	resetOTPTTL  = 5 * time.Minute
)

// UserStore is the persistence surface the auth flows need. Implemented by
// repository.UserRepository; faked in tests.
type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error)
	FindByResetOTP(ctx context.Context, email, otp string, now time.Time) (*domain.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	SetOTP(ctx context.Context, id primitive.ObjectID, code string, expires time.Time) error
	ClearOTP(ctx context.Context, id primitive.ObjectID) error
	MarkVerified(ctx context.Context, id primitive.ObjectID) error
	SetResetOTP(ctx context.Context, id primitive.ObjectID, code string, expires time.Time) error
	ClearResetOTP(ctx context.Context, id primitive.ObjectID) error
	UpdatePassword(ctx context.Context, id primitive.ObjectID, hash string) error
}

type Mailer interface {
	Send(ctx context.Context, m service.Mail) error
}

type AuthUsecase struct {
	store  UserStore
	mailer Mailer
	logger *zap.Logger
	now    func() time.Time
}

func NewAuthUsecase(store UserStore, mailer Mailer, logger *zap.Logger) *AuthUsecase {
	return &AuthUsecase{
		store:  store,
		mailer: mailer,
		logger: logger,
		now:    time.Now,
	}
}

func (uc *AuthUsecase) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	return uc.store.FindByID(ctx, id)
}

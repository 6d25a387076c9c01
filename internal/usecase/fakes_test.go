package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"auth-service/internal/domain"
	"auth-service/internal/service"
	"auth-service/pkg/xerrors"
)

// fakeStore is an in-memory UserStore with the same uniqueness behavior the
// mongo indexes provide.
type fakeStore struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*domain.User
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: map[primitive.ObjectID]*domain.User{}}
}

func (s *fakeStore) snapshot(id primitive.ObjectID) *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil
	}
	cp := *u
	return &cp
}

func (s *fakeStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

func (s *fakeStore) Create(_ context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return xerrors.ErrUserAlreadyExists
		}
	}
	u.ID = primitive.NewObjectID()
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s *fakeStore) FindByID(_ context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, xerrors.ErrUserNotFound
	}
	if u := s.snapshot(oid); u != nil {
		return u, nil
	}
	return nil, xerrors.ErrUserNotFound
}

func (s *fakeStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, xerrors.ErrUserNotFound
}

func (s *fakeStore) FindByUsernameOrEmail(_ context.Context, username, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username || u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, xerrors.ErrUserNotFound
}

func (s *fakeStore) FindByResetOTP(_ context.Context, email, otp string, now time.Time) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email &&
			u.ResetPasswordOTP != nil && *u.ResetPasswordOTP == otp &&
			u.ResetPasswordOTPExpires != nil && u.ResetPasswordOTPExpires.After(now) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, xerrors.ErrUserNotFound
}

func (s *fakeStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
	return nil
}

func (s *fakeStore) mutate(id primitive.ObjectID, fn func(*domain.User)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return xerrors.ErrUserNotFound
	}
	fn(u)
	u.UpdatedAt = time.Now()
	return nil
}

func (s *fakeStore) SetOTP(_ context.Context, id primitive.ObjectID, code string, expires time.Time) error {
	return s.mutate(id, func(u *domain.User) {
		u.OTP = &code
		u.OTPExpires = &expires
	})
}

func (s *fakeStore) ClearOTP(_ context.Context, id primitive.ObjectID) error {
	return s.mutate(id, func(u *domain.User) {
		u.OTP = nil
		u.OTPExpires = nil
	})
}

func (s *fakeStore) MarkVerified(_ context.Context, id primitive.ObjectID) error {
	return s.mutate(id, func(u *domain.User) {
		u.IsVerified = true
		u.OTP = nil
		u.OTPExpires = nil
	})
}

func (s *fakeStore) SetResetOTP(_ context.Context, id primitive.ObjectID, code string, expires time.Time) error {
	return s.mutate(id, func(u *domain.User) {
		u.ResetPasswordOTP = &code
		u.ResetPasswordOTPExpires = &expires
	})
}

func (s *fakeStore) ClearResetOTP(_ context.Context, id primitive.ObjectID) error {
	return s.mutate(id, func(u *domain.User) {
		u.ResetPasswordOTP = nil
		u.ResetPasswordOTPExpires = nil
	})
}

func (s *fakeStore) UpdatePassword(_ context.Context, id primitive.ObjectID, hash string) error {
	return s.mutate(id, func(u *domain.User) {
		u.Password = hash
		u.ResetPasswordOTP = nil
		u.ResetPasswordOTPExpires = nil
	})
}

// fakeMailer records sends and can be told to fail.
type fakeMailer struct {
	mu   sync.Mutex
	sent []service.Mail
	fail bool
}

func (m *fakeMailer) Send(_ context.Context, mail service.Mail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("smtp: connection refused")
	}
	m.sent = append(m.sent, mail)
	return nil
}

func (m *fakeMailer) lastSent() *service.Mail {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		return nil
	}
	return &m.sent[len(m.sent)-1]
}

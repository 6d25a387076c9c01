package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"auth-service/internal/domain"
)

type stubSender struct {
	err   error
	calls int
}

func (s *stubSender) Send(ctx context.Context, to, subject, body string) error {
	s.calls++
	return s.err
}

type memLogStore struct {
	entries []domain.EmailLog
	err     error
}

func (m *memLogStore) LogEmail(ctx context.Context, entry domain.EmailLog) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, entry)
	return nil
}

func testMail() Mail {
	return Mail{
		UserID:  "u1",
		To:      "a@x.com",
		Subject: "OTP For Email Verification",
		Type:    "otp",
		HTML:    "<h1>Your otp is: 123456</h1>",
	}
}

func TestLoggedMailerSend(t *testing.T) {
	ctx := context.Background()

	t.Run("successful send recorded as sent", func(t *testing.T) {
		sender := &stubSender{}
		logs := &memLogStore{}
		m := NewLoggedMailer(sender, logs, zap.NewNop())

		require.NoError(t, m.Send(ctx, testMail()))

		require.Len(t, logs.entries, 1)
		entry := logs.entries[0]
		assert.Equal(t, "sent", entry.Status)
		assert.Equal(t, "u1", entry.UserID)
		assert.Equal(t, "a@x.com", entry.RecipientEmail)
		assert.Equal(t, "otp", entry.Type)
		assert.Empty(t, entry.ErrorMessage)
		assert.NotEmpty(t, entry.ID)
		assert.WithinDuration(t, time.Now(), entry.SentAt, time.Minute)
	})

	t.Run("failed send recorded as failed and error returned", func(t *testing.T) {
		sendErr := errors.New("smtp: connection refused")
		sender := &stubSender{err: sendErr}
		logs := &memLogStore{}
		m := NewLoggedMailer(sender, logs, zap.NewNop())

		err := m.Send(ctx, testMail())
		require.ErrorIs(t, err, sendErr)

		require.Len(t, logs.entries, 1)
		entry := logs.entries[0]
		assert.Equal(t, "failed", entry.Status)
		assert.Equal(t, sendErr.Error(), entry.ErrorMessage)
	})

	t.Run("log store failure never changes the send result", func(t *testing.T) {
		sender := &stubSender{}
		logs := &memLogStore{err: errors.New("insert failed")}
		m := NewLoggedMailer(sender, logs, zap.NewNop())

		require.NoError(t, m.Send(ctx, testMail()))
		assert.Equal(t, 1, sender.calls)

		sendErr := errors.New("smtp: timeout")
		sender.err = sendErr
		err := m.Send(ctx, testMail())
		require.ErrorIs(t, err, sendErr)
	})
}

package domain

import "time"

// EmailLog records one outbound mail attempt for audit. Best effort only,
// a failed insert never fails the request that triggered the send.
type EmailLog struct {
	ID             string    `bson:"_id"`
	UserID         string    `bson:"userId,omitempty"`
	Subject        string    `bson:"subject"`
	RecipientEmail string    `bson:"recipientEmail"`
	Type           string    `bson:"type"`   // otp, password-reset, etc.
	Status         string    `bson:"status"` // sent, failed
	ErrorMessage   string    `bson:"errorMessage,omitempty"`
	SentAt         time.Time `bson:"sentAt"`
}

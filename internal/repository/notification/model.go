package notification

import "time"

type NotificationDB struct {
	ID          int64
	RecipientID string
	Severity    string
	Title       string
	Message     string
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

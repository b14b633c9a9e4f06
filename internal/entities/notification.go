package entities

import "time"

type NotificationSeverity string

const (
	NotificationInfo    NotificationSeverity = "info"
	NotificationSuccess NotificationSeverity = "success"
	NotificationError   NotificationSeverity = "error"
)

func (s NotificationSeverity) String() string {
	return string(s)
}

type Notification struct {
	ID          int64
	RecipientID string
	Severity    NotificationSeverity
	Title       string
	Message     string
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

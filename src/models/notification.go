package models

import "time"

// Notification types.
const (
	NotificationRiskAlert       = "risk_alert"
	NotificationPaymentReminder = "payment_reminder"
	NotificationAcademicConcern = "academic_concern"
)

// Notification - an intervention alert shown on the dashboard
type Notification struct {
	ID        string    `bson:"id" json:"id"`
	StudentID string    `bson:"studentId" json:"studentId"`
	Message   string    `bson:"message" json:"message"`
	Type      string    `bson:"type" json:"type"`
	Priority  string    `bson:"priority" json:"priority"` // high, medium, low
	IsRead    bool      `bson:"isRead" json:"isRead"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

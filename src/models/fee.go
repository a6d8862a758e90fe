package models

import "time"

// Fee status values. Uploads carry these verbatim.
const (
	FeeStatusPaid    = "paid"
	FeeStatusPending = "pending"
	FeeStatusOverdue = "overdue"
)

// FeeRecord - one fee item per semester, keyed by (studentId, semester, dueDate)
type FeeRecord struct {
	ID         string     `bson:"id" json:"id"`
	StudentID  string     `bson:"studentId" json:"studentId" validate:"required"`
	AmountDue  float64    `bson:"amountDue" json:"amountDue" validate:"min=0"`
	AmountPaid float64    `bson:"amountPaid" json:"amountPaid" validate:"min=0"`
	DueDate    time.Time  `bson:"dueDate" json:"dueDate"`
	PaidDate   *time.Time `bson:"paidDate,omitempty" json:"paidDate,omitempty"`
	Status     string     `bson:"status" json:"status" validate:"required,oneof=paid pending overdue"`
	Semester   int        `bson:"semester" json:"semester" validate:"required,min=1"`
}

// IsOutstanding reports whether this fee should count against the student's
// financial signal: overdue outright, or pending with an unpaid balance.
func (f FeeRecord) IsOutstanding() bool {
	if f.Status == FeeStatusOverdue {
		return true
	}
	return f.Status == FeeStatusPending && f.AmountPaid < f.AmountDue
}

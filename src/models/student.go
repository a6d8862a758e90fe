package models

import "time"

// Student - one document per enrolled student, keyed by StudentID
type Student struct {
	ID        string    `bson:"id" json:"id"`
	StudentID string    `bson:"studentId" json:"studentId" validate:"required"`
	Name      string    `bson:"name" json:"name" validate:"required"`
	Email     string    `bson:"email" json:"email" validate:"required,email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Course    string    `bson:"course" json:"course" validate:"required"`
	Semester  int       `bson:"semester" json:"semester" validate:"required,min=1"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

package models

import "time"

// AssessmentRecord - a single graded assessment (quiz, midterm, final,
// assignment). Repeated attempts keep their own records; AttemptNumber
// lets the scoring engine weigh later attempts more heavily.
type AssessmentRecord struct {
	ID             string    `bson:"id" json:"id"`
	StudentID      string    `bson:"studentId" json:"studentId" validate:"required"`
	Subject        string    `bson:"subject" json:"subject" validate:"required"`
	AssessmentType string    `bson:"assessmentType" json:"assessmentType" validate:"required"`
	Score          float64   `bson:"score" json:"score" validate:"min=0"`
	MaxScore       float64   `bson:"maxScore" json:"maxScore" validate:"gt=0"`
	Percentage     float64   `bson:"percentage" json:"percentage" validate:"min=0,max=100"`
	Date           time.Time `bson:"date" json:"date"`
	AttemptNumber  int       `bson:"attemptNumber" json:"attemptNumber" validate:"min=1"`
}

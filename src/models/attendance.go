package models

// AttendanceRecord - per subject/month attendance, multiple records per student.
// The student is referenced by StudentID but is not required to exist yet;
// uploads arrive in any order.
type AttendanceRecord struct {
	ID                   string  `bson:"id" json:"id"`
	StudentID            string  `bson:"studentId" json:"studentId" validate:"required"`
	Subject              string  `bson:"subject" json:"subject" validate:"required"`
	TotalClasses         int     `bson:"totalClasses" json:"totalClasses" validate:"min=0"`
	AttendedClasses      int     `bson:"attendedClasses" json:"attendedClasses" validate:"min=0"`
	AttendancePercentage float64 `bson:"attendancePercentage" json:"attendancePercentage" validate:"min=0,max=100"`
	Month                string  `bson:"month" json:"month" validate:"required"`
	Year                 int     `bson:"year" json:"year" validate:"required"`
}

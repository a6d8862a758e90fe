package ingestion

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"Backend-EduPredict/src/models"

	"github.com/go-playground/validator/v10"
)

// Row - one uploaded record, column name to raw cell value
type Row map[string]string

// RowError - one rejected row and why. Collected, never thrown: a bad row
// skips, the batch continues.
type RowError struct {
	Row    int    `json:"row"`
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

var validate = validator.New()

// rowDoc is a parsed+validated row ready for upsert: the natural-key
// filter, the fields to set (and clear), and the student the row
// belongs to.
type rowDoc struct {
	filter    map[string]interface{}
	set       map[string]interface{}
	unset     map[string]interface{}
	studentID string
}

func (r Row) get(col string) string {
	return strings.TrimSpace(r[col])
}

func (r Row) parseFloat(col string) (float64, *RowError) {
	v, err := strconv.ParseFloat(r.get(col), 64)
	if err != nil {
		return 0, &RowError{Field: col, Reason: fmt.Sprintf("%q is not a number", r.get(col))}
	}
	return v, nil
}

func (r Row) parseInt(col string) (int, *RowError) {
	v, err := strconv.Atoi(r.get(col))
	if err != nil {
		return 0, &RowError{Field: col, Reason: fmt.Sprintf("%q is not an integer", r.get(col))}
	}
	return v, nil
}

// dateLayouts accepted in date columns, tried in order.
var dateLayouts = []string{"2006-01-02", time.RFC3339, "02/01/2006"}

func (r Row) parseDate(col string) (time.Time, *RowError) {
	raw := r.get(col)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, &RowError{Field: col, Reason: fmt.Sprintf("%q is not a valid date", raw)}
}

func validationError(err error) *RowError {
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		first := verrs[0]
		return &RowError{Field: first.Field(), Reason: fmt.Sprintf("failed %q validation", first.Tag())}
	}
	return &RowError{Reason: err.Error()}
}

// parseRow turns one raw row into an upsert-ready document for its domain.
func parseRow(domain Domain, row Row) (rowDoc, *RowError) {
	switch domain {
	case DomainStudents:
		return parseStudentRow(row)
	case DomainAttendance:
		return parseAttendanceRow(row)
	case DomainAssessments:
		return parseAssessmentRow(row)
	case DomainFees:
		return parseFeeRow(row)
	}
	return rowDoc{}, &RowError{Reason: fmt.Sprintf("unknown domain %q", domain)}
}

func parseStudentRow(row Row) (rowDoc, *RowError) {
	semester, rerr := row.parseInt("semester")
	if rerr != nil {
		return rowDoc{}, rerr
	}

	student := models.Student{
		StudentID: row.get("student_id"),
		Name:      row.get("name"),
		Email:     row.get("email"),
		Phone:     row.get("phone"),
		Course:    row.get("course"),
		Semester:  semester,
	}
	if err := validate.Struct(student); err != nil {
		return rowDoc{}, validationError(err)
	}

	return rowDoc{
		filter: map[string]interface{}{"studentId": student.StudentID},
		set: map[string]interface{}{
			"studentId": student.StudentID,
			"name":      student.Name,
			"email":     student.Email,
			"phone":     student.Phone,
			"course":    student.Course,
			"semester":  student.Semester,
		},
		studentID: student.StudentID,
	}, nil
}

func parseAttendanceRow(row Row) (rowDoc, *RowError) {
	total, rerr := row.parseInt("total_classes")
	if rerr != nil {
		return rowDoc{}, rerr
	}
	attended, rerr := row.parseInt("attended_classes")
	if rerr != nil {
		return rowDoc{}, rerr
	}
	percentage, rerr := row.parseFloat("attendance_percentage")
	if rerr != nil {
		return rowDoc{}, rerr
	}
	year, rerr := row.parseInt("year")
	if rerr != nil {
		return rowDoc{}, rerr
	}

	record := models.AttendanceRecord{
		StudentID:            row.get("student_id"),
		Subject:              row.get("subject"),
		TotalClasses:         total,
		AttendedClasses:      attended,
		AttendancePercentage: percentage,
		Month:                row.get("month"),
		Year:                 year,
	}
	if err := validate.Struct(record); err != nil {
		return rowDoc{}, validationError(err)
	}
	if record.AttendedClasses > record.TotalClasses {
		return rowDoc{}, &RowError{Field: "attended_classes", Reason: "attended classes exceed total classes"}
	}

	return rowDoc{
		filter: map[string]interface{}{
			"studentId": record.StudentID,
			"subject":   record.Subject,
			"month":     record.Month,
			"year":      record.Year,
		},
		set: map[string]interface{}{
			"studentId":            record.StudentID,
			"subject":              record.Subject,
			"totalClasses":         record.TotalClasses,
			"attendedClasses":      record.AttendedClasses,
			"attendancePercentage": record.AttendancePercentage,
			"month":                record.Month,
			"year":                 record.Year,
		},
		studentID: record.StudentID,
	}, nil
}

func parseAssessmentRow(row Row) (rowDoc, *RowError) {
	score, rerr := row.parseFloat("score")
	if rerr != nil {
		return rowDoc{}, rerr
	}
	maxScore, rerr := row.parseFloat("max_score")
	if rerr != nil {
		return rowDoc{}, rerr
	}
	percentage, rerr := row.parseFloat("percentage")
	if rerr != nil {
		return rowDoc{}, rerr
	}
	date, rerr := row.parseDate("date")
	if rerr != nil {
		return rowDoc{}, rerr
	}
	attempt, rerr := row.parseInt("attempt_number")
	if rerr != nil {
		return rowDoc{}, rerr
	}

	record := models.AssessmentRecord{
		StudentID:      row.get("student_id"),
		Subject:        row.get("subject"),
		AssessmentType: row.get("assessment_type"),
		Score:          score,
		MaxScore:       maxScore,
		Percentage:     percentage,
		Date:           date,
		AttemptNumber:  attempt,
	}
	if err := validate.Struct(record); err != nil {
		return rowDoc{}, validationError(err)
	}

	return rowDoc{
		filter: map[string]interface{}{
			"studentId":      record.StudentID,
			"subject":        record.Subject,
			"assessmentType": record.AssessmentType,
			"attemptNumber":  record.AttemptNumber,
		},
		set: map[string]interface{}{
			"studentId":      record.StudentID,
			"subject":        record.Subject,
			"assessmentType": record.AssessmentType,
			"score":          record.Score,
			"maxScore":       record.MaxScore,
			"percentage":     record.Percentage,
			"date":           record.Date,
			"attemptNumber":  record.AttemptNumber,
		},
		studentID: record.StudentID,
	}, nil
}

func parseFeeRow(row Row) (rowDoc, *RowError) {
	amountDue, rerr := row.parseFloat("amount_due")
	if rerr != nil {
		return rowDoc{}, rerr
	}
	amountPaid, rerr := row.parseFloat("amount_paid")
	if rerr != nil {
		return rowDoc{}, rerr
	}
	dueDate, rerr := row.parseDate("due_date")
	if rerr != nil {
		return rowDoc{}, rerr
	}
	semester, rerr := row.parseInt("semester")
	if rerr != nil {
		return rowDoc{}, rerr
	}

	var paidDate *time.Time
	if row.get("paid_date") != "" {
		t, rerr := row.parseDate("paid_date")
		if rerr != nil {
			return rowDoc{}, rerr
		}
		paidDate = &t
	}

	record := models.FeeRecord{
		StudentID:  row.get("student_id"),
		AmountDue:  amountDue,
		AmountPaid: amountPaid,
		DueDate:    dueDate,
		PaidDate:   paidDate,
		Status:     strings.ToLower(row.get("status")),
		Semester:   semester,
	}
	if err := validate.Struct(record); err != nil {
		return rowDoc{}, validationError(err)
	}

	set := map[string]interface{}{
		"studentId":  record.StudentID,
		"amountDue":  record.AmountDue,
		"amountPaid": record.AmountPaid,
		"dueDate":    record.DueDate,
		"status":     record.Status,
		"semester":   record.Semester,
	}
	// An empty paid_date cell clears any stored value: the row is the
	// full current state of the fee, so a stale paidDate must not
	// survive a re-upload.
	var unset map[string]interface{}
	if record.PaidDate != nil {
		set["paidDate"] = *record.PaidDate
	} else {
		unset = map[string]interface{}{"paidDate": ""}
	}

	return rowDoc{
		filter: map[string]interface{}{
			"studentId": record.StudentID,
			"semester":  record.Semester,
			"dueDate":   record.DueDate,
		},
		set:       set,
		unset:     unset,
		studentID: record.StudentID,
	}, nil
}

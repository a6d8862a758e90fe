package ingestion

import (
	"fmt"
	"strings"
)

// Domain - which of the four record collections a batch targets.
// One ingestion path parameterized by domain, not four near-duplicates.
type Domain string

const (
	DomainStudents    Domain = "students"
	DomainAttendance  Domain = "attendance"
	DomainAssessments Domain = "assessments"
	DomainFees        Domain = "fees"
)

// ParseDomain validates an upload path segment.
func ParseDomain(s string) (Domain, error) {
	switch Domain(strings.ToLower(strings.TrimSpace(s))) {
	case DomainStudents:
		return DomainStudents, nil
	case DomainAttendance:
		return DomainAttendance, nil
	case DomainAssessments:
		return DomainAssessments, nil
	case DomainFees:
		return DomainFees, nil
	default:
		return "", fmt.Errorf("unknown upload domain: %q", s)
	}
}

// requiredColumns - the exact column set each domain's file must carry.
// Optional fields like phone (students) are accepted but not required.
// paid_date must exist as a column in a fees file; its cells may be empty
// for fees not yet paid.
var requiredColumns = map[Domain][]string{
	DomainStudents:    {"student_id", "name", "email", "course", "semester"},
	DomainAttendance:  {"student_id", "subject", "total_classes", "attended_classes", "attendance_percentage", "month", "year"},
	DomainAssessments: {"student_id", "subject", "assessment_type", "score", "max_score", "percentage", "date", "attempt_number"},
	DomainFees:        {"student_id", "amount_due", "amount_paid", "due_date", "paid_date", "status", "semester"},
}

// RequiredColumns returns the required column set for a domain.
func RequiredColumns(domain Domain) []string {
	return requiredColumns[domain]
}

// SchemaError - the whole batch is malformed: required columns are missing
// from the file itself. Nothing is upserted.
type SchemaError struct {
	Domain  Domain
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s batch is missing required columns: %s", e.Domain, strings.Join(e.Missing, ", "))
}

// checkSchema compares the batch's column set against the domain's
// required set. Column names are matched case-insensitively.
func checkSchema(domain Domain, columns []string) error {
	present := make(map[string]bool, len(columns))
	for _, c := range columns {
		present[strings.ToLower(strings.TrimSpace(c))] = true
	}

	var missing []string
	for _, required := range requiredColumns[domain] {
		if !present[required] {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Domain: domain, Missing: missing}
	}
	return nil
}

package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func studentRow(id, name, email string) Row {
	return Row{
		"student_id": id,
		"name":       name,
		"email":      email,
		"phone":      "0812345678",
		"course":     "Computer Science",
		"semester":   "3",
	}
}

func attendanceRow(id, pct string) Row {
	return Row{
		"student_id":            id,
		"subject":               "Mathematics",
		"total_classes":         "20",
		"attended_classes":      "15",
		"attendance_percentage": pct,
		"month":                 "January",
		"year":                  "2026",
	}
}

func TestParseDomain(t *testing.T) {
	for _, s := range []string{"students", "Attendance", " assessments ", "FEES"} {
		domain, err := ParseDomain(s)
		assert.NoError(t, err, s)
		assert.NotEmpty(t, domain)
	}

	_, err := ParseDomain("grades")
	assert.Error(t, err)
}

func TestParseBatchSchema(t *testing.T) {
	t.Run("MissingRequiredColumnRejectsWholeBatch", func(t *testing.T) {
		row := studentRow("STU001", "Anan Srisuk", "anan@example.com")
		delete(row, "email")

		batch := Batch{
			Columns: []string{"student_id", "name", "phone", "course", "semester"},
			Rows:    []Row{row},
		}

		_, _, report, err := ParseBatch(DomainStudents, batch)

		var schemaErr *SchemaError
		assert.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, []string{"email"}, schemaErr.Missing)
		assert.Zero(t, report.Accepted)
	})

	t.Run("ColumnMatchingIsCaseInsensitive", func(t *testing.T) {
		batch := Batch{
			Columns: []string{"Student_ID", "NAME", "Email", "Course", "Semester"},
			Rows: []Row{{
				"Student_ID": "STU001",
				"NAME":       "Anan Srisuk",
				"Email":      "anan@example.com",
				"Course":     "Computer Science",
				"Semester":   "3",
			}},
		}

		docs, _, report, err := ParseBatch(DomainStudents, batch)

		// Rows with the same mixed-case keys must parse, not fail
		// per-row after passing the schema check.
		assert.NoError(t, err)
		assert.Equal(t, 1, report.Accepted)
		assert.Zero(t, report.Rejected)
		assert.Equal(t, "STU001", docs[0].studentID)
	})

	t.Run("ColumnsDerivedFromJSONRows", func(t *testing.T) {
		batch := Batch{
			Rows: []Row{studentRow("STU001", "Anan Srisuk", "anan@example.com")},
		}

		_, _, report, err := ParseBatch(DomainStudents, batch)
		assert.NoError(t, err)
		assert.Equal(t, 1, report.Accepted)
	})
}

func TestParseBatchRows(t *testing.T) {
	t.Run("BadRowsAreSkippedNotFatal", func(t *testing.T) {
		rows := make([]Row, 0, 10)
		for i := 0; i < 8; i++ {
			rows = append(rows, attendanceRow("STU001", "75"))
		}
		rows = append(rows, attendanceRow("STU002", "not-a-number"))
		rows = append(rows, attendanceRow("STU003", "abc"))

		batch := Batch{Columns: RequiredColumns(DomainAttendance), Rows: rows}

		docs, _, report, err := ParseBatch(DomainAttendance, batch)

		assert.NoError(t, err)
		assert.Equal(t, 8, report.Accepted)
		assert.Equal(t, 2, report.Rejected)
		assert.Len(t, docs, 8)
		assert.Len(t, report.Errors, 2)
		assert.Equal(t, report.Accepted+report.Rejected, len(rows))
	})

	t.Run("RowErrorsCarryRowNumberAndField", func(t *testing.T) {
		batch := Batch{
			Columns: RequiredColumns(DomainAttendance),
			Rows:    []Row{attendanceRow("STU001", "75"), attendanceRow("STU002", "oops")},
		}

		_, _, report, err := ParseBatch(DomainAttendance, batch)

		assert.NoError(t, err)
		assert.Len(t, report.Errors, 1)
		assert.Equal(t, 2, report.Errors[0].Row)
		assert.Equal(t, "attendance_percentage", report.Errors[0].Field)
	})

	t.Run("AttendedCannotExceedTotal", func(t *testing.T) {
		row := attendanceRow("STU001", "75")
		row["attended_classes"] = "25" // total is 20

		batch := Batch{Columns: RequiredColumns(DomainAttendance), Rows: []Row{row}}

		_, _, report, err := ParseBatch(DomainAttendance, batch)

		assert.NoError(t, err)
		assert.Equal(t, 1, report.Rejected)
	})

	t.Run("TouchedStudentIDsAreDistinctAndSorted", func(t *testing.T) {
		batch := Batch{
			Columns: RequiredColumns(DomainAttendance),
			Rows: []Row{
				attendanceRow("STU002", "80"),
				attendanceRow("STU001", "70"),
				attendanceRow("STU002", "90"),
			},
		}

		_, studentIDs, _, err := ParseBatch(DomainAttendance, batch)

		assert.NoError(t, err)
		assert.Equal(t, []string{"STU001", "STU002"}, studentIDs)
	})

	t.Run("StudentRowKeyedByStudentID", func(t *testing.T) {
		batch := Batch{Rows: []Row{studentRow("STU001", "Anan Srisuk", "anan@example.com")}}

		docs, _, _, err := ParseBatch(DomainStudents, batch)

		assert.NoError(t, err)
		assert.Len(t, docs, 1)
		assert.Equal(t, map[string]interface{}{"studentId": "STU001"}, docs[0].filter)
	})

	t.Run("InvalidEmailFailsValidation", func(t *testing.T) {
		batch := Batch{Rows: []Row{studentRow("STU001", "Anan Srisuk", "not-an-email")}}

		_, _, report, err := ParseBatch(DomainStudents, batch)

		assert.NoError(t, err)
		assert.Equal(t, 1, report.Rejected)
		assert.Equal(t, "Email", report.Errors[0].Field)
	})
}

func TestParseFeeRow(t *testing.T) {
	base := Row{
		"student_id":  "STU001",
		"amount_due":  "15000",
		"amount_paid": "5000",
		"due_date":    "2026-01-31",
		"status":      "Pending",
		"semester":    "1",
	}

	t.Run("StatusIsNormalizedToLowercase", func(t *testing.T) {
		doc, rerr := parseFeeRow(base)

		assert.Nil(t, rerr)
		assert.Equal(t, "pending", doc.set["status"])
	})

	t.Run("UnknownStatusIsRejected", func(t *testing.T) {
		row := Row{}
		for k, v := range base {
			row[k] = v
		}
		row["status"] = "waived"

		_, rerr := parseFeeRow(row)
		assert.NotNil(t, rerr)
	})

	t.Run("EmptyPaidDateClearsStoredValue", func(t *testing.T) {
		doc, rerr := parseFeeRow(base)

		assert.Nil(t, rerr)
		assert.NotContains(t, doc.set, "paidDate")
		assert.Contains(t, doc.unset, "paidDate")
	})

	t.Run("PresentPaidDateIsSetNotUnset", func(t *testing.T) {
		row := Row{}
		for k, v := range base {
			row[k] = v
		}
		row["paid_date"] = "2026-01-20"
		row["status"] = "paid"

		doc, rerr := parseFeeRow(row)

		assert.Nil(t, rerr)
		assert.Contains(t, doc.set, "paidDate")
		assert.Empty(t, doc.unset)
	})

	t.Run("NaturalKeyIsStudentSemesterDueDate", func(t *testing.T) {
		doc, rerr := parseFeeRow(base)

		assert.Nil(t, rerr)
		assert.Contains(t, doc.filter, "studentId")
		assert.Contains(t, doc.filter, "semester")
		assert.Contains(t, doc.filter, "dueDate")
	})
}

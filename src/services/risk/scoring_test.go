package risk

import (
	"testing"

	"Backend-EduPredict/src/models"

	"github.com/stretchr/testify/assert"
)

func attendanceAt(pct float64) []models.AttendanceRecord {
	return []models.AttendanceRecord{
		{StudentID: "STU001", Subject: "Mathematics", AttendancePercentage: pct, Month: "January", Year: 2026},
	}
}

func assessmentAt(pct float64) []models.AssessmentRecord {
	return []models.AssessmentRecord{
		{StudentID: "STU001", Subject: "Mathematics", AssessmentType: "midterm", Percentage: pct, AttemptNumber: 1},
	}
}

func feeWithStatus(status string) []models.FeeRecord {
	return []models.FeeRecord{
		{StudentID: "STU001", AmountDue: 15000, AmountPaid: 0, Status: status, Semester: 1},
	}
}

func TestComputeRisk(t *testing.T) {
	p := DefaultPolicy()

	t.Run("StrugglingStudentScoresHigh", func(t *testing.T) {
		result := ComputeRisk(attendanceAt(50), assessmentAt(45), feeWithStatus(models.FeeStatusOverdue), p)

		assert.Equal(t, 82.0, result.Score)
		assert.Equal(t, models.LevelHigh, result.Level)
		assert.Equal(t, models.DataStatusOK, result.DataStatus)
		assert.Equal(t, models.PriorityImmediate, result.InterventionPriority)
		assert.Len(t, result.Factors, 3) // attendance, academic, financial
		assert.NotEmpty(t, result.Recommendations)
	})

	t.Run("HealthyStudentScoresSafe", func(t *testing.T) {
		result := ComputeRisk(attendanceAt(95), assessmentAt(90), feeWithStatus(models.FeeStatusPaid), p)

		assert.Equal(t, 6.0, result.Score)
		assert.Equal(t, models.LevelSafe, result.Level)
		assert.Empty(t, result.Factors)
	})

	t.Run("NoRecordsReportsUnknown", func(t *testing.T) {
		result := ComputeRisk(nil, nil, nil, p)

		assert.Equal(t, p.DefaultScore, result.Score)
		assert.Equal(t, models.LevelUnknown, result.Level)
		assert.Equal(t, models.DataStatusInsufficient, result.DataStatus)
		assert.Equal(t, models.PriorityModerate, result.InterventionPriority)
	})

	t.Run("PartialDataStillScores", func(t *testing.T) {
		// Attendance only: the one present signal carries the full
		// academic share of the weight.
		result := ComputeRisk(attendanceAt(50), nil, nil, p)

		assert.Equal(t, models.DataStatusOK, result.DataStatus)
		assert.Equal(t, 60.0, result.Score) // (100-50+25) renormalized over 0.8
	})

	t.Run("DeterministicForIdenticalInput", func(t *testing.T) {
		att := attendanceAt(62)
		asmt := assessmentAt(58)
		fees := feeWithStatus(models.FeeStatusPending)

		first := ComputeRisk(att, asmt, fees, p)
		second := ComputeRisk(att, asmt, fees, p)

		assert.Equal(t, first, second)
	})

	t.Run("PendingFullyPaidFeeIsNotOutstanding", func(t *testing.T) {
		fees := []models.FeeRecord{
			{StudentID: "STU001", AmountDue: 15000, AmountPaid: 15000, Status: models.FeeStatusPending, Semester: 1},
		}
		result := ComputeRisk(attendanceAt(95), assessmentAt(90), fees, p)

		assert.Equal(t, 6.0, result.Score)
		assert.Empty(t, result.Factors)
	})

	t.Run("RetakesWeighMoreThanFirstAttempt", func(t *testing.T) {
		asmt := []models.AssessmentRecord{
			{StudentID: "STU001", Subject: "Physics", AssessmentType: "midterm", Percentage: 90, AttemptNumber: 1},
			{StudentID: "STU001", Subject: "Physics", AssessmentType: "midterm", Percentage: 30, AttemptNumber: 2},
		}
		mean := weightedAssessmentMean(asmt)

		// (90*1 + 30*2) / 3 = 50, not the plain average of 60
		assert.Equal(t, 50.0, mean)
	})

	t.Run("TierMatchesTheStoredScore", func(t *testing.T) {
		// Mean attendance 37.55 yields a raw score of 69.96, which
		// rounds up across the HIGH boundary. The reported tier must
		// belong to the reported score, not the unrounded one.
		att := []models.AttendanceRecord{
			{StudentID: "STU001", Subject: "Mathematics", AttendancePercentage: 37.5, Month: "January", Year: 2026},
			{StudentID: "STU001", Subject: "Physics", AttendancePercentage: 37.6, Month: "January", Year: 2026},
		}
		result := ComputeRisk(att, nil, nil, p)

		assert.Equal(t, 70.0, result.Score)
		assert.Equal(t, models.LevelHigh, result.Level)
		assert.Equal(t, LevelForScore(result.Score, p), result.Level)
	})

	t.Run("ScoreIsAlwaysClamped", func(t *testing.T) {
		result := ComputeRisk(attendanceAt(0), assessmentAt(0), feeWithStatus(models.FeeStatusOverdue), p)

		assert.LessOrEqual(t, result.Score, 100.0)
		assert.GreaterOrEqual(t, result.Score, 0.0)
		assert.Equal(t, models.LevelHigh, result.Level)
	})
}

func TestLevelForScore(t *testing.T) {
	p := DefaultPolicy()

	cases := []struct {
		score float64
		level string
	}{
		{0, models.LevelSafe},
		{14.9, models.LevelSafe},
		{15, models.LevelLow},
		{39.9, models.LevelLow},
		{40, models.LevelMedium},
		{69.9, models.LevelMedium},
		{70, models.LevelHigh},
		{100, models.LevelHigh},
	}
	for _, c := range cases {
		assert.Equal(t, c.level, LevelForScore(c.score, p), "score %.1f", c.score)
	}

	t.Run("MonotonicOverFullRange", func(t *testing.T) {
		prev := 0
		for score := 0.0; score <= 100; score += 0.5 {
			sev := models.LevelSeverity(LevelForScore(score, p))
			assert.GreaterOrEqual(t, sev, prev, "severity dropped at score %.1f", score)
			prev = sev
		}
	})
}

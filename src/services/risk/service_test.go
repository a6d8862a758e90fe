package risk

import (
	"testing"
	"time"

	"Backend-EduPredict/src/models"

	"github.com/stretchr/testify/assert"
)

func TestSameResult(t *testing.T) {
	stored := &models.RiskAssessment{
		StudentID:            "STU001",
		RiskScore:            82,
		RiskLevel:            models.LevelHigh,
		DataStatus:           models.DataStatusOK,
		RiskFactors:          []string{"low attendance"},
		Recommendations:      []string{"schedule counseling"},
		InterventionPriority: models.PriorityImmediate,
		ComputedAt:           time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC),
	}

	t.Run("UnchangedComputationMatchesStored", func(t *testing.T) {
		result := Result{
			Score:                82,
			Level:                models.LevelHigh,
			DataStatus:           models.DataStatusOK,
			Factors:              []string{"low attendance"},
			Recommendations:      []string{"schedule counseling"},
			InterventionPriority: models.PriorityImmediate,
		}
		assert.True(t, sameResult(stored, result))
	})

	t.Run("ScoreChangeIsDetected", func(t *testing.T) {
		result := Result{
			Score:                83,
			Level:                models.LevelHigh,
			DataStatus:           models.DataStatusOK,
			Factors:              []string{"low attendance"},
			Recommendations:      []string{"schedule counseling"},
			InterventionPriority: models.PriorityImmediate,
		}
		assert.False(t, sameResult(stored, result))
	})

	t.Run("FactorChangeIsDetected", func(t *testing.T) {
		result := Result{
			Score:                82,
			Level:                models.LevelHigh,
			DataStatus:           models.DataStatusOK,
			Factors:              []string{"low attendance", "overdue fees"},
			Recommendations:      []string{"schedule counseling"},
			InterventionPriority: models.PriorityImmediate,
		}
		assert.False(t, sameResult(stored, result))
	})
}

func TestLockFor(t *testing.T) {
	// Same student always maps to the same mutex, different students
	// to different ones.
	assert.Same(t, lockFor("STU001"), lockFor("STU001"))
	assert.NotSame(t, lockFor("STU001"), lockFor("STU002"))
}

package dashboard

import (
	"testing"

	"Backend-EduPredict/src/models"

	"github.com/stretchr/testify/assert"
)

func TestDistribution(t *testing.T) {
	t.Run("EveryStudentLandsInExactlyOneBucket", func(t *testing.T) {
		dist, total := Distribution(map[string]int64{
			models.LevelHigh:    3,
			models.LevelMedium:  5,
			models.LevelLow:     7,
			models.LevelSafe:    20,
			models.LevelUnknown: 2,
		})

		assert.Equal(t, int64(37), total)
		var sum int64
		for _, n := range dist {
			sum += n
		}
		assert.Equal(t, total, sum)
	})

	t.Run("AllFiveBucketsAlwaysPresent", func(t *testing.T) {
		dist, total := Distribution(map[string]int64{models.LevelHigh: 1})

		assert.Equal(t, int64(1), total)
		assert.Len(t, dist, 5)
		assert.Equal(t, int64(1), dist["high"])
		assert.Equal(t, int64(0), dist["safe"])
		assert.Equal(t, int64(0), dist["unknown"])
	})

	t.Run("UnknownIsItsOwnBucketNotSafe", func(t *testing.T) {
		dist, _ := Distribution(map[string]int64{models.LevelUnknown: 4})

		assert.Equal(t, int64(4), dist["unknown"])
		assert.Equal(t, int64(0), dist["safe"])
	})
}

func TestSortByRisk(t *testing.T) {
	students := []models.AtRiskStudent{
		{StudentID: "STU004", RiskLevel: models.LevelLow, RiskScore: 20},
		{StudentID: "STU002", RiskLevel: models.LevelHigh, RiskScore: 75},
		{StudentID: "STU001", RiskLevel: models.LevelHigh, RiskScore: 92},
		{StudentID: "STU005", RiskLevel: models.LevelUnknown, RiskScore: 50},
		{StudentID: "STU003", RiskLevel: models.LevelMedium, RiskScore: 55},
	}

	SortByRisk(students)

	ids := make([]string, 0, len(students))
	for _, s := range students {
		ids = append(ids, s.StudentID)
	}

	// Severity first, score breaks ties inside a level; UNKNOWN sits
	// between MEDIUM and LOW.
	assert.Equal(t, []string{"STU001", "STU002", "STU003", "STU005", "STU004"}, ids)
}

func TestSortByRiskTiesAreStableByStudentID(t *testing.T) {
	students := []models.AtRiskStudent{
		{StudentID: "STU009", RiskLevel: models.LevelHigh, RiskScore: 80},
		{StudentID: "STU001", RiskLevel: models.LevelHigh, RiskScore: 80},
	}

	SortByRisk(students)

	assert.Equal(t, "STU001", students[0].StudentID)
	assert.Equal(t, "STU009", students[1].StudentID)
}

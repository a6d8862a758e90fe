package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicyFromEnv(t *testing.T) {
	t.Run("DefaultsWhenEnvIsEmpty", func(t *testing.T) {
		assert.Equal(t, DefaultPolicy(), PolicyFromEnv())
	})

	t.Run("OverlaysSingleValue", func(t *testing.T) {
		t.Setenv("RISK_FINANCIAL_PENALTY", "30")

		p := PolicyFromEnv()
		assert.Equal(t, 30.0, p.FinancialPenalty)
		assert.Equal(t, DefaultPolicy().AttendanceThreshold, p.AttendanceThreshold)
	})

	t.Run("IgnoresUnparsableValue", func(t *testing.T) {
		t.Setenv("RISK_HIGH_CUTOFF", "very high")

		p := PolicyFromEnv()
		assert.Equal(t, DefaultPolicy().HighCutoff, p.HighCutoff)
	})

	t.Run("RevertsOnInvertedCutoffs", func(t *testing.T) {
		t.Setenv("RISK_HIGH_CUTOFF", "30")
		t.Setenv("RISK_MEDIUM_CUTOFF", "50")

		assert.Equal(t, DefaultPolicy(), PolicyFromEnv())
	})

	t.Run("RevertsOnNegativeWeight", func(t *testing.T) {
		t.Setenv("RISK_ATTENDANCE_WEIGHT", "-0.4")

		assert.Equal(t, DefaultPolicy(), PolicyFromEnv())
	})

	t.Run("RevertsOnNegativePenalty", func(t *testing.T) {
		t.Setenv("RISK_FINANCIAL_PENALTY", "-20")

		assert.Equal(t, DefaultPolicy(), PolicyFromEnv())
	})

	t.Run("RevertsOnNegativeLowCutoff", func(t *testing.T) {
		t.Setenv("RISK_LOW_CUTOFF", "-5")

		assert.Equal(t, DefaultPolicy(), PolicyFromEnv())
	})
}

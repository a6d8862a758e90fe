package risk

import (
	"log"
	"os"
	"strconv"
	"sync"
)

// Policy holds the scoring constants. Everything here is policy, not
// structure: thresholds and weights can be tuned per institution through
// environment variables without touching the engine.
type Policy struct {
	// AttendanceThreshold - mean attendance percentage below which the
	// below-threshold penalty applies
	AttendanceThreshold float64
	// AcademicThreshold - weighted assessment percentage below which the
	// below-threshold penalty applies
	AcademicThreshold float64

	// AttendanceWeight / AcademicWeight - contribution of each signal to
	// the aggregate score
	AttendanceWeight float64
	AcademicWeight   float64

	// BelowThresholdPenalty - added to a signal once it crosses its threshold
	BelowThresholdPenalty float64
	// FinancialPenalty - fixed increment when any fee is outstanding
	FinancialPenalty float64

	// Tier cutoffs: HIGH >= HighCutoff, MEDIUM >= MediumCutoff,
	// LOW >= LowCutoff, SAFE below that.
	HighCutoff   float64
	MediumCutoff float64
	LowCutoff    float64

	// DefaultScore - score reported for a student with no records at all
	DefaultScore float64
}

// DefaultPolicy - the scoring constants shipped with the system
func DefaultPolicy() Policy {
	return Policy{
		AttendanceThreshold:   75,
		AcademicThreshold:     60,
		AttendanceWeight:      0.40,
		AcademicWeight:        0.40,
		BelowThresholdPenalty: 25,
		FinancialPenalty:      20,
		HighCutoff:            70,
		MediumCutoff:          40,
		LowCutoff:             15,
		DefaultScore:          50,
	}
}

var (
	policyOnce   sync.Once
	activePolicy Policy
)

// CurrentPolicy returns the policy loaded from the environment,
// falling back to the defaults. Loaded once per process.
func CurrentPolicy() Policy {
	policyOnce.Do(func() {
		activePolicy = PolicyFromEnv()
	})
	return activePolicy
}

// PolicyFromEnv overlays RISK_* environment variables on the defaults.
func PolicyFromEnv() Policy {
	p := DefaultPolicy()
	overlayFloat(&p.AttendanceThreshold, "RISK_ATTENDANCE_THRESHOLD")
	overlayFloat(&p.AcademicThreshold, "RISK_ACADEMIC_THRESHOLD")
	overlayFloat(&p.AttendanceWeight, "RISK_ATTENDANCE_WEIGHT")
	overlayFloat(&p.AcademicWeight, "RISK_ACADEMIC_WEIGHT")
	overlayFloat(&p.BelowThresholdPenalty, "RISK_BELOW_THRESHOLD_PENALTY")
	overlayFloat(&p.FinancialPenalty, "RISK_FINANCIAL_PENALTY")
	overlayFloat(&p.HighCutoff, "RISK_HIGH_CUTOFF")
	overlayFloat(&p.MediumCutoff, "RISK_MEDIUM_CUTOFF")
	overlayFloat(&p.LowCutoff, "RISK_LOW_CUTOFF")
	overlayFloat(&p.DefaultScore, "RISK_DEFAULT_SCORE")

	if p.HighCutoff <= p.MediumCutoff || p.MediumCutoff <= p.LowCutoff || p.LowCutoff < 0 {
		log.Println("⚠️ Invalid risk cutoffs in environment, reverting to defaults")
		return DefaultPolicy()
	}
	if p.AttendanceWeight < 0 || p.AcademicWeight < 0 ||
		p.BelowThresholdPenalty < 0 || p.FinancialPenalty < 0 || p.DefaultScore < 0 {
		log.Println("⚠️ Negative risk weight or penalty in environment, reverting to defaults")
		return DefaultPolicy()
	}
	return p
}

func overlayFloat(dst *float64, key string) {
	raw := os.Getenv(key)
	if raw == "" {
		return
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("⚠️ Ignoring %s=%q: %v", key, raw, err)
		return
	}
	*dst = v
}

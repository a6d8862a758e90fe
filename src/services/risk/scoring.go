package risk

import (
	"fmt"
	"log"
	"math"

	"Backend-EduPredict/src/models"
)

// Result - the outcome of scoring one student's record set.
// ComputeRisk is pure: identical inputs always produce an identical Result.
type Result struct {
	Score                float64
	Level                string
	DataStatus           string
	Factors              []string
	Recommendations      []string
	InterventionPriority string
}

// ComputeRisk combines the attendance, academic and financial signals into
// a 0-100 risk score and maps it onto a tier.
//
// A student with no records in any domain gets the policy's default score
// and LevelUnknown: no data is not the same as no risk.
func ComputeRisk(att []models.AttendanceRecord, asmt []models.AssessmentRecord, fees []models.FeeRecord, p Policy) Result {
	if len(att) == 0 && len(asmt) == 0 && len(fees) == 0 {
		return Result{
			Score:                p.DefaultScore,
			Level:                models.LevelUnknown,
			DataStatus:           models.DataStatusInsufficient,
			Factors:              []string{"No attendance, assessment, or fee records on file"},
			Recommendations:      []string{"Collect baseline data before the next review cycle"},
			InterventionPriority: models.PriorityModerate,
		}
	}

	var (
		weighted  float64
		weightSum float64
		factors   []string
		recs      []string
	)

	if len(att) > 0 {
		mean := meanAttendance(att)
		signal := clamp(100-mean, 0, 100)
		if mean < p.AttendanceThreshold {
			signal = clamp(signal+p.BelowThresholdPenalty, 0, 100)
			factors = append(factors, fmt.Sprintf("Average attendance %.1f%% is below the %.0f%% threshold", mean, p.AttendanceThreshold))
			recs = append(recs, "Schedule attendance counseling and notify the class mentor")
		}
		weighted += p.AttendanceWeight * signal
		weightSum += p.AttendanceWeight
	}

	if len(asmt) > 0 {
		mean := weightedAssessmentMean(asmt)
		signal := clamp(100-mean, 0, 100)
		if mean < p.AcademicThreshold {
			signal = clamp(signal+p.BelowThresholdPenalty, 0, 100)
			factors = append(factors, fmt.Sprintf("Weighted assessment average %.1f%% is below the %.0f%% threshold", mean, p.AcademicThreshold))
			recs = append(recs, "Arrange academic support and review repeated attempts per subject")
		}
		weighted += p.AcademicWeight * signal
		weightSum += p.AcademicWeight
	}

	score := 0.0
	if weightSum > 0 {
		// Renormalize over the present signals, then scale back to the
		// share the two academic signals hold in a fully-populated record.
		score = weighted / weightSum * (p.AttendanceWeight + p.AcademicWeight)
	}

	if n := outstandingFees(fees); n > 0 {
		score += p.FinancialPenalty
		factors = append(factors, fmt.Sprintf("%d outstanding fee payment(s)", n))
		recs = append(recs, "Refer the student to the financial assistance office")
	}

	// Round before mapping so the stored tier is always the tier of the
	// stored score.
	score = round1(clamp(score, 0, 100))
	level := LevelForScore(score, p)

	return Result{
		Score:                score,
		Level:                level,
		DataStatus:           models.DataStatusOK,
		Factors:              factors,
		Recommendations:      recs,
		InterventionPriority: priorityForLevel(level),
	}
}

// LevelForScore maps a score onto a tier. Monotonic: a higher score can
// never produce a less severe tier.
func LevelForScore(score float64, p Policy) string {
	switch {
	case score >= p.HighCutoff:
		return models.LevelHigh
	case score >= p.MediumCutoff:
		return models.LevelMedium
	case score >= p.LowCutoff:
		return models.LevelLow
	default:
		return models.LevelSafe
	}
}

func priorityForLevel(level string) string {
	switch level {
	case models.LevelHigh:
		return models.PriorityImmediate
	case models.LevelMedium:
		return models.PriorityModerate
	default:
		return models.PriorityLow
	}
}

func meanAttendance(att []models.AttendanceRecord) float64 {
	var sum float64
	for _, a := range att {
		sum += checkedPercentage(a.AttendancePercentage, "attendance", a.StudentID)
	}
	return sum / float64(len(att))
}

// weightedAssessmentMean averages assessment percentages weighted by attempt
// number, so a retake counts more than the first sitting.
func weightedAssessmentMean(asmt []models.AssessmentRecord) float64 {
	var sum, weights float64
	for _, a := range asmt {
		w := float64(a.AttemptNumber)
		if w < 1 {
			w = 1
		}
		sum += checkedPercentage(a.Percentage, "assessment", a.StudentID) * w
		weights += w
	}
	return sum / weights
}

func outstandingFees(fees []models.FeeRecord) int {
	n := 0
	for _, f := range fees {
		if f.IsOutstanding() {
			n++
		}
	}
	return n
}

// checkedPercentage guards the engine against malformed numerics that slip
// past row validation. Reaching this is an invariant violation: it is
// logged and the value clamped so one bad record cannot poison a score.
func checkedPercentage(v float64, kind, studentID string) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > 100 {
		log.Printf("❌ Computation invariant violated: %s percentage %v for student %s", kind, v, studentID)
		return clamp(v, 0, 100)
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	switch {
	case math.IsNaN(v):
		return lo
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

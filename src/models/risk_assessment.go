package models

import "time"

// Risk levels, ordered by severity. LevelUnknown marks a student whose
// record set is too thin to score meaningfully — reported as its own
// bucket, never folded into SAFE.
const (
	LevelSafe    = "SAFE"
	LevelLow     = "LOW"
	LevelMedium  = "MEDIUM"
	LevelHigh    = "HIGH"
	LevelUnknown = "UNKNOWN"
)

// Data status on an assessment.
const (
	DataStatusOK           = "ok"
	DataStatusInsufficient = "insufficient"
)

// Intervention priorities, derived from the risk level.
const (
	PriorityImmediate = "IMMEDIATE"
	PriorityModerate  = "MODERATE"
	PriorityLow       = "LOW"
)

// RiskAssessment - the single current risk result per student,
// overwritten on re-analysis
type RiskAssessment struct {
	ID                   string    `bson:"id" json:"id"`
	StudentID            string    `bson:"studentId" json:"studentId"`
	RiskScore            float64   `bson:"riskScore" json:"riskScore"`
	RiskLevel            string    `bson:"riskLevel" json:"riskLevel"`
	DataStatus           string    `bson:"dataStatus" json:"dataStatus"`
	RiskFactors          []string  `bson:"riskFactors" json:"riskFactors"`
	Recommendations      []string  `bson:"recommendations" json:"recommendations"`
	InterventionPriority string    `bson:"interventionPriority" json:"interventionPriority"`
	ComputedAt           time.Time `bson:"computedAt" json:"computedAt"`
}

// LevelSeverity maps a risk level to its ordering for dashboard sorting.
// Higher means more urgent. Unknown sorts between MEDIUM and LOW so that
// no-data students stay visible without outranking confirmed high risk.
func LevelSeverity(level string) int {
	switch level {
	case LevelHigh:
		return 4
	case LevelMedium:
		return 3
	case LevelUnknown:
		return 2
	case LevelLow:
		return 1
	default:
		return 0
	}
}

// AtRiskStudent - a risk assessment joined with the student summary
// for the at-risk dashboard list
type AtRiskStudent struct {
	StudentID            string    `bson:"studentId" json:"studentId"`
	Name                 string    `bson:"name" json:"name"`
	Course               string    `bson:"course" json:"course"`
	Semester             int       `bson:"semester" json:"semester"`
	RiskLevel            string    `bson:"riskLevel" json:"riskLevel"`
	RiskScore            float64   `bson:"riskScore" json:"riskScore"`
	DataStatus           string    `bson:"dataStatus" json:"dataStatus"`
	RiskFactors          []string  `bson:"riskFactors" json:"riskFactors"`
	InterventionPriority string    `bson:"interventionPriority" json:"interventionPriority"`
	ComputedAt           time.Time `bson:"computedAt" json:"computedAt"`
}

// DashboardOverview - derived counts, recomputed on every query.
// TotalStudents always equals the sum of the five buckets.
type DashboardOverview struct {
	TotalStudents       int64            `json:"totalStudents"`
	RiskDistribution    map[string]int64 `json:"riskDistribution"`
	UnreadNotifications int64            `json:"unreadNotifications"`
}

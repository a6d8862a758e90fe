package dashboard

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	DB "Backend-EduPredict/src/database"
	"Backend-EduPredict/src/models"
	"Backend-EduPredict/src/services/notifications"
	"Backend-EduPredict/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// overviewCacheTTL - how long a computed overview may be served stale.
const overviewCacheTTL = 30 * time.Second

// GetOverview recomputes the dashboard counts from the current population.
// Every student lands in exactly one bucket: their assessment's level, or
// UNKNOWN when they have not been scored yet. TotalStudents always equals
// the sum of the buckets.
func GetOverview(ctx context.Context) (*models.DashboardOverview, error) {
	if payload := utils.CachedOverview(); payload != nil {
		var cached models.DashboardOverview
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &cached, nil
		}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "risk_assessments",
			"localField":   "studentId",
			"foreignField": "studentId",
			"as":           "assessment",
		}}},
		{{Key: "$project", Value: bson.M{
			"level": bson.M{"$ifNull": bson.A{
				bson.M{"$arrayElemAt": bson.A{"$assessment.riskLevel", 0}},
				models.LevelUnknown,
			}},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$level",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := DB.StudentCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	counts := map[string]int64{}
	for cursor.Next(ctx) {
		var bucket struct {
			Level string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cursor.Decode(&bucket); err != nil {
			return nil, err
		}
		counts[bucket.Level] = bucket.Count
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	distribution, total := Distribution(counts)

	unread, err := notifications.UnreadCount(ctx)
	if err != nil {
		return nil, err
	}

	overview := &models.DashboardOverview{
		TotalStudents:       total,
		RiskDistribution:    distribution,
		UnreadNotifications: unread,
	}

	if payload, err := json.Marshal(overview); err == nil {
		utils.CacheOverview(payload, overviewCacheTTL)
	}

	return overview, nil
}

// Distribution normalizes raw per-level counts into the five dashboard
// buckets (all keys always present) and returns the population total.
func Distribution(counts map[string]int64) (map[string]int64, int64) {
	distribution := map[string]int64{
		"high":    counts[models.LevelHigh],
		"medium":  counts[models.LevelMedium],
		"low":     counts[models.LevelLow],
		"safe":    counts[models.LevelSafe],
		"unknown": counts[models.LevelUnknown],
	}

	var total int64
	for _, c := range distribution {
		total += c
	}
	return distribution, total
}

// GetAtRiskStudents returns every scored student outside SAFE, joined with
// the student summary and ordered by severity, then descending score.
// UNKNOWN students are included so missing data stays visible.
func GetAtRiskStudents(ctx context.Context) ([]models.AtRiskStudent, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"riskLevel": bson.M{"$ne": models.LevelSafe}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "students",
			"localField":   "studentId",
			"foreignField": "studentId",
			"as":           "student",
		}}},
		{{Key: "$unwind", Value: "$student"}},
		{{Key: "$project", Value: bson.M{
			"_id":                  0,
			"studentId":            1,
			"name":                 "$student.name",
			"course":               "$student.course",
			"semester":             "$student.semester",
			"riskLevel":            1,
			"riskScore":            1,
			"dataStatus":           1,
			"riskFactors":          1,
			"interventionPriority": 1,
			"computedAt":           1,
		}}},
	}

	cursor, err := DB.RiskAssessmentCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	atRisk := []models.AtRiskStudent{}
	if err := cursor.All(ctx, &atRisk); err != nil {
		return nil, err
	}

	SortByRisk(atRisk)
	return atRisk, nil
}

// SortByRisk orders by level severity first, then descending score, then
// student ID for a stable dashboard order.
func SortByRisk(students []models.AtRiskStudent) {
	sort.SliceStable(students, func(i, j int) bool {
		si, sj := models.LevelSeverity(students[i].RiskLevel), models.LevelSeverity(students[j].RiskLevel)
		if si != sj {
			return si > sj
		}
		if students[i].RiskScore != students[j].RiskScore {
			return students[i].RiskScore > students[j].RiskScore
		}
		return students[i].StudentID < students[j].StudentID
	})
}

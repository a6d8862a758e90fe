package risk

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	DB "Backend-EduPredict/src/database"
	"Backend-EduPredict/src/models"
	"Backend-EduPredict/src/services/notifications"
	"Backend-EduPredict/src/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrStudentNotFound - re-analysis was requested for an unknown student ID
var ErrStudentNotFound = errors.New("student not found")

// studentLocks serializes read-modify-write of one student's assessment.
// Concurrent re-analysis of different students stays parallel.
var studentLocks sync.Map // studentId -> *sync.Mutex

func lockFor(studentID string) *sync.Mutex {
	mu, _ := studentLocks.LoadOrStore(studentID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// AnalyzeStudent re-reads one student's full record set, recomputes the risk
// score, and replaces the current assessment. Idempotent: with unchanged
// underlying records the stored assessment is returned untouched, computed
// timestamp included.
func AnalyzeStudent(ctx context.Context, studentID string) (*models.RiskAssessment, error) {
	var student models.Student
	err := DB.StudentCollection.FindOne(ctx, bson.M{"studentId": studentID}).Decode(&student)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to load student %s: %w", studentID, err)
	}

	mu := lockFor(studentID)
	mu.Lock()
	defer mu.Unlock()

	att, asmt, fees, err := loadRecords(ctx, studentID)
	if err != nil {
		return nil, err
	}

	result := ComputeRisk(att, asmt, fees, CurrentPolicy())

	var existing *models.RiskAssessment
	var stored models.RiskAssessment
	err = DB.RiskAssessmentCollection.FindOne(ctx, bson.M{"studentId": studentID}).Decode(&stored)
	switch {
	case err == nil:
		existing = &stored
	case err == mongo.ErrNoDocuments:
		// first analysis for this student
	default:
		return nil, fmt.Errorf("failed to load current assessment: %w", err)
	}

	if existing != nil && sameResult(existing, result) {
		return existing, nil
	}

	assessment := models.RiskAssessment{
		ID:                   uuid.NewString(),
		StudentID:            studentID,
		RiskScore:            result.Score,
		RiskLevel:            result.Level,
		DataStatus:           result.DataStatus,
		RiskFactors:          result.Factors,
		Recommendations:      result.Recommendations,
		InterventionPriority: result.InterventionPriority,
		ComputedAt:           time.Now().UTC(),
	}
	if existing != nil {
		assessment.ID = existing.ID
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := DB.RiskAssessmentCollection.ReplaceOne(ctx, bson.M{"studentId": studentID}, assessment, opts); err != nil {
		return nil, fmt.Errorf("failed to store assessment: %w", err)
	}

	// Alert once on the transition into HIGH, not on every rerun.
	if result.Level == models.LevelHigh && (existing == nil || existing.RiskLevel != models.LevelHigh) {
		msg := fmt.Sprintf("HIGH RISK ALERT: %s requires immediate intervention", student.Name)
		if err := notifications.Create(ctx, studentID, msg, models.NotificationRiskAlert, "high"); err != nil {
			log.Println("⚠️ Failed to create risk alert notification:", err)
		}
	}

	utils.InvalidateOverviewCache()

	return &assessment, nil
}

// AnalyzeAll recomputes every student with a Student record. Returns the
// number of students analyzed.
func AnalyzeAll(ctx context.Context) (int, error) {
	cursor, err := DB.StudentCollection.Find(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to list students: %w", err)
	}
	defer cursor.Close(ctx)

	analyzed := 0
	for cursor.Next(ctx) {
		var student models.Student
		if err := cursor.Decode(&student); err != nil {
			log.Println("⚠️ Skipping undecodable student document:", err)
			continue
		}
		if _, err := AnalyzeStudent(ctx, student.StudentID); err != nil {
			log.Printf("⚠️ Failed to analyze student %s: %v", student.StudentID, err)
			continue
		}
		analyzed++
	}
	if err := cursor.Err(); err != nil {
		return analyzed, err
	}

	log.Printf("✅ Re-analyzed %d students", analyzed)
	return analyzed, nil
}

func loadRecords(ctx context.Context, studentID string) ([]models.AttendanceRecord, []models.AssessmentRecord, []models.FeeRecord, error) {
	filter := bson.M{"studentId": studentID}

	var att []models.AttendanceRecord
	cur, err := DB.AttendanceCollection.Find(ctx, filter)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load attendance: %w", err)
	}
	if err := cur.All(ctx, &att); err != nil {
		return nil, nil, nil, err
	}

	var asmt []models.AssessmentRecord
	cur, err = DB.AssessmentCollection.Find(ctx, filter)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load assessments: %w", err)
	}
	if err := cur.All(ctx, &asmt); err != nil {
		return nil, nil, nil, err
	}

	var fees []models.FeeRecord
	cur, err = DB.FeeCollection.Find(ctx, filter)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load fees: %w", err)
	}
	if err := cur.All(ctx, &fees); err != nil {
		return nil, nil, nil, err
	}

	return att, asmt, fees, nil
}

func sameResult(existing *models.RiskAssessment, r Result) bool {
	if existing.RiskScore != r.Score ||
		existing.RiskLevel != r.Level ||
		existing.DataStatus != r.DataStatus ||
		existing.InterventionPriority != r.InterventionPriority {
		return false
	}
	return equalStrings(existing.RiskFactors, r.Factors) && equalStrings(existing.Recommendations, r.Recommendations)
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

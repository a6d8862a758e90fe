// Package records serves the raw per-domain record listings backing the
// data-management pages. Read-only; ingestion owns all writes.
package records

import (
	"context"
	"time"

	DB "Backend-EduPredict/src/database"
	"Backend-EduPredict/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func listFilter(studentID string) bson.M {
	if studentID == "" {
		return bson.M{}
	}
	return bson.M{"studentId": studentID}
}

func page(ctx context.Context, collection *mongo.Collection, filter bson.M, params models.PaginationParams, out interface{}) (int64, error) {
	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, err
	}

	opts := options.Find().
		SetSort(params.GetSortOrder()).
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit))

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return 0, err
	}
	return total, nil
}

// ListAttendance returns a page of attendance records, optionally limited
// to one student.
func ListAttendance(params models.PaginationParams, studentID string) ([]models.AttendanceRecord, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	results := []models.AttendanceRecord{}
	total, err := page(ctx, DB.AttendanceCollection, listFilter(studentID), params, &results)
	return results, total, err
}

// ListAssessments returns a page of assessment records, optionally limited
// to one student.
func ListAssessments(params models.PaginationParams, studentID string) ([]models.AssessmentRecord, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	results := []models.AssessmentRecord{}
	total, err := page(ctx, DB.AssessmentCollection, listFilter(studentID), params, &results)
	return results, total, err
}

// ListFees returns a page of fee records, optionally limited to one student.
func ListFees(params models.PaginationParams, studentID string) ([]models.FeeRecord, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	results := []models.FeeRecord{}
	total, err := page(ctx, DB.FeeCollection, listFilter(studentID), params, &results)
	return results, total, err
}

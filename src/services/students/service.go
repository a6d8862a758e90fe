package students

import (
	"context"
	"errors"
	"time"

	DB "Backend-EduPredict/src/database"
	"Backend-EduPredict/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrStudentNotFound - lookup referenced an unknown student ID
var ErrStudentNotFound = errors.New("student not found")

// GetStudentsWithFilter returns a page of students matching the search and
// course filters.
func GetStudentsWithFilter(params models.PaginationParams, courses []string, semesters []int) ([]models.Student, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	filter := bson.M{}
	if params.Search != "" {
		regex := bson.M{"$regex": params.Search, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"name": regex},
			bson.M{"studentId": regex},
			bson.M{"email": regex},
		}
	}
	if len(courses) > 0 {
		filter["course"] = bson.M{"$in": courses}
	}
	if len(semesters) > 0 {
		filter["semester"] = bson.M{"$in": semesters}
	}

	total, err := DB.StudentCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(params.GetSortOrder()).
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit))

	cursor, err := DB.StudentCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	results := []models.Student{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, 0, err
	}

	return results, total, nil
}

// GetStudentByID returns one student with their current risk assessment,
// if any.
func GetStudentByID(studentID string) (*models.Student, *models.RiskAssessment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var student models.Student
	err := DB.StudentCollection.FindOne(ctx, bson.M{"studentId": studentID}).Decode(&student)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil, ErrStudentNotFound
		}
		return nil, nil, err
	}

	var assessment models.RiskAssessment
	err = DB.RiskAssessmentCollection.FindOne(ctx, bson.M{"studentId": studentID}).Decode(&assessment)
	switch {
	case err == nil:
		return &student, &assessment, nil
	case err == mongo.ErrNoDocuments:
		return &student, nil, nil
	default:
		return nil, nil, err
	}
}

package notifications

import (
	"context"
	"errors"
	"time"

	DB "Backend-EduPredict/src/database"
	"Backend-EduPredict/src/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotificationNotFound - mark-read referenced an unknown notification ID
var ErrNotificationNotFound = errors.New("notification not found")

// Create stores a new unread notification.
func Create(ctx context.Context, studentID, message, notifType, priority string) error {
	notification := models.Notification{
		ID:        uuid.NewString(),
		StudentID: studentID,
		Message:   message,
		Type:      notifType,
		Priority:  priority,
		IsRead:    false,
		CreatedAt: time.Now().UTC(),
	}
	_, err := DB.NotificationCollection.InsertOne(ctx, notification)
	return err
}

// List returns the most recent notifications, newest first.
func List(ctx context.Context, limit int64) ([]models.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(limit)
	cursor, err := DB.NotificationCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notifications := []models.Notification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead flags one notification as read.
func MarkRead(ctx context.Context, id string) error {
	result, err := DB.NotificationCollection.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"isRead": true}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

// UnreadCount - number of notifications not yet read, shown on the overview
func UnreadCount(ctx context.Context) (int64, error) {
	return DB.NotificationCollection.CountDocuments(ctx, bson.M{"isRead": false})
}

package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/scoutlink/player-platform/internal/core/domain"
)

const notificationCollection = "notifications"

type MongoNotificationRepository struct {
	coll *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) *MongoNotificationRepository {
	return &MongoNotificationRepository{coll: db.Collection(notificationCollection)}
}

type mongoNotification struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	RecipientID string             `bson:"recipient_id"`
	Kind        string             `bson:"kind"`
	Reference   string             `bson:"reference"`
	Body        string             `bson:"body"`
	Read        bool               `bson:"read"`
	CreatedAt   int64              `bson:"created_at"`
}

func (n mongoNotification) toDomain() domain.Notification {
	return domain.Notification{
		ID:          n.ID.Hex(),
		RecipientID: n.RecipientID,
		Kind:        domain.NotificationKind(n.Kind),
		Reference:   n.Reference,
		Body:        n.Body,
		Read:        n.Read,
		CreatedAt:   unixToTime(n.CreatedAt),
	}
}

func (r *MongoNotificationRepository) Insert(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	doc := mongoNotification{
		RecipientID: n.RecipientID,
		Kind:        string(n.Kind),
		Reference:   n.Reference,
		Body:        n.Body,
		Read:        n.Read,
		CreatedAt:   n.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert notification: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	inserted := doc.toDomain()
	return &inserted, nil
}

// ListByRecipient returns the recipient's notifications, unread first, then
// newest first.
func (r *MongoNotificationRepository) ListByRecipient(ctx context.Context, recipientID string) ([]domain.Notification, error) {
	sort := bson.D{{Key: "read", Value: 1}, {Key: "created_at", Value: -1}}
	cur, err := r.coll.Find(ctx, bson.M{"recipient_id": recipientID}, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("find notifications: %w", err)
	}
	defer cur.Close(ctx)

	var notifications []domain.Notification
	for cur.Next(ctx) {
		var n mongoNotification
		if err := cur.Decode(&n); err != nil {
			return nil, fmt.Errorf("decode notification: %w", err)
		}
		notifications = append(notifications, n.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}
	return notifications, nil
}

func (r *MongoNotificationRepository) MarkRead(ctx context.Context, id, recipientID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotificationNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "recipient_id": recipientID},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}

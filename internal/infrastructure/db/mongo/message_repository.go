package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/scoutlink/player-platform/internal/core/domain"
)

const messageCollection = "messages"

type MongoMessageRepository struct {
	coll *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) *MongoMessageRepository {
	return &MongoMessageRepository{coll: db.Collection(messageCollection)}
}

type mongoMessage struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	SenderID    string             `bson:"sender_id"`
	RecipientID string             `bson:"recipient_id"`
	Body        string             `bson:"body"`
	SentAt      int64              `bson:"sent_at"`
}

func (m mongoMessage) toDomain() domain.Message {
	return domain.Message{
		ID:          m.ID.Hex(),
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Body:        m.Body,
		SentAt:      unixToTime(m.SentAt),
	}
}

func (r *MongoMessageRepository) Insert(ctx context.Context, msg *domain.Message) (*domain.Message, error) {
	doc := mongoMessage{
		SenderID:    msg.SenderID,
		RecipientID: msg.RecipientID,
		Body:        msg.Body,
		SentAt:      msg.SentAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	inserted := doc.toDomain()
	return &inserted, nil
}

func (r *MongoMessageRepository) Thread(ctx context.Context, userA, userB string) ([]domain.Message, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"sender_id": userA, "recipient_id": userB},
		bson.M{"sender_id": userB, "recipient_id": userA},
	}}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "sent_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find thread: %w", err)
	}
	defer cur.Close(ctx)

	var messages []domain.Message
	for cur.Next(ctx) {
		var m mongoMessage
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode message: %w", err)
		}
		messages = append(messages, m.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate thread: %w", err)
	}
	return messages, nil
}

// CounterpartIDs returns the distinct users the given user has exchanged
// messages with, in either direction.
func (r *MongoMessageRepository) CounterpartIDs(ctx context.Context, userID string) ([]string, error) {
	seen := make(map[string]struct{})

	sent, err := r.coll.Distinct(ctx, "recipient_id", bson.M{"sender_id": userID})
	if err != nil {
		return nil, fmt.Errorf("distinct recipients: %w", err)
	}
	received, err := r.coll.Distinct(ctx, "sender_id", bson.M{"recipient_id": userID})
	if err != nil {
		return nil, fmt.Errorf("distinct senders: %w", err)
	}

	var ids []string
	for _, raw := range append(sent, received...) {
		id, ok := raw.(string)
		if !ok || id == userID {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}

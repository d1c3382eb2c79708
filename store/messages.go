package store

import (
	"context"
	"time"

	"bandhan/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MessageStore provides chat message persistence. Messages are append-only;
// there is no update or delete path.
type MessageStore struct {
	coll *mongo.Collection
}

func NewMessageStore(coll *mongo.Collection) *MessageStore {
	return &MessageStore{coll: coll}
}

// HistoryFilter matches every message exchanged between the two users in
// either direction, so both participants retrieve the identical conversation.
func HistoryFilter(a, b primitive.ObjectID) bson.M {
	return bson.M{
		"$or": []bson.M{
			{"senderId": a, "receiverId": b},
			{"senderId": b, "receiverId": a},
		},
	}
}

// Insert persists one message with a server-assigned timestamp and returns
// the stored record.
func (s *MessageStore) Insert(ctx context.Context, senderID, receiverID primitive.ObjectID, text string) (*models.ChatMessage, error) {
	msg := &models.ChatMessage{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Message:    text,
		Timestamp:  time.Now().UTC(),
	}

	result, err := s.coll.InsertOne(ctx, msg)
	if err != nil {
		return nil, err
	}

	msg.ID = result.InsertedID.(primitive.ObjectID)
	return msg, nil
}

// History returns the full conversation between two users, oldest first. An
// empty conversation yields an empty slice, never nil.
func (s *MessageStore) History(ctx context.Context, a, b primitive.ObjectID) ([]models.ChatMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})

	cursor, err := s.coll.Find(ctx, HistoryFilter(a, b), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	messages := []models.ChatMessage{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

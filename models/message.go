package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatMessage is one persisted message between two users. Sender and receiver
// are plain references; nothing checks them against the users collection.
// Records are written once and never updated or deleted.
type ChatMessage struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SenderID   primitive.ObjectID `bson:"senderId" json:"senderId"`
	ReceiverID primitive.ObjectID `bson:"receiverId" json:"receiverId"`
	Message    string             `bson:"message" json:"message"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
}

package models

import (
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Conversation is a two-party chat thread. Chats are append-only and kept in
// insertion order.
type Conversation struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	ParticipantsKey string             `bson:"participantsId"`
	Participants    []string           `bson:"participants"`
	Chats           []Chat             `bson:"chats"`
	CreatedAt       time.Time          `bson:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt"`
}

// Chat is a single entry in a conversation log. Content is either text or a
// media URL.
type Chat struct {
	ID        primitive.ObjectID `bson:"_id"`
	SentBy    string             `bson:"sentBy"`
	Content   string             `bson:"content"`
	Timestamp time.Time          `bson:"timestamp"`
	Viewed    bool               `bson:"viewed"`
}

// ConversationDigest is the per-conversation row produced when summarizing a
// viewer's inbox.
type ConversationDigest struct {
	ID           primitive.ObjectID `bson:"_id"`
	Participants []string           `bson:"participants"`
	LastChat     Chat               `bson:"lastChat"`
	UnreadCount  int                `bson:"unreadCount"`
}

// ParticipantsKey returns the order-independent key identifying the
// conversation between a and b.
func ParticipantsKey(a, b string) string {
	ids := []string{a, b}
	sort.Strings(ids)
	return strings.Join(ids, "_")
}

// HasParticipant reports whether userID takes part in the conversation.
func (c *Conversation) HasParticipant(userID string) bool {
	for _, p := range c.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

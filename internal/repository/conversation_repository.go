package repository

import (
	"context"
	"errors"
	"time"

	"secondhand/market-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const conversationCollection = "conversations"

// ErrNotFound is returned when the addressed record does not exist.
var ErrNotFound = errors.New("record not found")

type ConversationRepository interface {
	EnsureIndexes(ctx context.Context) error
	Upsert(ctx context.Context, key string, participants []string) (*models.Conversation, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Conversation, error)
	AppendChat(ctx context.Context, id primitive.ObjectID, chat models.Chat) error
	MarkSeen(ctx context.Context, id primitive.ObjectID, peerID string) error
	ListDigests(ctx context.Context, userID string) ([]models.ConversationDigest, error)
}

type conversationRepository struct {
	coll *mongo.Collection
}

func NewConversationRepository(db *mongo.Database) ConversationRepository {
	return &conversationRepository{
		coll: db.Collection(conversationCollection),
	}
}

// EnsureIndexes creates the unique participants key index that makes
// find-or-create race safe.
func (r *conversationRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "participantsId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_participants_id"),
		},
		{
			Keys:    bson.D{{Key: "participants", Value: 1}, {Key: "updatedAt", Value: -1}},
			Options: options.Index().SetName("idx_participants_updated"),
		},
	})
	return err
}

func (r *conversationRepository) Upsert(ctx context.Context, key string, participants []string) (*models.Conversation, error) {
	now := time.Now().UTC()
	filter := bson.M{"participantsId": key}
	update := bson.M{
		"$setOnInsert": bson.M{
			"participantsId": key,
			"participants":   participants,
			"chats":          bson.A{},
			"createdAt":      now,
			"updatedAt":      now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var conv models.Conversation
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&conv)
	if mongo.IsDuplicateKeyError(err) {
		// A concurrent upsert inserted the same key first.
		err = r.coll.FindOne(ctx, filter).Decode(&conv)
	}
	if err != nil {
		return nil, err
	}

	return &conv, nil
}

func (r *conversationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Conversation, error) {
	var conv models.Conversation
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&conv)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &conv, nil
}

func (r *conversationRepository) AppendChat(ctx context.Context, id primitive.ObjectID, chat models.Chat) error {
	update := bson.M{
		"$push": bson.M{"chats": chat},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *conversationRepository) MarkSeen(ctx context.Context, id primitive.ObjectID, peerID string) error {
	update := bson.M{
		"$set": bson.M{"chats.$[elem].viewed": true},
	}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"elem.sentBy": peerID, "elem.viewed": false}},
	})

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update, opts)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

// ListDigests returns, for every non-empty conversation of userID, the last
// chat and the number of chats from the peer that are still unviewed.
func (r *conversationRepository) ListDigests(ctx context.Context, userID string) ([]models.ConversationDigest, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"participants": userID,
			"chats.0":      bson.M{"$exists": true},
		}}},
		{{Key: "$sort", Value: bson.M{"updatedAt": -1}}},
		{{Key: "$project", Value: bson.M{
			"participants": 1,
			"lastChat":     bson.M{"$arrayElemAt": bson.A{"$chats", -1}},
			"unreadCount": bson.M{"$size": bson.M{"$filter": bson.M{
				"input": "$chats",
				"as":    "chat",
				"cond": bson.M{"$and": bson.A{
					bson.M{"$eq": bson.A{"$$chat.viewed", false}},
					bson.M{"$ne": bson.A{"$$chat.sentBy", userID}},
				}},
			}}},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var digests []models.ConversationDigest
	if err := cursor.All(ctx, &digests); err != nil {
		return nil, err
	}

	return digests, nil
}

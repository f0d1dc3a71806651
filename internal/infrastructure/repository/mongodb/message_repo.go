package mongodb

import (
	"context"
	"fmt"

	"github.com/mikiasgoitom/portfolio/internal/domain/contract"
	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MessageRepository struct {
	collection *mongo.Collection
}

var _ contract.IMessageRepository = (*MessageRepository)(nil)

func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{collection: db.Collection("messages")}
}

func (r *MessageRepository) CreateMessage(ctx context.Context, msg *entity.Message) error {
	if _, err := r.collection.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// GetMessages returns all messages, newest first.
func (r *MessageRepository) GetMessages(ctx context.Context) ([]*entity.Message, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve messages: %w", err)
	}
	defer cursor.Close(ctx)

	messages := []*entity.Message{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}
	return messages, nil
}

func (r *MessageRepository) MarkAsRead(ctx context.Context, messageID string) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": messageID}, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return fmt.Errorf("failed to mark message as read: %w", err)
	}
	if res.MatchedCount == 0 {
		return entity.ErrMessageNotFound
	}
	return nil
}

func (r *MessageRepository) DeleteMessage(ctx context.Context, messageID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": messageID})
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	if res.DeletedCount == 0 {
		return entity.ErrMessageNotFound
	}
	return nil
}

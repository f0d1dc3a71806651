package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mikiasgoitom/portfolio/internal/domain/contract"
	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// heroDocumentID pins the hero section to a single document.
const heroDocumentID = "hero"

type HeroRepository struct {
	collection *mongo.Collection
}

var _ contract.IHeroRepository = (*HeroRepository)(nil)

func NewHeroRepository(db *mongo.Database) *HeroRepository {
	return &HeroRepository{collection: db.Collection("hero")}
}

func (r *HeroRepository) GetHero(ctx context.Context) (*entity.HeroContent, error) {
	var hero entity.HeroContent
	if err := r.collection.FindOne(ctx, bson.M{"_id": heroDocumentID}).Decode(&hero); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrHeroNotFound
		}
		return nil, fmt.Errorf("failed to retrieve hero content: %w", err)
	}
	return &hero, nil
}

// UpsertHero replaces the stored hero fields and returns the saved document.
func (r *HeroRepository) UpsertHero(ctx context.Context, hero *entity.HeroContent) (*entity.HeroContent, error) {
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"title":       hero.Title,
			"subtitle":    hero.Subtitle,
			"description": hero.Description,
			"image_url":   hero.ImageURL,
			"cta_text":    hero.CTAText,
			"cta_link":    hero.CTALink,
			"updated_at":  now,
		},
		"$setOnInsert": bson.M{"created_at": now},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var saved entity.HeroContent
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": heroDocumentID}, update, opts).Decode(&saved)
	if err != nil {
		return nil, fmt.Errorf("failed to save hero content: %w", err)
	}
	return &saved, nil
}

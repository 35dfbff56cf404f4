package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/esignstudio/studio_backend/models"
)

type mongoCarousel struct {
	collection *mongo.Collection
}

func (r *mongoCarousel) Create(ctx context.Context, slide *models.CarouselSlide) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	applySlideDefaults(slide)
	now := time.Now()
	slide.CreatedAt = now
	slide.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, slide)
	if err != nil {
		return translate(err)
	}
	slide.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoCarousel) All(ctx context.Context) ([]models.CarouselSlide, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoCarousel) Active(ctx context.Context) ([]models.CarouselSlide, error) {
	return r.find(ctx, bson.M{"isActive": true})
}

func (r *mongoCarousel) find(ctx context.Context, filter bson.M) ([]models.CarouselSlide, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, translate(err)
	}
	defer cursor.Close(ctx)

	slides := []models.CarouselSlide{}
	if err := cursor.All(ctx, &slides); err != nil {
		return nil, translate(err)
	}
	return slides, nil
}

func (r *mongoCarousel) Update(ctx context.Context, id string, slide *models.CarouselSlide) error {
	slideID, err := oid(id)
	if err != nil {
		return err
	}

	ctx, cancel := opCtx(ctx)
	defer cancel()

	fields := bson.M{
		"title":     slide.Title,
		"subtitle":  slide.Subtitle,
		"linkUrl":   slide.LinkURL,
		"order":     slide.Order,
		"isActive":  slide.IsActive,
		"updatedAt": time.Now(),
	}
	// A replacement image is only part of the edit when one was uploaded.
	if slide.ImagePath != "" {
		fields["imagePath"] = slide.ImagePath
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": slideID}, bson.M{"$set": fields})
	if err != nil {
		return translate(err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoCarousel) Delete(ctx context.Context, id string) error {
	slideID, err := oid(id)
	if err != nil {
		return err
	}

	ctx, cancel := opCtx(ctx)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": slideID})
	if err != nil {
		return translate(err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func applySlideDefaults(slide *models.CarouselSlide) {
	if slide.LinkURL == "" {
		slide.LinkURL = models.DefaultSlideLink
	}
	if slide.Order < 0 {
		slide.Order = 0
	}
}

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

type mongoServices struct {
	collection *mongo.Collection
}

func (r *mongoServices) Create(ctx context.Context, service *models.Service) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	applyServiceDefaults(service)
	now := time.Now()
	service.CreatedAt = now
	service.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, service)
	if err != nil {
		return translate(err)
	}
	service.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoServices) All(ctx context.Context) ([]models.Service, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoServices) Active(ctx context.Context) ([]models.Service, error) {
	return r.find(ctx, bson.M{"isActive": true})
}

func (r *mongoServices) find(ctx context.Context, filter bson.M) ([]models.Service, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, translate(err)
	}
	defer cursor.Close(ctx)

	services := []models.Service{}
	if err := cursor.All(ctx, &services); err != nil {
		return nil, translate(err)
	}
	return services, nil
}

func (r *mongoServices) ByID(ctx context.Context, id string) (*models.Service, error) {
	serviceID, err := oid(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := opCtx(ctx)
	defer cancel()

	var service models.Service
	if err := r.collection.FindOne(ctx, bson.M{"_id": serviceID}).Decode(&service); err != nil {
		return nil, translate(err)
	}
	return &service, nil
}

func (r *mongoServices) Update(ctx context.Context, id string, service *models.Service) error {
	serviceID, err := oid(id)
	if err != nil {
		return err
	}

	ctx, cancel := opCtx(ctx)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"title":       service.Title,
			"description": service.Description,
			"icon":        service.Icon,
			"price":       service.Price,
			"features":    service.Features,
			"isActive":    service.IsActive,
			"order":       service.Order,
			"updatedAt":   time.Now(),
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": serviceID}, update)
	if err != nil {
		return translate(err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoServices) SetImage(ctx context.Context, id, imagePath string) error {
	serviceID, err := oid(id)
	if err != nil {
		return err
	}

	ctx, cancel := opCtx(ctx)
	defer cancel()

	update := bson.M{"$set": bson.M{"imagePath": imagePath, "updatedAt": time.Now()}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": serviceID}, update)
	if err != nil {
		return translate(err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoServices) Delete(ctx context.Context, id string) error {
	serviceID, err := oid(id)
	if err != nil {
		return err
	}

	ctx, cancel := opCtx(ctx)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": serviceID})
	if err != nil {
		return translate(err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func applyServiceDefaults(service *models.Service) {
	if service.Icon == "" {
		service.Icon = models.DefaultServiceIcon
	}
	if service.Features == nil {
		service.Features = []string{}
	}
	if service.Order < 0 {
		service.Order = 0
	}
}

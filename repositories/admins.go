package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/esignstudio/studio_backend/models"
)

type mongoAdmins struct {
	collection *mongo.Collection
}

func (r *mongoAdmins) Create(ctx context.Context, admin *models.Admin) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	now := time.Now()
	admin.CreatedAt = now
	admin.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, admin)
	if err != nil {
		return translate(err)
	}
	admin.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoAdmins) First(ctx context.Context) (*models.Admin, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var admin models.Admin
	if err := r.collection.FindOne(ctx, bson.M{}).Decode(&admin); err != nil {
		return nil, translate(err)
	}
	return &admin, nil
}

func (r *mongoAdmins) ByEmail(ctx context.Context, email string) (*models.Admin, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var admin models.Admin
	if err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&admin); err != nil {
		return nil, translate(err)
	}
	return &admin, nil
}

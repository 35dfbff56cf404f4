package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/esignstudio/studio_backend/models"
)

type mongoUsers struct {
	collection *mongo.Collection
}

func (r *mongoUsers) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return translate(err)
	}
	user.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoUsers) ByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var user models.User
	if err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *mongoUsers) ByID(ctx context.Context, id string) (*models.User, error) {
	userID, err := oid(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := opCtx(ctx)
	defer cancel()

	var user models.User
	if err := r.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

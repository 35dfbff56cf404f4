package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/esignstudio/studio_backend/models"
)

type mongoBookings struct {
	collection *mongo.Collection
}

func (r *mongoBookings) Create(ctx context.Context, booking *models.Booking) error {
	if booking.Status == "" {
		booking.Status = models.BookingStatusPending
	}
	if !models.IsValidBookingStatus(booking.Status) {
		return fmt.Errorf("invalid booking status %q", booking.Status)
	}

	ctx, cancel := opCtx(ctx)
	defer cancel()

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, booking)
	if err != nil {
		return translate(err)
	}
	booking.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoBookings) AllDetailed(ctx context.Context) ([]models.BookingDetail, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	pipeline := []bson.M{
		{"$sort": bson.M{"createdAt": -1}},
		{"$lookup": bson.M{
			"from":         "users",
			"localField":   "userId",
			"foreignField": "_id",
			"as":           "user",
		}},
		{"$unwind": "$user"},
		{"$lookup": bson.M{
			"from":         "services",
			"localField":   "serviceId",
			"foreignField": "_id",
			"as":           "service",
		}},
		{"$unwind": "$service"},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, translate(err)
	}
	defer cursor.Close(ctx)

	bookings := []models.BookingDetail{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, translate(err)
	}
	return bookings, nil
}

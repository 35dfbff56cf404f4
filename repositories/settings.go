package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/esignstudio/studio_backend/models"
)

type mongoSettings struct {
	collection *mongo.Collection
}

func (r *mongoSettings) Get(ctx context.Context) (*models.SiteSettings, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var settings models.SiteSettings
	if err := r.collection.FindOne(ctx, bson.M{}).Decode(&settings); err != nil {
		return nil, translate(err)
	}
	return &settings, nil
}

func (r *mongoSettings) Upsert(ctx context.Context, settings *models.SiteSettings) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"siteName":     settings.SiteName,
			"siteTitle":    settings.SiteTitle,
			"projectTitle": settings.ProjectTitle,
			"heroTitle":    settings.HeroTitle,
			"heroSubtitle": settings.HeroSubtitle,
			"email":        settings.Email,
			"phone":        settings.Phone,
			"aboutText":    settings.AboutText,
			"updatedAt":    time.Now(),
		},
		"$setOnInsert": bson.M{
			"logoPath":  settings.LogoPath,
			"createdAt": time.Now(),
		},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{}, update, options.Update().SetUpsert(true))
	return translate(err)
}

func (r *mongoSettings) SetLogo(ctx context.Context, logoPath string) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	update := bson.M{
		"$set":         bson.M{"logoPath": logoPath, "updatedAt": time.Now()},
		"$setOnInsert": bson.M{"createdAt": time.Now()},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{}, update, options.Update().SetUpsert(true))
	return translate(err)
}

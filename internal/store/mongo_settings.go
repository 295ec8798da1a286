package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rammo-backend/internal/models"
)

// The settings collection holds a single document under a fixed key.
const settingsDocID = "site"

type MongoSettings struct {
	db *mongo.Database
}

func NewMongoSettings(db *mongo.Database) *MongoSettings {
	return &MongoSettings{db: db}
}

func (s *MongoSettings) collection() *mongo.Collection {
	return s.db.Collection("settings")
}

func (s *MongoSettings) Get(ctx context.Context) (models.SiteSettings, error) {
	var doc struct {
		Settings models.SiteSettings `bson:"settings"`
	}
	err := s.collection().FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return models.DefaultSiteSettings(), nil
	}
	if err != nil {
		return models.SiteSettings{}, err
	}
	return doc.Settings, nil
}

func (s *MongoSettings) Update(ctx context.Context, settings models.SiteSettings) error {
	update := bson.M{"$set": bson.M{"settings": settings}}
	opts := options.Update().SetUpsert(true)

	_, err := s.collection().UpdateOne(ctx, bson.M{"_id": settingsDocID}, update, opts)
	return err
}

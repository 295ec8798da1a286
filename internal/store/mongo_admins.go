package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"rammo-backend/internal/models"
)

type MongoAdmins struct {
	db *mongo.Database
}

func NewMongoAdmins(db *mongo.Database) *MongoAdmins {
	return &MongoAdmins{db: db}
}

func (s *MongoAdmins) FetchByEmail(ctx context.Context, email string) (models.Admin, error) {
	var admin models.Admin
	err := s.db.Collection("admins").FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err == mongo.ErrNoDocuments {
		return models.Admin{}, ErrNotFound
	}
	if err != nil {
		return models.Admin{}, err
	}
	return admin, nil
}

package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rammo-backend/internal/models"
)

type MongoProducts struct {
	db *mongo.Database
}

func NewMongoProducts(db *mongo.Database) *MongoProducts {
	return &MongoProducts{db: db}
}

func (s *MongoProducts) collection() *mongo.Collection {
	return s.db.Collection("products")
}

func (s *MongoProducts) FetchActive(ctx context.Context) ([]models.Product, error) {
	filter := bson.M{"isActive": bson.M{"$ne": false}}
	return s.fetch(ctx, filter)
}

func (s *MongoProducts) FetchAll(ctx context.Context) ([]models.Product, error) {
	return s.fetch(ctx, bson.M{})
}

func (s *MongoProducts) fetch(ctx context.Context, filter bson.M) ([]models.Product, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.collection().Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *MongoProducts) FetchByID(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	var product models.Product
	err := s.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (s *MongoProducts) Create(ctx context.Context, product models.Product) (models.Product, error) {
	product.ID = primitive.NilObjectID
	product.CreatedAt = time.Now().UTC()

	res, err := s.collection().InsertOne(ctx, product)
	if err != nil {
		return models.Product{}, err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		product.ID = id
	}
	return product, nil
}

func (s *MongoProducts) Update(ctx context.Context, id primitive.ObjectID, product models.Product) (models.Product, error) {
	update := bson.M{"$set": bson.M{
		"name":        product.Name,
		"description": product.Description,
		"price":       product.Price,
		"image":       product.Image,
		"sizes":       product.Sizes,
		"stock":       product.Stock,
		"isActive":    product.IsActive,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Product
	err := s.collection().FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		return models.Product{}, err
	}
	return updated, nil
}

func (s *MongoProducts) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := s.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

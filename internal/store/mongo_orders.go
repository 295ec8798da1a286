package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rammo-backend/internal/models"
)

type MongoOrders struct {
	db *mongo.Database
}

func NewMongoOrders(db *mongo.Database) *MongoOrders {
	return &MongoOrders{db: db}
}

func (s *MongoOrders) collection() *mongo.Collection {
	return s.db.Collection("orders")
}

func (s *MongoOrders) Fetch(ctx context.Context) ([]models.Order, error) {
	return s.fetch(ctx, bson.M{})
}

func (s *MongoOrders) FetchByContact(ctx context.Context, contact string) ([]models.Order, error) {
	return s.fetch(ctx, bson.M{"contact": contact})
}

func (s *MongoOrders) fetch(ctx context.Context, filter bson.M) ([]models.Order, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.collection().Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *MongoOrders) FetchByID(ctx context.Context, id primitive.ObjectID) (models.Order, error) {
	var order models.Order
	err := s.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return models.Order{}, ErrNotFound
	}
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (s *MongoOrders) Create(ctx context.Context, order models.Order) (models.Order, error) {
	order.ID = primitive.NilObjectID
	order.Reference = uuid.NewString()
	order.Status = models.StatusPending
	order.CreatedAt = time.Now().UTC()

	res, err := s.collection().InsertOne(ctx, order)
	if err != nil {
		return models.Order{}, err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		order.ID = id
	}
	return order, nil
}

func (s *MongoOrders) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.Status) (models.Order, error) {
	order, err := s.FetchByID(ctx, id)
	if err != nil {
		return models.Order{}, err
	}

	if !models.CanTransition(order.Status, status) {
		return models.Order{}, ErrInvalidTransition
	}

	if order.Status == status {
		return order, nil
	}

	// Filter on the current status so a concurrent update cannot sneak the
	// order through a skipped step.
	filter := bson.M{"_id": id, "status": order.Status}
	update := bson.M{"$set": bson.M{"status": status}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Order
	err = s.collection().FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return models.Order{}, ErrInvalidTransition
	}
	if err != nil {
		return models.Order{}, err
	}
	return updated, nil
}

func (s *MongoOrders) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := s.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

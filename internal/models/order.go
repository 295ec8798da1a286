package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
)

var nextStatus = map[Status]Status{
	StatusPending:    StatusProcessing,
	StatusProcessing: StatusCompleted,
}

// Valid reports whether s is one of the known order statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted:
		return true
	}
	return false
}

// CanTransition reports whether an order may move from one status to
// another. Orders only move forward, one step at a time; setting the same
// status again is allowed as a no-op.
func CanTransition(from, to Status) bool {
	if from == to {
		return from.Valid()
	}
	return nextStatus[from] == to
}

// OrderItem is a single line of an order. Name and Price are captured from
// the catalog at order time, so later catalog edits never rewrite history.
type OrderItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Name      string             `bson:"name" json:"name"`
	Size      string             `bson:"size" json:"size"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	Price     int64              `bson:"price" json:"price"`
}

// Order is the persisted order document. Contact (email or phone) doubles
// as the customer identity for guests without a customer id.
type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Reference    string             `bson:"reference" json:"reference"`
	CustomerID   string             `bson:"customerId,omitempty" json:"customerId,omitempty"`
	CustomerName string             `bson:"customerName" json:"customerName"`
	Contact      string             `bson:"contact" json:"contact"`
	Items        []OrderItem        `bson:"items" json:"items"`
	Notes        string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Status       Status             `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

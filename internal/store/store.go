// Package store holds the persistence contract for the storefront. Handlers
// and the aggregation code only ever see these interfaces, so everything
// above this layer can run against fixtures.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"rammo-backend/internal/models"
)

var (
	// ErrNotFound is returned when a referenced document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition is returned when an order status update would
	// move the order backward or skip a step.
	ErrInvalidTransition = errors.New("invalid status transition")
)

type ProductStore interface {
	// FetchActive returns catalog products visible to the storefront.
	FetchActive(ctx context.Context) ([]models.Product, error)
	// FetchAll returns every product, active or not, for the admin panel.
	FetchAll(ctx context.Context) ([]models.Product, error)
	FetchByID(ctx context.Context, id primitive.ObjectID) (models.Product, error)
	Create(ctx context.Context, product models.Product) (models.Product, error)
	Update(ctx context.Context, id primitive.ObjectID, product models.Product) (models.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type OrderStore interface {
	Fetch(ctx context.Context) ([]models.Order, error)
	FetchByID(ctx context.Context, id primitive.ObjectID) (models.Order, error)
	// FetchByContact returns every order submitted under a contact string,
	// newest first.
	FetchByContact(ctx context.Context, contact string) ([]models.Order, error)
	// Create assigns the id, reference and creation timestamp and forces
	// the initial status to pending.
	Create(ctx context.Context, order models.Order) (models.Order, error)
	// UpdateStatus applies a forward-only status transition. It returns
	// ErrNotFound for unknown orders and ErrInvalidTransition for
	// disallowed edges.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.Status) (models.Order, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type SettingsStore interface {
	// Get returns the saved settings, or the defaults when none exist yet.
	Get(ctx context.Context) (models.SiteSettings, error)
	Update(ctx context.Context, settings models.SiteSettings) error
}

type AdminStore interface {
	FetchByEmail(ctx context.Context, email string) (models.Admin, error)
}

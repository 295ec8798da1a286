package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"rammo-backend/internal/models"
)

// The memory stores implement the same interfaces as the Mongo ones over
// in-process slices. They back the handler tests and make the whole API
// runnable against fixtures.

type MemoryProducts struct {
	mu       sync.Mutex
	products []models.Product
	now      func() time.Time
}

func NewMemoryProducts() *MemoryProducts {
	return &MemoryProducts{now: time.Now}
}

func (m *MemoryProducts) FetchActive(ctx context.Context) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []models.Product{}
	for _, p := range m.products {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MemoryProducts) FetchAll(ctx context.Context) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Product{}, m.products...), nil
}

func (m *MemoryProducts) FetchByID(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

func (m *MemoryProducts) Create(ctx context.Context, product models.Product) (models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	product.ID = primitive.NewObjectID()
	product.CreatedAt = m.now().UTC()
	m.products = append(m.products, product)
	return product, nil
}

func (m *MemoryProducts) Update(ctx context.Context, id primitive.ObjectID, product models.Product) (models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, p := range m.products {
		if p.ID == id {
			product.ID = p.ID
			product.CreatedAt = p.CreatedAt
			m.products[i] = product
			return product, nil
		}
	}
	return models.Product{}, ErrNotFound
}

func (m *MemoryProducts) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, p := range m.products {
		if p.ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type MemoryOrders struct {
	mu     sync.Mutex
	orders []models.Order
	now    func() time.Time
}

func NewMemoryOrders() *MemoryOrders {
	return &MemoryOrders{now: time.Now}
}

// SetClock overrides the timestamp source; tests use it to pin createdAt.
func (m *MemoryOrders) SetClock(now func() time.Time) {
	m.now = now
}

func (m *MemoryOrders) Fetch(ctx context.Context) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Order{}, m.orders...), nil
}

func (m *MemoryOrders) FetchByID(ctx context.Context, id primitive.ObjectID) (models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, o := range m.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, ErrNotFound
}

func (m *MemoryOrders) FetchByContact(ctx context.Context, contact string) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []models.Order{}
	for _, o := range m.orders {
		if o.Contact == contact {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *MemoryOrders) Create(ctx context.Context, order models.Order) (models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	order.ID = primitive.NewObjectID()
	order.Reference = uuid.NewString()
	order.Status = models.StatusPending
	order.CreatedAt = m.now().UTC()
	m.orders = append(m.orders, order)
	return order, nil
}

func (m *MemoryOrders) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.Status) (models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, o := range m.orders {
		if o.ID != id {
			continue
		}
		if !models.CanTransition(o.Status, status) {
			return models.Order{}, ErrInvalidTransition
		}
		m.orders[i].Status = status
		return m.orders[i], nil
	}
	return models.Order{}, ErrNotFound
}

func (m *MemoryOrders) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, o := range m.orders {
		if o.ID == id {
			m.orders = append(m.orders[:i], m.orders[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// Seed inserts an order as-is, keeping its status and timestamp.
func (m *MemoryOrders) Seed(order models.Order) models.Order {
	m.mu.Lock()
	defer m.mu.Unlock()

	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	if order.Reference == "" {
		order.Reference = uuid.NewString()
	}
	m.orders = append(m.orders, order)
	return order
}

type MemorySettings struct {
	mu       sync.Mutex
	settings *models.SiteSettings
}

func NewMemorySettings() *MemorySettings {
	return &MemorySettings{}
}

func (m *MemorySettings) Get(ctx context.Context) (models.SiteSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.settings == nil {
		return models.DefaultSiteSettings(), nil
	}
	return *m.settings, nil
}

func (m *MemorySettings) Update(ctx context.Context, settings models.SiteSettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.settings = &settings
	return nil
}

type MemoryAdmins struct {
	mu     sync.Mutex
	admins []models.Admin
}

func NewMemoryAdmins() *MemoryAdmins {
	return &MemoryAdmins{}
}

func (m *MemoryAdmins) FetchByEmail(ctx context.Context, email string) (models.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return models.Admin{}, ErrNotFound
}

func (m *MemoryAdmins) Seed(admin models.Admin) models.Admin {
	m.mu.Lock()
	defer m.mu.Unlock()

	if admin.ID.IsZero() {
		admin.ID = primitive.NewObjectID()
	}
	m.admins = append(m.admins, admin)
	return admin
}

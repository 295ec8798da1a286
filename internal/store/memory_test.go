package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"rammo-backend/internal/models"
)

func TestMemoryOrdersCreateAssignsFields(t *testing.T) {
	orders := NewMemoryOrders()
	fixed := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	orders.SetClock(func() time.Time { return fixed })

	created, err := orders.Create(context.Background(), models.Order{
		CustomerName: "Budi",
		Contact:      "budi@example.com",
		Status:       models.StatusCompleted, // must be ignored
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if created.ID.IsZero() {
		t.Error("expected an assigned id")
	}
	if created.Reference == "" {
		t.Error("expected an assigned reference")
	}
	if created.Status != models.StatusPending {
		t.Errorf("expected initial status pending, got %s", created.Status)
	}
	if !created.CreatedAt.Equal(fixed) {
		t.Errorf("expected createdAt %v, got %v", fixed, created.CreatedAt)
	}
}

func TestMemoryOrdersUpdateStatus(t *testing.T) {
	orders := NewMemoryOrders()
	created, err := orders.Create(context.Background(), models.Order{Contact: "a@x.com"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := orders.UpdateStatus(context.Background(), created.ID, models.StatusProcessing)
	if err != nil {
		t.Fatalf("forward transition failed: %v", err)
	}
	if updated.Status != models.StatusProcessing {
		t.Errorf("expected processing, got %s", updated.Status)
	}

	if _, err := orders.UpdateStatus(context.Background(), created.ID, models.StatusPending); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition for backward move, got %v", err)
	}

	if _, err := orders.UpdateStatus(context.Background(), created.ID, models.StatusProcessing); err != nil {
		t.Errorf("same-state update should be a no-op, got %v", err)
	}
}

func TestMemoryOrdersUpdateStatusNotFound(t *testing.T) {
	orders := NewMemoryOrders()
	_, err := orders.UpdateStatus(context.Background(), primitive.NewObjectID(), models.StatusProcessing)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryOrdersFetchByContact(t *testing.T) {
	orders := NewMemoryOrders()
	orders.Seed(models.Order{Contact: "a@x.com", Status: models.StatusPending})
	orders.Seed(models.Order{Contact: "b@x.com", Status: models.StatusPending})
	orders.Seed(models.Order{Contact: "a@x.com", Status: models.StatusCompleted})

	got, err := orders.FetchByContact(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(got))
	}

	missing, err := orders.FetchByContact(context.Background(), "nobody@x.com")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(missing) != 0 {
		t.Errorf("expected no orders, got %d", len(missing))
	}
}

func TestMemoryOrdersDelete(t *testing.T) {
	orders := NewMemoryOrders()
	created, _ := orders.Create(context.Background(), models.Order{Contact: "a@x.com"})

	deleted, err := orders.Delete(context.Background(), created.ID)
	if err != nil || !deleted {
		t.Fatalf("expected delete to succeed, got deleted=%v err=%v", deleted, err)
	}

	deleted, err = orders.Delete(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if deleted {
		t.Error("expected second delete to report false")
	}
}

func TestMemorySettingsDefaults(t *testing.T) {
	settings := NewMemorySettings()

	got, err := settings.Get(context.Background())
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != models.DefaultSiteSettings() {
		t.Errorf("expected defaults before first save, got %+v", got)
	}

	want := models.SiteSettings{SiteName: "New Name"}
	if err := settings.Update(context.Background(), want); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, err = settings.Get(context.Background())
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

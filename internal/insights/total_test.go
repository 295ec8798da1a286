package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rammo-backend/internal/models"
)

func TestOrderTotal(t *testing.T) {
	items := []models.OrderItem{
		{Name: "Basic Cotton T-Shirt", Size: "L", Quantity: 5, Price: 99000},
		{Name: "Premium Polo Shirt", Size: "M", Quantity: 2, Price: 150000},
	}

	assert.Equal(t, int64(5*99000+2*150000), OrderTotal(items))
}

func TestOrderTotalEmpty(t *testing.T) {
	assert.Equal(t, int64(0), OrderTotal(nil))
	assert.Equal(t, int64(0), OrderTotal([]models.OrderItem{}))
}

func TestOrderTotalDoesNotValidateNegatives(t *testing.T) {
	// Malformed items pass straight through; creation is the only
	// validation point.
	items := []models.OrderItem{
		{Quantity: -2, Price: 100},
	}
	assert.Equal(t, int64(-200), OrderTotal(items))
}

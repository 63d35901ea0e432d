package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewOrderNumber(t *testing.T) {
	now := time.UnixMilli(1767225600123)
	assert.Equal(t, "VO25600123", NewOrderNumber(now))
}

func TestComputeCharges(t *testing.T) {
	tests := []struct {
		name     string
		subtotal string
		shipping string
		tax      string
		total    string
	}{
		{"below free shipping threshold", "50", "10", "4", "64"},
		{"exactly at threshold still pays shipping", "100", "10", "8", "118"},
		{"above threshold ships free", "240", "0", "19.2", "259.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shipping, tax, total := ComputeCharges(decimal.RequireFromString(tt.subtotal))
			assert.True(t, shipping.Equal(decimal.RequireFromString(tt.shipping)), "shipping = %s", shipping)
			assert.True(t, tax.Equal(decimal.RequireFromString(tt.tax)), "tax = %s", tax)
			assert.True(t, total.Equal(decimal.RequireFromString(tt.total)), "total = %s", total)
		})
	}
}

func TestNewOrderSnapshotsItems(t *testing.T) {
	items := []OrderItem{{ProductID: 1, Quantity: 1, Price: decimal.NewFromInt(10)}}
	o := NewOrder(1, items, decimal.NewFromInt(10), decimal.NewFromInt(10), decimal.NewFromInt(1), decimal.NewFromInt(21), ShippingAddress{}, time.Now())

	items[0].Quantity = 99
	assert.Equal(t, 1, o.Items[0].Quantity)
	assert.Equal(t, OrderStatusProcessing, o.Status)
}

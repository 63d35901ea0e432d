package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(productID uint, size, color string, qty int, price string) LineItem {
	return LineItem{
		ProductID: productID,
		Name:      "item",
		Price:     decimal.RequireFromString(price),
		Quantity:  qty,
		Size:      size,
		Color:     color,
	}
}

func TestAddMergesDuplicateKey(t *testing.T) {
	c := NewCart()
	c.Add(item(1, "M", "Black", 1, "20"))
	c.Add(item(1, "M", "Black", 2, "20"))
	c.Add(item(1, "M", "Black", 3, "20"))

	require.Equal(t, 1, c.Len())
	assert.Equal(t, 6, c.Items()[0].Quantity)
}

func TestAddDistinctKeysStayDistinct(t *testing.T) {
	c := NewCart()
	c.Add(item(1, "M", "Black", 1, "20"))
	c.Add(item(1, "L", "Black", 1, "20"))
	c.Add(item(1, "M", "White", 1, "20"))
	c.Add(item(2, "M", "Black", 1, "15"))

	assert.Equal(t, 4, c.Len())
}

func TestAddThenRemoveLeavesOthersUntouched(t *testing.T) {
	c := NewCart()
	c.Add(item(1, "M", "Black", 2, "20"))
	c.Add(item(2, "S", "Red", 1, "15"))
	c.Add(item(1, "M", "Black", 1, "20"))

	c.Remove(ItemKey{ProductID: 1, Size: "M", Color: "Black"})

	require.Equal(t, 1, c.Len())
	assert.Equal(t, uint(2), c.Items()[0].ProductID)
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	c := NewCart()
	c.Add(item(1, "M", "Black", 1, "20"))

	c.Remove(ItemKey{ProductID: 9, Size: "M", Color: "Black"})
	assert.Equal(t, 1, c.Len())
}

func TestRemoveKeepsInsertionOrderAndIndex(t *testing.T) {
	c := NewCart()
	c.Add(item(1, "M", "Black", 1, "10"))
	c.Add(item(2, "M", "Black", 1, "10"))
	c.Add(item(3, "M", "Black", 1, "10"))

	c.Remove(ItemKey{ProductID: 2, Size: "M", Color: "Black"})

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, uint(1), items[0].ProductID)
	assert.Equal(t, uint(3), items[1].ProductID)

	// 索引在删除后仍然有效
	c.SetQuantity(ItemKey{ProductID: 3, Size: "M", Color: "Black"}, 5)
	assert.Equal(t, 5, c.Items()[1].Quantity)
}

func TestSetQuantityExactNotIncremental(t *testing.T) {
	c := NewCart()
	c.Add(item(1, "M", "Black", 4, "20"))

	c.SetQuantity(ItemKey{ProductID: 1, Size: "M", Color: "Black"}, 2)
	assert.Equal(t, 2, c.Items()[0].Quantity)
}

func TestSetQuantityZeroOrNegativeRemoves(t *testing.T) {
	for _, qty := range []int{0, -1, -10} {
		c := NewCart()
		c.Add(item(1, "M", "Black", 3, "20"))
		c.SetQuantity(ItemKey{ProductID: 1, Size: "M", Color: "Black"}, qty)
		assert.Equal(t, 0, c.Len(), "quantity %d should remove the line", qty)
	}
}

func TestTotal(t *testing.T) {
	c := NewCart()
	c.Add(item(1, "M", "Black", 2, "20"))
	c.Add(item(2, "S", "Red", 1, "15"))

	assert.True(t, c.Total().Equal(decimal.RequireFromString("55")))
}

func TestTotalNoIntermediateRounding(t *testing.T) {
	c := NewCart()
	c.Add(item(1, "M", "Black", 3, "19.99"))
	c.Add(item(2, "S", "Red", 2, "0.05"))

	assert.True(t, c.Total().Equal(decimal.RequireFromString("60.07")))
}

func TestCountSumsQuantities(t *testing.T) {
	c := NewCart()
	c.Add(item(1, "M", "Black", 2, "20"))
	c.Add(item(2, "S", "Red", 3, "15"))

	assert.Equal(t, 5, c.Count())
	assert.Equal(t, 2, c.Len())
}

func TestClear(t *testing.T) {
	c := NewCart()
	c.Add(item(1, "M", "Black", 2, "20"))
	c.Clear()

	assert.Equal(t, 0, c.Len())
	assert.True(t, c.Total().IsZero())
}

func TestRestoreCartMergesCorruptDuplicates(t *testing.T) {
	c := RestoreCart([]LineItem{
		item(1, "M", "Black", 1, "20"),
		item(2, "S", "Red", 1, "15"),
		item(1, "M", "Black", 2, "20"),
	})

	require.Equal(t, 2, c.Len())
	assert.Equal(t, 3, c.Items()[0].Quantity)
}

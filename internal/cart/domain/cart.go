// Package domain 包含购物车的领域模型
package domain

import "github.com/shopspring/decimal"

// ItemKey 购物车行项的复合键
type ItemKey struct {
	ProductID uint
	Size      string
	Color     string
}

// LineItem 购物车行项。
// Price 与 Image 是加入购物车时刻的快照，之后不再从目录刷新。
type LineItem struct {
	ProductID uint            `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Size      string          `json:"size"`
	Color     string          `json:"color"`
	Image     string          `json:"image"`
}

// Key 返回行项的复合键
func (li LineItem) Key() ItemKey {
	return ItemKey{ProductID: li.ProductID, Size: li.Size, Color: li.Color}
}

// Subtotal 返回行项小计 quantity × price
func (li LineItem) Subtotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Cart 购物车聚合。
// 行项以复合键 (productId, size, color) 索引，同键最多一行是结构性不变量；
// 迭代顺序保持插入顺序。
type Cart struct {
	items []LineItem
	index map[ItemKey]int
}

// NewCart 创建空购物车
func NewCart() *Cart {
	return &Cart{index: map[ItemKey]int{}}
}

// RestoreCart 从快照恢复购物车。
// 损坏快照中的重复键按数量合并，恢复结构性不变量。
func RestoreCart(items []LineItem) *Cart {
	c := NewCart()
	for _, item := range items {
		c.Add(item)
	}
	return c
}

// Add 加入行项；同键已存在时合并数量，否则追加
func (c *Cart) Add(item LineItem) {
	key := item.Key()
	if i, ok := c.index[key]; ok {
		c.items[i].Quantity += item.Quantity
		return
	}
	c.index[key] = len(c.items)
	c.items = append(c.items, item)
}

// SetQuantity 将同键行项的数量设置为给定值（非累加）。
// quantity 小于等于零等价于删除；键不存在时不做任何事。
func (c *Cart) SetQuantity(key ItemKey, quantity int) {
	if quantity <= 0 {
		c.Remove(key)
		return
	}
	if i, ok := c.index[key]; ok {
		c.items[i].Quantity = quantity
	}
}

// Remove 删除同键行项；不存在时为 no-op
func (c *Cart) Remove(key ItemKey) {
	i, ok := c.index[key]
	if !ok {
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	delete(c.index, key)
	for j := i; j < len(c.items); j++ {
		c.index[c.items[j].Key()] = j
	}
}

// Clear 清空购物车
func (c *Cart) Clear() {
	c.items = nil
	c.index = map[ItemKey]int{}
}

// Total 返回全部行项的 quantity × price 之和，不做中间舍入
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Count 返回全部行项数量之和（单件总数，不是行数）
func (c *Cart) Count() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Items 返回按插入顺序排列的行项副本
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len 返回行数
func (c *Cart) Len() int {
	return len(c.items)
}

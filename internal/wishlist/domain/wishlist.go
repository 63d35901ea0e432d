// Package domain 包含心愿单的领域模型
package domain

// Wishlist 商品 ID 的有序集合：无重复，保持插入顺序
type Wishlist struct {
	ids   []uint
	index map[uint]struct{}
}

// NewWishlist 创建空心愿单
func NewWishlist() *Wishlist {
	return &Wishlist{index: map[uint]struct{}{}}
}

// RestoreWishlist 从快照恢复，重复 ID 被忽略
func RestoreWishlist(ids []uint) *Wishlist {
	w := NewWishlist()
	for _, id := range ids {
		w.Add(id)
	}
	return w
}

// Add 加入商品 ID；已存在时为 no-op，返回是否发生变化
func (w *Wishlist) Add(productID uint) bool {
	if _, ok := w.index[productID]; ok {
		return false
	}
	w.index[productID] = struct{}{}
	w.ids = append(w.ids, productID)
	return true
}

// Remove 移除商品 ID，返回是否发生变化
func (w *Wishlist) Remove(productID uint) bool {
	if _, ok := w.index[productID]; !ok {
		return false
	}
	delete(w.index, productID)
	for i, id := range w.ids {
		if id == productID {
			w.ids = append(w.ids[:i], w.ids[i+1:]...)
			break
		}
	}
	return true
}

// Toggle 翻转成员状态，每次调用恰好翻转一次；返回翻转后是否在集合中
func (w *Wishlist) Toggle(productID uint) bool {
	if w.Contains(productID) {
		w.Remove(productID)
		return false
	}
	w.Add(productID)
	return true
}

// Contains 成员测试，无副作用
func (w *Wishlist) Contains(productID uint) bool {
	_, ok := w.index[productID]
	return ok
}

// IDs 返回按插入顺序排列的 ID 副本
func (w *Wishlist) IDs() []uint {
	out := make([]uint, len(w.ids))
	copy(out, w.ids)
	return out
}

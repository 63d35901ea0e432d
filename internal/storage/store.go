// Package storage 提供容错的快照键值存储适配器。
//
// 所有读写失败都在适配器内部吸收：Get 失败降级为"快照不存在"，
// Set/Clear 失败仅记录日志并丢弃写入，调用方永远不会收到存储错误。
package storage

import "context"

// Key 逻辑存储键
type Key string

const (
	// KeyCart 购物车快照
	KeyCart Key = "cart"
	// KeyWishlist 心愿单快照
	KeyWishlist Key = "wishlist"
	// KeySession 登录会话快照
	KeySession Key = "session"
	// KeyOrders 订单集合快照
	KeyOrders Key = "orders"
)

// Store 快照存储适配器接口
type Store interface {
	// Get 解码 key 下的快照到 dest，返回快照是否存在且可读
	Get(ctx context.Context, key Key, dest any) bool
	// Set 持久化 key 下的快照，失败时丢弃写入
	Set(ctx context.Context, key Key, value any)
	// Clear 删除 key 下的快照，幂等
	Clear(ctx context.Context, key Key)
}

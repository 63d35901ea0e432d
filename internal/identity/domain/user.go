// Package domain 包含用户身份的领域模型
package domain

import "time"

// Address 收货地址
type Address struct {
	// 地址 ID
	ID int64 `json:"Id"`
	// 收件人
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	// 街道
	Street string `json:"street"`
	// 城市
	City string `json:"city"`
	// 省/州
	State string `json:"state"`
	// 邮编
	PostalCode string `json:"postalCode"`
	// 国家
	Country string `json:"country"`
	// 是否默认地址。首个添加的地址自动成为默认地址，
	// 之后不再校验默认地址的唯一性
	IsDefault bool `json:"isDefault"`
}

// User 用户实体，包含凭证，仅在仓储层内部流转
type User struct {
	// 用户 ID
	ID uint `json:"Id"`
	// 登录邮箱，全局唯一，精确匹配（区分大小写）
	Email string `json:"email"`
	// 名
	FirstName string `json:"firstName"`
	// 姓
	LastName string `json:"lastName"`
	// 凭证变换结果，永远不出现在会话中
	PasswordHash string `json:"password"`
	// 电话，可选
	Phone string `json:"phone"`
	// 收货地址列表
	Addresses []Address `json:"addresses"`
	// 创建时间
	CreatedAt time.Time `json:"createdAt"`
}

// Session 去除凭证后的会话快照，是"已登录"状态的唯一权威
type Session struct {
	ID        uint      `json:"Id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone"`
	Addresses []Address `json:"addresses"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUser 创建用户
func NewUser(email, passwordHash, firstName, lastName string) *User {
	return &User{
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: passwordHash,
		Addresses:    []Address{},
		CreatedAt:    time.Now(),
	}
}

// Session 生成去除凭证的会话快照
func (u *User) Session() *Session {
	addrs := make([]Address, len(u.Addresses))
	copy(addrs, u.Addresses)
	return &Session{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Addresses: addrs,
		CreatedAt: u.CreatedAt,
	}
}

// AddAddress 追加收货地址，首个地址自动成为默认地址
func (u *User) AddAddress(addr Address) Address {
	addr.IsDefault = len(u.Addresses) == 0
	u.Addresses = append(u.Addresses, addr)
	return addr
}

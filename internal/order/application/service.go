// Package application 提供订单应用服务
package application

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	cartdomain "github.com/wyfcoding/voguevault/internal/cart/domain"
	"github.com/wyfcoding/voguevault/internal/errs"
	identityapp "github.com/wyfcoding/voguevault/internal/identity/application"
	"github.com/wyfcoding/voguevault/internal/order/domain"
	"github.com/wyfcoding/voguevault/pkg/logger"
)

// CreateOrderInput 创建订单的输入：购物车快照加结账表单数据。
// 金额由调用方一次性提供，创建后冻结。
type CreateOrderInput struct {
	Items           []domain.OrderItem
	Subtotal        decimal.Decimal
	Shipping        decimal.Decimal
	Tax             decimal.Decimal
	Total           decimal.Decimal
	ShippingAddress domain.ShippingAddress
}

// OrderService 订单应用服务
type OrderService struct {
	repo      domain.OrderRepository
	identity  *identityapp.IdentityService
	publisher domain.EventPublisher
	now       func() time.Time
}

// NewOrderService 创建订单服务实例，publisher 可为 nil
func NewOrderService(repo domain.OrderRepository, identity *identityapp.IdentityService, publisher domain.EventPublisher) *OrderService {
	return &OrderService{repo: repo, identity: identity, publisher: publisher, now: time.Now}
}

// CreateOrder 基于购物车快照创建订单。
// 无会话时返回 errs.ErrNotAuthenticated 且不追加任何订单。
func (s *OrderService) CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.Order, error) {
	session := s.identity.CurrentUser(ctx)
	if session == nil {
		return nil, errs.ErrNotAuthenticated
	}

	order := domain.NewOrder(session.ID, input.Items,
		input.Subtotal, input.Shipping, input.Tax, input.Total,
		input.ShippingAddress, s.now())

	if err := s.repo.Save(ctx, order); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		event := domain.OrderCreatedEvent{
			OrderID:     order.ID,
			OrderNumber: order.OrderNumber,
			UserID:      order.UserID,
			Total:       order.Total,
			Timestamp:   order.CreatedAt,
		}
		if err := s.publisher.Publish(ctx, domain.OrderCreatedEventType, order.OrderNumber, event); err != nil {
			logger.Warn(ctx, "Failed to publish order created event", "error", err)
		}
	}

	logger.Info(ctx, "Order created", "order_id", order.ID, "order_number", order.OrderNumber, "user_id", order.UserID)
	return order, nil
}

// GetUserOrders 返回当前用户的全部订单，按创建时间降序（最新在前）
func (s *OrderService) GetUserOrders(ctx context.Context) ([]*domain.Order, error) {
	session := s.identity.CurrentUser(ctx)
	if session == nil {
		return nil, errs.ErrNotAuthenticated
	}

	orders, err := s.repo.FindByUser(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

// GetOrderByID 返回当前用户名下的指定订单。
// 订单不存在或不属于当前用户都返回 errs.ErrNotFound。
func (s *OrderService) GetOrderByID(ctx context.Context, id uint) (*domain.Order, error) {
	session := s.identity.CurrentUser(ctx)
	if session == nil {
		return nil, errs.ErrNotAuthenticated
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.UserID != session.ID {
		return nil, errs.ErrNotFound
	}
	return order, nil
}

// FromCartLines 把购物车行项快照转换为订单行项快照
func FromCartLines(items []cartdomain.LineItem) []domain.OrderItem {
	out := make([]domain.OrderItem, len(items))
	for i, item := range items {
		out[i] = domain.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Color:     item.Color,
			Image:     item.Image,
		}
	}
	return out
}

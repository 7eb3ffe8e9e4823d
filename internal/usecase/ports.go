package usecase

import (
	"context"

	domain "github.com/tdngo/gomarket-api/internal/entity"
)

type OrderRepo interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	Update(ctx context.Context, o *domain.Order) error
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	ListByShop(ctx context.Context, shopID string) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	UpdatePaymentStatus(ctx context.Context, orderID, paymentID, status string) error
}

// ProductInventory is the stock/sold-out mutation contract. AdjustCounters
// applies {stock += stockDelta, soldOut += soldDelta} atomically per product
// and reports domain.ErrProductNotFound for a missing record.
type ProductInventory interface {
	AdjustCounters(ctx context.Context, productID string, stockDelta, soldDelta int) error
}

type ShopRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Shop, error)
	SetAvailableBalance(ctx context.Context, shopID string, balance float64) error
	IncAvailableBalance(ctx context.Context, shopID string, delta float64) error
}

type WithdrawRepo interface {
	Create(ctx context.Context, w *domain.Withdraw) error
	UpdateStatus(ctx context.Context, id string, status domain.WithdrawStatus) (*domain.Withdraw, error)
	ListAll(ctx context.Context) ([]domain.Withdraw, error)
}

type OrderCache interface {
	SetStatus(ctx context.Context, orderID string, status string) error
	GetStatus(ctx context.Context, orderID string) (string, error)
}

// EventPublisher is the outbound broker port (RabbitMQ in production).
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, msg OrderCreatedMsg) error
	PublishConversationUpdated(ctx context.Context, msg ConversationUpdatedMsg) error
}

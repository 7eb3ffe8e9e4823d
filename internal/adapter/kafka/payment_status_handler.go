package kafka

import (
	"context"
	"errors"

	domain "github.com/tdngo/gomarket-api/internal/entity"
	"github.com/tdngo/gomarket-api/internal/usecase"
)

// PaymentStatusHandler applies payment-status events from the payment
// pipeline to the order's payment record.
type PaymentStatusHandler struct {
	Repo  usecase.OrderRepo
	Cache usecase.OrderCache // optional
}

func NewPaymentStatusHandler(repo usecase.OrderRepo, cache usecase.OrderCache) *PaymentStatusHandler {
	return &PaymentStatusHandler{Repo: repo, Cache: cache}
}

func (h *PaymentStatusHandler) Handle(ctx context.Context, ev usecase.PaymentStatusChangedMsg) error {
	err := h.Repo.UpdatePaymentStatus(ctx, ev.OrderID, ev.PaymentID, ev.Status)
	if errors.Is(err, domain.ErrOrderNotFound) {
		// Event for an order this instance never saw; drop it.
		return nil
	}
	if err != nil {
		return err
	}

	// Cache best-effort
	if h.Cache != nil {
		if order, err := h.Repo.GetByID(ctx, ev.OrderID); err == nil {
			_ = h.Cache.SetStatus(ctx, order.ID, string(order.Status))
		}
	}
	return nil
}

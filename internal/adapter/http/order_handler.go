package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tdngo/gomarket-api/internal/adapter/http/middleware"
	domain "github.com/tdngo/gomarket-api/internal/entity"
	"github.com/tdngo/gomarket-api/internal/usecase"
)

type OrderHandler struct {
	checkout  *usecase.Checkout
	lifecycle *usecase.OrderLifecycle
	query     usecase.OrderRepo
	cache     usecase.OrderCache
}

func NewOrderHandler(checkout *usecase.Checkout, lifecycle *usecase.OrderLifecycle, query usecase.OrderRepo, cache usecase.OrderCache) *OrderHandler {
	return &OrderHandler{checkout: checkout, lifecycle: lifecycle, query: query, cache: cache}
}

type checkoutReq struct {
	Cart            []domain.CartItem      `json:"cart"`
	ShippingAddress domain.ShippingAddress `json:"shippingAddress"`
	TotalPrice      float64                `json:"totalPrice"`
	PaymentInfo     domain.PaymentInfo     `json:"paymentInfo"`
}

// Checkout splits the cart by seller: one order per shop is created, all
// sharing this request's shipping/payment context.
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req checkoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		failBadRequest(c, "bad_request")
		return
	}
	user := middleware.CurrentUser(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	orders, err := h.checkout.Execute(ctx, usecase.CheckoutInput{
		Cart:            req.Cart,
		ShippingAddress: req.ShippingAddress,
		UserID:          user.ID,
		TotalPrice:      req.TotalPrice,
		PaymentInfo:     req.PaymentInfo,
	})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"orders": orders})
}

func (h *OrderHandler) GetByID(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	order, err := h.query.GetByID(ctx, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	// Status cache may be fresher than the document when the Kafka payment
	// handler has just run.
	if status, err := h.cache.GetStatus(ctx, order.ID); err == nil && status != "" {
		order.Status = domain.OrderStatus(status)
	}
	ok(c, http.StatusOK, gin.H{"order": order})
}

func (h *OrderHandler) ListByUser(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	orders, err := h.query.ListByUser(ctx, c.Param("userId"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"orders": orders})
}

func (h *OrderHandler) ListByShop(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	orders, err := h.query.ListByShop(ctx, c.Param("shopId"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"orders": orders})
}

func (h *OrderHandler) ListAll(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	orders, err := h.query.ListAll(ctx)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"orders": orders})
}

type statusReq struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus drives the seller-side transitions, including the
// delivery-partner stock decrement and the delivered balance update.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		failBadRequest(c, "bad_request")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	order, err := h.lifecycle.UpdateStatus(ctx, c.Param("id"), domain.OrderStatus(req.Status))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"order": order})
}

// RequestRefund stores the caller-supplied status as-is; clients send
// "Refund Requested" by convention.
func (h *OrderHandler) RequestRefund(c *gin.Context) {
	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		failBadRequest(c, "bad_request")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	order, err := h.lifecycle.RequestRefund(ctx, c.Param("id"), domain.OrderStatus(req.Status))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"order": order, "message": "refund requested"})
}

func (h *OrderHandler) AcceptRefund(c *gin.Context) {
	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		failBadRequest(c, "bad_request")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	order, err := h.lifecycle.AcceptRefund(ctx, c.Param("id"), domain.OrderStatus(req.Status))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"order": order, "message": "refund settled"})
}

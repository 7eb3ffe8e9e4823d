package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tdngo/gomarket-api/internal/adapter/http/middleware"
	"github.com/tdngo/gomarket-api/internal/adapter/repo"
	domain "github.com/tdngo/gomarket-api/internal/entity"
)

type EventHandler struct {
	events *repo.MongoEventRepo
}

func NewEventHandler(events *repo.MongoEventRepo) *EventHandler {
	return &EventHandler{events: events}
}

type createEventReq struct {
	Name          string    `json:"name" binding:"required"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	OriginalPrice float64   `json:"originalPrice"`
	DiscountPrice float64   `json:"discountPrice" binding:"required,gt=0"`
	Stock         int       `json:"stock" binding:"required,gt=0"`
	StartDate     time.Time `json:"startDate" binding:"required"`
	FinishDate    time.Time `json:"finishDate" binding:"required"`
}

func (h *EventHandler) Create(c *gin.Context) {
	var req createEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		failBadRequest(c, "bad_request")
		return
	}
	shop := middleware.CurrentShop(c)

	event := domain.Event{
		ID:            uuid.NewString(),
		ShopID:        shop.ID,
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		OriginalPrice: req.OriginalPrice,
		DiscountPrice: req.DiscountPrice,
		Stock:         req.Stock,
		StartDate:     req.StartDate,
		FinishDate:    req.FinishDate,
		Status:        domain.EventStatusRunning,
		CreatedAt:     time.Now().UTC(),
	}
	if err := event.Validate(); err != nil {
		fail(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := h.events.Create(ctx, &event); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"event": event})
}

func (h *EventHandler) ListAll(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	events, err := h.events.ListAll(ctx)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"events": events})
}

func (h *EventHandler) ListByShop(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	events, err := h.events.ListByShop(ctx, c.Param("shopId"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"events": events})
}

func (h *EventHandler) Delete(c *gin.Context) {
	shop := middleware.CurrentShop(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := h.events.Delete(ctx, c.Param("id"), shop.ID); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "event deleted"})
}

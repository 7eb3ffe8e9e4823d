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

type CouponHandler struct {
	coupons *repo.MongoCouponRepo
}

func NewCouponHandler(coupons *repo.MongoCouponRepo) *CouponHandler {
	return &CouponHandler{coupons: coupons}
}

type createCouponReq struct {
	Name            string  `json:"name" binding:"required"`
	Value           float64 `json:"value" binding:"required,gt=0"`
	MinAmount       float64 `json:"minAmount"`
	MaxAmount       float64 `json:"maxAmount"`
	SelectedProduct string  `json:"selectedProduct"`
}

func (h *CouponHandler) Create(c *gin.Context) {
	var req createCouponReq
	if err := c.ShouldBindJSON(&req); err != nil {
		failBadRequest(c, "bad_request")
		return
	}
	shop := middleware.CurrentShop(c)

	coupon := domain.Coupon{
		ID:              uuid.NewString(),
		ShopID:          shop.ID,
		Name:            req.Name,
		Value:           req.Value,
		MinAmount:       req.MinAmount,
		MaxAmount:       req.MaxAmount,
		SelectedProduct: req.SelectedProduct,
		CreatedAt:       time.Now().UTC(),
	}
	if err := coupon.Validate(); err != nil {
		fail(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := h.coupons.Create(ctx, &coupon); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"coupon": coupon})
}

func (h *CouponHandler) ListByShop(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	coupons, err := h.coupons.ListByShop(ctx, c.Param("shopId"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"coupons": coupons})
}

// GetByName is the checkout-time value lookup.
func (h *CouponHandler) GetByName(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	coupon, err := h.coupons.GetByName(ctx, c.Param("name"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"coupon": coupon})
}

func (h *CouponHandler) Delete(c *gin.Context) {
	shop := middleware.CurrentShop(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := h.coupons.Delete(ctx, c.Param("id"), shop.ID); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "coupon deleted"})
}

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

type ProductHandler struct {
	products *repo.MongoProductRepo
}

func NewProductHandler(products *repo.MongoProductRepo) *ProductHandler {
	return &ProductHandler{products: products}
}

type createProductReq struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	Category      string  `json:"category" binding:"required"`
	Tags          string  `json:"tags"`
	OriginalPrice float64 `json:"originalPrice"`
	DiscountPrice float64 `json:"discountPrice" binding:"required,gt=0"`
	Stock         int     `json:"stock" binding:"required,gt=0"`
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req createProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		failBadRequest(c, "bad_request")
		return
	}
	shop := middleware.CurrentShop(c)

	product := domain.Product{
		ID:            uuid.NewString(),
		ShopID:        shop.ID,
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		Tags:          req.Tags,
		OriginalPrice: req.OriginalPrice,
		DiscountPrice: req.DiscountPrice,
		Stock:         req.Stock,
		CreatedAt:     time.Now().UTC(),
	}
	if err := product.Validate(); err != nil {
		fail(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := h.products.Create(ctx, &product); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"product": product})
}

func (h *ProductHandler) ListAll(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	products, err := h.products.ListAll(ctx)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"products": products})
}

func (h *ProductHandler) ListByShop(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	products, err := h.products.ListByShop(ctx, c.Param("shopId"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"products": products})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	shop := middleware.CurrentShop(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := h.products.Delete(ctx, c.Param("id"), shop.ID); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "product deleted"})
}

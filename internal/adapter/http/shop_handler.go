package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tdngo/gomarket-api/internal/adapter/http/middleware"
	"github.com/tdngo/gomarket-api/internal/adapter/repo"
	domain "github.com/tdngo/gomarket-api/internal/entity"
	"github.com/tdngo/gomarket-api/internal/security"
)

type ShopHandler struct {
	shops  *repo.MongoShopRepo
	tokens *security.Tokens
}

func NewShopHandler(shops *repo.MongoShopRepo, tokens *security.Tokens) *ShopHandler {
	return &ShopHandler{shops: shops, tokens: tokens}
}

type registerShopReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Address  string `json:"address" binding:"required"`
	ZipCode  string `json:"zipCode" binding:"required"`
	Phone    string `json:"phoneNumber"`
}

func (h *ShopHandler) Register(c *gin.Context) {
	var req registerShopReq
	if err := c.ShouldBindJSON(&req); err != nil {
		failBadRequest(c, "bad_request")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if _, err := h.shops.GetByEmail(ctx, req.Email); err == nil {
		fail(c, domain.ErrEmailTaken)
		return
	} else if !errors.Is(err, domain.ErrShopNotFound) {
		fail(c, err)
		return
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	shop := domain.Shop{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Address:      req.Address,
		ZipCode:      req.ZipCode,
		PhoneNumber:  req.Phone,
		CreatedAt:    time.Now().UTC(),
	}
	if err := h.shops.Create(ctx, &shop); err != nil {
		fail(c, err)
		return
	}

	token, err := h.tokens.Issue(security.KindShop, shop.ID)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"shop": shop, "token": token})
}

func (h *ShopHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		failBadRequest(c, "bad_request")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	shop, err := h.shops.GetByEmail(ctx, req.Email)
	if err != nil || !security.CheckPassword(shop.PasswordHash, req.Password) {
		fail(c, domain.ErrBadCredentials)
		return
	}

	token, err := h.tokens.Issue(security.KindShop, shop.ID)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"shop": shop, "token": token})
}

func (h *ShopHandler) Me(c *gin.Context) {
	ok(c, http.StatusOK, gin.H{"shop": middleware.CurrentShop(c)})
}

func (h *ShopHandler) GetInfo(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	shop, err := h.shops.GetByID(ctx, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"shop": shop})
}

type withdrawMethodReq struct {
	BankName          string `json:"bankName" binding:"required"`
	BankAccountNumber string `json:"bankAccountNumber" binding:"required"`
	BankHolderName    string `json:"bankHolderName" binding:"required"`
}

func (h *ShopHandler) SetWithdrawMethod(c *gin.Context) {
	var req withdrawMethodReq
	if err := c.ShouldBindJSON(&req); err != nil {
		failBadRequest(c, "bad_request")
		return
	}
	shop := middleware.CurrentShop(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	method := &domain.WithdrawMethod{
		BankName:          req.BankName,
		BankAccountNumber: req.BankAccountNumber,
		BankHolderName:    req.BankHolderName,
	}
	if err := h.shops.SetWithdrawMethod(ctx, shop.ID, method); err != nil {
		fail(c, err)
		return
	}
	shop.WithdrawMethod = method
	ok(c, http.StatusOK, gin.H{"shop": shop})
}

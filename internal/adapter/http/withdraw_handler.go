package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tdngo/gomarket-api/internal/adapter/http/middleware"
	"github.com/tdngo/gomarket-api/internal/adapter/repo"
	"github.com/tdngo/gomarket-api/internal/usecase"
)

type WithdrawHandler struct {
	withdrawals *usecase.Withdrawals
	query       *repo.MongoWithdrawRepo
}

func NewWithdrawHandler(withdrawals *usecase.Withdrawals, query *repo.MongoWithdrawRepo) *WithdrawHandler {
	return &WithdrawHandler{withdrawals: withdrawals, query: query}
}

type createWithdrawReq struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

func (h *WithdrawHandler) Create(c *gin.Context) {
	var req createWithdrawReq
	if err := c.ShouldBindJSON(&req); err != nil {
		failBadRequest(c, "bad_request")
		return
	}
	shop := middleware.CurrentShop(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	w, err := h.withdrawals.Create(ctx, shop.ID, req.Amount)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"withdraw": w})
}

func (h *WithdrawHandler) Settle(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	w, err := h.withdrawals.Settle(ctx, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"withdraw": w})
}

func (h *WithdrawHandler) ListAll(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	withdrawals, err := h.query.ListAll(ctx)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"withdrawals": withdrawals})
}

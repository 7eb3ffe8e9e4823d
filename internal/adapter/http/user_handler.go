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

type UserHandler struct {
	users  *repo.MongoUserRepo
	tokens *security.Tokens
}

func NewUserHandler(users *repo.MongoUserRepo, tokens *security.Tokens) *UserHandler {
	return &UserHandler{users: users, tokens: tokens}
}

type registerUserReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (h *UserHandler) Register(c *gin.Context) {
	var req registerUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		failBadRequest(c, "bad_request")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if _, err := h.users.GetByEmail(ctx, req.Email); err == nil {
		fail(c, domain.ErrEmailTaken)
		return
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		fail(c, err)
		return
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	user := domain.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}
	if err := h.users.Create(ctx, &user); err != nil {
		fail(c, err)
		return
	}

	token, err := h.tokens.Issue(security.KindUser, user.ID)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"user": user, "token": token})
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *UserHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		failBadRequest(c, "bad_request")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	user, err := h.users.GetByEmail(ctx, req.Email)
	if err != nil || !security.CheckPassword(user.PasswordHash, req.Password) {
		fail(c, domain.ErrBadCredentials)
		return
	}

	token, err := h.tokens.Issue(security.KindUser, user.ID)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"user": user, "token": token})
}

func (h *UserHandler) Me(c *gin.Context) {
	ok(c, http.StatusOK, gin.H{"user": middleware.CurrentUser(c)})
}

type addressReq struct {
	Country     string `json:"country" binding:"required"`
	City        string `json:"city" binding:"required"`
	Address1    string `json:"address1" binding:"required"`
	Address2    string `json:"address2"`
	ZipCode     string `json:"zipCode" binding:"required"`
	AddressType string `json:"addressType" binding:"required"`
}

func (h *UserHandler) UpsertAddress(c *gin.Context) {
	var req addressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		failBadRequest(c, "bad_request")
		return
	}
	user := middleware.CurrentUser(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	updated, err := h.users.UpsertAddress(ctx, user.ID, domain.Address{
		ID:          uuid.NewString(),
		Country:     req.Country,
		City:        req.City,
		Address1:    req.Address1,
		Address2:    req.Address2,
		ZipCode:     req.ZipCode,
		AddressType: req.AddressType,
	})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"user": updated})
}

func (h *UserHandler) DeleteAddress(c *gin.Context) {
	user := middleware.CurrentUser(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	updated, err := h.users.DeleteAddress(ctx, user.ID, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"user": updated})
}

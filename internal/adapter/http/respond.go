package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domain "github.com/tdngo/gomarket-api/internal/entity"
)

// All endpoints answer with a uniform envelope:
// success => {"success":true, ...}, failure => {"success":false,"error":...}.

func ok(c *gin.Context, status int, kv gin.H) {
	body := gin.H{"success": true}
	for k, v := range kv {
		body[k] = v
	}
	c.JSON(status, body)
}

func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrCouponTaken),
		errors.Is(err, domain.ErrBadCredentials):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrShopNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrWithdrawNotFound):
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"success": false, "error": err.Error()})
}

func failBadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
}

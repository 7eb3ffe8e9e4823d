package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	domain "github.com/tdngo/gomarket-api/internal/entity"
	"github.com/tdngo/gomarket-api/internal/security"
)

// Principal is the authenticated identity threaded through handlers,
// replacing ad-hoc request augmentation.
type Principal struct {
	User *domain.User
	Shop *domain.Shop
}

const principalKey = "principal"

type UserLoader interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type ShopLoader interface {
	GetByID(ctx context.Context, id string) (*domain.Shop, error)
}

type Authz struct {
	tokens *security.Tokens
	users  UserLoader
	shops  ShopLoader
}

func NewAuthz(tokens *security.Tokens, users UserLoader, shops ShopLoader) *Authz {
	return &Authz{tokens: tokens, users: users, shops: shops}
}

// RequireUser authenticates a buyer token and loads the account.
func (a *Authz) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		kind, id, ok := a.subject(c)
		if !ok || kind != security.KindUser {
			unauth(c, "invalid_token", "user token required")
			return
		}
		user, err := a.users.GetByID(c.Request.Context(), id)
		if err != nil {
			unauth(c, "invalid_token", "unknown user")
			return
		}
		c.Set(principalKey, Principal{User: user})
		c.Next()
	}
}

// RequireShop authenticates a seller token and loads the shop.
func (a *Authz) RequireShop() gin.HandlerFunc {
	return func(c *gin.Context) {
		kind, id, ok := a.subject(c)
		if !ok || kind != security.KindShop {
			unauth(c, "invalid_token", "seller token required")
			return
		}
		shop, err := a.shops.GetByID(c.Request.Context(), id)
		if err != nil {
			unauth(c, "invalid_token", "unknown shop")
			return
		}
		c.Set(principalKey, Principal{Shop: shop})
		c.Next()
	}
}

// RequireAdmin authenticates a user token and checks the admin role.
func (a *Authz) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		kind, id, ok := a.subject(c)
		if !ok || kind != security.KindUser {
			unauth(c, "invalid_token", "user token required")
			return
		}
		user, err := a.users.GetByID(c.Request.Context(), id)
		if err != nil {
			unauth(c, "invalid_token", "unknown user")
			return
		}
		if user.Role != domain.RoleAdmin {
			forbidden(c, "insufficient_scope", "admin role required")
			return
		}
		c.Set(principalKey, Principal{User: user})
		c.Next()
	}
}

// subject extracts and validates the token from the Authorization header
// or the session cookie.
func (a *Authz) subject(c *gin.Context) (kind, id string, ok bool) {
	raw := ""
	if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		raw = strings.TrimPrefix(auth, "Bearer ")
	} else if cookie, err := c.Cookie("token"); err == nil {
		raw = cookie
	}
	if raw == "" {
		return "", "", false
	}
	kind, id, err := a.tokens.Parse(raw)
	if err != nil {
		return "", "", false
	}
	return kind, id, true
}

// CurrentUser returns the authenticated buyer set by RequireUser/RequireAdmin.
func CurrentUser(c *gin.Context) *domain.User {
	if v, ok := c.Get(principalKey); ok {
		if p, ok := v.(Principal); ok {
			return p.User
		}
	}
	return nil
}

// CurrentShop returns the authenticated seller set by RequireShop.
func CurrentShop(c *gin.Context) *domain.Shop {
	if v, ok := c.Get(principalKey); ok {
		if p, ok := v.(Principal); ok {
			return p.Shop
		}
	}
	return nil
}

func unauth(c *gin.Context, code, desc string) {
	c.Header("WWW-Authenticate", `Bearer error="`+code+`", error_description="`+desc+`"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": desc})
}

func forbidden(c *gin.Context, code, desc string) {
	c.Header("WWW-Authenticate", `Bearer error="`+code+`", error_description="`+desc+`"`)
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": desc})
}

package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tdngo/gomarket-api/internal/adapter/http/middleware"
	"github.com/tdngo/gomarket-api/internal/logging"
)

type Handlers struct {
	Users         *UserHandler
	Shops         *ShopHandler
	Products      *ProductHandler
	Events        *EventHandler
	Coupons       *CouponHandler
	Orders        *OrderHandler
	Withdrawals   *WithdrawHandler
	Conversations *ConversationHandler
}

func NewRouter(h Handlers, authz *middleware.Authz) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.MetricsMiddleware())
	r.Use(middleware.Logging(logging.New("http")))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	// Prometheus endpoint (scraped by Prometheus)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v2 := r.Group("/v2")

	user := v2.Group("/user")
	{
		user.POST("/register", h.Users.Register)
		user.POST("/login", h.Users.Login)
		user.GET("/me", authz.RequireUser(), h.Users.Me)
		user.PUT("/address", authz.RequireUser(), h.Users.UpsertAddress)
		user.DELETE("/address/:id", authz.RequireUser(), h.Users.DeleteAddress)
	}

	shop := v2.Group("/shop")
	{
		shop.POST("/register", h.Shops.Register)
		shop.POST("/login", h.Shops.Login)
		shop.GET("/me", authz.RequireShop(), h.Shops.Me)
		shop.GET("/:id", h.Shops.GetInfo)
		shop.PUT("/withdraw-method", authz.RequireShop(), h.Shops.SetWithdrawMethod)
	}

	product := v2.Group("/product")
	{
		product.POST("", authz.RequireShop(), h.Products.Create)
		product.GET("", h.Products.ListAll)
		product.GET("/shop/:shopId", h.Products.ListByShop)
		product.DELETE("/:id", authz.RequireShop(), h.Products.Delete)
		product.GET("/admin", authz.RequireAdmin(), h.Products.ListAll)
	}

	event := v2.Group("/event")
	{
		event.POST("", authz.RequireShop(), h.Events.Create)
		event.GET("", h.Events.ListAll)
		event.GET("/shop/:shopId", h.Events.ListByShop)
		event.DELETE("/:id", authz.RequireShop(), h.Events.Delete)
	}

	coupon := v2.Group("/coupon")
	{
		coupon.POST("", authz.RequireShop(), h.Coupons.Create)
		coupon.GET("/shop/:shopId", authz.RequireShop(), h.Coupons.ListByShop)
		coupon.GET("/value/:name", h.Coupons.GetByName)
		coupon.DELETE("/:id", authz.RequireShop(), h.Coupons.Delete)
	}

	order := v2.Group("/order")
	{
		order.POST("", authz.RequireUser(), h.Orders.Checkout)
		order.GET("/user/:userId", authz.RequireUser(), h.Orders.ListByUser)
		order.GET("/seller/:shopId", authz.RequireShop(), h.Orders.ListByShop)
		order.GET("/admin", authz.RequireAdmin(), h.Orders.ListAll)
		order.GET("/:id", h.Orders.GetByID)
		order.PUT("/:id/status", authz.RequireShop(), h.Orders.UpdateStatus)
		order.PUT("/:id/refund", authz.RequireUser(), h.Orders.RequestRefund)
		order.PUT("/:id/refund-success", authz.RequireShop(), h.Orders.AcceptRefund)
	}

	withdraw := v2.Group("/withdraw")
	{
		withdraw.POST("", authz.RequireShop(), h.Withdrawals.Create)
		withdraw.PUT("/:id", authz.RequireAdmin(), h.Withdrawals.Settle)
		withdraw.GET("/admin", authz.RequireAdmin(), h.Withdrawals.ListAll)
	}

	conversation := v2.Group("/conversation")
	{
		conversation.POST("", h.Conversations.Create)
		conversation.GET("/user/:memberId", h.Conversations.ListByMember)
		conversation.GET("/shop/:memberId", h.Conversations.ListByMember)
		conversation.PUT("/:id/last-message", h.Conversations.UpdateLastMessage)
	}

	message := v2.Group("/message")
	{
		message.POST("", h.Conversations.CreateMessage)
		message.GET("/:conversationId", h.Conversations.ListMessages)
	}

	return r
}

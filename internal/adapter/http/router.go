package http

import (
	"github.com/Benian44/ly-confection/internal/adapter/http/middleware"
	"github.com/Benian44/ly-confection/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(sh *ShopHandler, ah *AdminHandler, authz *middleware.Authz) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.MetricsMiddleware())

	l := logging.New("http")
	r.Use(middleware.Logging(l))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	// Prometheus endpoint (scraped by Prometheus)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	{
		v1.GET("/products", sh.ListProducts)

		v1.GET("/cart", sh.GetCart)
		v1.POST("/cart/items", sh.AddLine)
		v1.PATCH("/cart/items", sh.UpdateLine)
		v1.DELETE("/cart/items", sh.RemoveLine)

		v1.GET("/checkout", sh.FlowState)
		v1.POST("/checkout", sh.BeginCheckout)
		v1.POST("/checkout/back", sh.BackToCart)
		v1.POST("/checkout/submit", sh.Submit)
		v1.POST("/checkout/exit", sh.ExitSuccess)
	}

	admin := v1.Group("/admin")
	{
		admin.POST("/login", ah.Login)

		gated := admin.Group("", authz.RequireAdmin())
		gated.GET("/stats", ah.Stats)
		gated.GET("/orders", ah.ListOrders)
		gated.PATCH("/orders/:id/status", ah.UpdateOrderStatus)
		gated.POST("/products", ah.AddProduct)
	}

	return r
}

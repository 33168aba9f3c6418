package router

import (
	"fmt"
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/kostsaya/kost-manager/internal/api/handlers/payment"
	"github.com/kostsaya/kost-manager/internal/api/respond"
)

// New builds the HTTP routes. The verification endpoint sits behind a
// shared-key check; tenant-facing submission and status polling are open.
func New(handler *payment.Handler, adminKey string) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api/payments")

	api.POST("/", handler.Create)
	api.GET("/:id/status", handler.GetStatus)

	admin := api.Group("")
	admin.Use(adminOnly(adminKey))
	admin.POST("/:id/verify", handler.Verify)

	return e
}

// adminOnly rejects requests whose X-Admin-Key header does not match the
// configured key. An empty configured key disables the check (local dev).
func adminOnly(key string) func(c *ginext.Context) {
	return func(c *ginext.Context) {
		if key != "" && c.GetHeader("X-Admin-Key") != key {
			respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
			c.Abort()
			return
		}

		c.Next()
	}
}

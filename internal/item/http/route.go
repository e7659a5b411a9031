package http

import (
	"github.com/gin-gonic/gin"
	"github.com/nekogravitycat/shareit-backend/internal/auth"
)

// RegisterRoutes registers item-related routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/items")

	// The item card is readable without identity
	group.GET("/:id", auth.OptionalUserID(), h.Get)
	group.GET("/search", h.Search)

	// === Identified Routes ===
	identified := group.Group("")
	identified.Use(auth.UserIDRequired())
	{
		identified.GET("", h.List)
		identified.POST("", h.Create)
		identified.PATCH("/:id", h.Update)
		identified.DELETE("/:id", h.Delete)
		identified.POST("/:id/comment", h.AddComment)
	}
}

package shift

import (
	"go-shiftplan/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, idempotency gin.HandlerFunc) {
	shifts := r.Group("/shifts")
	shifts.Use(middleware.RestaurantScope())
	{
		shifts.GET("", h.GetWeek)
		shifts.GET("/roster", h.GetRosterWeek)
		shifts.POST("", idempotency, h.Create)
		shifts.PUT("/:id", idempotency, h.Update)
		shifts.DELETE("/:id", h.Delete)
	}
}

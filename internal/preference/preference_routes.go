package preference

import (
	"go-shiftplan/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	prefs := r.Group("/preferences")
	prefs.Use(middleware.RestaurantScope())
	{
		prefs.PUT("/employee/:employeeId", h.Upsert)
		prefs.GET("/employee/:employeeId", h.GetByEmployee)
	}
}

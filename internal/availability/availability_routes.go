package availability

import (
	"go-shiftplan/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	periods := r.Group("/availability")
	periods.Use(middleware.RestaurantScope())
	{
		periods.POST("", h.Create)
		periods.GET("/employee/:employeeId", h.GetByEmployee)
		periods.DELETE("/:id", h.Delete)
	}
}

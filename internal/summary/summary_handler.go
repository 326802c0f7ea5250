package summary

import (
	"net/http"

	"go-shiftplan/internal/middleware"
	"go-shiftplan/internal/shared/apperror"
	"go-shiftplan/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetWeekly(c *gin.Context) {
	restaurantID := c.GetString("restaurant_id")

	resp, err := h.service.GetWeeklySummary(
		c.Request.Context(),
		restaurantID,
		c.Param("employeeId"),
		c.Query("week_start"),
	)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetRoster(c *gin.Context) {
	restaurantID := c.GetString("restaurant_id")

	resp, err := h.service.GetRosterSummaries(c.Request.Context(), restaurantID, c.Query("week_start"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	summaries := r.Group("/summaries")
	summaries.Use(middleware.RestaurantScope())
	{
		summaries.GET("/employee/:employeeId", h.GetWeekly)
		summaries.GET("/roster", h.GetRoster)
	}
}

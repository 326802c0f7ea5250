package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RestaurantScope resolves the restaurant a request operates on from the
// X-Restaurant-ID header. Authentication and role checks live outside this
// service; a gateway in front of it is expected to have vetted the header.
func RestaurantScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Restaurant-ID")
		if rid == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"code":    "MISSING_RESTAURANT",
				"message": "X-Restaurant-ID header is required",
			})
			return
		}
		if _, err := uuid.Parse(rid); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"code":    "INVALID_RESTAURANT",
				"message": "X-Restaurant-ID must be a UUID",
			})
			return
		}

		c.Set("restaurant_id", rid)
		c.Next()
	}
}

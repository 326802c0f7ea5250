package autosave

import (
	"fmt"
	"net/http"

	"go-shiftplan/internal/middleware"
	"go-shiftplan/internal/shared/apperror"
	"go-shiftplan/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	queue *Queue
}

func NewHandler(queue *Queue) *Handler {
	return &Handler{queue: queue}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Batch enqueues grid edits for debounced persistence. Shape errors reject
// the individual entry; structural validation happens when the batch is
// flushed through the mutation pipeline.
func (h *Handler) Batch(c *gin.Context) {
	restaurantID := c.GetString("restaurant_id")

	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	var rejected []string
	enqueued := 0
	for _, m := range req.Mutations {
		mutation, ok := toMutation(restaurantID, m)
		if !ok {
			rejected = append(rejected, fmt.Sprintf("%s:%d", m.EmployeeID, m.Day))
			continue
		}
		h.queue.Enqueue(mutation)
		enqueued++
	}

	response.Success(c, http.StatusAccepted, BatchResponse{
		Enqueued: enqueued,
		Rejected: rejected,
	}, nil)
}

func (h *Handler) Flush(c *gin.Context) {
	if err := h.queue.Flush(); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"flushed": true}, nil)
}

func toMutation(restaurantID string, m BatchMutation) (Mutation, bool) {
	mutation := Mutation{
		Key:          Key{EmployeeID: m.EmployeeID, Day: m.Day},
		RestaurantID: restaurantID,
		Op:           Op(m.Op),
		ShiftID:      m.ShiftID,
		Create:       m.Create,
		Update:       m.Update,
	}

	switch mutation.Op {
	case OpCreate:
		if m.Create == nil {
			return Mutation{}, false
		}
	case OpUpdate:
		if m.Update == nil || m.ShiftID == "" {
			return Mutation{}, false
		}
	case OpDelete:
		if m.ShiftID == "" {
			return Mutation{}, false
		}
	}
	return mutation, true
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	shifts := r.Group("/shifts")
	shifts.Use(middleware.RestaurantScope())
	{
		shifts.POST("/batch", h.Batch)
		shifts.POST("/flush", h.Flush)
	}
}

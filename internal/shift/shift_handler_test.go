package shift_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-shiftplan/internal/shared/apperror"
	"go-shiftplan/internal/shift"
	shifterrors "go-shiftplan/internal/shift/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeShiftService struct {
	CreateFn        func(ctx context.Context, restaurantID string, req shift.CreateShiftRequest) (shift.ShiftResponse, error)
	UpdateFn        func(ctx context.Context, restaurantID, id string, req shift.UpdateShiftRequest) (shift.ShiftResponse, error)
	DeleteFn        func(ctx context.Context, restaurantID, id string) error
	GetWeekFn       func(ctx context.Context, restaurantID, employeeID, weekStart string) ([]shift.ShiftResponse, error)
	GetRosterWeekFn func(ctx context.Context, restaurantID, weekStart string) ([]shift.ShiftResponse, error)
}

func (f *fakeShiftService) Create(ctx context.Context, restaurantID string, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	return f.CreateFn(ctx, restaurantID, req)
}
func (f *fakeShiftService) Update(ctx context.Context, restaurantID, id string, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	return f.UpdateFn(ctx, restaurantID, id, req)
}
func (f *fakeShiftService) Delete(ctx context.Context, restaurantID, id string) error {
	return f.DeleteFn(ctx, restaurantID, id)
}
func (f *fakeShiftService) GetWeek(ctx context.Context, restaurantID, employeeID, weekStart string) ([]shift.ShiftResponse, error) {
	return f.GetWeekFn(ctx, restaurantID, employeeID, weekStart)
}
func (f *fakeShiftService) GetRosterWeek(ctx context.Context, restaurantID, weekStart string) ([]shift.ShiftResponse, error) {
	return f.GetRosterWeekFn(ctx, restaurantID, weekStart)
}

func setupRouter(svc shift.Service, restaurantID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	api.Use(func(c *gin.Context) {
		c.Request.Header.Set("X-Restaurant-ID", restaurantID)
		c.Next()
	})
	noop := func(c *gin.Context) { c.Next() }
	shift.RegisterRoutes(api, shift.NewHandler(svc), noop)
	return r
}

func TestShiftHandler_Create(t *testing.T) {
	restaurantID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		employeeID := uuid.New().String()
		svc := &fakeShiftService{
			CreateFn: func(ctx context.Context, rid string, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
				assert.Equal(t, restaurantID, rid)
				assert.Equal(t, employeeID, req.EmployeeID)
				assert.Equal(t, 2, req.Day)
				return shift.ShiftResponse{ID: uuid.New().String(), EmployeeID: employeeID, Day: 2}, nil
			},
		}
		router := setupRouter(svc, restaurantID)

		body := `{"employee_id":"` + employeeID + `","week_start":"2026-03-02","day":2,"start_time":"09:00","end_time":"14:00"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/shifts", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"ok":true`)
	})

	t.Run("negative - overlap surfaces as 409 with code", func(t *testing.T) {
		svc := &fakeShiftService{
			CreateFn: func(ctx context.Context, rid string, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
				return shift.ShiftResponse{}, shifterrors.ErrShiftOverlap
			},
		}
		router := setupRouter(svc, restaurantID)

		body := `{"employee_id":"` + uuid.New().String() + `","week_start":"2026-03-02","day":2,"start_time":"09:00","end_time":"14:00"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/shifts", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeShiftOverlap)
	})

	t.Run("negative - malformed body rejected before the service", func(t *testing.T) {
		svc := &fakeShiftService{
			CreateFn: func(ctx context.Context, rid string, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
				t.Fatal("service must not be called")
				return shift.ShiftResponse{}, nil
			},
		}
		router := setupRouter(svc, restaurantID)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/shifts", strings.NewReader(`{"day":2}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative - missing restaurant header", func(t *testing.T) {
		svc := &fakeShiftService{}
		gin.SetMode(gin.TestMode)
		r := gin.New()
		api := r.Group("/api/v1")
		noop := func(c *gin.Context) { c.Next() }
		shift.RegisterRoutes(api, shift.NewHandler(svc), noop)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/shifts?employee_id=x&week_start=2026-03-02", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestShiftHandler_GetWeek(t *testing.T) {
	restaurantID := uuid.New().String()

	t.Run("success - query params forwarded", func(t *testing.T) {
		employeeID := uuid.New().String()
		svc := &fakeShiftService{
			GetWeekFn: func(ctx context.Context, rid, eid, weekStart string) ([]shift.ShiftResponse, error) {
				assert.Equal(t, employeeID, eid)
				assert.Equal(t, "2026-03-02", weekStart)
				return []shift.ShiftResponse{{EmployeeID: eid, Day: 0}}, nil
			},
		}
		router := setupRouter(svc, restaurantID)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/shifts?employee_id="+employeeID+"&week_start=2026-03-02", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), employeeID)
	})
}

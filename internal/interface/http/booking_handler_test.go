package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/staybook/backend/internal/application"
	"github.com/staybook/backend/internal/domain/entity"
	"github.com/staybook/backend/internal/infrastructure/catalog"
	"github.com/staybook/backend/internal/infrastructure/memory"
	"github.com/staybook/backend/pkg/validation"
)

func newBookingRouter(t *testing.T) (*gin.Engine, *application.BookingService, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	ids := memory.NewIdentityRepository()
	u := &entity.Identity{Phone: "5551234567"}
	require.NoError(t, ids.Create(context.Background(), u))

	svc := &application.BookingService{
		Reservations: memory.NewReservationRepository(),
		Identities:   ids,
		Catalog:      catalog.NewStatic(),
	}
	h := NewBookingHandler(svc, nil)

	r := gin.New()
	// stands in for the auth middleware
	r.Use(func(c *gin.Context) {
		c.Set("userID", u.ID)
		c.Next()
	})
	r.POST("/api/bookings", h.Create)
	r.GET("/api/bookings", h.List)
	r.GET("/api/bookings/:id", h.Get)
	r.DELETE("/api/bookings/:id", h.Cancel)
	return r, svc, u.ID
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    map[string]any  `json:"meta"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestCreateBookingEndpoint(t *testing.T) {
	r, _, _ := newBookingRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/bookings", gin.H{
		"hotel_id":  "h1",
		"room_id":   "r1",
		"check_in":  "2025-06-01",
		"check_out": "2025-06-04",
		"guests":    2,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.True(t, env.Success)

	var view struct {
		ID         string  `json:"id"`
		HotelName  string  `json:"hotel_name"`
		TotalPrice float64 `json:"total_price"`
		Status     string  `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &view))
	require.NotEmpty(t, view.ID)
	require.Equal(t, "Oceanfront Resort & Spa", view.HotelName)
	require.Equal(t, 897.0, view.TotalPrice)
	require.Equal(t, "confirmed", view.Status)
}

func TestCreateBookingValidation(t *testing.T) {
	r, _, _ := newBookingRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/bookings", gin.H{
		"hotel_id": "h1",
		"room_id":  "r1",
		"check_in": "June 1st", // not a date
		"guests":   2,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.False(t, env.Success)
}

func TestCreateBookingBadStayAndGuests(t *testing.T) {
	r, _, _ := newBookingRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/bookings", gin.H{
		"hotel_id": "h1", "room_id": "r1",
		"check_in": "2025-06-04", "check_out": "2025-06-01", "guests": 2,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/bookings", gin.H{
		"hotel_id": "h1", "room_id": "r1",
		"check_in": "2025-06-01", "check_out": "2025-06-02", "guests": 5,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBookingUnknownHotel(t *testing.T) {
	r, _, _ := newBookingRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/bookings", gin.H{
		"hotel_id": "nope", "room_id": "r1",
		"check_in": "2025-06-01", "check_out": "2025-06-02", "guests": 1,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestListBookingsPartition(t *testing.T) {
	r, svc, uid := newBookingRouter(t)
	ctx := context.Background()

	book := func(hotel, room string) *entity.Reservation {
		res, err := svc.Create(ctx, uid, application.CreateReservationInput{
			HotelID: hotel, RoomID: room,
			CheckIn:  mustDate(t, "2025-06-01"),
			CheckOut: mustDate(t, "2025-06-03"),
			Guests:   2,
		})
		require.NoError(t, err)
		return res
	}
	keep := book("h1", "r1")
	drop := book("h2", "r3")
	require.NoError(t, svc.Cancel(ctx, uid, drop.ID))

	w, env := doJSON(t, r, http.MethodGet, "/api/bookings", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Upcoming []struct {
			ID string `json:"id"`
		} `json:"upcoming"`
		Past []struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"past"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Upcoming, 1)
	require.Equal(t, keep.ID, data.Upcoming[0].ID)
	require.Len(t, data.Past, 1)
	require.Equal(t, drop.ID, data.Past[0].ID)
	require.Equal(t, "cancelled", data.Past[0].Status)
	require.EqualValues(t, 2, env.Meta["total"])
}

func TestGetBookingNotFound(t *testing.T) {
	r, _, _ := newBookingRouter(t)

	w, env := doJSON(t, r, http.MethodGet, "/api/bookings/missing", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.False(t, env.Success)
}

func TestCancelBookingAlwaysSucceeds(t *testing.T) {
	r, svc, uid := newBookingRouter(t)
	ctx := context.Background()

	res, err := svc.Create(ctx, uid, application.CreateReservationInput{
		HotelID: "h1", RoomID: "r1",
		CheckIn:  mustDate(t, "2025-06-01"),
		CheckOut: mustDate(t, "2025-06-02"),
		Guests:   2,
	})
	require.NoError(t, err)

	w, env := doJSON(t, r, http.MethodDelete, "/api/bookings/"+res.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, env.Success)

	// unknown id is still a success
	w, env = doJSON(t, r, http.MethodDelete, "/api/bookings/never-existed", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, env.Success)
}

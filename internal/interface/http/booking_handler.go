package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/staybook/backend/internal/application"
	"github.com/staybook/backend/internal/domain/entity"
	"github.com/staybook/backend/pkg/response"
	"github.com/staybook/backend/pkg/validation"
)

type BookingHandler struct {
	Svc    *application.BookingService
	Logger *logrus.Logger
}

func NewBookingHandler(svc *application.BookingService, logger *logrus.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

type createBookingRequest struct {
	HotelID  string `json:"hotel_id" binding:"required"`
	RoomID   string `json:"room_id" binding:"required"`
	CheckIn  string `json:"check_in" binding:"required,bookdate"`
	CheckOut string `json:"check_out" binding:"required,bookdate"`
	Guests   int    `json:"guests" binding:"required,gte=1"`
}

type reservationView struct {
	ID         string    `json:"id"`
	HotelID    string    `json:"hotel_id"`
	RoomID     string    `json:"room_id"`
	HotelName  string    `json:"hotel_name"`
	RoomName   string    `json:"room_name"`
	CheckIn    string    `json:"check_in"`
	CheckOut   string    `json:"check_out"`
	Guests     int       `json:"guests"`
	TotalPrice float64   `json:"total_price"`
	Status     string    `json:"status"`
	Image      string    `json:"image"`
	CreatedAt  time.Time `json:"created_at"`
}

func toView(r *entity.Reservation) reservationView {
	return reservationView{
		ID:         r.ID,
		HotelID:    r.HotelID,
		RoomID:     r.RoomID,
		HotelName:  r.HotelName,
		RoomName:   r.RoomName,
		CheckIn:    r.CheckIn.Format("2006-01-02"),
		CheckOut:   r.CheckOut.Format("2006-01-02"),
		Guests:     r.Guests,
		TotalPrice: r.TotalPrice,
		Status:     string(r.Status),
		Image:      r.Image,
		CreatedAt:  r.CreatedAt,
	}
}

// Create POST /api/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	checkIn, _ := time.Parse("2006-01-02", req.CheckIn)
	checkOut, _ := time.Parse("2006-01-02", req.CheckOut)

	r, err := h.Svc.Create(c.Request.Context(), c.GetString("userID"), application.CreateReservationInput{
		HotelID:  req.HotelID,
		RoomID:   req.RoomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   req.Guests,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrHotelNotFound), errors.Is(err, application.ErrRoomNotFound):
			response.Error[any](c, http.StatusNotFound, err.Error(), nil)
		case errors.Is(err, application.ErrInvalidStay), errors.Is(err, application.ErrGuestCount):
			response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
		default:
			response.Error[any](c, http.StatusInternalServerError, "failed to create booking", nil)
		}
		return
	}
	response.Success(c, http.StatusCreated, toView(r), "booking confirmed", nil)
}

// List GET /api/bookings — ledger partitioned into upcoming and past stays.
func (h *BookingHandler) List(c *gin.Context) {
	all, err := h.Svc.List(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to load bookings", nil)
		return
	}
	upcoming := []reservationView{}
	past := []reservationView{}
	for _, r := range all {
		if r.Status.Upcoming() {
			upcoming = append(upcoming, toView(r))
		} else {
			past = append(past, toView(r))
		}
	}
	response.Success(c, http.StatusOK, gin.H{"upcoming": upcoming, "past": past}, "bookings",
		map[string]any{"total": len(all)})
}

// Get GET /api/bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	r, err := h.Svc.FindByID(c.Request.Context(), c.GetString("userID"), c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrReservationNotFound) {
			response.Error[any](c, http.StatusNotFound, "booking not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to load booking", nil)
		return
	}
	response.Success(c, http.StatusOK, toView(r), "booking", nil)
}

// Cancel DELETE /api/bookings/:id — idempotent; an unknown id still succeeds.
func (h *BookingHandler) Cancel(c *gin.Context) {
	if err := h.Svc.Cancel(c.Request.Context(), c.GetString("userID"), c.Param("id")); err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to cancel booking", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"cancelled": true}, "booking cancelled", nil)
}

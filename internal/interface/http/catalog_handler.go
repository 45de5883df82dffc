package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/staybook/backend/internal/application"
	"github.com/staybook/backend/pkg/response"
)

type CatalogHandler struct {
	Svc    *application.CatalogService
	Logger *logrus.Logger
}

func NewCatalogHandler(svc *application.CatalogService, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{Svc: svc, Logger: logger}
}

// List GET /api/hotels
func (h *CatalogHandler) List(c *gin.Context) {
	hotels := h.Svc.Hotels()
	response.Success(c, http.StatusOK, hotels, "hotels", map[string]any{"total": len(hotels)})
}

// Get GET /api/hotels/:id
func (h *CatalogHandler) Get(c *gin.Context) {
	hotel, ok := h.Svc.HotelByID(c.Param("id"))
	if !ok {
		response.Error[any](c, http.StatusNotFound, "hotel not found", nil)
		return
	}
	response.Success(c, http.StatusOK, hotel, "hotel", nil)
}

// GetRoom GET /api/hotels/:id/rooms/:roomID
func (h *CatalogHandler) GetRoom(c *gin.Context) {
	hotel, room, ok := h.Svc.RoomByID(c.Param("id"), c.Param("roomID"))
	if !ok {
		response.Error[any](c, http.StatusNotFound, "room not found", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"hotel_id": hotel.ID, "hotel_name": hotel.Name, "room": room}, "room", nil)
}

// Search GET /api/hotels/search?q=beach&size=10
func (h *CatalogHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "q is required", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hotels, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "search failed", nil)
		return
	}
	response.Success(c, http.StatusOK, hotels, "search results", map[string]any{"total": len(hotels)})
}

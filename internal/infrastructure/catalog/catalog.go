// Package catalog holds the static hotel/room reference data. The booking
// demo has no inventory backend; the fixture list is the whole universe.
package catalog

import (
	"github.com/staybook/backend/internal/domain/entity"
	"github.com/staybook/backend/internal/domain/repository"
)

type Static struct {
	hotels []entity.Hotel
}

// NewStatic returns the fixture-backed catalog.
func NewStatic() *Static {
	return &Static{hotels: fixture}
}

// NewWithHotels builds a catalog over the given list. Tests use it.
func NewWithHotels(hotels []entity.Hotel) *Static {
	return &Static{hotels: hotels}
}

// Hotels returns the full list. Callers must treat it as read-only.
func (c *Static) Hotels() []entity.Hotel {
	return c.hotels
}

func (c *Static) HotelByID(id string) (*entity.Hotel, bool) {
	for i := range c.hotels {
		if c.hotels[i].ID == id {
			return &c.hotels[i], true
		}
	}
	return nil, false
}

func (c *Static) RoomByID(hotelID, roomID string) (*entity.Hotel, *entity.Room, bool) {
	h, ok := c.HotelByID(hotelID)
	if !ok {
		return nil, nil, false
	}
	for i := range h.Rooms {
		if h.Rooms[i].ID == roomID {
			return h, &h.Rooms[i], true
		}
	}
	return nil, nil, false
}

var _ repository.Catalog = (*Static)(nil)

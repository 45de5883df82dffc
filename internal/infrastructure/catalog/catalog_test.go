package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/staybook/backend/internal/domain/entity"
)

func TestStaticFixture(t *testing.T) {
	c := NewStatic()

	hotels := c.Hotels()
	require.Len(t, hotels, 3)

	for _, h := range hotels {
		require.NotEmpty(t, h.ID)
		require.NotEmpty(t, h.Name)
		require.NotEmpty(t, h.Location)
		require.NotEmpty(t, h.Rooms)
		for _, r := range h.Rooms {
			require.NotEmpty(t, r.ID)
			require.Greater(t, r.Price, 0.0)
			require.GreaterOrEqual(t, r.Capacity, 1)
		}
	}
}

func TestHotelByID(t *testing.T) {
	c := NewStatic()

	h, ok := c.HotelByID("h1")
	require.True(t, ok)
	require.Equal(t, "Oceanfront Resort & Spa", h.Name)

	_, ok = c.HotelByID("nope")
	require.False(t, ok)
}

func TestRoomByID(t *testing.T) {
	c := NewStatic()

	h, r, ok := c.RoomByID("h1", "r1")
	require.True(t, ok)
	require.Equal(t, "h1", h.ID)
	require.Equal(t, "Deluxe Ocean View", r.Name)
	require.Equal(t, 299.0, r.Price)

	_, _, ok = c.RoomByID("h1", "r3")
	require.False(t, ok)

	_, _, ok = c.RoomByID("nope", "r1")
	require.False(t, ok)
}

func TestNewWithHotels(t *testing.T) {
	c := NewWithHotels([]entity.Hotel{{ID: "x1", Name: "Test Inn", Rooms: []entity.Room{{ID: "rx", Price: 100, Capacity: 1}}}})

	require.Len(t, c.Hotels(), 1)
	_, r, ok := c.RoomByID("x1", "rx")
	require.True(t, ok)
	require.Equal(t, 100.0, r.Price)
}

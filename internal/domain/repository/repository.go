package repository

import (
	"context"
	"errors"

	"github.com/staybook/backend/internal/domain/entity"
)

// ErrNotFound is returned by repositories when no row matches a lookup.
var ErrNotFound = errors.New("not found")

// IdentityRepository defines persistence for authenticated identities.
type IdentityRepository interface {
	Create(ctx context.Context, id *entity.Identity) error
	GetByID(ctx context.Context, id string) (*entity.Identity, error)
	GetByPhone(ctx context.Context, phone string) (*entity.Identity, error)
	Update(ctx context.Context, id *entity.Identity) error
}

// ReservationRepository defines persistence for the booking ledger. List must
// return reservations in insertion order; callers rely on it being stable.
type ReservationRepository interface {
	Create(ctx context.Context, r *entity.Reservation) error
	GetByID(ctx context.Context, identityID, id string) (*entity.Reservation, error)
	ListByIdentity(ctx context.Context, identityID string) ([]*entity.Reservation, error)
	// SetStatus rewrites the status of the matching reservation and reports
	// whether a row matched. A missing id is not an error.
	SetStatus(ctx context.Context, identityID, id string, status entity.ReservationStatus) (bool, error)
}

// Catalog is the static hotel/room reference data. Lookups are pure and total
// over a fixed in-memory list.
type Catalog interface {
	Hotels() []entity.Hotel
	HotelByID(id string) (*entity.Hotel, bool)
	RoomByID(hotelID, roomID string) (*entity.Hotel, *entity.Room, bool)
}

package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/staybook/backend/internal/domain/entity"
	repo "github.com/staybook/backend/internal/domain/repository"
	"github.com/staybook/backend/pkg/helpers"
	"github.com/staybook/backend/pkg/notifier"
	tpl "github.com/staybook/backend/pkg/notifier/templates"
)

var (
	ErrHotelNotFound       = errors.New("hotel not found")
	ErrRoomNotFound        = errors.New("room not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidStay         = errors.New("check-out must be after check-in")
	ErrGuestCount          = errors.New("guest count exceeds room capacity")
)

// BookingService owns the reservation ledger: create, cancel, and lookups.
// It does not check authentication itself; routes gate access before the
// service is reached.
type BookingService struct {
	Reservations repo.ReservationRepository
	Identities   repo.IdentityRepository
	Catalog      repo.Catalog
	Logger       *logrus.Logger
	Pub          *helpers.RabbitPublisher
	NotifyEmails bool
}

type CreateReservationInput struct {
	HotelID  string
	RoomID   string
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
}

// Create prices the stay off the catalog, snapshots the hotel/room display
// fields, and appends a confirmed reservation to the ledger.
func (s *BookingService) Create(ctx context.Context, identityID string, in CreateReservationInput) (*entity.Reservation, error) {
	hotel, room, ok := s.Catalog.RoomByID(in.HotelID, in.RoomID)
	if !ok {
		if _, hotelOK := s.Catalog.HotelByID(in.HotelID); !hotelOK {
			return nil, ErrHotelNotFound
		}
		return nil, ErrRoomNotFound
	}

	if !in.CheckOut.After(in.CheckIn) {
		return nil, ErrInvalidStay
	}
	if in.Guests < 1 || in.Guests > room.Capacity {
		return nil, ErrGuestCount
	}

	nights := entity.Nights(in.CheckIn, in.CheckOut)
	image := ""
	if len(room.Images) > 0 {
		image = room.Images[0]
	} else if len(hotel.Images) > 0 {
		image = hotel.Images[0]
	}

	r := &entity.Reservation{
		IdentityID: identityID,
		HotelID:    hotel.ID,
		RoomID:     room.ID,
		HotelName:  hotel.Name,
		RoomName:   room.Name,
		CheckIn:    in.CheckIn,
		CheckOut:   in.CheckOut,
		Guests:     in.Guests,
		TotalPrice: room.Price * float64(nights),
		Status:     entity.StatusConfirmed,
		Image:      image,
	}
	if err := s.Reservations.Create(ctx, r); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("hotel_id", hotel.ID).Error("persist reservation failed")
		}
		return nil, err
	}

	s.notify(ctx, identityID, r, tpl.BookingConfirmed)
	return r, nil
}

// Cancel marks the reservation cancelled, leaving every other field
// untouched. An unknown id is a benign no-op; calling it again is too.
func (s *BookingService) Cancel(ctx context.Context, identityID, id string) error {
	found, err := s.Reservations.SetStatus(ctx, identityID, id, entity.StatusCancelled)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("reservation_id", id).Error("cancel reservation failed")
		}
		return err
	}
	if found {
		if r, gErr := s.Reservations.GetByID(ctx, identityID, id); gErr == nil {
			s.notify(ctx, identityID, r, tpl.BookingCancelled)
		}
	}
	return nil
}

func (s *BookingService) FindByID(ctx context.Context, identityID, id string) (*entity.Reservation, error) {
	r, err := s.Reservations.GetByID(ctx, identityID, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// List returns the full ledger in insertion order.
func (s *BookingService) List(ctx context.Context, identityID string) ([]*entity.Reservation, error) {
	return s.Reservations.ListByIdentity(ctx, identityID)
}

// notify enqueues a booking email when the identity has one on file.
// Best-effort: the reservation stands whether or not the job lands.
func (s *BookingService) notify(ctx context.Context, identityID string, r *entity.Reservation, template string) {
	if s.Pub == nil || !s.NotifyEmails {
		return
	}
	u, err := s.Identities.GetByID(ctx, identityID)
	if err != nil || u.Email == "" {
		return
	}
	name := u.Name
	if name == "" {
		name = u.Phone
	}
	job := notifier.Job{
		Channel:  notifier.ChannelEmail,
		To:       u.Email,
		Template: template,
		Data: map[string]any{
			"Name":          name,
			"HotelName":     r.HotelName,
			"RoomName":      r.RoomName,
			"CheckIn":       r.CheckIn.Format("2006-01-02"),
			"CheckOut":      r.CheckOut.Format("2006-01-02"),
			"Guests":        r.Guests,
			"TotalPrice":    fmt.Sprintf("%.2f", r.TotalPrice),
			"ReservationID": r.ID,
		},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("reservation_id", r.ID).Warn("enqueue booking email failed")
	}
}

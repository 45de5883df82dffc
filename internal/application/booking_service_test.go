package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/staybook/backend/internal/domain/entity"
	"github.com/staybook/backend/internal/infrastructure/catalog"
	"github.com/staybook/backend/internal/infrastructure/memory"
)

func newBookingService(t *testing.T) (*BookingService, string) {
	t.Helper()
	ids := memory.NewIdentityRepository()
	u := &entity.Identity{Phone: "5551234567"}
	require.NoError(t, ids.Create(context.Background(), u))

	svc := &BookingService{
		Reservations: memory.NewReservationRepository(),
		Identities:   ids,
		Catalog:      catalog.NewStatic(),
	}
	return svc, u.ID
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestCreateReservationPricesTheStay(t *testing.T) {
	svc, uid := newBookingService(t)
	ctx := context.Background()

	r, err := svc.Create(ctx, uid, CreateReservationInput{
		HotelID:  "h1",
		RoomID:   "r1",
		CheckIn:  day(t, "2025-06-01"),
		CheckOut: day(t, "2025-06-04"),
		Guests:   2,
	})
	require.NoError(t, err)

	// r1 is $299/night; three nights
	require.Equal(t, 299*3.0, r.TotalPrice)
	require.Equal(t, entity.StatusConfirmed, r.Status)
	require.NotEmpty(t, r.ID)
	require.Equal(t, "Oceanfront Resort & Spa", r.HotelName)
	require.Equal(t, "Deluxe Ocean View", r.RoomName)
	require.NotEmpty(t, r.Image)
}

func TestCreateReservationUnknownHotelAndRoom(t *testing.T) {
	svc, uid := newBookingService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, uid, CreateReservationInput{
		HotelID: "nope", RoomID: "r1",
		CheckIn: day(t, "2025-06-01"), CheckOut: day(t, "2025-06-02"), Guests: 1,
	})
	require.ErrorIs(t, err, ErrHotelNotFound)

	_, err = svc.Create(ctx, uid, CreateReservationInput{
		HotelID: "h1", RoomID: "r99",
		CheckIn: day(t, "2025-06-01"), CheckOut: day(t, "2025-06-02"), Guests: 1,
	})
	require.ErrorIs(t, err, ErrRoomNotFound)
}

func TestCreateReservationRejectsBadStay(t *testing.T) {
	svc, uid := newBookingService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, uid, CreateReservationInput{
		HotelID: "h1", RoomID: "r1",
		CheckIn: day(t, "2025-06-04"), CheckOut: day(t, "2025-06-01"), Guests: 1,
	})
	require.ErrorIs(t, err, ErrInvalidStay)

	_, err = svc.Create(ctx, uid, CreateReservationInput{
		HotelID: "h1", RoomID: "r1",
		CheckIn: day(t, "2025-06-01"), CheckOut: day(t, "2025-06-01"), Guests: 1,
	})
	require.ErrorIs(t, err, ErrInvalidStay)

	// r1 sleeps 2
	_, err = svc.Create(ctx, uid, CreateReservationInput{
		HotelID: "h1", RoomID: "r1",
		CheckIn: day(t, "2025-06-01"), CheckOut: day(t, "2025-06-02"), Guests: 3,
	})
	require.ErrorIs(t, err, ErrGuestCount)

	_, err = svc.Create(ctx, uid, CreateReservationInput{
		HotelID: "h1", RoomID: "r1",
		CheckIn: day(t, "2025-06-01"), CheckOut: day(t, "2025-06-02"), Guests: 0,
	})
	require.ErrorIs(t, err, ErrGuestCount)
}

func TestCancelChangesOnlyStatus(t *testing.T) {
	svc, uid := newBookingService(t)
	ctx := context.Background()

	r, err := svc.Create(ctx, uid, CreateReservationInput{
		HotelID: "h2", RoomID: "r4",
		CheckIn: day(t, "2025-07-10"), CheckOut: day(t, "2025-07-12"), Guests: 4,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, uid, r.ID))

	got, err := svc.FindByID(ctx, uid, r.ID)
	require.NoError(t, err)
	require.Equal(t, entity.StatusCancelled, got.Status)

	// everything else byte-for-byte unchanged
	want := *r
	want.Status = entity.StatusCancelled
	require.Equal(t, &want, got)
}

func TestCancelIsIdempotent(t *testing.T) {
	svc, uid := newBookingService(t)
	ctx := context.Background()

	r, err := svc.Create(ctx, uid, CreateReservationInput{
		HotelID: "h3", RoomID: "r5",
		CheckIn: day(t, "2025-08-01"), CheckOut: day(t, "2025-08-03"), Guests: 2,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, uid, r.ID))
	require.NoError(t, svc.Cancel(ctx, uid, r.ID))

	got, err := svc.FindByID(ctx, uid, r.ID)
	require.NoError(t, err)
	require.Equal(t, entity.StatusCancelled, got.Status)
}

func TestCancelUnknownIDIsANoOp(t *testing.T) {
	svc, uid := newBookingService(t)
	ctx := context.Background()

	r, err := svc.Create(ctx, uid, CreateReservationInput{
		HotelID: "h1", RoomID: "r2",
		CheckIn: day(t, "2025-09-01"), CheckOut: day(t, "2025-09-05"), Guests: 3,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, uid, "does-not-exist"))

	all, err := svc.List(ctx, uid)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, entity.StatusConfirmed, all[0].Status)
	require.Equal(t, r.ID, all[0].ID)
}

func TestListPreservesInsertionOrder(t *testing.T) {
	svc, uid := newBookingService(t)
	ctx := context.Background()

	stays := []struct{ hotel, room string }{
		{"h1", "r1"}, {"h2", "r3"}, {"h3", "r6"}, {"h1", "r2"},
	}
	var ids []string
	for i, s := range stays {
		r, err := svc.Create(ctx, uid, CreateReservationInput{
			HotelID: s.hotel, RoomID: s.room,
			CheckIn:  day(t, "2025-06-01").AddDate(0, 0, i*10),
			CheckOut: day(t, "2025-06-03").AddDate(0, 0, i*10),
			Guests:   2,
		})
		require.NoError(t, err)
		ids = append(ids, r.ID)
	}

	all, err := svc.List(ctx, uid)
	require.NoError(t, err)
	require.Len(t, all, len(ids))
	for i, r := range all {
		require.Equal(t, ids[i], r.ID)
	}
}

func TestFindByIDUnknown(t *testing.T) {
	svc, uid := newBookingService(t)
	_, err := svc.FindByID(context.Background(), uid, "missing")
	require.ErrorIs(t, err, ErrReservationNotFound)
}

func TestLedgerIsScopedPerIdentity(t *testing.T) {
	svc, uid := newBookingService(t)
	ctx := context.Background()

	other := &entity.Identity{Phone: "5559990000"}
	require.NoError(t, svc.Identities.Create(ctx, other))

	r, err := svc.Create(ctx, uid, CreateReservationInput{
		HotelID: "h1", RoomID: "r1",
		CheckIn: day(t, "2025-06-01"), CheckOut: day(t, "2025-06-02"), Guests: 2,
	})
	require.NoError(t, err)

	_, err = svc.FindByID(ctx, other.ID, r.ID)
	require.ErrorIs(t, err, ErrReservationNotFound)

	// cancelling through the wrong identity must not touch the booking
	require.NoError(t, svc.Cancel(ctx, other.ID, r.ID))
	got, err := svc.FindByID(ctx, uid, r.ID)
	require.NoError(t, err)
	require.Equal(t, entity.StatusConfirmed, got.Status)
}

package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/staybook/backend/internal/domain/entity"
	"github.com/staybook/backend/internal/domain/repository"
)

type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

func (r *ReservationRepository) Create(ctx context.Context, b *entity.Reservation) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO reservations
			(identity_id, hotel_id, room_id, hotel_name, room_name,
			 check_in, check_out, guests, total_price, status, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`, b.IdentityID, b.HotelID, b.RoomID, b.HotelName, b.RoomName,
		b.CheckIn, b.CheckOut, b.Guests, b.TotalPrice, string(b.Status), b.Image)

	return row.Scan(&b.ID, &b.CreatedAt)
}

func (r *ReservationRepository) GetByID(ctx context.Context, identityID, id string) (*entity.Reservation, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, identity_id, hotel_id, room_id, hotel_name, room_name,
		       check_in, check_out, guests, total_price, status, image, created_at
		FROM reservations
		WHERE identity_id = $1 AND id = $2
	`, identityID, id)

	b, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// ListByIdentity returns the ledger in insertion order (seq is a bigserial).
func (r *ReservationRepository) ListByIdentity(ctx context.Context, identityID string) ([]*entity.Reservation, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, identity_id, hotel_id, room_id, hotel_name, room_name,
		       check_in, check_out, guests, total_price, status, image, created_at
		FROM reservations
		WHERE identity_id = $1
		ORDER BY seq
	`, identityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Reservation
	for rows.Next() {
		b, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *ReservationRepository) SetStatus(ctx context.Context, identityID, id string, status entity.ReservationStatus) (bool, error) {
	res, err := r.pool.Exec(ctx, `
		UPDATE reservations
		SET status = $1
		WHERE identity_id = $2 AND id = $3
	`, string(status), identityID, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func scanReservation(row pgx.Row) (*entity.Reservation, error) {
	b := &entity.Reservation{}
	var status string
	if err := row.Scan(&b.ID, &b.IdentityID, &b.HotelID, &b.RoomID, &b.HotelName,
		&b.RoomName, &b.CheckIn, &b.CheckOut, &b.Guests, &b.TotalPrice,
		&status, &b.Image, &b.CreatedAt); err != nil {
		return nil, err
	}
	b.Status = entity.ReservationStatus(status)
	return b, nil
}

var _ repository.ReservationRepository = (*ReservationRepository)(nil)

package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/staybook/backend/internal/domain/entity"
	"github.com/staybook/backend/internal/domain/repository"
)

type IdentityRepository struct {
	pool *pgxpool.Pool
}

func NewIdentityRepository(pool *pgxpool.Pool) *IdentityRepository {
	return &IdentityRepository{pool: pool}
}

func (r *IdentityRepository) Create(ctx context.Context, u *entity.Identity) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO identities (phone, name, email, avatar_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, u.Phone, u.Name, u.Email, u.AvatarURL)

	return row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}

func (r *IdentityRepository) GetByID(ctx context.Context, id string) (*entity.Identity, error) {
	return r.get(ctx, `
		SELECT id, phone, name, email, avatar_url, created_at, updated_at
		FROM identities
		WHERE id = $1
	`, id)
}

func (r *IdentityRepository) GetByPhone(ctx context.Context, phone string) (*entity.Identity, error) {
	return r.get(ctx, `
		SELECT id, phone, name, email, avatar_url, created_at, updated_at
		FROM identities
		WHERE phone = $1
	`, phone)
}

func (r *IdentityRepository) get(ctx context.Context, query, arg string) (*entity.Identity, error) {
	u := &entity.Identity{}
	row := r.pool.QueryRow(ctx, query, arg)
	if err := row.Scan(&u.ID, &u.Phone, &u.Name, &u.Email, &u.AvatarURL,
		&u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *IdentityRepository) Update(ctx context.Context, u *entity.Identity) error {
	u.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE identities
		SET name = $1, email = $2, avatar_url = $3, updated_at = $4
		WHERE id = $5
	`, u.Name, u.Email, u.AvatarURL, u.UpdatedAt, u.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

var _ repository.IdentityRepository = (*IdentityRepository)(nil)

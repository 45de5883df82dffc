// Package memory provides map-backed implementations of the domain
// repositories. They back the service tests and local runs without Postgres.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/staybook/backend/internal/domain/entity"
	"github.com/staybook/backend/internal/domain/repository"
)

type IdentityRepository struct {
	mu      sync.RWMutex
	byID    map[string]entity.Identity
	byPhone map[string]string
}

func NewIdentityRepository() *IdentityRepository {
	return &IdentityRepository{
		byID:    make(map[string]entity.Identity),
		byPhone: make(map[string]string),
	}
}

func (r *IdentityRepository) Create(_ context.Context, u *entity.Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	r.byID[u.ID] = *u
	r.byPhone[u.Phone] = u.ID
	return nil
}

func (r *IdentityRepository) GetByID(_ context.Context, id string) (*entity.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := u
	return &cp, nil
}

func (r *IdentityRepository) GetByPhone(_ context.Context, phone string) (*entity.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byPhone[phone]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := r.byID[id]
	return &cp, nil
}

func (r *IdentityRepository) Update(_ context.Context, u *entity.Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[u.ID]; !ok {
		return repository.ErrNotFound
	}
	u.UpdatedAt = time.Now()
	r.byID[u.ID] = *u
	return nil
}

// ReservationRepository keeps the ledger as an append-only slice so listing
// preserves insertion order, matching the durable implementation.
type ReservationRepository struct {
	mu     sync.RWMutex
	ledger []entity.Reservation
}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

func (r *ReservationRepository) Create(_ context.Context, b *entity.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	r.ledger = append(r.ledger, *b)
	return nil
}

func (r *ReservationRepository) GetByID(_ context.Context, identityID, id string) (*entity.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.ledger {
		if r.ledger[i].IdentityID == identityID && r.ledger[i].ID == id {
			cp := r.ledger[i]
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *ReservationRepository) ListByIdentity(_ context.Context, identityID string) ([]*entity.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Reservation
	for i := range r.ledger {
		if r.ledger[i].IdentityID == identityID {
			cp := r.ledger[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *ReservationRepository) SetStatus(_ context.Context, identityID, id string, status entity.ReservationStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	found := false
	for i := range r.ledger {
		if r.ledger[i].IdentityID == identityID && r.ledger[i].ID == id {
			r.ledger[i].Status = status
			found = true
		}
	}
	return found, nil
}

var (
	_ repository.IdentityRepository    = (*IdentityRepository)(nil)
	_ repository.ReservationRepository = (*ReservationRepository)(nil)
)

package entity

import (
	"time"
)

// Identity is the aggregate root for the auth domain. Its presence is the
// authentication signal: an identity row exists iff the phone number completed
// OTP verification at least once.
type Identity struct {
	ID        string
	Phone     string
	Name      string
	Email     string
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}

package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/staybook/backend/internal/domain/entity"
	repo "github.com/staybook/backend/internal/domain/repository"
	"github.com/staybook/backend/pkg/helpers"
	"github.com/staybook/backend/pkg/notifier"
)

var (
	ErrInvalidCode      = errors.New("invalid verification code")
	ErrDeliveryFailure  = errors.New("failed to send verification code")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrIdentityNotFound = errors.New("identity not found")
)

// SessionService owns the OTP login lifecycle: pending verification, identity
// creation, session issuance, profile updates, and logout. One identity per
// phone number; the whole flow models the single local user of the mobile app.
type SessionService struct {
	Identities repo.IdentityRepository
	JWT        *helpers.JWTManager
	Redis      *redis.Client
	Logger     *logrus.Logger
	Pub        *helpers.RabbitPublisher
	GCS        *storage.Client
	GCSBucket  string

	OTPDemoMode   bool
	OTPStaticCode string
	OTPCodeTTL    time.Duration
	SessionTTL    time.Duration
}

// PendingVerification is the record stored between "code requested" and
// "code verified or abandoned". A new request for the same phone overwrites it.
type PendingVerification struct {
	Phone       string    `json:"phone"`
	Code        string    `json:"code"`
	RequestedAt time.Time `json:"requested_at"`
}

type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

func sessionKey(userID string) string {
	return "user:session:" + userID
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// RequestCode stores a pending verification for the phone number and enqueues
// a mock SMS delivery. Failing to persist the pending record is a delivery
// failure; any previously pending number is left untouched in that case.
func (s *SessionService) RequestCode(ctx context.Context, phone string) error {
	code := s.OTPStaticCode
	if !s.OTPDemoMode {
		var err error
		code, err = helpers.GenOTPCode()
		if err != nil {
			return ErrDeliveryFailure
		}
	}

	pending := PendingVerification{Phone: phone, Code: code, RequestedAt: time.Now().UTC()}
	if err := helpers.RedisSetJSON(ctx, s.Redis, helpers.KeyPendingOTP(phone), pending, s.OTPCodeTTL); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("phone", phone).Error("store pending verification failed")
		}
		return ErrDeliveryFailure
	}

	// Delivery is mocked: the worker just logs the SMS. A publish failure is
	// not a delivery failure for the caller.
	if s.Pub != nil {
		job := notifier.Job{
			Channel: notifier.ChannelSMS,
			To:      phone,
			Text:    "Your StayBook verification code is " + code,
		}
		if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("phone", phone).Warn("enqueue otp sms failed")
		}
	}
	return nil
}

// VerifyCode checks the submitted code against the pending verification. On
// success it creates the identity if the phone number is new, clears the
// pending record, opens a Redis session, and returns a token pair. A wrong
// code is a normal rejection and changes nothing.
func (s *SessionService) VerifyCode(ctx context.Context, phone, code string) (*entity.Identity, TokenPair, error) {
	expected := ""
	var pending PendingVerification
	found, err := helpers.RedisGetJSON(ctx, s.Redis, helpers.KeyPendingOTP(phone), &pending)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("phone", phone).Warn("read pending verification failed")
		}
		// Outside demo mode a storage fault is not a wrong code.
		if !s.OTPDemoMode {
			return nil, TokenPair{}, err
		}
	}
	if found {
		expected = pending.Code
	} else if s.OTPDemoMode {
		// The demo accepts the sentinel even without a prior request,
		// mirroring the mobile app.
		expected = s.OTPStaticCode
	}

	if expected == "" || code != expected {
		return nil, TokenPair{}, ErrInvalidCode
	}

	identity, err := s.Identities.GetByPhone(ctx, phone)
	if errors.Is(err, repo.ErrNotFound) {
		identity = &entity.Identity{Phone: phone}
		if err := s.Identities.Create(ctx, identity); err != nil {
			return nil, TokenPair{}, err
		}
	} else if err != nil {
		return nil, TokenPair{}, err
	}

	_ = helpers.RedisDel(ctx, s.Redis, helpers.KeyPendingOTP(phone))

	pair, err := s.issueTokens(ctx, identity)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return identity, pair, nil
}

// issueTokens generates an access/refresh pair and records a session in Redis.
func (s *SessionService) issueTokens(ctx context.Context, u *entity.Identity) (TokenPair, error) {
	sid := uuid.NewString()
	access, aexp, err := s.JWT.GenerateAccessToken(u.ID, sid)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate access token failed")
		}
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(u.ID, sid)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate refresh token failed")
		}
		return TokenPair{}, err
	}

	if s.Redis != nil {
		fields := map[string]any{
			"user_id":    u.ID,
			"phone":      u.Phone,
			"name":       u.Name,
			"email":      u.Email,
			"avatar_url": u.AvatarURL,
			"sid":        sid,
			"logged_in":  true,
			"created_at": nowRFC3339(),
		}
		key := sessionKey(u.ID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, fields)
		pipe.Expire(ctx, key, s.SessionTTL)
		if _, rErr := pipe.Exec(ctx); rErr != nil && s.Logger != nil {
			s.Logger.WithError(rErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}

	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}

// Refresh rotates the session id and token pair after validating the refresh
// token against the current session.
func (s *SessionService) Refresh(ctx context.Context, refreshToken string) (TokenPair, string, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, "", ErrNotAuthenticated
	}
	u, err := s.Identities.GetByID(ctx, claims.UserID)
	if err != nil {
		return TokenPair{}, "", ErrNotAuthenticated
	}
	if s.Redis != nil {
		key := sessionKey(u.ID)
		data, rErr := s.Redis.HGetAll(ctx, key).Result()
		if rErr != nil || len(data) == 0 || data["sid"] != claims.SessionID {
			return TokenPair{}, "", ErrNotAuthenticated
		}
	}
	pair, err := s.issueTokens(ctx, u)
	if err != nil {
		return TokenPair{}, "", err
	}
	return pair, u.ID, nil
}

func (s *SessionService) Profile(ctx context.Context, userID string) (*entity.Identity, error) {
	u, err := s.Identities.GetByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrIdentityNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

type UpdateProfileInput struct {
	Name      string
	Email     string
	AvatarURL string
}

// UpdateProfile merges the supplied fields into the identity: empty fields are
// kept, non-empty fields overwrite.
func (s *SessionService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*entity.Identity, error) {
	u, err := s.Identities.GetByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrNotAuthenticated
	}
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		u.Name = in.Name
	}
	if in.Email != "" {
		u.Email = in.Email
	}
	if in.AvatarURL != "" {
		u.AvatarURL = in.AvatarURL
	}
	if err := s.Identities.Update(ctx, u); err != nil {
		return nil, err
	}

	if s.Redis != nil {
		key := sessionKey(u.ID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, map[string]any{
			"name":       u.Name,
			"email":      u.Email,
			"avatar_url": u.AvatarURL,
			"updated_at": nowRFC3339(),
		})
		if ttl, tErr := s.Redis.TTL(ctx, key).Result(); tErr == nil && ttl > 0 {
			pipe.Expire(ctx, key, ttl)
		}
		if _, pErr := pipe.Exec(ctx); pErr != nil && s.Logger != nil {
			s.Logger.WithError(pErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}
	return u, nil
}

// Logout drops the session. Calling it without an active session is a no-op.
func (s *SessionService) Logout(ctx context.Context, userID string) error {
	if s.Redis == nil || userID == "" {
		return nil
	}
	if err := s.Redis.Del(ctx, sessionKey(userID)).Err(); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Warn("delete session failed")
	}
	return nil
}

// UploadAvatar stores an avatar image in GCS and records its URL on the profile.
func (s *SessionService) UploadAvatar(ctx context.Context, userID string, r io.Reader, filename, contentType string) (string, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}
	_, err := s.Identities.GetByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return "", ErrNotAuthenticated
	}
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("avatars", userID, id+ext))
	url, err := helpers.UploadImageToGCS(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}
	if _, err := s.UpdateProfile(ctx, userID, UpdateProfileInput{AvatarURL: url}); err != nil {
		return "", err
	}
	return url, nil
}

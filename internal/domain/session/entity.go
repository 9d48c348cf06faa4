package session

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyToken  = errors.New("session token is empty")
	ErrInvalidTTL  = errors.New("session ttl must be positive")
	ErrEmptyUserID = errors.New("session user id is empty")
)

// Session maps an opaque token issued by the external identity provider to a user.
type Session struct {
	token     string
	userID    string
	expiresAt time.Time
	createdAt time.Time
}

func NewSession(token, userID string, now time.Time, ttl time.Duration) (*Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrEmptyToken
	}
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}
	return &Session{
		token:     token,
		userID:    userID,
		expiresAt: now.Add(ttl),
		createdAt: now,
	}, nil
}

func ReconstructSession(token, userID string, expiresAt, createdAt time.Time) *Session {
	return &Session{token: token, userID: userID, expiresAt: expiresAt, createdAt: createdAt}
}

// IsExpired treats the expiry instant itself as expired.
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.expiresAt)
}

func (s *Session) Token() string        { return s.token }
func (s *Session) UserID() string       { return s.userID }
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }
func (s *Session) CreatedAt() time.Time { return s.createdAt }

// Package admin implements the single-operator session that gates the
// settings endpoints: a fixed credential pair, a persisted login timestamp,
// and a 24-hour validity window after which the session is treated as
// expired. This is deliberately not a general auth model.
package admin

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Waldo881/Surf-Turf/internal/config"
	"github.com/Waldo881/Surf-Turf/internal/domain"
	"github.com/Waldo881/Surf-Turf/internal/store"
)

// ErrInvalidCredentials is returned when the supplied username/password pair
// does not match the configured one.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service manages the persisted admin session.
type Service struct {
	DB   *gorm.DB
	Cred config.AdminConfig

	// Now stands in for time.Now in tests.
	Now func() time.Time
}

// NewService constructs an admin service.
func NewService(db *gorm.DB, cred config.AdminConfig) *Service {
	return &Service{DB: db, Cred: cred, Now: time.Now}
}

// Login checks the credential pair and, on success, persists a fresh session
// with the current login time. The comparison is constant-time.
func (s *Service) Login(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.Cred.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.Cred.Password)) == 1
	if !userOK || !passOK {
		return ErrInvalidCredentials
	}

	sess := domain.AdminSession{LoggedIn: true, LoginTime: s.Now().UTC()}
	if err := store.Save(ctx, s.DB, store.KeyAdminSession, sess); err != nil {
		return err
	}
	log.Info().Msg("admin logged in")
	return nil
}

// Logout removes the persisted session. Logging out without a session is a
// no-op.
func (s *Service) Logout(ctx context.Context) error {
	if err := store.Delete(ctx, s.DB, store.KeyAdminSession); err != nil {
		return err
	}
	log.Info().Msg("admin logged out")
	return nil
}

// IsLoggedIn reports whether a live session exists. A session older than the
// configured validity window counts as expired and is cleared, forcing a
// re-login.
func (s *Service) IsLoggedIn(ctx context.Context) (bool, error) {
	var sess domain.AdminSession
	found, err := store.Load(ctx, s.DB, store.KeyAdminSession, &sess)
	if err != nil {
		return false, err
	}
	if !found || !sess.LoggedIn {
		return false, nil
	}

	ttl := s.Cred.SessionTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if s.Now().Sub(sess.LoginTime) > ttl {
		// Expired: clear so the stale record cannot linger.
		if derr := store.Delete(ctx, s.DB, store.KeyAdminSession); derr != nil {
			log.Warn().Err(derr).Msg("clearing expired admin session")
		}
		return false, nil
	}
	return true, nil
}

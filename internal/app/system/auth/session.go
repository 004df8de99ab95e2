package auth

import (
	"crypto/sha256"
	"fmt"
	"net/http"
	"time"

	"github.com/dalemusser/whopinsights/internal/app/system/clock"
	"github.com/dalemusser/whopinsights/internal/domain/models"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Session                                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

// DefaultCookieName is the cookie that carries the signed-in operator's session.
const DefaultCookieName = "whop_access_token"

// DefaultMaxAge is the lifetime of a freshly issued session.
const DefaultMaxAge = 7 * 24 * time.Hour

// DefaultRenewWithin re-issues a session once less than this much lifetime remains.
const DefaultRenewWithin = 24 * time.Hour

// Session is the signed-in operator's state. It is encoded into a signed and
// encrypted cookie, so the access token never reaches client script.
type Session struct {
	ID          string
	AccessToken string
	UserID      string
	UserName    string
	UserEmail   string
	IssuedAt    time.Time
	ExpiresAt   time.Time
}

// DisplayName returns the best human label for the operator.
func (s *Session) DisplayName() string {
	switch {
	case s.UserName != "":
		return s.UserName
	case s.UserEmail != "":
		return s.UserEmail
	case s.UserID != "":
		return s.UserID
	}
	return "Signed in"
}

// Expired reports whether the session lifetime has run out at now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// cookie value keys
const (
	keyID        = "sid"
	keyToken     = "access_token"
	keyUserID    = "user_id"
	keyUserName  = "user_name"
	keyUserEmail = "user_email"
	keyIssued    = "iat"
	keyExpires   = "exp"
)

/*─────────────────────────────────────────────────────────────────────────────*
| SessionManager                                                              |
*─────────────────────────────────────────────────────────────────────────────*/

// SessionManager issues, loads, renews and clears operator sessions.
type SessionManager struct {
	store       *sessions.CookieStore
	name        string
	maxAge      time.Duration
	renewWithin time.Duration
	clock       clock.Clock
	logger      *zap.Logger
}

// NewSessionManager builds a cookie-backed session manager. The session key
// signs the cookie; an encryption key is derived from it so the token is not
// readable in the browser. secure marks the cookie Secure (production).
func NewSessionManager(sessionKey, name, domain string, maxAge time.Duration, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}
	if name == "" {
		name = DefaultCookieName
	}
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}

	blockKey := sha256.Sum256([]byte(sessionKey))
	store := sessions.NewCookieStore([]byte(sessionKey), blockKey[:])
	store.Options = &sessions.Options{
		Domain:   domain,
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	store.MaxAge(int(maxAge / time.Second))

	logger.Info("session store initialized",
		zap.String("cookie", name),
		zap.Bool("secure", secure),
		zap.String("domain", domain),
		zap.Duration("max_age", maxAge))

	return &SessionManager{
		store:       store,
		name:        name,
		maxAge:      maxAge,
		renewWithin: DefaultRenewWithin,
		clock:       clock.System{},
		logger:      logger,
	}, nil
}

// Store exposes the underlying cookie store.
func (sm *SessionManager) Store() *sessions.CookieStore { return sm.store }

// Name is the session cookie name.
func (sm *SessionManager) Name() string { return sm.name }

// MaxAge is the lifetime given to new and renewed sessions.
func (sm *SessionManager) MaxAge() time.Duration { return sm.maxAge }

// SetRenewWithin sets how close to expiry a session must be before the load
// middleware re-issues it. Zero disables renewal.
func (sm *SessionManager) SetRenewWithin(d time.Duration) { sm.renewWithin = d }

// SetClock replaces the time source.
func (sm *SessionManager) SetClock(c clock.Clock) { sm.clock = c }

// GetSession returns the raw gorilla session for this request.
func (sm *SessionManager) GetSession(r *http.Request) (*sessions.Session, error) {
	return sm.store.Get(r, sm.name)
}

// Begin starts a new session for an operator who just completed sign-in.
// The profile may be zero when it could not be fetched.
func (sm *SessionManager) Begin(w http.ResponseWriter, r *http.Request, accessToken string, op models.Operator) (*Session, error) {
	now := sm.clock.Now()
	s := &Session{
		ID:          uuid.NewString(),
		AccessToken: accessToken,
		UserID:      op.ID,
		UserName:    op.DisplayName(),
		UserEmail:   op.Email,
		IssuedAt:    now,
		ExpiresAt:   now.Add(sm.maxAge),
	}
	if err := sm.Save(w, r, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Save writes s to the session cookie.
func (sm *SessionManager) Save(w http.ResponseWriter, r *http.Request, s *Session) error {
	sess, _ := sm.store.Get(r, sm.name)
	sess.Values[keyID] = s.ID
	sess.Values[keyToken] = s.AccessToken
	sess.Values[keyUserID] = s.UserID
	sess.Values[keyUserName] = s.UserName
	sess.Values[keyUserEmail] = s.UserEmail
	sess.Values[keyIssued] = s.IssuedAt.UnixMilli()
	sess.Values[keyExpires] = s.ExpiresAt.UnixMilli()
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Load decodes the session carried by r. ok is false when there is no valid
// session cookie.
func (sm *SessionManager) Load(r *http.Request) (*Session, bool) {
	sess, err := sm.store.Get(r, sm.name)
	if err != nil || sess.IsNew {
		return nil, false
	}
	token := getString(sess, keyToken)
	if token == "" {
		return nil, false
	}
	return &Session{
		ID:          getString(sess, keyID),
		AccessToken: token,
		UserID:      getString(sess, keyUserID),
		UserName:    getString(sess, keyUserName),
		UserEmail:   getString(sess, keyUserEmail),
		IssuedAt:    time.UnixMilli(getInt64(sess, keyIssued)).UTC(),
		ExpiresAt:   time.UnixMilli(getInt64(sess, keyExpires)).UTC(),
	}, true
}

// Clear deletes the session cookie.
func (sm *SessionManager) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, _ := sm.store.Get(r, sm.name)
	sess.Values = map[interface{}]interface{}{}
	sess.Options.MaxAge = -1
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func getString(s *sessions.Session, key string) string {
	if v, ok := s.Values[key].(string); ok {
		return v
	}
	return ""
}

func getInt64(s *sessions.Session, key string) int64 {
	if v, ok := s.Values[key].(int64); ok {
		return v
	}
	return 0
}

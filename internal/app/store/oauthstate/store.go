// internal/app/store/oauthstate/store.go
package oauthstate

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
)

// CookieName holds the pending OAuth state between /auth/login and /auth/callback.
const CookieName = "whop_oauth_state"

// DefaultTTL is how long a sign-in attempt may take.
const DefaultTTL = 10 * time.Minute

// State represents an OAuth2 state token issued for CSRF protection.
type State struct {
	State     string
	ReturnURL string // Where to redirect after auth
	ExpiresAt time.Time
}

// Store keeps OAuth2 state tokens in a signed, short-lived cookie.
type Store struct {
	codec  *securecookie.SecureCookie
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

// New creates a new OAuth state Store signed with hashKey.
func New(hashKey []byte, secure bool) *Store {
	codec := securecookie.New(hashKey, nil)
	codec.MaxAge(int(DefaultTTL / time.Second))
	return &Store{
		codec:  codec,
		ttl:    DefaultTTL,
		secure: secure,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// NewState creates a cryptographically secure random state string.
func NewState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// Save stores a state token with an optional return URL.
func (s *Store) Save(w http.ResponseWriter, state, returnURL string) error {
	st := State{
		State:     state,
		ReturnURL: returnURL,
		ExpiresAt: s.now().Add(s.ttl),
	}
	encoded, err := s.codec.Encode(CookieName, st)
	if err != nil {
		return fmt.Errorf("encode oauth state: %w", err)
	}
	http.SetCookie(w, s.cookie(encoded, int(s.ttl/time.Second)))
	return nil
}

// Validate checks the state returned by the provider against the one issued
// to this browser. The cookie is consumed (one-time use).
//
// issued is false when the browser carries no state cookie at all; valid is
// true only for a matching, unexpired token.
func (s *Store) Validate(w http.ResponseWriter, r *http.Request, state string) (returnURL string, issued, valid bool) {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return "", false, false
	}
	http.SetCookie(w, s.cookie("", -1))

	var st State
	if err := s.codec.Decode(CookieName, c.Value, &st); err != nil {
		return "", true, false
	}
	if state == "" || subtle.ConstantTimeCompare([]byte(st.State), []byte(state)) != 1 {
		return "", true, false
	}
	if !s.now().Before(st.ExpiresAt) {
		return "", true, false
	}
	return st.ReturnURL, true, true
}

func (s *Store) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/auth",
		MaxAge:   maxAge,
		Secure:   s.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

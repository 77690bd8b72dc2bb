package auth

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session errors.
var (
	// ErrNotLoggedIn is returned when no session file is present.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrSessionInvalid is returned when the session file exists but
	// its token is malformed, tampered with, or expired.
	ErrSessionInvalid = errors.New("session invalid, log in again")
)

// DefaultSessionTTL is how long an admin login stays valid.
const DefaultSessionTTL = 12 * time.Hour

// SessionManager persists an admin login as a signed token in a file.
// A session is valid only when both markers hold: the file is present
// and the token inside it verifies. Removing the file or corrupting
// the token forces re-login.
type SessionManager struct {
	path   string
	secret []byte
	ttl    time.Duration
}

type sessionClaims struct {
	jwt.RegisteredClaims
}

// NewSessionManager constructs a SessionManager writing the session to
// path and signing tokens with secret. A non-positive ttl uses
// DefaultSessionTTL.
func NewSessionManager(path string, secret []byte, ttl time.Duration) *SessionManager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionManager{path: path, secret: secret, ttl: ttl}
}

// Login records a session for the given admin username.
func (m *SessionManager) Login(username string) error {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return fmt.Errorf("signing session token: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(m.path, []byte(signed), 0o600)
}

// Verify checks the current session and returns the logged-in
// username. It fails with ErrNotLoggedIn when no session file exists
// and ErrSessionInvalid when the token does not verify.
func (m *SessionManager) Verify() (string, error) {
	raw, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotLoggedIn
		}
		return "", err
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(string(raw), claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrSessionInvalid
	}
	return claims.Subject, nil
}

// Logout removes the session file. Logging out without a session is
// not an error.
func (m *SessionManager) Logout() error {
	if err := os.Remove(m.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Package session provides Valkey-backed anonymous editor sessions.
// Sessions are identified by a secure cookie and stored as JSON in Valkey
// with automatic TTL expiry. The playground has no user accounts: a
// session only carries in-progress editor drafts (live edits staged
// before an explicit save) and one-time flash notices.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"uikitlab/internal/models"
)

const (
	// CookieName is the name of the session cookie sent to the browser.
	CookieName = "pg_session"

	// DefaultTTL is how long a session lives in Valkey before automatic expiry.
	DefaultTTL = 24 * time.Hour

	// keyPrefix namespaces session keys in Valkey to avoid collisions.
	keyPrefix = "session:"

	// idLength is the byte length of the random session ID (32 bytes = 64 hex chars).
	idLength = 32
)

// Flash is a one-time notification surfaced after a redirect (save and
// delete outcomes).
type Flash struct {
	Type    string `json:"type"` // "success", "error", "warning", "info"
	Message string `json:"message"`
}

// Data is the session payload stored in Valkey.
type Data struct {
	// Drafts maps component id → staged code, captured by the editor
	// shell before an explicit save. "new" holds the draft of a
	// component that does not exist yet.
	Drafts map[string]models.ComponentCode `json:"drafts,omitempty"`

	Flashes   []Flash   `json:"flashes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Store manages session lifecycle in Valkey. A nil *Store (Valkey not
// configured) is valid: lookups miss and writes are dropped, so staged
// drafts simply don't survive without the cache.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a session store backed by the given Valkey client.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
		ttl:    DefaultTTL,
	}
}

// Get retrieves session data using the session ID from the request
// cookie. Returns nil when no valid session exists.
func (s *Store) Get(ctx context.Context, r *http.Request) (*Data, error) {
	if s == nil || s.client == nil {
		return nil, nil
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil, nil // No cookie = no session (not an error)
	}

	payload, err := s.client.Get(ctx, keyPrefix+cookie.Value).Bytes()
	if err == redis.Nil {
		return nil, nil // Session expired or doesn't exist
	}
	if err != nil {
		return nil, fmt.Errorf("session get: %w", err)
	}

	var data Data
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("session unmarshal: %w", err)
	}

	return &data, nil
}

// GetOrCreate returns the request's session, creating one (and setting
// the cookie) when none exists yet.
func (s *Store) GetOrCreate(ctx context.Context, w http.ResponseWriter, r *http.Request) (*Data, error) {
	if s == nil || s.client == nil {
		return &Data{CreatedAt: time.Now()}, nil
	}

	data, err := s.Get(ctx, r)
	if err != nil {
		return nil, err
	}
	if data != nil {
		return data, nil
	}

	id, err := generateID()
	if err != nil {
		return nil, fmt.Errorf("session create: %w", err)
	}

	data = &Data{CreatedAt: time.Now()}
	if err := s.save(ctx, id, data); err != nil {
		return nil, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   false, // Set to true behind TLS in production
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.ttl.Seconds()),
	})

	// Make the new session visible to this request too.
	r.AddCookie(&http.Cookie{Name: CookieName, Value: id})
	return data, nil
}

// Update replaces the session data in Valkey without changing the
// session ID or cookie. Resets the TTL. A request without a session
// cookie is a silent no-op — there is nothing to persist into.
func (s *Store) Update(ctx context.Context, r *http.Request, data *Data) error {
	if s == nil || s.client == nil {
		return nil
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil
	}
	return s.save(ctx, cookie.Value, data)
}

// StageDraft records in-progress editor code for a component id.
func (s *Store) StageDraft(ctx context.Context, w http.ResponseWriter, r *http.Request, componentID string, code models.ComponentCode) error {
	data, err := s.GetOrCreate(ctx, w, r)
	if err != nil {
		return err
	}
	if data.Drafts == nil {
		data.Drafts = make(map[string]models.ComponentCode)
	}
	data.Drafts[componentID] = code
	return s.Update(ctx, r, data)
}

// Draft returns the staged code for a component id, or (zero, false).
func (s *Store) Draft(ctx context.Context, r *http.Request, componentID string) (models.ComponentCode, bool) {
	data, err := s.Get(ctx, r)
	if err != nil || data == nil || data.Drafts == nil {
		return models.ComponentCode{}, false
	}
	code, ok := data.Drafts[componentID]
	return code, ok
}

// ClearDraft drops the staged code for a component id, typically after
// an explicit save or reset.
func (s *Store) ClearDraft(ctx context.Context, r *http.Request, componentID string) error {
	data, err := s.Get(ctx, r)
	if err != nil || data == nil || data.Drafts == nil {
		return err
	}
	delete(data.Drafts, componentID)
	return s.Update(ctx, r, data)
}

// AddFlash appends a one-time notice to the session.
func (s *Store) AddFlash(ctx context.Context, w http.ResponseWriter, r *http.Request, flash Flash) error {
	data, err := s.GetOrCreate(ctx, w, r)
	if err != nil {
		return err
	}
	data.Flashes = append(data.Flashes, flash)
	return s.Update(ctx, r, data)
}

// PopFlashes returns and clears the pending notices.
func (s *Store) PopFlashes(ctx context.Context, r *http.Request) []Flash {
	data, err := s.Get(ctx, r)
	if err != nil || data == nil || len(data.Flashes) == 0 {
		return nil
	}
	flashes := data.Flashes
	data.Flashes = nil
	if err := s.Update(ctx, r, data); err != nil {
		return flashes
	}
	return flashes
}

// Destroy removes the session from Valkey and clears the cookie.
func (s *Store) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if s == nil || s.client == nil {
		return nil
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil // No cookie, nothing to destroy
	}

	s.client.Del(ctx, keyPrefix+cookie.Value)

	// Expire the cookie immediately.
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	return nil
}

func (s *Store) save(ctx context.Context, id string, data *Data) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("session marshal: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+id, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("session store: %w", err)
	}
	return nil
}

// generateID creates a cryptographically random session identifier.
func generateID() (string, error) {
	b := make([]byte, idLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

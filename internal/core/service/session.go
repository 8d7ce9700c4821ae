package service

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/Bilalabbasid/CRM-sub000/internal/core/domain"
	"github.com/Bilalabbasid/CRM-sub000/internal/core/ports"
)

// Phase is the session lifecycle state for one application run.
type Phase int

const (
	// PhaseBootstrapping holds from construction until the stored credential
	// has been checked. No authorization decision may be made before it ends.
	PhaseBootstrapping Phase = iota
	PhaseAuthenticated
	PhaseAnonymous
)

func (p Phase) String() string {
	switch p {
	case PhaseBootstrapping:
		return "bootstrapping"
	case PhaseAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// Snapshot is a point-in-time view of the session, sufficient for an
// authorization decision. Identity is nil unless Phase is PhaseAuthenticated.
type Snapshot struct {
	Phase    Phase
	Identity *domain.Identity
}

// Session owns the current identity state. It is the only writer of that
// state; everything else reads through the query methods or a Snapshot.
// Auth mutations (Login, Logout, the bootstrap failure path) persist or
// clear the credential via the gateway's SetToken, keeping the credential
// store single-writer.
type Session struct {
	api   ports.AuthAPI
	store ports.CredentialStore
	log   zerolog.Logger

	mu       sync.RWMutex
	phase    Phase
	identity *domain.Identity
}

// NewSession returns a Session in PhaseBootstrapping. Call Bootstrap to
// settle it.
func NewSession(api ports.AuthAPI, store ports.CredentialStore, log zerolog.Logger) *Session {
	return &Session{api: api, store: store, log: log, phase: PhaseBootstrapping}
}

// Bootstrap attempts silent re-authentication from the stored credential.
// No stored credential settles straight to anonymous without a network
// call. Any failure along the way is swallowed and logged: the credential
// is cleared, the session settles anonymous, and the caller never sees an
// error. The session always leaves PhaseBootstrapping.
func (s *Session) Bootstrap(ctx context.Context) {
	token, err := s.store.Load()
	if err != nil || token == "" {
		if err != nil {
			s.log.Warn().Err(err).Msg("credential store unreadable; starting anonymous")
		}
		s.settle(PhaseAnonymous, nil)
		return
	}

	s.api.SetToken(token)
	identity, err := s.api.CurrentUser(ctx)
	if err != nil {
		s.log.Info().Err(err).Msg("stored credential rejected; starting anonymous")
		s.api.SetToken("")
		s.settle(PhaseAnonymous, nil)
		return
	}

	s.settle(PhaseAuthenticated, s.adopt(identity))
	s.log.Info().Str("user", identity.Email).Str("role", string(identity.Role)).Msg("session restored")
}

// Login exchanges credentials for a session. On success the token is
// persisted and the identity adopted; on failure the error is returned as a
// value and no state changes.
func (s *Session) Login(ctx context.Context, email, password string) error {
	sess, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	s.api.SetToken(sess.Token)
	s.settle(PhaseAuthenticated, s.adopt(&sess.User))
	return nil
}

// Register creates an account and signs in with the same contract as Login.
func (s *Session) Register(ctx context.Context, in domain.Registration) error {
	sess, err := s.api.Register(ctx, in)
	if err != nil {
		return err
	}
	s.api.SetToken(sess.Token)
	s.settle(PhaseAuthenticated, s.adopt(&sess.User))
	return nil
}

// Logout clears the credential and identity synchronously. Safe to call
// when already logged out.
func (s *Session) Logout() {
	s.api.SetToken("")
	s.settle(PhaseAnonymous, nil)
}

// Invalidate drops the in-memory identity without touching the credential
// store. It is the hook for the gateway's auth-failure interception, which
// has already cleared the store by the time the user is sent to login;
// wiring layers call it from their Navigator so a rejected credential
// anywhere in the app's lifetime lands the session in the anonymous state.
// Idempotent.
func (s *Session) Invalidate() {
	s.settle(PhaseAnonymous, nil)
}

// UpdateProfile sends a partial mutation and adopts the server's returned
// profile wholesale; the previous identity is never merged into it.
func (s *Session) UpdateProfile(ctx context.Context, up domain.ProfileUpdate) error {
	if !s.IsAuthenticated() {
		return domain.ErrNotAuthenticated
	}
	identity, err := s.api.UpdateProfile(ctx, up)
	if err != nil {
		return err
	}
	s.settle(PhaseAuthenticated, s.adopt(identity))
	return nil
}

// Identity returns a copy of the current identity, nil when anonymous.
func (s *Session) Identity() *domain.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	clone := *s.identity
	return &clone
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

// IsAuthenticated reports whether an identity is present.
func (s *Session) IsAuthenticated() bool {
	return s.Phase() == PhaseAuthenticated
}

// HasRole reports whether the session is authenticated and its role is a
// member of candidates.
func (s *Session) HasRole(candidates ...domain.Role) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.phase != PhaseAuthenticated || s.identity == nil {
		return false
	}
	return s.identity.Role.Member(candidates)
}

// Snapshot returns a point-in-time view for authorization decisions.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot{Phase: s.phase}
	if s.identity != nil {
		clone := *s.identity
		snap.Identity = &clone
	}
	return snap
}

// CredentialExpiry reports when the stored credential expires, read from
// the token's unverified claims. Display and logging only: it is never an
// authorization input, and a token without a readable expiry yields false.
func (s *Session) CredentialExpiry() (time.Time, bool) {
	token, err := s.store.Load()
	if err != nil || token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// adopt normalises an arriving profile: an unrecognised role collapses to
// the default tier, with a warning so the downgrade is visible in logs.
func (s *Session) adopt(identity *domain.Identity) *domain.Identity {
	clone := *identity
	role, known := domain.ParseRole(string(identity.Role))
	if !known {
		s.log.Warn().
			Str("user", identity.Email).
			Str("raw_role", string(identity.Role)).
			Str("assigned", string(role)).
			Msg("unrecognised role on profile; treating as lowest privilege")
	}
	clone.Role = role
	return &clone
}

func (s *Session) settle(phase Phase, identity *domain.Identity) {
	s.mu.Lock()
	s.phase = phase
	s.identity = identity
	s.mu.Unlock()
}

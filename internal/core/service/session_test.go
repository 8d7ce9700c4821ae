package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Bilalabbasid/CRM-sub000/internal/api/client"
	"github.com/Bilalabbasid/CRM-sub000/internal/core/domain"
	"github.com/Bilalabbasid/CRM-sub000/internal/infrastructure/credstore"
)

const (
	stubSecret   = "test-secret"
	stubEmail    = "amira@example.com"
	stubPassword = "secret1"
)

// stubBackend is a miniature restaurant backend: real bcrypt verification
// and real signed bearer tokens, so the client exercises the same exchange
// the production API performs.
type stubBackend struct {
	profile   domain.Identity
	hash      []byte
	hits      atomic.Int64
	orders401 atomic.Bool // force 401s on /orders only
}

func newStubBackend(t *testing.T, role string) (*stubBackend, *httptest.Server) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(stubPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	b := &stubBackend{
		profile: domain.Identity{
			ID:    "u1",
			Name:  "Amira",
			Email: stubEmail,
			Role:  domain.Role(role),
			Phone: "555-0100",
		},
		hash: hash,
	}

	e := echo.New()
	e.POST("/auth/login", b.login)
	e.POST("/auth/register", b.register)
	e.GET("/auth/me", b.me)
	e.PUT("/auth/profile", b.updateProfile)
	e.GET("/orders", b.listOrders)

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return b, srv
}

func (b *stubBackend) issueToken(t *testing.T) string {
	t.Helper()
	tok, err := b.signToken()
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

func (b *stubBackend) signToken() (string, error) {
	claims := jwt.MapClaims{
		"sub":  b.profile.ID,
		"role": string(b.profile.Role),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(stubSecret))
}

func (b *stubBackend) authed(c echo.Context) bool {
	header := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return false
	}
	tkn, err := jwt.Parse(parts[1], func(token *jwt.Token) (any, error) {
		return []byte(stubSecret), nil
	})
	return err == nil && tkn.Valid
}

func (b *stubBackend) login(c echo.Context) error {
	b.hits.Add(1)
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if req.Email != b.profile.Email || bcrypt.CompareHashAndPassword(b.hash, []byte(req.Password)) != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
	}
	token, err := b.signToken()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "token signing failed"})
	}
	return c.JSON(http.StatusOK, map[string]any{"token": token, "user": b.profile})
}

func (b *stubBackend) register(c echo.Context) error {
	b.hits.Add(1)
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	created := domain.Identity{ID: "u2", Name: req.Name, Email: req.Email, Role: domain.Role(req.Role)}
	token, err := b.signToken()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "token signing failed"})
	}
	return c.JSON(http.StatusCreated, map[string]any{"token": token, "user": created})
}

func (b *stubBackend) me(c echo.Context) error {
	b.hits.Add(1)
	if !b.authed(c) {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
	}
	return c.JSON(http.StatusOK, map[string]any{"user": b.profile})
}

// updateProfile rebuilds the returned profile from scratch so a client that
// shallow-merges instead of replacing would keep fields the server dropped.
func (b *stubBackend) updateProfile(c echo.Context) error {
	b.hits.Add(1)
	if !b.authed(c) {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	updated := domain.Identity{
		ID:    b.profile.ID,
		Email: b.profile.Email,
		Role:  b.profile.Role,
		Name:  req.Name,
		// Phone deliberately absent: the server's response is canonical.
	}
	return c.JSON(http.StatusOK, map[string]any{"user": updated})
}

func (b *stubBackend) listOrders(c echo.Context) error {
	b.hits.Add(1)
	if b.orders401.Load() || !b.authed(c) {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
	}
	return c.JSON(http.StatusOK, []domain.Order{})
}

// invalidatingNavigator mimics the app shell: a forced trip to login drops
// the in-memory session.
type invalidatingNavigator struct {
	calls   atomic.Int64
	session *Session
}

func (n *invalidatingNavigator) ToLogin() {
	if n.session != nil {
		n.session.Invalidate()
	}
	n.calls.Add(1)
}

func newFixture(t *testing.T, role string) (*Session, *client.Client, *stubBackend, *credstore.MemStore, *invalidatingNavigator) {
	t.Helper()
	backend, srv := newStubBackend(t, role)
	store := credstore.NewMemStore()
	nav := &invalidatingNavigator{}
	api := client.New(client.Options{
		BaseURL:   srv.URL,
		Store:     store,
		Navigator: nav,
		Logger:    zerolog.Nop(),
	})
	session := NewSession(api, store, zerolog.Nop())
	nav.session = session
	return session, api, backend, store, nav
}

func TestBootstrap_NoCredentialSettlesOffline(t *testing.T) {
	session, _, backend, _, _ := newFixture(t, "manager")

	session.Bootstrap(context.Background())

	if session.Phase() != PhaseAnonymous {
		t.Fatalf("expected anonymous, got %v", session.Phase())
	}
	if backend.hits.Load() != 0 {
		t.Fatalf("no stored credential must mean no network call, saw %d", backend.hits.Load())
	}
}

func TestBootstrap_RestoresSessionFromStoredCredential(t *testing.T) {
	session, _, backend, store, _ := newFixture(t, "owner")
	if err := store.Save(backend.issueToken(t)); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	session.Bootstrap(context.Background())

	if !session.IsAuthenticated() {
		t.Fatalf("expected authenticated after silent re-auth")
	}
	identity := session.Identity()
	if identity == nil || identity.Email != stubEmail {
		t.Fatalf("unexpected identity: %+v", identity)
	}
	if identity.Role != domain.RoleOwner {
		t.Fatalf("expected owner role, got %s", identity.Role)
	}
}

func TestBootstrap_StaleCredentialEndsAnonymousWithEmptyStore(t *testing.T) {
	session, _, _, store, _ := newFixture(t, "manager")
	if err := store.Save("stale-token-from-last-week"); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	session.Bootstrap(context.Background())

	if session.Phase() != PhaseAnonymous {
		t.Fatalf("expected anonymous after rejected credential, got %v", session.Phase())
	}
	if tok, _ := store.Load(); tok != "" {
		t.Fatalf("expected store cleared, got %q", tok)
	}
	if session.Identity() != nil {
		t.Fatalf("stale identity must not survive a rejected credential")
	}
}

func TestLogin_RoundTrip(t *testing.T) {
	session, _, _, store, _ := newFixture(t, "manager")
	session.Bootstrap(context.Background())

	if err := session.Login(context.Background(), stubEmail, stubPassword); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !session.HasRole(domain.RoleManager) {
		t.Fatalf("expected HasRole(manager) after login")
	}
	if tok, _ := store.Load(); tok == "" {
		t.Fatalf("expected credential persisted")
	}
	if got := session.Evaluate(domain.RoleManager); got != DecisionGranted {
		t.Fatalf("gate must grant the identity's own role, got %v", got)
	}
	exp, ok := session.CredentialExpiry()
	if !ok || !exp.After(time.Now()) {
		t.Fatalf("expected a future credential expiry, got %v (%v)", exp, ok)
	}
}

func TestRegister_SignsInWithTheNewAccount(t *testing.T) {
	session, _, _, store, _ := newFixture(t, "manager")
	session.Bootstrap(context.Background())

	in := domain.Registration{
		Name:     "Dana",
		Email:    "dana@example.com",
		Password: "longenough",
		Role:     domain.RoleStaff,
	}
	if err := session.Register(context.Background(), in); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if !session.IsAuthenticated() {
		t.Fatalf("expected authenticated after register")
	}
	if got := session.Identity().Email; got != "dana@example.com" {
		t.Fatalf("unexpected identity email %q", got)
	}
	if tok, _ := store.Load(); tok == "" {
		t.Fatalf("expected credential persisted after register")
	}
}

func TestLogin_FailureLeavesStateUntouched(t *testing.T) {
	session, _, _, store, _ := newFixture(t, "manager")
	session.Bootstrap(context.Background())

	err := session.Login(context.Background(), stubEmail, "wrong-password")
	if err == nil {
		t.Fatalf("expected login failure")
	}
	if session.Phase() != PhaseAnonymous {
		t.Fatalf("failed login must not change phase, got %v", session.Phase())
	}
	if tok, _ := store.Load(); tok != "" {
		t.Fatalf("failed login must not persist a credential, got %q", tok)
	}
}

func TestLogout_Idempotent(t *testing.T) {
	session, _, _, store, _ := newFixture(t, "staff")
	session.Bootstrap(context.Background())
	if err := session.Login(context.Background(), stubEmail, stubPassword); err != nil {
		t.Fatalf("Login: %v", err)
	}

	session.Logout()
	session.Logout()

	if session.Phase() != PhaseAnonymous || session.Identity() != nil {
		t.Fatalf("expected anonymous with nil identity")
	}
	if tok, _ := store.Load(); tok != "" {
		t.Fatalf("expected empty store after logout, got %q", tok)
	}
}

func TestUpdateProfile_ReplacesIdentityWholesale(t *testing.T) {
	session, _, _, _, _ := newFixture(t, "owner")
	session.Bootstrap(context.Background())
	if err := session.Login(context.Background(), stubEmail, stubPassword); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if session.Identity().Phone == "" {
		t.Fatalf("fixture should start with a phone on the profile")
	}

	if err := session.UpdateProfile(context.Background(), domain.ProfileUpdate{Name: "New Name"}); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}

	identity := session.Identity()
	if identity.Name != "New Name" {
		t.Fatalf("expected updated name, got %q", identity.Name)
	}
	if identity.Phone != "" {
		t.Fatalf("identity must be replaced by the server profile, not merged; phone survived: %q", identity.Phone)
	}
}

func TestUpdateProfile_RequiresAuthentication(t *testing.T) {
	session, _, _, _, _ := newFixture(t, "staff")
	session.Bootstrap(context.Background())

	err := session.UpdateProfile(context.Background(), domain.ProfileUpdate{Name: "X"})
	if err != domain.ErrNotAuthenticated {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestUnknownRole_CollapsesToStaff(t *testing.T) {
	session, _, _, _, _ := newFixture(t, "superuser")
	session.Bootstrap(context.Background())

	if err := session.Login(context.Background(), stubEmail, stubPassword); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got := session.Identity().Role; got != domain.RoleStaff {
		t.Fatalf("unknown role must collapse to staff, got %s", got)
	}
	if session.Evaluate(domain.RoleAdmin) != DecisionDenied {
		t.Fatalf("collapsed role must not gain admin access")
	}
}

func TestInterception_MidFlightRejectionDropsSession(t *testing.T) {
	session, api, backend, store, nav := newFixture(t, "manager")
	session.Bootstrap(context.Background())
	if err := session.Login(context.Background(), stubEmail, stubPassword); err != nil {
		t.Fatalf("Login: %v", err)
	}

	backend.orders401.Store(true)
	if _, err := api.ListOrders(context.Background(), ""); err == nil {
		t.Fatalf("expected orders call to fail")
	}

	if session.Phase() != PhaseAnonymous {
		t.Fatalf("a rejected credential on any call must drop the session, got %v", session.Phase())
	}
	if tok, _ := store.Load(); tok != "" {
		t.Fatalf("expected store cleared by the interceptor, got %q", tok)
	}
	if nav.calls.Load() == 0 {
		t.Fatalf("expected a redirect to login")
	}
}

func TestGateScenario_ManagerDeniedOnAdminResource(t *testing.T) {
	session, _, _, store, _ := newFixture(t, "manager")
	session.Bootstrap(context.Background())
	if err := session.Login(context.Background(), stubEmail, stubPassword); err != nil {
		t.Fatalf("Login: %v", err)
	}

	if got := session.Evaluate(domain.RoleAdmin); got != DecisionDenied {
		t.Fatalf("expected denial, got %v", got)
	}
	// Denial must not disturb the session or the credential.
	if !session.IsAuthenticated() {
		t.Fatalf("denial must not drop the session")
	}
	if tok, _ := store.Load(); tok == "" {
		t.Fatalf("denial must not clear the credential")
	}
}

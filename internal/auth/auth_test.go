package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	apperrors "afl-predictions-backend/internal/errors"
	"afl-predictions-backend/pkg/types"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *AuthConfig {
	return &AuthConfig{
		SessionSecret: "test-session-secret",
		CookieName:    "afl_session",
		SessionTTL:    time.Hour,
		SweepInterval: time.Minute,
	}
}

// fakeClock lets tests move session time forward
type fakeClock struct{ t time.Time }

func (f *fakeClock) Now() time.Time { return f.t }
func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestService(t *testing.T) (*AuthService, *MemoryStore, *fakeClock) {
	t.Helper()
	store := NewMemoryStore()
	svc, err := NewAuthService(testConfig(), store)
	require.NoError(t, err)
	clock := &fakeClock{t: time.Date(2025, 3, 13, 19, 0, 0, 0, time.UTC)}
	svc.now = clock.Now
	return svc, store, clock
}

func TestAuthConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, testConfig().ValidateConfig())
	})

	t.Run("missing secret", func(t *testing.T) {
		cfg := testConfig()
		cfg.SessionSecret = ""
		assert.ErrorIs(t, cfg.ValidateConfig(), apperrors.ErrSessionSecretMissing)
	})

	t.Run("missing cookie name", func(t *testing.T) {
		cfg := testConfig()
		cfg.CookieName = ""
		assert.ErrorIs(t, cfg.ValidateConfig(), apperrors.ErrCookieNameMissing)
	})

	t.Run("non-positive ttl", func(t *testing.T) {
		cfg := testConfig()
		cfg.SessionTTL = 0
		err := cfg.ValidateConfig()
		assert.ErrorIs(t, err, apperrors.ErrInvalidSessionTTL)
		assert.True(t, apperrors.IsConfiguration(err))
	})

	t.Run("rejected by service constructor", func(t *testing.T) {
		cfg := testConfig()
		cfg.SessionSecret = ""
		_, err := NewAuthService(cfg, nil)
		assert.Error(t, err)
	})
}

func TestLoadAuthConfig(t *testing.T) {
	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "auth.yaml")
		content := "SESSION_SECRET: file-secret\nSESSION_TTL: 2h\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := LoadAuthConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "file-secret", cfg.SessionSecret)
		assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
		assert.Equal(t, "afl_session", cfg.CookieName)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("SESSION_SECRET", "env-secret")
		t.Setenv("SESSION_COOKIE_NAME", "tipping")

		cfg, err := LoadAuthConfig("")
		require.NoError(t, err)
		assert.Equal(t, "env-secret", cfg.SessionSecret)
		assert.Equal(t, "tipping", cfg.CookieName)
	})

	t.Run("missing secret fails validation", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("SESSION_SECRET", "")

		_, err := LoadAuthConfig("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "session secret is required")
	})
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	now := time.Now()

	store.Put(&Session{ID: "live", PlayerID: 1, ExpiresAt: now.Add(time.Hour)})
	store.Put(&Session{ID: "stale", PlayerID: 2, ExpiresAt: now.Add(-time.Second)})

	got, ok := store.Get("live")
	require.True(t, ok)
	assert.Equal(t, uint(1), got.PlayerID)

	// returned sessions are copies
	got.PlayerID = 99
	again, _ := store.Get("live")
	assert.Equal(t, uint(1), again.PlayerID)

	assert.Equal(t, 1, store.DeleteExpired(now))
	_, ok = store.Get("stale")
	assert.False(t, ok)

	store.Delete("live")
	store.Delete("live")
	assert.Equal(t, 0, store.Len())
}

func TestSessionLifecycle(t *testing.T) {
	svc, store, _ := newTestService(t)

	token, session, err := svc.StartSession(&types.Player{ID: 7, Name: "Alex"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 1, store.Len())

	resolved, err := svc.ResolveSession(token)
	require.NoError(t, err)
	assert.Equal(t, session.ID, resolved.ID)
	assert.Equal(t, uint(7), resolved.PlayerID)
	assert.Equal(t, "Alex", resolved.PlayerName)

	svc.EndSession(token)
	assert.Equal(t, 0, store.Len())

	_, err = svc.ResolveSession(token)
	assert.ErrorIs(t, err, apperrors.ErrSessionInvalid)

	// ending twice is harmless
	svc.EndSession(token)
	svc.EndSession("garbage")
}

func TestSessionIDsAreUnique(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, first, err := svc.StartSession(&types.Player{ID: 1, Name: "A"})
	require.NoError(t, err)
	_, second, err := svc.StartSession(&types.Player{ID: 1, Name: "A"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, first.ID, 43) // 32 bytes, unpadded base64url
}

func TestResolveSessionRejections(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		_, err := svc.ResolveSession("")
		assert.ErrorIs(t, err, apperrors.ErrSessionRequired)
	})

	t.Run("tampered signature", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		token, _, err := svc.StartSession(&types.Player{ID: 7, Name: "Alex"})
		require.NoError(t, err)

		parts := strings.Split(token, ".")
		parts[2] = strings.Repeat("A", len(parts[2]))
		_, err = svc.ResolveSession(strings.Join(parts, "."))
		assert.ErrorIs(t, err, apperrors.ErrSessionInvalid)
	})

	t.Run("signed with another secret", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		other, err := NewAuthService(&AuthConfig{SessionSecret: "other", CookieName: "afl_session", SessionTTL: time.Hour}, NewMemoryStore())
		require.NoError(t, err)
		token, _, err := other.StartSession(&types.Player{ID: 7, Name: "Alex"})
		require.NoError(t, err)

		_, err = svc.ResolveSession(token)
		assert.ErrorIs(t, err, apperrors.ErrSessionInvalid)
	})

	t.Run("wrong algorithm", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		claims := &SessionClaims{SessionID: "x", RegisteredClaims: jwt.RegisteredClaims{Issuer: sessionIssuer}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.ResolveSession(token)
		assert.ErrorIs(t, err, apperrors.ErrSessionInvalid)
	})

	t.Run("expired", func(t *testing.T) {
		svc, store, clock := newTestService(t)
		token, _, err := svc.StartSession(&types.Player{ID: 7, Name: "Alex"})
		require.NoError(t, err)

		clock.Advance(2 * time.Hour)
		_, err = svc.ResolveSession(token)
		assert.ErrorIs(t, err, apperrors.ErrSessionExpired)

		assert.Equal(t, 1, svc.SweepExpired())
		assert.Equal(t, 0, store.Len())
	})
}

func setupRouter(t *testing.T, svc *AuthService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	mw := NewAuthMiddleware(svc)
	router.GET("/protected", mw.RequireSession(), func(c *gin.Context) {
		id, _ := GetPlayerID(c)
		name, _ := GetPlayerName(c)
		sid, _ := GetSessionID(c)
		c.JSON(http.StatusOK, gin.H{"player_id": id, "player_name": name, "session_id": sid})
	})
	return router
}

func TestRequireSession(t *testing.T) {
	svc, _, _ := newTestService(t)
	router := setupRouter(t, svc)

	t.Run("no cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Not logged in"}`, w.Body.String())
	})

	t.Run("bogus cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "afl_session", Value: "not-a-token"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("live session", func(t *testing.T) {
		token, session, err := svc.StartSession(&types.Player{ID: 7, Name: "Alex"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "afl_session", Value: token})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, float64(7), body["player_id"])
		assert.Equal(t, "Alex", body["player_name"])
		assert.Equal(t, session.ID, body["session_id"])
	})

	t.Run("revoked session", func(t *testing.T) {
		token, _, err := svc.StartSession(&types.Player{ID: 7, Name: "Alex"})
		require.NoError(t, err)
		svc.EndSession(token)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "afl_session", Value: token})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestContextHelpersWithoutSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := GetPlayerID(c)
	assert.False(t, ok)
	_, ok = GetPlayerName(c)
	assert.False(t, ok)
	_, ok = GetSessionID(c)
	assert.False(t, ok)
}

func TestStartSessionSweeper(t *testing.T) {
	svc, store, _ := newTestService(t)

	_, err := StartSessionSweeper(svc, 0)
	assert.Error(t, err)

	store.Put(&Session{ID: "old", PlayerID: 1, ExpiresAt: time.Unix(0, 0)})
	sched, err := StartSessionSweeper(svc, 20*time.Millisecond)
	require.NoError(t, err)
	defer func() { _ = sched.Shutdown() }()

	assert.Eventually(t, func() bool { return store.Len() == 0 }, 2*time.Second, 10*time.Millisecond)
}

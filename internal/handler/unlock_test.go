package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runfall/CheatKeeper_Go/internal/domain"
	"github.com/runfall/CheatKeeper_Go/internal/random"
	"github.com/runfall/CheatKeeper_Go/internal/session"
	"github.com/runfall/CheatKeeper_Go/internal/unlock"
)

func newTestRouter(t *testing.T) (*chi.Mux, *session.Manager) {
	t.Helper()

	var seed uint64 = 100
	m, err := session.NewManager(unlock.DefaultSpec(), 16, func() random.Source {
		seed++
		return random.NewSeeded(seed)
	})
	require.NoError(t, err)

	h := NewUnlockHandlers(m)
	r := chi.NewRouter()
	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", h.HandleCreateSession())
		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/next-code", h.HandleNextCode())
			r.Post("/redeem", h.HandleRedeem())
			r.Get("/status", h.HandleSessionStatus())
			r.Get("/abilities/{abilityKey}", h.HandleAbilityStatus())
		})
	})
	return r, m
}

func createSession(t *testing.T, router *chi.Mux) string {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sessions", nil))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateSessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.SessionID)
	return resp.SessionID
}

func TestHandleNextCodeOffersMandatoryFirst(t *testing.T) {
	router, _ := newTestRouter(t)
	id := createSession(t, router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sessions/"+id+"/next-code", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp NextCodeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.AbilityJump, resp.Ability)
	assert.Equal(t, domain.RarityMandatory, resp.Rarity)
	assert.Len(t, resp.SecretCode, 4)
	assert.Equal(t, "jump.png", resp.AssetRef)
}

func TestHandleRedeemFlow(t *testing.T) {
	router, m := newTestRouter(t)
	id := createSession(t, router)

	s, err := m.Get(id)
	require.NoError(t, err)
	jump, ok := s.Engine.Catalog().Get(domain.AbilityJump)
	require.True(t, ok)

	redeem := func(code string) RedeemResponse {
		body := strings.NewReader(`{"code":"` + code + `"}`)
		req := httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/redeem", body)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp RedeemResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp
	}

	first := redeem(jump.SecretCode)
	assert.Equal(t, domain.RedemptionActivated, first.Result)
	assert.Equal(t, domain.AbilityJump, first.Ability)
	assert.Contains(t, first.Message, "successfully activated")

	second := redeem(jump.SecretCode)
	assert.Equal(t, domain.RedemptionAlreadyActivated, second.Result)

	unknown := redeem("bogus")
	assert.Equal(t, domain.RedemptionNotFound, unknown.Result)
	assert.Empty(t, unknown.Ability)

	// Empty input is a normal not_found outcome, not a request error.
	empty := redeem("")
	assert.Equal(t, domain.RedemptionNotFound, empty.Result)
}

func TestHandleRedeemRejectsBadRequests(t *testing.T) {
	router, _ := newTestRouter(t)
	id := createSession(t, router)

	t.Run("invalid JSON body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/redeem", strings.NewReader("{"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("oversized code", func(t *testing.T) {
		long := strings.Repeat("a", 65)
		req := httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/redeem",
			strings.NewReader(`{"code":"`+long+`"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleAbilityStatus(t *testing.T) {
	router, m := newTestRouter(t)
	id := createSession(t, router)

	get := func(key string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sessions/"+id+"/abilities/"+key, nil))
		return rec
	}

	rec := get("jump")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp AbilityStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Activated)

	s, err := m.Get(id)
	require.NoError(t, err)
	jump, _ := s.Engine.Catalog().Get(domain.AbilityJump)
	s.Engine.Redeem(jump.SecretCode)

	rec = get("jump")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Activated)

	assert.Equal(t, http.StatusNotFound, get("teleport").Code)
}

func TestHandleSessionStatusAndExhaustion(t *testing.T) {
	router, m := newTestRouter(t)
	id := createSession(t, router)

	s, err := m.Get(id)
	require.NoError(t, err)

	// Drain the whole catalog directly through the engine.
	for !s.Engine.Exhausted() {
		def, err := s.Engine.NextCode()
		require.NoError(t, err)
		require.Equal(t, domain.RedemptionActivated, s.Engine.Redeem(def.SecretCode).Status)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sessions/"+id+"/status", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var status SessionStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.True(t, status.Exhausted)
	assert.Equal(t, 0, status.Remaining)
	assert.Equal(t, status.CatalogSize, len(status.Activated))

	// Asking for another code against an exhausted catalog is a caller
	// error and surfaces as a conflict.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sessions/"+id+"/next-code", nil))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandlersRejectUnknownSession(t *testing.T) {
	router, _ := newTestRouter(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/sessions/nope/next-code"},
		{http.MethodPost, "/sessions/nope/redeem"},
		{http.MethodGet, "/sessions/nope/status"},
		{http.MethodGet, "/sessions/nope/abilities/jump"},
	}
	for _, p := range paths {
		var req *http.Request
		if p.method == http.MethodPost {
			req = httptest.NewRequest(p.method, p.path, strings.NewReader(`{"code":"x"}`))
		} else {
			req = httptest.NewRequest(p.method, p.path, nil)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", p.method, p.path)
	}
}

package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/runfall/CheatKeeper_Go/internal/domain"
	"github.com/runfall/CheatKeeper_Go/internal/logger"
	"github.com/runfall/CheatKeeper_Go/internal/metrics"
	"github.com/runfall/CheatKeeper_Go/internal/session"
)

// UnlockHandlers contains HTTP handlers for the unlock engine
type UnlockHandlers struct {
	manager *session.Manager
}

// NewUnlockHandlers creates new unlock handlers
func NewUnlockHandlers(manager *session.Manager) *UnlockHandlers {
	return &UnlockHandlers{manager: manager}
}

// HandleCreateSession creates a new unlock session with a fresh catalog
func (h *UnlockHandlers) HandleCreateSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		s, err := h.manager.Create()
		if err != nil {
			log.Error("Create session: manager error", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to create session")
			return
		}

		metrics.SessionsCreated.Inc()
		log.Info("Session created", "session_id", s.ID)
		respondJSON(w, http.StatusCreated, CreateSessionResponse{SessionID: s.ID})
	}
}

// HandleNextCode selects the ability to offer next. Selection does not
// activate anything; the caller presents the secret code to the player.
func (h *UnlockHandlers) HandleNextCode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		s, ok := h.getSession(w, r)
		if !ok {
			return
		}

		def, err := s.Engine.NextCode()
		if err != nil {
			if errors.Is(err, domain.ErrCatalogExhausted) {
				metrics.CatalogExhaustedHits.Inc()
				log.Warn("Next code requested on exhausted catalog", "session_id", s.ID)
				respondError(w, http.StatusConflict, domain.ErrMsgCatalogExhausted)
				return
			}
			log.Error("Next code: engine error", "session_id", s.ID, "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to select next code")
			return
		}

		metrics.NextCodeDraws.WithLabelValues(string(def.Rarity)).Inc()
		log.Info("Next code selected", "session_id", s.ID, "ability", def.ID, "rarity", def.Rarity)
		respondJSON(w, http.StatusOK, NextCodeResponse{
			Ability:    def.ID,
			Rarity:     def.Rarity,
			SecretCode: def.SecretCode,
			AssetRef:   def.AssetRef,
		})
	}
}

// HandleRedeem attempts to activate the ability matching the submitted
// code. All three outcomes are 200s; they are results, not errors.
func (h *UnlockHandlers) HandleRedeem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		s, ok := h.getSession(w, r)
		if !ok {
			return
		}

		var req RedeemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Warn("Redeem request: invalid JSON body", "session_id", s.ID, "error", err)
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Redeem request: validation failed", "session_id", s.ID, "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		outcome := s.Engine.Redeem(req.Code)
		metrics.CodeRedemptions.WithLabelValues(string(outcome.Status)).Inc()

		log.Info("Code redemption attempted",
			"session_id", s.ID,
			"result", outcome.Status,
			"ability", outcome.Ability)
		respondJSON(w, http.StatusOK, RedeemResponse{
			Result:  outcome.Status,
			Ability: outcome.Ability,
			Message: outcome.Message(),
		})
	}
}

// HandleAbilityStatus reports whether a single ability is activated
func (h *UnlockHandlers) HandleAbilityStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := h.getSession(w, r)
		if !ok {
			return
		}

		id := domain.AbilityID(chi.URLParam(r, "abilityKey"))
		if _, found := s.Engine.Catalog().Get(id); !found {
			respondError(w, http.StatusNotFound, "Unknown ability")
			return
		}

		respondJSON(w, http.StatusOK, AbilityStatusResponse{
			Ability:   id,
			Activated: s.Engine.IsActivated(id),
		})
	}
}

// HandleSessionStatus summarizes a session's activation state. Hosts use
// the exhausted flag to stop asking for next codes.
func (h *UnlockHandlers) HandleSessionStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := h.getSession(w, r)
		if !ok {
			return
		}

		activated := s.Engine.Activated()
		size := s.Engine.Catalog().Len()
		respondJSON(w, http.StatusOK, SessionStatusResponse{
			Activated:   activated,
			CatalogSize: size,
			Remaining:   size - len(activated),
			Exhausted:   len(activated) == size,
		})
	}
}

// getSession resolves the sessionID URL param, writing a 404 on a miss.
func (h *UnlockHandlers) getSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := chi.URLParam(r, "sessionID")
	s, err := h.manager.Get(id)
	if err != nil {
		logger.FromContext(r.Context()).Warn("Session lookup failed", "session_id", id)
		respondError(w, http.StatusNotFound, domain.ErrMsgSessionNotFound)
		return nil, false
	}
	return s, true
}

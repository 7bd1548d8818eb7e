package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/Aryan1092raj/HoneyPot/internal/classifier"
	"github.com/Aryan1092raj/HoneyPot/internal/engine"
	"github.com/Aryan1092raj/HoneyPot/internal/persona"
	"github.com/Aryan1092raj/HoneyPot/internal/store"
)

type Server struct {
	router *chi.Mux
	port   int
	engine *engine.Engine
	store  store.Store
	cls    *classifier.Classifier
	logger *slog.Logger
}

// NewServer builds the router. An empty apiKey disables authentication on the
// honeypot routes; that is logged loudly and meant for local runs only.
func NewServer(port int, apiKey string, eng *engine.Engine, st store.Store, cls *classifier.Classifier, logger *slog.Logger) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router: router,
		port:   port,
		engine: eng,
		store:  st,
		cls:    cls,
		logger: logger,
	}

	router.Get("/health", s.health)
	router.Get("/api/v1/honeypot/status", s.status)

	router.Route("/api/v1/honeypot", func(r chi.Router) {
		if apiKey != "" {
			r.Use(APIKeyAuthMiddleware(apiKey))
		} else {
			logger.Warn("HONEYPOT_API_KEY not set — honeypot endpoints are unauthenticated")
		}
		r.Post("/message", s.handleMessage)
		r.Post("/analyze", s.handleAnalyze)
		r.Get("/sessions", s.listSessions)
		r.Get("/sessions/{id}", s.getSession)
	})

	return s
}

// APIKeyAuthMiddleware rejects requests whose X-API-Key header does not match
// the configured pre-shared key, before any handler state is touched.
func APIKeyAuthMiddleware(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("X-API-Key") != key {
				writeError(w, http.StatusUnauthorized, "invalid or missing api key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("API server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service":  "honeypot",
		"status":   "active",
		"personas": len(persona.List()),
	})
}

func (s *Server) handleMessage(w http.ResponseWriter, r *http.Request) {
	var req MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %v", err))
		return
	}

	text := strings.TrimSpace(req.Message.Text)
	if text == "" {
		writeError(w, http.StatusBadRequest, "message text is required")
		return
	}
	if len(text) > maxMessageChars {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("message exceeds %d characters", maxMessageChars))
		return
	}
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	resp, err := s.engine.ProcessMessage(r.Context(), engine.Request{
		SessionID: req.SessionID,
		Message:   text,
		History:   req.ConversationHistory,
	})
	if err != nil {
		s.logger.Error("message processing failed", "session_id", req.SessionID, "error", err)
		writeError(w, http.StatusInternalServerError, "processing failed")
		return
	}

	personaName := ""
	if resp.PersonaID != "" {
		personaName = persona.Get(resp.PersonaID).Name
	}
	writeJSON(w, http.StatusOK, MessageResponse{
		Status:                 "success",
		SessionID:              resp.SessionID,
		Reply:                  resp.Reply,
		Persona:                personaName,
		ScamDetected:           resp.ScamDetected,
		TotalMessagesExchanged: resp.MessageCount,
		CallbackSent:           resp.NotificationStatus,
		ExtractedIntelligence:  resp.Intelligence,
		RedFlagsIdentified:     resp.RedFlags,
		EngagementMetrics: EngagementMetrics{
			DurationSeconds:   resp.EngagementSeconds,
			MessagesExchanged: resp.MessageCount,
		},
		AgentNotes:   resp.AgentNotes,
		SessionEnded: resp.SessionEnded,
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %v", err))
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}
	scam, _ := s.cls.Classify(req.Message)
	flags := s.cls.RedFlags(req.Message)
	if flags == nil {
		flags = []classifier.RedFlag{}
	}
	writeJSON(w, http.StatusOK, AnalyzeResponse{ScamDetected: scam, RedFlags: flags})
}

func (s *Server) listSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.store.List(r.Context())
	if err != nil {
		s.logger.Error("session listing failed", "error", err)
		writeError(w, http.StatusInternalServerError, "listing failed")
		return
	}
	summaries := make([]SessionSummary, 0, len(sessions))
	for _, sess := range sessions {
		summaries = append(summaries, SessionSummary{
			SessionID:         sess.ID,
			Phase:             string(sess.Phase),
			MessageCount:      sess.MessageCount,
			ScamDetected:      sess.ScamConfirmed,
			IntelligenceItems: sess.Intelligence.Total(),
			NotificationSent:  sess.NotificationSent,
			LastActivityAt:    sess.LastActivityAt.Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"sessions": summaries,
		"count":    len(summaries),
	})
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sess, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	if err != nil {
		s.logger.Error("session lookup failed", "session_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"status": "error", "error": msg})
}

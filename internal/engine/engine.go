// Package engine orchestrates the engagement pipeline: continuation check,
// scam classification, intelligence extraction, phase transition, reply
// generation, and report dispatch. Sessions are processed under a per-session
// lock, so concurrent messages for the same conversation serialize here.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Aryan1092raj/HoneyPot/internal/classifier"
	"github.com/Aryan1092raj/HoneyPot/internal/events"
	"github.com/Aryan1092raj/HoneyPot/internal/intel"
	"github.com/Aryan1092raj/HoneyPot/internal/notify"
	"github.com/Aryan1092raj/HoneyPot/internal/persona"
	"github.com/Aryan1092raj/HoneyPot/internal/session"
	"github.com/Aryan1092raj/HoneyPot/internal/store"
)

// closingReply ends a session that has hit its engagement limits. It is sent
// without touching the classifier or extractor.
const closingReply = "Thank you. I need to go now."

// Notification status values reported to the caller.
const (
	StatusNotSent = "not_sent"
	StatusQueued  = "queued"
	StatusSent    = "sent"
)

// Notifier delivers a finished intelligence report.
type Notifier interface {
	Dispatch(ctx context.Context, payload notify.Payload) error
}

// Request is one inbound scammer message plus any caller-supplied history.
type Request struct {
	SessionID string
	Message   string
	History   []intel.Turn
}

// Response is the pipeline outcome handed back to the HTTP layer. The
// intelligence and red-flag fields are snapshots, safe to marshal after the
// session lock is released.
type Response struct {
	SessionID          string
	Reply              string
	ScamDetected       bool
	MessageCount       int
	Phase              session.Phase
	PersonaID          string
	Intelligence       *intel.Record
	RedFlags           []string
	EngagementSeconds  int
	NotificationStatus string
	AgentNotes         string
	SessionEnded       bool
}

type Engine struct {
	store    store.Store
	machine  *session.Machine
	cls      *classifier.Classifier
	ext      *intel.Extractor
	gen      Generator
	notifier Notifier
	events   *events.Publisher
	logger   *slog.Logger

	genTimeout      time.Duration
	dispatchTimeout time.Duration

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New wires the pipeline. gen and notifier may be nil; the engine then falls
// back to canned replies and skips report delivery.
func New(
	st store.Store,
	machine *session.Machine,
	cls *classifier.Classifier,
	ext *intel.Extractor,
	gen Generator,
	notifier Notifier,
	ev *events.Publisher,
	genTimeout, dispatchTimeout time.Duration,
	logger *slog.Logger,
) *Engine {
	return &Engine{
		store:           st,
		machine:         machine,
		cls:             cls,
		ext:             ext,
		gen:             gen,
		notifier:        notifier,
		events:          ev,
		logger:          logger,
		genTimeout:      genTimeout,
		dispatchTimeout: dispatchTimeout,
		locks:           make(map[string]*sync.Mutex),
	}
}

// lockSession serializes processing per session id. Lock entries are never
// reclaimed; session ids are bounded by the store's own eviction.
func (e *Engine) lockSession(id string) func() {
	e.mu.Lock()
	m, ok := e.locks[id]
	if !ok {
		m = &sync.Mutex{}
		e.locks[id] = m
	}
	e.mu.Unlock()
	m.Lock()
	return m.Unlock
}

// ProcessMessage runs one inbound message through the full pipeline and
// persists the updated session before returning.
func (e *Engine) ProcessMessage(ctx context.Context, req Request) (*Response, error) {
	if req.SessionID == "" {
		return nil, errors.New("empty session id")
	}
	unlock := e.lockSession(req.SessionID)
	defer unlock()

	s, err := e.store.Get(ctx, req.SessionID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		s = session.New(req.SessionID)
		e.logger.Info("session started", "session_id", s.ID)
	case err != nil:
		return nil, fmt.Errorf("load session: %w", err)
	}

	if !e.machine.ShouldContinue(s) {
		s.Phase = session.PhaseTerminated
		if err := e.store.Put(ctx, s); err != nil {
			return nil, fmt.Errorf("save session: %w", err)
		}
		e.logger.Info("session ended", "session_id", s.ID, "messages", s.MessageCount)
		status := StatusNotSent
		if s.NotificationSent {
			status = StatusSent
		}
		return e.respond(s, closingReply, status, true), nil
	}

	// Caller-supplied history is mined before the live message, so bulk
	// imports land in the same record.
	if len(req.History) > 0 {
		e.ext.ExtractHistory(req.History, s.Intelligence)
	}

	if !s.ScamConfirmed {
		scam, labels := e.cls.Classify(req.Message)
		s.AddRedFlags(labels)
		if scam {
			s.Confirm()
			e.logger.Info("scam confirmed", "session_id", s.ID, "red_flags", len(s.RedFlags))
			e.events.Publish(events.SubjectSessionConfirmed, map[string]any{
				"sessionId": s.ID,
				"redFlags":  s.RedFlags,
			})
		}
	} else {
		for _, flag := range e.cls.RedFlags(req.Message) {
			s.AddRedFlags([]string{flag.Label})
		}
	}

	before := s.Intelligence.Total()
	e.ext.Extract(req.Message, s.Intelligence)
	if added := s.Intelligence.Total() - before; added > 0 {
		e.logger.Info("intelligence extracted",
			"session_id", s.ID,
			"new_items", added,
			"total", s.Intelligence.Total(),
		)
		e.events.Publish(events.SubjectIntelExtracted, map[string]any{
			"sessionId": s.ID,
			"total":     s.Intelligence.Total(),
		})
	}

	e.machine.IncrementAndTransition(s)

	reply := e.reply(ctx, s, req.Message)
	s.AppendTurn(req.Message, reply)

	status := StatusNotSent
	if e.machine.ShouldNotify(s) {
		// Latch before dispatch starts. A delivery failure is logged and
		// published but never re-reported.
		s.NotificationSent = true
		status = StatusQueued
		payload := notify.BuildPayload(s)
		go e.dispatch(payload)
	}

	if err := e.store.Put(ctx, s); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return e.respond(s, reply, status, false), nil
}

// reply picks the outbound text. Unconfirmed sessions get a rotating
// suspicion probe; confirmed sessions go through the persona generator with
// canned fallbacks on any failure.
func (e *Engine) reply(ctx context.Context, s *session.Session, message string) string {
	if !s.ScamConfirmed {
		return suspicionReply(s.MessageCount)
	}

	if s.PersonaID == "" {
		p := persona.Select(message)
		s.PersonaID = p.ID
		e.logger.Info("persona assigned", "session_id", s.ID, "persona", p.ID)
	}
	p := persona.Get(s.PersonaID)

	if e.gen == nil {
		return fallbackReply(s.MessageCount)
	}

	gctx, cancel := context.WithTimeout(ctx, e.genTimeout)
	defer cancel()
	out, err := e.gen.Generate(gctx, GenerateRequest{
		Persona:     p,
		Instruction: e.machine.PhaseInstruction(s.Phase),
		Missing:     s.Intelligence.MissingFields(),
		History:     s.RecentHistory(e.machine.Policy().HistoryWindow),
		Message:     message,
	})
	if err != nil {
		e.logger.Warn("generator failed, using canned reply", "session_id", s.ID, "error", err)
		return fallbackReply(s.MessageCount)
	}

	clean, ok := Sanitize(out)
	if !ok {
		e.logger.Warn("generated reply rejected by sanitizer", "session_id", s.ID)
		return fallbackReply(s.MessageCount)
	}
	return clean
}

func (e *Engine) dispatch(payload notify.Payload) {
	if e.notifier == nil {
		e.logger.Warn("no notifier configured, report dropped", "session_id", payload.SessionID)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), e.dispatchTimeout)
	defer cancel()
	if err := e.notifier.Dispatch(ctx, payload); err != nil {
		e.logger.Error("report dispatch failed", "session_id", payload.SessionID, "error", err)
	}
}

func (e *Engine) respond(s *session.Session, reply, status string, ended bool) *Response {
	return &Response{
		SessionID:          s.ID,
		Reply:              reply,
		ScamDetected:       s.ScamConfirmed,
		MessageCount:       s.MessageCount,
		Phase:              s.Phase,
		PersonaID:          s.PersonaID,
		Intelligence:       s.Intelligence.Clone(),
		RedFlags:           append([]string{}, s.RedFlags...),
		EngagementSeconds:  s.EngagementSeconds(),
		NotificationStatus: status,
		AgentNotes:         notify.BuildNotes(s),
		SessionEnded:       ended,
	}
}

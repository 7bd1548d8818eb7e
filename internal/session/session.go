// Package session owns the per-conversation state and the deterministic
// engagement state machine. All control flow — phase, continuation,
// notification — is decided here; the language model only phrases replies.
package session

import (
	"time"

	"github.com/Aryan1092raj/HoneyPot/internal/intel"
)

// Phase is the current stage of the scripted engagement strategy.
type Phase string

const (
	PhaseTrustBuilding Phase = "trust_building"
	PhaseProbing       Phase = "probing"
	PhaseExtraction    Phase = "extraction"
	PhaseWindingDown   Phase = "winding_down"
	PhaseTerminated    Phase = "terminated"
)

// Turn is one exchanged pair in the conversation history.
type Turn struct {
	Inbound string    `json:"inbound"`
	Reply   string    `json:"reply"`
	At      time.Time `json:"at"`
}

// Session is the state for one conversation, keyed by an externally assigned id.
type Session struct {
	ID            string        `json:"id"`
	Phase         Phase         `json:"phase"`
	MessageCount  int           `json:"messageCount"`
	ScamConfirmed bool          `json:"scamConfirmed"`
	PersonaID     string        `json:"personaId"`
	Intelligence  *intel.Record `json:"intelligence"`
	RedFlags      []string      `json:"redFlags"`

	NotificationSent bool      `json:"notificationSent"`
	CreatedAt        time.Time `json:"createdAt"`
	LastActivityAt   time.Time `json:"lastActivityAt"`
	History          []Turn    `json:"history"`
}

// New returns a fresh session in the trust-building phase.
func New(id string) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:             id,
		Phase:          PhaseTrustBuilding,
		Intelligence:   intel.NewRecord(),
		RedFlags:       []string{},
		CreatedAt:      now,
		LastActivityAt: now,
	}
}

// Confirm latches the scam verdict. The flag is set at most once and never reset.
func (s *Session) Confirm() {
	s.ScamConfirmed = true
}

// AddRedFlags unions labels into the cumulative red-flag set, preserving
// first-seen order. The set never shrinks.
func (s *Session) AddRedFlags(labels []string) {
	for _, label := range labels {
		known := false
		for _, existing := range s.RedFlags {
			if existing == label {
				known = true
				break
			}
		}
		if !known {
			s.RedFlags = append(s.RedFlags, label)
		}
	}
}

// AppendTurn records one exchanged pair and bumps the activity timestamp.
func (s *Session) AppendTurn(inbound, reply string) {
	now := time.Now().UTC()
	s.History = append(s.History, Turn{Inbound: inbound, Reply: reply, At: now})
	s.LastActivityAt = now
}

// Clone returns a deep copy. Stores hand out clones so that readers never
// share mutable state with a pipeline run holding the session lock.
func (s *Session) Clone() *Session {
	c := *s
	c.Intelligence = s.Intelligence.Clone()
	c.RedFlags = append([]string{}, s.RedFlags...)
	c.History = append([]Turn{}, s.History...)
	return &c
}

// RecentHistory returns the last n turns for the generator's context window.
func (s *Session) RecentHistory(n int) []Turn {
	if len(s.History) <= n {
		return s.History
	}
	return s.History[len(s.History)-n:]
}

// EngagementSeconds is the wall-clock span of the conversation so far.
func (s *Session) EngagementSeconds() int {
	return int(s.LastActivityAt.Sub(s.CreatedAt) / time.Second)
}

// Package notify delivers the final intelligence bundle to the external
// reporting endpoint. The at-most-once guarantee lives in the session's
// notificationSent latch, which the engine sets before dispatch ever starts;
// this package only handles delivery mechanics.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Aryan1092raj/HoneyPot/internal/events"
	"github.com/Aryan1092raj/HoneyPot/internal/intel"
	"github.com/Aryan1092raj/HoneyPot/internal/session"
)

// Payload is the fixed-shape report sent to the callback endpoint.
type Payload struct {
	ReportID               string        `json:"reportId"`
	SessionID              string        `json:"sessionId"`
	ScamDetected           bool          `json:"scamDetected"`
	TotalMessagesExchanged int           `json:"totalMessagesExchanged"`
	ExtractedIntelligence  *intel.Record `json:"extractedIntelligence"`
	RedFlagsIdentified     []string      `json:"redFlagsIdentified"`
	AgentNotes             string        `json:"agentNotes"`
}

type Dispatcher struct {
	url            string
	client         *http.Client
	maxRetries     int
	initialBackoff time.Duration
	logger         *slog.Logger
	events         *events.Publisher
}

func NewDispatcher(url string, attemptTimeout time.Duration, maxRetries int, ev *events.Publisher, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		url:            url,
		client:         &http.Client{Timeout: attemptTimeout},
		maxRetries:     maxRetries,
		initialBackoff: time.Second,
		logger:         logger,
		events:         ev,
	}
}

// BuildPayload snapshots the session into the report shape.
func BuildPayload(s *session.Session) Payload {
	return Payload{
		ReportID:               uuid.NewString(),
		SessionID:              s.ID,
		ScamDetected:           s.ScamConfirmed,
		TotalMessagesExchanged: s.MessageCount,
		ExtractedIntelligence:  s.Intelligence.Clone(),
		RedFlagsIdentified:     append([]string{}, s.RedFlags...),
		AgentNotes:             BuildNotes(s),
	}
}

// BuildNotes renders the free-text summary carried alongside the structured
// intelligence.
func BuildNotes(s *session.Session) string {
	rec := s.Intelligence
	notes := fmt.Sprintf(
		"Agent engaged suspected scammer for %d exchanges over %ds. "+
			"Extracted %d intelligence items: %d UPI IDs, %d phone entries, "+
			"%d bank accounts, %d links, %d emails.",
		s.MessageCount, s.EngagementSeconds(), rec.Total(),
		len(rec.UPIIDs), len(rec.PhoneNumbers), len(rec.BankAccounts),
		len(rec.PhishingLinks), len(rec.EmailAddresses),
	)
	if len(s.RedFlags) > 0 {
		notes += " Red flags: "
		for i, flag := range s.RedFlags {
			if i > 0 {
				notes += "; "
			}
			notes += flag
		}
		notes += "."
	}
	return notes
}

// Dispatch posts the payload, retrying with exponential backoff. Any
// non-2xx status or transport error counts as a retryable failure. Returns
// the terminal outcome; the caller's latch stays set either way.
func (d *Dispatcher) Dispatch(ctx context.Context, payload Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	backoff := d.initialBackoff
	var lastErr error
	for attempt := 1; attempt <= d.maxRetries; attempt++ {
		lastErr = d.attempt(ctx, body)
		if lastErr == nil {
			d.logger.Info("report delivered",
				"session_id", payload.SessionID,
				"report_id", payload.ReportID,
				"attempt", attempt,
			)
			d.events.Publish(events.SubjectReportSent, payload)
			return nil
		}

		d.logger.Warn("report delivery failed",
			"session_id", payload.SessionID,
			"attempt", attempt,
			"error", lastErr,
		)

		if attempt < d.maxRetries {
			select {
			case <-ctx.Done():
				return fmt.Errorf("dispatch cancelled: %w", ctx.Err())
			case <-time.After(backoff):
			}
			backoff *= 2
		}
	}

	d.events.Publish(events.SubjectReportFailed, map[string]any{
		"sessionId": payload.SessionID,
		"reportId":  payload.ReportID,
		"error":     lastErr.Error(),
	})
	return fmt.Errorf("dispatch after %d attempts: %w", d.maxRetries, lastErr)
}

func (d *Dispatcher) attempt(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("post report: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("endpoint returned %d", resp.StatusCode)
	}
	return nil
}

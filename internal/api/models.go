package api

import (
	"encoding/json"
	"errors"

	"github.com/Aryan1092raj/HoneyPot/internal/classifier"
	"github.com/Aryan1092raj/HoneyPot/internal/intel"
)

// maxMessageChars bounds the inbound message after trimming.
const maxMessageChars = 5000

// Message accepts either a bare JSON string or a structured object with a
// text field. Platforms wire messages both ways.
type Message struct {
	Text   string
	Sender string
}

func (m *Message) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		m.Text = s
		return nil
	}
	var obj struct {
		Text      string `json:"text"`
		Sender    string `json:"sender"`
		Timestamp any    `json:"timestamp"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return errors.New("message must be a string or an object with a text field")
	}
	m.Text = obj.Text
	m.Sender = obj.Sender
	return nil
}

// MessageRequest is the inbound honeypot payload.
type MessageRequest struct {
	SessionID           string         `json:"sessionId"`
	Message             Message        `json:"message"`
	ConversationHistory []intel.Turn   `json:"conversationHistory"`
	Metadata            map[string]any `json:"metadata"`
}

// EngagementMetrics summarizes how long and how deep the engagement ran.
type EngagementMetrics struct {
	DurationSeconds   int `json:"durationSeconds"`
	MessagesExchanged int `json:"messagesExchanged"`
}

// MessageResponse is the outbound honeypot payload.
type MessageResponse struct {
	Status                 string            `json:"status"`
	SessionID              string            `json:"sessionId"`
	Reply                  string            `json:"reply"`
	Persona                string            `json:"persona,omitempty"`
	ScamDetected           bool              `json:"scamDetected"`
	TotalMessagesExchanged int               `json:"totalMessagesExchanged"`
	CallbackSent           string            `json:"callbackSent"`
	ExtractedIntelligence  *intel.Record     `json:"extractedIntelligence"`
	RedFlagsIdentified     []string          `json:"redFlagsIdentified"`
	EngagementMetrics      EngagementMetrics `json:"engagementMetrics"`
	AgentNotes             string            `json:"agentNotes,omitempty"`
	SessionEnded           bool              `json:"sessionEnded"`
}

// SessionSummary is one row in the session listing.
type SessionSummary struct {
	SessionID         string `json:"sessionId"`
	Phase             string `json:"phase"`
	MessageCount      int    `json:"messageCount"`
	ScamDetected      bool   `json:"scamDetected"`
	IntelligenceItems int    `json:"intelligenceItems"`
	NotificationSent  bool   `json:"notificationSent"`
	LastActivityAt    string `json:"lastActivityAt"`
}

// AnalyzeRequest and AnalyzeResponse back the diagnostics endpoint that runs
// the classifier over a single message without touching any session.
type AnalyzeRequest struct {
	Message string `json:"message"`
}

type AnalyzeResponse struct {
	ScamDetected bool                 `json:"scamDetected"`
	RedFlags     []classifier.RedFlag `json:"redFlags"`
}

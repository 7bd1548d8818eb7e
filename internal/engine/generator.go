package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/Aryan1092raj/HoneyPot/internal/groq"
	"github.com/Aryan1092raj/HoneyPot/internal/persona"
	"github.com/Aryan1092raj/HoneyPot/internal/session"
)

// GenerateRequest carries everything the language model needs for one reply.
// The engine, not the model, decides persona, phase, and what to ask for.
type GenerateRequest struct {
	Persona     persona.Persona
	Instruction string
	Missing     []string
	History     []session.Turn
	Message     string
}

// Generator produces the persona's next line. Implementations must respect
// the context deadline.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

const (
	replyMaxTokens   = 150
	replyTemperature = 0.8
)

// GroqGenerator phrases replies through the Groq chat completion API.
type GroqGenerator struct {
	client *groq.Client
}

func NewGroqGenerator(client *groq.Client) *GroqGenerator {
	return &GroqGenerator{client: client}
}

func (g *GroqGenerator) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	messages := []groq.Message{{Role: "system", Content: systemPrompt(req)}}
	for _, turn := range req.History {
		messages = append(messages,
			groq.Message{Role: "user", Content: turn.Inbound},
			groq.Message{Role: "assistant", Content: turn.Reply},
		)
	}
	messages = append(messages, groq.Message{Role: "user", Content: req.Message})

	out, err := g.client.Complete(ctx, messages, replyMaxTokens, replyTemperature)
	if err != nil {
		return "", fmt.Errorf("complete: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// systemPrompt assembles the persona identity, the phase directive, and the
// still-missing intelligence into one system message. The rules block keeps
// the model in character and always probing.
func systemPrompt(req GenerateRequest) string {
	missing := "any new contact detail"
	if len(req.Missing) > 0 {
		missing = strings.Join(req.Missing, ", ")
	}
	return req.Persona.Prompt + "\n\n" +
		"CURRENT PHASE: " + req.Instruction + "\n\n" +
		"STILL MISSING: We still need their " + missing + ".\n\n" +
		"RULES:\n" +
		"- 2-3 sentences. Short, messy, natural.\n" +
		"- NEVER give real OTP/PIN/password\n" +
		"- NEVER break character\n" +
		"- NEVER say 'I will' or 'Let me' (English-style)\n" +
		"- NEVER write explanations or reasoning\n" +
		"- ALWAYS end with a question asking for ONE of: their phone number, " +
		"UPI ID, email address, website link, or bank account number\n" +
		"- Examples: 'Aapka number kya hai?', 'UPI ID bolo na?', " +
		"'Link bhejo na?', 'Email pe bhej do details', " +
		"'Account number kya hai aapka?'\n" +
		"- Mention your financial details vaguely to keep them interested"
}

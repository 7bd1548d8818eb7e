package engine

import "strings"

// maxReplyChars bounds generated replies; anything longer reads as an essay,
// not a confused human on the phone.
const maxReplyChars = 400

// forbiddenFragments reject generated text that breaks character: meta
// commentary, assistant-speak, or lines that read as the scammer's script
// rather than the victim's.
var forbiddenFragments = []string{
	"the user", "the scammer", "user wants", "scammer wants",
	"training data", "output format", "instructions",
	"i will", "i need to", "let me", "i should",
	"as an ai", "as a language model", "i'm an ai",
	"the victim", "the agent", "honeypot",
	"generate", "scenario", "realistic", "respond with",
	"here is", "here's the", "the response",
	"i am calling from", "this is bank", "i am from bank",
	"we need your", "please provide your", "share your",
}

// Sanitize vets a generated reply. It returns the trimmed reply and whether
// it is safe to send. Empty, overlong, or character-breaking output is
// rejected; the caller falls back to a canned line.
func Sanitize(reply string) (string, bool) {
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", false
	}
	if len(reply) > maxReplyChars {
		return "", false
	}
	lower := strings.ToLower(reply)
	for _, fragment := range forbiddenFragments {
		if strings.Contains(lower, fragment) {
			return "", false
		}
	}
	return reply, true
}

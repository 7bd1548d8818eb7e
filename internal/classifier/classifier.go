// Package classifier implements the multi-signal scam-intent verdict and
// red-flag identification. Detection is deliberately high-recall: inbound
// traffic is adversarial by construction, so a false positive costs nothing
// while a false negative forfeits intelligence.
package classifier

import (
	"log/slog"
	"strings"

	"github.com/Aryan1092raj/HoneyPot/internal/patterns"
)

// DensityThreshold is the distinct-keyword count that alone confirms scam intent.
const DensityThreshold = 3

// LengthFallbackChars is the minimum trimmed length for the policy-knob
// fallback that treats any sufficiently long message as worth engaging.
const LengthFallbackChars = 20

type Classifier struct {
	logger *slog.Logger

	// LengthFallback enables the length heuristic as a final rule. On by
	// default; callers expecting mixed benign traffic can switch it off.
	LengthFallback bool
}

func New(logger *slog.Logger) *Classifier {
	return &Classifier{logger: logger, LengthFallback: true}
}

// RedFlag is one matched category with the trigger phrases that fired.
type RedFlag struct {
	Category string   `json:"category"`
	Label    string   `json:"label"`
	Matched  []string `json:"matchedTriggers"`
}

// Classify returns the scam verdict for one message together with every
// matched red-flag label. Red flags are computed fully regardless of which
// rule settles the verdict — the cumulative set feeds the final report.
func (c *Classifier) Classify(message string) (bool, []string) {
	flags := c.RedFlags(message)
	labels := make([]string, len(flags))
	for i, f := range flags {
		labels[i] = f.Label
	}
	return c.verdict(message), labels
}

func (c *Classifier) verdict(message string) bool {
	lower := strings.ToLower(message)

	// Rule 1: reward/prize term plus a monetary amount is an instant verdict.
	if containsAny(lower, patterns.RewardTerms) && patterns.Amount.MatchString(message) {
		c.logger.Info("scam verdict", "rule", "reward+amount")
		return true
	}

	// Rule 2: urgency language paired with a financial action.
	if containsAny(lower, patterns.UrgencyTerms) && containsAny(lower, patterns.FinancialActionTerms) {
		c.logger.Info("scam verdict", "rule", "urgency+financial")
		return true
	}

	// Rule 3: keyword density.
	hits := keywordHits(lower)
	if hits >= DensityThreshold {
		c.logger.Info("scam verdict", "rule", "keyword-density", "hits", hits)
		return true
	}

	// Rule 4: combined weak signals.
	signals := 0
	if hits >= 2 {
		signals++
	}
	if patterns.UPI.MatchString(message) {
		signals++
	}
	if patterns.Phone.MatchString(message) {
		signals++
	}
	if patterns.URL.MatchString(message) {
		signals++
	}
	if patterns.Email.MatchString(message) {
		signals++
	}
	if signals >= 2 {
		c.logger.Info("scam verdict", "rule", "signal-count", "signals", signals)
		return true
	}

	// Rule 5: length fallback, a policy knob rather than a detection claim.
	if c.LengthFallback && len(strings.TrimSpace(message)) > LengthFallbackChars {
		c.logger.Info("scam verdict", "rule", "length-fallback")
		return true
	}

	return false
}

// RedFlags scans the message against every category table and returns the
// matches with their fired trigger phrases, in table order.
func (c *Classifier) RedFlags(message string) []RedFlag {
	lower := strings.ToLower(message)
	var flags []RedFlag
	for _, cat := range patterns.RedFlagCategories {
		var matched []string
		for _, trigger := range cat.Triggers {
			if strings.Contains(lower, trigger) {
				matched = append(matched, trigger)
			}
		}
		if len(matched) > 0 {
			flags = append(flags, RedFlag{Category: cat.ID, Label: cat.Label, Matched: matched})
		}
	}
	return flags
}

func keywordHits(lower string) int {
	hits := 0
	for _, kw := range patterns.ScamKeywords {
		if strings.Contains(lower, kw) {
			hits++
		}
	}
	return hits
}

func containsAny(lower string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

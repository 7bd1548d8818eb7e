// Package intel turns free-text scammer messages into normalized, deduplicated
// identifier collections. Extraction is idempotent: re-running a pass over
// text already scanned adds nothing.
package intel

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/Aryan1092raj/HoneyPot/internal/patterns"
)

var (
	phoneSeparators = regexp.MustCompile(`[\s.\-()]`)
	nonDigits       = regexp.MustCompile(`[^0-9]`)
	accountGroupSep = regexp.MustCompile(`[\s.\-]`)
)

// Turn is one prior exchange supplied by the caller for bulk extraction.
type Turn struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

type Extractor struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Extract runs the ordered extraction passes over text, mutating rec.
// Pass order matters: emails are captured before UPI handles so that an
// email's local part is never misfiled as a payment handle. Each pass is
// isolated — a failure in one must not abort the others.
func (e *Extractor) Extract(text string, rec *Record) {
	e.pass("emails", func() { e.extractEmails(text, rec) })
	e.pass("upi", func() { e.extractUPI(text, rec) })
	e.pass("phones", func() { e.extractPhones(text, rec) })
	e.pass("urls", func() { e.extractURLs(text, rec) })
	e.pass("accounts", func() { e.extractBankAccounts(text, rec) })
	e.pass("ifsc", func() { e.extractIFSC(text, rec) })
	e.pass("keywords", func() { e.extractKeywords(text, rec) })
}

// ExtractHistory applies the same passes to every prior turn in order,
// producing the same cumulative record as if each turn had been processed
// as it arrived.
func (e *Extractor) ExtractHistory(turns []Turn, rec *Record) {
	for _, turn := range turns {
		if turn.Text != "" {
			e.Extract(turn.Text, rec)
		}
	}
}

func (e *Extractor) pass(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("extraction pass failed", "pass", name, "panic", r)
		}
	}()
	fn()
}

func (e *Extractor) extractEmails(text string, rec *Record) {
	for _, match := range patterns.Email.FindAllString(text, -1) {
		if containsFold(rec.EmailAddresses, match) {
			continue
		}
		rec.EmailAddresses = append(rec.EmailAddresses, match)
		e.logger.Info("extracted email", "value", match)
	}
}

func (e *Extractor) extractUPI(text string, rec *Record) {
	// Emails found in this message plus everything previously recorded,
	// lower-cased for fragment checks.
	emails := make([]string, 0, len(rec.EmailAddresses))
	for _, em := range rec.EmailAddresses {
		emails = append(emails, strings.ToLower(em))
	}
	for _, em := range patterns.Email.FindAllString(text, -1) {
		emails = append(emails, strings.ToLower(em))
	}

	for _, match := range patterns.UPI.FindAllString(text, -1) {
		lower := strings.ToLower(match)
		if containsFold(rec.UPIIDs, match) {
			continue
		}

		// Skip UPI candidates that are fragments of a full email, e.g.
		// "support@sbi" inside "support@sbi-fraud-dept.fake.com".
		fragment := false
		for _, em := range emails {
			if lower == em || strings.Contains(em, lower) || strings.HasPrefix(em, lower) {
				fragment = true
				break
			}
		}
		if fragment {
			continue
		}

		domain := ""
		if at := strings.IndexByte(lower, '@'); at >= 0 {
			domain = lower[at+1:]
		}

		if patterns.KnownUPIHandles[domain] {
			rec.UPIIDs = append(rec.UPIIDs, match)
			e.logger.Info("extracted upi id", "value", match, "provider", domain)
			continue
		}

		// Unknown provider: accept only if the domain does not itself look
		// like a dotted email domain that slipped past the email pass.
		if !patterns.MultiLabelDomain.MatchString(domain) {
			rec.UPIIDs = append(rec.UPIIDs, match)
			e.logger.Info("extracted upi id", "value", match)
		}
	}
}

func (e *Extractor) extractPhones(text string, rec *Record) {
	for _, match := range patterns.Phone.FindAllString(text, -1) {
		original := strings.TrimSpace(match)
		clean := phoneSeparators.ReplaceAllString(original, "")
		digits := nonDigits.ReplaceAllString(clean, "")

		variants := []string{original, clean}
		if len(digits) >= 10 {
			bare := digits[len(digits)-10:]
			variants = append(variants,
				"+91-"+bare,
				"+91"+bare,
				"0"+bare,
				bare,
				"+91 "+bare[:5]+" "+bare[5:],
				"+91-"+bare[:5]+"-"+bare[5:],
			)
		}

		added := 0
		for _, v := range variants {
			if v == "" || contains(rec.PhoneNumbers, v) {
				continue
			}
			rec.PhoneNumbers = append(rec.PhoneNumbers, v)
			added++
		}
		if added > 0 {
			e.logger.Info("extracted phone", "value", original, "variants", added)
		}
	}
}

func (e *Extractor) extractURLs(text string, rec *Record) {
	for _, match := range patterns.URL.FindAllString(text, -1) {
		cleaned := strings.TrimRight(match, ".,;:!?)")
		if cleaned == "" || contains(rec.PhishingLinks, cleaned) {
			continue
		}
		rec.PhishingLinks = append(rec.PhishingLinks, cleaned)
		e.logger.Info("extracted url", "value", cleaned)
	}
}

func (e *Extractor) extractBankAccounts(text string, rec *Record) {
	// Digit forms of known phones, so a phone never double-counts as an account.
	phoneDigits := map[string]bool{}
	for _, pn := range rec.PhoneNumbers {
		digits := nonDigits.ReplaceAllString(pn, "")
		phoneDigits[digits] = true
		if len(digits) > 10 {
			phoneDigits[digits[len(digits)-10:]] = true
		}
	}

	for _, match := range patterns.BankAccount.FindAllString(text, -1) {
		if phoneDigits[match] || contains(rec.BankAccounts, match) {
			continue
		}
		rec.BankAccounts = append(rec.BankAccounts, match)
		e.logger.Info("extracted bank account", "value", match)
	}

	// Spaced-group accounts are stored both as the cleaned digit string and,
	// when different, the original literal, for substring-matching consumers.
	for _, match := range patterns.BankAccountSpaced.FindAllString(text, -1) {
		original := strings.TrimSpace(match)
		clean := accountGroupSep.ReplaceAllString(original, "")
		if phoneDigits[clean] {
			continue
		}
		if !contains(rec.BankAccounts, clean) {
			rec.BankAccounts = append(rec.BankAccounts, clean)
			e.logger.Info("extracted bank account", "value", clean, "spaced", true)
		}
		if original != clean && !contains(rec.BankAccounts, original) {
			rec.BankAccounts = append(rec.BankAccounts, original)
		}
	}
}

func (e *Extractor) extractIFSC(text string, rec *Record) {
	for _, match := range patterns.IFSC.FindAllString(text, -1) {
		if contains(rec.IFSCCodes, match) {
			continue
		}
		rec.IFSCCodes = append(rec.IFSCCodes, match)
		e.logger.Info("extracted ifsc code", "value", match)
	}
}

func (e *Extractor) extractKeywords(text string, rec *Record) {
	lower := strings.ToLower(text)
	for _, kw := range patterns.ScamKeywords {
		if strings.Contains(lower, kw) && !contains(rec.SuspiciousKeywords, kw) {
			rec.SuspiciousKeywords = append(rec.SuspiciousKeywords, kw)
		}
	}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsFold(list []string, v string) bool {
	for _, item := range list {
		if strings.EqualFold(item, v) {
			return true
		}
	}
	return false
}

package intel

import (
	"log/slog"
	"reflect"
	"testing"
)

func newTestExtractor() *Extractor {
	return New(slog.Default())
}

func TestExtractIdempotent(t *testing.T) {
	e := newTestExtractor()
	msg := "Pay ₹500 to scam@paytm or call 9876543210, link http://kyc-update.xyz/verify"

	once := NewRecord()
	e.Extract(msg, once)

	twice := NewRecord()
	e.Extract(msg, twice)
	e.Extract(msg, twice)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("extraction not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestExtractUPIEmailDisambiguation(t *testing.T) {
	e := newTestExtractor()
	rec := NewRecord()
	e.Extract("mail me at scam@finance.co.in or pay scam@paytm", rec)

	if len(rec.EmailAddresses) != 1 || rec.EmailAddresses[0] != "scam@finance.co.in" {
		t.Errorf("emails = %v, want exactly [scam@finance.co.in]", rec.EmailAddresses)
	}
	if len(rec.UPIIDs) != 1 || rec.UPIIDs[0] != "scam@paytm" {
		t.Errorf("upi ids = %v, want exactly [scam@paytm]", rec.UPIIDs)
	}
}

func TestExtractUPIEmailFragment(t *testing.T) {
	e := newTestExtractor()
	rec := NewRecord()
	e.Extract("write to support@sbi-fraud-dept.fake.com for refund", rec)

	if len(rec.EmailAddresses) != 1 {
		t.Fatalf("emails = %v, want one entry", rec.EmailAddresses)
	}
	// The UPI pattern also matches fragments of the email; none may survive.
	if len(rec.UPIIDs) != 0 {
		t.Errorf("upi ids = %v, want none (all candidates are email fragments)", rec.UPIIDs)
	}
}

func TestExtractUPIUnknownProvider(t *testing.T) {
	e := newTestExtractor()
	rec := NewRecord()
	e.Extract("send to victim@newpayapp today", rec)

	if len(rec.UPIIDs) != 1 || rec.UPIIDs[0] != "victim@newpayapp" {
		t.Errorf("upi ids = %v, want [victim@newpayapp]", rec.UPIIDs)
	}
}

func TestExtractPhoneVariants(t *testing.T) {
	e := newTestExtractor()
	rec := NewRecord()
	e.Extract("call 9876543210 or +91 9876543210", rec)

	want := []string{"9876543210", "+91-9876543210", "+919876543210", "09876543210", "+91 98765 43210", "+91-98765-43210"}
	for _, v := range want {
		if !contains(rec.PhoneNumbers, v) {
			t.Errorf("phone variants missing %q, have %v", v, rec.PhoneNumbers)
		}
	}
	seen := map[string]int{}
	for _, v := range rec.PhoneNumbers {
		seen[v]++
		if seen[v] > 1 {
			t.Errorf("duplicate phone entry %q", v)
		}
	}
}

func TestExtractBankAccountNotPhone(t *testing.T) {
	e := newTestExtractor()
	rec := NewRecord()
	e.Extract("my number 9876543210, account 123456789012345", rec)

	if contains(rec.BankAccounts, "9876543210") {
		t.Errorf("phone digits leaked into bank accounts: %v", rec.BankAccounts)
	}
	if !contains(rec.BankAccounts, "123456789012345") {
		t.Errorf("bank accounts = %v, want 123456789012345", rec.BankAccounts)
	}
}

func TestExtractSpacedBankAccount(t *testing.T) {
	e := newTestExtractor()
	rec := NewRecord()
	e.Extract("transfer to 1234 5678 9012 34 via SBIN0001234", rec)

	if !contains(rec.BankAccounts, "12345678901234") {
		t.Errorf("bank accounts = %v, want cleaned 12345678901234", rec.BankAccounts)
	}
	if !contains(rec.BankAccounts, "1234 5678 9012 34") {
		t.Errorf("bank accounts = %v, want original spaced literal", rec.BankAccounts)
	}
	if !contains(rec.IFSCCodes, "SBIN0001234") {
		t.Errorf("ifsc codes = %v, want SBIN0001234", rec.IFSCCodes)
	}
}

func TestExtractURLTrailingPunctuation(t *testing.T) {
	e := newTestExtractor()
	rec := NewRecord()
	e.Extract("click https://refund-claim.in/form. now", rec)

	if len(rec.PhishingLinks) != 1 || rec.PhishingLinks[0] != "https://refund-claim.in/form" {
		t.Errorf("links = %v, want trailing dot stripped", rec.PhishingLinks)
	}
}

func TestExtractEmailCaseInsensitiveDedup(t *testing.T) {
	e := newTestExtractor()
	rec := NewRecord()
	e.Extract("mail Fraud@Bank-Alerts.com or fraud@bank-alerts.com", rec)

	if len(rec.EmailAddresses) != 1 {
		t.Fatalf("emails = %v, want single entry", rec.EmailAddresses)
	}
	if rec.EmailAddresses[0] != "Fraud@Bank-Alerts.com" {
		t.Errorf("first-seen casing not preserved: %q", rec.EmailAddresses[0])
	}
}

func TestExtractHistoryMatchesSequential(t *testing.T) {
	e := newTestExtractor()
	turns := []Turn{
		{Sender: "scammer", Text: "your account is blocked, pay fine at pay@ybl"},
		{Sender: "user", Text: "kaun bol raha hai?"},
		{Sender: "scammer", Text: "call officer at 9123456780 immediately"},
	}

	bulk := NewRecord()
	e.ExtractHistory(turns, bulk)

	sequential := NewRecord()
	for _, turn := range turns {
		e.Extract(turn.Text, sequential)
	}

	if !reflect.DeepEqual(bulk, sequential) {
		t.Errorf("bulk extraction diverges from sequential:\nbulk: %+v\nseq:  %+v", bulk, sequential)
	}
}

func TestMissingFields(t *testing.T) {
	rec := NewRecord()
	missing := rec.MissingFields()
	if len(missing) != 5 {
		t.Fatalf("fresh record missing fields = %v, want 5", missing)
	}

	rec.UPIIDs = append(rec.UPIIDs, "scam@paytm")
	rec.PhoneNumbers = append(rec.PhoneNumbers, "9876543210")
	missing = rec.MissingFields()
	for _, m := range missing {
		if m == "UPI ID" || m == "phone number" {
			t.Errorf("field %q reported missing after capture", m)
		}
	}
}

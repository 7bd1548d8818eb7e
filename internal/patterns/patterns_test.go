package patterns

import "testing"

func TestPhonePattern(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"bare 10-digit", "call 9876543210 now", true},
		{"country code hyphen", "reach +91-9876543210", true},
		{"country code spaced groups", "number is +91 98765 43210", true},
		{"zero prefixed", "try 09876543210", true},
		{"toll free", "helpline 1800-425-3800", true},
		{"too short", "code 98765", false},
		{"landline prefix", "5876543210", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Phone.MatchString(tt.text); got != tt.want {
				t.Errorf("Phone.MatchString(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestURLPattern(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"https", "visit https://sbi-verify.xyz/login", true},
		{"bare www", "open www.kyc-update.com fast", true},
		{"shortener", "bit.ly/3xYz", true},
		{"bare domain with path", "refund-portal.co.in/claim", true},
		{"bare ipv4", "open 103.21.244.1/form", true},
		{"plain text", "no links here at all", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := URL.MatchString(tt.text); got != tt.want {
				t.Errorf("URL.MatchString(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestIFSCPattern(t *testing.T) {
	if !IFSC.MatchString("transfer via SBIN0001234 today") {
		t.Error("expected IFSC match for SBIN0001234")
	}
	if IFSC.MatchString("code SBIN1001234 is wrong") {
		t.Error("fifth character must be a literal zero")
	}
}

func TestEmailVsUPI(t *testing.T) {
	// Both patterns match an email-shaped token; only Email requires a TLD.
	if !Email.MatchString("contact scam@fraud-dept.co.in") {
		t.Error("expected email match")
	}
	if Email.MatchString("pay to scam@paytm please") {
		t.Error("bare UPI handle must not match the email pattern")
	}
	if !UPI.MatchString("pay to scam@paytm please") {
		t.Error("expected UPI match for scam@paytm")
	}
}

func TestRedFlagCategoriesOrdered(t *testing.T) {
	if len(RedFlagCategories) != 18 {
		t.Fatalf("expected 18 red-flag categories, got %d", len(RedFlagCategories))
	}
	seen := map[string]bool{}
	for _, cat := range RedFlagCategories {
		if cat.ID == "" || cat.Label == "" || len(cat.Triggers) == 0 {
			t.Errorf("category %q incomplete", cat.ID)
		}
		if seen[cat.ID] {
			t.Errorf("duplicate category id %q", cat.ID)
		}
		seen[cat.ID] = true
	}
}

func TestKnownUPIHandles(t *testing.T) {
	for _, h := range []string{"paytm", "ybl", "okicici", "upi"} {
		if !KnownUPIHandles[h] {
			t.Errorf("expected %q in known UPI handle set", h)
		}
	}
	if KnownUPIHandles["gmail.com"] {
		t.Error("email domain must not be a known UPI handle")
	}
}

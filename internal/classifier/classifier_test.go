package classifier

import (
	"log/slog"
	"testing"
)

func newTestClassifier() *Classifier {
	return New(slog.Default())
}

func TestClassifyRewardAmountInstantTrigger(t *testing.T) {
	c := newTestClassifier()
	c.LengthFallback = false

	isScam, _ := c.Classify("Congratulations! You won ₹25 lakh lottery, claim now!")
	if !isScam {
		t.Error("reward+amount rule must fire independent of other signals")
	}
}

func TestClassifyUrgencyFinancial(t *testing.T) {
	c := newTestClassifier()
	c.LengthFallback = false

	isScam, _ := c.Classify("urgent: transfer now")
	if !isScam {
		t.Error("urgency+financial-action rule must fire")
	}
}

func TestClassifySignalCount(t *testing.T) {
	c := newTestClassifier()
	c.LengthFallback = false

	// UPI pattern + phone pattern = two signals.
	isScam, _ := c.Classify("send here someone@ybl else 9876543210")
	if !isScam {
		t.Error("two pattern signals must confirm the verdict")
	}
}

func TestClassifyBenignShortMessage(t *testing.T) {
	c := newTestClassifier()
	c.LengthFallback = false

	isScam, _ := c.Classify("hello ji")
	if isScam {
		t.Error("short greeting must not classify as scam")
	}
}

func TestClassifyLengthFallback(t *testing.T) {
	c := newTestClassifier()

	long := "ram ram ji, aaj mausam bahut accha hai na, kya haal chaal"
	isScam, _ := c.Classify(long)
	if !isScam {
		t.Error("length fallback enabled: long message should engage")
	}

	c.LengthFallback = false
	isScam, _ = c.Classify(long)
	if isScam {
		t.Error("length fallback disabled: same message must not classify")
	}
}

func TestRedFlagsAlwaysComputed(t *testing.T) {
	c := newTestClassifier()

	_, labels := c.Classify("your account will be blocked, share OTP immediately")
	want := map[string]bool{
		"Urgency / pressure tactics":                   false,
		"Request for sensitive personal information":   false,
		"Threatening / fear-based language":            false,
	}
	for _, l := range labels {
		if _, ok := want[l]; ok {
			want[l] = true
		}
	}
	for label, found := range want {
		if !found {
			t.Errorf("expected red flag %q in %v", label, labels)
		}
	}
}

func TestRedFlagsDetailedTriggers(t *testing.T) {
	c := newTestClassifier()

	flags := c.RedFlags("pay the processing fee before midnight")
	var upfront *RedFlag
	for i := range flags {
		if flags[i].Category == "UPFRONT_PAYMENT" {
			upfront = &flags[i]
		}
	}
	if upfront == nil {
		t.Fatalf("UPFRONT_PAYMENT not detected in %v", flags)
	}
	found := false
	for _, trig := range upfront.Matched {
		if trig == "processing fee" {
			found = true
		}
	}
	if !found {
		t.Errorf("matched triggers %v missing 'processing fee'", upfront.Matched)
	}
}

func TestRedFlagsStableOrder(t *testing.T) {
	c := newTestClassifier()
	msg := "urgent bank transfer, share OTP, you won a lottery prize"

	first := c.RedFlags(msg)
	second := c.RedFlags(msg)
	if len(first) != len(second) {
		t.Fatalf("red flag count varies: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Category != second[i].Category {
			t.Errorf("red flag order unstable at %d: %s vs %s", i, first[i].Category, second[i].Category)
		}
	}
}

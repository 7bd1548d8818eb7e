package session

import "testing"

func TestPhaseIsPureFunctionOfCount(t *testing.T) {
	m := NewMachine(DefaultPolicy())
	s := New("s-1")

	for i := 0; i < 25; i++ {
		m.IncrementAndTransition(s)
		if s.MessageCount != i+1 {
			t.Fatalf("messageCount = %d after %d increments", s.MessageCount, i+1)
		}
		if got := m.PhaseFor(s.MessageCount); got != s.Phase {
			t.Errorf("count %d: stored phase %s, recomputed %s", s.MessageCount, s.Phase, got)
		}
	}
}

func TestPhaseThresholds(t *testing.T) {
	m := NewMachine(DefaultPolicy())
	tests := []struct {
		count int
		want  Phase
	}{
		{1, PhaseTrustBuilding},
		{2, PhaseTrustBuilding},
		{3, PhaseProbing},
		{5, PhaseProbing},
		{6, PhaseExtraction},
		{8, PhaseExtraction},
		{9, PhaseWindingDown},
		{20, PhaseWindingDown},
	}
	for _, tt := range tests {
		if got := m.PhaseFor(tt.count); got != tt.want {
			t.Errorf("PhaseFor(%d) = %s, want %s", tt.count, got, tt.want)
		}
	}
}

func TestShouldContinueHardCap(t *testing.T) {
	m := NewMachine(DefaultPolicy())
	s := New("s-cap")
	s.MessageCount = m.Policy().MaxMessages

	if m.ShouldContinue(s) {
		t.Error("hard cap reached: must not continue regardless of intelligence")
	}
}

func TestShouldContinueIntelThreshold(t *testing.T) {
	m := NewMachine(DefaultPolicy())
	s := New("s-intel")
	s.MessageCount = m.Policy().MinMessages
	s.Intelligence.UPIIDs = []string{"a@paytm"}
	s.Intelligence.PhoneNumbers = []string{"9876543210"}
	s.Intelligence.PhishingLinks = []string{"http://x.in/a"}

	if m.ShouldContinue(s) {
		t.Error("minimum engagement and intel threshold met: must stop")
	}

	// Same intel but below minimum engagement keeps going.
	s.MessageCount = m.Policy().MinMessages - 1
	if !m.ShouldContinue(s) {
		t.Error("below minimum engagement: must continue")
	}
}

func TestShouldContinueTerminatedAndNotified(t *testing.T) {
	m := NewMachine(DefaultPolicy())

	s := New("s-term")
	s.MessageCount = 3
	s.Phase = PhaseTerminated
	if m.ShouldContinue(s) {
		t.Error("terminated session must not continue")
	}

	s2 := New("s-notified")
	s2.MessageCount = 3
	s2.NotificationSent = true
	if m.ShouldContinue(s2) {
		t.Error("notified session must not continue")
	}
}

func TestShouldNotify(t *testing.T) {
	m := NewMachine(DefaultPolicy())

	s := New("s-notify")
	s.Confirm()
	s.MessageCount = m.Policy().MinMessages
	s.Intelligence.UPIIDs = []string{"a@paytm"}
	s.Intelligence.PhoneNumbers = []string{"9876543210"}
	s.Intelligence.BankAccounts = []string{"123456789012"}

	if !m.ShouldNotify(s) {
		t.Error("confirmed, engaged, intel threshold met: must notify")
	}

	s.NotificationSent = true
	if m.ShouldNotify(s) {
		t.Error("already notified: must never notify again")
	}

	unconfirmed := New("s-unconfirmed")
	unconfirmed.MessageCount = m.Policy().MaxMessages
	if m.ShouldNotify(unconfirmed) {
		t.Error("scam not confirmed: must not notify")
	}
}

func TestPhaseInstructionNonEmpty(t *testing.T) {
	m := NewMachine(DefaultPolicy())
	for _, p := range []Phase{PhaseTrustBuilding, PhaseProbing, PhaseExtraction, PhaseWindingDown, PhaseTerminated} {
		if m.PhaseInstruction(p) == "" {
			t.Errorf("empty instruction for phase %s", p)
		}
	}
}

func TestAddRedFlagsUnion(t *testing.T) {
	s := New("s-flags")
	s.AddRedFlags([]string{"Urgency / pressure tactics", "Too-good-to-be-true offer"})
	s.AddRedFlags([]string{"Urgency / pressure tactics", "Request for secrecy"})

	if len(s.RedFlags) != 3 {
		t.Errorf("red flags = %v, want union of 3", s.RedFlags)
	}
	if s.RedFlags[0] != "Urgency / pressure tactics" {
		t.Errorf("first-seen order not preserved: %v", s.RedFlags)
	}
}

func TestRecentHistoryBounded(t *testing.T) {
	s := New("s-hist")
	for i := 0; i < 10; i++ {
		s.AppendTurn("in", "out")
	}
	if got := len(s.RecentHistory(6)); got != 6 {
		t.Errorf("recent history length = %d, want 6", got)
	}
	if got := len(s.RecentHistory(20)); got != 10 {
		t.Errorf("recent history length = %d, want all 10", got)
	}
}

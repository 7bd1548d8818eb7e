package session

// Policy holds the tunable engagement thresholds. The zero value is not
// usable; start from DefaultPolicy.
type Policy struct {
	// Phase cutoffs: messageCount <= TrustBuildingMax is trust building,
	// <= ProbingMax probing, <= ExtractionMax extraction, else winding down.
	TrustBuildingMax int
	ProbingMax       int
	ExtractionMax    int

	// MaxMessages is the hard engagement cap.
	MaxMessages int
	// MinMessages is the minimum engagement before early termination or
	// notification is considered.
	MinMessages int
	// IntelThreshold is the extracted-item count that, combined with
	// MinMessages, ends engagement and triggers notification.
	IntelThreshold int

	// HistoryWindow bounds the turns handed to the response generator.
	HistoryWindow int
}

// DefaultPolicy matches the documented cutoffs: phases at 2/5/8, hard cap 20,
// minimum engagement 8, three intelligence items.
func DefaultPolicy() Policy {
	return Policy{
		TrustBuildingMax: 2,
		ProbingMax:       5,
		ExtractionMax:    8,
		MaxMessages:      20,
		MinMessages:      8,
		IntelThreshold:   3,
		HistoryWindow:    6,
	}
}

// Machine is the deterministic phase state machine. Phase is a pure function
// of messageCount; the terminated phase is only ever entered through the
// continuation check, never through the count thresholds.
type Machine struct {
	policy Policy
}

func NewMachine(policy Policy) *Machine {
	return &Machine{policy: policy}
}

func (m *Machine) Policy() Policy {
	return m.policy
}

// PhaseFor recomputes the phase from a message count alone.
func (m *Machine) PhaseFor(count int) Phase {
	switch {
	case count <= m.policy.TrustBuildingMax:
		return PhaseTrustBuilding
	case count <= m.policy.ProbingMax:
		return PhaseProbing
	case count <= m.policy.ExtractionMax:
		return PhaseExtraction
	default:
		return PhaseWindingDown
	}
}

// IncrementAndTransition applies exactly one inbound message: the count goes
// up by one and the phase is recomputed. Call once per accepted message.
func (m *Machine) IncrementAndTransition(s *Session) {
	s.MessageCount++
	s.Phase = m.PhaseFor(s.MessageCount)
}

// PhaseInstruction is the directive injected into the generator's system
// prompt. The state machine controls strategy; the generator only phrases it.
func (m *Machine) PhaseInstruction(p Phase) string {
	switch p {
	case PhaseTrustBuilding:
		return "You just received this call/message. Be CONFUSED and WORRIED. " +
			"Ask: WHO are you? What is your NAME? Which BRANCH/OFFICE? " +
			"Give me your PHONE NUMBER so I can call back. " +
			"Show concern about your account but demand they prove identity first."
	case PhaseProbing:
		return "You are starting to believe but still confused. " +
			"Ask them to REPEAT their phone number slowly. " +
			"Ask: which WEBSITE can I check? Send me an EMAIL with details. " +
			"What is the LINK to verify? What is your UPI ID? " +
			"Stall by looking for glasses/pen but KEEP ASKING for contact details."
	case PhaseExtraction:
		return "You are ready to comply but need their details first. " +
			"'I want to send/verify but what is your UPI ID?' " +
			"'Tell me the ACCOUNT NUMBER to transfer to.' " +
			"'Give me the LINK again, phone pe chhota likha hai.' " +
			"'What is your EMAIL, I will send the documents.' " +
			"'Your PHONE NUMBER again please, I will call to confirm.' " +
			"Almost comply with everything but keep asking for ONE MORE detail."
	case PhaseWindingDown:
		return "You are getting doubtful. Ask for employee ID and branch PHONE NUMBER. " +
			"Your neighbour/son warned about fraud — ask them to send proof via EMAIL or LINK. " +
			"'Which WEBSITE is this? Give me the URL.' " +
			"Ask for UPI ID one more time to 'verify on Google Pay'. " +
			"Keep them talking but show skepticism."
	default:
		return "Respond naturally."
	}
}

// ShouldContinue decides whether the engagement carries on. False once the
// hard cap is hit, the session is terminated or reported, or enough has been
// gathered after the minimum engagement.
func (m *Machine) ShouldContinue(s *Session) bool {
	if s.MessageCount >= m.policy.MaxMessages {
		return false
	}
	if s.Phase == PhaseTerminated {
		return false
	}
	if s.NotificationSent {
		return false
	}
	if s.MessageCount >= m.policy.MinMessages && s.Intelligence.Total() >= m.policy.IntelThreshold {
		return false
	}
	return true
}

// ShouldNotify decides whether the intelligence bundle is ready to report:
// scam confirmed, minimum engagement reached, and either the hard cap hit or
// the intelligence threshold met. Never after a notification has gone out.
func (m *Machine) ShouldNotify(s *Session) bool {
	if s.NotificationSent {
		return false
	}
	if !s.ScamConfirmed {
		return false
	}
	if s.MessageCount < m.policy.MinMessages {
		return false
	}
	return s.MessageCount >= m.policy.MaxMessages || s.Intelligence.Total() >= m.policy.IntelThreshold
}

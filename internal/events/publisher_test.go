package events

import "testing"

func TestNilPublisherIsSafe(t *testing.T) {
	var p *Publisher
	// The publisher is optional everywhere it is used; both calls must be
	// no-ops on a nil receiver.
	p.Publish(SubjectSessionConfirmed, map[string]any{"sessionId": "s1"})
	p.Close()
}

func TestSubjectNames(t *testing.T) {
	// Downstream consumers subscribe by these literals; they are part of
	// the wire contract.
	cases := map[string]string{
		SubjectSessionConfirmed: "honeypot.session.confirmed",
		SubjectIntelExtracted:   "honeypot.intel.extracted",
		SubjectReportSent:       "honeypot.report.sent",
		SubjectReportFailed:     "honeypot.report.failed",
	}
	for got, want := range cases {
		if got != want {
			t.Errorf("subject = %q, want %q", got, want)
		}
	}
}

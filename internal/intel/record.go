package intel

// Record accumulates the identifiers extracted from one conversation. Each
// collection is insertion-ordered and free of duplicates in the same literal
// format. Phone numbers intentionally carry multiple format variants of the
// same underlying number — downstream consumers match by substring against an
// unknown literal rendering, so every plausible form must be present.
type Record struct {
	PhoneNumbers       []string `json:"phoneNumbers"`
	UPIIDs             []string `json:"upiIds"`
	BankAccounts       []string `json:"bankAccounts"`
	IFSCCodes          []string `json:"ifscCodes"`
	PhishingLinks      []string `json:"phishingLinks"`
	EmailAddresses     []string `json:"emailAddresses"`
	SuspiciousKeywords []string `json:"suspiciousKeywords"`
}

// NewRecord returns a Record with every collection allocated, so that the
// JSON rendering always shows arrays rather than nulls.
func NewRecord() *Record {
	return &Record{
		PhoneNumbers:       []string{},
		UPIIDs:             []string{},
		BankAccounts:       []string{},
		IFSCCodes:          []string{},
		PhishingLinks:      []string{},
		EmailAddresses:     []string{},
		SuspiciousKeywords: []string{},
	}
}

// Clone returns a deep copy, used to snapshot a session's intelligence for
// asynchronous report delivery.
func (r *Record) Clone() *Record {
	return &Record{
		PhoneNumbers:       append([]string{}, r.PhoneNumbers...),
		UPIIDs:             append([]string{}, r.UPIIDs...),
		BankAccounts:       append([]string{}, r.BankAccounts...),
		IFSCCodes:          append([]string{}, r.IFSCCodes...),
		PhishingLinks:      append([]string{}, r.PhishingLinks...),
		EmailAddresses:     append([]string{}, r.EmailAddresses...),
		SuspiciousKeywords: append([]string{}, r.SuspiciousKeywords...),
	}
}

// Total is the number of stored entries across all collections. Phone format
// variants each count once, matching how the notification threshold has
// always been measured.
func (r *Record) Total() int {
	return len(r.PhoneNumbers) + len(r.UPIIDs) + len(r.BankAccounts) +
		len(r.IFSCCodes) + len(r.PhishingLinks) + len(r.EmailAddresses) +
		len(r.SuspiciousKeywords)
}

// MissingFields lists the identifier classes not yet captured, in the order
// the engagement strategy asks for them. Suspicious keywords are incidental
// and never reported as missing.
func (r *Record) MissingFields() []string {
	var missing []string
	if len(r.PhoneNumbers) == 0 {
		missing = append(missing, "phone number")
	}
	if len(r.UPIIDs) == 0 {
		missing = append(missing, "UPI ID")
	}
	if len(r.EmailAddresses) == 0 {
		missing = append(missing, "email address")
	}
	if len(r.PhishingLinks) == 0 {
		missing = append(missing, "website link")
	}
	if len(r.BankAccounts) == 0 {
		missing = append(missing, "bank account number")
	}
	return missing
}

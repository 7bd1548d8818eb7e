// Package patterns holds the compiled matchers and static keyword tables
// shared by the classifier and the intelligence extractor. Everything here is
// read-only after init; no locking required.
package patterns

import "regexp"

var (
	// UPI matches name@provider handles, including dotted providers like
	// user@ok.bank. Email-shaped tokens also match; the extractor resolves
	// the ambiguity by running the email pass first.
	UPI = regexp.MustCompile(`[a-zA-Z0-9._-]+@[a-zA-Z][a-zA-Z0-9.]*[a-zA-Z]`)

	// Phone matches Indian mobile numbers in the formats scammers actually
	// type: +91 prefixed with arbitrary separators, bare 10-digit (prefixes
	// 6-9), 0-prefixed, split groups, and 1800 toll-free.
	Phone = regexp.MustCompile(
		`\+91[\s.\-()]*\d[\d\s.\-()]{7,14}\d` +
			`|\b0?[6-9]\d{9}\b` +
			`|\b0?[6-9]\d[\s.\-]\d{4}[\s.\-]\d{4}\b` +
			`|\b1800[\s.\-]?\d{3}[\s.\-]?\d{4,5}\b` +
			`|\b1800\d{7,10}\b`)

	// URL matches scheme-based URLs, bare www domains, common shorteners,
	// TLD-suffixed bare domains with a path, and bare IPv4 addresses.
	URL = regexp.MustCompile(`(?i)` +
		`https?://[^\s]+` +
		`|www\.[^\s]+` +
		`|bit\.ly/[^\s]+` +
		`|tinyurl\.com/[^\s]+` +
		`|t\.co/[^\s]+` +
		`|[a-zA-Z0-9-]+\.(?:in|com|org|net|co\.in|info|xyz|online|site|live|app|io)/[^\s]*` +
		`|\b\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}(?::\d+)?(?:/[^\s]*)?\b`)

	// BankAccount matches bare 9-18 digit runs. Phone-number collisions are
	// filtered by the extractor, not here.
	BankAccount = regexp.MustCompile(`\b\d{9,18}\b`)

	// BankAccountSpaced matches grouped account numbers like "1234 5678 9012 34".
	BankAccountSpaced = regexp.MustCompile(`\b\d{4}[\s.\-]\d{4}[\s.\-]\d{4}(?:[\s.\-]\d{2,6})?\b`)

	// Email requires a dot-separated TLD after the @, which is what separates
	// it from a UPI handle.
	Email = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	// IFSC matches Indian bank branch codes: 4 letters, a literal zero, 6 alphanumerics.
	IFSC = regexp.MustCompile(`\b[A-Z]{4}0[A-Z0-9]{6}\b`)

	// Amount matches monetary mentions used by the instant prize-scam rule.
	Amount = regexp.MustCompile(`(?i)₹|lakh|crore|rupees|rs\.?\s*\d+`)

	// MultiLabelDomain reports whether a UPI candidate's domain part already
	// looks like a fully-qualified email domain (name.tld).
	MultiLabelDomain = regexp.MustCompile(`^[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// ScamKeywords is the flat vocabulary of scam-indicative terms, covering the
// banking, prize, threat, tech-support, utility, job, tax, insurance and
// courier scenarios. Matching is substring on the lower-cased message.
var ScamKeywords = []string{
	// banking / finance
	"urgent", "blocked", "suspended", "verify", "otp", "kyc", "pan",
	"aadhaar", "account", "bank", "upi", "transfer", "payment",
	"immediately", "click", "link", "update", "expire", "freeze",
	"locked", "compromised", "share", "identity", "security",
	"prevent", "suspension", "digit", "minutes", "hours",
	// lottery / prize
	"lottery", "prize", "winner", "won", "congratulations", "claim",
	"lakh", "crore", "rupees", "jackpot", "lucky", "draw",
	// threats
	"police", "arrest", "court", "legal", "case", "crime", "fraud",
	// offers
	"refund", "cashback", "reward", "bonus", "offer", "limited",
	// broader indicators
	"unauthorized", "transaction", "debit", "credit",
	"pin", "cvv", "password", "credential", "login",
	"selected", "chosen", "allocation", "approved",
	"fee", "charge", "tax", "processing", "registration",
	"hurry", "fast", "quick", "deadline", "today",
	"complaint", "penalty", "fine", "warning", "notice",
	"whatsapp", "telegram", "call", "contact", "helpline",
	"investment", "returns", "profit", "guaranteed", "scheme",
	"crypto", "bitcoin", "forex", "trading", "stock",
	"insurance", "loan", "emi", "interest", "installment",
	"deliver", "package", "courier", "customs", "shipping",
	// electricity bill scam
	"electricity", "bill", "disconnect", "disconnection", "meter",
	"overdue", "outstanding", "bijli", "power cut", "supply",
	"reconnection", "ebill", "bses", "tata power", "discom",
	// job scam
	"job", "hiring", "salary", "resume", "interview",
	"vacancy", "placement", "work from home", "freelance",
	"recruitment", "hr", "joining", "offer letter", "stipend",
	// income tax scam
	"income tax", "itr", "tax refund", "tax notice", "assessment",
	"e-filing", "tax department", "it department", "tds",
	"challan", "demand notice", "outstanding tax", "rectification",
	// insurance scam
	"policy", "premium", "maturity", "nomination", "lic",
	"health insurance", "life insurance", "endowment", "surrender",
	"claim settlement", "insurance renewal", "policy lapse",
	// refund scam
	"reimbursement", "excess payment", "overpaid",
	"reversal", "credit back", "return amount", "refund process",
	// tech support scam
	"virus", "malware", "hacked", "remote access", "anydesk",
	"teamviewer", "tech support", "computer", "laptop",
	"antivirus", "license", "subscription", "renewal",
	// customs / parcel scam
	"detained", "seized", "contraband", "narcotics", "illegal",
	"clearance", "duty", "import", "export", "consignment",
}

// Term lists backing the classifier's instant rules.
var (
	RewardTerms = []string{
		"lottery", "prize", "won", "winner", "congratulations", "lucky draw",
		"jackpot", "claim", "winning", "lakh", "crore", "selected", "chosen",
		"reward", "bumper", "gift",
	}
	UrgencyTerms = []string{
		"urgent", "immediately", "act now", "expire", "last chance",
		"right now", "hurry", "within minutes", "within hours", "today only",
		"deadline", "final warning",
	}
	FinancialActionTerms = []string{
		"transfer", "pay", "payment", "upi", "send money", "deposit",
		"processing fee", "registration fee", "account", "verify", "otp",
	}
)

// RedFlagCategory maps a category label to the trigger phrases that mark it.
type RedFlagCategory struct {
	ID       string
	Label    string
	Triggers []string
}

// RedFlagCategories is ordered so that reported flags come out in a stable
// sequence regardless of which message triggered them.
var RedFlagCategories = []RedFlagCategory{
	{
		ID:    "URGENCY_PRESSURE",
		Label: "Urgency / pressure tactics",
		Triggers: []string{
			"urgent", "immediately", "act now", "expire", "last chance",
			"right now", "act fast", "hurry", "quick", "limited time",
			"within minutes", "within hours", "today only", "don't delay",
			"minutes", "hours", "seconds",
		},
	},
	{
		ID:    "AUTHORITY_IMPERSONATION",
		Label: "Impersonation of authority / institution",
		Triggers: []string{
			"bank", "rbi", "sbi", "government", "police", "court",
			"reserve bank", "income tax", "sebi", "customs", "telecom",
			"officer", "manager", "department", "ministry", "aadhaar",
		},
	},
	{
		ID:    "FINANCIAL_REQUEST",
		Label: "Request for money / financial transaction",
		Triggers: []string{
			"send money", "transfer", "pay", "upi", "payment",
			"processing fee", "registration fee", "advance amount",
			"deposit", "invest", "amount", "rupees", "rs.",
		},
	},
	{
		ID:    "PERSONAL_INFO_REQUEST",
		Label: "Request for sensitive personal information",
		Triggers: []string{
			"otp", "password", "pin", "cvv", "card number",
			"aadhaar", "pan", "kyc", "verify identity", "share details",
			"bank details", "account number", "login", "credentials",
		},
	},
	{
		ID:    "TOO_GOOD_TO_BE_TRUE",
		Label: "Too-good-to-be-true offer",
		Triggers: []string{
			"lottery", "won", "prize", "congratulations", "winner",
			"guaranteed returns", "double", "triple", "jackpot",
			"lakh", "crore", "free", "lucky draw", "cashback", "reward",
		},
	},
	{
		ID:    "THREATENING_LANGUAGE",
		Label: "Threatening / fear-based language",
		Triggers: []string{
			"arrest", "court", "legal action", "case filed", "jail",
			"warrant", "crime", "fraud", "suspend", "block", "freeze",
			"locked", "compromised", "terminate", "penalty", "fine",
		},
	},
	{
		ID:    "SUSPICIOUS_LINKS",
		Label: "Contains suspicious links or redirects",
		Triggers: []string{
			"http://", "https://", "www.", "click here", "click link",
			".xyz", ".tk", ".ml", "bit.ly", "tinyurl",
		},
	},
	{
		ID:    "UPFRONT_PAYMENT",
		Label: "Upfront payment required before benefit",
		Triggers: []string{
			"processing fee", "registration fee", "tax amount",
			"claim charge", "advance", "fee before", "pay to receive",
			"pay first", "token amount",
		},
	},
	{
		ID:    "SECRECY_REQUEST",
		Label: "Request for secrecy",
		Triggers: []string{
			"don't tell", "keep secret", "confidential", "private",
			"between us", "do not share", "alone",
		},
	},
	{
		ID:    "IDENTITY_THEFT",
		Label: "Identity theft / credential harvesting",
		Triggers: []string{
			"otp", "pin", "cvv", "password", "login", "credential",
			"card number", "expiry", "security code", "mother's maiden",
			"date of birth", "social security", "ssn",
			"verify identity", "confirm identity", "authenticate",
		},
	},
	{
		ID:    "FAKE_DEADLINE",
		Label: "Artificial deadline / time pressure",
		Triggers: []string{
			"today only", "last chance", "final warning", "24 hours",
			"48 hours", "within minutes", "within hours", "expires today",
			"before midnight", "deadline", "closing", "last date",
			"time is running out", "hurry up", "don't delay",
		},
	},
	{
		ID:    "IMPERSONATION_TECH",
		Label: "Impersonation of tech company / service",
		Triggers: []string{
			"google", "amazon", "flipkart", "paytm", "phonepe",
			"microsoft", "apple", "whatsapp", "facebook", "instagram",
			"netflix", "gpay", "google pay", "razorpay",
			"customer care", "helpline", "support team", "technical support",
		},
	},
	{
		ID:    "DELIVERY_SCAM",
		Label: "Fake delivery / package scam",
		Triggers: []string{
			"package", "parcel", "delivery", "courier", "customs",
			"shipment", "tracking", "dispatch", "warehouse",
			"customs duty", "import tax", "delivery charge",
			"detained", "seized", "contraband", "narcotics",
			"clearance", "consignment",
		},
	},
	{
		ID:    "JOB_SCAM",
		Label: "Fake job / recruitment scam",
		Triggers: []string{
			"job", "hiring", "salary", "resume", "interview",
			"vacancy", "placement", "work from home", "freelance",
			"recruitment", "offer letter", "joining", "stipend",
			"data entry", "part time", "full time", "hr department",
		},
	},
	{
		ID:    "UTILITY_SCAM",
		Label: "Fake utility bill / disconnection threat",
		Triggers: []string{
			"electricity", "bill", "disconnect", "disconnection",
			"meter", "overdue", "outstanding", "bijli", "power cut",
			"supply", "reconnection", "ebill", "bses", "tata power",
			"gas bill", "water bill", "utility",
		},
	},
	{
		ID:    "INSURANCE_SCAM",
		Label: "Fake insurance / policy scam",
		Triggers: []string{
			"policy", "premium", "maturity", "nomination", "lic",
			"health insurance", "life insurance", "endowment",
			"surrender", "claim settlement", "policy lapse",
			"insurance renewal", "bonus amount", "annuity",
		},
	},
	{
		ID:    "TAX_SCAM",
		Label: "Fake income tax / government notice scam",
		Triggers: []string{
			"income tax", "itr", "tax refund", "tax notice",
			"assessment", "e-filing", "tax department", "it department",
			"tds", "challan", "demand notice", "outstanding tax",
			"rectification", "pan verification",
		},
	},
	{
		ID:    "TECH_SUPPORT_SCAM",
		Label: "Fake tech support / remote access scam",
		Triggers: []string{
			"virus", "malware", "hacked", "remote access", "anydesk",
			"teamviewer", "tech support", "computer", "laptop",
			"antivirus", "license", "subscription", "renewal",
			"software update", "system compromised",
		},
	},
}

// KnownUPIHandles is the curated set of payment-provider domain suffixes.
// A handle whose domain is in this set is accepted as UPI unconditionally.
var KnownUPIHandles = map[string]bool{
	// bank-issued
	"sbi": true, "okhdfcbank": true, "okicici": true,
	"axisb": true, "axl": true, "kotak": true,
	"yes": true, "yescred": true, "federal": true,
	"cnrb": true, "pnb": true, "bob": true,
	"uboi": true, "boi": true, "iob": true,
	"indianbank": true, "idbi": true, "indus": true,
	"rbl": true, "dbs": true, "hsbc": true,
	"citi": true, "sc": true, "bandhan": true,
	"jkb": true, "kvb": true, "tmb": true,
	"cub": true, "dlb": true, "equitas": true,
	"fino": true, "paytm": true, "airtel": true, "jio": true,
	// app-issued
	"ptaxis": true, "ptyes": true, "ptsbi": true,
	"ybl": true, "ibl": true,
	"apl": true, "yapl": true,
	"upi": true, "okaxis": true, "oksbi": true,
	"jupiteraxis": true, "freecharge": true, "mbk": true,
	"waaxis": true, "wasbi": true,
	"slice": true, "niyoicici": true, "ikwik": true,
}

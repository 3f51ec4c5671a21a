package enrich

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// mobileSeed derives the deterministic seed for synthetic phone generation
// from a LinkedIn profile URL.
func mobileSeed(linkedinURL string) string {
	sum := md5.Sum([]byte(linkedinURL))
	return hex.EncodeToString(sum[:])
}

// simulateMobile produces a deterministic placeholder phone number from a
// seed, consuming one credit from the session budget. With the budget
// exhausted it returns ("", false). The number is the first ten digit
// characters of the seed, right-padded with zeros; it is always reported
// unverified since nothing real backs it.
func (s *Session) simulateMobile(seed string) (string, bool) {
	if s.credits.Add(-1) < 0 {
		return "", false
	}

	var b strings.Builder
	for _, r := range seed {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	mobile := b.String()
	if len(mobile) > 10 {
		mobile = mobile[:10]
	}
	if len(mobile) < 10 {
		mobile += strings.Repeat("0", 10-len(mobile))
	}

	return mobile, false
}

// simulateEmail builds a plausible placeholder address from a first name and
// company domain. Returns "" when either part is missing. No collision or
// syntax checking.
func simulateEmail(firstName, domain string) string {
	if firstName == "" || domain == "" {
		return ""
	}
	local := strings.ToLower(strings.TrimSpace(firstName))
	return local + "@" + strings.ToLower(strings.TrimSpace(domain))
}

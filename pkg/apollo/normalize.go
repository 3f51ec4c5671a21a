package apollo

import "strings"

// NormalizeDomain canonicalizes a raw domain or URL into a comparable lowercase
// hostname. It strips the protocol, "www." and leading junk characters, and
// returns "" when nothing resembling a domain remains. Deliberately lenient:
// no TLD or punycode validation. Idempotent.
func NormalizeDomain(raw string) string {
	d := strings.ToLower(strings.TrimSpace(raw))

	d = strings.ReplaceAll(d, "https://", "")
	d = strings.ReplaceAll(d, "http://", "")
	d = strings.ReplaceAll(d, "www.", "")
	d = strings.TrimLeft(d, " +@")

	if !strings.Contains(d, ".") {
		return ""
	}

	return d
}

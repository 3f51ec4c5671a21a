package enrich

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sells-group/lead-enrich/pkg/apollo"
)

// extractJobTitle pulls the best-available current job title out of the
// varying person shapes Apollo returns: the primary title field, then the
// alternate current_title field, then the first employment history entry
// flagged as current.
func extractJobTitle(p apollo.Person) string {
	if p.Title != "" {
		return p.Title
	}
	if p.CurrentTitle != "" {
		return p.CurrentTitle
	}
	for _, job := range p.EmploymentHistory {
		if job.Current && job.Title != "" {
			return job.Title
		}
	}
	return ""
}

// inferCompanyFromDomain derives a display name from a normalized domain,
// e.g. "acme-corp.com" -> "Acme Corp". Last-resort only.
func inferCompanyFromDomain(domain string) string {
	if domain == "" {
		return ""
	}
	base, _, _ := strings.Cut(domain, ".")
	// A cases.Caser is stateful, so build one per call rather than sharing.
	return cases.Title(language.English).String(strings.ReplaceAll(base, "-", " "))
}

// firstToken and lastToken split a free-text name on whitespace. A
// single-token name is both its own first and last name, matching how the
// fallback treats unstructured input.
func firstToken(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func lastToken(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

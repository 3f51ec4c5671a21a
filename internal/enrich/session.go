// Package enrich implements the lead resolution pipeline: live person
// enrichment with a search-based fallback that synthesizes deterministic
// placeholder contact data under a finite credit budget.
package enrich

import (
	"context"
	"sync/atomic"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/lead-enrich/internal/model"
	"github.com/sells-group/lead-enrich/pkg/apollo"
)

// Session holds the per-run mutable state of the resolution pipeline. A
// session is owned by one batch; credits and availability are atomics so a
// runner may fan out across records. Availability only ever flips true to
// false.
type Session struct {
	client    apollo.Client
	credits   atomic.Int64
	available atomic.Bool
}

// NewSession creates a pipeline session with the given synthetic-mobile
// credit budget.
func NewSession(client apollo.Client, mobileCredits int) *Session {
	s := &Session{client: client}
	s.credits.Store(int64(mobileCredits))
	s.available.Store(true)
	return s
}

// CreditsRemaining reports how many synthetic mobile credits are left.
func (s *Session) CreditsRemaining() int64 {
	if n := s.credits.Load(); n > 0 {
		return n
	}
	return 0
}

// EnrichmentAvailable reports whether live person enrichment is still being
// attempted.
func (s *Session) EnrichmentAvailable() bool {
	return s.available.Load()
}

// Resolve turns one input record into a fully keyed Lead. It tries live
// person enrichment first; on an entitlement denial or transport failure it
// permanently switches the session to search fallback. Hard provider errors
// propagate untouched and abort the batch.
func (s *Session) Resolve(ctx context.Context, rec model.InputRecord) (model.Lead, error) {
	domain := apollo.NormalizeDomain(rec.CompanyDomain)

	if s.available.Load() {
		person, err := s.client.MatchPerson(ctx, rec.LinkedinURL)
		switch {
		case eris.Is(err, apollo.ErrEnrichmentUnavailable):
			s.available.Store(false)
			zap.L().Warn("live enrichment unavailable, using search fallback for the rest of the run",
				zap.String("linkedin_url", rec.LinkedinURL),
			)
		case err != nil:
			return model.Lead{}, eris.Wrap(err, "enrich: person match")
		case person != nil:
			return leadFromMatch(*person, rec.LinkedinURL), nil
		}
	}

	return s.resolveFallback(ctx, rec, domain)
}

// leadFromMatch builds a Lead straight from a live enrichment payload. The
// fallback path and the credit budget are never involved here.
func leadFromMatch(p apollo.Person, linkedinURL string) model.Lead {
	return model.Lead{
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		JobTitle:       extractJobTitle(p),
		CompanyName:    p.Organization.Name,
		CompanyWebsite: p.Organization.Website,
		Industry:       p.Organization.Industry,
		Email:          p.Email,
		EmailVerified:  p.EmailVerified,
		MobilePhone:    p.Phone,
		MobileVerified: p.PhoneVerified,
		LinkedinURL:    linkedinURL,
		Source:         model.SourceApolloEnrichment,
	}
}

// resolveFallback composes company enrichment, top-person search and
// synthetic generation into one lead. Each field resolves independently:
// person value, else inference from the input row, else empty.
func (s *Session) resolveFallback(ctx context.Context, rec model.InputRecord, domain string) (model.Lead, error) {
	company, err := s.client.EnrichCompany(ctx, domain)
	if err != nil {
		return model.Lead{}, eris.Wrap(err, "enrich: company lookup")
	}

	var people []apollo.Person
	if domain != "" {
		people, err = s.client.SearchTopPeople(ctx, domain)
		if err != nil {
			return model.Lead{}, eris.Wrap(err, "enrich: top people search")
		}
	}

	var candidate apollo.Person
	if len(people) > 0 {
		candidate = people[0]
	}

	firstName := candidate.FirstName
	if firstName == "" {
		firstName = firstToken(rec.Name)
	}
	lastName := candidate.LastName
	if lastName == "" {
		lastName = lastToken(rec.Name)
	}

	companyName := company.Name
	if companyName == "" {
		companyName = inferCompanyFromDomain(domain)
	}
	companyWebsite := company.Website
	if companyWebsite == "" && domain != "" {
		companyWebsite = "https://" + domain
	}

	mobile, mobileVerified := s.simulateMobile(mobileSeed(rec.LinkedinURL))

	return model.Lead{
		FirstName:      firstName,
		LastName:       lastName,
		JobTitle:       extractJobTitle(candidate),
		CompanyName:    companyName,
		CompanyWebsite: companyWebsite,
		Industry:       company.Industry,
		Email:          simulateEmail(firstName, domain),
		EmailVerified:  false,
		MobilePhone:    mobile,
		MobileVerified: mobileVerified,
		LinkedinURL:    rec.LinkedinURL,
		Source:         model.SourceSearchFallback,
	}, nil
}

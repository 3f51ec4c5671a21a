// Package model defines the lead enrichment domain types.
package model

import "strconv"

// Lead sources.
const (
	SourceApolloEnrichment = "apollo_enrichment"
	SourceSearchFallback   = "search_fallback"
)

// InputRecord is one row of the input table. LinkedinURL is the dedup key;
// the other fields are optional hints used by the fallback resolution.
type InputRecord struct {
	LinkedinURL   string `json:"linkedin_url"`
	Name          string `json:"name"`
	CompanyDomain string `json:"company_domain"`
}

// Lead is the canonical output record. Every export row carries exactly these
// twelve fields; an empty string stands for a missing value.
type Lead struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	JobTitle       string `json:"job_title"`
	CompanyName    string `json:"company_name"`
	CompanyWebsite string `json:"company_website"`
	Industry       string `json:"industry"`
	Email          string `json:"email"`
	EmailVerified  bool   `json:"email_verified"`
	MobilePhone    string `json:"mobile_phone"`
	MobileVerified bool   `json:"mobile_verified"`
	LinkedinURL    string `json:"linkedin_url"`
	Source         string `json:"source"`
}

// LeadColumns is the ordered export header.
var LeadColumns = []string{
	"first_name",
	"last_name",
	"job_title",
	"company_name",
	"company_website",
	"industry",
	"email",
	"email_verified",
	"mobile_phone",
	"mobile_verified",
	"linkedin_url",
	"source",
}

// Row renders the lead as one tabular row in LeadColumns order.
func (l Lead) Row() []string {
	return []string{
		l.FirstName,
		l.LastName,
		l.JobTitle,
		l.CompanyName,
		l.CompanyWebsite,
		l.Industry,
		l.Email,
		strconv.FormatBool(l.EmailVerified),
		l.MobilePhone,
		strconv.FormatBool(l.MobileVerified),
		l.LinkedinURL,
		l.Source,
	}
}

package apollo

// Person is the person payload returned by Apollo. The shape varies between
// endpoints, so every field is optional; an empty string means the field was
// absent from the response.
type Person struct {
	FirstName         string       `json:"first_name"`
	LastName          string       `json:"last_name"`
	Title             string       `json:"title"`
	CurrentTitle      string       `json:"current_title"`
	EmploymentHistory []Employment `json:"employment_history"`
	Email             string       `json:"email"`
	EmailVerified     bool         `json:"email_verified"`
	Phone             string       `json:"phone"`
	PhoneVerified     bool         `json:"phone_verified"`
	Organization      Company      `json:"organization"`
}

// Employment is a single entry in a person's employment history.
type Employment struct {
	Title   string `json:"title"`
	Current bool   `json:"current"`
}

// Company is the organization payload returned by Apollo.
type Company struct {
	Name     string `json:"name"`
	Website  string `json:"website"`
	Industry string `json:"industry"`
}

// IsZero reports whether no organization data was returned.
func (c Company) IsZero() bool {
	return c.Name == "" && c.Website == "" && c.Industry == ""
}

type matchRequest struct {
	LinkedinURL string `json:"linkedin_url"`
}

type matchResponse struct {
	Person *Person `json:"person"`
}

type searchResponse struct {
	People []Person `json:"people"`
}

type enrichRequest struct {
	Domain string `json:"domain"`
}

type enrichResponse struct {
	Organization Company `json:"organization"`
}

// internal/domain/models/operator.go
package models

// Operator is the membership-platform user who signed in to the dashboard.
type Operator struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// DisplayName returns Name, or "@username" when no name is set.
func (o Operator) DisplayName() string {
	if o.Name != "" {
		return o.Name
	}
	if o.Username != "" {
		return "@" + o.Username
	}
	return ""
}

// CompanyAccess is the result of an access check against a company resource.
type CompanyAccess struct {
	HasAccess   bool   `json:"has_access"`
	AccessLevel string `json:"access_level"`
}

// DefaultSiteName is the product name shown in page chrome.
const DefaultSiteName = "Whop Insights"

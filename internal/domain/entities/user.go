package entities

// AccountType distinguishes mess provider accounts from regular customers
type AccountType string

// AccountTypeMess marks a meal-subscription provider account. Every other
// value is rendered as a regular account.
const AccountTypeMess AccountType = "mess"

// UserProfile represents a user or mess provider as returned by the backend
type UserProfile struct {
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Type        AccountType `json:"type"`
	Description string      `json:"description,omitempty"`
	Address     string      `json:"address,omitempty"`
	ContactNo   string      `json:"contactNo,omitempty"`
	MessName    string      `json:"messName,omitempty"`
}

// IsMess reports whether the profile belongs to a mess provider
func (p *UserProfile) IsMess() bool {
	return p != nil && p.Type == AccountTypeMess
}

// MessSearchResult is one match of a mess search
type MessSearchResult struct {
	ID   string `json:"_id"`
	Name string `json:"name,omitempty"`
}

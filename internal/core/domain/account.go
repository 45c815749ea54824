package domain

import "time"

// Roles with a fixed meaning inside the authorization layer. The full role
// set is data-driven (see FallbackRoles and the role service); these two are
// referenced directly by route guards.
const (
	RoleAdmin = "admin"
	RoleVice  = "vice"
)

// FallbackRoles is the hardcoded role set applied when the roles table is
// unreachable or empty. The store remains the source of truth otherwise.
var FallbackRoles = []string{
	"admin", "vice", "physio", "ptadmin", "nurse",
	"frontdesk", "radiology", "staff", "member",
}

// Account models a staff identity record. Email is stored lower-cased and
// trimmed; PasswordHash is never serialized.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	Status       string    `json:"status,omitempty"`

	// Role-specific optional attributes. Accepted and stored regardless of
	// the account's role; which of them is meaningful is a UI concern.
	Hospital   string `json:"hospital,omitempty"`
	WorkStatus string `json:"workStatus,omitempty"`
	AdminType  string `json:"adminType,omitempty"`
	Ward       string `json:"ward,omitempty"`
	License    string `json:"license,omitempty"`
	Branch     string `json:"branch,omitempty"`
	Area       string `json:"area,omitempty"`
	Position   string `json:"position,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SearchText returns the haystack used for case-insensitive substring search
// over an account: email, name and every optional attribute that is set.
func (a Account) SearchText() string {
	fields := []string{
		a.Email, a.Name,
		a.Hospital, a.WorkStatus, a.AdminType,
		a.Ward, a.License, a.Branch, a.Area, a.Position,
	}
	out := ""
	for _, f := range fields {
		if f == "" {
			continue
		}
		if out != "" {
			out += " "
		}
		out += f
	}
	return out
}

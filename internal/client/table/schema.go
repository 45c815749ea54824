package table

import (
	"context"
	"strings"

	"github.com/gdcworld/clinic-backoffice/internal/core/domain"
	"github.com/gdcworld/clinic-backoffice/pkg/apiclient"
)

// Schema declares what a role-scoped account table shows and searches over.
// Columns drive rendering; ExtraFields extend the search haystack beyond
// email and name with the attributes that matter for the role.
type Schema struct {
	Columns     []string
	ExtraFields []string
}

// RoleSchemas maps each staff role to its table layout. One generic
// controller plus this map replaces a per-role table implementation.
var RoleSchemas = map[string]Schema{
	"physio": {
		Columns:     []string{"name", "email", "hospital", "workStatus", "status"},
		ExtraFields: []string{"hospital", "workStatus"},
	},
	"ptadmin": {
		Columns:     []string{"name", "email", "adminType", "status"},
		ExtraFields: []string{"adminType"},
	},
	"nurse": {
		Columns:     []string{"name", "email", "ward", "license", "status"},
		ExtraFields: []string{"ward", "license"},
	},
	"frontdesk": {
		Columns:     []string{"name", "email", "branch", "status"},
		ExtraFields: []string{"branch"},
	},
	"radiology": {
		Columns:     []string{"name", "email", "area", "license", "status"},
		ExtraFields: []string{"area", "license"},
	},
	"vice": {
		Columns:     []string{"name", "email", "position", "status"},
		ExtraFields: []string{"position"},
	},
}

func accountField(a domain.Account, field string) string {
	switch field {
	case "email":
		return a.Email
	case "name":
		return a.Name
	case "phone":
		return a.Phone
	case "status":
		return a.Status
	case "hospital":
		return a.Hospital
	case "workStatus":
		return a.WorkStatus
	case "adminType":
		return a.AdminType
	case "ward":
		return a.Ward
	case "license":
		return a.License
	case "branch":
		return a.Branch
	case "area":
		return a.Area
	case "position":
		return a.Position
	}
	return ""
}

// SearchText builds the haystack for one account under this schema:
// email and name always match, plus the schema's extra fields.
func (s Schema) SearchText(a domain.Account) string {
	parts := []string{a.Email, a.Name}
	for _, field := range s.ExtraFields {
		if v := accountField(a, field); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}

// NewAccountController wires an account table for one role: the loader
// fetches the role's accounts through the API client and the schema scopes
// the search.
func NewAccountController(api *apiclient.Client, role string, pageSize int) *Controller[domain.Account] {
	schema, ok := RoleSchemas[role]
	if !ok {
		schema = Schema{}
	}
	loader := func(ctx context.Context) ([]domain.Account, error) {
		return api.ListAccounts(ctx, role)
	}
	return NewController(loader, schema.SearchText, pageSize)
}

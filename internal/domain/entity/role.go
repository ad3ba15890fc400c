package entity

import (
	"slices"
	"strings"
)

// Role is the permission level carried in an access token.
type Role string

const (
	// RoleShopkeeper submits and tracks their own listings.
	RoleShopkeeper Role = "shopkeeper"
	// RoleAdmin moderates listings and reads contact messages.
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return r == RoleShopkeeper || r == RoleAdmin
}

// OrShopkeeper returns r, or RoleShopkeeper when r is unknown. Stored accounts
// predating the role column decode to the empty role.
func (r Role) OrShopkeeper() Role {
	if r.IsValid() {
		return r
	}

	return RoleShopkeeper
}

// Roles is the role set of one caller.
type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings is the JWT claim form of rs.
func (rs Roles) ToStrings() []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, string(r))
	}

	return out
}

// RolesFromStrings parses a claim list, dropping unknown and duplicate entries.
func RolesFromStrings(ss []string) Roles {
	out := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(strings.ToLower(strings.TrimSpace(s)))
		if role.IsValid() && !out.Contains(role) {
			out = append(out, role)
		}
	}

	return out
}

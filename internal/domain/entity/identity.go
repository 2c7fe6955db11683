package entity

import (
	"slices"
	"time"
)

// Claims are the authorization attributes carried by an identity token.
type Claims struct {
	Role        Role     `json:"role"`
	PartnerID   string   `json:"partner_id,omitempty"`
	LocationIDs []string `json:"location_ids,omitempty"`
}

// ToMap renders the claims in the custom-claims shape used by identity providers.
func (c Claims) ToMap() map[string]any {
	claims := map[string]any{
		"role": c.Role.String(),
	}
	if c.Role == RolePartner {
		claims["partnerId"] = c.PartnerID
		claims["locationIds"] = slices.Clone(c.LocationIDs)
	}

	return claims
}

// ClaimsFromMap reads custom claims written by ToMap. Unknown or malformed values are ignored.
func ClaimsFromMap(m map[string]any) Claims {
	var claims Claims
	if role, ok := m["role"].(string); ok {
		claims.Role = Role(role)
	}
	if partnerID, ok := m["partnerId"].(string); ok {
		claims.PartnerID = partnerID
	}
	switch ids := m["locationIds"].(type) {
	case []string:
		claims.LocationIDs = slices.Clone(ids)
	case []any:
		for _, id := range ids {
			if s, ok := id.(string); ok {
				claims.LocationIDs = append(claims.LocationIDs, s)
			}
		}
	}

	return claims
}

// Identity is the authenticated caller of a request.
type Identity struct {
	UID         string   `json:"uid"`
	Email       string   `json:"email"`
	Role        Role     `json:"role"`
	PartnerID   string   `json:"partner_id,omitempty"`
	LocationIDs []string `json:"location_ids,omitempty"`
}

// CanReview reports whether the caller may decide submissions and read across partners.
func (i *Identity) CanReview() bool {
	return i != nil && i.Role.CanReview()
}

// IsAdmin reports whether the caller has the admin role.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}

// CanAccessLocation reports whether the caller may read or upload for the given location.
func (i *Identity) CanAccessLocation(partnerID, locationID string) bool {
	if i == nil {
		return false
	}
	if i.Role.CanReview() {
		return true
	}

	return i.Role == RolePartner &&
		i.PartnerID != "" &&
		i.PartnerID == partnerID &&
		slices.Contains(i.LocationIDs, locationID)
}

// UserProfile is the stored authorization record for an identity.
type UserProfile struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	PartnerID   string    `json:"partner_id,omitempty"`
	LocationIDs []string  `json:"location_ids,omitempty"`
	Brands      []string  `json:"brands,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Claims returns the claims derived from the profile.
func (p *UserProfile) Claims() Claims {
	claims := Claims{Role: p.Role}
	if p.Role == RolePartner {
		claims.PartnerID = p.PartnerID
		claims.LocationIDs = slices.Clone(p.LocationIDs)
	}

	return claims
}

// Credential is a locally managed login used when no hosted identity provider is configured.
type Credential struct {
	UID          string
	Email        string
	PasswordHash string
	Claims       Claims
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Package entity contains the core business objects of the project.
package entity

// Role represents the authorization role attached to a user profile and its identity claims.
type Role string

const (
	// RolePartner is a restaurant operator that uploads photos for its own locations.
	RolePartner Role = "partner"
	// RoleReviewer approves or rejects submissions across all partners.
	RoleReviewer Role = "reviewer"
	// RoleAdmin provisions partners, locations and users, and may also review.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RolePartner, RoleReviewer, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanReview reports whether the role may decide submissions and read across partners.
func (r Role) CanReview() bool {
	return r == RoleReviewer || r == RoleAdmin
}

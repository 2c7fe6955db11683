package impl

import (
	"photoverify/internal/domain/entity"
	domainerrors "photoverify/internal/domain/errors"
)

func requireAuthenticated(identity *entity.Identity) error {
	if identity == nil || identity.UID == "" {
		return domainerrors.ErrUnauthenticated
	}

	return nil
}

func requireReviewer(identity *entity.Identity) error {
	if err := requireAuthenticated(identity); err != nil {
		return err
	}
	if !identity.CanReview() {
		return domainerrors.ErrPermissionDenied.WrapMessage("reviewer or admin role required")
	}

	return nil
}

func requireAdmin(identity *entity.Identity) error {
	if err := requireAuthenticated(identity); err != nil {
		return err
	}
	if !identity.IsAdmin() {
		return domainerrors.ErrPermissionDenied.WrapMessage("admin role required")
	}

	return nil
}

func requireLocationAccess(identity *entity.Identity, partnerID, locationID string) error {
	if err := requireAuthenticated(identity); err != nil {
		return err
	}
	if !identity.CanAccessLocation(partnerID, locationID) {
		return domainerrors.ErrPermissionDenied.WrapMessage("location is not assigned to the caller")
	}

	return nil
}

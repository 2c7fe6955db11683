package impl

import (
	"io"
	"log/slog"
	"time"

	"photoverify/internal/domain/entity"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock() time.Time {
	return fixedNow
}

func partnerIdentity(partnerID string, locationIDs ...string) *entity.Identity {
	return &entity.Identity{
		UID:         "partner-uid",
		Email:       "partner@justfood.test",
		Role:        entity.RolePartner,
		PartnerID:   partnerID,
		LocationIDs: locationIDs,
	}
}

func reviewerIdentity() *entity.Identity {
	return &entity.Identity{UID: "reviewer-uid", Email: "reviewer@justsmashed.test", Role: entity.RoleReviewer}
}

func adminIdentity() *entity.Identity {
	return &entity.Identity{UID: "admin-uid", Email: "admin@justsmashed.test", Role: entity.RoleAdmin}
}

func menuItem(brandID, itemID string, category entity.Category, active bool) *entity.MenuItem {
	return &entity.MenuItem{ID: itemID, BrandID: brandID, Name: itemID, Category: category, IsActive: active}
}

func requirement(brandID, itemID, requirementID string) *entity.Requirement {
	return &entity.Requirement{ID: requirementID, BrandID: brandID, ItemID: itemID, Title: requirementID}
}

func approvedSubmission(id, itemID, requirementID string) *entity.Submission {
	return &entity.Submission{
		ID:            id,
		PartnerID:     "P",
		LocationID:    "L",
		BrandID:       "B",
		ItemID:        itemID,
		RequirementID: requirementID,
		Status:        entity.SubmissionStatusApproved,
		CreatedAt:     fixedNow,
	}
}

// Package firestore implements the repositories on top of Cloud Firestore.
//
// Documents live under partners/{id}, partners/{id}/locations/{id}, brands/{id},
// brands/{id}/menuItems/{id}, brands/{id}/menuItems/{id}/requirements/{id}, submissions/{id}
// and users/{id}. Local credentials are kept in credentials/{uid}.
package firestore

import (
	"time"

	"photoverify/internal/domain/entity"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	collectionPartners     = "partners"
	collectionLocations    = "locations"
	collectionBrands       = "brands"
	collectionMenuItems    = "menuItems"
	collectionRequirements = "requirements"
	collectionSubmissions  = "submissions"
	collectionUsers        = "users"
	collectionCredentials  = "credentials"
)

type partnerDoc struct {
	Name      string    `firestore:"name"`
	ShortName string    `firestore:"shortName"`
	IsActive  bool      `firestore:"isActive"`
	Brands    []string  `firestore:"brands"`
	CreatedAt time.Time `firestore:"createdAt"`
}

type locationDoc struct {
	ID        string    `firestore:"id"`
	PartnerID string    `firestore:"partnerId"`
	Name      string    `firestore:"name"`
	Address   string    `firestore:"address"`
	City      string    `firestore:"city"`
	Country   string    `firestore:"country"`
	BrandIDs  []string  `firestore:"brandIds"`
	IsActive  bool      `firestore:"isActive"`
	Latitude  *float64  `firestore:"latitude"`
	Longitude *float64  `firestore:"longitude"`
	CreatedAt time.Time `firestore:"createdAt"`
}

type brandDoc struct {
	Name       string    `firestore:"name"`
	Categories []string  `firestore:"categories"`
	IsActive   bool      `firestore:"isActive"`
	CreatedAt  time.Time `firestore:"createdAt"`
}

type menuItemDoc struct {
	Name        string `firestore:"name"`
	Category    string `firestore:"category"`
	Description string `firestore:"description"`
	Image       string `firestore:"image"`
	Order       int    `firestore:"order"`
	IsActive    bool   `firestore:"isActive"`
}

type requirementDoc struct {
	Title           string   `firestore:"title"`
	AngleHint       string   `firestore:"angleHint"`
	ExampleImageURL string   `firestore:"exampleImageUrl"`
	Checklist       []string `firestore:"checklist"`
}

type submissionDoc struct {
	PartnerID      string     `firestore:"partnerId"`
	LocationID     string     `firestore:"locationId"`
	BrandID        string     `firestore:"brandId"`
	ItemID         string     `firestore:"itemId"`
	RequirementID  string     `firestore:"requirementId"`
	Status         string     `firestore:"status"`
	FileName       string     `firestore:"fileName"`
	PhotoURL       string     `firestore:"photoUrl"`
	StoragePath    string     `firestore:"storagePath"`
	UploaderUserID string     `firestore:"uploaderUserId"`
	ReviewComment  string     `firestore:"reviewComment"`
	ReviewerUserID string     `firestore:"reviewerUserId"`
	CreatedAt      time.Time  `firestore:"createdAt"`
	ReviewedAt     *time.Time `firestore:"reviewedAt"`
}

type userDoc struct {
	Email       string    `firestore:"email"`
	Role        string    `firestore:"role"`
	PartnerID   string    `firestore:"partnerId"`
	LocationIDs []string  `firestore:"locationIds"`
	Brands      []string  `firestore:"brands"`
	CreatedAt   time.Time `firestore:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt"`
}

type credentialDoc struct {
	Email        string    `firestore:"email"`
	PasswordHash string    `firestore:"passwordHash"`
	Role         string    `firestore:"role"`
	PartnerID    string    `firestore:"partnerId"`
	LocationIDs  []string  `firestore:"locationIds"`
	CreatedAt    time.Time `firestore:"createdAt"`
	UpdatedAt    time.Time `firestore:"updatedAt"`
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func isAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}

// nonNil keeps empty lists as arrays instead of null fields.
func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}

// setCreatedAt keeps the stored creation time when merging a record saved without one.
func setCreatedAt(fields map[string]any, createdAt time.Time) {
	if !createdAt.IsZero() {
		fields["createdAt"] = createdAt
	}
}

// --- Mapper Functions ---

func toPartnerDomain(id string, doc *partnerDoc) *entity.Partner {
	return &entity.Partner{
		ID:        id,
		Name:      doc.Name,
		ShortName: doc.ShortName,
		IsActive:  doc.IsActive,
		Brands:    doc.Brands,
		CreatedAt: doc.CreatedAt,
	}
}

func toLocationDomain(id string, doc *locationDoc) *entity.Location {
	location := &entity.Location{
		ID:        id,
		PartnerID: doc.PartnerID,
		Name:      doc.Name,
		Address:   doc.Address,
		City:      doc.City,
		Country:   doc.Country,
		BrandIDs:  doc.BrandIDs,
		IsActive:  doc.IsActive,
		CreatedAt: doc.CreatedAt,
	}
	if doc.Latitude != nil && doc.Longitude != nil {
		location.Coordinates = &entity.GeoPoint{Latitude: *doc.Latitude, Longitude: *doc.Longitude}
	}

	return location
}

func fromLocationDomain(location *entity.Location) map[string]any {
	fields := map[string]any{
		"id":        location.ID,
		"partnerId": location.PartnerID,
		"name":      location.Name,
		"address":   location.Address,
		"city":      location.City,
		"country":   location.Country,
		"brandIds":  nonNil(location.BrandIDs),
		"isActive":  location.IsActive,
	}
	setCreatedAt(fields, location.CreatedAt)
	if location.Coordinates != nil {
		fields["latitude"] = location.Coordinates.Latitude
		fields["longitude"] = location.Coordinates.Longitude
	}

	return fields
}

func toBrandDomain(id string, doc *brandDoc) *entity.Brand {
	categories := make([]entity.Category, 0, len(doc.Categories))
	for _, category := range doc.Categories {
		categories = append(categories, entity.Category(category))
	}

	return &entity.Brand{
		ID:         id,
		Name:       doc.Name,
		Categories: categories,
		IsActive:   doc.IsActive,
		CreatedAt:  doc.CreatedAt,
	}
}

func toMenuItemDomain(brandID, id string, doc *menuItemDoc) *entity.MenuItem {
	return &entity.MenuItem{
		ID:          id,
		BrandID:     brandID,
		Name:        doc.Name,
		Category:    entity.Category(doc.Category),
		Description: doc.Description,
		Image:       doc.Image,
		Order:       doc.Order,
		IsActive:    doc.IsActive,
	}
}

func toRequirementDomain(brandID, itemID, id string, doc *requirementDoc) *entity.Requirement {
	return &entity.Requirement{
		ID:              id,
		BrandID:         brandID,
		ItemID:          itemID,
		Title:           doc.Title,
		AngleHint:       doc.AngleHint,
		ExampleImageURL: doc.ExampleImageURL,
		Checklist:       doc.Checklist,
	}
}

func toSubmissionDomain(id string, doc *submissionDoc) *entity.Submission {
	return &entity.Submission{
		ID:             id,
		PartnerID:      doc.PartnerID,
		LocationID:     doc.LocationID,
		BrandID:        doc.BrandID,
		ItemID:         doc.ItemID,
		RequirementID:  doc.RequirementID,
		Status:         entity.SubmissionStatus(doc.Status),
		FileName:       doc.FileName,
		PhotoURL:       doc.PhotoURL,
		StoragePath:    doc.StoragePath,
		UploaderUserID: doc.UploaderUserID,
		ReviewComment:  doc.ReviewComment,
		ReviewerUserID: doc.ReviewerUserID,
		CreatedAt:      doc.CreatedAt,
		ReviewedAt:     doc.ReviewedAt,
	}
}

func fromSubmissionDomain(submission *entity.Submission) *submissionDoc {
	return &submissionDoc{
		PartnerID:      submission.PartnerID,
		LocationID:     submission.LocationID,
		BrandID:        submission.BrandID,
		ItemID:         submission.ItemID,
		RequirementID:  submission.RequirementID,
		Status:         string(submission.Status),
		FileName:       submission.FileName,
		PhotoURL:       submission.PhotoURL,
		StoragePath:    submission.StoragePath,
		UploaderUserID: submission.UploaderUserID,
		ReviewComment:  submission.ReviewComment,
		ReviewerUserID: submission.ReviewerUserID,
		CreatedAt:      submission.CreatedAt,
		ReviewedAt:     submission.ReviewedAt,
	}
}

func toUserProfileDomain(id string, doc *userDoc) *entity.UserProfile {
	return &entity.UserProfile{
		ID:          id,
		Email:       doc.Email,
		Role:        entity.Role(doc.Role),
		PartnerID:   doc.PartnerID,
		LocationIDs: doc.LocationIDs,
		Brands:      doc.Brands,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}

func toCredentialDomain(uid string, doc *credentialDoc) *entity.Credential {
	return &entity.Credential{
		UID:          uid,
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		Claims: entity.Claims{
			Role:        entity.Role(doc.Role),
			PartnerID:   doc.PartnerID,
			LocationIDs: doc.LocationIDs,
		},
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

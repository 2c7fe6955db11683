package postgres

import (
	"context"
	"testing"
	"time"

	"photoverify/internal/domain/entity"
	"photoverify/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(context.Background(), db))

	return db
}

func TestPartnerRepository_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPartnerRepository(db)
	ctx := context.Background()

	partner := &entity.Partner{ID: "p1", Name: "Just Food GmbH", ShortName: "Just Food", IsActive: true, Brands: []string{"justsmashed"}}
	require.NoError(t, repo.SavePartner(ctx, partner))

	partner.Name = "Just Food Group"
	require.NoError(t, repo.SavePartner(ctx, partner))

	found, err := repo.FindPartnerByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Just Food Group", found.Name)
	assert.Equal(t, []string{"justsmashed"}, found.Brands)

	_, err = repo.FindPartnerByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrPartnerNotFound)
}

func TestPartnerRepository_Locations(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPartnerRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.SaveLocation(ctx, &entity.Location{
		ID: "l2", PartnerID: "p1", Name: "Munich", BrandIDs: []string{"justsmashed"}, IsActive: true,
	}))
	require.NoError(t, repo.SaveLocation(ctx, &entity.Location{
		ID: "l1", PartnerID: "p1", Name: "Berlin", IsActive: false,
		Coordinates: &entity.GeoPoint{Latitude: 52.52, Longitude: 13.405},
	}))
	require.NoError(t, repo.SaveLocation(ctx, &entity.Location{ID: "l9", PartnerID: "p2", Name: "Hamburg"}))

	locations, err := repo.ListLocationsByPartner(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, "l1", locations[0].ID)
	assert.False(t, locations[0].IsActive)
	require.NotNil(t, locations[0].Coordinates)
	assert.InDelta(t, 52.52, locations[0].Coordinates.Latitude, 1e-9)
	assert.Empty(t, locations[0].BrandIDs)
	assert.Equal(t, "justsmashed", locations[1].PrimaryBrandID())

	all, err := repo.ListAllLocations(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byID, err := repo.FindLocationByID(ctx, "l9")
	require.NoError(t, err)
	assert.Equal(t, "p2", byID.PartnerID)

	_, err = repo.FindLocation(ctx, "p2", "l1")
	assert.ErrorIs(t, err, repository.ErrLocationNotFound)
}

func TestCatalogRepository_ItemsAndRequirements(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.SaveBrand(ctx, &entity.Brand{
		ID: "justsmashed", Name: "JustSmashed", IsActive: true,
		Categories: []entity.Category{entity.CategoryBurgers, entity.CategoryFries},
	}))
	require.NoError(t, repo.SaveMenuItem(ctx, &entity.MenuItem{ID: "fries", BrandID: "justsmashed", Name: "Fries", Category: entity.CategoryFries, Order: 2, IsActive: true}))
	require.NoError(t, repo.SaveMenuItem(ctx, &entity.MenuItem{ID: "classic", BrandID: "justsmashed", Name: "Classic", Category: entity.CategoryBurgers, Order: 1, IsActive: true}))
	require.NoError(t, repo.SaveMenuItem(ctx, &entity.MenuItem{ID: "retired", BrandID: "justsmashed", Name: "Retired", Category: entity.CategoryBurgers, Order: 3}))

	brand, err := repo.FindBrandByID(ctx, "justsmashed")
	require.NoError(t, err)
	assert.Equal(t, []entity.Category{entity.CategoryBurgers, entity.CategoryFries}, brand.Categories)

	items, err := repo.ListMenuItems(ctx, "justsmashed")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "classic", items[0].ID)
	assert.False(t, items[2].IsActive)

	require.NoError(t, repo.SaveRequirement(ctx, &entity.Requirement{
		ID: "cut_in_half", BrandID: "justsmashed", ItemID: "classic", Title: "Cut in half", Checklist: []string{"sharp knife"},
	}))
	require.NoError(t, repo.SaveRequirement(ctx, &entity.Requirement{
		ID: "built_straight", BrandID: "justsmashed", ItemID: "classic", Title: "Built straight",
	}))

	requirements, err := repo.ListRequirements(ctx, "justsmashed", "classic")
	require.NoError(t, err)
	require.Len(t, requirements, 2)
	assert.Equal(t, "built_straight", requirements[0].ID)

	requirement, err := repo.FindRequirement(ctx, "justsmashed", "classic", "cut_in_half")
	require.NoError(t, err)
	assert.Equal(t, []string{"sharp knife"}, requirement.Checklist)

	_, err = repo.FindMenuItem(ctx, "justsmashed", "missing")
	assert.ErrorIs(t, err, repository.ErrMenuItemNotFound)
	_, err = repo.FindRequirement(ctx, "justsmashed", "fries", "cut_in_half")
	assert.ErrorIs(t, err, repository.ErrRequirementNotFound)
}

func newTestSubmission(id string, createdAt time.Time) *entity.Submission {
	return &entity.Submission{
		ID:             id,
		PartnerID:      "p1",
		LocationID:     "l1",
		BrandID:        "justsmashed",
		ItemID:         "classic",
		RequirementID:  "cut_in_half",
		Status:         entity.SubmissionStatusSubmitted,
		FileName:       "photo.jpg",
		StoragePath:    "submissions/" + id,
		UploaderUserID: "u1",
		CreatedAt:      createdAt,
	}
}

func TestSubmissionRepository_FindSubmissionsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubmissionRepository(db)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.CreateSubmission(ctx, newTestSubmission("s1", base)))
	require.NoError(t, repo.CreateSubmission(ctx, newTestSubmission("s2", base.Add(time.Minute))))
	other := newTestSubmission("s3", base.Add(2*time.Minute))
	other.LocationID = "l2"
	require.NoError(t, repo.CreateSubmission(ctx, other))

	assert.ErrorIs(t, repo.CreateSubmission(ctx, newTestSubmission("s1", base)), repository.ErrDuplicateSubmission)

	submissions, err := repo.FindSubmissions(ctx, entity.SubmissionFilter{PartnerID: "p1", LocationID: "l1"})
	require.NoError(t, err)
	require.Len(t, submissions, 2)
	assert.Equal(t, "s2", submissions[0].ID)
	assert.Equal(t, "s1", submissions[1].ID)

	pending, err := repo.FindSubmissions(ctx, entity.SubmissionFilter{Status: entity.SubmissionStatusSubmitted})
	require.NoError(t, err)
	assert.Len(t, pending, 3)
}

func TestSubmissionRepository_DecideSubmission(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubmissionRepository(db)
	ctx := context.Background()
	reviewedAt := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.CreateSubmission(ctx, newTestSubmission("s1", reviewedAt.Add(-time.Hour))))

	decided, err := repo.DecideSubmission(ctx, "s1", entity.ReviewDecision{
		Status:         entity.SubmissionStatusRejected,
		Comment:        "blurry",
		ReviewerUserID: "r1",
		ReviewedAt:     reviewedAt,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SubmissionStatusRejected, decided.Status)
	assert.Equal(t, "blurry", decided.ReviewComment)
	assert.Equal(t, "r1", decided.ReviewerUserID)
	require.NotNil(t, decided.ReviewedAt)

	_, err = repo.DecideSubmission(ctx, "s1", entity.ReviewDecision{Status: entity.SubmissionStatusApproved, ReviewerUserID: "r2", ReviewedAt: reviewedAt})
	assert.ErrorIs(t, err, repository.ErrSubmissionNotPending)

	stored, err := repo.FindSubmissionByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, entity.SubmissionStatusRejected, stored.Status)

	_, err = repo.DecideSubmission(ctx, "missing", entity.ReviewDecision{Status: entity.SubmissionStatusApproved})
	assert.ErrorIs(t, err, repository.ErrSubmissionNotFound)
}

func TestUserProfileRepository_SaveAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserProfileRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.SaveUserProfile(ctx, &entity.UserProfile{ID: "u2", Email: "b@example.com", Role: entity.RoleReviewer}))
	require.NoError(t, repo.SaveUserProfile(ctx, &entity.UserProfile{
		ID: "u1", Email: "a@example.com", Role: entity.RolePartner, PartnerID: "p1", LocationIDs: []string{"l1"},
	}))
	require.NoError(t, repo.SaveUserProfile(ctx, &entity.UserProfile{
		ID: "u1", Email: "a@example.com", Role: entity.RolePartner, PartnerID: "p1", LocationIDs: []string{"l1", "l2"},
	}))

	profile, err := repo.FindUserProfileByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"l1", "l2"}, profile.LocationIDs)

	profiles, err := repo.ListUserProfiles(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "a@example.com", profiles[0].Email)

	_, err = repo.FindUserProfileByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrUserProfileNotFound)
}

func TestCredentialRepository_Lifecycle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCredentialRepository(db)
	ctx := context.Background()

	credential := &entity.Credential{UID: "u1", Email: "a@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.CreateCredential(ctx, credential))
	assert.ErrorIs(t, repo.CreateCredential(ctx, &entity.Credential{UID: "u2", Email: "a@example.com", PasswordHash: "x"}),
		repository.ErrDuplicateCredential)

	require.NoError(t, repo.UpdateCredentialClaims(ctx, "u1", entity.Claims{
		Role: entity.RolePartner, PartnerID: "p1", LocationIDs: []string{"l1"},
	}))

	found, err := repo.FindCredentialByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", found.UID)
	assert.Equal(t, entity.RolePartner, found.Claims.Role)
	assert.Equal(t, []string{"l1"}, found.Claims.LocationIDs)

	require.NoError(t, repo.DeleteCredential(ctx, "u1"))
	_, err = repo.FindCredentialByUID(ctx, "u1")
	assert.ErrorIs(t, err, repository.ErrCredentialNotFound)
	assert.ErrorIs(t, repo.DeleteCredential(ctx, "u1"), repository.ErrCredentialNotFound)
}

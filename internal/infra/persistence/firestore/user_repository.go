package firestore

import (
	"context"
	"time"

	"photoverify/internal/domain/entity"
	"photoverify/internal/domain/repository"

	gcfirestore "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// userProfileRepository implements the repository.UserProfileRepository interface.
type userProfileRepository struct {
	client *gcfirestore.Client
}

// NewUserProfileRepository is the constructor for userProfileRepository.
func NewUserProfileRepository(client *gcfirestore.Client) repository.UserProfileRepository {
	return &userProfileRepository{
		client: client,
	}
}

func (repo *userProfileRepository) SaveUserProfile(ctx context.Context, profile *entity.UserProfile) error {
	profile.UpdatedAt = time.Now().UTC()

	fields := map[string]any{
		"email":       profile.Email,
		"role":        profile.Role.String(),
		"partnerId":   profile.PartnerID,
		"locationIds": nonNil(profile.LocationIDs),
		"brands":      nonNil(profile.Brands),
		"updatedAt":   profile.UpdatedAt,
	}
	setCreatedAt(fields, profile.CreatedAt)

	if _, err := repo.client.Collection(collectionUsers).Doc(profile.ID).Set(ctx, fields, gcfirestore.MergeAll); err != nil {
		return errors.Wrap(err, "failed to save user profile")
	}

	return nil
}

func (repo *userProfileRepository) FindUserProfileByID(ctx context.Context, uid string) (*entity.UserProfile, error) {
	snap, err := repo.client.Collection(collectionUsers).Doc(uid).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUserProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find user profile by ID")
	}

	var doc userDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode user profile")
	}

	return toUserProfileDomain(snap.Ref.ID, &doc), nil
}

func (repo *userProfileRepository) ListUserProfiles(ctx context.Context) ([]*entity.UserProfile, error) {
	snaps, err := repo.client.Collection(collectionUsers).
		OrderBy("email", gcfirestore.Asc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user profiles")
	}

	profiles := make([]*entity.UserProfile, 0, len(snaps))
	for _, snap := range snaps {
		var doc userDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode user profile %s", snap.Ref.ID)
		}
		profiles = append(profiles, toUserProfileDomain(snap.Ref.ID, &doc))
	}

	return profiles, nil
}

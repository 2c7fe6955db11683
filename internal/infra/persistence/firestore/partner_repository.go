package firestore

import (
	"context"

	"photoverify/internal/domain/entity"
	"photoverify/internal/domain/repository"

	gcfirestore "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// partnerRepository implements the repository.PartnerRepository interface.
type partnerRepository struct {
	client *gcfirestore.Client
}

// NewPartnerRepository is the constructor for partnerRepository.
func NewPartnerRepository(client *gcfirestore.Client) repository.PartnerRepository {
	return &partnerRepository{
		client: client,
	}
}

func (repo *partnerRepository) partnerRef(partnerID string) *gcfirestore.DocumentRef {
	return repo.client.Collection(collectionPartners).Doc(partnerID)
}

func (repo *partnerRepository) locationRef(partnerID, locationID string) *gcfirestore.DocumentRef {
	return repo.partnerRef(partnerID).Collection(collectionLocations).Doc(locationID)
}

func (repo *partnerRepository) SavePartner(ctx context.Context, partner *entity.Partner) error {
	fields := map[string]any{
		"name":      partner.Name,
		"shortName": partner.ShortName,
		"isActive":  partner.IsActive,
		"brands":    nonNil(partner.Brands),
	}
	setCreatedAt(fields, partner.CreatedAt)

	if _, err := repo.partnerRef(partner.ID).Set(ctx, fields, gcfirestore.MergeAll); err != nil {
		return errors.Wrap(err, "failed to save partner")
	}

	return nil
}

func (repo *partnerRepository) FindPartnerByID(ctx context.Context, partnerID string) (*entity.Partner, error) {
	snap, err := repo.partnerRef(partnerID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrPartnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find partner by ID")
	}

	var doc partnerDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode partner")
	}

	return toPartnerDomain(snap.Ref.ID, &doc), nil
}

func (repo *partnerRepository) ListPartners(ctx context.Context) ([]*entity.Partner, error) {
	snaps, err := repo.client.Collection(collectionPartners).
		OrderBy(gcfirestore.DocumentID, gcfirestore.Asc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list partners")
	}

	partners := make([]*entity.Partner, 0, len(snaps))
	for _, snap := range snaps {
		var doc partnerDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode partner %s", snap.Ref.ID)
		}
		partners = append(partners, toPartnerDomain(snap.Ref.ID, &doc))
	}

	return partners, nil
}

func (repo *partnerRepository) SaveLocation(ctx context.Context, location *entity.Location) error {
	ref := repo.locationRef(location.PartnerID, location.ID)
	if _, err := ref.Set(ctx, fromLocationDomain(location), gcfirestore.MergeAll); err != nil {
		return errors.Wrap(err, "failed to save location")
	}

	return nil
}

func (repo *partnerRepository) FindLocation(ctx context.Context, partnerID, locationID string) (*entity.Location, error) {
	snap, err := repo.locationRef(partnerID, locationID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location")
	}

	return decodeLocation(snap)
}

func (repo *partnerRepository) FindLocationByID(ctx context.Context, locationID string) (*entity.Location, error) {
	snaps, err := repo.client.CollectionGroup(collectionLocations).
		Where("id", "==", locationID).
		Limit(1).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to find location by ID")
	}
	if len(snaps) == 0 {
		return nil, repository.ErrLocationNotFound
	}

	return decodeLocation(snaps[0])
}

func (repo *partnerRepository) ListLocationsByPartner(ctx context.Context, partnerID string) ([]*entity.Location, error) {
	snaps, err := repo.partnerRef(partnerID).Collection(collectionLocations).
		OrderBy(gcfirestore.DocumentID, gcfirestore.Asc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list locations by partner")
	}

	return decodeLocations(snaps)
}

func (repo *partnerRepository) ListAllLocations(ctx context.Context) ([]*entity.Location, error) {
	snaps, err := repo.client.CollectionGroup(collectionLocations).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}

	return decodeLocations(snaps)
}

func decodeLocation(snap *gcfirestore.DocumentSnapshot) (*entity.Location, error) {
	var doc locationDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode location %s", snap.Ref.ID)
	}
	if doc.PartnerID == "" && snap.Ref.Parent != nil && snap.Ref.Parent.Parent != nil {
		doc.PartnerID = snap.Ref.Parent.Parent.ID
	}

	return toLocationDomain(snap.Ref.ID, &doc), nil
}

func decodeLocations(snaps []*gcfirestore.DocumentSnapshot) ([]*entity.Location, error) {
	locations := make([]*entity.Location, 0, len(snaps))
	for _, snap := range snaps {
		location, err := decodeLocation(snap)
		if err != nil {
			return nil, err
		}
		locations = append(locations, location)
	}

	return locations, nil
}

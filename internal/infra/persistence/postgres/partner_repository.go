// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"photoverify/internal/domain/entity"
	domainerrors "photoverify/internal/domain/errors"
	"photoverify/internal/domain/repository"
	"photoverify/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// partnerRepository implements the repository.PartnerRepository interface.
type partnerRepository struct {
	db *gorm.DB
}

// NewPartnerRepository is the constructor for partnerRepository.
func NewPartnerRepository(db *gorm.DB) repository.PartnerRepository {
	return &partnerRepository{
		db: db,
	}
}

// SavePartner creates the partner or merges it into the existing record.
func (repo *partnerRepository) SavePartner(ctx context.Context, partner *entity.Partner) error {
	partnerM := fromPartnerDomain(partner)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "short_name", "is_active", "brands", "updated_at"}),
		}).
		Create(partnerM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save partner")
	}

	partner.CreatedAt = partnerM.CreatedAt

	return nil
}

// FindPartnerByID retrieves a partner by its id.
func (repo *partnerRepository) FindPartnerByID(ctx context.Context, partnerID string) (*entity.Partner, error) {
	var partnerM model.PartnerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", partnerID).
		First(&partnerM).Error; err != nil {
		if isNotFound(err) {
			return nil, repository.ErrPartnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find partner by ID")
	}

	return toPartnerDomain(&partnerM), nil
}

// ListPartners retrieves every partner ordered by id.
func (repo *partnerRepository) ListPartners(ctx context.Context) ([]*entity.Partner, error) {
	var partnerModels []*model.PartnerModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&partnerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list partners")
	}

	partners := make([]*entity.Partner, 0, len(partnerModels))
	for _, partnerM := range partnerModels {
		partners = append(partners, toPartnerDomain(partnerM))
	}

	return partners, nil
}

// SaveLocation creates the location under its partner or merges it into the existing record.
func (repo *partnerRepository) SaveLocation(ctx context.Context, location *entity.Location) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "partner_id"}, {Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "address", "city", "country", "brand_ids", "is_active", "latitude", "longitude", "updated_at",
			}),
		}).
		Create(locationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save location")
	}

	location.CreatedAt = locationM.CreatedAt

	return nil
}

// FindLocation retrieves a location of a partner.
func (repo *partnerRepository) FindLocation(ctx context.Context, partnerID, locationID string) (*entity.Location, error) {
	var locationM model.LocationModel

	if err := repo.db.WithContext(ctx).
		Where("partner_id = ? AND id = ?", partnerID, locationID).
		First(&locationM).Error; err != nil {
		if isNotFound(err) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location")
	}

	return toLocationDomain(&locationM), nil
}

// FindLocationByID looks a location up by id across all partners.
func (repo *partnerRepository) FindLocationByID(ctx context.Context, locationID string) (*entity.Location, error) {
	var locationM model.LocationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", locationID).
		Order("partner_id ASC").
		First(&locationM).Error; err != nil {
		if isNotFound(err) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by ID")
	}

	return toLocationDomain(&locationM), nil
}

// ListLocationsByPartner retrieves the locations of one partner ordered by id.
func (repo *partnerRepository) ListLocationsByPartner(ctx context.Context, partnerID string) ([]*entity.Location, error) {
	var locationModels []*model.LocationModel

	if err := repo.db.WithContext(ctx).
		Where("partner_id = ?", partnerID).
		Order("id ASC").
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list locations by partner")
	}

	return toLocationDomains(locationModels), nil
}

// ListAllLocations retrieves the locations of every partner.
func (repo *partnerRepository) ListAllLocations(ctx context.Context) ([]*entity.Location, error) {
	var locationModels []*model.LocationModel

	if err := repo.db.WithContext(ctx).
		Order("partner_id ASC, id ASC").
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}

	return toLocationDomains(locationModels), nil
}

// --- Mapper Functions ---

func toPartnerDomain(data *model.PartnerModel) *entity.Partner {
	if data == nil {
		return nil
	}

	return &entity.Partner{
		ID:        data.ID,
		Name:      data.Name,
		ShortName: data.ShortName,
		IsActive:  data.IsActive,
		Brands:    []string(data.Brands),
		CreatedAt: data.CreatedAt,
	}
}

func fromPartnerDomain(data *entity.Partner) *model.PartnerModel {
	if data == nil {
		return nil
	}

	return &model.PartnerModel{
		ID:        data.ID,
		Name:      data.Name,
		ShortName: data.ShortName,
		IsActive:  data.IsActive,
		Brands:    stringSlice(data.Brands),
		CreatedAt: data.CreatedAt,
	}
}

func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	location := &entity.Location{
		ID:        data.ID,
		PartnerID: data.PartnerID,
		Name:      data.Name,
		Address:   data.Address,
		City:      data.City,
		Country:   data.Country,
		BrandIDs:  []string(data.BrandIDs),
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
	}
	if data.Latitude != nil && data.Longitude != nil {
		location.Coordinates = &entity.GeoPoint{Latitude: *data.Latitude, Longitude: *data.Longitude}
	}

	return location
}

func toLocationDomains(models []*model.LocationModel) []*entity.Location {
	locations := make([]*entity.Location, 0, len(models))
	for _, locationM := range models {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations
}

func fromLocationDomain(data *entity.Location) *model.LocationModel {
	if data == nil {
		return nil
	}

	locationM := &model.LocationModel{
		PartnerID: data.PartnerID,
		ID:        data.ID,
		Name:      data.Name,
		Address:   data.Address,
		City:      data.City,
		Country:   data.Country,
		BrandIDs:  stringSlice(data.BrandIDs),
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
	}
	if data.Coordinates != nil {
		lat, lng := data.Coordinates.Latitude, data.Coordinates.Longitude
		locationM.Latitude = &lat
		locationM.Longitude = &lng
	}

	return locationM
}

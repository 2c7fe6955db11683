package firestore

import (
	"context"
	"time"

	"photoverify/internal/domain/entity"
	"photoverify/internal/domain/repository"

	gcfirestore "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// credentialRepository implements the repository.CredentialRepository interface.
type credentialRepository struct {
	client *gcfirestore.Client
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(client *gcfirestore.Client) repository.CredentialRepository {
	return &credentialRepository{
		client: client,
	}
}

func (repo *credentialRepository) credentials() *gcfirestore.CollectionRef {
	return repo.client.Collection(collectionCredentials)
}

// CreateCredential checks email uniqueness and creates the document in one transaction.
func (repo *credentialRepository) CreateCredential(ctx context.Context, credential *entity.Credential) error {
	now := time.Now().UTC()
	doc := &credentialDoc{
		Email:        credential.Email,
		PasswordHash: credential.PasswordHash,
		Role:         credential.Claims.Role.String(),
		PartnerID:    credential.Claims.PartnerID,
		LocationIDs:  nonNil(credential.Claims.LocationIDs),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	ref := repo.credentials().Doc(credential.UID)

	err := repo.client.RunTransaction(ctx, func(ctx context.Context, tx *gcfirestore.Transaction) error {
		existing, err := tx.Documents(repo.credentials().Where("email", "==", credential.Email).Limit(1)).GetAll()
		if err != nil {
			return errors.Wrap(err, "failed to check credential email")
		}
		if len(existing) > 0 {
			return repository.ErrDuplicateCredential
		}

		return tx.Create(ref, doc)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateCredential) || isAlreadyExists(err) {
			return repository.ErrDuplicateCredential
		}

		return errors.Wrap(err, "failed to create credential")
	}

	credential.CreatedAt = now
	credential.UpdatedAt = now

	return nil
}

func (repo *credentialRepository) FindCredentialByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	snaps, err := repo.credentials().Where("email", "==", email).Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to find credential by email")
	}
	if len(snaps) == 0 {
		return nil, repository.ErrCredentialNotFound
	}

	return decodeCredential(snaps[0])
}

func (repo *credentialRepository) FindCredentialByUID(ctx context.Context, uid string) (*entity.Credential, error) {
	snap, err := repo.credentials().Doc(uid).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential by UID")
	}

	return decodeCredential(snap)
}

func (repo *credentialRepository) UpdateCredentialClaims(ctx context.Context, uid string, claims entity.Claims) error {
	_, err := repo.credentials().Doc(uid).Update(ctx, []gcfirestore.Update{
		{Path: "role", Value: claims.Role.String()},
		{Path: "partnerId", Value: claims.PartnerID},
		{Path: "locationIds", Value: nonNil(claims.LocationIDs)},
		{Path: "updatedAt", Value: time.Now().UTC()},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrCredentialNotFound
		}

		return errors.Wrap(err, "failed to update credential claims")
	}

	return nil
}

func (repo *credentialRepository) DeleteCredential(ctx context.Context, uid string) error {
	if _, err := repo.credentials().Doc(uid).Delete(ctx, gcfirestore.Exists); err != nil {
		if isNotFound(err) {
			return repository.ErrCredentialNotFound
		}

		return errors.Wrap(err, "failed to delete credential")
	}

	return nil
}

func decodeCredential(snap *gcfirestore.DocumentSnapshot) (*entity.Credential, error) {
	var doc credentialDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode credential %s", snap.Ref.ID)
	}

	return toCredentialDomain(snap.Ref.ID, &doc), nil
}

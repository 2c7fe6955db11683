package firestore

import (
	"context"

	"photoverify/internal/domain/entity"
	"photoverify/internal/domain/repository"

	gcfirestore "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// submissionRepository implements the repository.SubmissionRepository interface.
type submissionRepository struct {
	client *gcfirestore.Client
}

// NewSubmissionRepository is the constructor for submissionRepository.
func NewSubmissionRepository(client *gcfirestore.Client) repository.SubmissionRepository {
	return &submissionRepository{
		client: client,
	}
}

func (repo *submissionRepository) submissions() *gcfirestore.CollectionRef {
	return repo.client.Collection(collectionSubmissions)
}

// CreateSubmission fails when the document already exists.
func (repo *submissionRepository) CreateSubmission(ctx context.Context, submission *entity.Submission) error {
	if _, err := repo.submissions().Doc(submission.ID).Create(ctx, fromSubmissionDomain(submission)); err != nil {
		if isAlreadyExists(err) {
			return repository.ErrDuplicateSubmission
		}

		return errors.Wrap(err, "failed to create submission")
	}

	return nil
}

func (repo *submissionRepository) FindSubmissionByID(ctx context.Context, submissionID string) (*entity.Submission, error) {
	snap, err := repo.submissions().Doc(submissionID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrSubmissionNotFound
		}

		return nil, errors.Wrap(err, "failed to find submission by ID")
	}

	return decodeSubmission(snap)
}

func (repo *submissionRepository) FindSubmissions(
	ctx context.Context,
	filter entity.SubmissionFilter,
) ([]*entity.Submission, error) {
	query := repo.submissions().Query

	for _, cond := range []struct {
		path  string
		value string
	}{
		{"partnerId", filter.PartnerID},
		{"locationId", filter.LocationID},
		{"brandId", filter.BrandID},
		{"itemId", filter.ItemID},
		{"requirementId", filter.RequirementID},
		{"status", string(filter.Status)},
	} {
		if cond.value != "" {
			query = query.Where(cond.path, "==", cond.value)
		}
	}

	snaps, err := query.
		OrderBy("createdAt", gcfirestore.Desc).
		OrderBy(gcfirestore.DocumentID, gcfirestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to find submissions")
	}

	submissions := make([]*entity.Submission, 0, len(snaps))
	for _, snap := range snaps {
		submission, err := decodeSubmission(snap)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, submission)
	}

	return submissions, nil
}

// DecideSubmission reads and updates the document in one transaction so only the first decision lands.
func (repo *submissionRepository) DecideSubmission(
	ctx context.Context,
	submissionID string,
	decision entity.ReviewDecision,
) (*entity.Submission, error) {
	ref := repo.submissions().Doc(submissionID)

	var decided *entity.Submission
	err := repo.client.RunTransaction(ctx, func(ctx context.Context, tx *gcfirestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if isNotFound(err) {
				return repository.ErrSubmissionNotFound
			}

			return errors.Wrap(err, "failed to load submission")
		}

		submission, err := decodeSubmission(snap)
		if err != nil {
			return err
		}
		if submission.Status != entity.SubmissionStatusSubmitted {
			return repository.ErrSubmissionNotPending
		}

		reviewedAt := decision.ReviewedAt
		submission.Status = decision.Status
		submission.ReviewComment = decision.Comment
		submission.ReviewerUserID = decision.ReviewerUserID
		submission.ReviewedAt = &reviewedAt
		decided = submission

		return tx.Update(ref, []gcfirestore.Update{
			{Path: "status", Value: string(decision.Status)},
			{Path: "reviewComment", Value: decision.Comment},
			{Path: "reviewerUserId", Value: decision.ReviewerUserID},
			{Path: "reviewedAt", Value: reviewedAt},
		})
	})
	if err != nil {
		if errors.Is(err, repository.ErrSubmissionNotFound) || errors.Is(err, repository.ErrSubmissionNotPending) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to decide submission")
	}

	return decided, nil
}

func decodeSubmission(snap *gcfirestore.DocumentSnapshot) (*entity.Submission, error) {
	var doc submissionDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode submission %s", snap.Ref.ID)
	}

	return toSubmissionDomain(snap.Ref.ID, &doc), nil
}

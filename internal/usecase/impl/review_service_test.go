package impl

import (
	"context"
	"testing"
	"time"

	"photoverify/internal/domain/constants"
	"photoverify/internal/domain/entity"
	domainerrors "photoverify/internal/domain/errors"
	"photoverify/internal/domain/repository"
	"photoverify/internal/domain/service"
	"photoverify/internal/errors"
	mockRepo "photoverify/internal/mocks/repository"
	mockSvc "photoverify/internal/mocks/service"
	"photoverify/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewFixtures struct {
	service        *reviewService
	submissionRepo *mockRepo.MockSubmissionRepository
	partnerRepo    *mockRepo.MockPartnerRepository
	catalogRepo    *mockRepo.MockCatalogRepository
	publisher      *mockSvc.MockEventPublisher
}

func createTestReviewService(t *testing.T) reviewFixtures {
	submissionRepo := mockRepo.NewMockSubmissionRepository(t)
	partnerRepo := mockRepo.NewMockPartnerRepository(t)
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewReviewService(ReviewServiceParams{
		SubmissionRepo: submissionRepo,
		PartnerRepo:    partnerRepo,
		CatalogRepo:    catalogRepo,
		Publisher:      publisher,
		Logger:         newDiscardLogger(),
	}).(*reviewService)
	svc.now = fixedClock

	return reviewFixtures{
		service:        svc,
		submissionRepo: submissionRepo,
		partnerRepo:    partnerRepo,
		catalogRepo:    catalogRepo,
		publisher:      publisher,
	}
}

func TestReviewService_Decide_Approve(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	reviewedAt := fixedNow

	decided := &entity.Submission{
		ID:             "sub-1",
		PartnerID:      "P",
		LocationID:     "L",
		Status:         entity.SubmissionStatusApproved,
		ReviewerUserID: "reviewer-uid",
		ReviewedAt:     &reviewedAt,
	}
	fx.submissionRepo.EXPECT().DecideSubmission(ctx, "sub-1", entity.ReviewDecision{
		Status:         entity.SubmissionStatusApproved,
		ReviewerUserID: "reviewer-uid",
		ReviewedAt:     fixedNow,
	}).Return(decided, nil)
	fx.publisher.EXPECT().PublishSubmissionEvent(ctx, mock.MatchedBy(func(event *service.SubmissionEvent) bool {
		return event.Type == constants.EventSubmissionReviewed &&
			event.Status == string(entity.SubmissionStatusApproved) &&
			event.PartnerID == "P"
	})).Return(nil)

	submission, err := fx.service.Decide(ctx, reviewerIdentity(), &usecase.DecideInput{
		SubmissionID: "sub-1",
		Decision:     entity.DecisionApprove,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.SubmissionStatusApproved, submission.Status)
	assert.Equal(t, "reviewer-uid", submission.ReviewerUserID)
}

func TestReviewService_Decide_RejectTrimsComment(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()

	fx.submissionRepo.EXPECT().DecideSubmission(ctx, "sub-1", entity.ReviewDecision{
		Status:         entity.SubmissionStatusRejected,
		Comment:        "Bun is squashed",
		ReviewerUserID: "admin-uid",
		ReviewedAt:     fixedNow,
	}).Return(&entity.Submission{ID: "sub-1", Status: entity.SubmissionStatusRejected, ReviewComment: "Bun is squashed"}, nil)
	fx.publisher.EXPECT().PublishSubmissionEvent(ctx, mock.Anything).Return(nil)

	submission, err := fx.service.Decide(ctx, adminIdentity(), &usecase.DecideInput{
		SubmissionID: "sub-1",
		Decision:     entity.DecisionReject,
		Comment:      "  Bun is squashed \n",
	})

	require.NoError(t, err)
	assert.Equal(t, "Bun is squashed", submission.ReviewComment)
}

func TestReviewService_Decide_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		identity *entity.Identity
		input    *usecase.DecideInput
		expected error
	}{
		{
			name:     "reject without comment",
			identity: reviewerIdentity(),
			input:    &usecase.DecideInput{SubmissionID: "sub-1", Decision: entity.DecisionReject, Comment: "   "},
			expected: domainerrors.ErrRejectCommentRequired,
		},
		{
			name:     "unknown decision",
			identity: reviewerIdentity(),
			input:    &usecase.DecideInput{SubmissionID: "sub-1", Decision: "maybe"},
			expected: domainerrors.ErrInvalidDecision,
		},
		{
			name:     "missing submission id",
			identity: reviewerIdentity(),
			input:    &usecase.DecideInput{Decision: entity.DecisionApprove},
			expected: domainerrors.ErrInvalidArgument,
		},
		{
			name:     "partner cannot review",
			identity: partnerIdentity("P", "L"),
			input:    &usecase.DecideInput{SubmissionID: "sub-1", Decision: entity.DecisionApprove},
			expected: domainerrors.ErrPermissionDenied,
		},
		{
			name:     "anonymous",
			identity: nil,
			input:    &usecase.DecideInput{SubmissionID: "sub-1", Decision: entity.DecisionApprove},
			expected: domainerrors.ErrUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestReviewService(t)

			submission, err := fx.service.Decide(context.Background(), tt.identity, tt.input)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.expected), "unexpected error: %v", err)
			assert.Nil(t, submission)
		})
	}
}

func TestReviewService_Decide_RepositoryErrors(t *testing.T) {
	tests := []struct {
		name     string
		repoErr  error
		expected error
	}{
		{name: "already reviewed", repoErr: repository.ErrSubmissionNotPending, expected: domainerrors.ErrSubmissionAlreadyReviewed},
		{name: "not found", repoErr: repository.ErrSubmissionNotFound, expected: domainerrors.ErrSubmissionNotFound},
		{name: "storage failure", repoErr: assert.AnError, expected: assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestReviewService(t)
			ctx := context.Background()

			fx.submissionRepo.EXPECT().DecideSubmission(ctx, "sub-1", mock.Anything).Return(nil, tt.repoErr)

			_, err := fx.service.Decide(ctx, reviewerIdentity(), &usecase.DecideInput{
				SubmissionID: "sub-1",
				Decision:     entity.DecisionApprove,
			})

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.expected), "unexpected error: %v", err)
		})
	}
}

func TestReviewService_ListPending(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()

	newest := &entity.Submission{ID: "s2", PartnerID: "P", LocationID: "L", BrandID: "B", ItemID: "gone", RequirementID: "old-req", CreatedAt: fixedNow.Add(time.Hour)}
	oldest := &entity.Submission{ID: "s1", PartnerID: "P", LocationID: "L", BrandID: "B", ItemID: "burger", RequirementID: "cut-in-half", CreatedAt: fixedNow}

	fx.submissionRepo.EXPECT().FindSubmissions(ctx, entity.SubmissionFilter{Status: entity.SubmissionStatusSubmitted}).
		Return([]*entity.Submission{newest, oldest}, nil)
	fx.catalogRepo.EXPECT().FindMenuItem(ctx, "B", "burger").
		Return(&entity.MenuItem{ID: "burger", Name: "Smash Burger", Category: entity.CategoryBurgers}, nil).Once()
	fx.catalogRepo.EXPECT().FindRequirement(ctx, "B", "burger", "cut-in-half").
		Return(&entity.Requirement{ID: "cut-in-half", Title: "CUT IN HALF", ExampleImageURL: "https://example.test/cut.jpg"}, nil).Once()
	fx.partnerRepo.EXPECT().FindLocation(ctx, "P", "L").
		Return(&entity.Location{ID: "L", Name: "Berlin Mitte", Address: "Friedrichstr. 1"}, nil).Once()
	fx.catalogRepo.EXPECT().FindMenuItem(ctx, "B", "gone").Return(nil, repository.ErrMenuItemNotFound).Once()
	fx.catalogRepo.EXPECT().FindRequirement(ctx, "B", "gone", "old-req").Return(nil, repository.ErrRequirementNotFound).Once()

	pending, err := fx.service.ListPending(ctx, reviewerIdentity())

	require.NoError(t, err)
	require.Len(t, pending, 2)

	assert.Equal(t, "s1", pending[0].ID)
	assert.Equal(t, "Smash Burger", pending[0].ItemName)
	assert.Equal(t, entity.CategoryBurgers, pending[0].ItemCategory)
	assert.Equal(t, "CUT IN HALF", pending[0].RequirementTitle)
	assert.Equal(t, "https://example.test/cut.jpg", pending[0].ExampleImageURL)
	assert.Equal(t, "Berlin Mitte", pending[0].LocationName)
	assert.Equal(t, "Friedrichstr. 1", pending[0].LocationAddress)

	assert.Equal(t, "s2", pending[1].ID)
	assert.Equal(t, "gone", pending[1].ItemName)
	assert.Equal(t, "old-req", pending[1].RequirementTitle)
	assert.Equal(t, "Berlin Mitte", pending[1].LocationName)
}

func TestReviewService_ListPending_PartnerDenied(t *testing.T) {
	fx := createTestReviewService(t)

	pending, err := fx.service.ListPending(context.Background(), partnerIdentity("P", "L"))

	assert.True(t, errors.Is(err, domainerrors.ErrPermissionDenied))
	assert.Nil(t, pending)
}

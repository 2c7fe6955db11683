package impl

import (
	"context"
	"testing"

	"photoverify/config"
	"photoverify/internal/domain/constants"
	"photoverify/internal/domain/entity"
	"photoverify/internal/domain/repository"
	"photoverify/internal/domain/service"
	mockRepo "photoverify/internal/mocks/repository"
	mockSvc "photoverify/internal/mocks/service"
	"photoverify/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationFixtures struct {
	service         usecase.NotificationUsecase
	partnerRepo     *mockRepo.MockPartnerRepository
	notificationSvc *mockSvc.MockNotificationService
}

func createTestNotificationService(t *testing.T, cfg *config.Config) notificationFixtures {
	partnerRepo := mockRepo.NewMockPartnerRepository(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)

	return notificationFixtures{
		service: NewNotificationService(NotificationServiceParams{
			PartnerRepo:     partnerRepo,
			NotificationSvc: notificationSvc,
			Config:          cfg,
			Logger:          newDiscardLogger(),
		}),
		partnerRepo:     partnerRepo,
		notificationSvc: notificationSvc,
	}
}

func reviewedEvent(status entity.SubmissionStatus, comment string) *service.SubmissionEvent {
	return &service.SubmissionEvent{
		Type:          constants.EventSubmissionReviewed,
		SubmissionID:  "sub-1",
		PartnerID:     "P",
		LocationID:    "L",
		ItemID:        "burger",
		RequirementID: "cut-in-half",
		Status:        string(status),
		ReviewComment: comment,
	}
}

func TestNotificationService_HandleSubmissionEvent_Approved(t *testing.T) {
	fx := createTestNotificationService(t, nil)
	ctx := context.Background()

	fx.partnerRepo.EXPECT().FindLocation(ctx, "P", "L").Return(&entity.Location{ID: "L", Name: "Berlin Mitte"}, nil)
	fx.notificationSvc.EXPECT().SendToTopic(ctx, "partner_P", "Photo approved",
		"Your photo for burger at Berlin Mitte was approved",
		mock.MatchedBy(func(data map[string]string) bool {
			return data["submission_id"] == "sub-1" && data["status"] == "approved"
		})).Return(nil)

	err := fx.service.HandleSubmissionEvent(ctx, reviewedEvent(entity.SubmissionStatusApproved, ""))

	require.NoError(t, err)
}

func TestNotificationService_HandleSubmissionEvent_RejectedIncludesComment(t *testing.T) {
	fx := createTestNotificationService(t, nil)
	ctx := context.Background()

	fx.partnerRepo.EXPECT().FindLocation(ctx, "P", "L").Return(nil, repository.ErrLocationNotFound)
	fx.notificationSvc.EXPECT().SendToTopic(ctx, "partner_P", "Photo rejected",
		"Your photo for burger at L was rejected: Bun is squashed", mock.Anything).Return(nil)

	err := fx.service.HandleSubmissionEvent(ctx, reviewedEvent(entity.SubmissionStatusRejected, "Bun is squashed"))

	require.NoError(t, err)
}

func TestNotificationService_HandleSubmissionEvent_CreatedGoesToReviewers(t *testing.T) {
	fx := createTestNotificationService(t, &config.Config{Notifier: &config.NotifierConfig{ReviewerTopic: "qa-team"}})
	ctx := context.Background()

	fx.partnerRepo.EXPECT().FindLocation(ctx, "P", "L").Return(&entity.Location{ID: "L", Name: "Berlin Mitte"}, nil)
	fx.notificationSvc.EXPECT().SendToTopic(ctx, "qa-team", "New photo to review",
		"Berlin Mitte uploaded a photo for burger", mock.Anything).Return(nil)

	err := fx.service.HandleSubmissionEvent(ctx, &service.SubmissionEvent{
		Type:       constants.EventSubmissionCreated,
		PartnerID:  "P",
		LocationID: "L",
		ItemID:     "burger",
		Status:     string(entity.SubmissionStatusSubmitted),
	})

	require.NoError(t, err)
}

func TestNotificationService_HandleSubmissionEvent_UnknownTypeIsAcknowledged(t *testing.T) {
	fx := createTestNotificationService(t, nil)

	err := fx.service.HandleSubmissionEvent(context.Background(), &service.SubmissionEvent{Type: "submission.deleted"})

	assert.NoError(t, err)
}

func TestNotificationService_HandleSubmissionEvent_SendFailure(t *testing.T) {
	fx := createTestNotificationService(t, nil)
	ctx := context.Background()

	fx.partnerRepo.EXPECT().FindLocation(ctx, "P", "L").Return(&entity.Location{ID: "L"}, nil)
	fx.notificationSvc.EXPECT().SendToTopic(ctx, "partner_P", mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

	err := fx.service.HandleSubmissionEvent(ctx, reviewedEvent(entity.SubmissionStatusApproved, ""))

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

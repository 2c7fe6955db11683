package impl

import (
	"context"
	"testing"
	"time"

	"photoverify/internal/domain/entity"
	"photoverify/internal/infra/metrics"
	mockRepo "photoverify/internal/mocks/repository"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type progressFixtures struct {
	service        *progressService
	catalogRepo    *mockRepo.MockCatalogRepository
	submissionRepo *mockRepo.MockSubmissionRepository
}

func createTestProgressService(t *testing.T) progressFixtures {
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	submissionRepo := mockRepo.NewMockSubmissionRepository(t)
	registry := prometheus.NewRegistry()

	svc := NewProgressService(ProgressServiceParams{
		CatalogRepo:    catalogRepo,
		SubmissionRepo: submissionRepo,
		Metrics:        metrics.NewRecorderWithRegistry(registry, registry),
		Logger:         newDiscardLogger(),
	})

	return progressFixtures{
		service:        svc.(*progressService),
		catalogRepo:    catalogRepo,
		submissionRepo: submissionRepo,
	}
}

func approvedFilter(partnerID, locationID, brandID string) entity.SubmissionFilter {
	return entity.SubmissionFilter{
		PartnerID:  partnerID,
		LocationID: locationID,
		BrandID:    brandID,
		Status:     entity.SubmissionStatusApproved,
	}
}

// expectTwoItemBrand sets up brand B with item1/req1 and item2/req1.
func expectTwoItemBrand(fx progressFixtures, ctx context.Context) {
	fx.catalogRepo.EXPECT().ListMenuItems(ctx, "B").Return([]*entity.MenuItem{
		menuItem("B", "item1", entity.CategoryBurgers, true),
		menuItem("B", "item2", entity.CategoryBurgers, true),
	}, nil)
	fx.catalogRepo.EXPECT().ListRequirements(ctx, "B", "item1").Return([]*entity.Requirement{requirement("B", "item1", "req1")}, nil)
	fx.catalogRepo.EXPECT().ListRequirements(ctx, "B", "item2").Return([]*entity.Requirement{requirement("B", "item2", "req1")}, nil)
}

func TestProgressService_ComputeLocationProgress_HalfApproved(t *testing.T) {
	fx := createTestProgressService(t)
	ctx := context.Background()
	location := &entity.Location{ID: "L", PartnerID: "P", BrandIDs: []string{"B"}}

	expectTwoItemBrand(fx, ctx)
	// The submitted (item2, req1) row is excluded by the status filter of the query.
	fx.submissionRepo.EXPECT().FindSubmissions(ctx, approvedFilter("P", "L", "B")).
		Return([]*entity.Submission{approvedSubmission("s1", "item1", "req1")}, nil)

	result, err := fx.service.ComputeLocationProgress(ctx, []*entity.Location{location})

	require.NoError(t, err)
	assert.Equal(t, entity.Progress{Total: 2, Approved: 1, Percentage: 50}, result["P_L"])
}

func TestProgressService_ComputeLocationProgress_NoBrand(t *testing.T) {
	fx := createTestProgressService(t)
	location := &entity.Location{ID: "L", PartnerID: "P", BrandIDs: []string{}}

	result, err := fx.service.ComputeLocationProgress(context.Background(), []*entity.Location{location})

	require.NoError(t, err)
	assert.Equal(t, entity.Progress{}, result["P_L"])
}

func TestProgressService_ComputeLocationProgress_ZeroRequirements(t *testing.T) {
	fx := createTestProgressService(t)
	ctx := context.Background()
	location := &entity.Location{ID: "L", PartnerID: "P", BrandIDs: []string{"empty"}}

	fx.catalogRepo.EXPECT().ListMenuItems(ctx, "empty").Return([]*entity.MenuItem{}, nil)

	result, err := fx.service.ComputeLocationProgress(ctx, []*entity.Location{location})

	require.NoError(t, err)
	assert.Equal(t, entity.Progress{}, result["P_L"])
}

func TestProgressService_ComputeLocationProgress_DeduplicatesApprovedPairs(t *testing.T) {
	fx := createTestProgressService(t)
	ctx := context.Background()
	location := &entity.Location{ID: "L", PartnerID: "P", BrandIDs: []string{"B"}}

	expectTwoItemBrand(fx, ctx)
	fx.submissionRepo.EXPECT().FindSubmissions(ctx, approvedFilter("P", "L", "B")).Return([]*entity.Submission{
		approvedSubmission("s1", "item1", "req1"),
		approvedSubmission("s2", "item1", "req1"),
		approvedSubmission("s3", "item1", "req1"),
	}, nil)

	result, err := fx.service.ComputeLocationProgress(ctx, []*entity.Location{location})

	require.NoError(t, err)
	assert.Equal(t, entity.Progress{Total: 2, Approved: 1, Percentage: 50}, result["P_L"])
}

func TestProgressService_ComputeLocationProgress_IgnoresOrphansAndInactiveItems(t *testing.T) {
	fx := createTestProgressService(t)
	ctx := context.Background()
	location := &entity.Location{ID: "L", PartnerID: "P", BrandIDs: []string{"B"}}

	fx.catalogRepo.EXPECT().ListMenuItems(ctx, "B").Return([]*entity.MenuItem{
		menuItem("B", "item1", entity.CategoryBurgers, true),
		menuItem("B", "retired", entity.CategoryBurgers, false),
	}, nil)
	fx.catalogRepo.EXPECT().ListRequirements(ctx, "B", "item1").Return([]*entity.Requirement{
		requirement("B", "item1", "req1"),
		requirement("B", "item1", "req2"),
		requirement("B", "item1", "req3"),
	}, nil)
	fx.submissionRepo.EXPECT().FindSubmissions(ctx, approvedFilter("P", "L", "B")).Return([]*entity.Submission{
		approvedSubmission("s1", "item1", "req1"),
		approvedSubmission("s2", "retired", "req1"),
		approvedSubmission("s3", "deleted-item", "req9"),
	}, nil)

	result, err := fx.service.ComputeLocationProgress(ctx, []*entity.Location{location})

	require.NoError(t, err)
	assert.Equal(t, entity.Progress{Total: 3, Approved: 1, Percentage: 33}, result["P_L"])
}

func TestProgressService_ComputeLocationProgress_LoadsEachBrandOnce(t *testing.T) {
	fx := createTestProgressService(t)
	ctx := context.Background()
	locations := []*entity.Location{
		{ID: "L", PartnerID: "P", BrandIDs: []string{"B"}},
		{ID: "L2", PartnerID: "P", BrandIDs: []string{"B", "other"}},
	}

	fx.catalogRepo.EXPECT().ListMenuItems(ctx, "B").Return([]*entity.MenuItem{
		menuItem("B", "item1", entity.CategoryBurgers, true),
	}, nil).Once()
	fx.catalogRepo.EXPECT().ListRequirements(ctx, "B", "item1").
		Return([]*entity.Requirement{requirement("B", "item1", "req1")}, nil).Once()
	fx.submissionRepo.EXPECT().FindSubmissions(ctx, approvedFilter("P", "L", "B")).
		Return([]*entity.Submission{approvedSubmission("s1", "item1", "req1")}, nil)
	fx.submissionRepo.EXPECT().FindSubmissions(ctx, approvedFilter("P", "L2", "B")).
		Return([]*entity.Submission{}, nil)

	result, err := fx.service.ComputeLocationProgress(ctx, locations)

	require.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, 100, result["P_L"].Percentage)
	assert.Equal(t, entity.Progress{Total: 1, Approved: 0, Percentage: 0}, result["P_L2"])
}

func TestProgressService_ComputeLocationProgress_Idempotent(t *testing.T) {
	fx := createTestProgressService(t)
	ctx := context.Background()
	locations := []*entity.Location{{ID: "L", PartnerID: "P", BrandIDs: []string{"B"}}}

	expectTwoItemBrand(fx, ctx)
	fx.submissionRepo.EXPECT().FindSubmissions(ctx, approvedFilter("P", "L", "B")).
		Return([]*entity.Submission{approvedSubmission("s1", "item2", "req1")}, nil)

	first, err := fx.service.ComputeLocationProgress(ctx, locations)
	require.NoError(t, err)
	second, err := fx.service.ComputeLocationProgress(ctx, locations)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestProgressService_ComputeLocationProgress_MonotonicInApprovals(t *testing.T) {
	fx := createTestProgressService(t)
	ctx := context.Background()
	locations := []*entity.Location{{ID: "L", PartnerID: "P", BrandIDs: []string{"B"}}}

	requirements := []*entity.Requirement{
		requirement("B", "item1", "r1"),
		requirement("B", "item1", "r2"),
		requirement("B", "item1", "r3"),
		requirement("B", "item1", "r4"),
		requirement("B", "item1", "r5"),
		requirement("B", "item1", "r6"),
		requirement("B", "item1", "r7"),
	}
	fx.catalogRepo.EXPECT().ListMenuItems(ctx, "B").Return([]*entity.MenuItem{
		menuItem("B", "item1", entity.CategoryBurgers, true),
	}, nil)
	fx.catalogRepo.EXPECT().ListRequirements(ctx, "B", "item1").Return(requirements, nil)

	var approved []*entity.Submission
	fx.submissionRepo.EXPECT().FindSubmissions(ctx, mock.Anything).
		RunAndReturn(func(context.Context, entity.SubmissionFilter) ([]*entity.Submission, error) {
			return approved, nil
		})

	previous := entity.Progress{}
	for i, req := range requirements {
		approved = append(approved, approvedSubmission(req.ID+"-sub", "item1", req.ID))

		result, err := fx.service.ComputeLocationProgress(ctx, locations)
		require.NoError(t, err)

		current := result["P_L"]
		assert.Equal(t, i+1, current.Approved)
		assert.Equal(t, previous.Approved+1, current.Approved)
		assert.GreaterOrEqual(t, current.Percentage, previous.Percentage)
		assert.LessOrEqual(t, current.Percentage, 100)
		previous = current
	}
	assert.Equal(t, 100, previous.Percentage)
}

func TestProgressService_ComputeLocationProgress_RejectedThenApproved(t *testing.T) {
	fx := createTestProgressService(t)
	ctx := context.Background()
	locations := []*entity.Location{{ID: "L", PartnerID: "P", BrandIDs: []string{"B"}}}

	expectTwoItemBrand(fx, ctx)
	newer := approvedSubmission("s2", "item1", "req1")
	newer.CreatedAt = fixedNow.Add(time.Hour)
	fx.submissionRepo.EXPECT().FindSubmissions(ctx, approvedFilter("P", "L", "B")).
		Return([]*entity.Submission{newer}, nil)

	result, err := fx.service.ComputeLocationProgress(ctx, locations)

	require.NoError(t, err)
	assert.Equal(t, 1, result["P_L"].Approved)
}

func TestProgressService_ComputeLocationProgress_RepositoryError(t *testing.T) {
	fx := createTestProgressService(t)
	ctx := context.Background()
	locations := []*entity.Location{{ID: "L", PartnerID: "P", BrandIDs: []string{"B"}}}

	fx.catalogRepo.EXPECT().ListMenuItems(ctx, "B").Return(nil, assert.AnError)

	result, err := fx.service.ComputeLocationProgress(ctx, locations)

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, result)
}

func TestProgressService_ComputeItemProgress(t *testing.T) {
	fx := createTestProgressService(t)
	ctx := context.Background()

	fx.catalogRepo.EXPECT().ListMenuItems(ctx, "B").Return([]*entity.MenuItem{
		menuItem("B", "burger", entity.CategoryBurgers, true),
		menuItem("B", "fries", entity.CategoryFries, true),
	}, nil)
	fx.catalogRepo.EXPECT().ListRequirements(ctx, "B", "burger").Return([]*entity.Requirement{
		requirement("B", "burger", "built-straight"),
		requirement("B", "burger", "cut-in-half"),
	}, nil)
	fx.catalogRepo.EXPECT().ListRequirements(ctx, "B", "fries").Return([]*entity.Requirement{
		requirement("B", "fries", "portion-top"),
	}, nil)
	fx.submissionRepo.EXPECT().FindSubmissions(ctx, approvedFilter("P", "L", "B")).Return([]*entity.Submission{
		approvedSubmission("s1", "burger", "built-straight"),
		approvedSubmission("s2", "fries", "portion-top"),
	}, nil)

	result, err := fx.service.ComputeItemProgress(ctx, "P", "L", "B")

	require.NoError(t, err)
	assert.Equal(t, entity.Progress{Total: 2, Approved: 1, Percentage: 50}, result.Items["burger"])
	assert.Equal(t, entity.Progress{Total: 1, Approved: 1, Percentage: 100}, result.Items["fries"])
	assert.Equal(t, entity.Progress{Total: 3, Approved: 2, Percentage: 67}, result.Overall)
}

func TestProgressService_ComputeItemProgress_NoBrand(t *testing.T) {
	fx := createTestProgressService(t)

	result, err := fx.service.ComputeItemProgress(context.Background(), "P", "L", "")

	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Equal(t, entity.Progress{}, result.Overall)
}

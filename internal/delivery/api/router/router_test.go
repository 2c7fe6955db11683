package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"photoverify/config"
	apimiddleware "photoverify/internal/delivery/api/middleware"
	"photoverify/internal/delivery/api/router/handler"
	"photoverify/internal/delivery/api/validator"
	deliverycontext "photoverify/internal/delivery/context"
	"photoverify/internal/delivery/middleware"
	"photoverify/internal/domain/entity"
	domainerrors "photoverify/internal/domain/errors"
	"photoverify/internal/errors"
	"photoverify/internal/infra/metrics"
	mockUsecase "photoverify/internal/mocks/usecase"
	"photoverify/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	partnerToken  = "token-partner"
	reviewerToken = "token-reviewer"
	adminToken    = "token-admin"
)

type testAPI struct {
	echo         *echo.Echo
	sessionUC    *mockUsecase.MockSessionUsecase
	locationUC   *mockUsecase.MockLocationUsecase
	catalogUC    *mockUsecase.MockCatalogUsecase
	submissionUC *mockUsecase.MockSubmissionUsecase
	reviewUC     *mockUsecase.MockReviewUsecase
	adminUC      *mockUsecase.MockAdminUsecase

	partner  *entity.Identity
	reviewer *entity.Identity
	admin    *entity.Identity
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func newTestAPI(t *testing.T, cfg *config.Config) *testAPI {
	t.Helper()

	if cfg == nil {
		cfg = &config.Config{}
	}
	if cfg.Storage == nil {
		cfg.Storage = &config.StorageConfig{MaxUploadSize: "1MB"}
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	api := &testAPI{
		sessionUC:    mockUsecase.NewMockSessionUsecase(t),
		locationUC:   mockUsecase.NewMockLocationUsecase(t),
		catalogUC:    mockUsecase.NewMockCatalogUsecase(t),
		submissionUC: mockUsecase.NewMockSubmissionUsecase(t),
		reviewUC:     mockUsecase.NewMockReviewUsecase(t),
		adminUC:      mockUsecase.NewMockAdminUsecase(t),
		partner: &entity.Identity{
			UID:         "partner-uid",
			Email:       "owner@example.com",
			Role:        entity.RolePartner,
			PartnerID:   "P",
			LocationIDs: []string{"L"},
		},
		reviewer: &entity.Identity{UID: "reviewer-uid", Role: entity.RoleReviewer},
		admin:    &entity.Identity{UID: "admin-uid", Role: entity.RoleAdmin},
	}

	registry := prometheus.NewRegistry()

	e := echo.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)

	r := NewRouter(RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{SessionUC: api.sessionUC, Logger: logger}),
		LocationHandler: handler.NewLocationHandler(handler.LocationHandlerParams{
			LocationUC: api.locationUC,
		}),
		CatalogHandler: handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUC: api.catalogUC}),
		SubmissionHandler: handler.NewSubmissionHandler(handler.SubmissionHandlerParams{
			SubmissionUC: api.submissionUC,
		}),
		ReviewHandler:  handler.NewReviewHandler(handler.ReviewHandlerParams{ReviewUC: api.reviewUC}),
		AdminHandler:   handler.NewAdminHandler(handler.AdminHandlerParams{AdminUC: api.adminUC, Logger: logger}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{SessionUC: api.sessionUC}),
		Metrics:        metrics.NewRecorderWithRegistry(registry, registry),
		Config:         cfg,
	})
	r.RegisterRoutes(e)
	api.echo = e

	return api
}

// signIn makes the session mock resolve the token to the identity.
func (a *testAPI) signIn(token string, identity *entity.Identity) {
	a.sessionUC.EXPECT().Authenticate(mock.Anything, token).Return(identity, nil)
}

func (a *testAPI) do(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestRouter_HealthCheck(t *testing.T) {
	api := newTestAPI(t, nil)

	rec := api.do(httptest.NewRequest(http.MethodGet, "/health", nil), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	api := newTestAPI(t, &config.Config{Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"}})

	rec := api.do(httptest.NewRequest(http.MethodGet, "/metrics", nil), "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_MetricsDisabled(t *testing.T) {
	api := newTestAPI(t, nil)

	rec := api.do(httptest.NewRequest(http.MethodGet, "/metrics", nil), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_Authentication(t *testing.T) {
	t.Run("missing bearer token", func(t *testing.T) {
		api := newTestAPI(t, nil)

		rec := api.do(httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil), "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decode(t, rec)
		require.NotNil(t, body.Error)
		assert.Equal(t, "UNAUTHENTICATED", body.Error.Code)
		assert.NotEmpty(t, body.Meta.RequestID)
	})

	t.Run("rejected token", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.sessionUC.EXPECT().Authenticate(mock.Anything, "expired").
			Return(nil, domainerrors.ErrUnauthenticated.WrapMessage("token expired"))

		rec := api.do(httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil), "expired")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHENTICATED", decode(t, rec).Error.Code)
	})

	t.Run("identity reaches the usecase context", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.signIn(partnerToken, api.partner)
		api.locationUC.EXPECT().Dashboard(mock.Anything, api.partner).
			RunAndReturn(func(ctx context.Context, identity *entity.Identity) ([]*usecase.LocationOverview, error) {
				assert.Same(t, api.partner, deliverycontext.GetIdentityFromContext(ctx))
				assert.NotEmpty(t, deliverycontext.GetRequestIDFromContext(ctx))

				return []*usecase.LocationOverview{}, nil
			})

		rec := api.do(httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil), partnerToken)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRouter_Dashboard(t *testing.T) {
	api := newTestAPI(t, nil)
	api.signIn(partnerToken, api.partner)
	api.locationUC.EXPECT().Dashboard(mock.Anything, api.partner).Return([]*usecase.LocationOverview{
		{
			Location: &entity.Location{ID: "L", PartnerID: "P", Name: "Mitte"},
			Progress: entity.NewProgress(1, 2),
		},
	}, nil)

	rec := api.do(httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil), partnerToken)

	require.Equal(t, http.StatusOK, rec.Code)
	var overviews []struct {
		Location struct {
			ID string `json:"id"`
		} `json:"location"`
		Progress entity.Progress `json:"progress"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &overviews))
	require.Len(t, overviews, 1)
	assert.Equal(t, "L", overviews[0].Location.ID)
	assert.Equal(t, entity.Progress{Total: 2, Approved: 1, Percentage: 50}, overviews[0].Progress)
}

func TestRouter_UnhandledErrorIsHidden(t *testing.T) {
	api := newTestAPI(t, nil)
	api.signIn(partnerToken, api.partner)
	api.locationUC.EXPECT().Dashboard(mock.Anything, api.partner).
		Return(nil, errors.New("connection refused"))

	rec := api.do(httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil), partnerToken)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "INTERNAL", body.Error.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestRouter_LocationDetail(t *testing.T) {
	api := newTestAPI(t, nil)
	api.signIn(partnerToken, api.partner)
	api.locationUC.EXPECT().GetLocationDetail(mock.Anything, api.partner, "P", "L").Return(&usecase.LocationDetail{
		Location: &entity.Location{ID: "L", PartnerID: "P"},
		Progress: entity.NewProgress(0, 3),
	}, nil)

	rec := api.do(httptest.NewRequest(http.MethodGet, "/api/v1/partners/P/locations/L", nil), partnerToken)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_LocationDetailDenied(t *testing.T) {
	api := newTestAPI(t, nil)
	api.signIn(partnerToken, api.partner)
	api.locationUC.EXPECT().GetLocationDetail(mock.Anything, api.partner, "other", "L").
		Return(nil, domainerrors.ErrPermissionDenied)

	rec := api.do(httptest.NewRequest(http.MethodGet, "/api/v1/partners/other/locations/L", nil), partnerToken)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "PERMISSION_DENIED", decode(t, rec).Error.Code)
}

func TestRouter_LocationQR(t *testing.T) {
	api := newTestAPI(t, nil)
	api.signIn(partnerToken, api.partner)
	png := []byte{0x89, 'P', 'N', 'G'}
	api.locationUC.EXPECT().GenerateLocationQR(mock.Anything, api.partner, "P", "L").Return(png, nil)

	rec := api.do(httptest.NewRequest(http.MethodGet, "/api/v1/partners/P/locations/L/qr", nil), partnerToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestRouter_NearbyLocations(t *testing.T) {
	t.Run("reviewer", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.signIn(reviewerToken, api.reviewer)
		api.locationUC.EXPECT().FindNearbyLocations(mock.Anything, api.reviewer, &usecase.NearbyQuery{
			Latitude:  52.5163,
			Longitude: 13.3777,
			RadiusKm:  30,
		}).Return([]*usecase.NearbyLocation{{Location: &entity.Location{ID: "loc_berlin_mitte"}, DistanceKm: 0.2}}, nil)

		rec := api.do(httptest.NewRequest(http.MethodGet,
			"/api/v1/locations/nearby?lat=52.5163&lng=13.3777&radiusKm=30", nil), reviewerToken)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("latitude out of range", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.signIn(reviewerToken, api.reviewer)

		rec := api.do(httptest.NewRequest(http.MethodGet, "/api/v1/locations/nearby?lat=123&lng=13", nil), reviewerToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		assert.Equal(t, "lte", body.Error.Details["lat"])
	})

	t.Run("partner is denied", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.signIn(partnerToken, api.partner)

		rec := api.do(httptest.NewRequest(http.MethodGet, "/api/v1/locations/nearby?lat=52&lng=13", nil), partnerToken)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestRouter_ViewerLocationIsPublic(t *testing.T) {
	api := newTestAPI(t, nil)
	api.locationUC.EXPECT().FindLocationByID(mock.Anything, "loc_berlin_mitte").
		Return(&entity.Location{ID: "loc_berlin_mitte", Name: "JustSmashed Berlin Mitte"}, nil)
	api.locationUC.EXPECT().FindLocationByID(mock.Anything, "missing").
		Return(nil, domainerrors.ErrLocationNotFound)

	rec := api.do(httptest.NewRequest(http.MethodGet, "/viewer/locations/loc_berlin_mitte", nil), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "JustSmashed Berlin Mitte")

	rec = api.do(httptest.NewRequest(http.MethodGet, "/viewer/locations/missing", nil), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "LOCATION_NOT_FOUND", decode(t, rec).Error.Code)
}

func TestRouter_Catalog(t *testing.T) {
	api := newTestAPI(t, nil)
	api.signIn(partnerToken, api.partner)
	api.catalogUC.EXPECT().ListBrands(mock.Anything).Return([]*entity.Brand{{ID: "justsmashed", Name: "JustSmashed"}}, nil)
	api.catalogUC.EXPECT().GetBrandCatalog(mock.Anything, "unknown").Return(nil, domainerrors.ErrBrandNotFound)

	rec := api.do(httptest.NewRequest(http.MethodGet, "/api/v1/brands", nil), partnerToken)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(httptest.NewRequest(http.MethodGet, "/api/v1/brands/unknown", nil), partnerToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.sessionUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "owner@example.com", Password: "secret"}).
			Return(&usecase.LoginOutput{Token: "jwt", Identity: api.partner}, nil)

		rec := api.do(jsonRequest(http.MethodPost, "/auth/login",
			`{"email":"owner@example.com","password":"secret"}`), "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"token":"jwt"`)
	})

	t.Run("invalid email", func(t *testing.T) {
		api := newTestAPI(t, nil)

		rec := api.do(jsonRequest(http.MethodPost, "/auth/login", `{"email":"nope","password":"secret"}`), "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		assert.Equal(t, "email", body.Error.Details["email"])
	})

	t.Run("unsupported provider", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.sessionUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrLoginUnsupported)

		rec := api.do(jsonRequest(http.MethodPost, "/auth/login",
			`{"email":"owner@example.com","password":"secret"}`), "")

		assert.Equal(t, http.StatusNotImplemented, rec.Code)
	})
}

func TestRouter_Me(t *testing.T) {
	api := newTestAPI(t, nil)
	api.signIn(partnerToken, api.partner)
	api.sessionUC.EXPECT().Me(mock.Anything, api.partner).Return(&usecase.MeOutput{Identity: api.partner}, nil)

	rec := api.do(httptest.NewRequest(http.MethodGet, "/api/v1/me", nil), partnerToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"uid":"partner-uid"`)
}

func multipartUpload(t *testing.T, fields map[string]string, fileName, contentType string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	if content != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
		header.Set("Content-Type", contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/submissions", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	return req
}

var uploadFields = map[string]string{
	"partnerId":     "P",
	"locationId":    "L",
	"brandId":       "B",
	"itemId":        "item1",
	"requirementId": "req1",
}

func TestRouter_Upload(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.signIn(partnerToken, api.partner)
		photo := []byte("jpeg-bytes")
		created := &entity.Submission{
			ID:        "sub-1",
			PartnerID: "P",
			Status:    entity.SubmissionStatusSubmitted,
			CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		}
		api.submissionUC.EXPECT().Upload(mock.Anything, api.partner, mock.MatchedBy(func(input *usecase.UploadInput) bool {
			body, err := io.ReadAll(input.Body)

			return err == nil &&
				bytes.Equal(body, photo) &&
				input.Key == entity.SubmissionKey{
					PartnerID: "P", LocationID: "L", BrandID: "B", ItemID: "item1", RequirementID: "req1",
				} &&
				input.FileName == "burger.jpg" &&
				input.ContentType == "image/jpeg" &&
				input.Size == int64(len(photo)) &&
				input.IdempotencyKey == "retry-1"
		})).Return(created, nil)

		req := multipartUpload(t, uploadFields, "burger.jpg", "image/jpeg", photo)
		req.Header.Set(handler.HeaderIdempotencyKey, "retry-1")
		rec := api.do(req, partnerToken)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":"sub-1"`)
	})

	t.Run("missing file", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.signIn(partnerToken, api.partner)

		rec := api.do(multipartUpload(t, uploadFields, "", "", nil), partnerToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "FILE_REQUIRED", decode(t, rec).Error.Code)
	})

	t.Run("body above the upload limit", func(t *testing.T) {
		api := newTestAPI(t, &config.Config{Storage: &config.StorageConfig{MaxUploadSize: "1KB"}})
		api.signIn(partnerToken, api.partner)

		rec := api.do(multipartUpload(t, uploadFields, "big.jpg", "image/jpeg", make([]byte, 200*1024)), partnerToken)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("usecase rejects the photo", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.signIn(partnerToken, api.partner)
		api.submissionUC.EXPECT().Upload(mock.Anything, api.partner, mock.Anything).
			Return(nil, domainerrors.ErrInvalidArgument.WrapMessage("photo must be an image"))

		rec := api.do(multipartUpload(t, uploadFields, "notes.txt", "text/plain", []byte("hello")), partnerToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ARGUMENT", decode(t, rec).Error.Code)
	})
}

func TestRouter_Submissions(t *testing.T) {
	t.Run("latest by key", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.signIn(partnerToken, api.partner)
		key := entity.SubmissionKey{PartnerID: "P", LocationID: "L", BrandID: "B", ItemID: "item1", RequirementID: "req1"}
		api.submissionUC.EXPECT().LatestSubmissionFor(mock.Anything, api.partner, key).
			Return(&entity.Submission{ID: "sub-2", Status: entity.SubmissionStatusApproved}, nil)

		rec := api.do(httptest.NewRequest(http.MethodGet,
			"/api/v1/submissions/latest?partnerId=P&locationId=L&brandId=B&itemId=item1&requirementId=req1", nil), partnerToken)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"approved"`)
	})

	t.Run("get by id", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.signIn(partnerToken, api.partner)
		api.submissionUC.EXPECT().GetSubmission(mock.Anything, api.partner, "missing").
			Return(nil, domainerrors.ErrSubmissionNotFound)

		rec := api.do(httptest.NewRequest(http.MethodGet, "/api/v1/submissions/missing", nil), partnerToken)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("requirement statuses", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.signIn(partnerToken, api.partner)
		api.submissionUC.EXPECT().RequirementStatuses(mock.Anything, api.partner, "P", "L", "item1").
			Return([]*usecase.RequirementStatus{{
				Requirement: &entity.Requirement{ID: "req1"},
				Status:      entity.SubmissionStatusNone,
			}}, nil)

		rec := api.do(httptest.NewRequest(http.MethodGet,
			"/api/v1/partners/P/locations/L/items/item1/requirements", nil), partnerToken)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"none"`)
	})

	t.Run("photo stream", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.signIn(partnerToken, api.partner)
		api.submissionUC.EXPECT().OpenPhoto(mock.Anything, api.partner, "sub-1").Return(&usecase.Photo{
			Body:        io.NopCloser(strings.NewReader("jpeg-bytes")),
			ContentType: "image/jpeg",
			FileName:    "burger.jpg",
		}, nil)

		rec := api.do(httptest.NewRequest(http.MethodGet, "/api/v1/submissions/sub-1/photo", nil), partnerToken)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/jpeg", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "inline; filename=burger.jpg", rec.Header().Get(echo.HeaderContentDisposition))
		assert.Equal(t, "jpeg-bytes", rec.Body.String())
	})
}

func TestRouter_Review(t *testing.T) {
	t.Run("pending queue", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.signIn(reviewerToken, api.reviewer)
		api.reviewUC.EXPECT().ListPending(mock.Anything, api.reviewer).Return([]*usecase.PendingSubmission{{
			Submission: &entity.Submission{ID: "sub-1", Status: entity.SubmissionStatusSubmitted},
			ItemName:   "Classic Smash",
		}}, nil)

		rec := api.do(httptest.NewRequest(http.MethodGet, "/api/v1/review/pending", nil), reviewerToken)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"item_name":"Classic Smash"`)
		assert.Contains(t, rec.Body.String(), `"id":"sub-1"`)
	})

	t.Run("partner cannot open the queue", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.signIn(partnerToken, api.partner)

		rec := api.do(httptest.NewRequest(http.MethodGet, "/api/v1/review/pending", nil), partnerToken)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "PERMISSION_DENIED", decode(t, rec).Error.Code)
	})

	t.Run("reject with comment", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.signIn(reviewerToken, api.reviewer)
		api.reviewUC.EXPECT().Decide(mock.Anything, api.reviewer, &usecase.DecideInput{
			SubmissionID: "sub-1",
			Decision:     entity.DecisionReject,
			Comment:      "blurry",
		}).Return(&entity.Submission{ID: "sub-1", Status: entity.SubmissionStatusRejected, ReviewComment: "blurry"}, nil)

		rec := api.do(jsonRequest(http.MethodPost, "/api/v1/review/sub-1/decision",
			`{"decision":"reject","comment":"blurry"}`), reviewerToken)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"rejected"`)
	})

	t.Run("unknown decision", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.signIn(reviewerToken, api.reviewer)

		rec := api.do(jsonRequest(http.MethodPost, "/api/v1/review/sub-1/decision", `{"decision":"maybe"}`), reviewerToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		assert.Equal(t, "oneof", body.Error.Details["decision"])
	})

	t.Run("already reviewed", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.signIn(adminToken, api.admin)
		api.reviewUC.EXPECT().Decide(mock.Anything, api.admin, mock.Anything).
			Return(nil, domainerrors.ErrSubmissionAlreadyReviewed)

		rec := api.do(jsonRequest(http.MethodPost, "/api/v1/review/sub-1/decision", `{"decision":"approve"}`), adminToken)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestRouter_AdminCreateUser(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.signIn(adminToken, api.admin)
		api.adminUC.EXPECT().CreateUser(mock.Anything, api.admin, &usecase.CreateUserInput{
			Email:       "owner@example.com",
			Role:        entity.RolePartner,
			PartnerID:   "P",
			LocationIDs: []string{"L"},
		}).Return(&usecase.CreateUserOutput{UID: "uid-1", TempPassword: "Temp-Pass-123"}, nil)

		rec := api.do(jsonRequest(http.MethodPost, "/api/v1/admin/users",
			`{"email":"owner@example.com","role":"partner","partnerId":"P","locationIds":["L"]}`), adminToken)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var output usecase.CreateUserOutput
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &output))
		assert.Equal(t, usecase.CreateUserOutput{UID: "uid-1", TempPassword: "Temp-Pass-123"}, output)
	})

	t.Run("partner without locations", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.signIn(adminToken, api.admin)
		api.adminUC.EXPECT().CreateUser(mock.Anything, api.admin, mock.Anything).
			Return(nil, domainerrors.ErrInvalidArgument.WrapMessage("partner users need at least one location"))

		rec := api.do(jsonRequest(http.MethodPost, "/api/v1/admin/users",
			`{"email":"owner@example.com","role":"partner","partnerId":"P","locationIds":[]}`), adminToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ARGUMENT", decode(t, rec).Error.Code)
	})

	t.Run("already exists", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.signIn(adminToken, api.admin)
		api.adminUC.EXPECT().CreateUser(mock.Anything, api.admin, mock.Anything).
			Return(nil, domainerrors.ErrUserAlreadyExists)

		rec := api.do(jsonRequest(http.MethodPost, "/api/v1/admin/users",
			`{"email":"owner@example.com","role":"reviewer"}`), adminToken)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "ALREADY_EXISTS", decode(t, rec).Error.Code)
	})

	t.Run("reviewer is denied", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.signIn(reviewerToken, api.reviewer)

		rec := api.do(jsonRequest(http.MethodPost, "/api/v1/admin/users", `{"email":"a@b.c","role":"admin"}`), reviewerToken)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestRouter_AdminProvisioning(t *testing.T) {
	t.Run("create location binds the partner from the path", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.signIn(adminToken, api.admin)
		lat, lng := 52.5163, 13.3777
		api.adminUC.EXPECT().CreateLocation(mock.Anything, api.admin, &usecase.CreateLocationInput{
			PartnerID: "p_justfood_gmbh",
			ID:        "loc_berlin_mitte",
			Name:      "JustSmashed Berlin Mitte",
			Latitude:  &lat,
			Longitude: &lng,
		}).Return(&entity.Location{ID: "loc_berlin_mitte", PartnerID: "p_justfood_gmbh"}, nil)

		rec := api.do(jsonRequest(http.MethodPost, "/api/v1/admin/partners/p_justfood_gmbh/locations",
			`{"id":"loc_berlin_mitte","name":"JustSmashed Berlin Mitte","latitude":52.5163,"longitude":13.3777}`), adminToken)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("create partner requires a name", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.signIn(adminToken, api.admin)

		rec := api.do(jsonRequest(http.MethodPost, "/api/v1/admin/partners", `{"id":"p1"}`), adminToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "required", decode(t, rec).Error.Details["name"])
	})

	t.Run("upsert profile binds the uid from the path", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.signIn(adminToken, api.admin)
		api.adminUC.EXPECT().UpsertUserProfile(mock.Anything, api.admin, &usecase.UpsertUserProfileInput{
			UID:  "uid-7",
			Role: entity.RoleReviewer,
		}).Return(&entity.UserProfile{ID: "uid-7", Role: entity.RoleReviewer}, nil)

		rec := api.do(jsonRequest(http.MethodPut, "/api/v1/admin/users/uid-7/profile", `{"role":"reviewer"}`), adminToken)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("create requirement binds brand and item from the path", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.signIn(adminToken, api.admin)
		api.adminUC.EXPECT().CreateRequirement(mock.Anything, api.admin, &usecase.CreateRequirementInput{
			BrandID: "justsmashed",
			ItemID:  "classic_smash",
			ID:      "built_straight",
			Title:   "Built straight",
		}).Return(&entity.Requirement{ID: "built_straight"}, nil)

		rec := api.do(jsonRequest(http.MethodPost, "/api/v1/admin/brands/justsmashed/items/classic_smash/requirements",
			`{"id":"built_straight","title":"Built straight"}`), adminToken)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("list partners and users", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.signIn(adminToken, api.admin)
		api.adminUC.EXPECT().ListPartnersWithLocations(mock.Anything, api.admin).Return([]*entity.PartnerWithLocations{}, nil)
		api.adminUC.EXPECT().ListUsers(mock.Anything, api.admin).Return([]*entity.UserProfile{}, nil)

		rec := api.do(httptest.NewRequest(http.MethodGet, "/api/v1/admin/partners", nil), adminToken)
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = api.do(httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", nil), adminToken)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestUploadBodyLimit(t *testing.T) {
	assert.Equal(t, "1065536B", uploadBodyLimit("1MB"))
	assert.Equal(t, "garbage", uploadBodyLimit("garbage"))
}

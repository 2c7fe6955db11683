package main

import (
	"bytes"
	"context"
	"testing"

	"photoverify/internal/domain/entity"
	mockUsecase "photoverify/internal/mocks/usecase"
	"photoverify/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClaims(t *testing.T) {
	tests := []struct {
		name      string
		role      string
		partner   string
		locations string
		want      entity.Claims
		wantErr   string
	}{
		{
			name:      "partner with locations",
			role:      "partner",
			partner:   "p_justfood_gmbh",
			locations: "loc_berlin_mitte, loc_munich_center,",
			want: entity.Claims{
				Role:        entity.RolePartner,
				PartnerID:   "p_justfood_gmbh",
				LocationIDs: []string{"loc_berlin_mitte", "loc_munich_center"},
			},
		},
		{
			name:      "reviewer ignores partner scope",
			role:      "Reviewer",
			partner:   "p1",
			locations: "l1",
			want:      entity.Claims{Role: entity.RoleReviewer},
		},
		{name: "unknown role", role: "owner", wantErr: "--role"},
		{name: "partner without partner id", role: "partner", locations: "l1", wantErr: "--partner"},
		{name: "partner without locations", role: "partner", partner: "p1", locations: " , ", wantErr: "--locations"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := parseClaims(tt.role, tt.partner, tt.locations)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, claims)
		})
	}
}

func TestFormatSeedResult(t *testing.T) {
	got := formatSeedResult(&usecase.SeedResult{Brands: 1, MenuItems: 13, Requirements: 21, Partners: 1, Locations: 2})

	assert.Equal(t, "Seed completed: 1 brands, 13 menu items, 21 requirements, 1 partners, 2 locations written", got)
}

func TestSeed(t *testing.T) {
	provisioningUC := mockUsecase.NewMockProvisioningUsecase(t)
	ctx := context.Background()
	var out bytes.Buffer

	provisioningUC.EXPECT().Seed(ctx).
		Return(&usecase.SeedResult{Brands: 1, MenuItems: 13, Requirements: 21, Partners: 1, Locations: 2}, nil)

	require.NoError(t, seed(ctx, provisioningUC, &out))
	assert.Equal(t, "Seed completed: 1 brands, 13 menu items, 21 requirements, 1 partners, 2 locations written\n", out.String())
}

func TestSeed_Failure(t *testing.T) {
	provisioningUC := mockUsecase.NewMockProvisioningUsecase(t)
	ctx := context.Background()
	var out bytes.Buffer

	provisioningUC.EXPECT().Seed(ctx).Return(nil, assert.AnError)

	assert.ErrorIs(t, seed(ctx, provisioningUC, &out), assert.AnError)
	assert.Empty(t, out.String())
}

func TestSetClaims(t *testing.T) {
	provisioningUC := mockUsecase.NewMockProvisioningUsecase(t)
	ctx := context.Background()
	claims := entity.Claims{Role: entity.RolePartner, PartnerID: "p1", LocationIDs: []string{"l1", "l2"}}
	var out bytes.Buffer

	provisioningUC.EXPECT().SetClaims(ctx, "partner@example.com", claims).Return("uid-7", nil)

	require.NoError(t, setClaims(ctx, provisioningUC, "partner@example.com", claims, &out))
	assert.Equal(t, "Claims set for partner@example.com (uid uid-7): role=partner partner=p1 locations=l1,l2\n", out.String())
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"photoverify/internal/domain/entity"
	"photoverify/internal/usecase"

	"github.com/pkg/errors"
)

// parseClaims builds claims from the set-claims flags. Locations are a comma separated list.
func parseClaims(role, partnerID, locations string) (entity.Claims, error) {
	claims := entity.Claims{Role: entity.Role(strings.ToLower(strings.TrimSpace(role)))}
	if !claims.Role.IsValid() {
		return entity.Claims{}, errors.Errorf("--role must be one of partner, reviewer, admin, got %q", role)
	}

	if claims.Role != entity.RolePartner {
		return claims, nil
	}

	claims.PartnerID = strings.TrimSpace(partnerID)
	if claims.PartnerID == "" {
		return entity.Claims{}, errors.New("--partner flag is required for the partner role")
	}
	for _, locationID := range strings.Split(locations, ",") {
		if locationID = strings.TrimSpace(locationID); locationID != "" {
			claims.LocationIDs = append(claims.LocationIDs, locationID)
		}
	}
	if len(claims.LocationIDs) == 0 {
		return entity.Claims{}, errors.New("--locations flag needs at least one location for the partner role")
	}

	return claims, nil
}

func runSetClaims(ctx context.Context, email string, claims entity.Claims) error {
	return withProvisioning(ctx, func(provisioningUC usecase.ProvisioningUsecase) error {
		return setClaims(ctx, provisioningUC, email, claims, os.Stdout)
	})
}

func setClaims(
	ctx context.Context,
	provisioningUC usecase.ProvisioningUsecase,
	email string,
	claims entity.Claims,
	out io.Writer,
) error {
	uid, err := provisioningUC.SetClaims(ctx, email, claims)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "Claims set for %s (uid %s): role=%s partner=%s locations=%s\n",
		email, uid, claims.Role, claims.PartnerID, strings.Join(claims.LocationIDs, ","))

	return err
}

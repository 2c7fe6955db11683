package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"photoverify/internal/usecase"
)

func runSeed(ctx context.Context) error {
	return withProvisioning(ctx, func(provisioningUC usecase.ProvisioningUsecase) error {
		return seed(ctx, provisioningUC, os.Stdout)
	})
}

func seed(ctx context.Context, provisioningUC usecase.ProvisioningUsecase, out io.Writer) error {
	result, err := provisioningUC.Seed(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, formatSeedResult(result))

	return err
}

func formatSeedResult(result *usecase.SeedResult) string {
	return fmt.Sprintf("Seed completed: %d brands, %d menu items, %d requirements, %d partners, %d locations written",
		result.Brands, result.MenuItems, result.Requirements, result.Partners, result.Locations)
}

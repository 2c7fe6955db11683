package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - seed:       Write the default brand catalog and demo partner
// - set-claims: Set role, partner and locations on an existing identity

func main() {
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	setClaimsCmd := flag.NewFlagSet("set-claims", flag.ExitOnError)

	claimsEmail := setClaimsCmd.String("email", "", "Email of the identity to update")
	claimsRole := setClaimsCmd.String("role", "", "Role to grant (partner, reviewer, admin)")
	claimsPartner := setClaimsCmd.String("partner", "", "Partner id, required for the partner role")
	claimsLocations := setClaimsCmd.String("locations", "", "Comma separated location ids of the partner")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	flags := adminFlags{
		Seed: seedFlags{cmd: seedCmd},
		SetClaims: setClaimsFlags{
			cmd:       setClaimsCmd,
			email:     claimsEmail,
			role:      claimsRole,
			partner:   claimsPartner,
			locations: claimsLocations,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type adminFlags struct {
	Seed      seedFlags
	SetClaims setClaimsFlags
}

type seedFlags struct {
	cmd *flag.FlagSet
}

type setClaimsFlags struct {
	cmd       *flag.FlagSet
	email     *string
	role      *string
	partner   *string
	locations *string
}

func runSubcommand(ctx context.Context, flags *adminFlags) error {
	switch os.Args[1] {
	case "seed":
		return handleSeed(ctx, flags)
	case "set-claims":
		return handleSetClaims(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleSeed(ctx context.Context, flags *adminFlags) error {
	if err := flags.Seed.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse seed flags")
	}

	return runSeed(ctx)
}

func handleSetClaims(ctx context.Context, flags *adminFlags) error {
	if err := flags.SetClaims.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse set-claims flags")
	}

	if *flags.SetClaims.email == "" {
		return errors.New("--email flag is required for set-claims command")
	}

	claims, err := parseClaims(*flags.SetClaims.role, *flags.SetClaims.partner, *flags.SetClaims.locations)
	if err != nil {
		return err
	}

	return runSetClaims(ctx, *flags.SetClaims.email, claims)
}

func printUsage() {
	fmt.Println("Usage: admin <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  seed        Write the default brand catalog and demo partner")
	fmt.Println("  set-claims  Set role, partner and locations on an existing identity")
	fmt.Println("")
	fmt.Println("Use 'admin <command> -h' for more information about a command.")
}

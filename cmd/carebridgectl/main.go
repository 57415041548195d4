package main

import (
	"fmt"
	"os"

	"github.com/aussiebroadwan/carebridge/pkg/portalsdk"
)

// Version is set at build time
var Version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	cli := &CLI{
		SDK:     portalsdk.NewSDKClient(getEnv("CAREBRIDGE_URL", "http://localhost:8080")),
		Token:   os.Getenv("CAREBRIDGE_TOKEN"),
		Address: os.Getenv("CAREBRIDGE_ADDRESS"),
	}

	var err error
	switch cmd {
	case "health":
		err = cli.healthCommand(args)
	case "role":
		err = cli.roleCommand(args)
	case "nav", "navigation":
		err = cli.navCommand(args)
	case "page":
		err = cli.pageCommand(args)
	case "contracts":
		err = cli.contractsCommand(args)
	case "campaign", "campaigns":
		err = cli.campaignCommand(args)
	case "balance":
		err = cli.balanceCommand(args)
	case "login":
		err = cli.loginCommand(args)
	case "activity":
		err = cli.activityCommand(args)
	case "dispatch":
		err = cli.dispatchCommand(args)
	case "keygen":
		err = cli.keygenCommand(args)
	case "version":
		fmt.Printf("carebridgectl %s\n", Version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`carebridgectl - careBridge portal command line interface

Usage:
  carebridgectl <command> [subcommand] [options]

Environment Variables:
  CAREBRIDGE_URL      Base URL of the portal (default: http://localhost:8080)
  CAREBRIDGE_TOKEN    Wallet session token (see login)
  CAREBRIDGE_ADDRESS  Wallet address the token was issued to

Commands:
  health      Check portal health
    live      Liveness check
    ready     Readiness check (default)

  role        Resolve the role of an address
    <address>

  nav         Show the navigation menu
    [--role=ROLE] [--address=ADDR]

  page        Resolve a front-end route
    <path> [--address=ADDR]

  contracts   Show the deployed contracts

  campaign    Read campaigns
    list      [--status=STATUS]
    get       <id>
    docs      <id>

  balance     Show a verifier's withdrawable fees
    <address>

  login       Sign a challenge and print a session token
    --key-file=PATH   File holding a hex private key

  activity    List the session wallet's recent dispatches
    [--limit=N]

  dispatch    Run an action for the session wallet
    <kind> --data=JSON | --file=PATH

  keygen      Generate key files
    session --out=PATH   Ed25519 session signing key (PORTAL_SESSION_KEY_FILE)
    wallet  --out=PATH   Unencrypted secp256k1 wallet key for login

  version     Show CLI version
  help        Show this help

Examples:
  # Who is this wallet?
  carebridgectl role 0x1000000000000000000000000000000000000001

  # List active campaigns
  carebridgectl campaign list --status=active

  # Create a test wallet, open a session and donate
  carebridgectl keygen wallet --out=./wallet.key
  eval $(carebridgectl login --key-file=./wallet.key)
  carebridgectl dispatch donate --data='{"campaignId":0,"amount":"0.05"}'
`)
}

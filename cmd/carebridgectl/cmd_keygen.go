package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aussiebroadwan/carebridge/pkg/cryptox"
)

// ---- Key Generation ----

func (c *CLI) keygenCommand(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: carebridgectl keygen <session|wallet> --out=PATH")
	}

	sub := args[0]
	opts := parseArgs(args[1:])
	out, ok := opts["out"]
	if !ok {
		return fmt.Errorf("--out is required")
	}

	switch sub {
	case "session":
		pemKey, err := cryptox.GenerateEd25519Key()
		if err != nil {
			return err
		}
		if err := cryptox.WriteKeyFile(out, pemKey); err != nil {
			return err
		}
		kid := strings.TrimSuffix(filepath.Base(out), filepath.Ext(out))
		fmt.Printf("Session signing key written to %s (kid %s)\n", out, kid)
		fmt.Printf("Set PORTAL_SESSION_KEY_FILE=%s to use it\n", out)
		return nil

	case "wallet":
		hexKey, addr, err := cryptox.GenerateWalletKey()
		if err != nil {
			return err
		}
		if err := cryptox.WriteKeyFile(out, []byte(hexKey+"\n")); err != nil {
			return err
		}
		fmt.Printf("Wallet key written to %s\n", out)
		fmt.Printf("Address: %s\n", addr.Hex())
		fmt.Fprintln(os.Stderr, "This key is unencrypted; use it for test networks only")
		return nil

	default:
		return fmt.Errorf("unknown keygen subcommand: %s", sub)
	}
}

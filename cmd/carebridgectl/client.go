package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aussiebroadwan/carebridge/pkg/portalsdk"
)

// CLI holds the client configuration
type CLI struct {
	SDK     *portalsdk.SDKClient
	Token   string
	Address string
}

func (c *CLI) session() (*portalsdk.Session, error) {
	if c.Token == "" {
		return nil, fmt.Errorf("CAREBRIDGE_TOKEN is not set; run carebridgectl login first")
	}
	return c.SDK.NewSessionFromToken(c.Address, c.Token, time.Time{}), nil
}

// ---- Utility Functions ----

func parseArgs(args []string) map[string]string {
	opts := make(map[string]string)
	for _, arg := range args {
		if strings.HasPrefix(arg, "--") {
			parts := strings.SplitN(strings.TrimPrefix(arg, "--"), "=", 2)
			if len(parts) == 2 {
				opts[parts[0]] = parts[1]
			} else {
				opts[parts[0]] = "true"
			}
		}
	}
	return opts
}

// positional returns the arguments that are not --options.
func positional(args []string) []string {
	var out []string
	for _, arg := range args {
		if !strings.HasPrefix(arg, "--") {
			out = append(out, arg)
		}
	}
	return out
}

func prettyPrint(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Minute)
}

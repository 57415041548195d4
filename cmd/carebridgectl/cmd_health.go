package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/aussiebroadwan/carebridge/pkg/portalsdk"
)

// ---- Health Commands ----

func (c *CLI) healthCommand(args []string) error {
	sub := "ready"
	if len(args) > 0 {
		sub = args[0]
	}

	ctx, cancel := ctx()
	defer cancel()

	var (
		resp *portalsdk.HealthResponse
		err  error
	)
	switch sub {
	case "live":
		resp, err = c.SDK.GetLiveness(ctx)
	case "ready":
		resp, err = c.SDK.GetReadiness(ctx)
	default:
		return fmt.Errorf("unknown health subcommand: %s", sub)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Status: %s\n", resp.Status)
	if len(resp.Checks) == 0 {
		return nil
	}

	names := make([]string, 0, len(resp.Checks))
	for name := range resp.Checks {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\nCHECK\tRESULT")
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%s\n", name, resp.Checks[name])
	}
	return w.Flush()
}

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/aussiebroadwan/carebridge/pkg/portalsdk"
)

// ---- Role, Navigation and Page Commands ----

func (c *CLI) roleCommand(args []string) error {
	pos := positional(args)
	if len(pos) < 1 {
		return fmt.Errorf("usage: carebridgectl role <address>")
	}

	ctx, cancel := ctx()
	defer cancel()

	resp, err := c.SDK.GetRole(ctx, pos[0])
	if err != nil {
		return err
	}
	fmt.Println(resp.Role)
	return nil
}

func (c *CLI) navCommand(args []string) error {
	opts := parseArgs(args)

	ctx, cancel := ctx()
	defer cancel()

	var (
		resp *portalsdk.NavigationResponse
		err  error
	)
	if role, ok := opts["role"]; ok {
		resp, err = c.SDK.GetNavigationForRole(ctx, role)
	} else {
		resp, err = c.SDK.GetNavigation(ctx, opts["address"])
	}
	if err != nil {
		return err
	}

	fmt.Printf("Role: %s\n\n", resp.Role)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TITLE\tPATH\tICON")
	for _, item := range resp.Items {
		printNavItem(w, item, "")
	}
	return w.Flush()
}

func printNavItem(w *tabwriter.Writer, item portalsdk.NavItem, indent string) {
	path := item.Path
	if item.Type == portalsdk.NavTypeDropdown {
		path = "▾"
	}
	fmt.Fprintf(w, "%s%s\t%s\t%s\n", indent, item.Title, path, item.Icon)
	for _, child := range item.Items {
		printNavItem(w, child, indent+"  ")
	}
}

func (c *CLI) pageCommand(args []string) error {
	opts := parseArgs(args)
	pos := positional(args)
	path := "/"
	if len(pos) > 0 {
		path = pos[0]
	}

	ctx, cancel := ctx()
	defer cancel()

	resp, err := c.SDK.GetPage(ctx, path, opts["address"])
	if err != nil {
		return err
	}
	return prettyPrint(resp)
}

func (c *CLI) contractsCommand(_ []string) error {
	ctx, cancel := ctx()
	defer cancel()

	info, err := c.SDK.GetContracts(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Chain ID:     %d\n", info.ChainID)
	fmt.Printf("Registry:     %s\n", info.Registry)
	fmt.Printf("Crowdfunding: %s\n\n", info.Crowdfunding)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ENTRY POINT\tDESCRIPTION")
	for _, ep := range info.EntryPoints {
		fmt.Fprintf(w, "%s\t%s\n", ep.Name, ep.Description)
	}
	return w.Flush()
}

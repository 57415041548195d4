package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
)

// ---- Campaign Commands ----

func (c *CLI) campaignCommand(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: carebridgectl campaign <subcommand>")
	}

	sub := args[0]
	args = args[1:]

	switch sub {
	case "list":
		return c.listCampaigns(args)
	case "get":
		if len(args) < 1 {
			return fmt.Errorf("usage: carebridgectl campaign get <id>")
		}
		return c.getCampaign(args[0])
	case "docs", "documents":
		if len(args) < 1 {
			return fmt.Errorf("usage: carebridgectl campaign docs <id>")
		}
		return c.campaignDocuments(args[0])
	default:
		return fmt.Errorf("unknown campaign subcommand: %s", sub)
	}
}

func (c *CLI) listCampaigns(args []string) error {
	opts := parseArgs(args)

	ctx, cancel := ctx()
	defer cancel()

	campaigns, err := c.SDK.ListCampaigns(ctx, opts["status"])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tPATIENT\tNEEDED (USD)\tDONATED (ETH)\tVOTES")
	for _, cp := range campaigns {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s/%s\n",
			cp.ID, cp.Status, cp.Patient, cp.AmountNeededUSD, cp.DonatedEther, cp.HealthYesVotes, cp.HealthNoVotes)
	}
	w.Flush()
	fmt.Printf("\nTotal: %d\n", len(campaigns))
	return nil
}

func (c *CLI) getCampaign(raw string) error {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("campaign id must be a non-negative integer")
	}

	ctx, cancel := ctx()
	defer cancel()

	cp, err := c.SDK.GetCampaign(ctx, id)
	if err != nil {
		return err
	}
	return prettyPrint(cp)
}

func (c *CLI) campaignDocuments(raw string) error {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("campaign id must be a non-negative integer")
	}

	ctx, cancel := ctx()
	defer cancel()

	docs, err := c.SDK.GetCampaignDocuments(ctx, id)
	if err != nil {
		return err
	}
	return prettyPrint(docs)
}

func (c *CLI) balanceCommand(args []string) error {
	pos := positional(args)
	if len(pos) < 1 {
		return fmt.Errorf("usage: carebridgectl balance <address>")
	}

	ctx, cancel := ctx()
	defer cancel()

	bal, err := c.SDK.GetVerifierBalance(ctx, pos[0])
	if err != nil {
		return err
	}
	fmt.Printf("%s ETH (%s wei)\n", bal.Ether, bal.Wei)
	return nil
}

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/aussiebroadwan/carebridge/pkg/cryptox"
)

// ---- Session Commands ----

// loginCommand prints shell exports so the result can be eval'd.
func (c *CLI) loginCommand(args []string) error {
	opts := parseArgs(args)
	path, ok := opts["key-file"]
	if !ok {
		return fmt.Errorf("--key-file is required")
	}

	key, err := cryptox.LoadWalletKey(path)
	if err != nil {
		return err
	}

	ctx, cancel := ctx()
	defer cancel()

	sess, err := c.SDK.AuthenticateWithKey(ctx, key)
	if err != nil {
		return err
	}

	fmt.Printf("export CAREBRIDGE_ADDRESS=%s\n", sess.Address())
	fmt.Printf("export CAREBRIDGE_TOKEN=%s\n", sess.AccessToken())
	fmt.Fprintf(os.Stderr, "Session valid until %s\n", sess.ExpiresAt().Local().Format("2006-01-02 15:04:05"))
	return nil
}

func (c *CLI) activityCommand(args []string) error {
	opts := parseArgs(args)
	limit := 0
	if s, ok := opts["limit"]; ok {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("--limit must be an integer")
		}
		limit = n
	}

	sess, err := c.session()
	if err != nil {
		return err
	}

	ctx, cancel := ctx()
	defer cancel()

	records, err := sess.ListActivity(ctx, limit)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tACTION\tSTATUS\tSTAGE\tTITLE\tTX")
	for _, a := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			a.CreatedAt.Local().Format("2006-01-02 15:04:05"), a.Kind, a.Status, a.Stage, a.Title, a.TxHash)
	}
	w.Flush()
	fmt.Printf("\nTotal: %d\n", len(records))
	return nil
}

func (c *CLI) dispatchCommand(args []string) error {
	pos := positional(args)
	opts := parseArgs(args)
	if len(pos) < 1 {
		return fmt.Errorf("usage: carebridgectl dispatch <kind> --data=JSON | --file=PATH")
	}

	var raw []byte
	switch {
	case opts["data"] != "":
		raw = []byte(opts["data"])
	case opts["file"] != "":
		b, err := os.ReadFile(opts["file"])
		if err != nil {
			return err
		}
		raw = b
	default:
		return fmt.Errorf("--data or --file is required")
	}

	var payload json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("payload is not valid JSON: %w", err)
	}

	sess, err := c.session()
	if err != nil {
		return err
	}

	ctx, cancel := ctx()
	defer cancel()

	res, err := sess.Dispatch(ctx, pos[0], payload)
	if err != nil {
		return err
	}
	if res.Notice != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", res.Notice.Title, res.Notice.Message)
	}
	return prettyPrint(res)
}

/*
Package portalsdk is a Go client for the careBridge portal.

# SDKClient vs Session

SDKClient covers the public read surface (health, roles, navigation, pages,
contracts, campaigns and verifier balances) and opens wallet sessions:

	client := portalsdk.NewSDKClient("http://localhost:8080")

	role, err := client.GetRole(ctx, "0xAbC...")
	nav, err := client.GetNavigationForRole(ctx, portalsdk.RoleVerifier)
	active, err := client.ListCampaigns(ctx, "active")

A Session is bound to one wallet address and is required for contract
writes and for the activity log:

	session, err := client.AuthenticateWithKey(ctx, privateKey)

	res, err := session.Dispatch(ctx, portalsdk.ActionProposeFee, map[string]any{"feeBps": 200})
	switch res.Status {
	case portalsdk.StatusSucceeded:
		fmt.Println(res.Notice.Message, res.TxHash)
	case portalsdk.StatusFailed:
		fmt.Println(res.Failure.Kind, res.Failure.Reason)
	case portalsdk.StatusBusy:
		// another dispatch of this action is still running for the wallet
	}

# Wallet sessions

AuthenticateWithKey requests a challenge, signs it with personal_sign and
exchanges the signature for a session token. Browser clients perform the
same three steps with RequestChallenge, their wallet, and EstablishSession.
The portal only dispatches for addresses whose key its operator unlocked;
any other session gets a not_connected failure.

# Errors

Requests that produce no outcome return an *APIError. The predefined
errors can be matched with errors.Is:

	_, err := client.GetPage(ctx, "/missing", "")
	if errors.Is(err, portalsdk.ErrNotFound) {
		...
	}
*/
package portalsdk

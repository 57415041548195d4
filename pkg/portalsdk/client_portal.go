package portalsdk

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// GetRole resolves the role of address. An empty address is Default.
func (c *SDKClient) GetRole(ctx context.Context, address string) (*RoleResponse, error) {
	var out RoleResponse
	if err := c.getJSON(ctx, withQuery("/v1/role", "address", address), "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetNavigation returns the menu for the role of address.
func (c *SDKClient) GetNavigation(ctx context.Context, address string) (*NavigationResponse, error) {
	var out NavigationResponse
	if err := c.getJSON(ctx, withQuery("/v1/navigation", "address", address), "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetNavigationForRole returns the menu for a named role without a chain
// lookup.
func (c *SDKClient) GetNavigationForRole(ctx context.Context, role string) (*NavigationResponse, error) {
	var out NavigationResponse
	if err := c.getJSON(ctx, withQuery("/v1/navigation", "role", role), "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPage resolves a front-end route for address. Unknown routes return
// ErrNotFound.
func (c *SDKClient) GetPage(ctx context.Context, path, address string) (*PageResponse, error) {
	var out PageResponse
	p := "/v1/pages/" + strings.TrimPrefix(path, "/")
	if err := c.getJSON(ctx, withQuery(p, "address", address), "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetContracts describes the deployed contracts.
func (c *SDKClient) GetContracts(ctx context.Context) (*ContractInfo, error) {
	var out ContractInfo
	if err := c.getJSON(ctx, "/v1/contracts", "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCampaigns lists campaigns, optionally filtered by status name
// ("active", "pending", ...).
func (c *SDKClient) ListCampaigns(ctx context.Context, status string) ([]Campaign, error) {
	var out CampaignListResponse
	if err := c.getJSON(ctx, withQuery("/v1/campaigns", "status", status), "", &out); err != nil {
		return nil, err
	}
	return out.Campaigns, nil
}

// GetCampaign returns one campaign.
func (c *SDKClient) GetCampaign(ctx context.Context, id uint64) (*Campaign, error) {
	var out Campaign
	if err := c.getJSON(ctx, "/v1/campaigns/"+strconv.FormatUint(id, 10), "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCampaignDocuments returns the shared document CIDs of a campaign.
func (c *SDKClient) GetCampaignDocuments(ctx context.Context, id uint64) (*CampaignDocuments, error) {
	var out CampaignDocuments
	if err := c.getJSON(ctx, "/v1/campaigns/"+strconv.FormatUint(id, 10)+"/documents", "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetVerifierBalance returns a verifier's withdrawable fees.
func (c *SDKClient) GetVerifierBalance(ctx context.Context, address string) (*BalanceResponse, error) {
	var out BalanceResponse
	if err := c.getJSON(ctx, "/v1/verifiers/"+url.PathEscape(address)+"/balance", "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func withQuery(path, key, value string) string {
	if value == "" {
		return path
	}
	return path + "?" + url.Values{key: {value}}.Encode()
}

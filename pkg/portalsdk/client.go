package portalsdk

import (
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the careBridge portal.
// It provides access to public read endpoints and can create wallet Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a portal client. Action dispatches wait for a mined
// receipt, so the timeout is generous.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 5 * time.Minute,
		},
	}
}

package portalsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/carebridge/pkg/httpx"
)

// Error codes carried in the "error" field of failed responses.
const (
	ErrorCodeInvalidRequest    = "invalid_request"
	ErrorCodeInvalidAddress    = "invalid_address"
	ErrorCodeInvalidSignature  = "invalid_signature"
	ErrorCodeNoChallenge       = "no_challenge"
	ErrorCodeInvalidToken      = "invalid_token"
	ErrorCodeNotFound          = "not_found"
	ErrorCodeUnknownAction     = "unknown_action"
	ErrorCodeChainUnavailable  = "chain_unavailable"
	ErrorCodeRateLimitExceeded = "rate_limit_exceeded"
	ErrorCodeServerError       = "server_error"
)

// APIError is the portal's error response. It implements error for SDK
// callers and WriteError for the server's handlers.
type APIError struct {
	StatusCode int `json:"-"`

	Code        string `json:"error"`
	Description string `json:"error_description"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes e as a JSON response.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: e.Code, ErrorDescription: e.Description})
}

// Is matches on status and code so callers can use errors.Is with the
// predefined errors below.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.StatusCode == t.StatusCode
}

var (
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	ErrInvalidAddress = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidAddress,
		Description: "address must be a 0x-prefixed, non-zero 20-byte hex address",
	}

	ErrInvalidSignature = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidSignature,
		Description: "the signature does not prove control of the address",
	}

	ErrNoChallenge = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeNoChallenge,
		Description: "no pending challenge for this address; request a new one",
	}

	ErrInvalidToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "the session token is missing, invalid or expired",
	}

	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "not found",
	}

	ErrUnknownAction = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeUnknownAction,
		Description: "unknown action",
	}

	ErrChainUnavailable = &APIError{
		StatusCode:  http.StatusBadGateway,
		Code:        ErrorCodeChainUnavailable,
		Description: "the chain could not be read",
	}

	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// NewAPIError builds an error with a custom description.
func NewAPIError(statusCode int, code, description string) *APIError {
	return &APIError{StatusCode: statusCode, Code: code, Description: description}
}

// parseErrorResponse turns a non-success response into an *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}

package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/aussiebroadwan/carebridge/internal/portal/service"
	"github.com/aussiebroadwan/carebridge/pkg/httpx"
	"github.com/aussiebroadwan/carebridge/pkg/portalsdk"
	"github.com/aussiebroadwan/carebridge/pkg/slogx"
)

type WalletHandler struct {
	Sessions *service.SessionService
}

// HandleChallenge issues a message for the wallet to sign
//
//	@Summary		Request a wallet challenge
//	@Description	Mints a one-time nonce for the address and returns the exact message to sign with personal_sign.
//	@Description	A new challenge replaces any unanswered one for the same address.
//	@Tags			Wallet
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.ChallengeRequest	true	"Wallet address"
//	@Success		200		{object}	portalsdk.ChallengeResponse	"Message to sign"
//	@Failure		400		{object}	portalsdk.ErrorResponse		"Malformed request or address"
//	@Failure		429		{object}	portalsdk.ErrorResponse		"Rate limit exceeded"
//	@Failure		500		{object}	portalsdk.ErrorResponse		"Internal server error"
//	@Router			/v1/wallet/challenge [post].
func (h *WalletHandler) HandleChallenge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalsdk.ChallengeRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		portalsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	ch, err := h.Sessions.Challenge(ctx, req.Address)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAddress) {
			portalsdk.ErrInvalidAddress.WriteError(w)
			return
		}
		log.Error("failed to issue challenge", "error", err)
		portalsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.ChallengeResponse{
		Address:   ch.Address.Hex(),
		Nonce:     ch.Nonce,
		Message:   ch.Message,
		ExpiresAt: ch.ExpiresAt.UTC(),
	})
}

// HandleSession exchanges a signed challenge for a session token
//
//	@Summary		Establish a wallet session
//	@Description	Consumes the pending challenge for the address and verifies the personal_sign signature over it.
//	@Description	The challenge is spent whether or not the signature checks out.
//	@Tags			Wallet
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.SessionRequest	true	"Address and 0x-prefixed 65-byte signature"
//	@Success		200		{object}	portalsdk.SessionResponse	"Session token"
//	@Failure		400		{object}	portalsdk.ErrorResponse		"Malformed request or address"
//	@Failure		401		{object}	portalsdk.ErrorResponse		"Bad signature or no pending challenge"
//	@Failure		429		{object}	portalsdk.ErrorResponse		"Rate limit exceeded"
//	@Failure		500		{object}	portalsdk.ErrorResponse		"Internal server error"
//	@Router			/v1/wallet/session [post].
func (h *WalletHandler) HandleSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalsdk.SessionRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		portalsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	sess, err := h.Sessions.Establish(ctx, req.Address, req.Signature)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrInvalidAddress):
		portalsdk.ErrInvalidAddress.WriteError(w)
		return
	case errors.Is(err, service.ErrInvalidSignature), errors.Is(err, service.ErrSignerMismatch):
		portalsdk.ErrInvalidSignature.WriteError(w)
		return
	case errors.Is(err, service.ErrNoChallenge):
		portalsdk.ErrNoChallenge.WriteError(w)
		return
	default:
		log.Error("failed to establish session", "error", err)
		portalsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.SessionResponse{
		AccessToken: sess.Token,
		TokenType:   "Bearer",
		ExpiresIn:   int(time.Until(sess.ExpiresAt).Seconds()),
		ExpiresAt:   sess.ExpiresAt.UTC(),
		Address:     sess.Address.Hex(),
	})
}

package http

import (
	"net/http"

	"github.com/aussiebroadwan/carebridge/internal/portal/domain"
	"github.com/aussiebroadwan/carebridge/internal/portal/service"
	"github.com/aussiebroadwan/carebridge/pkg/httpx"
	"github.com/aussiebroadwan/carebridge/pkg/portalsdk"
	"github.com/aussiebroadwan/carebridge/pkg/slogx"
)

type ActionHandler struct {
	Actions  *service.Actions
	Accounts Accounts
}

// ServeHTTP dispatches one contract write for the session wallet
//
//	@Summary		Dispatch an action
//	@Description	Runs the named action for the session address through validation, a connectivity guard,
//	@Description	simulation, submission and confirmation. The body is the action's request object.
//	@Description	A second request for the same action and account while one is running is rejected as busy.
//	@Tags			Actions
//	@Accept			json
//	@Produce		json
//	@Param			kind	path		string						true	"Action kind, e.g. donate or apply_genesis"
//	@Success		200		{object}	portalsdk.ActionResponse	"Dispatch succeeded"
//	@Failure		400		{object}	portalsdk.ErrorResponse		"Malformed request body"
//	@Failure		401		{object}	portalsdk.ErrorResponse		"Missing or invalid session token"
//	@Failure		404		{object}	portalsdk.ErrorResponse		"Unknown action"
//	@Failure		409		{object}	portalsdk.ActionResponse	"A dispatch for this account is already running"
//	@Failure		422		{object}	portalsdk.ActionResponse	"Dispatch failed"
//	@Failure		429		{object}	portalsdk.ErrorResponse		"Rate limit exceeded"
//	@Security		BearerAuth
//	@Router			/v1/actions/{kind} [post].
func (h *ActionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	kind, err := domain.ParseActionKind(r.PathValue("kind"))
	if err != nil {
		portalsdk.ErrUnknownAction.WriteError(w)
		return
	}
	action, ok := h.Actions.Lookup(kind)
	if !ok {
		portalsdk.ErrUnknownAction.WriteError(w)
		return
	}

	acct := h.Accounts.Account(sessionAddress(r))

	res, err := action.DispatchDecoded(ctx, acct, func(dst any) error {
		return httpx.DecodeJSON(w, r, dst)
	})
	if err != nil {
		log.Debug("action body rejected", "action", kind, "error", err)
		portalsdk.NewAPIError(http.StatusBadRequest, portalsdk.ErrorCodeInvalidRequest,
			"request body is not a valid "+string(kind)+" payload").WriteError(w)
		return
	}

	httpx.WriteJSON(w, actionStatus(res), toActionResponse(res))
}

func actionStatus(res domain.Result) int {
	switch res.Status {
	case domain.StatusSucceeded:
		return http.StatusOK
	case domain.StatusBusy:
		return http.StatusConflict
	default:
		return http.StatusUnprocessableEntity
	}
}

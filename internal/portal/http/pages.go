package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/carebridge/internal/portal/domain"
	"github.com/aussiebroadwan/carebridge/internal/portal/service"
	"github.com/aussiebroadwan/carebridge/pkg/httpx"
	"github.com/aussiebroadwan/carebridge/pkg/portalsdk"
	"github.com/aussiebroadwan/carebridge/pkg/slogx"
)

type PageHandler struct {
	Pages *service.PageService
}

// ServeHTTP resolves a front-end route
//
//	@Summary		Resolve a page
//	@Description	Looks up a front-end route and returns it with the caller's role and navigation.
//	@Description	The contract page also carries the deployment details. Unknown routes are 404.
//	@Tags			Portal
//	@Produce		json
//	@Param			path	path		string					true	"Route without the leading slash (empty for home)"
//	@Param			address	query		string					false	"Wallet address (0x-prefixed)"
//	@Success		200		{object}	portalsdk.PageResponse	"Page view"
//	@Failure		400		{object}	portalsdk.ErrorResponse	"Malformed address"
//	@Failure		404		{object}	portalsdk.ErrorResponse	"No such page"
//	@Security		BearerAuth
//	@Router			/v1/pages/{path} [get].
func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	addr, err := callerAddress(r)
	if err != nil {
		portalsdk.ErrInvalidAddress.WriteError(w)
		return
	}

	view, err := h.Pages.ResolvePage(ctx, r.PathValue("path"), addr)
	if err != nil {
		if errors.Is(err, domain.ErrPageNotFound) {
			portalsdk.NewAPIError(http.StatusNotFound, portalsdk.ErrorCodeNotFound, "page not found").WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("failed to resolve page", "error", err)
		portalsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toPage(view))
}

// HandleContracts describes the deployment
//
//	@Summary		Contract details
//	@Description	Returns the chain ID, contract addresses, registry entry points and verifier types.
//	@Tags			Portal
//	@Produce		json
//	@Success		200	{object}	portalsdk.ContractInfo	"Deployment details"
//	@Router			/v1/contracts [get].
func (h *PageHandler) HandleContracts(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, toContractInfo(h.Pages.ContractInfo()))
}

package http

import (
	"net/http"

	"github.com/aussiebroadwan/carebridge/internal/portal/domain"
	"github.com/aussiebroadwan/carebridge/internal/portal/service"
	"github.com/aussiebroadwan/carebridge/pkg/httpx"
	"github.com/aussiebroadwan/carebridge/pkg/portalsdk"
)

type RoleHandler struct {
	Roles *service.RoleResolver
}

// ServeHTTP resolves the caller's role
//
//	@Summary		Resolve a wallet role
//	@Description	Returns the role of the session address, or of the address query parameter when there is no session.
//	@Description	Registry read failures fall back to the default role.
//	@Tags			Portal
//	@Produce		json
//	@Param			address	query		string					false	"Wallet address (0x-prefixed)"
//	@Success		200		{object}	portalsdk.RoleResponse	"Resolved role"
//	@Failure		400		{object}	portalsdk.ErrorResponse	"Malformed address"
//	@Failure		401		{object}	portalsdk.ErrorResponse	"Invalid session token"
//	@Security		BearerAuth
//	@Router			/v1/role [get].
func (h *RoleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	addr, err := callerAddress(r)
	if err != nil {
		portalsdk.ErrInvalidAddress.WriteError(w)
		return
	}

	role := h.Roles.Resolve(r.Context(), addr)

	resp := portalsdk.RoleResponse{Role: role.String()}
	if addr != zeroAddress {
		resp.Address = addr.Hex()
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

type NavigationHandler struct {
	Roles *service.RoleResolver
}

// ServeHTTP returns the navigation menu
//
//	@Summary		Navigation menu
//	@Description	Returns the menu for a role. With ?role= the named role is used and nothing is read from the chain;
//	@Description	otherwise the role of the session address or ?address= is resolved first.
//	@Tags			Portal
//	@Produce		json
//	@Param			role	query		string						false	"Role name (default, verifier, owner)"
//	@Param			address	query		string						false	"Wallet address (0x-prefixed)"
//	@Success		200		{object}	portalsdk.NavigationResponse	"Menu items"
//	@Failure		400		{object}	portalsdk.ErrorResponse		"Unknown role or malformed address"
//	@Failure		401		{object}	portalsdk.ErrorResponse		"Invalid session token"
//	@Security		BearerAuth
//	@Router			/v1/navigation [get].
func (h *NavigationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var role domain.Role

	if name := r.URL.Query().Get("role"); name != "" {
		parsed, err := domain.ParseRole(name)
		if err != nil {
			portalsdk.NewAPIError(http.StatusBadRequest, portalsdk.ErrorCodeInvalidRequest,
				"role must be one of default, verifier or owner").WriteError(w)
			return
		}
		role = parsed
	} else {
		addr, err := callerAddress(r)
		if err != nil {
			portalsdk.ErrInvalidAddress.WriteError(w)
			return
		}
		role = h.Roles.Resolve(r.Context(), addr)
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.NavigationResponse{
		Role:  role.String(),
		Items: toNavItems(service.ComposeNavigation(role)),
	})
}

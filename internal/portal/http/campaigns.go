package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/carebridge/internal/portal/chain"
	"github.com/aussiebroadwan/carebridge/internal/portal/domain"
	"github.com/aussiebroadwan/carebridge/internal/portal/service"
	"github.com/aussiebroadwan/carebridge/pkg/httpx"
	"github.com/aussiebroadwan/carebridge/pkg/portalsdk"
	"github.com/aussiebroadwan/carebridge/pkg/slogx"
)

type CampaignHandler struct {
	Campaigns *service.CampaignService
}

// HandleList lists campaigns
//
//	@Summary		List campaigns
//	@Description	Reads every campaign from the crowdfunding contract in ID order, optionally filtered by status.
//	@Tags			Campaigns
//	@Produce		json
//	@Param			status	query		string							false	"pending, approved, rejected, active or completed"
//	@Success		200		{object}	portalsdk.CampaignListResponse	"Campaigns"
//	@Failure		400		{object}	portalsdk.ErrorResponse			"Unknown status"
//	@Failure		502		{object}	portalsdk.ErrorResponse			"Chain read failed"
//	@Router			/v1/campaigns [get].
func (h *CampaignHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var filter *domain.CampaignStatus
	if s := r.URL.Query().Get("status"); s != "" {
		status, ok := domain.ParseCampaignStatus(s)
		if !ok {
			portalsdk.NewAPIError(http.StatusBadRequest, portalsdk.ErrorCodeInvalidRequest,
				"status must be one of pending, approved, rejected, active or completed").WriteError(w)
			return
		}
		filter = &status
	}

	campaigns, err := h.Campaigns.ListCampaigns(ctx, filter)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list campaigns", "error", err)
		portalsdk.ErrChainUnavailable.WriteError(w)
		return
	}

	resp := portalsdk.CampaignListResponse{Campaigns: make([]portalsdk.Campaign, len(campaigns))}
	for i, c := range campaigns {
		resp.Campaigns[i] = toCampaign(c)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet returns one campaign
//
//	@Summary		Get a campaign
//	@Tags			Campaigns
//	@Produce		json
//	@Param			id	path		int						true	"Campaign ID (0-based)"
//	@Success		200	{object}	portalsdk.Campaign		"Campaign"
//	@Failure		400	{object}	portalsdk.ErrorResponse	"Malformed ID"
//	@Failure		404	{object}	portalsdk.ErrorResponse	"No such campaign"
//	@Failure		502	{object}	portalsdk.ErrorResponse	"Chain read failed"
//	@Router			/v1/campaigns/{id} [get].
func (h *CampaignHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := campaignID(w, r)
	if !ok {
		return
	}

	c, err := h.Campaigns.GetCampaign(ctx, id)
	if err != nil {
		writeCampaignError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toCampaign(c))
}

// HandleDocuments returns the documents a patient agreed to share
//
//	@Summary		Get shared campaign documents
//	@Description	Returns the content identifiers of the documents the patient consented to share. Withheld documents are omitted.
//	@Tags			Campaigns
//	@Produce		json
//	@Param			id	path		int							true	"Campaign ID (0-based)"
//	@Success		200	{object}	portalsdk.CampaignDocuments	"Shared documents"
//	@Failure		400	{object}	portalsdk.ErrorResponse		"Malformed ID"
//	@Failure		404	{object}	portalsdk.ErrorResponse		"No such campaign"
//	@Failure		502	{object}	portalsdk.ErrorResponse		"Chain read failed"
//	@Router			/v1/campaigns/{id}/documents [get].
func (h *CampaignHandler) HandleDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := campaignID(w, r)
	if !ok {
		return
	}

	docs, err := h.Campaigns.CampaignDocuments(ctx, id)
	if err != nil {
		writeCampaignError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toDocuments(id, docs))
}

// HandleBalance returns a verifier's withdrawable fees
//
//	@Summary		Verifier fee balance
//	@Tags			Campaigns
//	@Produce		json
//	@Param			address	path		string						true	"Verifier address (0x-prefixed)"
//	@Success		200		{object}	portalsdk.BalanceResponse	"Balance in wei and ether"
//	@Failure		400		{object}	portalsdk.ErrorResponse		"Malformed address"
//	@Failure		502		{object}	portalsdk.ErrorResponse		"Chain read failed"
//	@Router			/v1/verifiers/{address}/balance [get].
func (h *CampaignHandler) HandleBalance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	addr, err := service.ParseAddress(r.PathValue("address"))
	if err != nil {
		portalsdk.ErrInvalidAddress.WriteError(w)
		return
	}

	wei, err := h.Campaigns.VerifierBalance(ctx, addr)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to read verifier balance", "address", addr.Hex(), "error", err)
		portalsdk.ErrChainUnavailable.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.BalanceResponse{
		Address: addr.Hex(),
		Wei:     bigString(wei),
		Ether:   chain.FormatEther(wei),
	})
}

func campaignID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		portalsdk.NewAPIError(http.StatusBadRequest, portalsdk.ErrorCodeInvalidRequest,
			"campaign id must be a non-negative integer").WriteError(w)
		return 0, false
	}
	return id, true
}

func writeCampaignError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrCampaignNotFound) {
		portalsdk.NewAPIError(http.StatusNotFound, portalsdk.ErrorCodeNotFound, "campaign not found").WriteError(w)
		return
	}
	slogx.FromContext(r.Context()).Error("failed to read campaign", "id", r.PathValue("id"), "error", err)
	portalsdk.ErrChainUnavailable.WriteError(w)
}

package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/carebridge/internal/portal/domain"
	"github.com/aussiebroadwan/carebridge/internal/portal/service"
	"github.com/aussiebroadwan/carebridge/pkg/httpx"
	"github.com/aussiebroadwan/carebridge/pkg/portalsdk"
	"github.com/aussiebroadwan/carebridge/pkg/slogx"
)

type ActivityHandler struct {
	Activity *service.ActivityService
}

// ServeHTTP lists the session wallet's recent dispatches
//
//	@Summary		Recent activity
//	@Description	Returns the session address's dispatch outcomes, newest first.
//	@Tags			Activity
//	@Produce		json
//	@Param			limit	query		int								false	"Maximum records (default 20, at most 100)"
//	@Success		200		{object}	portalsdk.ActivityListResponse	"Activity"
//	@Failure		400		{object}	portalsdk.ErrorResponse			"Malformed limit"
//	@Failure		401		{object}	portalsdk.ErrorResponse			"Missing or invalid session token"
//	@Failure		500		{object}	portalsdk.ErrorResponse			"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/activity [get].
func (h *ActivityHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			portalsdk.NewAPIError(http.StatusBadRequest, portalsdk.ErrorCodeInvalidRequest,
				"limit must be a non-negative integer").WriteError(w)
			return
		}
		limit = n
	}

	records, err := h.Activity.List(ctx, sessionAddress(r), limit)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list activity", "error", err)
		portalsdk.ErrServerError.WriteError(w)
		return
	}

	resp := portalsdk.ActivityListResponse{Activity: make([]portalsdk.Activity, len(records))}
	for i, a := range records {
		resp.Activity[i] = toActivity(a)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet returns one of the session wallet's records
//
//	@Summary		Get an activity record
//	@Description	Records belonging to other addresses are reported as not found.
//	@Tags			Activity
//	@Produce		json
//	@Param			id	path		string					true	"Activity ID (ULID)"
//	@Success		200	{object}	portalsdk.Activity		"Activity record"
//	@Failure		401	{object}	portalsdk.ErrorResponse	"Missing or invalid session token"
//	@Failure		404	{object}	portalsdk.ErrorResponse	"No such record"
//	@Failure		500	{object}	portalsdk.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/activity/{id} [get].
func (h *ActivityHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	a, err := h.Activity.Get(ctx, r.PathValue("id"))
	if err == nil && !strings.EqualFold(a.Address, sessionAddress(r).Hex()) {
		err = domain.ErrActivityNotFound
	}
	if err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			portalsdk.NewAPIError(http.StatusNotFound, portalsdk.ErrorCodeNotFound, "activity not found").WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("failed to get activity", "error", err)
		portalsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toActivity(a))
}

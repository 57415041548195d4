package http

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common"

	"github.com/aussiebroadwan/carebridge/internal/portal/service"
	"github.com/aussiebroadwan/carebridge/pkg/httpx"
)

var zeroAddress common.Address

// callerAddress picks the address a read is made for: the session address
// when there is one, otherwise the address query parameter. No address at
// all is the zero address, which resolves to the default role.
func callerAddress(r *http.Request) (common.Address, error) {
	if addr, ok := httpx.AddressFromContext(r.Context()); ok {
		return common.HexToAddress(addr), nil
	}
	q := r.URL.Query().Get("address")
	if q == "" {
		return common.Address{}, nil
	}
	return service.ParseAddress(q)
}

// sessionAddress is the address of the verified session. Only call it
// behind httpx.RequireSession.
func sessionAddress(r *http.Request) common.Address {
	addr, _ := httpx.AddressFromContext(r.Context())
	return common.HexToAddress(addr)
}

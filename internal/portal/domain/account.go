package domain

import (
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// Account is the wallet an action is dispatched for. Signer is nil when the
// portal holds no unlocked key for Address.
type Account struct {
	Address common.Address
	Signer  bind.SignerFn
}

// Connected reports whether the account can both be named and sign.
func (a Account) Connected() bool {
	return a.Address != (common.Address{}) && a.Signer != nil
}

package chain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

// RevertError is a call that the EVM reverted. Reason is the decoded
// Error(string) message when the contract supplied one.
type RevertError struct {
	Reason string
	Data   []byte
	Err    error
}

func (e *RevertError) Error() string {
	if e.Reason != "" {
		return "execution reverted: " + e.Reason
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "execution reverted"
}

func (e *RevertError) Unwrap() error { return e.Err }

// asRevert turns a node error into a *RevertError when it carries revert
// data or says so in its message. Other errors come back unchanged.
func asRevert(err error) error {
	if err == nil {
		return nil
	}

	var de rpc.DataError
	if errors.As(err, &de) {
		if raw, ok := de.ErrorData().(string); ok {
			data, decErr := hexutil.Decode(raw)
			if decErr == nil {
				rev := &RevertError{Data: data, Err: err}
				if reason, unpackErr := abi.UnpackRevert(data); unpackErr == nil {
					rev.Reason = reason
				}
				return rev
			}
		}
	}

	if strings.Contains(err.Error(), "execution reverted") {
		return &RevertError{
			Reason: strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(err.Error(), "execution reverted"), ":")),
			Err:    err,
		}
	}
	return fmt.Errorf("chain: %w", err)
}

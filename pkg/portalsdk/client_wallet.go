package portalsdk

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"net/http"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// RequestChallenge asks the portal for a message for address to sign.
func (c *SDKClient) RequestChallenge(ctx context.Context, address string) (*ChallengeResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/wallet/challenge", "", ChallengeRequest{Address: address})
	if err != nil {
		return nil, err
	}

	var out ChallengeResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// EstablishSession exchanges a personal_sign signature over the challenge
// message for a session token.
func (c *SDKClient) EstablishSession(ctx context.Context, address, signature string) (*SessionResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/wallet/session", "", SessionRequest{Address: address, Signature: signature})
	if err != nil {
		return nil, err
	}

	var out SessionResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// AuthenticateWithKey runs the challenge flow with a local private key and
// returns a Session for its address.
func (c *SDKClient) AuthenticateWithKey(ctx context.Context, key *ecdsa.PrivateKey) (*Session, error) {
	address := crypto.PubkeyToAddress(key.PublicKey).Hex()

	challenge, err := c.RequestChallenge(ctx, address)
	if err != nil {
		return nil, err
	}

	sig, err := PersonalSign(key, challenge.Message)
	if err != nil {
		return nil, err
	}

	sess, err := c.EstablishSession(ctx, address, sig)
	if err != nil {
		return nil, err
	}
	return c.NewSessionFromToken(sess.Address, sess.AccessToken, sess.ExpiresAt), nil
}

// PersonalSign signs message the way browser wallets do for personal_sign
// and returns the 0x-prefixed signature with a 27/28 recovery id.
func PersonalSign(key *ecdsa.PrivateKey, message string) (string, error) {
	sig, err := crypto.Sign(accounts.TextHash([]byte(message)), key)
	if err != nil {
		return "", fmt.Errorf("failed to sign challenge: %w", err)
	}
	sig[crypto.RecoveryIDOffset] += 27
	return hexutil.Encode(sig), nil
}

package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/aussiebroadwan/carebridge/internal/portal/chain"
)

// dialTimeout bounds the startup chain ID probe.
const dialTimeout = 10 * time.Second

// DialChain connects to the RPC endpoint. An endpoint that does not answer
// is tolerated so the portal can start before its node; /readyz reports
// it. An endpoint on the wrong chain is fatal.
func DialChain(ctx context.Context, cfg Config, logger *slog.Logger) (*ethclient.Client, error) {
	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dial rpc: %w", err)
	}

	probeCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	got, err := chain.ChainID(probeCtx, client)
	switch {
	case err != nil:
		logger.Warn("rpc endpoint not reachable, continuing", "url", cfg.RPCURL, "error", err)
	case got != cfg.ChainID:
		client.Close()
		return nil, fmt.Errorf("rpc endpoint is on chain %d, expected %d", got, cfg.ChainID)
	default:
		logger.Info("connected to rpc endpoint", "chain_id", got)
	}
	return client, nil
}

// parseContractAddress accepts an empty string as the zero address.
func parseContractAddress(name, s string) (common.Address, error) {
	if s == "" {
		return common.Address{}, nil
	}
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%s address %q is not a hex address", name, s)
	}
	return common.HexToAddress(s), nil
}

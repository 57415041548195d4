package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aussiebroadwan/carebridge/pkg/jwtx"
)

// retiredSessionKeys is how many rotated-out keys still verify. With the
// default hourly housekeeping and one hour sessions, one would do.
const retiredSessionKeys = 2

// InitSessionKeys loads the session signing key from cfg.SessionKeyFile or
// generates one. The returned bool reports whether housekeeping may rotate
// it: a key from a file is meant to survive restarts, so it never rotates.
func InitSessionKeys(cfg Config, logger *slog.Logger) (*jwtx.KeyRing, bool, error) {
	if cfg.SessionKeyFile == "" {
		keys, err := jwtx.NewKeyRing(retiredSessionKeys)
		if err != nil {
			return nil, false, fmt.Errorf("generate session key: %w", err)
		}
		logger.Info("session signing key generated", "kid", keys.KID(), "rotating", true)
		return keys, true, nil
	}

	pemKey, err := os.ReadFile(cfg.SessionKeyFile)
	if err != nil {
		return nil, false, fmt.Errorf("read session key: %w", err)
	}
	kid := strings.TrimSuffix(filepath.Base(cfg.SessionKeyFile), filepath.Ext(cfg.SessionKeyFile))
	keys, err := jwtx.NewKeyRingFromPEM(kid, pemKey)
	if err != nil {
		return nil, false, fmt.Errorf("load session key: %w", err)
	}
	logger.Info("session signing key loaded", "kid", keys.KID(), "path", cfg.SessionKeyFile)
	return keys, false, nil
}

package cryptox_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/carebridge/pkg/cryptox"
)

func TestGenerateWalletKey(t *testing.T) {
	t.Parallel()

	hexKey, addr, err := cryptox.GenerateWalletKey()
	require.NoError(t, err)
	require.Len(t, hexKey, 64)

	key, err := cryptox.ParseWalletKey(hexKey)
	require.NoError(t, err)
	require.Equal(t, addr, crypto.PubkeyToAddress(key.PublicKey))
}

func TestParseWalletKey(t *testing.T) {
	t.Parallel()

	hexKey, addr, err := cryptox.GenerateWalletKey()
	require.NoError(t, err)

	for _, in := range []string{hexKey, "0x" + hexKey, "  " + hexKey + "\n"} {
		key, err := cryptox.ParseWalletKey(in)
		require.NoError(t, err, "input %q", in)
		require.Equal(t, addr, crypto.PubkeyToAddress(key.PublicKey))
	}

	_, err = cryptox.ParseWalletKey("zz")
	require.Error(t, err)
}

func TestWalletKeyFile(t *testing.T) {
	t.Parallel()

	hexKey, addr, err := cryptox.GenerateWalletKey()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "keys", "wallet.hex")
	require.NoError(t, cryptox.WriteKeyFile(path, []byte(hexKey+"\n")))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	key, err := cryptox.LoadWalletKey(path)
	require.NoError(t, err)
	require.Equal(t, addr, crypto.PubkeyToAddress(key.PublicKey))

	require.Error(t, cryptox.WriteKeyFile(path, []byte("other")), "existing key files are not overwritten")

	_, err = cryptox.LoadWalletKey(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

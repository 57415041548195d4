//go:build e2e

package portal_test

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/aussiebroadwan/carebridge/pkg/portalsdk"
)

/*
 * Container setup and assertions shared by the portal end-to-end tests.
 * The portal runs without a reachable RPC node and without a keystore, so
 * every chain read fails and no session address can sign.
 */

const (
	testImageName = "carebridge-portal-test:latest"

	// Nothing listens here; the portal must start anyway.
	unreachableRPC = "http://127.0.0.1:9"
	testChainID    = "31337"
	testIssuer     = "carebridge-e2e"
)

// TestMain builds the portal image once for the whole package.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Portal Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Portal Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	cmd := exec.CommandContext(context.Background(), "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/portal/Dockerfile",
		"../../../")
	cmd.Stdout = os.Stdout
	return cmd.Run()
}

func cleanupDockerImage() {
	_ = exec.CommandContext(context.Background(), "docker", "rmi", "-f", testImageName).Run()
}

// setupPortalContainer starts the portal with relaxed rate limits and
// returns its base URL.
func setupPortalContainer(t *testing.T) (string, func()) {
	t.Helper()
	return startPortal(t, map[string]string{
		// Logins in quick succession would otherwise hit the wallet limits.
		"RATELIMIT_STRICT_REQUESTS": "1000",
		"RATELIMIT_STRICT_BURST":    "1000",
	})
}

// setupPortalContainerWithDefaultRateLimits starts the portal with the
// production rate limits, for the rate limit tests only.
func setupPortalContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	return startPortal(t, nil)
}

func startPortal(t *testing.T, extraEnv map[string]string) (string, func()) {
	t.Helper()
	ctx := context.Background()

	env := map[string]string{
		"PORTAL_RPC_URL":              unreachableRPC,
		"PORTAL_CHAIN_ID":             testChainID,
		"PORTAL_REGISTRY_ADDRESS":     "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		"PORTAL_CROWDFUNDING_ADDRESS": "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512",
		"PORTAL_ISSUER":               testIssuer,
		"ENV":                         "test",
		"LOG_LEVEL":                   "debug",
		"LOG_FORMAT":                  "json",
	}
	maps.Copy(env, extraEnv)

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// login authenticates a freshly generated wallet.
func login(t *testing.T, client *portalsdk.SDKClient) (*portalsdk.Session, *ecdsa.PrivateKey) {
	t.Helper()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	session, err := client.AuthenticateWithKey(t.Context(), key)
	require.NoError(t, err, "Login should succeed")
	require.NotEmpty(t, session.AccessToken())
	require.Equal(t, crypto.PubkeyToAddress(key.PublicKey).Hex(), session.Address())

	return session, key
}

// requireAPIError asserts err is an API error with the given status.
func requireAPIError(t *testing.T, err error, status int) *portalsdk.APIError {
	t.Helper()
	require.Error(t, err)

	var apiErr *portalsdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected an API error, got: %v", err)
	require.Equal(t, status, apiErr.StatusCode, "unexpected status: %v", apiErr)
	return apiErr
}

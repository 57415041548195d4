package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	RPCURL              string        // JSON-RPC endpoint (default: https://rpc.sepolia.org)
	ChainID             int64         // Expected chain ID, checked at startup when the RPC answers (default: 11155111)
	RegistryAddress     string        // Registry contract address (default: zero)
	CrowdfundingAddress string        // Crowdfunding contract address (default: zero)
	KeystoreDir         string        // Optional: keystore directory; no signers when empty
	KeystorePassword    string        // Read from PORTAL_KEYSTORE_PASSWORD_FILE
	SessionKeyFile      string        // Optional: PKCS8 Ed25519 key for session tokens; generated and rotated by housekeeping when empty
	DatabaseFile        string        // SQLite activity log (default: portal.db)
	RedisURL            string        // Optional: Redis nonce store; in-memory when empty
	SessionTTL          time.Duration // Wallet session lifetime (default: 1h)
	Issuer              string        // Session token issuer (default: carebridge-portal)
	ServiceName         string        // Name shown in the challenge message (default: careBridge)
	ActivityRetention   time.Duration // How long activity records are kept (default: 720h)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

// LoadConfig reads the environment, after loading a .env file when one
// exists. Variables already set in the environment win over the file.
func LoadConfig() Config {
	_ = godotenv.Load()

	cfg := Config{
		RPCURL:              getEnvOrDefault("PORTAL_RPC_URL", "https://rpc.sepolia.org"),
		ChainID:             int64(getEnvIntOrDefault("PORTAL_CHAIN_ID", 11155111)),
		RegistryAddress:     os.Getenv("PORTAL_REGISTRY_ADDRESS"),
		CrowdfundingAddress: os.Getenv("PORTAL_CROWDFUNDING_ADDRESS"),
		KeystoreDir:         os.Getenv("PORTAL_KEYSTORE_DIR"),
		SessionKeyFile:      os.Getenv("PORTAL_SESSION_KEY_FILE"),
		DatabaseFile:        getEnvOrDefault("PORTAL_DATABASE_FILE", "portal.db"),
		RedisURL:            os.Getenv("PORTAL_REDIS_URL"),
		SessionTTL:          getEnvDurationOrDefault("PORTAL_SESSION_TTL", time.Hour),
		Issuer:              getEnvOrDefault("PORTAL_ISSUER", "carebridge-portal"),
		ServiceName:         getEnvOrDefault("PORTAL_SERVICE_NAME", "careBridge"),
		ActivityRetention:   getEnvDurationOrDefault("PORTAL_ACTIVITY_RETENTION", 30*24*time.Hour),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	// The password never goes in the environment itself.
	if path := os.Getenv("PORTAL_KEYSTORE_PASSWORD_FILE"); path != "" {
		if b, err := os.ReadFile(path); err == nil {
			cfg.KeystorePassword = strings.TrimRight(string(b), "\r\n")
		}
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

package environments

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server  ServerConfig
	Gateway GatewayConfig
	Message MessageConfig
	Media   MediaConfig
	Auth    AuthConfig
}

type ServerConfig struct {
	Port string
}

type GatewayConfig struct {
	BaseURL   string
	ProductID string
	PhoneID   string
	APIToken  string
	Timeout   time.Duration
}

type MessageConfig struct {
	// DefaultCountryCode is prepended to bare 10-digit recipients. Single-market
	// heuristic carried over from the original deployment; see normalizeRecipient.
	DefaultCountryCode string
	AutoReplyText      string
}

type MediaConfig struct {
	DownloadDir string
	SizeWarnKB  int
}

type AuthConfig struct {
	WhatsAppAPIKey string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: GetEnv("SERVER_PORT", "8080"),
		},
		Gateway: GatewayConfig{
			BaseURL:   GetEnv("MAYTAPI_BASE_URL", "https://api.maytapi.com/api"),
			ProductID: GetEnv("MAYTAPI_PRODUCT_ID", ""),
			PhoneID:   GetEnv("MAYTAPI_PHONE_ID", ""),
			APIToken:  GetEnv("MAYTAPI_API_TOKEN", ""),
			Timeout:   time.Duration(GetEnvAsInt("GATEWAY_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Message: MessageConfig{
			DefaultCountryCode: GetEnv("DEFAULT_COUNTRY_CODE", "91"),
			AutoReplyText: GetEnv("AUTO_REPLY_TEXT",
				"Hello! Thanks for contacting us. How can we help you?"),
		},
		Media: MediaConfig{
			DownloadDir: GetEnv("MEDIA_DOWNLOAD_DIR", "downloads"),
			SizeWarnKB:  GetEnvAsInt("MEDIA_SIZE_WARN_KB", 5000),
		},
		Auth: AuthConfig{
			WhatsAppAPIKey: GetEnv("WHATSAPP_API_KEY", ""),
		},
	}
}

func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func GetEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Services ServicesConfig
	Search   SearchConfig
}

type ServerConfig struct {
	AppEnv          string
	HTTPPort        string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

// ServicesConfig holds one base URL per backend microservice the gateway
// fans out to. Request timeout is shared across all of them.
type ServicesConfig struct {
	AuthURL          string
	ProductsURL      string
	BrandsURL        string
	CategoriesURL    string
	CartURL          string
	OrdersURL        string
	UsersURL         string
	ReportsURL       string
	ShipmentsURL     string
	ProvidersURL     string
	PurchaseURL      string
	ReplenishmentURL string
	PaymentURL       string
	RequestTimeout   time.Duration
}

type SearchConfig struct {
	DebounceDelay time.Duration
}

func LoadEnv() *Config {
	// Basic config loading
	// In a real scenario, use structured config loader like viper or koanf
	return &Config{
		Server: ServerConfig{
			AppEnv:          getEnv("APP_ENV", "dev"),
			HTTPPort:        getEnv("HTTP_PORT", ":8080"),
			ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Services: ServicesConfig{
			AuthURL:          getEnv("AUTH_SERVICE_URL", "http://localhost:8081"),
			ProductsURL:      getEnv("PRODUCTS_SERVICE_URL", "http://localhost:8082"),
			BrandsURL:        getEnv("BRANDS_SERVICE_URL", "http://localhost:8083"),
			CategoriesURL:    getEnv("CATEGORIES_SERVICE_URL", "http://localhost:8083"),
			CartURL:          getEnv("CART_SERVICE_URL", "http://localhost:8084"),
			OrdersURL:        getEnv("ORDERS_SERVICE_URL", "http://localhost:8085"),
			UsersURL:         getEnv("USERS_SERVICE_URL", "http://localhost:8086"),
			ReportsURL:       getEnv("REPORTS_SERVICE_URL", "http://localhost:8087"),
			ShipmentsURL:     getEnv("SHIPMENTS_SERVICE_URL", "http://localhost:8088"),
			ProvidersURL:     getEnv("PROVIDERS_SERVICE_URL", "http://localhost:8089"),
			PurchaseURL:      getEnv("PURCHASE_SERVICE_URL", "http://localhost:8090"),
			ReplenishmentURL: getEnv("REPLENISHMENT_SERVICE_URL", "http://localhost:8091"),
			PaymentURL:       getEnv("PAYMENT_SERVICE_URL", "http://localhost:8092"),
			RequestTimeout:   getEnvDuration("SERVICE_REQUEST_TIMEOUT", 15*time.Second),
		},
		Search: SearchConfig{
			DebounceDelay: getEnvDuration("SEARCH_DEBOUNCE_DELAY", 800*time.Millisecond),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

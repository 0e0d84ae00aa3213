package config

import (
	"log"
	"os"
	"strings"
)

// Config is the process-wide configuration, loaded once at startup and
// constant for the process lifetime. Gateway credentials have no embedded
// defaults: a deployment that does not supply the active provider's keys
// cannot create charges with it.
type Config struct {
	Server      ServerConfig
	Gateway     GatewayConfig
	Webhook     WebhookConfig
	DynamoDB    DynamoDBConfig
	Marcha      MarchaConfig
	Paradise    ParadiseConfig
	PushinPay   PushinPayConfig
	AbacatePay  AbacatePayConfig
	MercadoPago MercadoPagoConfig
	UTMify      UTMifyConfig
}

type ServerConfig struct {
	Port string
}

// GatewayConfig selects the single active provider for this deployment.
type GatewayConfig struct {
	Provider string
}

type WebhookConfig struct {
	// DefaultURL is the postback endpoint used when the caller supplies
	// none. The presell frontend never sends one.
	DefaultURL string
}

// DynamoDBConfig covers both real AWS and a local instance. The "local"
// credential defaults only satisfy the SDK when Endpoint points at local
// DynamoDB, which does not validate them.
type DynamoDBConfig struct {
	Region            string
	AccessKeyID       string
	SecretAccessKey   string
	Endpoint          string
	TransactionsTable string
}

type MarchaConfig struct {
	PublicKey string
	SecretKey string
}

type ParadiseConfig struct {
	APIKey string
}

type PushinPayConfig struct {
	Token string
}

type AbacatePayConfig struct {
	Token string
}

type MercadoPagoConfig struct {
	AccessToken string
}

type UTMifyConfig struct {
	APIToken string
}

const (
	defaultPort       = "8080"
	defaultWebhookURL = "https://imperiovips.com/webhook/"
	defaultProvider   = "marcha"
)

// Load reads the configuration from the environment. The .env file (when
// present) is loaded by the godotenv autoload import in main.
func Load() *Config {
	cfg := &Config{
		Server: ServerConfig{
			Port: getenvDefault("SERVER_PORT", defaultPort),
		},
		Gateway: GatewayConfig{
			Provider: strings.ToLower(getenvDefault("PIX_GATEWAY", defaultProvider)),
		},
		Webhook: WebhookConfig{
			DefaultURL: getenvDefault("DEFAULT_WEBHOOK_URL", defaultWebhookURL),
		},
		DynamoDB: DynamoDBConfig{
			Region:            getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:       getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:   getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:          strings.TrimSpace(os.Getenv("DYNAMODB_ENDPOINT")),
			TransactionsTable: getenvDefault("TRANSACTIONS_TABLE", "transactions"),
		},
		Marcha: MarchaConfig{
			PublicKey: strings.TrimSpace(os.Getenv("MARCHA_PUBLIC_KEY")),
			SecretKey: strings.TrimSpace(os.Getenv("MARCHA_SECRET_KEY")),
		},
		Paradise: ParadiseConfig{
			APIKey: strings.TrimSpace(os.Getenv("PARADISE_API_KEY")),
		},
		PushinPay: PushinPayConfig{
			Token: strings.TrimSpace(os.Getenv("PUSHINPAY_TOKEN")),
		},
		AbacatePay: AbacatePayConfig{
			Token: strings.TrimSpace(os.Getenv("ABACATEPAY_TOKEN")),
		},
		MercadoPago: MercadoPagoConfig{
			AccessToken: strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
		},
		UTMify: UTMifyConfig{
			APIToken: strings.TrimSpace(os.Getenv("UTMIFY_API_TOKEN")),
		},
	}

	log.Printf("[config] loaded provider=%s port=%s", cfg.Gateway.Provider, cfg.Server.Port)
	return cfg
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

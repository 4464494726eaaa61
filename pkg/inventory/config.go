package inventory

import "time"

// Config holds settings for the HTTP availability client.
type Config struct {
	EndpointURL    string        `env:"INVENTORY_CHECK_URL,required"`             // upstream availability-check endpoint
	RequestTimeout time.Duration `env:"INVENTORY_CHECK_TIMEOUT" envDefault:"10s"` // per-request budget when no custom http client is supplied
}

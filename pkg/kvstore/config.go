package kvstore

import "time"

// RedisConfig holds connection settings for the Redis-backed store.
type RedisConfig struct {
	ConnectionURL  string        `env:"STORE_REDIS_URL" envDefault:"redis://localhost:6379/0"` // URL in the format "redis://:password@localhost:6379/0"
	RetryAttempts  int           `env:"STORE_REDIS_RETRY_ATTEMPTS" envDefault:"3"`             // number of connection attempts before giving up
	RetryInterval  time.Duration `env:"STORE_REDIS_RETRY_INTERVAL" envDefault:"5s"`            // delay between connection attempts
	ConnectTimeout time.Duration `env:"STORE_REDIS_CONNECT_TIMEOUT" envDefault:"30s"`          // overall budget for establishing the connection
}

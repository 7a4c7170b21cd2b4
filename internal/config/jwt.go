package config

import (
	"log"
	"os"
	"time"
)

// JWTConfig holds the process-wide signing key and token lifetime. It is
// loaded once at startup and handed to the token service; the key itself
// is never logged.
type JWTConfig struct {
	Secret []byte
	TTL    time.Duration
}

func NewJWTConfig() *JWTConfig {
	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		log.Fatal("SECRET_KEY not set")
	}

	ttl := 30 * time.Minute
	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("Invalid TOKEN_TTL %q: %v", raw, err)
		}
		ttl = parsed
	}

	return &JWTConfig{Secret: []byte(secret), TTL: ttl}
}

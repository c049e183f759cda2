package gateway

import (
	"strings"
	"time"
)

// Config holds the upstream API settings.
type Config struct {
	BaseURL string `env:"API_DOMAIN_NAME"`

	// Exactly one token source is used, in this order of precedence:
	// token endpoint, signed service token, static token.
	TokenEndpoint string        `env:"API_TOKEN_ENDPOINT"`
	JWTSecret     string        `env:"API_JWT_SECRET"`
	JWTIssuer     string        `env:"API_JWT_ISSUER" envDefault:"campaign"`
	JWTTTL        time.Duration `env:"API_JWT_TTL" envDefault:"5m"`
	StaticToken   string        `env:"API_STATIC_TOKEN"`
}

// Validate reports configuration errors. A missing base URL is fatal.
func (c Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return ErrMissingBaseURL
	}
	if c.TokenEndpoint == "" && c.JWTSecret == "" && c.StaticToken == "" {
		return ErrMissingTokenSource
	}
	return nil
}

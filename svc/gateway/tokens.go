package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

// TokenSource supplies the bearer token attached to every upstream call.
// Tokens are requested per call and never cached here.
type TokenSource interface {
	Token(ctx context.Context) (*oauth2.Token, error)
}

// TokenSourceFunc adapts a function to TokenSource.
type TokenSourceFunc func(ctx context.Context) (*oauth2.Token, error)

func (f TokenSourceFunc) Token(ctx context.Context) (*oauth2.Token, error) {
	return f(ctx)
}

// FromOAuth2 adapts an oauth2.TokenSource, which takes no context.
func FromOAuth2(ts oauth2.TokenSource) TokenSource {
	return TokenSourceFunc(func(context.Context) (*oauth2.Token, error) {
		return ts.Token()
	})
}

// StaticToken returns the same bearer token on every call.
func StaticToken(token string) TokenSource {
	return FromOAuth2(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}))
}

// SignedToken mints a short-lived HS256 service token per call.
func SignedToken(secret, issuer string, ttl time.Duration) TokenSource {
	return TokenSourceFunc(func(context.Context) (*oauth2.Token, error) {
		now := time.Now()
		expiry := now.Add(ttl)
		claims := jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   "campaign-gateway",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiry),
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrToken, err)
		}
		return &oauth2.Token{AccessToken: signed, TokenType: "Bearer", Expiry: expiry}, nil
	})
}

type tokenResponse struct {
	Token string `json:"token"`
}

// EndpointToken fetches a token from an HTTP endpoint answering {"token": "..."}.
func EndpointToken(client *http.Client, endpoint string) TokenSource {
	return TokenSourceFunc(func(ctx context.Context) (*oauth2.Token, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrToken, err)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Cache-Control", "no-store")

		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrToken, err)
		}
		defer func() { _ = resp.Body.Close() }()

		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxFailureBody))
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, fmt.Errorf("%w: token endpoint returned status %d", ErrToken, resp.StatusCode)
		}

		var tr tokenResponse
		if err := json.Unmarshal(body, &tr); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrToken, err)
		}
		if strings.TrimSpace(tr.Token) == "" {
			return nil, fmt.Errorf("%w: empty token", ErrToken)
		}
		return &oauth2.Token{AccessToken: tr.Token, TokenType: "Bearer"}, nil
	})
}

// NewTokenSource picks the token source described by cfg.
func NewTokenSource(cfg Config, client *http.Client) (TokenSource, error) {
	switch {
	case cfg.TokenEndpoint != "":
		return EndpointToken(client, resolveURL(cfg.BaseURL, cfg.TokenEndpoint)), nil
	case cfg.JWTSecret != "":
		return SignedToken(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL), nil
	case cfg.StaticToken != "":
		return StaticToken(cfg.StaticToken), nil
	default:
		return nil, ErrMissingTokenSource
	}
}

// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

// Package config loads the proxy's runtime settings from PROXY_*-prefixed
// environment variables: listener addresses, timeouts, authenticator
// credentials, and handler-chain knobs.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-core-stack/forward-proxy/pkg/auth"
	"github.com/go-core-stack/forward-proxy/pkg/middleware"
	"github.com/go-core-stack/forward-proxy/pkg/proxy"
)

const (
	envID                 = "PROXY_ID"
	envListenAddr         = "PROXY_LISTEN_ADDR"
	envWebListenAddr      = "PROXY_WEB_LISTEN_ADDR"
	envRequestTimeout     = "PROXY_REQUEST_TIMEOUT"
	envInsecureSkipVerify = "PROXY_UPSTREAM_INSECURE"
	envLogLevel           = "PROXY_LOG_LEVEL"
	envServerReadTimeout  = "PROXY_SERVER_READ_TIMEOUT"
	envServerWriteTimeout = "PROXY_SERVER_WRITE_TIMEOUT"
	envServerIdleTimeout  = "PROXY_SERVER_IDLE_TIMEOUT"
	envGracefulShutdown   = "PROXY_GRACEFUL_SHUTDOWN"
	envBasicAuth          = "PROXY_BASIC_AUTH"
	envBearerTokens       = "PROXY_BEARER_TOKENS"
	envSigningKey         = "PROXY_SIGNING_KEY"
	envSigningSecret      = "PROXY_SIGNING_SECRET"

	defaultID                 = "proxy"
	defaultListenAddr         = "127.0.0.1:8080"
	defaultWebListenAddr      = "127.0.0.1:8081"
	defaultRequestTimeout     = 15 * time.Second
	defaultLogLevel           = "info"
	defaultServerReadTimeout  = 30 * time.Second
	defaultServerWriteTimeout = 30 * time.Second
	defaultServerIdleTimeout  = 120 * time.Second
	defaultGracefulShutdown   = 10 * time.Second
)

// BasicCredential is one "user:pass" entry parsed out of PROXY_BASIC_AUTH.
type BasicCredential struct {
	Username string
	Password string
}

// Config captures runtime settings for the proxy and its auxiliary web
// server.
type Config struct {
	ID                      string
	ListenAddr              string
	WebListenAddr           string
	RequestTimeout          time.Duration
	InsecureSkipVerify      bool
	LogLevel                string
	ServerReadTimeout       time.Duration
	ServerWriteTimeout      time.Duration
	ServerIdleTimeout       time.Duration
	GracefulShutdownTimeout time.Duration
	BasicAuth               []BasicCredential
	BearerTokens            []string
	SigningKey              string
	SigningSecret           string
}

// Load reads configuration from environment variables. Nothing is strictly
// required: an unconfigured proxy runs with authentication disabled and no
// signing handler.
func Load() (Config, error) {
	basicAuth, err := parseBasicAuth(os.Getenv(envBasicAuth))
	if err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", envBasicAuth, err)
	}

	cfg := Config{
		ID:                      getString(envID, defaultID),
		ListenAddr:              getString(envListenAddr, defaultListenAddr),
		WebListenAddr:           getString(envWebListenAddr, defaultWebListenAddr),
		RequestTimeout:          getDuration(envRequestTimeout, defaultRequestTimeout),
		InsecureSkipVerify:      getBool(envInsecureSkipVerify, false),
		LogLevel:                strings.ToLower(getString(envLogLevel, defaultLogLevel)),
		ServerReadTimeout:       getDuration(envServerReadTimeout, defaultServerReadTimeout),
		ServerWriteTimeout:      getDuration(envServerWriteTimeout, defaultServerWriteTimeout),
		ServerIdleTimeout:       getDuration(envServerIdleTimeout, defaultServerIdleTimeout),
		GracefulShutdownTimeout: getDuration(envGracefulShutdown, defaultGracefulShutdown),
		BasicAuth:               basicAuth,
		BearerTokens:            getList(envBearerTokens),
		SigningKey:              strings.TrimSpace(os.Getenv(envSigningKey)),
		SigningSecret:           strings.TrimSpace(os.Getenv(envSigningSecret)),
	}

	return cfg, nil
}

// Authenticators builds the ordered authenticator chain: every configured
// basic-auth entry, in the order given, followed by every bearer token.
func (c Config) Authenticators() []auth.Authenticator {
	var auths []auth.Authenticator
	for _, cred := range c.BasicAuth {
		auths = append(auths, auth.NewHTTPBasic(cred.Username, cred.Password))
	}
	for _, token := range c.BearerTokens {
		auths = append(auths, auth.NewHTTPBearer(token))
	}
	return auths
}

// Handlers builds the default handler chain: request-id stamping, then
// forwarded-for bookkeeping, then signing (only if a key/secret was
// configured), then access logging.
func (c Config) Handlers() []proxy.Handler {
	handlers := []proxy.Handler{
		middleware.RequestID{},
		middleware.ForwardedFor{},
	}
	if c.SigningKey != "" && c.SigningSecret != "" {
		handlers = append(handlers, middleware.NewSigning(c.SigningKey, c.SigningSecret))
	}
	handlers = append(handlers, middleware.AccessLog{})
	return handlers
}

func parseBasicAuth(raw string) ([]BasicCredential, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var creds []BasicCredential
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		user, pass, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("entry %q is not in user:pass form", entry)
		}
		creds = append(creds, BasicCredential{Username: user, Password: pass})
	}
	return creds, nil
}

func getString(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func getList(key string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return nil
	}
	var out []string
	for _, v := range strings.Split(raw, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func getBool(key string, fallback bool) bool {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getDuration(key string, fallback time.Duration) time.Duration {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(val)
	if err != nil {
		return fallback
	}
	return parsed
}

// Package config loads typed configuration structs from environment
// variables using github.com/caarlos0/env/v11, with optional .env files read
// by github.com/joho/godotenv.
//
// Every package owns a small Config struct with `env` tags; cmd/campaign
// composes them and calls Load once at startup:
//
//	type Config struct {
//	    Gateway gateway.Config
//	    Server  httpserver.Config
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Structs implementing Validator are checked after parsing so a missing
// required value fails startup instead of the first request.
package config

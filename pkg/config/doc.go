// Package config loads the basenames runtime configuration from the
// environment.
//
// Values come from process environment variables, optionally seeded from one
// or more .env files through github.com/joho/godotenv, and are parsed into a
// Config struct by github.com/caarlos0/env/v11. Variables already present in
// the environment win over .env files.
//
// # Usage
//
//	cfg, err := config.Load()            // reads ./.env when present
//	cfg, err := config.Load("prod.env")  // explicit files must exist
//
// # Variables
//
//	APP_ENV                development | production (default development)
//	APP_SERVICE            service name attached to logs (default basenames)
//	LOG_LEVEL              debug | info | warn | error (default: per APP_ENV)
//	LOG_FORMAT             text | json (default: per APP_ENV)
//	HTTP_ADDR              listen address of the API (default :8080)
//	HTTP_READ_TIMEOUT      default 10s
//	HTTP_WRITE_TIMEOUT     default 30s
//	HTTP_IDLE_TIMEOUT      default 120s
//	HTTP_SHUTDOWN_TIMEOUT  default 5s
//	NAMING_MAX_LISTING     largest count served by one listing request (default 1000)
//	NAMING_PREWARM         abbreviations allocated before serving (default 0)
//
// # Error Handling
//
//   - ErrLoadingEnvFile – an explicitly requested .env file could not be read.
//   - ErrParsingConfig  – a variable could not be parsed.
//   - ErrInvalidConfig  – parsed values are out of range.
package config

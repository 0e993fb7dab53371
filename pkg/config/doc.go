// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv, which reads an optional .env file
// into the environment, with github.com/caarlos0/env/v11, which parses the
// environment into structs annotated with `env` tags. Every configuration
// type is parsed once and cached for the lifetime of the process.
//
//	type Config struct {
//		DefaultLocale    string   `env:"DEFAULT_LOCALE" envDefault:"en"`
//		SupportedLocales []string `env:"SUPPORTED_LOCALES" envDefault:"en,de" envSeparator:","`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Reload and ResetCache exist for tests that change the environment.
package config

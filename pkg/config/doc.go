// Package config loads typed configuration from environment variables.
//
// Structs are described with caarlos0/env tags. The default .env file in the
// working directory is read once through godotenv before the first parse;
// real environment variables always win over file values.
//
//	type Config struct {
//	    Addr string        `env:"HTTP_ADDR" envDefault:":8080"`
//	    TTL  time.Duration `env:"FORM_TTL" envDefault:"30m"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil { ... }
//
// Each struct type is parsed once per process and served from a cache
// afterwards. Reset clears the cache. Parse skips both the cache and the
// process environment, which makes it the helper of choice in tests.
package config

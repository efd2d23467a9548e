// Package config loads typed application configuration from environment
// variables, using github.com/caarlos0/env/v11 for struct parsing and
// github.com/joho/godotenv for optional .env files.
//
// Each configuration type is parsed once and cached for the life of the
// process, so packages can call Load independently without re-reading the
// environment. Reset clears the cache between tests.
//
//	type Config struct {
//	    Addr      string        `env:"HTTP_ADDR" envDefault:":8080"`
//	    WalletURL string        `env:"WALLET_API_URL,required"`
//	    Timeout   time.Duration `env:"WALLET_API_TIMEOUT" envDefault:"5s"`
//	}
//
//	cfg := config.MustLoad[Config]()
package config

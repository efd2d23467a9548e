package main

import (
	"time"

	"github.com/dmitrymomot/walletdesk/pkg/httpserver"
	"github.com/dmitrymomot/walletdesk/pkg/redis"
)

type appConfig struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Name string `env:"APP_NAME" envDefault:"walletdesk"`

	HTTP  httpserver.Config
	Redis redis.Config

	WalletAPIURL     string        `env:"WALLET_API_URL,required"`
	WalletAPITimeout time.Duration `env:"WALLET_API_TIMEOUT" envDefault:"10s"`
	WalletLocale     string        `env:"WALLET_LOCALE" envDefault:"en-US"`

	ToastDefaultDuration time.Duration `env:"TOAST_DEFAULT_DURATION" envDefault:"3s"`
	ToastStreamBuffer    int           `env:"TOAST_STREAM_BUFFER" envDefault:"32"`
	ToastStreamChannel   string        `env:"TOAST_STREAM_CHANNEL" envDefault:"walletdesk:toasts"`
}

// Package desk mounts the wallet desk web surface: the placeholder page, the
// balance card, modals and the live toast stream.
//
//	r := chi.NewRouter()
//	r.Mount("/", desk.New(toasts, events, walletClient, formatter).Router())
package desk

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/walletdesk/pkg/broadcast"
	"github.com/dmitrymomot/walletdesk/pkg/logger"
	"github.com/dmitrymomot/walletdesk/pkg/toast"
	"github.com/dmitrymomot/walletdesk/pkg/wallet"
)

// BalanceFetcher retrieves a customer's wallet balance.
type BalanceFetcher interface {
	Balance(ctx context.Context, customerID string) (wallet.Balance, error)
}

// Module holds the dependencies of the desk handlers.
type Module struct {
	toasts    *toast.Controller
	events    broadcast.Broadcaster[toast.Event]
	balances  BalanceFetcher
	formatter *wallet.Formatter
	logger    *slog.Logger
	title     string
}

// Option configures a Module.
type Option func(*Module)

func WithLogger(l *slog.Logger) Option {
	return func(m *Module) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithTitle sets the page title.
func WithTitle(title string) Option {
	return func(m *Module) {
		if title != "" {
			m.title = title
		}
	}
}

// New creates the module. events must be the broadcaster toasts publishes to.
func New(toasts *toast.Controller, events broadcast.Broadcaster[toast.Event], balances BalanceFetcher, formatter *wallet.Formatter, opts ...Option) *Module {
	m := &Module{
		toasts:    toasts,
		events:    events,
		balances:  balances,
		formatter: formatter,
		logger:    logger.Noop(),
		title:     "Wallet Desk",
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With(logger.Component("desk"))
	return m
}

// Router returns the module routes.
func (m *Module) Router() chi.Router {
	r := chi.NewRouter()

	r.Get("/", m.page)
	r.Get("/customers/{customerID}/balance", m.balance)
	r.Get("/modals/{category}", m.modal)

	r.Route("/toasts", func(r chi.Router) {
		r.Post("/", m.presentToast)
		r.Get("/stream", m.streamToasts)
		r.Post("/{toastID}/dismiss", m.dismissToast)
	})

	return r
}

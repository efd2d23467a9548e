package desk

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/walletdesk/modules/desk/views"
	"github.com/dmitrymomot/walletdesk/pkg/environment"
	"github.com/dmitrymomot/walletdesk/pkg/logger"
	"github.com/dmitrymomot/walletdesk/pkg/toast"
	"github.com/dmitrymomot/walletdesk/pkg/variant"
	"github.com/dmitrymomot/walletdesk/pkg/wallet"
)

func (m *Module) page(w http.ResponseWriter, r *http.Request) {
	c := views.Page(views.PageParams{
		Title:       m.title,
		Environment: string(environment.FromContext(r.Context())),
	})
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		m.logger.ErrorContext(r.Context(), "failed to render page", logger.Error(err))
	}
}

func (m *Module) balance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	customerID := chi.URLParam(r, "customerID")

	params := views.BalanceParams{CustomerID: customerID}
	status := http.StatusOK

	bal, err := m.balances.Balance(ctx, customerID)
	switch {
	case err == nil:
		params.Available = true
		params.Formatted = m.formatter.Format(bal.Amount, bal.Currency)
	case errors.Is(err, wallet.ErrInvalidCustomerID):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	default:
		status = http.StatusBadGateway
		m.logger.WarnContext(ctx, "wallet balance unavailable",
			logger.CustomerID(customerID),
			logger.Error(err),
		)
		m.notify(ctx, "Balance unavailable", variant.ToastError)
	}

	if err := render(w, r, status, views.BalanceCard(params), datastar.WithSelector("#"+views.BalanceID)); err != nil {
		m.logger.ErrorContext(ctx, "failed to render balance", logger.Error(err))
	}
}

func (m *Module) modal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	category, err := variant.ParseModalCategory(chi.URLParam(r, "category"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	params := views.ModalParams{
		Descriptor: variant.MustModal(category),
		Title:      r.URL.Query().Get("title"),
		Body:       r.URL.Query().Get("body"),
	}
	if params.Title == "" {
		params.Title = modalTitles[category]
	}

	err = render(w, r, http.StatusOK, views.Modal(params),
		datastar.WithSelector("#"+views.ModalRootID),
		datastar.WithMode(datastar.ElementPatchModeInner),
	)
	if err != nil {
		m.logger.ErrorContext(ctx, "failed to render modal", logger.Error(err))
	}
}

var modalTitles = map[variant.ModalCategory]string{
	variant.ModalSuccess: "Done",
	variant.ModalError:   "Something went wrong",
	variant.ModalWarning: "Are you sure?",
	variant.ModalConfirm: "Please confirm",
}

// maxDurationMS is the largest duration_ms that fits a time.Duration.
const maxDurationMS = math.MaxInt64 / int64(time.Millisecond)

type toastSignals struct {
	Message    string `json:"message"`
	Category   string `json:"category"`
	DurationMS int64  `json:"duration_ms"`
}

func (m *Module) presentToast(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in toastSignals
	if isDataStar(r) {
		if err := datastar.ReadSignals(r, &in); err != nil {
			http.Error(w, "invalid signals", http.StatusBadRequest)
			return
		}
	} else {
		in.Message = r.FormValue("message")
		in.Category = r.FormValue("category")
		if raw := strings.TrimSpace(r.FormValue("duration_ms")); raw != "" {
			ms, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				http.Error(w, "invalid duration_ms", http.StatusBadRequest)
				return
			}
			in.DurationMS = ms
		}
	}

	if in.DurationMS < 0 || in.DurationMS > maxDurationMS {
		http.Error(w, "duration_ms out of range", http.StatusBadRequest)
		return
	}

	category, err := variant.ParseToastCategory(in.Category)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h, err := m.toasts.Present(ctx, toast.Request{
		Message:  in.Message,
		Category: category,
		Duration: time.Duration(in.DurationMS) * time.Millisecond,
	}, m.disposed)
	switch {
	case err == nil:
	case errors.Is(err, toast.ErrControllerClosed):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	default:
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Location", "/toasts/"+h.ID())
	w.WriteHeader(http.StatusAccepted)
}

func (m *Module) dismissToast(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "toastID")
	if _, ok := m.toasts.Get(id); !ok {
		http.Error(w, toast.ErrNotFound.Error(), http.StatusNotFound)
		return
	}
	m.toasts.Dismiss(id)
	w.WriteHeader(http.StatusNoContent)
}

// streamToasts replays live toasts and then forwards every lifecycle event as
// a datastar element patch until the client goes away.
func (m *Module) streamToasts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sub := m.events.Subscribe(ctx)
	defer sub.Close()

	sse := datastar.NewSSE(w, r)
	container := datastar.WithSelector("#" + views.ToastContainerID)

	replayed := make(map[string]struct{})
	for _, s := range m.toasts.Active() {
		replayed[s.ID] = struct{}{}
		if err := sse.PatchElementTempl(views.ToastItem(s), container, datastar.WithMode(datastar.ElementPatchModeAppend)); err != nil {
			return
		}
	}

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-sub.C():
			if !ok {
				return
			}
			if _, dup := replayed[ev.ID]; dup && ev.From == "" {
				continue
			}
			if err := patchToast(sse, ev); err != nil {
				m.logger.DebugContext(ctx, "toast stream closed", logger.Error(err))
				return
			}
		}
	}
}

func patchToast(sse *datastar.ServerSentEventGenerator, ev toast.Event) error {
	elementSelector := datastar.WithSelector("#" + views.ToastElementID(ev.ID))

	switch {
	case ev.Released, ev.Phase == toast.PhaseClosed:
		return sse.PatchElements("", elementSelector, datastar.WithMode(datastar.ElementPatchModeRemove))
	case ev.From == "":
		return sse.PatchElementTempl(views.ToastItem(ev.Snapshot),
			datastar.WithSelector("#"+views.ToastContainerID),
			datastar.WithMode(datastar.ElementPatchModeAppend),
		)
	default:
		return sse.PatchElementTempl(views.ToastItem(ev.Snapshot), elementSelector)
	}
}

// notify presents a server-originated toast.
func (m *Module) notify(ctx context.Context, message string, category variant.ToastCategory) {
	if _, err := m.toasts.Present(ctx, toast.Request{Message: message, Category: category}, m.disposed); err != nil {
		m.logger.WarnContext(ctx, "failed to present toast", logger.Error(err))
	}
}

func (m *Module) disposed(s toast.Snapshot) {
	m.logger.LogAttrs(context.Background(), slog.LevelDebug, "toast disposed",
		logger.ToastID(s.ID),
		slog.String("reason", string(s.Reason)),
	)
}

// Package views holds the templ components rendered by the desk module.
//
// Components are authored in views.templ; run `templ generate` after editing
// it to refresh views_templ.go.
package views

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/walletdesk/pkg/toast"
	"github.com/dmitrymomot/walletdesk/pkg/variant"
)

const (
	ToastContainerID = "toast-container"
	ModalRootID      = "modal-root"
	BalanceID        = "balance"
)

// ToastElementID is the DOM id of the element rendered for a toast.
func ToastElementID(id string) string {
	return "toast-" + id
}

// PageParams configures the placeholder page.
type PageParams struct {
	Title       string
	Environment string
}

// BalanceParams configures the balance card.
type BalanceParams struct {
	CustomerID string
	Formatted  string
	Available  bool
}

// ModalParams configures a modal dialog.
type ModalParams struct {
	Descriptor variant.Descriptor
	Title      string
	Body       string
}

func showEnvironment(env string) bool {
	return env != "" && env != "production"
}

func isConfirm(d variant.Descriptor) bool {
	return d.Category == string(variant.ModalConfirm)
}

func closing(p toast.Phase) bool {
	return p == toast.PhaseClosing || p == toast.PhaseClosed
}

func dismissAction(id string) string {
	return fmt.Sprintf("@post('/toasts/%s/dismiss')", id)
}

// stylesheet is built from constants only. The fade duration is the toast
// close transition so the view finishes fading exactly when the toast closes.
var stylesheet = func() string {
	var b strings.Builder
	b.WriteString("<style>")
	fmt.Fprintf(&b, ".toast{opacity:1;transition:opacity %dms ease-in-out;border-left:4px solid;padding:.75rem 1rem;margin:.5rem}",
		toast.CloseTransition.Milliseconds())
	b.WriteString(".toast.is-closing{opacity:0}.toast-stack{position:fixed;top:1rem;right:1rem}")
	for _, c := range variant.ToastCategories() {
		d := variant.MustToast(c)
		fmt.Fprintf(&b, ".%s{border-color:%s}", d.Class, d.Color)
	}
	for _, c := range variant.ModalCategories() {
		d := variant.MustModal(c)
		fmt.Fprintf(&b, ".%s .icon{color:%s}.%s .primary{background:%s}", d.Class, d.Color, d.Class, d.Color)
	}
	b.WriteString("</style>")
	return b.String()
}()

package desk

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

const (
	dataStarAccept     = "text/event-stream"
	dataStarQueryParam = "datastar"
)

// isDataStar reports whether r was issued by the datastar client, which expects
// an SSE response of element patches.
func isDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), dataStarAccept) {
		return true
	}
	if r.URL.Query().Has(dataStarQueryParam) {
		return true
	}
	return strings.Contains(r.Header.Get("Content-Type"), "application/x-datastar")
}

// render writes c as an SSE patch for datastar requests and as an HTML
// document fragment otherwise.
func render(w http.ResponseWriter, r *http.Request, status int, c templ.Component, opts ...datastar.PatchElementOption) error {
	if isDataStar(r) {
		return datastar.NewSSE(w, r).PatchElementTempl(c, opts...)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	return c.Render(r.Context(), w)
}

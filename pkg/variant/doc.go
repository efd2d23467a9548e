// Package variant resolves a symbolic category to an immutable presentation
// descriptor (icon identity, color token and style class) for toast and modal
// renderers.
//
// Toasts and modals use two distinct closed taxonomies:
//
//	toast: info, success, error, warning
//	modal: success, error, warning, confirm
//
// They are kept as separate types with separate tables. "info" exists only for
// toasts; "confirm" exists only for modals. Shared categories resolve to the
// same icon and color in both tables.
//
// Unknown categories are rejected with ErrInvalidCategory; there is no fallback
// descriptor. Tables are built once at package init and never mutated, so all
// functions are safe for concurrent use.
package variant

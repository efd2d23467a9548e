package variant

import (
	"fmt"
	"strings"
)

// ToastCategory is the closed set of toast categories.
type ToastCategory string

const (
	ToastInfo    ToastCategory = "info"
	ToastSuccess ToastCategory = "success"
	ToastError   ToastCategory = "error"
	ToastWarning ToastCategory = "warning"
)

// ModalCategory is the closed set of modal categories.
type ModalCategory string

const (
	ModalSuccess ModalCategory = "success"
	ModalError   ModalCategory = "error"
	ModalWarning ModalCategory = "warning"
	ModalConfirm ModalCategory = "confirm"
)

// Icon is an opaque glyph identifier resolved by the view layer.
type Icon string

const (
	IconInformation Icon = "information-circle"
	IconCheck       Icon = "check-circle"
	IconCross       Icon = "x-circle"
	IconExclamation Icon = "exclamation-triangle"
	IconQuestion    Icon = "question-mark-circle"
)

// Color tokens (hex).
const (
	ColorInfo    = "#3b82f6"
	ColorSuccess = "#22c55e"
	ColorError   = "#ef4444"
	ColorWarning = "#f59e0b"
	ColorConfirm = "#6366f1"
)

// Descriptor bundles presentation attributes for a category.
type Descriptor struct {
	Category string
	Icon     Icon
	Color    string
	Class    string
}

var (
	toastTable = map[ToastCategory]Descriptor{
		ToastInfo:    {Category: string(ToastInfo), Icon: IconInformation, Color: ColorInfo, Class: "toast-info"},
		ToastSuccess: {Category: string(ToastSuccess), Icon: IconCheck, Color: ColorSuccess, Class: "toast-success"},
		ToastError:   {Category: string(ToastError), Icon: IconCross, Color: ColorError, Class: "toast-error"},
		ToastWarning: {Category: string(ToastWarning), Icon: IconExclamation, Color: ColorWarning, Class: "toast-warning"},
	}

	modalTable = map[ModalCategory]Descriptor{
		ModalSuccess: {Category: string(ModalSuccess), Icon: IconCheck, Color: ColorSuccess, Class: "modal-success"},
		ModalError:   {Category: string(ModalError), Icon: IconCross, Color: ColorError, Class: "modal-error"},
		ModalWarning: {Category: string(ModalWarning), Icon: IconExclamation, Color: ColorWarning, Class: "modal-warning"},
		ModalConfirm: {Category: string(ModalConfirm), Icon: IconQuestion, Color: ColorConfirm, Class: "modal-confirm"},
	}
)

// Toast resolves a toast category.
func Toast(c ToastCategory) (Descriptor, error) {
	d, ok := toastTable[c]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: toast %q", ErrInvalidCategory, c)
	}
	return d, nil
}

// Modal resolves a modal category.
func Modal(c ModalCategory) (Descriptor, error) {
	d, ok := modalTable[c]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: modal %q", ErrInvalidCategory, c)
	}
	return d, nil
}

// MustToast is like Toast but panics on unknown categories.
func MustToast(c ToastCategory) Descriptor {
	d, err := Toast(c)
	if err != nil {
		panic(err)
	}
	return d
}

// MustModal is like Modal but panics on unknown categories.
func MustModal(c ModalCategory) Descriptor {
	d, err := Modal(c)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseToastCategory normalizes untrusted input. Empty input yields ToastInfo.
func ParseToastCategory(s string) (ToastCategory, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ToastInfo, nil
	}
	c := ToastCategory(s)
	if _, ok := toastTable[c]; !ok {
		return "", fmt.Errorf("%w: toast %q", ErrInvalidCategory, s)
	}
	return c, nil
}

// ParseModalCategory normalizes untrusted input.
func ParseModalCategory(s string) (ModalCategory, error) {
	c := ModalCategory(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := modalTable[c]; !ok {
		return "", fmt.Errorf("%w: modal %q", ErrInvalidCategory, s)
	}
	return c, nil
}

// ToastCategories lists the toast taxonomy in declaration order.
func ToastCategories() []ToastCategory {
	return []ToastCategory{ToastInfo, ToastSuccess, ToastError, ToastWarning}
}

// ModalCategories lists the modal taxonomy in declaration order.
func ModalCategories() []ModalCategory {
	return []ModalCategory{ModalSuccess, ModalError, ModalWarning, ModalConfirm}
}

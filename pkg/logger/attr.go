package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". Nil errors produce an empty Attr, which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// ToastID records a toast handle identifier under "toast_id".
func ToastID(id string) slog.Attr {
	return slog.String("toast_id", id)
}

// Phase records a lifecycle phase under "phase".
func Phase[P ~string](p P) slog.Attr {
	return slog.String("phase", string(p))
}

// Category records a variant category under "category".
func Category[C ~string](c C) slog.Attr {
	return slog.String("category", string(c))
}

// CustomerID records the customer identifier under "customer_id".
func CustomerID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("customer_id", id)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

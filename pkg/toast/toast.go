package toast

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrymomot/walletdesk/pkg/statemachine"
	"github.com/dmitrymomot/walletdesk/pkg/variant"
)

const (
	// DefaultDuration is used when a Request leaves Duration unset.
	DefaultDuration = 3000 * time.Millisecond

	// CloseTransition is the fixed delay between Closing and Closed. The view
	// layer uses the same value for its fade-out transition.
	CloseTransition = 300 * time.Millisecond
)

// Phase is the lifecycle stage of a toast.
type Phase string

const (
	PhaseVisible Phase = "visible"
	PhaseClosing Phase = "closing"
	PhaseClosed  Phase = "closed"
)

// Reason records what moved a toast into Closing.
type Reason string

const (
	ReasonNone      Reason = ""
	ReasonExpired   Reason = "expired"
	ReasonDismissed Reason = "dismissed"
)

type trigger string

const (
	triggerExpire  trigger = "expire"
	triggerDismiss trigger = "dismiss"
	triggerSettle  trigger = "settle"
)

// closingReasons maps the triggers that leave Visible to the recorded reason.
var closingReasons = map[trigger]Reason{
	triggerExpire:  ReasonExpired,
	triggerDismiss: ReasonDismissed,
}

// newPhaseMachine returns the Visible -> Closing -> Closed machine used by every
// handle. onChange runs after each successful transition.
func newPhaseMachine(onChange statemachine.Hook[Phase, trigger]) *statemachine.Machine[Phase, trigger] {
	return statemachine.MustNew(PhaseVisible,
		statemachine.WithTransition(PhaseVisible, PhaseClosing, triggerExpire),
		statemachine.WithTransition(PhaseVisible, PhaseClosing, triggerDismiss),
		statemachine.WithTransition(PhaseClosing, PhaseClosed, triggerSettle),
		statemachine.WithTerminal[Phase, trigger](PhaseClosed),
		statemachine.WithHook(onChange),
	)
}

// Request describes a toast to present.
type Request struct {
	Message  string
	Category variant.ToastCategory // defaults to info
	Duration time.Duration         // defaults to the controller default
}

// normalize applies defaults and validates the request.
func (r Request) normalize(defaultDuration time.Duration) (Request, variant.Descriptor, error) {
	if strings.TrimSpace(r.Message) == "" {
		return r, variant.Descriptor{}, ErrEmptyMessage
	}
	if r.Category == "" {
		r.Category = variant.ToastInfo
	}
	desc, err := variant.Toast(r.Category)
	if err != nil {
		return r, variant.Descriptor{}, err
	}
	switch {
	case r.Duration == 0:
		r.Duration = defaultDuration
	case r.Duration < 0:
		return r, variant.Descriptor{}, fmt.Errorf("%w: %s", ErrInvalidDuration, r.Duration)
	}
	return r, desc, nil
}

// Snapshot is a point-in-time view of a toast for rendering.
type Snapshot struct {
	ID         string
	Message    string
	Category   variant.ToastCategory
	Descriptor variant.Descriptor
	Duration   time.Duration
	Phase      Phase
	Reason     Reason
	CreatedAt  time.Time
}

// Event is published when a toast is presented (From is empty), on every phase
// change, and once when a handle is released before reaching Closed.
type Event struct {
	Snapshot
	From     Phase
	Released bool
}

// DisposeFunc is invoked exactly once when a toast reaches Closed.
type DisposeFunc func(Snapshot)

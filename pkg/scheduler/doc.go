// Package scheduler provides the deferred-callback timer service used by
// components that drive state transitions from timers.
//
// Two implementations are provided:
//
//   - Real: backed by time.AfterFunc, used in production.
//   - Fake: a manually advanced clock for deterministic tests. Callbacks fire
//     synchronously inside Advance, in deadline order, on the caller's goroutine.
//
// # Usage
//
//	clock := scheduler.NewFake()
//	timer := clock.AfterFunc(3*time.Second, func() { fmt.Println("fired") })
//
//	clock.Advance(2 * time.Second) // nothing
//	clock.Advance(time.Second)     // prints "fired"
//	timer.Stop()                   // false: already fired
//
// Stop is safe to call any number of times on both implementations.
package scheduler

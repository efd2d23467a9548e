// Package broadcast provides a generic, non-blocking fan-out of values to
// concurrent subscribers.
//
// The toast controller publishes every phase change through a Broadcaster so
// that each open view stream (one per browser tab) can patch its DOM.
//
//	b := broadcast.NewMemory[toast.Event](16)
//	defer b.Close()
//
//	sub := b.Subscribe(r.Context())
//	defer sub.Close()
//
//	for ev := range sub.C() {
//	    // render ev
//	}
//
// Publishing never blocks. A subscriber that cannot accept a value is closed and
// removed; its range loop ends and the stream reconnects.
//
// NewRedis shares one stream between replicas through a Redis pub/sub
// channel. Values must be JSON encodable.
package broadcast

package event

// Dispatcher delivers events to subscribed listener tables. It is not safe
// for concurrent use; all input is dispatched from the UI loop.
type Dispatcher struct {
	subs []*Subscription
}

// NewDispatcher creates a dispatcher with no listeners
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Subscription ties a listener table to a dispatcher until Close
type Subscription struct {
	d         *Dispatcher
	listeners []Listener
	closed    bool
}

// Subscribe attaches all listeners at once and returns the subscription
// that detaches them
func (d *Dispatcher) Subscribe(listeners ...Listener) *Subscription {
	sub := &Subscription{
		d:         d,
		listeners: append([]Listener(nil), listeners...),
	}
	d.subs = append(d.subs, sub)
	return sub
}

// Close detaches every listener of the subscription. Closing twice is a
// no-op.
func (s *Subscription) Close() {
	if s == nil || s.closed {
		return
	}
	s.closed = true
	subs := s.d.subs
	for i, other := range subs {
		if other == s {
			s.d.subs = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
}

// Closed reports whether Close was called
func (s *Subscription) Closed() bool {
	return s == nil || s.closed
}

// Listeners returns the number of attached listeners
func (d *Dispatcher) Listeners() int {
	n := 0
	for _, sub := range d.subs {
		n += len(sub.listeners)
	}
	return n
}

type delivery struct {
	sub    *Subscription
	handle func(*Event)
}

// Dispatch delivers e to the matching listeners: intercepting window
// listeners first, then surface listeners when e targets the surface, then
// the remaining window listeners. Subscription order is kept within each
// pass.
func (d *Dispatcher) Dispatch(e Event) {
	var intercept, surface, bubble []delivery
	for _, sub := range d.subs {
		for _, l := range sub.listeners {
			if l.Type != e.Type || l.Handle == nil {
				continue
			}
			switch {
			case l.Scope == Surface:
				if e.Target == Surface {
					surface = append(surface, delivery{sub, l.Handle})
				}
			case l.Intercept:
				intercept = append(intercept, delivery{sub, l.Handle})
			default:
				bubble = append(bubble, delivery{sub, l.Handle})
			}
		}
	}

	for _, pass := range [][]delivery{intercept, surface, bubble} {
		for _, dl := range pass {
			if e.stopped {
				return
			}
			// a handler may close other subscriptions mid-dispatch
			if dl.sub.closed {
				continue
			}
			dl.handle(&e)
		}
	}
}

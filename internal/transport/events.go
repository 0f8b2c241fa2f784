package transport

// StateChange is emitted to subscribers on every transport state
// transition, including the automatic stop at end of song.
type StateChange struct {
	Previous State
	Current  State
}

// Subscription delivers transport events to one consumer. Events are
// buffered; a consumer that stops draining loses events rather than
// blocking the transport.
type Subscription struct {
	StateChanged chan StateChange
	Done         chan struct{}
}

const subscriptionBuffer = 16

// Subscribe registers a new event consumer.
func (e *Engine) Subscribe() *Subscription {
	sub := &Subscription{
		StateChanged: make(chan StateChange, subscriptionBuffer),
		Done:         make(chan struct{}),
	}
	e.mu.Lock()
	e.subs = append(e.subs, sub)
	e.mu.Unlock()
	return sub
}

// Unsubscribe removes a consumer and closes its Done channel. Calling
// it again, or after Close, is a no-op.
func (e *Engine) Unsubscribe(sub *Subscription) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, s := range e.subs {
		if s == sub {
			e.subs = append(e.subs[:i], e.subs[i+1:]...)
			close(sub.Done)
			return
		}
	}
}

// notify fans a state change out to all subscribers. Called with the
// engine mutex held.
func (e *Engine) notify(change StateChange) {
	for _, sub := range e.subs {
		select {
		case sub.StateChanged <- change:
		default:
		}
	}
}

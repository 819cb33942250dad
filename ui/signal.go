package ui

// Signal is a payload-free notification: "something changed, re-check state".
type Signal struct {
	handlers []func()
}

// Connect subscribes fn to the signal.
func (s *Signal) Connect(fn func()) {
	if fn != nil {
		s.handlers = append(s.handlers, fn)
	}
}

// Emit calls every subscriber in subscription order.
func (s *Signal) Emit() {
	for _, fn := range s.handlers {
		fn()
	}
}

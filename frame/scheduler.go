// Package frame batches visual updates to the next rendered frame.
package frame

// Scheduler queues visual updates until the next frame. Each key holds at
// most one pending task: a later Request replaces the function but keeps
// the queue position of the first one, so rapid pointer moves collapse
// into a single update.
type Scheduler struct {
	order   []string
	pending map[string]func()
}

// NewScheduler creates an empty scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{
		pending: make(map[string]func()),
	}
}

// Request schedules fn for the next Flush under key
func (s *Scheduler) Request(key string, fn func()) {
	if _, exists := s.pending[key]; !exists {
		s.order = append(s.order, key)
	}
	s.pending[key] = fn
}

// Cancel drops the pending task for key, if any
func (s *Scheduler) Cancel(key string) {
	if _, exists := s.pending[key]; !exists {
		return
	}
	delete(s.pending, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Pending returns the number of queued tasks
func (s *Scheduler) Pending() int {
	return len(s.order)
}

// Flush runs the queued tasks in order. Tasks requested while flushing
// run on the following frame.
func (s *Scheduler) Flush() {
	order, pending := s.order, s.pending
	s.order = nil
	s.pending = make(map[string]func())

	for _, key := range order {
		pending[key]()
	}
}

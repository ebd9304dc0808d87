package activity

import (
	"fmt"
	"sync"
)

// Handler processes a delivered activity event.
type Handler interface {
	Handle(event Event) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(event Event) error

func (f HandlerFunc) Handle(event Event) error {
	return f(event)
}

// Dispatcher accepts activity events for asynchronous processing. Publish
// must not block request handling: it either enqueues or returns an error.
type Dispatcher interface {
	Publish(event Event) error
	Subscribe(handler Handler)
	Start() error
	Stop() error
}

// InMemoryDispatcher is a channel-backed Dispatcher running a single worker
// goroutine. Handler errors are reported per handler and do not stop the
// worker.
type InMemoryDispatcher struct {
	mu       sync.RWMutex
	handlers []Handler
	running  bool
	stopCh   chan struct{}
	eventCh  chan Event
	wg       sync.WaitGroup
	onError  func(event Event, err error)
}

// NewInMemoryDispatcher creates a dispatcher with the given buffer size.
func NewInMemoryDispatcher(bufferSize int, onError func(event Event, err error)) *InMemoryDispatcher {
	if bufferSize <= 0 {
		bufferSize = 100
	}
	if onError == nil {
		onError = func(Event, error) {}
	}

	return &InMemoryDispatcher{
		stopCh:  make(chan struct{}),
		eventCh: make(chan Event, bufferSize),
		onError: onError,
	}
}

// Publish enqueues an event. It fails when the dispatcher is not running or
// the buffer is full; callers treat both as best-effort losses.
func (d *InMemoryDispatcher) Publish(event Event) error {
	d.mu.RLock()
	running := d.running
	d.mu.RUnlock()

	if !running {
		return fmt.Errorf("activity dispatcher is not running")
	}

	select {
	case d.eventCh <- event:
		return nil
	default:
		return fmt.Errorf("activity event buffer is full")
	}
}

// Subscribe registers a handler for all events. Must be called before Start.
func (d *InMemoryDispatcher) Subscribe(handler Handler) {
	if handler == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = append(d.handlers, handler)
}

// Start launches the worker goroutine.
func (d *InMemoryDispatcher) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		return fmt.Errorf("activity dispatcher is already running")
	}

	d.running = true
	d.stopCh = make(chan struct{})
	d.wg.Add(1)
	go d.run()

	return nil
}

// Stop drains nothing: events still buffered when Stop is called are
// discarded once the worker observes the stop signal.
func (d *InMemoryDispatcher) Stop() error {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return fmt.Errorf("activity dispatcher is not running")
	}
	d.running = false
	close(d.stopCh)
	d.mu.Unlock()

	d.wg.Wait()
	return nil
}

func (d *InMemoryDispatcher) run() {
	defer d.wg.Done()

	for {
		select {
		case <-d.stopCh:
			return
		case event := <-d.eventCh:
			d.deliver(event)
		}
	}
}

func (d *InMemoryDispatcher) deliver(event Event) {
	d.mu.RLock()
	handlers := make([]Handler, len(d.handlers))
	copy(handlers, d.handlers)
	d.mu.RUnlock()

	for _, h := range handlers {
		if err := h.Handle(event); err != nil {
			d.onError(event, err)
		}
	}
}

package host

import (
	"context"
	"fmt"
)

// saveRequest asks the worker for a save and, when done is set, waits for
// the result.
type saveRequest struct {
	done chan error
}

// saveWorker serializes store writes through a single goroutine. Kicks
// coalesce: any number of notifications while a save is running cause one
// more save.
type saveWorker struct {
	save     func(context.Context) error
	kick     chan struct{}
	requests chan saveRequest
	quit     chan struct{}
	stopped  chan struct{}
}

func newSaveWorker(save func(context.Context) error) *saveWorker {
	w := &saveWorker{
		save:     save,
		kick:     make(chan struct{}, 1),
		requests: make(chan saveRequest),
		quit:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	go w.loop()
	return w
}

func (w *saveWorker) loop() {
	defer close(w.stopped)
	for {
		select {
		case <-w.kick:
			w.execute()
		case req := <-w.requests:
			req.done <- w.execute()
		case <-w.quit:
			// pending kick
			select {
			case <-w.kick:
				w.execute()
			default:
			}
			return
		}
	}
}

// execute runs one save, recovering from panics.
func (w *saveWorker) execute() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("autosave panic: %v", r)
		}
	}()
	return w.save(context.Background())
}

// Kick schedules a save without waiting.
func (w *saveWorker) Kick() {
	select {
	case w.kick <- struct{}{}:
	default:
	}
}

// Flush runs a save and waits for it.
func (w *saveWorker) Flush() error {
	req := saveRequest{done: make(chan error, 1)}
	select {
	case w.requests <- req:
		return <-req.done
	case <-w.stopped:
		return fmt.Errorf("autosave stopped")
	}
}

// Stop runs any pending save and shuts the worker down.
func (w *saveWorker) Stop() {
	select {
	case <-w.quit:
	default:
		close(w.quit)
	}
	<-w.stopped
}

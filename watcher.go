package stopwatch

import (
	"reflect"

	"github.com/ProtonMail/stopwatch/events"
	"github.com/ProtonMail/stopwatch/internal/queue"
)

// watcher delivers the runner's events of the selected types to one subscriber, without ever blocking the runner.
type watcher struct {
	filter map[reflect.Type]struct{}
	queue  *queue.QueuedChannel[events.Event]
}

func newWatcher(ofType ...events.Event) *watcher {
	filter := make(map[reflect.Type]struct{}, len(ofType))

	for _, event := range ofType {
		filter[reflect.TypeOf(event)] = struct{}{}
	}

	return &watcher{
		filter: filter,
		queue:  queue.NewQueuedChannel[events.Event](1, 1),
	}
}

// wants returns true if the watcher selected the event's type, or selected no type at all.
func (w *watcher) wants(event events.Event) bool {
	if len(w.filter) == 0 {
		return true
	}

	_, ok := w.filter[reflect.TypeOf(event)]

	return ok
}

func (w *watcher) channel() <-chan events.Event {
	return w.queue.GetChannel()
}

func (w *watcher) deliver(event events.Event) bool {
	return w.queue.Enqueue(event)
}

// stop closes the channel once the events already published have been read.
func (w *watcher) stop() {
	w.queue.Close()
}

// abandon closes the channel, dropping the events not yet read.
func (w *watcher) abandon() {
	w.queue.CloseAndDiscard()
}

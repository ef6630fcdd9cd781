package levels

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Debounce is how long a file must stay quiet before its change is reported.
// A burst of writes to one file yields a single event after the last write.
const Debounce = 100 * time.Millisecond

const subscriptionBuffer = 16

// Watcher reports level files that changed on disk to its subscriptions.
// A change is reported for each written, created, renamed or removed level
// file once the file has been quiet for Debounce.
type Watcher struct {
	watcher *fsnotify.Watcher
	fire    chan string
	closeCh chan struct{}
	once    sync.Once

	mu     sync.Mutex
	subs   map[*Subscription]struct{}
	closed bool
}

// Subscription receives the changes a Watcher reports while it is open.
// Changes made while nobody is subscribed are not replayed.
type Subscription struct {
	Events <-chan string
	Errors <-chan error

	events chan string
	errors chan error
	w      *Watcher
	once   sync.Once
}

// NewWatcher starts watching the given directories (not recursively).
func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		fire:    make(chan string),
		closeCh: make(chan struct{}),
		subs:    make(map[*Subscription]struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Subscribe opens a new subscription. Its channels are closed by
// Subscription.Close or when the watcher stops.
func (w *Watcher) Subscribe() *Subscription {
	s := &Subscription{
		events: make(chan string, subscriptionBuffer),
		errors: make(chan error, 1),
		w:      w,
	}
	s.Events, s.Errors = s.events, s.errors

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		s.shut()
		return s
	}
	w.subs[s] = struct{}{}
	return s
}

// Close detaches the subscription and closes its channels.
// It is safe to call more than once.
func (s *Subscription) Close() {
	s.w.mu.Lock()
	defer s.w.mu.Unlock()
	delete(s.w.subs, s)
	s.shut()
}

// shut closes the channels. The caller holds w.mu.
func (s *Subscription) shut() {
	s.once.Do(func() {
		close(s.events)
		close(s.errors)
	})
}

// Close stops the watcher and closes every subscription.
// It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	pending := make(map[string]*time.Timer)
	defer func() {
		for _, t := range pending {
			t.Stop()
		}
		w.mu.Lock()
		w.closed = true
		for s := range w.subs {
			s.shut()
		}
		clear(w.subs)
		w.mu.Unlock()
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !IsLevelFile(event.Name) {
				continue
			}
			if t, ok := pending[event.Name]; ok {
				t.Reset(Debounce)
				continue
			}
			name := event.Name
			pending[name] = time.AfterFunc(Debounce, func() {
				select {
				case w.fire <- name:
				case <-w.closeCh:
				}
			})
		case name := <-w.fire:
			delete(pending, name)
			w.publishEvent(name)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.publishError(err)
		case <-w.closeCh:
			return
		}
	}
}

// publishEvent hands a change to every subscription. A subscription whose
// buffer is full misses it.
func (w *Watcher) publishEvent(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for s := range w.subs {
		select {
		case s.events <- path:
		default:
		}
	}
}

func (w *Watcher) publishError(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for s := range w.subs {
		select {
		case s.errors <- err:
		default:
		}
	}
}

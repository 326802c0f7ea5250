package autosave

import (
	"context"
	"time"

	"go-shiftplan/internal/shift"

	"go.uber.org/zap"
)

// Clock abstracts time for the debounce timer so tests can drive it.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) Now() time.Time                         { return time.Now() }
func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// Key identifies the employee-day aggregate a mutation targets. Rapid
// edits on the same key coalesce to the latest one.
type Key struct {
	EmployeeID string
	Day        int
}

type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Mutation is one queued grid edit. Exactly one of Create/Update is set
// for the matching op; deletes carry only the shift id.
type Mutation struct {
	Key          Key
	RestaurantID string
	Op           Op
	ShiftID      string
	Create       *shift.CreateShiftRequest
	Update       *shift.UpdateShiftRequest
}

// Persister receives drained batches in enqueue order. Persisting is
// idempotent per shift id, so a batch that partially failed can be retried
// whole.
type Persister interface {
	Persist(ctx context.Context, batch []Mutation) error
}

// Queue is a single-goroutine actor owning the pending edit set. Callers
// enqueue freely; the queue flushes after a debounce period of inactivity,
// on explicit Flush, and on Close.
type Queue struct {
	persister Persister
	debounce  time.Duration
	clock     Clock
	logger    *zap.Logger

	enqueueC chan Mutation
	cancelC  chan Key
	flushC   chan chan error
	closeC   chan struct{}
	doneC    chan struct{}
}

type Option func(*Queue)

func WithClock(c Clock) Option {
	return func(q *Queue) { q.clock = c }
}

func WithLogger(l *zap.Logger) Option {
	return func(q *Queue) { q.logger = l.Named("autosave.queue") }
}

func NewQueue(persister Persister, debounce time.Duration, opts ...Option) *Queue {
	q := &Queue{
		persister: persister,
		debounce:  debounce,
		clock:     realClock{},
		logger:    zap.L().Named("autosave.queue"),
		enqueueC:  make(chan Mutation),
		cancelC:   make(chan Key),
		flushC:    make(chan chan error),
		closeC:    make(chan struct{}),
		doneC:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(q)
	}
	go q.run()
	return q
}

// Enqueue queues one mutation, replacing any pending mutation on the same
// employee-day.
func (q *Queue) Enqueue(m Mutation) {
	select {
	case q.enqueueC <- m:
	case <-q.doneC:
	}
}

// Cancel discards the pending mutation on a key, if any.
func (q *Queue) Cancel(key Key) {
	select {
	case q.cancelC <- key:
	case <-q.doneC:
	}
}

// Flush synchronously drains everything pending and reports the persist
// outcome.
func (q *Queue) Flush() error {
	reply := make(chan error, 1)
	select {
	case q.flushC <- reply:
		return <-reply
	case <-q.doneC:
		return nil
	}
}

// Close flushes what is pending and stops the actor. The queue accepts no
// work afterwards.
func (q *Queue) Close() {
	select {
	case q.closeC <- struct{}{}:
		<-q.doneC
	case <-q.doneC:
	}
}

func (q *Queue) run() {
	pending := make(map[Key]Mutation)
	var order []Key
	var timer <-chan time.Time

	drain := func() error {
		if len(pending) == 0 {
			return nil
		}

		batch := make([]Mutation, 0, len(pending))
		for _, key := range order {
			if m, ok := pending[key]; ok {
				batch = append(batch, m)
			}
		}

		if err := q.persister.Persist(context.Background(), batch); err != nil {
			// Pending edits survive a failed persist; the next flush
			// retries the whole batch.
			q.logger.Error("autosave flush failed",
				zap.Int("batch_size", len(batch)),
				zap.Error(err),
			)
			return err
		}

		q.logger.Debug("autosave flush completed", zap.Int("batch_size", len(batch)))
		pending = make(map[Key]Mutation)
		order = order[:0]
		return nil
	}

	for {
		select {
		case m := <-q.enqueueC:
			if _, exists := pending[m.Key]; !exists {
				order = append(order, m.Key)
			}
			pending[m.Key] = m
			timer = q.clock.After(q.debounce)

		case key := <-q.cancelC:
			if _, ok := pending[key]; !ok {
				continue
			}
			delete(pending, key)
			for i, k := range order {
				if k == key {
					order = append(order[:i], order[i+1:]...)
					break
				}
			}

		case <-timer:
			timer = nil
			if err := drain(); err != nil {
				timer = q.clock.After(q.debounce)
			}

		case reply := <-q.flushC:
			timer = nil
			reply <- drain()

		case <-q.closeC:
			_ = drain()
			close(q.doneC)
			return
		}
	}
}

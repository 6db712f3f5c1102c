package client

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// ViewState is the display state of a ListView.
type ViewState int

const (
	Idle ViewState = iota
	Loading
	Ready
	Empty
	Error
)

func (s ViewState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Empty:
		return "empty"
	case Error:
		return "error"
	}
	return "unknown"
}

// Snapshot is the state of a view after a change.
type Snapshot[T any] struct {
	State ViewState
	Items []T
	Err   error
	Seq   uint64
}

// FetchFunc loads one page of a list.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// ListView keeps the latest result of a list call. Every refresh takes a
// sequence number; a response is applied only when its number is greater than
// the last applied one, so a slow stale response never overwrites a newer list.
// All fetches run under the view's context and are cancelled by Close.
type ListView[T any] struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	seq atomic.Uint64

	mu       sync.Mutex
	fetch    FetchFunc[T]
	applied  uint64
	snap     Snapshot[T]
	onChange func(Snapshot[T])
}

// NewListView creates an idle view. onChange, when non-nil, is called with
// every state change while the view's lock is held; it must not call back
// into the view.
func NewListView[T any](parent context.Context, fetch FetchFunc[T], onChange func(Snapshot[T])) *ListView[T] {
	ctx, cancel := context.WithCancel(parent)
	return &ListView[T]{
		ctx:      ctx,
		cancel:   cancel,
		fetch:    fetch,
		onChange: onChange,
	}
}

// Snapshot returns the current state.
func (v *ListView[T]) Snapshot() Snapshot[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snap
}

// Load replaces the list call and refreshes with it.
func (v *ListView[T]) Load(fetch FetchFunc[T]) error {
	v.mu.Lock()
	v.fetch = fetch
	v.mu.Unlock()
	return v.Refresh()
}

// Retry re-runs the last list call.
func (v *ListView[T]) Retry() error {
	return v.Refresh()
}

// Refresh runs the current list call and applies its result unless a newer
// refresh has already been applied. It returns the fetch error, or the view's
// context error once the view is closed.
func (v *ListView[T]) Refresh() error {
	if err := v.ctx.Err(); err != nil {
		return err
	}
	seq := v.seq.Add(1)

	v.mu.Lock()
	fetch := v.fetch
	if seq > v.applied {
		v.snap.State = Loading
		v.notify()
	}
	v.mu.Unlock()

	items, err := fetch(v.ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.ctx.Err() != nil {
		return v.ctx.Err()
	}
	if seq <= v.applied {
		return err
	}
	v.applied = seq
	v.snap = Snapshot[T]{Seq: seq, Err: err}
	switch {
	case err != nil:
		v.snap.State = Error
	case len(items) == 0:
		v.snap.State = Empty
		v.snap.Items = []T{}
	default:
		v.snap.State = Ready
		v.snap.Items = items
	}
	v.notify()
	return err
}

// Watch refreshes every interval until the view is closed.
func (v *ListView[T]) Watch(interval time.Duration) {
	v.wg.Add(1)
	go func() {
		defer v.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-v.ctx.Done():
				return
			case <-ticker.C:
				_ = v.Refresh()
			}
		}
	}()
}

// Close cancels in-flight fetches and stops watchers.
func (v *ListView[T]) Close() {
	v.cancel()
	v.wg.Wait()
}

func (v *ListView[T]) notify() {
	if v.onChange != nil {
		v.onChange(v.snap)
	}
}

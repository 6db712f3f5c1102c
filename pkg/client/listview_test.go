package client

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListView_States(t *testing.T) {
	var calls atomic.Int32
	results := []struct {
		items []string
		err   error
	}{
		{nil, errors.New("network down")},
		{[]string{}, nil},
		{[]string{"Acme"}, nil},
	}
	fetch := func(context.Context) ([]string, error) {
		r := results[calls.Add(1)-1]
		return r.items, r.err
	}

	v := NewListView[string](context.Background(), fetch, nil)
	defer v.Close()
	assert.Equal(t, Idle, v.Snapshot().State)

	require.Error(t, v.Refresh())
	assert.Equal(t, Error, v.Snapshot().State)
	assert.EqualError(t, v.Snapshot().Err, "network down")

	require.NoError(t, v.Retry())
	assert.Equal(t, Empty, v.Snapshot().State)

	require.NoError(t, v.Retry())
	snap := v.Snapshot()
	assert.Equal(t, Ready, snap.State)
	assert.Equal(t, []string{"Acme"}, snap.Items)
	assert.Nil(t, snap.Err)
}

func TestListView_StaleResponseDiscarded(t *testing.T) {
	release := make(chan struct{})
	var calls atomic.Int32
	fetch := func(ctx context.Context) ([]string, error) {
		if calls.Add(1) == 1 {
			<-release
			return []string{"stale"}, nil
		}
		return []string{"fresh"}, nil
	}

	v := NewListView[string](context.Background(), fetch, nil)
	defer v.Close()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = v.Refresh()
	}()
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)

	require.NoError(t, v.Refresh())
	assert.Equal(t, []string{"fresh"}, v.Snapshot().Items)

	close(release)
	wg.Wait()

	snap := v.Snapshot()
	assert.Equal(t, []string{"fresh"}, snap.Items)
	assert.Equal(t, uint64(2), snap.Seq)
}

func TestListView_CloseCancelsInFlight(t *testing.T) {
	started := make(chan struct{})
	fetch := func(ctx context.Context) ([]string, error) {
		close(started)
		<-ctx.Done()
		return nil, ctx.Err()
	}

	var changes atomic.Int32
	v := NewListView[string](context.Background(), fetch, func(Snapshot[string]) { changes.Add(1) })

	errc := make(chan error, 1)
	go func() { errc <- v.Refresh() }()
	<-started
	v.Close()

	assert.ErrorIs(t, <-errc, context.Canceled)
	assert.Equal(t, Loading, v.Snapshot().State)
	assert.Equal(t, int32(1), changes.Load(), "only the loading transition is published")
	assert.ErrorIs(t, v.Refresh(), context.Canceled)
}

func TestListView_Watch(t *testing.T) {
	var calls atomic.Int32
	fetch := func(context.Context) ([]string, error) {
		calls.Add(1)
		return []string{"x"}, nil
	}

	v := NewListView[string](context.Background(), fetch, nil)
	v.Watch(5 * time.Millisecond)
	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)
	v.Close()

	n := calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, n, calls.Load(), "no refresh after Close")
}

func TestListView_LoadReplacesFetch(t *testing.T) {
	v := NewListView[string](context.Background(), func(context.Context) ([]string, error) {
		return []string{"active"}, nil
	}, nil)
	defer v.Close()

	require.NoError(t, v.Refresh())
	require.NoError(t, v.Load(func(context.Context) ([]string, error) { return []string{"inactive"}, nil }))
	require.NoError(t, v.Retry())
	assert.Equal(t, []string{"inactive"}, v.Snapshot().Items)
}

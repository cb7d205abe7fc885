package fetch

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncerCollapsesBurst(t *testing.T) {
	d := NewDebouncer[string](50 * time.Millisecond)

	var calls atomic.Int32
	fn := func(ctx context.Context, term string) (string, error) {
		calls.Add(1)
		return "results:" + term, nil
	}

	// Three rapid submissions for the same key; only the last term may
	// reach the upstream, and every waiter sees its result.
	var wg sync.WaitGroup
	results := make([]string, 3)
	errs := make([]error, 3)
	for i, term := range []string{"l", "la", "lap"} {
		wg.Add(1)
		go func(i int, term string) {
			defer wg.Done()
			results[i], errs[i] = d.Do(context.Background(), "suggest", term, fn)
		}(i, term)
		time.Sleep(10 * time.Millisecond)
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for i, v := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, "results:lap", v)
	}
}

func TestDebouncerSeparateKeys(t *testing.T) {
	d := NewDebouncer[int](20 * time.Millisecond)

	var calls atomic.Int32
	fn := func(ctx context.Context, term string) (int, error) {
		calls.Add(1)
		return len(term), nil
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, key := range []string{"a", "b"} {
		wg.Add(1)
		go func(i int, key string) {
			defer wg.Done()
			_, errs[i] = d.Do(context.Background(), key, "term", fn)
		}(i, key)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Equal(t, int32(2), calls.Load())
}

func TestDebouncerNewBurstAfterFire(t *testing.T) {
	d := NewDebouncer[string](10 * time.Millisecond)

	fn := func(ctx context.Context, term string) (string, error) {
		return term, nil
	}

	v, err := d.Do(context.Background(), "k", "first", fn)
	require.NoError(t, err)
	assert.Equal(t, "first", v)

	v, err = d.Do(context.Background(), "k", "second", fn)
	require.NoError(t, err)
	assert.Equal(t, "second", v)
}

func TestDebouncerSubmitDuringFireWindow(t *testing.T) {
	// A submission landing right as a burst's timer expires must either
	// join that burst or start a new one; in no interleaving may a waiter
	// be left without a result.
	const delay = time.Millisecond
	d := NewDebouncer[string](delay)

	fn := func(ctx context.Context, term string) (string, error) {
		return term, nil
	}

	for i := 0; i < 200; i++ {
		firstVal := make(chan string, 1)
		firstErr := make(chan error, 1)
		go func() {
			v, err := d.Do(context.Background(), "k", "a", fn)
			firstVal <- v
			firstErr <- err
		}()
		time.Sleep(delay)

		second, err := d.Do(context.Background(), "k", "ab", fn)
		require.NoError(t, err)
		assert.Equal(t, "ab", second)

		select {
		case v := <-firstVal:
			require.NoError(t, <-firstErr)
			// own burst ("a") or joined into the second one ("ab")
			assert.Contains(t, []string{"a", "ab"}, v)
		case <-time.After(time.Second):
			t.Fatalf("iteration %d: first waiter never completed", i)
		}
	}
}

func TestDebouncerLatestWaiterCancelDoesNotFailBurst(t *testing.T) {
	d := NewDebouncer[string](30 * time.Millisecond)

	fn := func(ctx context.Context, term string) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return "results:" + term, nil
	}

	firstVal := make(chan string, 1)
	firstErr := make(chan error, 1)
	go func() {
		v, err := d.Do(context.Background(), "k", "a", fn)
		firstVal <- v
		firstErr <- err
	}()
	time.Sleep(5 * time.Millisecond)

	// the newest submitter abandons the burst before the timer fires
	cctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := d.Do(cctx, "k", "ab", fn)
	assert.ErrorIs(t, err, context.Canceled)

	select {
	case v := <-firstVal:
		require.NoError(t, <-firstErr)
		assert.Equal(t, "results:ab", v)
	case <-time.After(time.Second):
		t.Fatal("surviving waiter never received the collapsed result")
	}
}

func TestDebouncerCallerCancel(t *testing.T) {
	d := NewDebouncer[string](time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := d.Do(ctx, "k", "term", func(ctx context.Context, term string) (string, error) {
		return term, nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLatestCancelsPrevious(t *testing.T) {
	l := NewLatest()

	ctx1, release1 := l.Bind(context.Background(), "orders")
	defer release1()

	ctx2, release2 := l.Bind(context.Background(), "orders")
	defer release2()

	select {
	case <-ctx1.Done():
	case <-time.After(time.Second):
		t.Fatal("first context was not cancelled by the newer bind")
	}
	assert.NoError(t, ctx2.Err())
}

func TestLatestKeysAreIndependent(t *testing.T) {
	l := NewLatest()

	ctx1, release1 := l.Bind(context.Background(), "orders")
	defer release1()
	_, release2 := l.Bind(context.Background(), "products")
	defer release2()

	assert.NoError(t, ctx1.Err())
}

func TestLatestReleaseIsScopedToOwnBinding(t *testing.T) {
	l := NewLatest()

	_, release1 := l.Bind(context.Background(), "orders")
	ctx2, release2 := l.Bind(context.Background(), "orders")
	defer release2()

	// The superseded holder releasing late must not drop the newer binding.
	release1()

	ctx3, release3 := l.Bind(context.Background(), "orders")
	defer release3()

	select {
	case <-ctx2.Done():
	case <-time.After(time.Second):
		t.Fatal("second context should have been cancelled by the third bind")
	}
	assert.NoError(t, ctx3.Err())
}

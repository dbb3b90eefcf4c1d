package runtime

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFuture_Resolve(t *testing.T) {
	req := require.New(t)
	future := NewFuture[string]()

	req.True(future.Resolve("hello"))

	value, err := future.Await(context.Background())
	req.NoError(err)
	req.Equal("hello", value)
}

func TestFuture_SettlesOnlyOnce(t *testing.T) {
	req := require.New(t)
	future := NewFuture[int]()

	req.True(future.Reject(fmt.Errorf("first")))
	req.False(future.Resolve(42))
	req.False(future.Complete(7, nil))

	value, err := future.Await(context.Background())
	req.EqualError(err, "first")
	req.Zero(value)
}

func TestFuture_ConcurrentSettlement(t *testing.T) {
	req := require.New(t)
	future := NewFuture[int]()

	var wg sync.WaitGroup
	var mu sync.Mutex
	winners := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if future.Resolve(i) {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	req.Equal(1, winners)
	select {
	case <-future.Done():
	default:
		req.Fail("future should be settled")
	}
}

func TestFuture_AwaitGivesUpOnContext(t *testing.T) {
	req := require.New(t)
	future := NewFuture[int]()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := future.Await(ctx)
	req.ErrorIs(err, context.DeadlineExceeded)

	// The future is still pending and can settle later
	req.True(future.Resolve(1))
	value, err := future.Await(context.Background())
	req.NoError(err)
	req.Equal(1, value)
}
